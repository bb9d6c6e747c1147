// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures persisted in the snapshot
// and provides the core types used throughout the application.
package models

import "github.com/google/uuid"

// Placeholder values for a freshly added link.
const (
	newLinkTitle = "New Link"
	newLinkURL   = "https://"
)

// AppState is the aggregate root: everything the editor mutates and the
// public page renders. It is the unit of persistence — the whole snapshot
// is written on every change, last write wins.
type AppState struct {
	Profile      UserProfile  `json:"profile"`
	Links        []LinkItem   `json:"links"`
	Design       DesignConfig `json:"design"`
	ShowBranding bool         `json:"showBranding"`
}

// DefaultState returns the hardcoded starting snapshot used when nothing
// has been persisted yet, or when the persisted snapshot cannot be read.
func DefaultState() *AppState {
	return &AppState{
		Profile: UserProfile{
			Name:     "Your Name",
			Username: "yourname",
			Bio:      "Welcome to my corner of the internet. All my important links and current projects live here.",
			Avatar:   "https://images.unsplash.com/photo-1535713875002-d1d0cf377fde?auto=format&fit=crop&q=80&w=200",
			Socials: []SocialLink{
				{Platform: PlatformInstagram},
				{Platform: PlatformWhatsApp},
				{Platform: PlatformFacebook},
			},
		},
		Links: []LinkItem{
			{
				ID:      uuid.NewString(),
				Title:   "Visit my website!",
				URL:     "https://example.com",
				Enabled: true,
			},
		},
		Design: DesignConfig{
			ProfileLayout:   LayoutClassic,
			HeaderSize:      HeaderSmall,
			TitleStyle:      TitleText,
			TitleFont:       "DM Sans",
			TitleColor:      "#18181b",
			FontFamily:      "Inter",
			PageTextColor:   "#71717a",
			WallpaperType:   WallpaperFill,
			WallpaperValue:  "#F8F9FB",
			ButtonType:      ButtonSolid,
			ButtonRounding:  16,
			ButtonShadow:    ShadowSubtle,
			ButtonColor:     "#18181b",
			ButtonTextColor: "#ffffff",
		},
		ShowBranding: true,
	}
}

// AddLink appends a new enabled link with placeholder title and URL and a
// fresh unique ID. Returns the created item. Ordering is append-only; the
// editor offers no reordering.
func (s *AppState) AddLink() LinkItem {
	link := LinkItem{
		ID:      uuid.NewString(),
		Title:   newLinkTitle,
		URL:     newLinkURL,
		Enabled: true,
	}
	s.Links = append(s.Links, link)
	return link
}

// DeleteLink removes the link with the given ID. It reports whether a
// link was removed; an absent ID is a no-op.
func (s *AppState) DeleteLink(id string) bool {
	for i, link := range s.Links {
		if link.ID == id {
			s.Links = append(s.Links[:i], s.Links[i+1:]...)
			return true
		}
	}
	return false
}

// FindLink returns a pointer to the link with the given ID, or nil.
func (s *AppState) FindLink(id string) *LinkItem {
	for i := range s.Links {
		if s.Links[i].ID == id {
			return &s.Links[i]
		}
	}
	return nil
}

// SetLinkTitle replaces the title of the matching link. ID and all other
// fields are unchanged. Absent IDs are a no-op.
func (s *AppState) SetLinkTitle(id, title string) {
	if link := s.FindLink(id); link != nil {
		link.Title = title
	}
}

// SetLinkURL replaces the destination URL of the matching link.
func (s *AppState) SetLinkURL(id, url string) {
	if link := s.FindLink(id); link != nil {
		link.URL = url
	}
}

// SetLinkEnabled toggles visibility of the matching link.
func (s *AppState) SetLinkEnabled(id string, enabled bool) {
	if link := s.FindLink(id); link != nil {
		link.Enabled = enabled
	}
}

// SetLinkIcon replaces the icon reference of the matching link.
func (s *AppState) SetLinkIcon(id, icon string) {
	if link := s.FindLink(id); link != nil {
		link.Icon = icon
	}
}

// RecordClick increments the click counter of the matching link. Only the
// public click-through path calls this; the editor never mutates clicks.
// Reports whether the link exists.
func (s *AppState) RecordClick(id string) bool {
	link := s.FindLink(id)
	if link == nil {
		return false
	}
	link.Clicks++
	return true
}

// ApplyEnhancement replaces the bio and link titles with AI suggestions.
// Titles are matched to links by position, mirroring the enhancement
// response contract: suggestion i lands on link i. When fewer suggestions
// than links are returned, the remaining titles are left unchanged; extra
// suggestions are ignored. Empty suggestions never overwrite a title.
func (s *AppState) ApplyEnhancement(bio string, titles []string) {
	s.Profile.Bio = bio
	for i := range s.Links {
		if i < len(titles) && titles[i] != "" {
			s.Links[i].Title = titles[i]
		}
	}
}
