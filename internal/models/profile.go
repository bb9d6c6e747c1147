// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "linkpulse/internal/username"

// SocialPlatform identifies a supported social network. The set is closed;
// social slots are fixed by position and their platform is never reassigned.
type SocialPlatform string

const (
	PlatformInstagram SocialPlatform = "instagram"
	PlatformFacebook  SocialPlatform = "facebook"
	PlatformWhatsApp  SocialPlatform = "whatsapp"
	PlatformTwitter   SocialPlatform = "twitter"
	PlatformYouTube   SocialPlatform = "youtube"
)

// SocialLink is one social slot on the profile. An empty URL means the
// slot is not configured; renderers must omit it entirely.
type SocialLink struct {
	Platform SocialPlatform `json:"platform"`
	URL      string         `json:"url"`
}

// Configured reports whether the slot has a URL and should be rendered.
func (s SocialLink) Configured() bool {
	return s.URL != ""
}

// UserProfile holds the identity section of the page.
// Username is invariant-checked at mutation time: it only ever contains
// characters from [a-z0-9._-].
type UserProfile struct {
	Name     string       `json:"name"`
	Username string       `json:"username"`
	Bio      string       `json:"bio"`
	Avatar   string       `json:"avatar,omitempty"`
	Socials  []SocialLink `json:"socials"`
}

// SetUsername sanitizes raw and stores the result. Called on every
// keystroke from the editor so the stored value is always URL-safe.
func (p *UserProfile) SetUsername(raw string) {
	p.Username = username.Sanitize(raw)
}

// SetSocialURL replaces the URL at a fixed-position social slot.
// Out-of-range indexes are ignored.
func (p *UserProfile) SetSocialURL(index int, url string) {
	if index < 0 || index >= len(p.Socials) {
		return
	}
	p.Socials[index].URL = url
}
