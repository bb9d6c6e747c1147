// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// LinkItem is one entry on the page. The ID is unique within the owning
// profile and stable across edits: changing title, URL, enabled state or
// clicks never changes it.
//
// Clicks is a non-negative, monotonically non-decreasing counter. It is
// incremented only by public-page click-throughs; the editor reads it but
// never writes it.
type LinkItem struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
	Icon    string `json:"icon,omitempty"`
	Clicks  int    `json:"clicks"`
}
