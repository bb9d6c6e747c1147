// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme maps a DesignConfig to concrete presentation attributes.
// It owns the font catalog, the theme preset catalog, and the style
// resolver shared by the editor preview and the public page, so the two
// surfaces can never drift apart.
package theme

// Font pairs a human-readable name with a CSS font-family specification.
type Font struct {
	Name string
	Spec string
}

// Fonts is the fixed, ordered catalog offered by the design settings.
var Fonts = []Font{
	{Name: "DM Sans", Spec: "'DM Sans', sans-serif"},
	{Name: "Inter", Spec: "'Inter', sans-serif"},
	{Name: "Roboto Mono", Spec: "'Roboto Mono', monospace"},
	{Name: "Playfair Display", Spec: "'Playfair Display', serif"},
}

// fallbackFontSpec is returned for any name not in the catalog, which
// keeps resolution total over user-supplied or legacy font names.
const fallbackFontSpec = "sans-serif"

// ResolveFont returns the font-family spec for a catalog name. Unknown
// names resolve to a generic sans-serif spec; it never fails.
func ResolveFont(name string) string {
	for _, f := range Fonts {
		if f.Name == name {
			return f.Spec
		}
	}
	return fallbackFontSpec
}
