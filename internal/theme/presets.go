// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import "linkpulse/internal/models"

// ptr returns a pointer to v, for building DesignPatch literals.
func ptr[T any](v T) *T { return &v }

// Presets is the built-in theme catalog. Each preset overrides only the
// fields it names; applying one keeps every other design value intact.
// The slice and its entries are treated as immutable.
var Presets = []models.ThemePreset{
	{
		ID:   "midnight-luxury",
		Name: "Midnight Luxury",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperFill),
			WallpaperValue:  ptr("#0f172a"),
			ButtonColor:     ptr("#334155"),
			ButtonTextColor: ptr("#f8fafc"),
			TitleColor:      ptr("#ffffff"),
			PageTextColor:   ptr("#94a3b8"),
			ButtonRounding:  ptr(12),
			ButtonShadow:    ptr(models.ShadowStrong),
			ButtonType:      ptr(models.ButtonSolid),
		},
	},
	{
		ID:   "soft-lavender",
		Name: "Soft Lavender",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperFill),
			WallpaperValue:  ptr("#f5f3ff"),
			ButtonColor:     ptr("#8129D9"),
			ButtonTextColor: ptr("#ffffff"),
			TitleColor:      ptr("#4c1d95"),
			PageTextColor:   ptr("#7c3aed"),
			ButtonRounding:  ptr(30),
			ButtonShadow:    ptr(models.ShadowSubtle),
			ButtonType:      ptr(models.ButtonSolid),
		},
	},
	{
		ID:   "neon-matrix",
		Name: "Neon Matrix",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperFill),
			WallpaperValue:  ptr("#000000"),
			ButtonColor:     ptr("#00ff41"),
			ButtonTextColor: ptr("#000000"),
			TitleColor:      ptr("#00ff41"),
			PageTextColor:   ptr("#00ff41"),
			ButtonRounding:  ptr(4),
			ButtonShadow:    ptr(models.ShadowHard),
			FontFamily:      ptr("Roboto Mono"),
			ButtonType:      ptr(models.ButtonSolid),
		},
	},
	{
		ID:   "glassmorphism-blue",
		Name: "Glass Ocean",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperGradient),
			WallpaperValue:  ptr("linear-gradient(135deg, #1e3a8a 0%, #3b82f6 100%)"),
			ButtonColor:     ptr("rgba(255, 255, 255, 0.1)"),
			ButtonTextColor: ptr("#ffffff"),
			TitleColor:      ptr("#ffffff"),
			PageTextColor:   ptr("#dbeafe"),
			ButtonRounding:  ptr(16),
			ButtonShadow:    ptr(models.ShadowNone),
			ButtonType:      ptr(models.ButtonGlass),
		},
	},
	{
		ID:   "minimal-zen",
		Name: "Minimal Zen",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperFill),
			WallpaperValue:  ptr("#ffffff"),
			ButtonColor:     ptr("#18181b"),
			ButtonTextColor: ptr("#ffffff"),
			TitleColor:      ptr("#18181b"),
			PageTextColor:   ptr("#71717a"),
			ButtonRounding:  ptr(0),
			ButtonShadow:    ptr(models.ShadowNone),
			ButtonType:      ptr(models.ButtonSolid),
		},
	},
	{
		ID:   "sunset-gradient",
		Name: "Sunset Glow",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperGradient),
			WallpaperValue:  ptr("linear-gradient(to top, #f97316, #ef4444)"),
			ButtonColor:     ptr("#ffffff"),
			ButtonTextColor: ptr("#991b1b"),
			TitleColor:      ptr("#ffffff"),
			PageTextColor:   ptr("#fee2e2"),
			ButtonRounding:  ptr(12),
			ButtonShadow:    ptr(models.ShadowStrong),
			ButtonType:      ptr(models.ButtonSolid),
		},
	},
	{
		ID:   "pastel-pink",
		Name: "Pastel Dream",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperFill),
			WallpaperValue:  ptr("#fdf2f8"),
			ButtonColor:     ptr("#f472b6"),
			ButtonTextColor: ptr("#ffffff"),
			TitleColor:      ptr("#be185d"),
			PageTextColor:   ptr("#db2777"),
			ButtonRounding:  ptr(20),
			ButtonShadow:    ptr(models.ShadowSubtle),
			ButtonType:      ptr(models.ButtonSolid),
		},
	},
	{
		ID:   "industrial-gray",
		Name: "Industrial",
		Design: models.DesignPatch{
			WallpaperType:   ptr(models.WallpaperFill),
			WallpaperValue:  ptr("#27272a"),
			ButtonColor:     ptr("#fbbf24"),
			ButtonTextColor: ptr("#18181b"),
			TitleColor:      ptr("#fbbf24"),
			PageTextColor:   ptr("#a1a1aa"),
			ButtonRounding:  ptr(4),
			ButtonShadow:    ptr(models.ShadowHard),
			ButtonType:      ptr(models.ButtonSolid),
		},
	},
}

// PresetByID returns the preset with the given ID, or nil if unknown.
func PresetByID(id string) *models.ThemePreset {
	for i := range Presets {
		if Presets[i].ID == id {
			return &Presets[i]
		}
	}
	return nil
}

// ApplyPreset shallow-merges a preset's design patch over the current
// config. Fields absent from the patch keep their current value.
func ApplyPreset(current models.DesignConfig, preset models.ThemePreset) models.DesignConfig {
	return ApplyPatch(current, preset.Design)
}

// ApplyPatch shallow-merges a partial design over the current config,
// field by field. Only non-nil fields override, so a present zero value
// (rounding 0, shadow "none") still wins. Pure and total: the inputs are
// never mutated and there is no failure mode.
func ApplyPatch(current models.DesignConfig, p models.DesignPatch) models.DesignConfig {
	out := current
	if p.ProfileLayout != nil {
		out.ProfileLayout = *p.ProfileLayout
	}
	if p.HeaderSize != nil {
		out.HeaderSize = *p.HeaderSize
	}
	if p.TitleStyle != nil {
		out.TitleStyle = *p.TitleStyle
	}
	if p.TitleFont != nil {
		out.TitleFont = *p.TitleFont
	}
	if p.TitleColor != nil {
		out.TitleColor = *p.TitleColor
	}
	if p.FontFamily != nil {
		out.FontFamily = *p.FontFamily
	}
	if p.PageTextColor != nil {
		out.PageTextColor = *p.PageTextColor
	}
	if p.WallpaperType != nil {
		out.WallpaperType = *p.WallpaperType
	}
	if p.WallpaperValue != nil {
		out.WallpaperValue = *p.WallpaperValue
	}
	if p.ButtonType != nil {
		out.ButtonType = *p.ButtonType
	}
	if p.ButtonRounding != nil {
		out.ButtonRounding = *p.ButtonRounding
	}
	if p.ButtonShadow != nil {
		out.ButtonShadow = *p.ButtonShadow
	}
	if p.ButtonColor != nil {
		out.ButtonColor = *p.ButtonColor
	}
	if p.ButtonTextColor != nil {
		out.ButtonTextColor = *p.ButtonTextColor
	}
	return out
}
