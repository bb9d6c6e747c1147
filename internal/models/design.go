// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ProfileLayout controls how the profile header is arranged on the page.
type ProfileLayout string

const (
	LayoutClassic ProfileLayout = "classic"
	LayoutHero    ProfileLayout = "hero"
)

// HeaderSize selects the avatar/header scale.
type HeaderSize string

const (
	HeaderSmall HeaderSize = "small"
	HeaderLarge HeaderSize = "large"
)

// TitleStyle is stored for forward compatibility. No resolution rule reads
// it yet; snapshots that carry it must round-trip unchanged.
type TitleStyle string

const (
	TitleText TitleStyle = "text"
	TitleLogo TitleStyle = "logo"
)

// WallpaperType groups wallpaper choices in the settings UI. The style
// resolver never branches on it: WallpaperValue is rendered verbatim
// whatever the type says. Only "fill" and "gradient" have curated swatches.
type WallpaperType string

const (
	WallpaperFill     WallpaperType = "fill"
	WallpaperGradient WallpaperType = "gradient"
	WallpaperBlur     WallpaperType = "blur"
	WallpaperPattern  WallpaperType = "pattern"
	WallpaperImage    WallpaperType = "image"
)

// ButtonType selects the visual treatment of link buttons.
type ButtonType string

const (
	ButtonSolid   ButtonType = "solid"
	ButtonGlass   ButtonType = "glass"
	ButtonOutline ButtonType = "outline"
)

// ButtonShadow selects the drop shadow applied to link buttons.
// Any value outside the four constants resolves to ShadowNone.
type ButtonShadow string

const (
	ShadowNone   ButtonShadow = "none"
	ShadowSubtle ButtonShadow = "subtle"
	ShadowStrong ButtonShadow = "strong"
	ShadowHard   ButtonShadow = "hard"
)

// DesignConfig is the single source of truth for page presentation.
// Color fields accept any CSS color string, including rgba() and hex.
// ButtonRounding is in pixels, meaningful range 0-30.
//
// JSON tags match the persisted v4 snapshot format.
type DesignConfig struct {
	ProfileLayout   ProfileLayout `json:"profileLayout"`
	HeaderSize      HeaderSize    `json:"headerSize"`
	TitleStyle      TitleStyle    `json:"titleStyle"`
	TitleFont       string        `json:"titleFont"`
	TitleColor      string        `json:"titleColor"`
	FontFamily      string        `json:"fontFamily"`
	PageTextColor   string        `json:"pageTextColor"`
	WallpaperType   WallpaperType `json:"wallpaperType"`
	WallpaperValue  string        `json:"wallpaperValue"`
	ButtonType      ButtonType    `json:"buttonType"`
	ButtonRounding  int           `json:"buttonRounding"`
	ButtonShadow    ButtonShadow  `json:"buttonShadow"`
	ButtonColor     string        `json:"buttonColor"`
	ButtonTextColor string        `json:"buttonTextColor"`
}

// DesignPatch is a partial DesignConfig: every field is optional. A nil
// field means "keep the current value" when the patch is applied. Pointer
// fields (rather than a loose map) make a zero override — rounding 0,
// shadow "none" — distinguishable from an absent field.
type DesignPatch struct {
	ProfileLayout   *ProfileLayout `json:"profileLayout,omitempty"`
	HeaderSize      *HeaderSize    `json:"headerSize,omitempty"`
	TitleStyle      *TitleStyle    `json:"titleStyle,omitempty"`
	TitleFont       *string        `json:"titleFont,omitempty"`
	TitleColor      *string        `json:"titleColor,omitempty"`
	FontFamily      *string        `json:"fontFamily,omitempty"`
	PageTextColor   *string        `json:"pageTextColor,omitempty"`
	WallpaperType   *WallpaperType `json:"wallpaperType,omitempty"`
	WallpaperValue  *string        `json:"wallpaperValue,omitempty"`
	ButtonType      *ButtonType    `json:"buttonType,omitempty"`
	ButtonRounding  *int           `json:"buttonRounding,omitempty"`
	ButtonShadow    *ButtonShadow  `json:"buttonShadow,omitempty"`
	ButtonColor     *string        `json:"buttonColor,omitempty"`
	ButtonTextColor *string        `json:"buttonTextColor,omitempty"`
}

// ThemePreset is a named, immutable bundle of partial design overrides.
// Presets are process-wide constants and are never mutated at runtime.
type ThemePreset struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Design DesignPatch `json:"design"`
}
