// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import "linkpulse/internal/models"

// Surface selects the rendering context. The preview runs inside a scaled
// phone frame, so its glass intensity and hard-shadow offset are tuned
// slightly smaller than the full-size public page. Everything else in the
// resolved style is surface-independent.
type Surface int

const (
	SurfacePreview Surface = iota
	SurfacePublic
)

// ButtonVisual describes how a link button is painted.
// Fill is a color or "transparent"; Border and Backdrop are CSS values or
// "none".
type ButtonVisual struct {
	Fill     string
	Border   string
	Backdrop string
}

// ResolvedStyle is the renderer-ready output of resolving a DesignConfig.
// All fields are concrete CSS values; templates interpolate them without
// further interpretation.
type ResolvedStyle struct {
	// Background is WallpaperValue passed through verbatim. WallpaperType
	// is advisory metadata for the settings UI and is deliberately not
	// consulted here.
	Background string

	Button     ButtonVisual
	ButtonText string

	// Shadow is the box-shadow value for link buttons.
	Shadow string

	// Rounding is the button border radius in pixels, clamped to [0, 30].
	Rounding int

	TitleFont string
	BodyFont  string
}

// Rounding bounds in pixels. The editor slider already restricts input to
// this range; the resolver clamps again so hand-edited snapshots cannot
// leak arbitrary radii into CSS.
const (
	minRounding = 0
	maxRounding = 30
)

// Glass treatment per surface.
const (
	glassFillPreview = "rgba(255,255,255,0.1)"
	glassFillPublic  = "rgba(255,255,255,0.15)"
	glassBorder      = "1px solid rgba(255,255,255,0.2)"
	glassBlurPreview = "blur(12px)"
	glassBlurPublic  = "blur(16px)"
)

// Shadow specs. Hard is the only one that differs per surface.
const (
	shadowSubtle      = "0 4px 6px -1px rgba(0,0,0,0.05)"
	shadowStrong      = "0 10px 25px -5px rgba(0,0,0,0.15)"
	shadowHardPreview = "6px 6px 0px 0px rgba(0,0,0,0.8)"
	shadowHardPublic  = "8px 8px 0px 0px rgba(0,0,0,0.8)"
)

// Resolve maps a DesignConfig to a ResolvedStyle for the given surface.
// It is pure and deterministic: identical input yields identical output,
// so renderers call it on every re-render without caching. It is also
// total — out-of-range or unrecognized values degrade to safe defaults,
// never to an error.
func Resolve(d models.DesignConfig, surface Surface) ResolvedStyle {
	return ResolvedStyle{
		Background: d.WallpaperValue,
		Button:     resolveButton(d, surface),
		ButtonText: d.ButtonTextColor,
		Shadow:     resolveShadow(d.ButtonShadow, surface),
		Rounding:   clampRounding(d.ButtonRounding),
		TitleFont:  ResolveFont(d.TitleFont),
		BodyFont:   ResolveFont(d.FontFamily),
	}
}

// resolveButton derives the button paint from the button type. Unknown
// types fall through to the solid treatment.
func resolveButton(d models.DesignConfig, surface Surface) ButtonVisual {
	switch d.ButtonType {
	case models.ButtonGlass:
		fill, blur := glassFillPreview, glassBlurPreview
		if surface == SurfacePublic {
			fill, blur = glassFillPublic, glassBlurPublic
		}
		return ButtonVisual{Fill: fill, Border: glassBorder, Backdrop: blur}
	case models.ButtonOutline:
		return ButtonVisual{
			Fill:     "transparent",
			Border:   "2px solid " + d.ButtonColor,
			Backdrop: "none",
		}
	default:
		return ButtonVisual{Fill: d.ButtonColor, Border: "none", Backdrop: "none"}
	}
}

// resolveShadow maps the shadow level to a box-shadow value. Anything
// outside the four known levels resolves to "none".
func resolveShadow(s models.ButtonShadow, surface Surface) string {
	switch s {
	case models.ShadowSubtle:
		return shadowSubtle
	case models.ShadowStrong:
		return shadowStrong
	case models.ShadowHard:
		if surface == SurfacePublic {
			return shadowHardPublic
		}
		return shadowHardPreview
	default:
		return "none"
	}
}

func clampRounding(r int) int {
	if r < minRounding {
		return minRounding
	}
	if r > maxRounding {
		return maxRounding
	}
	return r
}
