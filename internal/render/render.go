// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the editor and the
// public page. Templates carry no styling logic: every color, shadow and
// font arrives pre-resolved, and social/link filtering happens in the
// data builders, so the same state always renders the same markup.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"linkpulse/internal/models"
	"linkpulse/internal/theme"
)

//go:embed templates/*.html
var templateFS embed.FS

// Style is a ResolvedStyle with its fields pre-marked safe for CSS
// contexts. Resolver output is built from a fixed set of mappings plus
// validated config values, never raw user markup.
type Style struct {
	Background     template.CSS
	ButtonFill     template.CSS
	ButtonBorder   template.CSS
	ButtonBackdrop template.CSS
	ButtonText     template.CSS
	Shadow         template.CSS
	Rounding       int
	TitleFont      template.CSS
	BodyFont       template.CSS
}

func newStyle(rs theme.ResolvedStyle) Style {
	return Style{
		Background:     template.CSS(rs.Background),
		ButtonFill:     template.CSS(rs.Button.Fill),
		ButtonBorder:   template.CSS(rs.Button.Border),
		ButtonBackdrop: template.CSS(rs.Button.Backdrop),
		ButtonText:     template.CSS(rs.ButtonText),
		Shadow:         template.CSS(rs.Shadow),
		Rounding:       rs.Rounding,
		TitleFont:      template.CSS(rs.TitleFont),
		BodyFont:       template.CSS(rs.BodyFont),
	}
}

// PreviewData feeds the phone-frame preview partial inside the editor.
type PreviewData struct {
	State *models.AppState
	Style Style
}

// NewPreviewData resolves the design for the preview surface.
func NewPreviewData(state *models.AppState) PreviewData {
	return PreviewData{
		State: state,
		Style: newStyle(theme.Resolve(state.Design, theme.SurfacePreview)),
	}
}

// EditorData feeds the full editor page.
type EditorData struct {
	State     *models.AppState
	Preview   PreviewData
	Fonts     []theme.Font
	Presets   []models.ThemePreset
	PublicURL string // full public page URL for the share box
	AIEnabled bool
	Notice    string // one-shot message, e.g. when an AI request fails
}

// PublicData feeds the public page. Socials and Links are already
// filtered: unconfigured social slots and disabled links never reach
// the template.
type PublicData struct {
	Profile      models.UserProfile
	Design       models.DesignConfig
	Socials      []models.SocialLink
	Links        []models.LinkItem
	Style        Style
	ShowBranding bool
}

// NewPublicData resolves the design for the public surface and filters
// out everything the visitor must not see.
func NewPublicData(state *models.AppState) PublicData {
	var socials []models.SocialLink
	for _, s := range state.Profile.Socials {
		if s.Configured() {
			socials = append(socials, s)
		}
	}

	var links []models.LinkItem
	for _, l := range state.Links {
		if l.Enabled {
			links = append(links, l)
		}
	}

	return PublicData{
		Profile:      state.Profile,
		Design:       state.Design,
		Socials:      socials,
		Links:        links,
		Style:        newStyle(theme.Resolve(state.Design, theme.SurfacePublic)),
		ShowBranding: state.ShowBranding,
	}
}

// Renderer handles template parsing and execution.
type Renderer struct {
	templates map[string]*template.Template
	funcMap   template.FuncMap
}

// pageTemplates maps a template name to the files that make it up. The
// editor embeds the preview partial so the first paint needs no extra
// request; mutations then swap the partial over HTMX.
var pageTemplates = map[string][]string{
	"landing": {"templates/landing.html"},
	"public":  {"templates/public.html"},
	"editor":  {"templates/editor.html", "templates/preview.html"},
	"preview": {"templates/preview.html"},
}

// New creates a Renderer by parsing all templates from the embedded
// filesystem. When devMode is true, templates use CDN-hosted HTMX.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"isDev": func() bool {
				return devMode
			},
			// css marks config color values (hex, rgba, gradients) safe for
			// style contexts, where the default filter rejects functions.
			"css": func(s string) template.CSS {
				return template.CSS(s)
			},
			// platformLabel renders a readable name for a social slot.
			"platformLabel": func(p models.SocialPlatform) string {
				switch p {
				case models.PlatformWhatsApp:
					return "WhatsApp"
				case models.PlatformYouTube:
					return "YouTube"
				default:
					if p == "" {
						return ""
					}
					return string(p[0]-'a'+'A') + string(p[1:])
				}
			},
		},
	}

	for name, files := range pageTemplates {
		tmpl, err := template.New(name).Funcs(r.funcMap).ParseFS(templateFS, files...)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.templates[name] = tmpl
	}

	return r, nil
}

// Page renders a full page template.
func (rn *Renderer) Page(w http.ResponseWriter, name string, data any) {
	tmpl, ok := rn.templates[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, tmpl, name+".html", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// PageTo renders a full page template to an arbitrary writer. The public
// handler uses it to render into a buffer so the page cache stores
// byte-for-byte what was served.
func (rn *Renderer) PageTo(w io.Writer, name string, data any) error {
	tmpl, ok := rn.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	return executeTemplate(w, tmpl, name+".html", data)
}

// Preview renders the phone-frame preview fragment, used as the HTMX
// swap target after every editor mutation.
func (rn *Renderer) Preview(w http.ResponseWriter, data PreviewData) {
	tmpl := rn.templates["preview"]

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, tmpl, "preview", data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// IsHTMX returns true if the request was made by HTMX (has HX-Request header).
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
