// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for LinkPulse. Handlers
// are grouped by concern (editor, public) and receive their dependencies
// through the handler struct.
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"linkpulse/internal/ai"
	"linkpulse/internal/cache"
	"linkpulse/internal/models"
	"linkpulse/internal/render"
	"linkpulse/internal/storage"
	"linkpulse/internal/store"
	"linkpulse/internal/theme"
)

// Editor groups all editor HTTP handlers and their dependencies.
// storageClient may be nil if S3 is not configured; enhancer may be nil
// if no AI provider has a key.
type Editor struct {
	renderer      *render.Renderer
	states        *store.AppStateStore
	pageCache     *cache.PageCache
	enhancer      *ai.Enhancer
	storageClient *storage.Client
	publicBaseURL string
}

// NewEditor creates a new Editor handler group.
func NewEditor(renderer *render.Renderer, states *store.AppStateStore, pageCache *cache.PageCache, enhancer *ai.Enhancer, storageClient *storage.Client, publicBaseURL string) *Editor {
	return &Editor{
		renderer:      renderer,
		states:        states,
		pageCache:     pageCache,
		enhancer:      enhancer,
		storageClient: storageClient,
		publicBaseURL: publicBaseURL,
	}
}

// Page renders the full editor.
func (e *Editor) Page(w http.ResponseWriter, r *http.Request) {
	state, err := e.states.Load()
	if err != nil {
		slog.Error("load state failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	e.renderer.Page(w, "editor", render.EditorData{
		State:     state,
		Preview:   render.NewPreviewData(state),
		Fonts:     theme.Fonts,
		Presets:   theme.Presets,
		PublicURL: e.publicBaseURL + "/" + state.Profile.Username,
		AIEnabled: e.enhancer != nil,
		Notice:    noticeFor(r.URL.Query().Get("notice")),
	})
}

// PreviewPartial renders just the phone-frame preview fragment.
func (e *Editor) PreviewPartial(w http.ResponseWriter, r *http.Request) {
	state, err := e.states.Load()
	if err != nil {
		slog.Error("load state failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	e.renderer.Preview(w, render.NewPreviewData(state))
}

// noticeFor maps a notice query parameter to user-facing copy. Unknown
// codes render nothing, so the parameter cannot inject text.
func noticeFor(code string) string {
	switch code {
	case "ai-failed":
		return "The suggestion service was unavailable. Your page is unchanged."
	case "upload-failed":
		return "The avatar upload failed. Your page is unchanged."
	default:
		return ""
	}
}

// mutate runs fn against the loaded snapshot, persists the result, and
// invalidates the cached public page. The pre-mutation username is
// invalidated too, so renames do not leave a stale page behind. Returns
// the updated state, or nil after writing an error response.
func (e *Editor) mutate(w http.ResponseWriter, r *http.Request, fn func(*models.AppState) string) *models.AppState {
	state, err := e.states.Load()
	if err != nil {
		slog.Error("load state failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}

	oldUsername := state.Profile.Username
	if msg := fn(state); msg != "" {
		http.Error(w, msg, http.StatusUnprocessableEntity)
		return nil
	}

	if err := e.states.Save(state); err != nil {
		slog.Error("save state failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil
	}

	e.pageCache.Invalidate(r.Context(), oldUsername, state.Profile.Username)
	return state
}

// respond finishes a mutation: HTMX requests get the refreshed preview
// fragment, plain form posts get a redirect back to the editor.
func (e *Editor) respond(w http.ResponseWriter, r *http.Request, state *models.AppState) {
	if render.IsHTMX(r) {
		e.renderer.Preview(w, render.NewPreviewData(state))
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateProfile updates the name and/or bio. Only fields present in the
// form change; the editor posts one field per keystroke batch.
func (e *Editor) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		if name, ok := formValue(r, "name"); ok {
			if msg := validateName(name); msg != "" {
				return msg
			}
			s.Profile.Name = name
		}
		if bio, ok := formValue(r, "bio"); ok {
			if msg := validateBio(bio); msg != "" {
				return msg
			}
			s.Profile.Bio = bio
		}
		return ""
	})
	if state != nil {
		e.respond(w, r, state)
	}
}

// UpdateUsername sanitizes and stores the public handle. The raw input is
// never rejected: disallowed characters are stripped, uppercase folded.
func (e *Editor) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		raw := r.PostFormValue("username")
		if msg := validateUsername(raw); msg != "" {
			return msg
		}
		s.Profile.SetUsername(raw)
		return ""
	})
	if state != nil {
		e.respond(w, r, state)
	}
}

// UpdateSocial replaces the URL of one fixed-position social slot.
func (e *Editor) UpdateSocial(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		url := r.PostFormValue("url")
		if msg := validateURL(url); msg != "" {
			return msg
		}
		s.Profile.SetSocialURL(index, url)
		return ""
	})
	if state != nil {
		e.respond(w, r, state)
	}
}

// AddLink appends a fresh placeholder link.
func (e *Editor) AddLink(w http.ResponseWriter, r *http.Request) {
	state := e.mutate(w, r, func(s *models.AppState) string {
		s.AddLink()
		return ""
	})
	if state != nil {
		e.respond(w, r, state)
	}
}

// UpdateLink updates any of title, url, icon, enabled on one link. Only
// fields present in the form change. Unknown IDs are a no-op.
func (e *Editor) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		if title, ok := formValue(r, "title"); ok {
			if msg := validateLinkTitle(title); msg != "" {
				return msg
			}
			s.SetLinkTitle(id, title)
		}
		if url, ok := formValue(r, "url"); ok {
			if msg := validateURL(url); msg != "" {
				return msg
			}
			s.SetLinkURL(id, url)
		}
		if icon, ok := formValue(r, "icon"); ok {
			if msg := validateIcon(icon); msg != "" {
				return msg
			}
			s.SetLinkIcon(id, icon)
		}
		if enabled, ok := formValue(r, "enabled"); ok {
			s.SetLinkEnabled(id, enabled == "true")
		}
		return ""
	})
	if state != nil {
		e.respond(w, r, state)
	}
}

// DeleteLink removes a link. Deleting an absent ID is a no-op, matching
// the model contract, so double-submits are harmless.
func (e *Editor) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	state := e.mutate(w, r, func(s *models.AppState) string {
		s.DeleteLink(id)
		return ""
	})
	if state == nil {
		return
	}

	// Deleting changes the links list itself, so HTMX clients cannot get
	// away with a preview-only swap; send them back to a full page.
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateDesign applies a partial design update. Only submitted fields
// change, which is what gives sliders and selects patch semantics: the
// editor posts exactly the control that moved.
func (e *Editor) UpdateDesign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	patch, msg := designPatchFromForm(r)
	if msg != "" {
		http.Error(w, msg, http.StatusUnprocessableEntity)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		s.Design = theme.ApplyPatch(s.Design, patch)
		return ""
	})
	if state != nil {
		e.respond(w, r, state)
	}
}

// ApplyPreset overlays a named theme preset on the current design.
// Unknown preset IDs 404 and leave the design untouched.
func (e *Editor) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	preset := theme.PresetByID(chi.URLParam(r, "id"))
	if preset == nil {
		http.NotFound(w, r)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		s.Design = theme.ApplyPreset(s.Design, *preset)
		return ""
	})
	if state == nil {
		return
	}

	// The design controls need re-rendering too, not just the preview.
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// UpdateBranding toggles the "LinkPulse" footer on the public page.
func (e *Editor) UpdateBranding(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		s.ShowBranding = r.PostFormValue("showBranding") == "true"
		return ""
	})
	if state != nil {
		e.respond(w, r, state)
	}
}

// formValue returns a posted field and whether it was present at all.
// Presence matters: an empty string clears a field, an absent field
// leaves it alone.
func formValue(r *http.Request, key string) (string, bool) {
	vals, ok := r.PostForm[key]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return vals[0], true
}

// designPatchFromForm builds a DesignPatch from whichever design fields
// the form carried. Returns a non-empty message on invalid input.
func designPatchFromForm(r *http.Request) (models.DesignPatch, string) {
	var p models.DesignPatch

	if v, ok := formValue(r, "profileLayout"); ok {
		layout := models.ProfileLayout(v)
		p.ProfileLayout = &layout
	}
	if v, ok := formValue(r, "headerSize"); ok {
		size := models.HeaderSize(v)
		p.HeaderSize = &size
	}
	if v, ok := formValue(r, "titleStyle"); ok {
		style := models.TitleStyle(v)
		p.TitleStyle = &style
	}
	if v, ok := formValue(r, "titleFont"); ok {
		p.TitleFont = &v
	}
	if v, ok := formValue(r, "titleColor"); ok {
		if msg := validateColor(v); msg != "" {
			return p, msg
		}
		p.TitleColor = &v
	}
	if v, ok := formValue(r, "fontFamily"); ok {
		p.FontFamily = &v
	}
	if v, ok := formValue(r, "pageTextColor"); ok {
		if msg := validateColor(v); msg != "" {
			return p, msg
		}
		p.PageTextColor = &v
	}
	if v, ok := formValue(r, "wallpaperType"); ok {
		wt := models.WallpaperType(v)
		p.WallpaperType = &wt
	}
	if v, ok := formValue(r, "wallpaperValue"); ok {
		if msg := validateColor(v); msg != "" {
			return p, msg
		}
		p.WallpaperValue = &v
	}
	if v, ok := formValue(r, "buttonType"); ok {
		bt := models.ButtonType(v)
		p.ButtonType = &bt
	}
	if v, ok := formValue(r, "buttonRounding"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return p, "Corner rounding must be a number."
		}
		p.ButtonRounding = &n
	}
	if v, ok := formValue(r, "buttonShadow"); ok {
		sh := models.ButtonShadow(v)
		p.ButtonShadow = &sh
	}
	if v, ok := formValue(r, "buttonColor"); ok {
		if msg := validateColor(v); msg != "" {
			return p, msg
		}
		p.ButtonColor = &v
	}
	if v, ok := formValue(r, "buttonTextColor"); ok {
		if msg := validateColor(v); msg != "" {
			return p, msg
		}
		p.ButtonTextColor = &v
	}

	return p, ""
}
