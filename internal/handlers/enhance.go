// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
)

// Enhance asks the AI provider for a better bio and link titles and
// applies the suggestions to the snapshot. On any failure the snapshot
// is left untouched and the editor shows a notice; a half-applied
// suggestion never exists.
func (e *Editor) Enhance(w http.ResponseWriter, r *http.Request) {
	if e.enhancer == nil {
		http.Error(w, "No AI provider configured", http.StatusServiceUnavailable)
		return
	}

	state, err := e.states.Load()
	if err != nil {
		slog.Error("load state failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	result := e.enhancer.EnhanceProfile(r.Context(), state.Profile, state.Links)
	if result == nil {
		http.Redirect(w, r, "/admin?notice=ai-failed", http.StatusSeeOther)
		return
	}

	state.ApplyEnhancement(result.EnhancedBio, result.SuggestedTitles)

	if err := e.states.Save(state); err != nil {
		slog.Error("save state failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	e.pageCache.Invalidate(r.Context(), state.Profile.Username)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
