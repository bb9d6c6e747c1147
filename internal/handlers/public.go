// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkpulse/internal/cache"
	"linkpulse/internal/render"
	"linkpulse/internal/store"
	"linkpulse/internal/username"
)

// Public groups handlers for the visitor-facing pages. It checks the
// Valkey page cache before hitting the database, and stores rendered
// pages on miss.
type Public struct {
	renderer  *render.Renderer
	states    *store.AppStateStore
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, states *store.AppStateStore, pageCache *cache.PageCache) *Public {
	return &Public{
		renderer:  renderer,
		states:    states,
		pageCache: pageCache,
	}
}

// Landing renders the marketing page at the root path.
func (p *Public) Landing(w http.ResponseWriter, r *http.Request) {
	p.renderer.Page(w, "landing", nil)
}

// Page renders a public profile page by username.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	handle := chi.URLParam(r, "username")

	// A handle that survives sanitization unchanged is the only kind that
	// can exist; anything else can 404 without a query.
	if handle == "" || !username.Valid(handle) {
		http.NotFound(w, r)
		return
	}

	if cached, ok := p.pageCache.Get(ctx, handle); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	state, err := p.states.FindByUsername(handle)
	if err != nil {
		slog.Error("find page by username failed", "error", err, "username", handle)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if state == nil {
		http.NotFound(w, r)
		return
	}

	// Render to a buffer so the cache stores exactly what was sent.
	var buf bytes.Buffer
	if err := p.renderer.PageTo(&buf, "public", render.NewPublicData(state)); err != nil {
		slog.Error("render public page failed", "error", err, "username", handle)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	p.pageCache.Set(ctx, handle, buf.Bytes())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Click records a click on a link and forwards the visitor to its
// destination. Unknown pages or links 404; the redirect happens only
// after the count is durably stored.
func (p *Public) Click(w http.ResponseWriter, r *http.Request) {
	handle := chi.URLParam(r, "username")
	linkID := chi.URLParam(r, "id")

	link, err := p.states.IncrementClick(handle, linkID)
	if err != nil {
		slog.Error("record click failed", "error", err, "username", handle, "link", linkID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if link == nil {
		http.NotFound(w, r)
		return
	}

	http.Redirect(w, r, link.URL, http.StatusFound)
}
