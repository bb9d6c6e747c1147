// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for
// LinkPulse. Editor routes live under /admin; the public page is mounted
// at the root so usernames read as top-level paths.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"linkpulse/internal/handlers"
	"linkpulse/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. aiLimiter throttles the enhancement endpoint;
// it may be nil when no AI provider is configured.
func New(editor *handlers.Editor, public *handlers.Public, aiLimiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Get("/", public.Landing)

	// Editor.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/", editor.Page)
		r.Get("/preview", editor.PreviewPartial)

		r.Post("/profile", editor.UpdateProfile)
		r.Post("/username", editor.UpdateUsername)
		r.Post("/avatar", editor.UploadAvatar)
		r.Post("/socials/{index}", editor.UpdateSocial)

		r.Route("/links", func(r chi.Router) {
			r.Post("/", editor.AddLink)
			r.Post("/{id}", editor.UpdateLink)
			r.Delete("/{id}", editor.DeleteLink)
			// Plain form fallback, forms cannot send DELETE.
			r.Post("/{id}/delete", editor.DeleteLink)
		})

		r.Post("/design", editor.UpdateDesign)
		r.Post("/design/preset/{id}", editor.ApplyPreset)
		r.Post("/branding", editor.UpdateBranding)

		// AI calls are expensive upstream; rate-limit them separately.
		r.Group(func(r chi.Router) {
			if aiLimiter != nil {
				r.Use(aiLimiter.Middleware)
			}
			r.Post("/ai/enhance", editor.Enhance)
		})

		r.Get("/share/qr.png", editor.ShareQR)
	})

	// Public page, last so fixed routes win.
	r.Get("/{username}", public.Page)
	r.Get("/{username}/l/{id}", public.Click)

	return r
}

// healthHandler responds to health check requests.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
