// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// ShareQR serves a PNG QR code pointing at the public page, for the
// share box in the editor.
func (e *Editor) ShareQR(w http.ResponseWriter, r *http.Request) {
	state, err := e.states.Load()
	if err != nil {
		slog.Error("load state failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	png, err := qrcode.Encode(e.publicBaseURL+"/"+state.Profile.Username, qrcode.Medium, 320)
	if err != nil {
		slog.Error("encode qr failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.Write(png)
}
