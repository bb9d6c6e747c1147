// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// pngBytes is enough of a PNG for content sniffing to recognize it.
var pngBytes = []byte("\x89PNG\r\n\x1a\n" + strings.Repeat("\x00", 16))

func avatarUploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("avatar", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	fw.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadAvatar_InlineDataURL(t *testing.T) {
	env := newTestEnv(t)
	seedState(t, env)

	w := httptest.NewRecorder()
	env.Editor.UploadAvatar(w, avatarUploadRequest(t, "me.png", pngBytes))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location = %q", loc)
	}

	// Without S3 the image is inlined.
	state, _ := env.States.Load()
	if !strings.HasPrefix(state.Profile.Avatar, "data:image/png;base64,") {
		t.Errorf("Avatar = %q, want a PNG data URL", state.Profile.Avatar)
	}
}

func TestUploadAvatar_UnsupportedType(t *testing.T) {
	env := newTestEnv(t)
	before := seedState(t, env)

	w := httptest.NewRecorder()
	env.Editor.UploadAvatar(w, avatarUploadRequest(t, "notes.txt", []byte("just some text")))

	if w.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", w.Code)
	}
	state, _ := env.States.Load()
	if state.Profile.Avatar != before.Profile.Avatar {
		t.Error("rejected upload must not change the avatar")
	}
}

func TestUploadAvatar_MissingFile(t *testing.T) {
	env := newTestEnv(t)
	seedState(t, env)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/avatar", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	env.Editor.UploadAvatar(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin?notice=upload-failed" {
		t.Errorf("Location = %q, want the failure notice", loc)
	}
}
