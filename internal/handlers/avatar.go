// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"linkpulse/internal/models"
)

// maxAvatarBytes caps avatar uploads at 5 MB.
const maxAvatarBytes = 5 << 20

// allowedAvatarTypes maps sniffed content types to file extensions.
var allowedAvatarTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// UploadAvatar replaces the profile avatar. With S3 configured the image
// is stored in the bucket and the snapshot keeps its URL; without S3 the
// image is inlined as a data URL so the feature degrades instead of
// disappearing.
func (e *Editor) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarBytes)
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		http.Redirect(w, r, "/admin?notice=upload-failed", http.StatusSeeOther)
		return
	}

	file, _, err := r.FormFile("avatar")
	if err != nil {
		http.Redirect(w, r, "/admin?notice=upload-failed", http.StatusSeeOther)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read avatar upload failed", "error", err)
		http.Redirect(w, r, "/admin?notice=upload-failed", http.StatusSeeOther)
		return
	}

	// Sniff the real content type; the client-supplied header is not trusted.
	contentType := http.DetectContentType(data)
	ext, ok := allowedAvatarTypes[contentType]
	if !ok {
		http.Error(w, "Unsupported image type", http.StatusUnsupportedMediaType)
		return
	}

	avatarURL, err := e.storeAvatar(r, data, contentType, ext)
	if err != nil {
		slog.Error("store avatar failed", "error", err)
		http.Redirect(w, r, "/admin?notice=upload-failed", http.StatusSeeOther)
		return
	}

	state := e.mutate(w, r, func(s *models.AppState) string {
		// Clean up the previous bucket object when it was ours.
		if e.storageClient != nil {
			if oldKey, owned := e.storageClient.ExtractKey(s.Profile.Avatar); owned {
				if err := e.storageClient.Delete(r.Context(), oldKey); err != nil {
					slog.Warn("delete old avatar failed", "key", oldKey, "error", err)
				}
			}
		}
		s.Profile.Avatar = avatarURL
		return ""
	})
	if state != nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	}
}

// storeAvatar puts the image in S3 when configured, otherwise returns an
// inline data URL.
func (e *Editor) storeAvatar(r *http.Request, data []byte, contentType, ext string) (string, error) {
	if e.storageClient == nil {
		return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
	}

	key := "avatars/" + uuid.NewString() + ext
	if err := e.storageClient.Upload(r.Context(), key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return "", err
	}
	return e.storageClient.FileURL(key), nil
}
