package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for editor form fields.
const (
	maxNameLen      = 100
	maxBioLen       = 500
	maxUsernameLen  = 50
	maxLinkTitleLen = 150
	maxURLLen       = 2048
	maxIconLen      = 50
	maxColorLen     = 200 // long enough for gradient values
)

// validateName checks the profile display name.
func validateName(name string) string {
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 100 characters)."
	}
	return ""
}

// validateBio checks the profile bio.
func validateBio(bio string) string {
	if utf8.RuneCountInString(bio) > maxBioLen {
		return "Bio is too long (max 500 characters)."
	}
	return ""
}

// validateUsername checks raw username input before sanitization. Length
// is the only rejection; disallowed characters are stripped, not refused.
func validateUsername(raw string) string {
	if utf8.RuneCountInString(raw) > maxUsernameLen {
		return "Username is too long (max 50 characters)."
	}
	return ""
}

// validateURL checks a link or social destination. Empty is allowed —
// it clears a social slot — but anything non-empty must be http(s) or a
// scheme-only placeholder still being typed.
func validateURL(url string) string {
	if url == "" {
		return ""
	}
	if utf8.RuneCountInString(url) > maxURLLen {
		return "URL is too long (max 2048 characters)."
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "URL must start with http:// or https://."
	}
	return ""
}

// validateLinkTitle checks a link button title.
func validateLinkTitle(title string) string {
	if utf8.RuneCountInString(title) > maxLinkTitleLen {
		return "Link title is too long (max 150 characters)."
	}
	return ""
}

// validateIcon checks a link icon reference.
func validateIcon(icon string) string {
	if utf8.RuneCountInString(icon) > maxIconLen {
		return "Icon is too long (max 50 characters)."
	}
	return ""
}

// validateColor bounds a CSS color or gradient value. The design model
// accepts any CSS color string, so only length is enforced here; output
// encoding is the renderer's job.
func validateColor(value string) string {
	if utf8.RuneCountInString(value) > maxColorLen {
		return "Color value is too long."
	}
	return ""
}
