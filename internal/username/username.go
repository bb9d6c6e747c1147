// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package username provides URL-safe sanitization of public profile
// usernames. The public page lives at /{username}, so the stored value
// must always be a valid path segment.
package username

import (
	"regexp"
	"strings"
)

// invalid matches every character that may not appear in a username.
// The allowed set is lowercase letters, digits, '.', '_' and '-'.
var invalid = regexp.MustCompile(`[^a-z0-9._-]`)

// Sanitize lowercases the input and strips every disallowed character.
// It is applied on every mutation, not just on submit, so the stored
// username is valid at all times.
// Example: "Hello World! 123" → "helloworld123"
func Sanitize(s string) string {
	return invalid.ReplaceAllString(strings.ToLower(s), "")
}

// Valid reports whether s is already a sanitized username.
func Valid(s string) bool {
	return s == Sanitize(s)
}
