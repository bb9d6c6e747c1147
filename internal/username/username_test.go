// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package username

import "testing"

// TestSanitize exercises the sanitizer with typical inputs, special
// characters, unicode, and boundary cases.
func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Typical usernames ---
		{
			name:  "already valid",
			input: "jane.doe_99",
			want:  "jane.doe_99",
		},
		{
			name:  "uppercase lowered",
			input: "JaneDoe",
			want:  "janedoe",
		},
		{
			name:  "hyphens kept",
			input: "jane-doe",
			want:  "jane-doe",
		},

		// --- Stripped characters ---
		{
			name:  "spaces and punctuation stripped",
			input: "Hello World! 123",
			want:  "helloworld123",
		},
		{
			name:  "at sign and plus stripped",
			input: "user+tag@host",
			want:  "usertaghost",
		},
		{
			name:  "slashes stripped",
			input: "a/b\\c",
			want:  "abc",
		},

		// --- Unicode ---
		{
			name:  "accented letters stripped",
			input: "señorita",
			want:  "seorita",
		},
		{
			name:  "emoji stripped",
			input: "jane🔥doe",
			want:  "janedoe",
		},

		// --- Edge cases ---
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only invalid characters",
			input: "!@# $%^",
			want:  "",
		},
		{
			name:  "digits only",
			input: "12345",
			want:  "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestValid checks the idempotence-based validity predicate.
func TestValid(t *testing.T) {
	if !Valid("jane.doe_99") {
		t.Error("valid username rejected")
	}
	if Valid("Jane Doe") {
		t.Error("unsanitized username accepted")
	}
	// Sanitize must be idempotent: its output is always valid.
	if !Valid(Sanitize("Hello World! 123")) {
		t.Error("Sanitize output failed Valid")
	}
}
