// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import "testing"

// TestResolveFont exercises catalog hits, misses, and near-misses. The
// lookup must be total: any string resolves to some spec.
func TestResolveFont(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "catalog hit",
			input: "Inter",
			want:  "'Inter', sans-serif",
		},
		{
			name:  "monospace entry",
			input: "Roboto Mono",
			want:  "'Roboto Mono', monospace",
		},
		{
			name:  "serif entry",
			input: "Playfair Display",
			want:  "'Playfair Display', serif",
		},
		{
			name:  "unknown font falls back",
			input: "Nonexistent Font XYZ",
			want:  "sans-serif",
		},
		{
			name:  "empty string falls back",
			input: "",
			want:  "sans-serif",
		},
		{
			name:  "lookup is case sensitive",
			input: "inter",
			want:  "sans-serif",
		},
		{
			name:  "trailing space misses",
			input: "Inter ",
			want:  "sans-serif",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveFont(tt.input); got != tt.want {
				t.Errorf("ResolveFont(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
