// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"linkpulse/internal/models"
)

// Enhancement is a successful suggestion from the text-generation
// service. SuggestedTitles follows the same order as the links sent in
// the request: title i belongs to link i. The service may return fewer
// titles than links.
type Enhancement struct {
	EnhancedBio     string   `json:"enhancedBio"`
	SuggestedTitles []string `json:"suggestedTitles"`
}

// Enhancer asks the active LLM provider for a sharper bio and catchier
// link titles.
type Enhancer struct {
	registry *Registry
}

// NewEnhancer creates an Enhancer backed by the provider registry.
func NewEnhancer(registry *Registry) *Enhancer {
	return &Enhancer{registry: registry}
}

const enhanceSystemPrompt = `You are a social media branding expert helping the owner of a link-in-bio page.

Rules:
- Suggest a better, more engaging bio (max 150 characters).
- Suggest one catchy title per link, in the same order the links are listed.
- Respond with ONLY a JSON object, no code fences, no commentary:
  {"enhancedBio": "...", "suggestedTitles": ["...", "..."]}`

// EnhanceProfile requests suggestions for the given profile and links.
// It returns nil on any failure — network, provider error, malformed
// response — so the caller can leave all state untouched; failures are
// logged here for diagnostics only.
func (e *Enhancer) EnhanceProfile(ctx context.Context, profile models.UserProfile, links []models.LinkItem) *Enhancement {
	var titles []string
	for _, l := range links {
		titles = append(titles, l.Title)
	}

	userPrompt := fmt.Sprintf(
		"Analyze this profile:\nName: %s\nCurrent Bio: %s\nLinks: %s",
		profile.Name, profile.Bio, strings.Join(titles, ", "),
	)

	raw, err := e.registry.Generate(ctx, enhanceSystemPrompt, userPrompt)
	if err != nil {
		slog.Error("profile enhancement failed", "error", err)
		return nil
	}

	var result Enhancement
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &result); err != nil {
		slog.Error("profile enhancement returned malformed JSON", "error", err, "response", raw)
		return nil
	}

	if result.EnhancedBio == "" {
		slog.Error("profile enhancement returned no bio", "response", raw)
		return nil
	}

	return &result
}

// stripCodeFence removes a surrounding Markdown code fence if the model
// wrapped its JSON despite the instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
