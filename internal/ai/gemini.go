// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when GEMINI_MODEL is unset.
const DefaultGeminiModel = "gemini-2.0-flash"

// geminiProvider implements the Provider interface on the Gemini API.
// System messages become the system instruction; assistant turns map to
// the "model" role.
type geminiProvider struct {
	config ProviderConfig
	client *genai.Client
}

// newGemini creates a new Google Gemini provider.
func newGemini(ctx context.Context, cfg ProviderConfig) (*geminiProvider, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}

	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions.BaseURL = cfg.BaseURL
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &geminiProvider{config: cfg, client: client}, nil
}

func (p *geminiProvider) Name() string { return "gemini" }

// Complete sends a generateContent request and returns the concatenated
// text of the first candidate.
func (p *geminiProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	var system []*genai.Part
	contents := make([]*genai.Content, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, &genai.Part{Text: m.Content})
		case RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []*genai.Part{{Text: m.Content}}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []*genai.Part{{Text: m.Content}}})
		}
	}

	config := &genai.GenerateContentConfig{
		Temperature: ptr(float32(p.config.temperature())),
	}
	if len(system) > 0 {
		config.SystemInstruction = &genai.Content{Parts: system}
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.config.Model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}

	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			b.WriteString(part.Text)
		}
	}
	return strings.TrimSpace(b.String())
}

func ptr[T any](v T) *T { return &v }
