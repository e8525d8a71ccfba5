// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/openai/openai-go"
)

// ModerationResult contains the outcome of a prompt safety check.
type ModerationResult struct {
	Safe       bool     // true if the text passes moderation
	Categories []string // flagged category names, sorted (empty when safe)
}

// Moderator checks user text for policy violations before it is sent to a
// paid generation endpoint.
type Moderator interface {
	CheckSafety(ctx context.Context, text string) (*ModerationResult, error)
}

// CheckPrompt runs text through the configured moderator. Without one every
// text is reported safe.
func (r *Registry) CheckPrompt(ctx context.Context, text string) (*ModerationResult, error) {
	r.mu.RLock()
	m := r.moderator
	r.mu.RUnlock()

	if m == nil {
		return &ModerationResult{Safe: true}, nil
	}
	return m.CheckSafety(ctx, text)
}

// newModerator prefers OpenAI's free endpoint and falls back to Mistral's.
// It returns nil when neither key is configured.
func newModerator(configs map[string]ProviderConfig) Moderator {
	oa, hasOpenAI := configs["openai"]
	hasOpenAI = hasOpenAI && oa.APIKey != ""
	mi, hasMistral := configs["mistral"]
	hasMistral = hasMistral && mi.APIKey != ""

	switch {
	case hasOpenAI && hasMistral:
		return &fallbackModerator{
			primary:   newOpenAIModerator(oa.APIKey, oa.BaseURL),
			secondary: newMistralModerator(mi.APIKey, mi.BaseURL),
		}
	case hasOpenAI:
		return newOpenAIModerator(oa.APIKey, oa.BaseURL)
	case hasMistral:
		return newMistralModerator(mi.APIKey, mi.BaseURL)
	}
	return nil
}

// --- OpenAI Moderation (free endpoint) ---

type openAIModerator struct {
	client openai.Client
}

func newOpenAIModerator(apiKey, baseURL string) *openAIModerator {
	return &openAIModerator{client: sdkClient(apiKey, baseURL)}
}

func (m *openAIModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	resp, err := m.client.Moderations.New(ctx, openai.ModerationNewParams{
		Input: openai.ModerationNewParamsInputUnion{OfString: openai.String(text)},
		Model: openai.ModerationModelOmniModerationLatest,
	})
	if err != nil {
		return nil, fmt.Errorf("moderation: %w", err)
	}
	if len(resp.Results) == 0 || !resp.Results[0].Flagged {
		return &ModerationResult{Safe: true}, nil
	}

	var cats map[string]bool
	if err := json.Unmarshal([]byte(resp.Results[0].Categories.RawJSON()), &cats); err != nil {
		return nil, fmt.Errorf("moderation categories: %w", err)
	}
	return &ModerationResult{Safe: false, Categories: flaggedNames(cats)}, nil
}

// --- Mistral Moderation (paid, fallback) ---

// mistralModerator calls Mistral's /v1/moderations through the SDK's generic
// transport. Mistral has no top-level flag, so any flagged category counts.
type mistralModerator struct {
	client openai.Client
}

func newMistralModerator(apiKey, baseURL string) *mistralModerator {
	if baseURL == "" {
		baseURL = DefaultMistralBaseURL
	}
	return &mistralModerator{client: sdkClient(apiKey, baseURL)}
}

func (m *mistralModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	var resp mistralModResponse
	err := m.client.Post(ctx, "moderations", mistralModRequest{
		Model: "mistral-moderation-latest",
		Input: text,
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("mistral moderation: %w", err)
	}
	if len(resp.Results) == 0 {
		return &ModerationResult{Safe: true}, nil
	}

	flagged := flaggedNames(resp.Results[0].Categories)
	return &ModerationResult{Safe: len(flagged) == 0, Categories: flagged}, nil
}

// fallbackModerator asks secondary when primary fails, e.g. when an OpenAI
// project key lacks moderation scope.
type fallbackModerator struct {
	primary   Moderator
	secondary Moderator
}

func (m *fallbackModerator) CheckSafety(ctx context.Context, text string) (*ModerationResult, error) {
	res, err := m.primary.CheckSafety(ctx, text)
	if err == nil {
		return res, nil
	}
	return m.secondary.CheckSafety(ctx, text)
}

// flaggedNames turns "hate/threatening" into "hate (threatening)" and
// "self_harm" into "self harm".
func flaggedNames(cats map[string]bool) []string {
	var out []string
	for cat, on := range cats {
		if !on {
			continue
		}
		display := cat
		if i := strings.Index(display, "/"); i >= 0 {
			display = display[:i] + " (" + display[i+1:] + ")"
		}
		out = append(out, strings.ReplaceAll(display, "_", " "))
	}
	sort.Strings(out)
	return out
}

type mistralModRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type mistralModResponse struct {
	Results []struct {
		Categories map[string]bool `json:"categories"`
	} `json:"results"`
}
