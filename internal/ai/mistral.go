// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import "context"

// Defaults for the Mistral provider.
const (
	DefaultMistralModel   = "mistral-large-latest"
	DefaultMistralBaseURL = "https://api.mistral.ai/v1"
)

// mistralProvider implements the Provider interface on Mistral's chat
// completions API, which is OpenAI-compatible. Image generation is not
// exposed.
type mistralProvider struct {
	inner *openAIProvider
}

// newMistral creates a new Mistral provider.
func newMistral(cfg ProviderConfig) *mistralProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultMistralBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultMistralModel
	}
	return &mistralProvider{inner: newOpenAI(cfg)}
}

func (p *mistralProvider) Name() string { return "mistral" }

// Complete sends a chat completion request to Mistral's API.
func (p *mistralProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	return p.inner.Complete(ctx, messages)
}
