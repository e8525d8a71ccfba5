// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Defaults for the Claude provider.
const (
	DefaultClaudeModel   = "claude-sonnet-4-20250514"
	DefaultClaudeBaseURL = "https://api.anthropic.com"
	claudeMaxTokens      = 4096
	anthropicVersion     = "2023-06-01"
)

// claudeProvider implements the Provider interface using the Anthropic
// Messages API (POST /v1/messages). System messages are joined into the
// top-level system field.
type claudeProvider struct {
	config ProviderConfig
	client *http.Client
}

// newClaude creates a new Anthropic Claude provider.
func newClaude(cfg ProviderConfig) *claudeProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultClaudeBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultClaudeModel
	}
	return &claudeProvider{
		config: cfg,
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

func (p *claudeProvider) Name() string { return "claude" }

// Complete sends one Messages request and returns the first text block.
func (p *claudeProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	body := claudeRequest{
		Model:       p.config.Model,
		MaxTokens:   claudeMaxTokens,
		Temperature: p.config.temperature(),
	}
	var system []string
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			system = append(system, m.Content)
		case RoleAssistant:
			body.Messages = append(body.Messages, claudeMessage{Role: "assistant", Content: m.Content})
		default:
			body.Messages = append(body.Messages, claudeMessage{Role: "user", Content: m.Content})
		}
	}
	body.System = strings.Join(system, "\n\n")

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("claude marshal: %w", err)
	}

	url := strings.TrimRight(p.config.BaseURL, "/") + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("claude request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.config.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("claude http: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("claude read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("claude API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result claudeResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("claude unmarshal: %w", err)
	}
	for _, block := range result.Content {
		if block.Type == "text" && strings.TrimSpace(block.Text) != "" {
			return block.Text, nil
		}
	}
	return "", ErrEmptyResponse
}

// --- Anthropic Messages API types ---

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type claudeRequest struct {
	Model       string          `json:"model"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
	System      string          `json:"system,omitempty"`
	Messages    []claudeMessage `json:"messages"`
}

type claudeContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type claudeResponse struct {
	Content []claudeContentBlock `json:"content"`
}
