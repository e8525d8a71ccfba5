// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface over the hosted LLM APIs used to
// write brand identities (OpenAI, Gemini, Claude, Mistral). Each provider implements the
// Provider interface, and the Registry selects the active one by name.
// Image generation is an optional capability exposed through ImageGenerator.
package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Message roles accepted by Complete.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultTemperature is the sampling temperature for every completion.
const DefaultTemperature = 0.7

// ErrEmptyResponse is returned when the model answers with no text.
var ErrEmptyResponse = errors.New("ai: empty response")

// Message is one chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider defines the interface that all AI providers must implement.
type Provider interface {
	// Complete sends the conversation and returns the first choice's text.
	// Implementations make a single attempt; retries are the caller's call.
	Complete(ctx context.Context, messages []Message) (string, error)

	// Name returns the provider identifier (e.g., "openai", "claude").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
type ProviderConfig struct {
	APIKey      string
	Model       string
	ImageModel  string
	BaseURL     string
	Temperature float64
}

func (c ProviderConfig) temperature() float64 {
	if c.Temperature == 0 {
		return DefaultTemperature
	}
	return c.Temperature
}

// Registry manages available AI providers and selects the active one.
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
	moderator Moderator // nil when no moderation API is configured
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are skipped.
// A Moderator is configured from the OpenAI and Mistral keys.
func NewRegistry(ctx context.Context, active string, configs map[string]ProviderConfig) (*Registry, error) {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "gemini":
			p, err := newGemini(ctx, cfg)
			if err != nil {
				return nil, err
			}
			r.providers[name] = p
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "mistral":
			r.providers[name] = newMistral(cfg)
		}
	}
	r.moderator = newModerator(configs)

	return r, nil
}

// Complete calls the active provider.
func (r *Registry) Complete(ctx context.Context, messages []Message) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Complete(ctx, messages)
}

// Generate is Complete with a system and a user message.
func (r *Registry) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var msgs []Message
	if systemPrompt != "" {
		msgs = append(msgs, Message{Role: RoleSystem, Content: systemPrompt})
	}
	msgs = append(msgs, Message{Role: RoleUser, Content: userPrompt})
	return r.Complete(ctx, msgs)
}

// Active returns the currently active provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// SetActive switches the active provider at runtime. Returns an error if
// the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the sorted names of all configured providers.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a provider in the registry.
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}
