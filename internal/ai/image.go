// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
)

// Image sizes used by the pipeline.
const (
	SizeSquare = "1024x1024"
	SizeWide   = "1792x1024"
)

// ErrNoImage is returned when the image endpoint answers without a URL.
var ErrNoImage = errors.New("ai: no image returned")

// ImageRequest describes one image to generate.
type ImageRequest struct {
	Prompt string
	Size   string
}

// ImageGenerator is an optional interface that AI providers can implement
// to support image generation. The returned URL is temporary and must be
// downloaded before it expires.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}

// GenerateImage calls the active provider's image generation if supported,
// otherwise the first configured provider that supports it.
func (r *Registry) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	ig, err := r.imageGenerator()
	if err != nil {
		return "", err
	}
	return ig.GenerateImage(ctx, req)
}

// SupportsImageGeneration returns true if any configured provider can
// generate images.
func (r *Registry) SupportsImageGeneration() bool {
	_, err := r.imageGenerator()
	return err == nil
}

func (r *Registry) imageGenerator() (ImageGenerator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if ig, ok := r.providers[r.active].(ImageGenerator); ok {
		return ig, nil
	}
	for _, name := range []string{"openai", "gemini"} {
		if ig, ok := r.providers[name].(ImageGenerator); ok {
			return ig, nil
		}
	}
	for _, p := range r.providers {
		if ig, ok := p.(ImageGenerator); ok {
			return ig, nil
		}
	}
	return nil, fmt.Errorf("ai: no configured provider supports image generation")
}
