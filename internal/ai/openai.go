// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Defaults for the OpenAI provider.
const (
	DefaultOpenAIModel      = "gpt-4-turbo-preview"
	DefaultOpenAIImageModel = "dall-e-3"
)

// openAIProvider implements Provider and ImageGenerator on the OpenAI
// chat completions and image generation endpoints.
type openAIProvider struct {
	config ProviderConfig
	client openai.Client
}

// newOpenAI creates a new OpenAI provider. The SDK's automatic retries are
// disabled so a failed call surfaces immediately.
func newOpenAI(cfg ProviderConfig) *openAIProvider {
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	if cfg.ImageModel == "" {
		cfg.ImageModel = DefaultOpenAIImageModel
	}

	return &openAIProvider{
		config: cfg,
		client: sdkClient(cfg.APIKey, cfg.BaseURL),
	}
}

// sdkClient builds an openai-go client for any OpenAI-compatible endpoint.
func sdkClient(apiKey, baseURL string) openai.Client {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return openai.NewClient(opts...)
}

func (p *openAIProvider) Name() string { return "openai" }

// Complete sends a chat completion request and returns the first choice.
func (p *openAIProvider) Complete(ctx context.Context, messages []Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(p.config.Model),
		Messages:    toOpenAIMessages(messages),
		Temperature: openai.Float(p.config.temperature()),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	content := resp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", ErrEmptyResponse
	}
	return content, nil
}

func toOpenAIMessages(messages []Message) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case RoleSystem:
			out = append(out, openai.SystemMessage(m.Content))
		case RoleAssistant:
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}

// GenerateImage asks the image endpoint for one HD natural-style image and
// returns its temporary URL.
func (p *openAIProvider) GenerateImage(ctx context.Context, req ImageRequest) (string, error) {
	size := req.Size
	if size == "" {
		size = SizeSquare
	}

	params := openai.ImageGenerateParams{
		Prompt:         req.Prompt,
		Model:          openai.ImageModel(p.config.ImageModel),
		N:              openai.Int(1),
		Size:           openai.ImageGenerateParamsSize(size),
		Quality:        openai.ImageGenerateParamsQuality("hd"),
		Style:          openai.ImageGenerateParamsStyle("natural"),
		ResponseFormat: openai.ImageGenerateParamsResponseFormat("url"),
	}

	resp, err := p.client.Images.Generate(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai image: %w", err)
	}
	if len(resp.Data) == 0 || resp.Data[0].URL == "" {
		return "", ErrNoImage
	}
	return resp.Data[0].URL, nil
}
