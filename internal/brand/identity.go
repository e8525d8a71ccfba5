// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"normalai/internal/ai"
	"normalai/internal/apperr"
	"normalai/internal/extract"
	"normalai/internal/models"
	"normalai/internal/prompt"
)

// systemPrompt frames every JSON stage.
const systemPrompt = "You are a senior brand strategist. You answer with a single JSON object and nothing else."

// RequiredKeys must be present and non-null in an identity completion.
var RequiredKeys = []string{
	"brand_story",
	"tagline",
	"tone",
	"voice_traits",
	"primary_archetype",
	"secondary_archetype",
	"color_palette",
	"color_palette.primary",
	"color_palette.secondary",
	"color_palette.accent",
	"color_palette.neutral",
	"font_suggestions",
	"font_suggestions.headings",
	"font_suggestions.body",
	"logo_direction",
	"layout_style",
	"photo_transform",
}

// identity is the decoded completion for the identity stages. Free-text
// fields accept the alternate shapes models tend to emit; colours, fonts
// and archetype names must be strings.
type identity struct {
	BrandName          extract.Text           `json:"brand_name"`
	BrandStory         extract.Text           `json:"brand_story"`
	Tagline            extract.Text           `json:"tagline"`
	Tone               extract.Text           `json:"tone"`
	VoiceTraits        extract.List           `json:"voice_traits"`
	PrimaryArchetype   string                 `json:"primary_archetype"`
	SecondaryArchetype string                 `json:"secondary_archetype"`
	ColorPalette       models.ColorPalette    `json:"color_palette"`
	FontSuggestions    models.FontSuggestions `json:"font_suggestions"`
	LogoDirection      models.Direction       `json:"logo_direction"`
	LayoutStyle        models.Direction       `json:"layout_style"`
	PhotoTransform     models.Direction       `json:"photo_transform"`
}

// CreateIdentityInput is a request to derive a brand brain.
type CreateIdentityInput struct {
	UserID         string
	Input          string
	BrandID        uuid.UUID // optional: attach to an existing brand
	CreationMethod models.CreationMethod
}

// CreateIdentityResult identifies the stored brand and brain.
type CreateIdentityResult struct {
	BrainID   uuid.UUID
	BrandID   uuid.UUID
	BrandName string
	Brain     *models.BrandBrain
}

// CreateIdentity derives a brand brain from a description and stores it.
// The brand row is only inserted after the identity has been extracted, so
// a failed completion leaves nothing behind.
func (s *Service) CreateIdentity(ctx context.Context, in CreateIdentityInput) (*CreateIdentityResult, error) {
	userID := strings.TrimSpace(in.UserID)
	description := strings.TrimSpace(in.Input)

	var missing []string
	if userID == "" {
		missing = append(missing, "user_id")
	}
	if description == "" {
		missing = append(missing, "input")
	}
	if len(missing) > 0 {
		return nil, apperr.MissingInput(missing...)
	}

	method := in.CreationMethod
	if method == "" {
		method = models.CreationFreestyle
	}
	if !method.Valid() {
		return nil, apperr.InvalidInput("creation_method", fmt.Errorf("unknown method %q", method))
	}
	if err := s.screen(ctx, "input", description); err != nil {
		return nil, err
	}

	var existing *models.Brand
	if in.BrandID != uuid.Nil {
		b, err := s.brands.FindByID(ctx, in.BrandID)
		if err != nil {
			return nil, apperr.Persistence("Failed to load brand", err)
		}
		if b == nil {
			return nil, apperr.NotFound("Brand", in.BrandID.String())
		}
		existing = b
	}

	stage := prompt.StageIdentity
	pin := prompt.Input{Description: description}
	if s.opts.ArchetypeMatching {
		pair, err := s.matcher.Match(ctx, description)
		if err != nil {
			s.logPipelineError("archetype match failed", err)
			return nil, err
		}
		stage = prompt.StageMatchedIdentity
		pin.Primary, pin.Secondary = pair.Primary.Name, pair.Secondary.Name
		pin.PrimaryRef, pin.SecondaryRef = pair.Primary, pair.Secondary
	}

	text, err := prompt.Build(stage, pin)
	if err != nil {
		return nil, fmt.Errorf("identity prompt: %w", err)
	}

	raw, err := s.completer.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: systemPrompt},
		{Role: ai.RoleUser, Content: text},
	})
	if err != nil {
		s.log.Error("completion failed", "stage", stage, "error", err)
		return nil, apperr.Upstream("Failed to get response from completion API", err)
	}

	var id identity
	if err := extract.Into(raw, &id, RequiredKeys...); err != nil {
		s.logPipelineError("failed to parse brand analysis", err)
		return nil, err
	}
	if s.opts.ArchetypeMatching {
		id.PrimaryArchetype, id.SecondaryArchetype = pin.Primary, pin.Secondary
	}

	brand := existing
	name := strings.TrimSpace(string(id.BrandName))
	if brand == nil {
		brand, err = s.brands.Create(ctx, &models.Brand{
			OwnerID:        userID,
			Name:           name,
			Description:    description,
			CreationMethod: method,
		})
		if err != nil {
			s.log.Error("brand insert failed", "error", err)
			return nil, apperr.Persistence("Failed to create brand", err)
		}
	} else if name != "" && brand.Name == models.DefaultBrandName {
		if _, err := s.brands.UpdateName(ctx, brand.ID, name); err != nil {
			s.log.Warn("brand rename failed", "brand_id", brand.ID, "error", err)
		} else {
			brand.Name = name
		}
	}

	brain, err := s.brains.Create(ctx, &models.BrandBrain{
		OwnerID:            userID,
		BrandID:            brand.ID,
		BrandStory:         string(id.BrandStory),
		Tagline:            string(id.Tagline),
		Tone:               string(id.Tone),
		VoiceTraits:        []string(id.VoiceTraits),
		PrimaryArchetype:   id.PrimaryArchetype,
		SecondaryArchetype: id.SecondaryArchetype,
		ColorPalette:       id.ColorPalette,
		FontSuggestions:    id.FontSuggestions,
		LogoDirection:      id.LogoDirection,
		LayoutStyle:        id.LayoutStyle,
		PhotoTransform:     id.PhotoTransform,
		Status:             models.BrainStatusActive,
	})
	if err != nil {
		s.log.Error("brain insert failed", "brand_id", brand.ID, "error", err)
		return nil, apperr.Persistence("Failed to save brand brain", err)
	}

	s.log.Info("brand brain created",
		"brain_id", brain.ID,
		"brand_id", brand.ID,
		"user_id", userID,
		"matched", s.opts.ArchetypeMatching,
	)
	return &CreateIdentityResult{
		BrainID:   brain.ID,
		BrandID:   brand.ID,
		BrandName: brand.Name,
		Brain:     brain,
	}, nil
}

// RegenerateName asks the completion API for a fresh name for an existing
// brand and stores it.
func (s *Service) RegenerateName(ctx context.Context, brandID uuid.UUID) (*models.Brand, error) {
	b, err := s.brands.FindByID(ctx, brandID)
	if err != nil {
		return nil, apperr.Persistence("Failed to load brand", err)
	}
	if b == nil {
		return nil, apperr.NotFound("Brand", brandID.String())
	}
	if strings.TrimSpace(b.Description) == "" {
		return nil, apperr.MissingInput("description")
	}

	text, err := prompt.Build(prompt.StageName, prompt.Input{Description: b.Description})
	if err != nil {
		return nil, fmt.Errorf("name prompt: %w", err)
	}
	raw, err := s.completer.Complete(ctx, []ai.Message{
		{Role: ai.RoleSystem, Content: systemPrompt},
		{Role: ai.RoleUser, Content: text},
	})
	if err != nil {
		return nil, apperr.Upstream("Failed to get response from completion API", err)
	}

	var out struct {
		BrandName string `json:"brand_name"`
	}
	if err := extract.Into(raw, &out, "brand_name"); err != nil {
		s.logPipelineError("failed to parse brand name", err)
		return nil, err
	}
	name := strings.TrimSpace(out.BrandName)
	if name == "" {
		return nil, apperr.Validation([]string{"brand_name"})
	}

	ok, err := s.brands.UpdateName(ctx, b.ID, name)
	if err != nil {
		return nil, apperr.Persistence("Failed to update brand name", err)
	}
	if !ok {
		return nil, apperr.NotFound("Brand", b.ID.String())
	}
	b.Name = name
	return b, nil
}

// Complete passes a single user prompt straight to the completion API.
func (s *Service) Complete(ctx context.Context, userPrompt string) (string, error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", apperr.MissingInput("prompt")
	}
	if err := s.screen(ctx, "prompt", userPrompt); err != nil {
		return "", err
	}
	out, err := s.completer.Complete(ctx, []ai.Message{{Role: ai.RoleUser, Content: userPrompt}})
	if err != nil {
		return "", apperr.Upstream("Failed to process request", err)
	}
	return out, nil
}

// logPipelineError logs err, including the raw completion for parse
// failures.
func (s *Service) logPipelineError(msg string, err error) {
	var e *apperr.Error
	if errors.As(err, &e) && e.Raw != "" {
		s.log.Error(msg, "error", err, "raw", e.Raw)
		return
	}
	s.log.Error(msg, "error", err)
}
