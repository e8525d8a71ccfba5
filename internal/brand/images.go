// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"normalai/internal/ai"
	"normalai/internal/apperr"
	"normalai/internal/assets"
	"normalai/internal/models"
	"normalai/internal/prompt"
)

// HeroInput describes a hero image request.
type HeroInput struct {
	BrainID             uuid.UUID
	BrandName           string
	Primary             string
	Secondary           string
	Palette             models.ColorPalette
	PhotoTransformation models.Direction
}

// LogoInput describes a logo request.
type LogoInput struct {
	BrainID       uuid.UUID
	BrandName     string
	Primary       string
	Secondary     string
	Palette       models.ColorPalette
	LogoDirection models.Direction
}

// MockupInput describes a mockup set request.
type MockupInput struct {
	BrainID   uuid.UUID
	BrandName string
	BrandType string
	LogoURL   string
	Palette   models.ColorPalette
}

// GenerateHeroImage renders a wide hero image, stores it, and attaches its
// URL to the brain.
func (s *Service) GenerateHeroImage(ctx context.Context, in HeroInput) (string, error) {
	if err := requireImageFields(in.BrainID, in.BrandName); err != nil {
		return "", err
	}
	if err := s.requireBrain(ctx, in.BrainID); err != nil {
		return "", err
	}

	text, err := prompt.Build(prompt.StageHeroImage, prompt.Input{
		BrandName:           in.BrandName,
		Primary:             in.Primary,
		Secondary:           in.Secondary,
		PrimaryRef:          s.reference(in.Primary),
		SecondaryRef:        s.reference(in.Secondary),
		Palette:             in.Palette,
		PhotoTransformation: in.PhotoTransformation.Text(),
	})
	if err != nil {
		return "", fmt.Errorf("hero prompt: %w", err)
	}

	stored, err := s.render(ctx, text, ai.SizeWide, assets.Asset{Dir: assets.DirHero, Name: in.BrandName}, "hero")
	if err != nil {
		return "", err
	}

	ok, err := s.brains.UpdateHeroImageURL(ctx, in.BrainID, stored.URL)
	if err != nil {
		return "", apperr.Persistence("Failed to update brand brain", err)
	}
	if !ok {
		return "", apperr.NotFound("Brand brain", in.BrainID.String())
	}

	s.log.Info("hero image stored", "brain_id", in.BrainID, "key", stored.Key)
	return stored.URL, nil
}

// GenerateLogo renders a square logo, stores it, and attaches its URL to
// the brain.
func (s *Service) GenerateLogo(ctx context.Context, in LogoInput) (string, error) {
	if err := requireImageFields(in.BrainID, in.BrandName); err != nil {
		return "", err
	}
	if err := s.requireBrain(ctx, in.BrainID); err != nil {
		return "", err
	}

	text, err := prompt.Build(prompt.StageLogoImage, prompt.Input{
		BrandName:     in.BrandName,
		Primary:       in.Primary,
		Secondary:     in.Secondary,
		PrimaryRef:    s.reference(in.Primary),
		SecondaryRef:  s.reference(in.Secondary),
		Palette:       in.Palette,
		LogoDirection: in.LogoDirection.Text(),
	})
	if err != nil {
		return "", fmt.Errorf("logo prompt: %w", err)
	}

	stored, err := s.render(ctx, text, ai.SizeSquare, assets.Asset{Dir: assets.DirLogo, Name: in.BrandName}, "logo")
	if err != nil {
		return "", err
	}

	ok, err := s.brains.UpdateLogoURL(ctx, in.BrainID, stored.URL)
	if err != nil {
		return "", apperr.Persistence("Failed to update brand brain", err)
	}
	if !ok {
		return "", apperr.NotFound("Brand brain", in.BrainID.String())
	}

	s.log.Info("logo stored", "brain_id", in.BrainID, "key", stored.Key)
	return stored.URL, nil
}

// GenerateMockups renders one mockup per models.MockupTypes entry. The
// result is index-aligned with models.MockupTypes. Either all five are
// stored and attached to the brain or none are.
func (s *Service) GenerateMockups(ctx context.Context, in MockupInput) ([]string, error) {
	if err := requireImageFields(in.BrainID, in.BrandName); err != nil {
		return nil, err
	}
	if err := s.requireBrain(ctx, in.BrainID); err != nil {
		return nil, err
	}

	prompts := make([]string, len(models.MockupTypes))
	for i, mt := range models.MockupTypes {
		text, err := prompt.Build(prompt.StageMockup, prompt.Input{
			BrandName: in.BrandName,
			BrandType: in.BrandType,
			Palette:   in.Palette,
			Mockup:    mt,
		})
		if err != nil {
			return nil, fmt.Errorf("mockup prompt: %w", err)
		}
		prompts[i] = text
	}

	stored := make([]assets.Stored, len(models.MockupTypes))
	one := func(ctx context.Context, i int) error {
		mt := models.MockupTypes[i]
		st, err := s.render(ctx, prompts[i], ai.SizeSquare,
			assets.Asset{Dir: assets.DirMockup, Name: in.BrandName, Variant: string(mt)}, string(mt)+" mockup")
		if err != nil {
			return err
		}
		stored[i] = st
		return nil
	}

	var err error
	if s.opts.MockupConcurrency > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.opts.MockupConcurrency)
		for i := range models.MockupTypes {
			g.Go(func() error { return one(gctx, i) })
		}
		err = g.Wait()
	} else {
		for i := range models.MockupTypes {
			if err = one(ctx, i); err != nil {
				break
			}
		}
	}
	if err != nil {
		s.discard(ctx, stored)
		return nil, err
	}

	urls := make([]string, len(stored))
	for i, st := range stored {
		urls[i] = st.URL
	}

	ok, uerr := s.brains.UpdateMockupURLs(ctx, in.BrainID, urls)
	if uerr != nil || !ok {
		s.discard(ctx, stored)
		if uerr != nil {
			return nil, apperr.Persistence("Failed to update brand brain", uerr)
		}
		return nil, apperr.NotFound("Brand brain", in.BrainID.String())
	}

	s.log.Info("mockups stored", "brain_id", in.BrainID, "count", len(urls), "logo_url", in.LogoURL)
	return urls, nil
}

// render generates one image and relocates it into object storage.
func (s *Service) render(ctx context.Context, text, size string, a assets.Asset, what string) (assets.Stored, error) {
	if s.images == nil {
		return assets.Stored{}, apperr.Upstream("Image generation is not configured", nil)
	}
	if s.relocator == nil {
		return assets.Stored{}, apperr.Persistence("Object storage is not configured", nil)
	}

	tmp, err := s.images.GenerateImage(ctx, ai.ImageRequest{Prompt: text, Size: size})
	if err != nil {
		s.log.Error("image generation failed", "asset", what, "error", err)
		return assets.Stored{}, apperr.Upstream(fmt.Sprintf("Failed to generate %s image", what), err)
	}

	stored, err := s.relocator.Relocate(ctx, tmp, a)
	if err != nil {
		s.log.Error("image relocation failed", "asset", what, "error", err)
		return assets.Stored{}, apperr.Persistence(fmt.Sprintf("Failed to store %s image", what), err)
	}
	return stored, nil
}

// discard deletes already uploaded objects. Failures are logged only.
func (s *Service) discard(ctx context.Context, stored []assets.Stored) {
	ctx = context.WithoutCancel(ctx)
	for _, st := range stored {
		if st.Key == "" {
			continue
		}
		if err := s.relocator.Delete(ctx, st.Key); err != nil {
			s.log.Warn("orphaned asset cleanup failed", "key", st.Key, "error", err)
		}
	}
}

// requireBrain returns NotFound when id has no brain row.
func (s *Service) requireBrain(ctx context.Context, id uuid.UUID) error {
	ok, err := s.brains.Exists(ctx, id)
	if err != nil {
		return apperr.Persistence("Failed to load brand brain", err)
	}
	if !ok {
		return apperr.NotFound("Brand brain", id.String())
	}
	return nil
}

func requireImageFields(brainID uuid.UUID, brandName string) error {
	var missing []string
	if strings.TrimSpace(brandName) == "" {
		missing = append(missing, "brand_name")
	}
	if brainID == uuid.Nil {
		missing = append(missing, "brain_id")
	}
	if len(missing) > 0 {
		return apperr.MissingInput(missing...)
	}
	return nil
}
