// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package brand runs the brand-brain pipeline: it turns a free-text brand
// description into a structured identity, persists it, and attaches
// generated hero, logo and mockup images. Every collaborator is injected
// through a small interface so the pipeline can be exercised without
// network or database access.
package brand

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"normalai/internal/ai"
	"normalai/internal/archetype"
	"normalai/internal/assets"
	"normalai/internal/models"
)

// Completer sends a conversation to the completion API.
type Completer interface {
	Complete(ctx context.Context, messages []ai.Message) (string, error)
}

// ImageGenerator returns a temporary URL for a generated image.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ai.ImageRequest) (string, error)
}

// Relocator copies a temporary image into object storage.
type Relocator interface {
	Relocate(ctx context.Context, src string, a assets.Asset) (assets.Stored, error)
	Delete(ctx context.Context, key string) error
}

// BrandRepository persists brands.
type BrandRepository interface {
	Create(ctx context.Context, b *models.Brand) (*models.Brand, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Brand, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (bool, error)
}

// BrainRepository persists brand brains.
type BrainRepository interface {
	Create(ctx context.Context, b *models.BrandBrain) (*models.BrandBrain, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.BrandBrain, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.BrandBrain, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateHeroImageURL(ctx context.Context, id uuid.UUID, url string) (bool, error)
	UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) (bool, error)
	UpdateMockupURLs(ctx context.Context, id uuid.UUID, urls []string) (bool, error)
}

// Moderator screens user text before it reaches a paid completion.
type Moderator interface {
	CheckPrompt(ctx context.Context, text string) (*ai.ModerationResult, error)
}

// Catalog is the read-only archetype reference set.
type Catalog interface {
	Lookup(name string) (*archetype.Reference, bool)
	Exact(name string) (*archetype.Reference, bool)
	Names() []string
}

// Deps bundles the collaborators a Service needs.
type Deps struct {
	Completer Completer
	Images    ImageGenerator
	Relocator Relocator
	Brands    BrandRepository
	Brains    BrainRepository
	Catalog   Catalog
	Moderator Moderator // optional
	Logger    *slog.Logger
}

// Options tune optional pipeline behaviour.
type Options struct {
	// ArchetypeMatching picks the archetype pair from the catalog before
	// writing the identity.
	ArchetypeMatching bool
	// MockupConcurrency bounds parallel mockup generation. Values below 2
	// generate mockups one after another.
	MockupConcurrency int
}

// Service runs the brand pipeline.
type Service struct {
	completer Completer
	images    ImageGenerator
	relocator Relocator
	brands    BrandRepository
	brains    BrainRepository
	catalog   Catalog
	moderator Moderator
	matcher   *Matcher
	opts      Options
	log       *slog.Logger
}

// NewService wires a Service from its dependencies.
func NewService(deps Deps, opts Options) *Service {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		completer: deps.Completer,
		images:    deps.Images,
		relocator: deps.Relocator,
		brands:    deps.Brands,
		brains:    deps.Brains,
		catalog:   deps.Catalog,
		moderator: deps.Moderator,
		matcher:   NewMatcher(deps.Completer, deps.Catalog),
		opts:      opts,
		log:       logger,
	}
}

// Archetypes returns the names of every archetype in the catalog.
func (s *Service) Archetypes() []string {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Names()
}

// reference looks an archetype up loosely and logs when it is absent.
func (s *Service) reference(name string) *archetype.Reference {
	if name == "" || s.catalog == nil {
		return nil
	}
	ref, ok := s.catalog.Lookup(name)
	if !ok {
		s.log.Warn("archetype reference not found", "archetype", name)
		return nil
	}
	return ref
}
