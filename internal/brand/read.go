// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"normalai/internal/apperr"
	"normalai/internal/models"
)

// Brand returns one brand by ID.
func (s *Service) Brand(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	b, err := s.brands.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("Failed to load brand", err)
	}
	if b == nil {
		return nil, apperr.NotFound("Brand", id.String())
	}
	return b, nil
}

// Brain returns one brand brain by ID.
func (s *Service) Brain(ctx context.Context, id uuid.UUID) (*models.BrandBrain, error) {
	b, err := s.brains.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Persistence("Failed to load brand brain", err)
	}
	if b == nil {
		return nil, apperr.NotFound("Brand brain", id.String())
	}
	return b, nil
}

// BrandsByOwner lists an owner's brands, newest first.
func (s *Service) BrandsByOwner(ctx context.Context, ownerID string) ([]models.Brand, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperr.MissingInput("user_id")
	}
	list, err := s.brands.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence("Failed to list brands", err)
	}
	return list, nil
}

// BrainsByOwner lists an owner's brand brains, newest first.
func (s *Service) BrainsByOwner(ctx context.Context, ownerID string) ([]models.BrandBrain, error) {
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperr.MissingInput("user_id")
	}
	list, err := s.brains.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence("Failed to list brand brains", err)
	}
	return list, nil
}
