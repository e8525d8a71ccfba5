// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"normalai/internal/models"
)

// BrainStore handles all brand brain database operations. JSON-shaped
// fields are stored as JSONB; asset URL columns are updated independently.
type BrainStore struct {
	db *sql.DB
}

// NewBrainStore creates a new BrainStore with the given database connection.
func NewBrainStore(db *sql.DB) *BrainStore {
	return &BrainStore{db: db}
}

const brainColumns = `id, user_id, brand_id, brand_story, tagline, tone, voice_traits,
	primary_archetype, secondary_archetype, color_palette, font_suggestions,
	logo_direction, layout_style, photo_transform, hero_image_url, logo_url,
	mockup_urls, status, created_at`

func scanBrain(row interface{ Scan(...any) error }) (*models.BrandBrain, error) {
	b := &models.BrandBrain{}
	var (
		traits, palette, fonts []byte
		logo, layout, photo    []byte
		mockups                []byte
		heroURL, logoURL       sql.NullString
	)
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.BrandID, &b.BrandStory, &b.Tagline, &b.Tone, &traits,
		&b.PrimaryArchetype, &b.SecondaryArchetype, &palette, &fonts,
		&logo, &layout, &photo, &heroURL, &logoURL,
		&mockups, &b.Status, &b.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalJSON(traits, &b.VoiceTraits); err != nil {
		return nil, fmt.Errorf("decode voice_traits: %w", err)
	}
	if err := unmarshalJSON(palette, &b.ColorPalette); err != nil {
		return nil, fmt.Errorf("decode color_palette: %w", err)
	}
	if err := unmarshalJSON(fonts, &b.FontSuggestions); err != nil {
		return nil, fmt.Errorf("decode font_suggestions: %w", err)
	}
	if err := unmarshalJSON(mockups, &b.MockupURLs); err != nil {
		return nil, fmt.Errorf("decode mockup_urls: %w", err)
	}
	b.LogoDirection = direction(logo)
	b.LayoutStyle = direction(layout)
	b.PhotoTransform = direction(photo)
	if heroURL.Valid {
		b.HeroImageURL = &heroURL.String
	}
	if logoURL.Valid {
		b.LogoURL = &logoURL.String
	}
	return b, nil
}

func unmarshalJSON(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, v)
}

func direction(data []byte) models.Direction {
	if len(data) == 0 {
		return nil
	}
	return models.Direction(append([]byte(nil), data...))
}

// jsonParam encodes v for a JSONB column.
func jsonParam(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// directionParam stores an empty direction as SQL NULL.
func directionParam(d models.Direction) any {
	if d.IsZero() {
		return nil
	}
	return string(d)
}

// Create inserts a brain and returns it as stored.
func (s *BrainStore) Create(ctx context.Context, b *models.BrandBrain) (*models.BrandBrain, error) {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	status := b.Status
	if status == "" {
		status = models.BrainStatusActive
	}

	traits := b.VoiceTraits
	if traits == nil {
		traits = []string{}
	}
	mockups := b.MockupURLs
	if mockups == nil {
		mockups = []string{}
	}

	traitsJSON, err := jsonParam(traits)
	if err != nil {
		return nil, fmt.Errorf("encode voice_traits: %w", err)
	}
	paletteJSON, err := jsonParam(b.ColorPalette)
	if err != nil {
		return nil, fmt.Errorf("encode color_palette: %w", err)
	}
	fontsJSON, err := jsonParam(b.FontSuggestions)
	if err != nil {
		return nil, fmt.Errorf("encode font_suggestions: %w", err)
	}
	mockupsJSON, err := jsonParam(mockups)
	if err != nil {
		return nil, fmt.Errorf("encode mockup_urls: %w", err)
	}

	out, err := scanBrain(s.db.QueryRowContext(ctx, `
		INSERT INTO brand_brains (id, user_id, brand_id, brand_story, tagline, tone,
		                          voice_traits, primary_archetype, secondary_archetype,
		                          color_palette, font_suggestions, logo_direction,
		                          layout_style, photo_transform, hero_image_url,
		                          logo_url, mockup_urls, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING `+brainColumns,
		id, b.OwnerID, b.BrandID, b.BrandStory, b.Tagline, b.Tone,
		traitsJSON, b.PrimaryArchetype, b.SecondaryArchetype,
		paletteJSON, fontsJSON, directionParam(b.LogoDirection),
		directionParam(b.LayoutStyle), directionParam(b.PhotoTransform), b.HeroImageURL,
		b.LogoURL, mockupsJSON, status,
	))
	if err != nil {
		return nil, fmt.Errorf("create brain: %w", err)
	}
	return out, nil
}

// FindByID retrieves a brain by its UUID. Returns nil if not found.
func (s *BrainStore) FindByID(ctx context.Context, id uuid.UUID) (*models.BrandBrain, error) {
	b, err := scanBrain(s.db.QueryRowContext(ctx,
		`SELECT `+brainColumns+` FROM brand_brains WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brain by id: %w", err)
	}
	return b, nil
}

// ListByOwner returns the owner's brains, newest first.
func (s *BrainStore) ListByOwner(ctx context.Context, ownerID string) ([]models.BrandBrain, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+brainColumns+`
		FROM brand_brains
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list brains: %w", err)
	}
	defer rows.Close()

	var items []models.BrandBrain
	for rows.Next() {
		b, err := scanBrain(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brain: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// Exists reports whether a brain with the given ID is stored.
func (s *BrainStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var ok bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM brand_brains WHERE id = $1)`, id).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("brain exists: %w", err)
	}
	return ok, nil
}

// UpdateHeroImageURL sets hero_image_url. Returns false if no row matched.
func (s *BrainStore) UpdateHeroImageURL(ctx context.Context, id uuid.UUID, url string) (bool, error) {
	return s.update(ctx, "hero image url", `UPDATE brand_brains SET hero_image_url = $2 WHERE id = $1`, id, url)
}

// UpdateLogoURL sets logo_url. Returns false if no row matched.
func (s *BrainStore) UpdateLogoURL(ctx context.Context, id uuid.UUID, url string) (bool, error) {
	return s.update(ctx, "logo url", `UPDATE brand_brains SET logo_url = $2 WHERE id = $1`, id, url)
}

// UpdateMockupURLs replaces mockup_urls in a single statement.
func (s *BrainStore) UpdateMockupURLs(ctx context.Context, id uuid.UUID, urls []string) (bool, error) {
	if urls == nil {
		urls = []string{}
	}
	payload, err := jsonParam(urls)
	if err != nil {
		return false, fmt.Errorf("encode mockup_urls: %w", err)
	}
	return s.update(ctx, "mockup urls", `UPDATE brand_brains SET mockup_urls = $2 WHERE id = $1`, id, payload)
}

func (s *BrainStore) update(ctx context.Context, what, query string, id uuid.UUID, value any) (bool, error) {
	res, err := s.db.ExecContext(ctx, query, id, value)
	if err != nil {
		return false, fmt.Errorf("update brain %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update brain %s rows: %w", what, err)
	}
	return n > 0, nil
}
