// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// SeedOwner owns the development fixture brand.
const SeedOwner = "demo"

// Seed populates the database with a development brand and its brain so the
// read and image endpoints can be exercised without calling the completion
// API. It does nothing when the demo owner already has a brand.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM brands WHERE user_id = $1", SeedOwner).Scan(&count); err != nil {
		return fmt.Errorf("seed check brands: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	brandID := uuid.New()
	brainID := uuid.New()

	_, err := db.Exec(`
		INSERT INTO brands (id, user_id, name, description, creation_method)
		VALUES ($1, $2, $3, $4, $5)
	`, brandID, SeedOwner, "Stillwater",
		"A cozy coffee shop called Stillwater focused on slow mornings", "freestyle")
	if err != nil {
		return fmt.Errorf("seed insert brand: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO brand_brains (id, user_id, brand_id, brand_story, tagline, tone,
		                          voice_traits, primary_archetype, secondary_archetype,
		                          color_palette, font_suggestions, logo_direction,
		                          layout_style, photo_transform, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 'active')
	`, brainID, SeedOwner, brandID,
		"Stillwater began with a single window seat and the belief that mornings deserve patience.",
		"Slow mornings, steady cups",
		"calm, warm, unhurried",
		`["gentle","grounded","inviting"]`,
		"The Caregiver", "The Creator",
		`{"primary":"#1F3A4D","secondary":"#F4EDE4","accent":"#C97B4A","neutral":"#E8E4DE"}`,
		`{"headings":"Canela","body":"Inter"}`,
		`{"style":"minimal","elements":["a single ripple"]}`,
		`"generous whitespace, soft grid"`,
		`{"style":"warm film","mood":"quiet"}`,
	)
	if err != nil {
		return fmt.Errorf("seed insert brain: %w", err)
	}

	slog.Info("database seeded with demo brand",
		"user_id", SeedOwner,
		"brand_id", brandID,
		"brain_id", brainID,
	)
	return nil
}
