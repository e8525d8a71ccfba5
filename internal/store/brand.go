// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the persistence gateway for brands and brand
// brains on PostgreSQL. Finders return (nil, nil) when no row matches.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"normalai/internal/models"
)

// BrandStore handles all brand-related database operations.
type BrandStore struct {
	db *sql.DB
}

// NewBrandStore creates a new BrandStore with the given database connection.
func NewBrandStore(db *sql.DB) *BrandStore {
	return &BrandStore{db: db}
}

const brandColumns = `id, user_id, name, description, creation_method, created_at`

func scanBrand(row interface{ Scan(...any) error }) (*models.Brand, error) {
	b := &models.Brand{}
	if err := row.Scan(&b.ID, &b.OwnerID, &b.Name, &b.Description, &b.CreationMethod, &b.CreatedAt); err != nil {
		return nil, err
	}
	return b, nil
}

// Create inserts a brand and returns it with its creation time. A nil ID
// is replaced with a fresh one; an empty name becomes "New Brand".
func (s *BrandStore) Create(ctx context.Context, b *models.Brand) (*models.Brand, error) {
	id := b.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	name := b.Name
	if name == "" {
		name = models.DefaultBrandName
	}
	method := b.CreationMethod
	if method == "" {
		method = models.CreationFreestyle
	}

	out, err := scanBrand(s.db.QueryRowContext(ctx, `
		INSERT INTO brands (id, user_id, name, description, creation_method)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+brandColumns,
		id, b.OwnerID, name, b.Description, method,
	))
	if err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return out, nil
}

// FindByID retrieves a brand by its UUID. Returns nil if not found.
func (s *BrandStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	b, err := scanBrand(s.db.QueryRowContext(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find brand by id: %w", err)
	}
	return b, nil
}

// ListByOwner returns the owner's brands, newest first.
func (s *BrandStore) ListByOwner(ctx context.Context, ownerID string) ([]models.Brand, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+brandColumns+`
		FROM brands
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var items []models.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// UpdateName changes a brand's display name. Returns false if no brand
// has the given ID.
func (s *BrandStore) UpdateName(ctx context.Context, id uuid.UUID, name string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `UPDATE brands SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return false, fmt.Errorf("update brand name: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update brand name rows: %w", err)
	}
	return n > 0, nil
}
