// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"time"

	"github.com/google/uuid"
)

// CreationMethod records how a brand was started by its owner.
type CreationMethod string

const (
	CreationFreestyle CreationMethod = "freestyle"
	CreationGuided    CreationMethod = "guided"
)

// DefaultBrandName is stored until the pipeline derives a real name.
const DefaultBrandName = "New Brand"

// Valid reports whether m is one of the known creation methods.
func (m CreationMethod) Valid() bool {
	return m == CreationFreestyle || m == CreationGuided
}

// Brand is a user's brand concept: the free-text description they typed
// plus a short name. Only the name changes after creation.
type Brand struct {
	ID             uuid.UUID      `json:"id"`
	OwnerID        string         `json:"owner_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	CreationMethod CreationMethod `json:"creation_method"`
	CreatedAt      time.Time      `json:"created_at"`
}
