// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"normalai/internal/apperr"
)

// Validation limits for request fields.
const (
	maxInputLen     = 5_000
	maxBrandNameLen = 200
	maxBrandTypeLen = 200
	maxArchetypeLen = 100
	maxPromptLen    = 20_000
	maxURLLen       = 2_048
)

// fieldLimit pairs a request field with its maximum rune count.
type fieldLimit struct {
	name  string
	value string
	max   int
}

// validateLengths returns an invalid-input error for the first field that
// exceeds its limit.
func validateLengths(fields ...fieldLimit) error {
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.max {
			return apperr.InvalidInput(f.name, fmt.Errorf("too long (max %d characters)", f.max))
		}
	}
	return nil
}

// requireFields returns a missing-input error naming every blank field.
func requireFields(fields ...fieldLimit) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return apperr.MissingInput(missing...)
	}
	return nil
}
