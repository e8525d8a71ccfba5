// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"fmt"

	"normalai/internal/ai"
	"normalai/internal/apperr"
	"normalai/internal/archetype"
	"normalai/internal/extract"
	"normalai/internal/prompt"
)

// Pair is a matched primary/secondary archetype.
type Pair struct {
	Primary   *archetype.Reference
	Secondary *archetype.Reference
}

// Matcher asks the completion API to choose two archetypes from the
// catalog. Returned names must equal a catalog name byte for byte.
type Matcher struct {
	completer Completer
	catalog   Catalog
}

// NewMatcher creates a matcher over catalog.
func NewMatcher(c Completer, catalog Catalog) *Matcher {
	return &Matcher{completer: c, catalog: catalog}
}

type matchResult struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Match returns the archetype pair for description.
func (m *Matcher) Match(ctx context.Context, description string) (Pair, error) {
	if m.catalog == nil {
		return Pair{}, apperr.NoCatalog()
	}

	text, err := prompt.Build(prompt.StageArchetypeMatch, prompt.Input{
		Description: description,
		Archetypes:  m.catalog.Names(),
	})
	if err != nil {
		return Pair{}, fmt.Errorf("archetype match prompt: %w", err)
	}

	raw, err := m.completer.Complete(ctx, []ai.Message{{Role: ai.RoleUser, Content: text}})
	if err != nil {
		return Pair{}, apperr.Upstream("Failed to get response from completion API", err)
	}

	var res matchResult
	if err := extract.Into(raw, &res, "primary", "secondary"); err != nil {
		return Pair{}, err
	}

	primary, ok := m.catalog.Exact(res.Primary)
	if !ok {
		return Pair{}, apperr.Match(res.Primary)
	}
	secondary, ok := m.catalog.Exact(res.Secondary)
	if !ok {
		return Pair{}, apperr.Match(res.Secondary)
	}
	return Pair{Primary: primary, Secondary: secondary}, nil
}
