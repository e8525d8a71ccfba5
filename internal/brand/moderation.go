// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"strings"

	"normalai/internal/apperr"
)

// screen runs text through the moderator. A failed check lets the text
// through; providers apply their own safety filters.
func (s *Service) screen(ctx context.Context, field, text string) error {
	if s.moderator == nil {
		return nil
	}
	res, err := s.moderator.CheckPrompt(ctx, text)
	if err != nil {
		s.log.Warn("moderation check failed, allowing input", "field", field, "error", err)
		return nil
	}
	if res == nil || res.Safe {
		return nil
	}
	s.log.Warn("input flagged by moderation", "field", field, "categories", strings.Join(res.Categories, ", "))
	return apperr.Flagged(field, res.Categories)
}
