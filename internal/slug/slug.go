// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns brand names into object-key-safe fragments.
package slug

import "strings"

// Fallback is used when a name produces an empty slug.
const Fallback = "brand"

// Asset lowercases s and replaces every character outside [a-z0-9] with a
// hyphen, one hyphen per character. Runs are not collapsed, so the length
// in runes is preserved and distinct names stay distinct.
// Example: "Stillwater Co." → "stillwater-co-"
func Asset(s string) string {
	lower := strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			continue
		}
		b.WriteByte('-')
	}
	if b.Len() == 0 {
		return Fallback
	}
	return b.String()
}
