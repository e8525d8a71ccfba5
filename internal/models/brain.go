// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BrainStatus is the lifecycle state of a brand brain.
type BrainStatus string

const BrainStatusActive BrainStatus = "active"

// ColorPalette always carries exactly these four hex colors.
type ColorPalette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Neutral   string `json:"neutral"`
}

// Colors returns the non-empty palette entries in palette order.
func (p ColorPalette) Colors() []string {
	var out []string
	for _, c := range []string{p.Primary, p.Secondary, p.Accent, p.Neutral} {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// FontSuggestions pairs a heading typeface with a body typeface.
type FontSuggestions struct {
	Headings string `json:"headings"`
	Body     string `json:"body"`
}

// BrandBrain is the structured identity derived from a brand description.
// Asset URLs start empty and are attached by separate generation requests.
type BrandBrain struct {
	ID                 uuid.UUID       `json:"id"`
	OwnerID            string          `json:"owner_id"`
	BrandID            uuid.UUID       `json:"brand_id"`
	BrandStory         string          `json:"brand_story"`
	Tagline            string          `json:"tagline"`
	Tone               string          `json:"tone"`
	VoiceTraits        []string        `json:"voice_traits"`
	PrimaryArchetype   string          `json:"primary_archetype"`
	SecondaryArchetype string          `json:"secondary_archetype"`
	ColorPalette       ColorPalette    `json:"color_palette"`
	FontSuggestions    FontSuggestions `json:"font_suggestions"`
	LogoDirection      Direction       `json:"logo_direction"`
	LayoutStyle        Direction       `json:"layout_style"`
	PhotoTransform     Direction       `json:"photo_transform"`
	HeroImageURL       *string         `json:"hero_image_url,omitempty"`
	LogoURL            *string         `json:"logo_url,omitempty"`
	MockupURLs         []string        `json:"mockup_urls,omitempty"`
	Status             BrainStatus     `json:"status"`
	CreatedAt          time.Time       `json:"created_at"`
}
