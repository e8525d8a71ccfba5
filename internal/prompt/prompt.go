// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt builds the natural-language instructions sent to the
// completion and image-generation APIs. Every template is selected by an
// explicit Stage and rendered from plain input data: the same Input always
// yields the same string, and nothing here touches the network.
package prompt

import (
	"fmt"
	"strings"

	"normalai/internal/archetype"
	"normalai/internal/models"
)

// Stage selects which template Build renders.
type Stage string

const (
	// StageIdentity asks for the full brand brain as flat JSON.
	StageIdentity Stage = "identity"
	// StageMatchedIdentity asks for the brand brain constrained to a
	// pre-computed archetype pair and its reference data.
	StageMatchedIdentity Stage = "matched-identity"
	// StageArchetypeMatch asks for {primary, secondary} from a fixed list.
	StageArchetypeMatch Stage = "archetype-match"
	// StageName asks only for {brand_name}.
	StageName Stage = "name"
	// StageHeroImage renders the hero image creative direction.
	StageHeroImage Stage = "hero-image"
	// StageLogoImage renders the flat logo icon direction.
	StageLogoImage Stage = "logo-image"
	// StageMockup renders one photorealistic mockup direction.
	StageMockup Stage = "mockup"
)

// Stages lists every supported stage.
var Stages = []Stage{
	StageIdentity, StageMatchedIdentity, StageArchetypeMatch, StageName,
	StageHeroImage, StageLogoImage, StageMockup,
}

// Input carries everything any template may need. Each stage reads only
// the fields it documents.
type Input struct {
	// Description is the user's free-text brand description.
	Description string
	// BrandName is the brand's display name (image stages).
	BrandName string
	// BrandType describes the business ("restaurant", "tech company").
	BrandType string

	// Archetypes is the list the archetype-match stage must choose from.
	Archetypes []string

	// Primary and Secondary are archetype names; the refs are their
	// catalog records and may be nil when the catalog has no entry.
	Primary      string
	Secondary    string
	PrimaryRef   *archetype.Reference
	SecondaryRef *archetype.Reference

	Palette             models.ColorPalette
	LogoDirection       string
	PhotoTransformation string
	Mockup              models.MockupType
}

// Build renders the template for stage.
func Build(stage Stage, in Input) (string, error) {
	switch stage {
	case StageIdentity:
		if strings.TrimSpace(in.Description) == "" {
			return "", fmt.Errorf("prompt %s: description is required", stage)
		}
		return identity(in), nil
	case StageMatchedIdentity:
		if strings.TrimSpace(in.Description) == "" {
			return "", fmt.Errorf("prompt %s: description is required", stage)
		}
		if in.Primary == "" || in.Secondary == "" {
			return "", fmt.Errorf("prompt %s: archetype pair is required", stage)
		}
		return matchedIdentity(in), nil
	case StageArchetypeMatch:
		if strings.TrimSpace(in.Description) == "" {
			return "", fmt.Errorf("prompt %s: description is required", stage)
		}
		if len(in.Archetypes) < 2 {
			return "", fmt.Errorf("prompt %s: at least two archetypes are required", stage)
		}
		return archetypeMatch(in), nil
	case StageName:
		if strings.TrimSpace(in.Description) == "" {
			return "", fmt.Errorf("prompt %s: description is required", stage)
		}
		return name(in), nil
	case StageHeroImage:
		return heroImage(in), nil
	case StageLogoImage:
		return logoImage(in), nil
	case StageMockup:
		body, ok := mockupScenes[in.Mockup]
		if !ok {
			return "", fmt.Errorf("prompt %s: unknown mockup type %q", stage, in.Mockup)
		}
		return mockup(in, body), nil
	default:
		return "", fmt.Errorf("prompt: unknown stage %q", stage)
	}
}

// jsonOnly closes every JSON stage.
const jsonOnly = "Remember: Return ONLY the JSON object with no markdown formatting, no code fences and no additional text."

// identityShape is the example object shown to the model for both
// identity stages.
const identityShape = `{
  "brand_name": "Lumen",
  "brand_story": "In the heart of digital innovation, a vision emerged...",
  "tagline": "Transform Thoughts into Reality",
  "tone": "confident, warm, and intellectually playful",
  "voice_traits": ["insightful", "clear", "engaging", "authentic"],
  "primary_archetype": "%s",
  "secondary_archetype": "%s",
  "color_palette": {
    "primary": "#2A2A8C",
    "secondary": "#F5F5F5",
    "accent": "#FFB800",
    "neutral": "#EFEFEF"
  },
  "font_suggestions": {
    "headings": "Canela",
    "body": "Neue Montreal"
  },
  "logo_direction": {
    "style": "minimal and geometric",
    "elements": ["abstract neural paths", "interconnected nodes", "flowing lines"],
    "concepts": ["connectivity", "transformation", "clarity"]
  },
  "layout_style": {
    "grid": "modular 12-column system",
    "spacing": "generous whitespace with golden ratio",
    "hierarchy": "clear visual weight progression"
  },
  "photo_transform": {
    "style": "high contrast duotone",
    "filters": ["grain overlay", "subtle vignette", "matte finish"],
    "mood": "contemplative and forward-thinking"
  }
}`

func identity(in Input) string {
	return fmt.Sprintf(`Analyze this brand description and generate a comprehensive brand identity.
Return ONLY a JSON object with no markdown formatting or additional text.
Use this exact structure with creative values (example values shown):

%s

The color_palette must contain exactly the keys primary, secondary, accent and neutral, each a hex color.
If the description names the brand, use that name for brand_name; otherwise invent a short, ownable name.

Brand description to analyze: %s

%s`, fmt.Sprintf(identityShape, "The Creator", "The Sage"), strings.TrimSpace(in.Description), jsonOnly)
}

func matchedIdentity(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this brand description and generate a comprehensive brand identity built on the %s archetype with %s as the secondary archetype.\n", in.Primary, in.Secondary)
	b.WriteString("Return ONLY a JSON object with no markdown formatting or additional text.\n")
	b.WriteString("Use this exact structure with creative values (example values shown):\n\n")
	b.WriteString(fmt.Sprintf(identityShape, in.Primary, in.Secondary))
	b.WriteString("\n\nARCHETYPE GUIDANCE:\n")
	writeReference(&b, "Primary", in.Primary, in.PrimaryRef)
	writeReference(&b, "Secondary", in.Secondary, in.SecondaryRef)
	fmt.Fprintf(&b, "\nUse %q and %q verbatim for primary_archetype and secondary_archetype.\n", in.Primary, in.Secondary)
	b.WriteString("The color_palette must contain exactly the keys primary, secondary, accent and neutral, each a hex color.\n")
	b.WriteString("Let the archetype color bias inform the palette without copying it.\n\n")
	fmt.Fprintf(&b, "Brand description to analyze: %s\n\n", strings.TrimSpace(in.Description))
	b.WriteString(jsonOnly)
	return b.String()
}

func writeReference(b *strings.Builder, label, name string, ref *archetype.Reference) {
	fmt.Fprintf(b, "- %s (%s)", label, name)
	if ref == nil {
		b.WriteString("\n")
		return
	}
	b.WriteString(":\n")
	if ref.ToneFlavor != "" {
		fmt.Fprintf(b, "  - Tone flavor: %s\n", ref.ToneFlavor)
	}
	if len(ref.VoiceTraits) > 0 {
		fmt.Fprintf(b, "  - Voice traits: %s\n", strings.Join(ref.VoiceTraits, ", "))
	}
	if len(ref.ColorBias) > 0 {
		colors := make([]string, 0, len(ref.ColorBias))
		for _, c := range ref.ColorBias {
			colors = append(colors, fmt.Sprintf("%s (%s)", c.Hex, c.Label))
		}
		fmt.Fprintf(b, "  - Color bias: %s\n", strings.Join(colors, ", "))
	}
	if len(ref.FontTendencies) > 0 {
		fmt.Fprintf(b, "  - Font tendencies: %s\n", strings.Join(ref.FontTendencies, ", "))
	}
}

func archetypeMatch(in Input) string {
	return fmt.Sprintf(`Match this brand description to two brand archetypes.
Choose ONLY from this list, and copy each name exactly as written: %s

Return ONLY a JSON object with no markdown formatting or additional text, using this exact structure:
{"primary": "<archetype name>", "secondary": "<archetype name>"}

The primary and secondary archetypes must be different.

Brand description to analyze: %s

%s`, strings.Join(in.Archetypes, ", "), strings.TrimSpace(in.Description), jsonOnly)
}

func name(in Input) string {
	return fmt.Sprintf(`Suggest a name for the brand described below.
If the description already names the brand, return that name unchanged.
Otherwise invent a short, memorable, ownable name of one or two words.

Return ONLY a JSON object with no markdown formatting or additional text, using this exact structure:
{"brand_name": "Lumen"}

Brand description: %s

%s`, strings.TrimSpace(in.Description), jsonOnly)
}
