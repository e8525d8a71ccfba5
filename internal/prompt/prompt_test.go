// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"strings"
	"testing"

	"normalai/internal/archetype"
	"normalai/internal/models"
)

var stillwater = models.ColorPalette{
	Primary:   "#1F3A4D",
	Secondary: "#F4EDE4",
	Accent:    "#C97B4A",
	Neutral:   "#E8E4DE",
}

func TestBuild_Deterministic(t *testing.T) {
	in := Input{
		Description: "A cozy coffee shop called Stillwater focused on slow mornings",
		Archetypes:  []string{"Creator", "Sage", "Magician"},
		Primary:     "Creator",
		Secondary:   "Sage",
		BrandName:   "Stillwater",
		BrandType:   "coffee shop",
		Palette:     stillwater,
		Mockup:      models.MockupStorefront,
	}
	for _, stage := range Stages {
		a, err := Build(stage, in)
		if err != nil {
			t.Fatalf("Build(%s): %v", stage, err)
		}
		b, _ := Build(stage, in)
		if a != b {
			t.Errorf("Build(%s) is not deterministic", stage)
		}
		if a == "" {
			t.Errorf("Build(%s) returned empty prompt", stage)
		}
	}
}

func TestBuild_JSONStagesForbidProse(t *testing.T) {
	in := Input{
		Description: "A cozy coffee shop called Stillwater",
		Archetypes:  []string{"Creator", "Sage"},
		Primary:     "Creator",
		Secondary:   "Sage",
	}
	for _, stage := range []Stage{StageIdentity, StageMatchedIdentity, StageArchetypeMatch, StageName} {
		got, err := Build(stage, in)
		if err != nil {
			t.Fatalf("Build(%s): %v", stage, err)
		}
		if !strings.Contains(got, "ONLY") || !strings.Contains(got, "no markdown") {
			t.Errorf("%s prompt must demand bare JSON:\n%s", stage, got)
		}
		if !strings.Contains(got, in.Description) {
			t.Errorf("%s prompt must embed the description", stage)
		}
	}
}

func TestBuild_IdentityListsRequiredKeys(t *testing.T) {
	got, err := Build(StageIdentity, Input{Description: "tea house"})
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{
		"brand_story", "tagline", "tone", "voice_traits", "primary_archetype",
		"secondary_archetype", "color_palette", "font_suggestions",
		"logo_direction", "layout_style", "photo_transform", "brand_name",
	} {
		if !strings.Contains(got, `"`+key+`"`) {
			t.Errorf("identity prompt is missing key %q", key)
		}
	}
}

func TestBuild_MatchedIdentityEmbedsReferences(t *testing.T) {
	ref := &archetype.Reference{
		Name:        "Creator",
		ToneFlavor:  "imaginative",
		VoiceTraits: []string{"expressive", "curious"},
		ColorBias:   []archetype.ColorBias{{Hex: "#FF6B35", Label: "spark orange"}},
	}
	got, err := Build(StageMatchedIdentity, Input{
		Description: "pottery studio",
		Primary:     "Creator",
		Secondary:   "Sage",
		PrimaryRef:  ref,
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"imaginative", "expressive, curious", "#FF6B35 (spark orange)", `"Creator"`, `"Sage"`} {
		if !strings.Contains(got, want) {
			t.Errorf("matched identity prompt is missing %q", want)
		}
	}
}

func TestBuild_ArchetypeMatchListsChoices(t *testing.T) {
	got, err := Build(StageArchetypeMatch, Input{
		Description: "pottery studio",
		Archetypes:  []string{"Architect", "Creator", "Magician"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Architect, Creator, Magician") {
		t.Errorf("match prompt should list archetypes:\n%s", got)
	}
	if !strings.Contains(got, `"primary"`) || !strings.Contains(got, `"secondary"`) {
		t.Error("match prompt should show the result shape")
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stage Stage
		in    Input
	}{
		{"identity without description", StageIdentity, Input{Description: "  "}},
		{"matched without pair", StageMatchedIdentity, Input{Description: "x", Primary: "Creator"}},
		{"match with one archetype", StageArchetypeMatch, Input{Description: "x", Archetypes: []string{"Creator"}}},
		{"name without description", StageName, Input{}},
		{"unknown mockup", StageMockup, Input{Mockup: "poster"}},
		{"unknown stage", Stage("poem"), Input{Description: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Build(tt.stage, tt.in); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestMetaphor(t *testing.T) {
	tests := []struct {
		name, suffix, want string
	}{
		{"The Creator", "space", "artisan's workshop, creative sanctuary"},
		{"sage", "realm", "timeless library, wisdom temple"},
		{"Explorer", "space", "explorer space"},
		{"The Jester", "realm", "jester realm"},
	}
	for _, tt := range tests {
		if got := Metaphor(tt.name, tt.suffix); got != tt.want {
			t.Errorf("Metaphor(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestHeroImage(t *testing.T) {
	primary := &archetype.Reference{
		LayoutPreferences: []string{"asymmetric grid"},
		MoodboardTags:     []string{"raw clay", "linen"},
		PhotoTransforms:   []string{"warm film grain", "soft focus"},
	}
	secondary := &archetype.Reference{
		LayoutPreferences: []string{"centered axis", "wide margins"},
		MoodboardTags:     []string{"old paper", "brass"},
	}

	got, err := Build(StageHeroImage, Input{
		Primary:             "The Creator",
		Secondary:           "Explorer",
		PrimaryRef:          primary,
		SecondaryRef:        secondary,
		Palette:             stillwater,
		PhotoTransformation: "muted morning light",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"artisan's workshop, creative sanctuary",
		"explorer realm",
		"#1F3A4D, #F4EDE4, #C97B4A, #E8E4DE",
		"Layout preference: asymmetric grid, centered axis",
		"Materials to feature: raw clay, linen, old paper",
		"Visual treatment: warm film grain\n",
		"Photo transformation: muted morning light",
		"1792x1024",
		"copyrighted",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("hero prompt is missing %q:\n%s", want, got)
		}
	}
}

func TestHeroImage_Defaults(t *testing.T) {
	got, err := Build(StageHeroImage, Input{})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"artisan's workshop, creative sanctuary",
		"geometric sanctuary, structured harmony",
		"Use harmonious colors as your primary palette",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("hero prompt is missing %q", want)
		}
	}
	if strings.Contains(got, "Layout preference") {
		t.Error("no references means no layout line")
	}
}

func TestLogoColors(t *testing.T) {
	tests := []struct {
		name     string
		palette  models.ColorPalette
		bg, icon string
	}{
		{"dark primary", models.ColorPalette{Primary: "#1F3A4D", Accent: "#C97B4A"}, "#1F3A4D", "#FFFFFF"},
		{"white primary uses accent", models.ColorPalette{Primary: "#FFFFFF", Accent: "#C97B4A"}, "#FFFFFF", "#C97B4A"},
		{"white-ish lowercase", models.ColorPalette{Primary: "#fff8f0"}, "#fff8f0", "#000000"},
		{"empty primary", models.ColorPalette{}, "#000000", "#FFFFFF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg, icon := LogoColors(tt.palette)
			if bg != tt.bg || icon != tt.icon {
				t.Errorf("LogoColors = (%s, %s), want (%s, %s)", bg, icon, tt.bg, tt.icon)
			}
		})
	}
}

func TestLogoImage(t *testing.T) {
	got, err := Build(StageLogoImage, Input{
		BrandName:     "Stillwater",
		Palette:       stillwater,
		LogoDirection: "a single ripple",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"Stillwater"`,
		"solid #1F3A4D color",
		"Icon: solid #FFFFFF",
		"a single ripple",
		"No text, no letters",
		"copyrighted",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("logo prompt is missing %q", want)
		}
	}
}

func TestMockup_AllTypes(t *testing.T) {
	for _, mt := range models.MockupTypes {
		t.Run(string(mt), func(t *testing.T) {
			got, err := Build(StageMockup, Input{
				BrandName: "Stillwater",
				BrandType: "coffee shop",
				Palette:   stillwater,
				Mockup:    mt,
			})
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(got, `"Stillwater"`) {
				t.Error("mockup prompt should name the brand")
			}
			if !strings.Contains(got, "PHOTOREALISTIC") {
				t.Error("mockup prompt should demand photorealism")
			}
			if strings.Contains(got, "%!") {
				t.Errorf("bad format verb in mockup prompt:\n%s", got)
			}
		})
	}
}

func TestMockup_BrandTypeFallback(t *testing.T) {
	got, err := Build(StageMockup, Input{BrandName: "Stillwater", Mockup: models.MockupProduct})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "makes sense for a modern brand") {
		t.Errorf("expected brand type fallback:\n%s", got)
	}
}
