// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"normalai/internal/apperr"
	"normalai/internal/models"
)

const stillwaterReply = "```json\n" + `{
  "brand_name": "Stillwater",
  "brand_story": "Stillwater began as a quiet room in a loud city.",
  "tagline": "Find the still point.",
  "tone": "calm, grounded, unhurried",
  "voice_traits": ["gentle", "wise", "clear"],
  "primary_archetype": "The Sage",
  "secondary_archetype": "The Caregiver",
  "color_palette": {"primary": "#2F4858", "secondary": "#86BBD8", "accent": "#F6AE2D", "neutral": "#F4F1EA"},
  "font_suggestions": {"headings": "Cormorant Garamond", "body": "Inter"},
  "logo_direction": {"style": "minimal", "elements": ["ripple"], "concepts": ["stillness"]},
  "layout_style": "airy single column with generous whitespace",
  "photo_transform": {"style": "soft focus", "filters": ["desaturate"], "mood": "serene"}
}` + "\n```"

func TestCreateIdentity_Stillwater(t *testing.T) {
	h := newHarness(t, Options{})
	h.completer.replies = []string{stillwaterReply}

	res, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{
		UserID: "u1",
		Input:  "A calm meditation app called Stillwater",
	})
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	if res.BrainID == uuid.Nil || res.BrandID == uuid.Nil {
		t.Fatalf("ids: got %+v", res)
	}
	if res.BrandName != "Stillwater" {
		t.Errorf("BrandName: got %q, want Stillwater", res.BrandName)
	}

	brand, _ := h.brands.FindByID(context.Background(), res.BrandID)
	if brand == nil {
		t.Fatal("brand row not stored")
	}
	want := models.Brand{
		ID:             res.BrandID,
		OwnerID:        "u1",
		Name:           "Stillwater",
		Description:    "A calm meditation app called Stillwater",
		CreationMethod: models.CreationFreestyle,
	}
	if diff := cmp.Diff(want, *brand, ignoreCreatedAt()); diff != "" {
		t.Errorf("brand mismatch (-want +got):\n%s", diff)
	}

	brain, _ := h.brains.FindByID(context.Background(), res.BrainID)
	if brain == nil {
		t.Fatal("brain row not stored")
	}
	if brain.BrandID != res.BrandID {
		t.Errorf("brain.BrandID: got %v, want %v", brain.BrandID, res.BrandID)
	}
	if brain.PrimaryArchetype != "The Sage" {
		t.Errorf("PrimaryArchetype: got %q", brain.PrimaryArchetype)
	}
	if brain.Status != models.BrainStatusActive {
		t.Errorf("Status: got %q", brain.Status)
	}
	if brain.ColorPalette.Accent != "#F6AE2D" {
		t.Errorf("palette: got %+v", brain.ColorPalette)
	}
	if got := brain.LayoutStyle.Text(); got != "airy single column with generous whitespace" {
		t.Errorf("LayoutStyle: got %q", got)
	}
	if brain.HeroImageURL != nil || brain.LogoURL != nil || brain.MockupURLs != nil {
		t.Error("asset urls should start empty")
	}

	if !strings.Contains(h.completer.lastUser(0), "A calm meditation app called Stillwater") {
		t.Error("identity prompt should carry the description")
	}
}

func TestCreateIdentity_MalformedOutput(t *testing.T) {
	h := newHarness(t, Options{})
	h.completer.replies = []string{"Sure! Here's your JSON: {not valid}"}

	_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "a bakery"})
	e, ok := apperr.As(err)
	if !ok {
		t.Fatalf("err: got %v, want *apperr.Error", err)
	}
	if e.Kind != apperr.KindParse {
		t.Errorf("kind: got %v, want parse", e.Kind)
	}
	if e.Message != "Failed to parse brand analysis" {
		t.Errorf("message: got %q", e.Message)
	}
	if apperr.Status(err) != 500 {
		t.Errorf("status: got %d, want 500", apperr.Status(err))
	}
	if e.Raw != "Sure! Here's your JSON: {not valid}" {
		t.Errorf("raw: got %q", e.Raw)
	}
	if len(h.brands.rows) != 0 || len(h.brains.rows) != 0 {
		t.Error("nothing should be persisted on parse failure")
	}
}

func TestCreateIdentity_CommaSeparatedTraits(t *testing.T) {
	h := newHarness(t, Options{})
	reply := strings.Replace(stillwaterReply,
		`"voice_traits": ["gentle", "wise", "clear"]`,
		`"voice_traits": "gentle, wise, clear"`, 1)
	reply = strings.Replace(reply,
		`"tone": "calm, grounded, unhurried"`,
		`"tone": ["calm", "grounded"]`, 1)
	h.completer.replies = []string{reply}

	res, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "a meditation app"})
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	brain, _ := h.brains.FindByID(context.Background(), res.BrainID)
	if brain == nil {
		t.Fatal("brain row not stored")
	}
	if diff := cmp.Diff([]string{"gentle", "wise", "clear"}, brain.VoiceTraits); diff != "" {
		t.Errorf("VoiceTraits mismatch (-want +got):\n%s", diff)
	}
	if brain.Tone != "calm, grounded" {
		t.Errorf("Tone: got %q", brain.Tone)
	}
}

func TestCreateIdentity_WrongPaletteShapeIsParseError(t *testing.T) {
	h := newHarness(t, Options{})
	h.completer.replies = []string{strings.Replace(stillwaterReply,
		`"primary": "#2F4858"`, `"primary": {"hex": "#2F4858"}`, 1)}

	_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "a meditation app"})
	if !apperr.IsKind(err, apperr.KindParse) {
		t.Fatalf("err: got %v, want parse error", err)
	}
	if len(h.brands.rows) != 0 {
		t.Error("nothing should be persisted on parse failure")
	}
}

func TestCreateIdentity_MissingKeys(t *testing.T) {
	h := newHarness(t, Options{})
	h.completer.replies = []string{`{"brand_story":"x","tagline":"y","color_palette":{"primary":"#000"}}`}

	_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "a bakery"})
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindValidation {
		t.Fatalf("err: got %v, want validation error", err)
	}
	for _, key := range []string{"tone", "color_palette.secondary", "font_suggestions.body", "photo_transform"} {
		found := false
		for _, m := range e.Missing {
			if m == key {
				found = true
			}
		}
		if !found {
			t.Errorf("missing keys %v should include %q", e.Missing, key)
		}
	}
	if len(h.brains.rows) != 0 {
		t.Error("no brain should be stored when keys are missing")
	}
}

func TestCreateIdentity_MissingInput(t *testing.T) {
	h := newHarness(t, Options{})

	_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{Input: "  "})
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindMissingInput {
		t.Fatalf("err: got %v, want missing input", err)
	}
	if diff := cmp.Diff([]string{"user_id", "input"}, e.Missing); diff != "" {
		t.Errorf("missing (-want +got):\n%s", diff)
	}
	if len(h.completer.calls) != 0 {
		t.Error("completion API should not be called")
	}
}

func TestCreateIdentity_InvalidCreationMethod(t *testing.T) {
	h := newHarness(t, Options{})

	_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{
		UserID: "u1", Input: "x", CreationMethod: "telepathy",
	})
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("err: got %v, want invalid input", err)
	}
}

func TestCreateIdentity_UpstreamFailure(t *testing.T) {
	h := newHarness(t, Options{})
	cause := errors.New("connection reset")
	h.completer.err = cause

	_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "x"})
	if !apperr.IsKind(err, apperr.KindUpstream) {
		t.Fatalf("err: got %v, want upstream", err)
	}
	if !errors.Is(err, cause) {
		t.Error("upstream error should wrap its cause")
	}
	if apperr.PublicMessage(err) != "Failed to get response from completion API" {
		t.Errorf("message: got %q", apperr.PublicMessage(err))
	}
}

func TestCreateIdentity_PersistenceFailure(t *testing.T) {
	h := newHarness(t, Options{})
	h.completer.replies = []string{stillwaterReply}
	h.brains.err = errors.New("check constraint violated")

	_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "x"})
	if !apperr.IsKind(err, apperr.KindPersistence) {
		t.Fatalf("err: got %v, want persistence", err)
	}
	if apperr.PublicMessage(err) != "Failed to save brand brain" {
		t.Errorf("message: got %q", apperr.PublicMessage(err))
	}
}

func TestCreateIdentity_ExistingBrand(t *testing.T) {
	t.Run("renames default-named brand", func(t *testing.T) {
		h := newHarness(t, Options{})
		h.completer.replies = []string{stillwaterReply}
		b, _ := h.brands.Create(context.Background(), &models.Brand{OwnerID: "u1", Description: "x"})

		res, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "x", BrandID: b.ID})
		if err != nil {
			t.Fatalf("CreateIdentity: %v", err)
		}
		if res.BrandID != b.ID {
			t.Errorf("BrandID: got %v, want %v", res.BrandID, b.ID)
		}
		if res.BrandName != "Stillwater" {
			t.Errorf("BrandName: got %q", res.BrandName)
		}
		if len(h.brands.rows) != 1 {
			t.Errorf("brands: got %d, want 1", len(h.brands.rows))
		}
	})

	t.Run("keeps a chosen name", func(t *testing.T) {
		h := newHarness(t, Options{})
		h.completer.replies = []string{stillwaterReply}
		b, _ := h.brands.Create(context.Background(), &models.Brand{OwnerID: "u1", Name: "Quietude"})

		res, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "x", BrandID: b.ID})
		if err != nil {
			t.Fatalf("CreateIdentity: %v", err)
		}
		if res.BrandName != "Quietude" {
			t.Errorf("BrandName: got %q, want Quietude", res.BrandName)
		}
	})

	t.Run("unknown brand is not found", func(t *testing.T) {
		h := newHarness(t, Options{})

		_, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "x", BrandID: uuid.New()})
		if !apperr.IsKind(err, apperr.KindNotFound) {
			t.Fatalf("err: got %v, want not found", err)
		}
		if len(h.completer.calls) != 0 {
			t.Error("completion API should not be called for an unknown brand")
		}
	})
}

func TestCreateIdentity_ArchetypeMatching(t *testing.T) {
	h := newHarness(t, Options{ArchetypeMatching: true})
	h.completer.replies = []string{`{"primary":"Creator","secondary":"Magician"}`, stillwaterReply}

	res, err := h.svc.CreateIdentity(context.Background(), CreateIdentityInput{UserID: "u1", Input: "A studio for generative art"})
	if err != nil {
		t.Fatalf("CreateIdentity: %v", err)
	}
	if len(h.completer.calls) != 2 {
		t.Fatalf("calls: got %d, want 2", len(h.completer.calls))
	}

	brain, _ := h.brains.FindByID(context.Background(), res.BrainID)
	if brain.PrimaryArchetype != "Creator" || brain.SecondaryArchetype != "Magician" {
		t.Errorf("archetypes: got %q/%q, want matched names", brain.PrimaryArchetype, brain.SecondaryArchetype)
	}
	if !strings.Contains(h.completer.lastUser(1), "Creator") {
		t.Error("identity prompt should name the matched primary archetype")
	}
}

func TestRegenerateName(t *testing.T) {
	h := newHarness(t, Options{})
	b, _ := h.brands.Create(context.Background(), &models.Brand{OwnerID: "u1", Name: "Old", Description: "A calm meditation app"})
	h.completer.replies = []string{"```json\n{\"brand_name\": \"Stillwater\"}\n```"}

	got, err := h.svc.RegenerateName(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("RegenerateName: %v", err)
	}
	if got.Name != "Stillwater" {
		t.Errorf("Name: got %q", got.Name)
	}
	stored, _ := h.brands.FindByID(context.Background(), b.ID)
	if stored.Name != "Stillwater" {
		t.Errorf("stored name: got %q", stored.Name)
	}

	if _, err := h.svc.RegenerateName(context.Background(), uuid.New()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("unknown brand: got %v, want not found", err)
	}
}

func TestComplete(t *testing.T) {
	h := newHarness(t, Options{})
	h.completer.replies = []string{"pong"}

	got, err := h.svc.Complete(context.Background(), "ping")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "pong" {
		t.Errorf("got %q, want pong", got)
	}
	if len(h.completer.calls[0]) != 1 {
		t.Errorf("messages: got %d, want 1", len(h.completer.calls[0]))
	}

	if _, err := h.svc.Complete(context.Background(), ""); !apperr.IsKind(err, apperr.KindMissingInput) {
		t.Errorf("empty prompt: got %v, want missing input", err)
	}

	h.completer.err = errors.New("boom")
	if _, err := h.svc.Complete(context.Background(), "ping"); apperr.PublicMessage(err) != "Failed to process request" {
		t.Errorf("failure message: got %q", apperr.PublicMessage(err))
	}
}

func TestReads(t *testing.T) {
	h := newHarness(t, Options{})
	brainID := h.seedBrain(t)

	if _, err := h.svc.Brain(context.Background(), brainID); err != nil {
		t.Errorf("Brain: %v", err)
	}
	if _, err := h.svc.Brain(context.Background(), uuid.New()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("missing brain: got %v", err)
	}
	if _, err := h.svc.Brand(context.Background(), uuid.New()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("missing brand: got %v", err)
	}
	list, err := h.svc.BrainsByOwner(context.Background(), "u1")
	if err != nil || len(list) != 1 {
		t.Errorf("BrainsByOwner: got %d, %v", len(list), err)
	}
	if _, err := h.svc.BrandsByOwner(context.Background(), " "); !apperr.IsKind(err, apperr.KindMissingInput) {
		t.Errorf("empty owner: got %v", err)
	}
}

func ignoreCreatedAt() cmp.Option {
	return cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().String() == ".CreatedAt"
	}, cmp.Ignore())
}
