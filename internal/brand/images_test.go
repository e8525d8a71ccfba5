// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"normalai/internal/ai"
	"normalai/internal/apperr"
	"normalai/internal/models"
)

var testPalette = models.ColorPalette{Primary: "#2F4858", Secondary: "#86BBD8", Accent: "#F6AE2D", Neutral: "#F4F1EA"}

func TestGenerateHeroImage(t *testing.T) {
	h := newHarness(t, Options{})
	brainID := h.seedBrain(t)

	url, err := h.svc.GenerateHeroImage(context.Background(), HeroInput{
		BrainID:             brainID,
		BrandName:           "Stillwater",
		Primary:             "Creator",
		Secondary:           "Architect",
		Palette:             testPalette,
		PhotoTransformation: models.TextDirection("soft focus, desaturated"),
	})
	if err != nil {
		t.Fatalf("GenerateHeroImage: %v", err)
	}
	if !strings.HasPrefix(url, "https://cdn.example/hero-images/stillwater-") {
		t.Errorf("url: got %q", url)
	}
	if h.images.reqs[0].Size != ai.SizeWide {
		t.Errorf("size: got %q, want %q", h.images.reqs[0].Size, ai.SizeWide)
	}
	if !strings.Contains(h.images.reqs[0].Prompt, "soft focus, desaturated") {
		t.Error("hero prompt should carry the photo transformation")
	}

	brain, _ := h.brains.FindByID(context.Background(), brainID)
	if brain.HeroImageURL == nil || *brain.HeroImageURL != url {
		t.Errorf("hero_image_url: got %v, want %q", brain.HeroImageURL, url)
	}
}

func TestGenerateLogo(t *testing.T) {
	h := newHarness(t, Options{})
	brainID := h.seedBrain(t)

	url, err := h.svc.GenerateLogo(context.Background(), LogoInput{
		BrainID:       brainID,
		BrandName:     "Stillwater",
		Primary:       "The Sage",
		Palette:       testPalette,
		LogoDirection: models.TextDirection("a single ripple"),
	})
	if err != nil {
		t.Fatalf("GenerateLogo: %v", err)
	}
	if !strings.HasPrefix(url, "https://cdn.example/logos/stillwater-") {
		t.Errorf("url: got %q", url)
	}
	if h.images.reqs[0].Size != ai.SizeSquare {
		t.Errorf("size: got %q", h.images.reqs[0].Size)
	}

	brain, _ := h.brains.FindByID(context.Background(), brainID)
	if brain.LogoURL == nil || *brain.LogoURL != url {
		t.Errorf("logo_url: got %v", brain.LogoURL)
	}
}

func TestImageRoutes_BrainNotFound(t *testing.T) {
	h := newHarness(t, Options{})
	id := uuid.New()

	_, err := h.svc.GenerateHeroImage(context.Background(), HeroInput{BrainID: id, BrandName: "x"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("hero: got %v, want not found", err)
	}
	_, err = h.svc.GenerateLogo(context.Background(), LogoInput{BrainID: id, BrandName: "x"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("logo: got %v, want not found", err)
	}
	_, err = h.svc.GenerateMockups(context.Background(), MockupInput{BrainID: id, BrandName: "x"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("mockups: got %v, want not found", err)
	}
	if len(h.images.reqs) != 0 {
		t.Error("no image should be generated for an unknown brain")
	}
}

func TestImageRoutes_MissingInput(t *testing.T) {
	h := newHarness(t, Options{})

	_, err := h.svc.GenerateHeroImage(context.Background(), HeroInput{})
	e, ok := apperr.As(err)
	if !ok || e.Kind != apperr.KindMissingInput {
		t.Fatalf("err: got %v, want missing input", err)
	}
	if strings.Join(e.Missing, ",") != "brand_name,brain_id" {
		t.Errorf("missing: got %v", e.Missing)
	}
}

func TestGenerateHeroImage_RelocateFailureLeavesRowUntouched(t *testing.T) {
	h := newHarness(t, Options{})
	brainID := h.seedBrain(t)
	h.relocator.err = errors.New("bucket unreachable")

	_, err := h.svc.GenerateHeroImage(context.Background(), HeroInput{BrainID: brainID, BrandName: "Stillwater"})
	if !apperr.IsKind(err, apperr.KindPersistence) {
		t.Fatalf("err: got %v, want persistence", err)
	}
	brain, _ := h.brains.FindByID(context.Background(), brainID)
	if brain.HeroImageURL != nil {
		t.Error("hero_image_url should stay empty when the upload fails")
	}
}

func TestGenerateMockups(t *testing.T) {
	for _, conc := range []int{1, 3} {
		h := newHarness(t, Options{MockupConcurrency: conc})
		brainID := h.seedBrain(t)

		urls, err := h.svc.GenerateMockups(context.Background(), MockupInput{
			BrainID:   brainID,
			BrandName: "Stillwater",
			BrandType: "meditation app",
			LogoURL:   "https://cdn.example/logos/stillwater.png",
			Palette:   testPalette,
		})
		if err != nil {
			t.Fatalf("concurrency %d: GenerateMockups: %v", conc, err)
		}
		if len(urls) != len(models.MockupTypes) {
			t.Fatalf("concurrency %d: got %d urls", conc, len(urls))
		}
		for i, mt := range models.MockupTypes {
			want := "https://cdn.example/mockups/stillwater-" + string(mt) + "-"
			if !strings.HasPrefix(urls[i], want) {
				t.Errorf("concurrency %d: urls[%d] = %q, want prefix %q", conc, i, urls[i], want)
			}
		}

		brain, _ := h.brains.FindByID(context.Background(), brainID)
		if strings.Join(brain.MockupURLs, " ") != strings.Join(urls, " ") {
			t.Errorf("concurrency %d: stored urls differ from returned urls", conc)
		}
	}
}

func TestGenerateMockups_AllOrNothing(t *testing.T) {
	for _, conc := range []int{1, 5} {
		h := newHarness(t, Options{MockupConcurrency: conc})
		brainID := h.seedBrain(t)
		// The stationery scene is the fourth in order.
		h.images.failOn = "letterhead"

		_, err := h.svc.GenerateMockups(context.Background(), MockupInput{
			BrainID: brainID, BrandName: "Stillwater", BrandType: "meditation app", Palette: testPalette,
		})
		if !apperr.IsKind(err, apperr.KindUpstream) {
			t.Fatalf("concurrency %d: err: got %v, want upstream", conc, err)
		}

		brain, _ := h.brains.FindByID(context.Background(), brainID)
		if brain.MockupURLs != nil {
			t.Errorf("concurrency %d: mockup_urls should stay empty, got %v", conc, brain.MockupURLs)
		}
		if left := h.relocator.keys(); len(left) != 0 {
			t.Errorf("concurrency %d: uploaded mockups should be cleaned up, left %v", conc, left)
		}
	}
}
