// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers of the brand pipeline.
// Handlers decode and validate requests, call the brand service, and
// translate its errors into {error, details} responses.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"normalai/internal/brand"
	"normalai/internal/models"
)

// BrandService is the pipeline the handlers drive.
type BrandService interface {
	CreateIdentity(ctx context.Context, in brand.CreateIdentityInput) (*brand.CreateIdentityResult, error)
	RegenerateName(ctx context.Context, brandID uuid.UUID) (*models.Brand, error)
	GenerateHeroImage(ctx context.Context, in brand.HeroInput) (string, error)
	GenerateLogo(ctx context.Context, in brand.LogoInput) (string, error)
	GenerateMockups(ctx context.Context, in brand.MockupInput) ([]string, error)
	Complete(ctx context.Context, prompt string) (string, error)
	Brand(ctx context.Context, id uuid.UUID) (*models.Brand, error)
	Brain(ctx context.Context, id uuid.UUID) (*models.BrandBrain, error)
	BrandsByOwner(ctx context.Context, ownerID string) ([]models.Brand, error)
	BrainsByOwner(ctx context.Context, ownerID string) ([]models.BrandBrain, error)
	Archetypes() []string
}

// API groups the brand pipeline handlers.
type API struct {
	svc        BrandService
	logger     *slog.Logger
	production bool
}

// NewAPI creates the handler group. In production error details are
// withheld from responses.
func NewAPI(svc BrandService, logger *slog.Logger, production bool) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{svc: svc, logger: logger, production: production}
}

// createIdentityRequest is the body of POST /api/create-brand-identity.
type createIdentityRequest struct {
	UserID         string `json:"user_id"`
	Input          string `json:"input"`
	BrandID        string `json:"brand_id"`
	CreationMethod string `json:"creation_method"`
}

type createIdentityResponse struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	BrandName string    `json:"brand_name,omitempty"`
}

// CreateIdentity handles POST /api/create-brand-identity.
func (a *API) CreateIdentity(w http.ResponseWriter, r *http.Request) {
	var req createIdentityRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := requireFields(fieldLimit{name: "user_id", value: req.UserID}, fieldLimit{name: "input", value: req.Input}); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := validateLengths(fieldLimit{"input", req.Input, maxInputLen}); err != nil {
		a.writeError(w, r, err)
		return
	}
	brandID, err := parseID("brand_id", req.BrandID)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	res, err := a.svc.CreateIdentity(r.Context(), brand.CreateIdentityInput{
		UserID:         req.UserID,
		Input:          req.Input,
		BrandID:        brandID,
		CreationMethod: models.CreationMethod(req.CreationMethod),
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, createIdentityResponse{ID: res.BrainID, BrandID: res.BrandID, BrandName: res.BrandName})
}

// heroRequest is the body of POST /api/generate-hero-image.
type heroRequest struct {
	BrandName           string              `json:"brand_name"`
	ArchetypePrimary    string              `json:"archetype_primary"`
	ArchetypeSecondary  string              `json:"archetype_secondary"`
	ColorPalette        models.ColorPalette `json:"color_palette"`
	PhotoTransformation models.Direction    `json:"photo_transformation"`
	BrainID             string              `json:"brain_id"`
}

// GenerateHeroImage handles POST /api/generate-hero-image.
func (a *API) GenerateHeroImage(w http.ResponseWriter, r *http.Request) {
	var req heroRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	brainID, err := a.checkImageRequest(req.BrainID, req.BrandName, req.ArchetypePrimary, req.ArchetypeSecondary)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	url, err := a.svc.GenerateHeroImage(r.Context(), brand.HeroInput{
		BrainID:             brainID,
		BrandName:           req.BrandName,
		Primary:             req.ArchetypePrimary,
		Secondary:           req.ArchetypeSecondary,
		Palette:             req.ColorPalette,
		PhotoTransformation: req.PhotoTransformation,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "imageUrl": url})
}

// logoRequest is the body of POST /api/generate-logo.
type logoRequest struct {
	BrandName          string              `json:"brand_name"`
	ArchetypePrimary   string              `json:"archetype_primary"`
	ArchetypeSecondary string              `json:"archetype_secondary"`
	ColorPalette       models.ColorPalette `json:"color_palette"`
	LogoDirection      models.Direction    `json:"logo_direction"`
	BrainID            string              `json:"brain_id"`
}

// GenerateLogo handles POST /api/generate-logo.
func (a *API) GenerateLogo(w http.ResponseWriter, r *http.Request) {
	var req logoRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	brainID, err := a.checkImageRequest(req.BrainID, req.BrandName, req.ArchetypePrimary, req.ArchetypeSecondary)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	url, err := a.svc.GenerateLogo(r.Context(), brand.LogoInput{
		BrainID:       brainID,
		BrandName:     req.BrandName,
		Primary:       req.ArchetypePrimary,
		Secondary:     req.ArchetypeSecondary,
		Palette:       req.ColorPalette,
		LogoDirection: req.LogoDirection,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "logoUrl": url})
}

// mockupsRequest is the body of POST /api/generate-mockups.
type mockupsRequest struct {
	BrandName    string              `json:"brand_name"`
	BrandType    string              `json:"brand_type"`
	LogoURL      string              `json:"logo_url"`
	ColorPalette models.ColorPalette `json:"color_palette"`
	BrainID      string              `json:"brain_id"`
}

// GenerateMockups handles POST /api/generate-mockups.
func (a *API) GenerateMockups(w http.ResponseWriter, r *http.Request) {
	var req mockupsRequest
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := validateLengths(
		fieldLimit{"brand_type", req.BrandType, maxBrandTypeLen},
		fieldLimit{"logo_url", req.LogoURL, maxURLLen},
	); err != nil {
		a.writeError(w, r, err)
		return
	}
	brainID, err := a.checkImageRequest(req.BrainID, req.BrandName)
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	urls, err := a.svc.GenerateMockups(r.Context(), brand.MockupInput{
		BrainID:   brainID,
		BrandName: req.BrandName,
		BrandType: req.BrandType,
		LogoURL:   req.LogoURL,
		Palette:   req.ColorPalette,
	})
	if err != nil {
		a.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "mockupUrls": urls})
}

// checkImageRequest validates the fields shared by the image routes and
// parses the brain id.
func (a *API) checkImageRequest(rawBrainID, brandName string, archetypes ...string) (uuid.UUID, error) {
	if err := requireFields(fieldLimit{name: "brand_name", value: brandName}, fieldLimit{name: "brain_id", value: rawBrainID}); err != nil {
		return uuid.Nil, err
	}
	limits := []fieldLimit{{"brand_name", brandName, maxBrandNameLen}}
	for _, name := range archetypes {
		limits = append(limits, fieldLimit{"archetype", name, maxArchetypeLen})
	}
	if err := validateLengths(limits...); err != nil {
		return uuid.Nil, err
	}
	return parseID("brain_id", rawBrainID)
}

// TestCompletion handles POST /api/test-completion.
func (a *API) TestCompletion(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := decode(w, r, &req); err != nil {
		a.writeError(w, r, err)
		return
	}
	if err := validateLengths(fieldLimit{"prompt", req.Prompt, maxPromptLen}); err != nil {
		a.writeError(w, r, err)
		return
	}

	result, err := a.svc.Complete(r.Context(), req.Prompt)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"result": result})
}

// RegenerateName handles POST /api/brands/{id}/regenerate-name.
func (a *API) RegenerateName(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	b, err := a.svc.RegenerateName(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"brand_id": b.ID, "brand_name": b.Name})
}

// GetBrand handles GET /api/brands/{id}.
func (a *API) GetBrand(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	b, err := a.svc.Brand(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// ListBrands handles GET /api/brands?user_id=.
func (a *API) ListBrands(w http.ResponseWriter, r *http.Request) {
	list, err := a.svc.BrandsByOwner(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.Brand{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"brands": list})
}

// GetBrain handles GET /api/brains/{id}.
func (a *API) GetBrain(w http.ResponseWriter, r *http.Request) {
	id, ok := a.pathID(w, r)
	if !ok {
		return
	}
	b, err := a.svc.Brain(r.Context(), id)
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// ListBrains handles GET /api/brains?user_id=.
func (a *API) ListBrains(w http.ResponseWriter, r *http.Request) {
	list, err := a.svc.BrainsByOwner(r.Context(), r.URL.Query().Get("user_id"))
	if err != nil {
		a.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.BrandBrain{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"brains": list})
}

// Archetypes handles GET /api/archetypes.
func (a *API) Archetypes(w http.ResponseWriter, r *http.Request) {
	names := a.svc.Archetypes()
	if names == nil {
		names = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"archetypes": names})
}

// pathID parses the {id} URL parameter, writing the error response itself.
func (a *API) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := parseID("id", raw)
	if err == nil && id == uuid.Nil {
		err = requireFields(fieldLimit{name: "id"})
	}
	if err != nil {
		a.writeError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}
