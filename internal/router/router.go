// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// brand pipeline API. Pipeline routes are served under both their
// kebab-case paths and the camelCase aliases older clients call.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"normalai/internal/handlers"
	"normalai/internal/middleware"
)

// Deps are the collaborators the router wires into routes.
type Deps struct {
	API *handlers.API
	DB  handlers.Pinger
	// Limiter throttles the pipeline POST routes. Nil disables limiting.
	Limiter middleware.Limiter
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	// Health checks, never rate limited.
	r.Get("/health", handlers.Health)
	if d.DB != nil {
		r.Get("/health/ready", handlers.Ready(d.DB))
	}

	api := d.API
	r.Route("/api", func(r chi.Router) {
		// Pipeline routes call the completion and image APIs.
		r.Group(func(r chi.Router) {
			if d.Limiter != nil {
				r.Use(middleware.RateLimit(d.Limiter))
			}
			post(r, api.CreateIdentity, "/create-brand-identity", "/createBrain")
			post(r, api.GenerateHeroImage, "/generate-hero-image", "/generateHeroImage")
			post(r, api.GenerateLogo, "/generate-logo", "/generateLogo")
			post(r, api.GenerateMockups, "/generate-mockups", "/generateMockups")
			post(r, api.TestCompletion, "/test-completion", "/test-gpt")
			r.Post("/brands/{id}/regenerate-name", api.RegenerateName)
		})

		r.Get("/brands", api.ListBrands)
		r.Get("/brands/{id}", api.GetBrand)
		r.Get("/brains", api.ListBrains)
		r.Get("/brains/{id}", api.GetBrain)
		r.Get("/brains/{id}/brandbook", api.GetBrandBook)
		r.Get("/archetypes", api.Archetypes)
	})

	return r
}

// post registers h under every given path.
func post(r chi.Router, h http.HandlerFunc, paths ...string) {
	for _, p := range paths {
		r.Post(p, h)
	}
}
