// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"normalai/internal/ai"
	"normalai/internal/assets"
	"normalai/internal/brand"
	"normalai/internal/cache"
	"normalai/internal/config"
	"normalai/internal/database"
	"normalai/internal/handlers"
	"normalai/internal/middleware"
	"normalai/internal/router"
	"normalai/internal/storage"
	"normalai/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Bool("seed", false, "Insert the demo brand before serving (development only)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to PostgreSQL and run pending migrations.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		return err
	}
	if seed, _ := cmd.Flags().GetBool("seed"); seed && cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			return err
		}
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	slog.Info("archetype catalog loaded", "count", catalog.Len())

	registry, err := ai.NewRegistry(ctx, cfg.AIProvider, cfg.AIProviders())
	if err != nil {
		return err
	}
	slog.Info("ai providers initialized",
		"active", registry.ActiveName(),
		"available", registry.Available(),
		"images", registry.SupportsImageGeneration(),
	)

	// Object storage is optional; image routes fail cleanly without it.
	objects, err := storage.New(cfg.Storage())
	if err != nil {
		return err
	}
	var relocator brand.Relocator
	if objects != nil {
		if b, ok := objects.(interface{ EnsureBucket(context.Context) error }); ok {
			if err := b.EnsureBucket(ctx); err != nil {
				return err
			}
		}
		relocator = assets.NewRelocator(objects, nil)
		slog.Info("object storage configured", "driver", cfg.StorageDriver, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("object storage not configured, image generation disabled")
	}

	limiter, closeLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLimiter()

	var moderator brand.Moderator
	if cfg.ModerateInput {
		moderator = registry
	}

	svc := brand.NewService(brand.Deps{
		Completer: registry,
		Images:    registry,
		Relocator: relocator,
		Brands:    store.NewBrandStore(db),
		Brains:    store.NewBrainStore(db),
		Catalog:   catalog,
		Moderator: moderator,
		Logger:    slog.Default(),
	}, brand.Options{
		ArchetypeMatching: cfg.ArchetypeMatching,
		MockupConcurrency: cfg.MockupConcurrency,
	})

	r := router.New(router.Deps{
		API:     handlers.NewAPI(svc, slog.Default(), cfg.IsProduction()),
		DB:      db,
		Limiter: limiter,
	})

	// WriteTimeout must cover five sequential image generations.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

// newLimiter picks the Valkey counter when configured, else the in-process
// limiter. A zero rate disables limiting.
func newLimiter(ctx context.Context, cfg *config.Config) (middleware.Limiter, func(), error) {
	if cfg.RateLimitPerMinute == 0 {
		return nil, func() {}, nil
	}
	if cfg.UseValkey() {
		client, err := cache.ConnectValkey(ctx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			return nil, nil, err
		}
		return cache.NewWindowCounter(client, cfg.RateLimitPerMinute, time.Minute), func() { client.Close() }, nil
	}
	rl := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	return rl, rl.Stop, nil
}
