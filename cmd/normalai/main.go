// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the Normal AI brand pipeline. The
// serve command runs the HTTP API; the remaining commands manage the
// database and inspect the archetype catalog.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"normalai/internal/archetype"
	"normalai/internal/config"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "normalai",
	Short:         "Brand-brain pipeline API",
	Long:          "Normal AI turns a free-text brand description into a structured brand identity with generated hero, logo and mockup images.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the process-wide logger: JSON in production, text
// otherwise.
func setupLogger() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if os.Getenv("APP_ENV") == "production" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// loadCatalog returns the built-in archetypes overlaid by ARCHETYPES_DIR.
func loadCatalog(cfg *config.Config) (*archetype.Catalog, error) {
	return archetype.LoadDir(cfg.ArchetypesDir)
}
