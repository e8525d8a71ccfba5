// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"normalai/internal/config"
	"normalai/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(database.Migrate)
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(database.Down)
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the status of every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(database.Status)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the demo brand and brand brain",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(db *sql.DB) error {
			if err := database.Migrate(db); err != nil {
				return err
			}
			return database.Seed(db)
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd, seedCmd)
}

// withDB opens the configured database, runs fn and closes it.
func withDB(fn func(*sql.DB) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}
