// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"normalai/internal/archetype"
	"normalai/internal/config"
)

var archetypesCmd = &cobra.Command{
	Use:   "archetypes [name]",
	Short: "List the archetype catalog or print one reference",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runArchetypes,
}

func init() {
	rootCmd.AddCommand(archetypesCmd)
}

func runArchetypes(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	return printArchetypes(cmd.OutOrStdout(), catalog, args)
}

// printArchetypes writes every name, or the JSON reference for args[0].
func printArchetypes(w io.Writer, catalog *archetype.Catalog, args []string) error {
	if len(args) == 0 {
		for _, name := range catalog.Names() {
			fmt.Fprintln(w, name)
		}
		return nil
	}

	ref, ok := catalog.Lookup(args[0])
	if !ok {
		return fmt.Errorf("archetype %q not found", args[0])
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ref)
}
