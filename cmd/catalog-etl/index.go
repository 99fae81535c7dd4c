// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-etl/internal/artifact"
	"github.com/pdiddy/catalog-etl/internal/catalogdb"
)

var indexCmd = &cobra.Command{
	Use:   "index [category...]",
	Short: "Load catalog artifacts into the SQLite index",
	Long: `Index reads the catalog artifacts of the configured release and
replaces each category's rows in the SQLite index. Without arguments
every category is indexed and categories without a catalog are skipped;
a named category without a catalog is an error.`,
	RunE: runIndex,
}

func runIndex(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	keys := args
	explicit := len(keys) > 0
	if !explicit {
		keys = p.Registry.Keys()
	}

	store, err := catalogdb.Open(p.Config.IndexDB)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, key := range keys {
		c, err := p.Registry.Lookup(key)
		if err != nil {
			return err
		}
		catalog, err := p.Writer.ReadCatalog(c.FinalOutputName)
		if err != nil {
			if errors.Is(err, artifact.ErrNotFound) && !explicit {
				fmt.Fprintf(os.Stdout, "skipped  %s: no catalog for release %s\n", key, p.Config.Release)
				continue
			}
			return fmt.Errorf("loading catalog %s: %w", key, err)
		}
		if _, err := store.Ingest(cmd.Context(), c.Key, catalog, os.Stdout); err != nil {
			return fmt.Errorf("indexing %s: %w", key, err)
		}
	}
	return nil
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <id>",
	Short: "Show an indexed catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := catalogdb.Open(pipelineConfig().IndexDB)
		if err != nil {
			return err
		}
		defer store.Close()

		entry, category, err := store.Lookup(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entry)
		}

		fmt.Fprintf(os.Stdout, "%-12s %s\n", "id", entry.ID())
		fmt.Fprintf(os.Stdout, "%-12s %s\n", "category", category)
		for _, path := range []string{"name", "subcategory", "stats.rarity", "stats.weight", "stats.price"} {
			if v, ok := entry.Lookup(path); ok && v != nil {
				fmt.Fprintf(os.Stdout, "%-12s %v\n", path, v)
			}
		}
		return nil
	},
}

func init() {
	lookupCmd.Flags().Bool("json", false, "print the full entry as JSON")

	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(lookupCmd)
}
