// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/catalog-etl/internal/categories"
	"github.com/pdiddy/catalog-etl/internal/tables"
)

var listTypesCmd = &cobra.Command{
	Use:   "list-types",
	Short: "List the item categories in processing order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig()
		tbl, err := tables.Load(cfg.TablesDir)
		if err != nil {
			return fmt.Errorf("loading lookup tables: %w", err)
		}
		reg := categories.NewRegistry(tbl)

		fmt.Fprintf(os.Stdout, "%-10s  %-10s  %-6s  %-40s  %s\n", "Category", "Name", "Nested", "Source", "Catalog")
		fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
		for _, c := range reg.All() {
			nested := "no"
			if c.Nested {
				nested = "yes"
			}
			fmt.Fprintf(os.Stdout, "%-10s  %-10s  %-6s  %-40s  %s\n",
				c.Key, c.Category, nested, cfg.SourceDir(c.Key, c.SourceDirectory), c.FinalOutputName+".json")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listTypesCmd)
}
