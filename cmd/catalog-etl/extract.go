// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract <category>",
	Short: "Extract one category from its export folder",
	Long: `Extract walks the category's export folder, reads the matching element
of every asset file, fills missing fields from the item templates and
writes the extracted artifact with its statistics.

Files that cannot be read or parsed are recorded and skipped. An
unreadable export folder fails the category.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		_, err = p.Extract(cmd.Context(), args[0], os.Stdout)
		return err
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
