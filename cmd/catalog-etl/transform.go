// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var transformCmd = &cobra.Command{
	Use:   "transform <category>",
	Short: "Transform an extracted artifact into the category's catalog",
	Long: `Transform reads the category's extracted artifact of the configured
release, maps every item into a catalog entry, applies the manual
overrides and writes the catalog artifact.

Entries missing a required attribute are kept and reported as
validation warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		_, err = p.Transform(cmd.Context(), args[0], nil, os.Stdout)
		return err
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)
}
