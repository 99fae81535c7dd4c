// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process <category>",
	Short: "Extract and transform one category",
	Long: `Process runs extract and transform back to back for one category.
When nothing is extracted the transformation is skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		_, err = p.Process(cmd.Context(), args[0], os.Stdout)
		return err
	},
}

var processAllCmd = &cobra.Command{
	Use:   "process-all",
	Short: "Process every category in order",
	Long: `Process-all processes every registered category one after another.
A failing category does not stop the run; the summary at the end lists
each category's outcome and the command exits non-zero if any failed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newPipeline()
		if err != nil {
			return err
		}
		summary, err := p.ProcessAll(cmd.Context(), os.Stdout)
		if err != nil {
			return err
		}
		if summary.HasFailures() {
			return fmt.Errorf("%d category(s) failed", summary.Failed())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(processAllCmd)
}
