// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the catalog-etl CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/catalog-etl/internal/pipeline"
	"github.com/pdiddy/catalog-etl/internal/tables"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the catalog-etl CLI.
var rootCmd = &cobra.Command{
	Use:   "catalog-etl",
	Short: "Build the item catalog from game asset exports",
	Long: `catalog-etl turns the game's exported asset files into versioned
catalog files, one per item category (food, holsters, backpacks, keys,
armor, weapons, ammo).

Each category is extracted from its export folder, completed from its
templates, mapped into catalog entries, patched with manual overrides and
written under <output-dir>/<release>/. The extract and transform stages
can also run on their own.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default: ./catalog-etl.yaml or ~/.config/catalog-etl/catalog-etl.yaml)")
	flags.String("source-root", "data/Warfare", "directory holding one export folder per category")
	flags.String("output-dir", "extracted", "base directory for artifacts")
	flags.String("release", "v1", "version tag of the artifacts")
	flags.String("tables-dir", "", "directory with replacement lookup tables (default: embedded tables)")
	flags.String("index-db", "extracted/catalog.db", "path of the SQLite catalog index")

	for key, flag := range map[string]string{
		"source_root": "source-root",
		"output_dir":  "output-dir",
		"release":     "release",
		"tables_dir":  "tables-dir",
		"index_db":    "index-db",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("catalog-etl")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "catalog-etl"))
		}
	}

	viper.SetEnvPrefix("CATALOG_ETL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// pipelineConfig resolves the configuration from flags, environment and
// config file.
func pipelineConfig() types.PipelineConfig {
	return types.PipelineConfig{
		SourceRoot: viper.GetString("source_root"),
		Sources:    viper.GetStringMapString("sources"),
		OutputDir:  viper.GetString("output_dir"),
		Release:    viper.GetString("release"),
		TablesDir:  viper.GetString("tables_dir"),
		IndexDB:    viper.GetString("index_db"),
	}
}

// newPipeline builds a pipeline from the resolved configuration.
func newPipeline() (*pipeline.Pipeline, error) {
	cfg := pipelineConfig()
	tbl, err := tables.Load(cfg.TablesDir)
	if err != nil {
		return nil, fmt.Errorf("loading lookup tables: %w", err)
	}
	return pipeline.New(cfg, tbl), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
