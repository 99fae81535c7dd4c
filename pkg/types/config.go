// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "path/filepath"

// PipelineConfig holds the settings shared by every pipeline stage.
type PipelineConfig struct {
	// SourceRoot is the directory holding one export folder per category
	// (e.g. "data/Warfare").
	SourceRoot string `json:"source_root" yaml:"source_root"`

	// Sources overrides the default folder of a category, keyed by
	// category key. Relative values are resolved against SourceRoot.
	Sources map[string]string `json:"sources,omitempty" yaml:"sources,omitempty"`

	// OutputDir is the base directory for artifacts; each release writes
	// into OutputDir/<release>/.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Release is the version tag stamped on artifacts (e.g. "v1").
	Release string `json:"release" yaml:"release"`

	// TablesDir optionally replaces the embedded lookup tables with YAML
	// files of the same name. Empty means embedded tables only.
	TablesDir string `json:"tables_dir,omitempty" yaml:"tables_dir,omitempty"`

	// IndexDB is the path of the SQLite catalog index.
	IndexDB string `json:"index_db" yaml:"index_db"`
}

// SourceDir returns the source directory for a category. A configured
// override wins over def; relative paths are joined onto SourceRoot.
func (c PipelineConfig) SourceDir(key, def string) string {
	dir := def
	if v, ok := c.Sources[key]; ok && v != "" {
		dir = v
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.SourceRoot, dir)
}
