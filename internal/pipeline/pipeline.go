// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline runs categories end to end: extraction, template
// inheritance, the extracted snapshot, transformation with overrides and
// the catalog snapshot. Categories run one after another; nothing but the
// read-only lookup tables is shared between them.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/catalog-etl/internal/artifact"
	"github.com/pdiddy/catalog-etl/internal/categories"
	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/inherit"
	"github.com/pdiddy/catalog-etl/internal/tables"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// Pipeline runs categories against one configuration.
type Pipeline struct {
	Config   types.PipelineConfig
	Tables   *tables.Tables
	Registry *categories.Registry
	Writer   artifact.Writer

	now func() time.Time
}

// New returns a pipeline over cfg and the given lookup tables.
func New(cfg types.PipelineConfig, tbl *tables.Tables) *Pipeline {
	return &Pipeline{
		Config:   cfg,
		Tables:   tbl,
		Registry: categories.NewRegistry(tbl),
		Writer:   artifact.Writer{Dir: cfg.OutputDir, Release: cfg.Release},
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Extract runs extraction and inheritance for one category and writes
// the extracted artifact. An unreadable source directory fails the
// category; per-file problems only show up in the statistics.
func (p *Pipeline) Extract(ctx context.Context, key string, w io.Writer) (*artifact.Extracted, error) {
	c, err := p.Registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	dir := p.Config.SourceDir(c.Key, c.SourceDirectory)
	fmt.Fprintf(w, "extracting %s from %s\n", c.Key, dir)

	res, err := extract.Run(ctx, extract.Job{
		Category:  c.Key,
		Directory: dir,
		Nested:    c.Nested,
		Extractor: c.Extractor,
	}, w)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", c.Key, err)
	}

	inh, err := inherit.Resolve(res.Items, c.Extractor.Inheritable(), res.Stats.MissingFields)
	if err != nil {
		return nil, fmt.Errorf("resolving templates for %s: %w", c.Key, err)
	}
	res.Stats.Inheritance = inh

	a := &artifact.Extracted{
		Metadata: artifact.ExtractionMetadata{
			ArtifactID:      artifact.ID(artifact.StageExtracted, c.Key, p.Config.Release),
			Version:         p.Config.Release,
			ExtractedAt:     p.now(),
			ItemType:        c.Key,
			ItemCount:       len(res.Items),
			SourceDirectory: dir,
			ProcessingStats: res.Counts,
			ExtractionStats: res.Stats,
		},
		Items: res.Items,
	}
	path, err := p.Writer.WriteExtracted(c.OutputName, a)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "extracted %d %s items (%d skipped, %d filtered, %d warnings, %d errors)\n",
		len(res.Items), c.Key, res.Counts.Skipped, res.Counts.Filtered, res.Counts.Warnings, res.Counts.Errors)
	if inh != nil && inh.ItemsWithInheritance > 0 {
		fmt.Fprintf(w, "inherited fields for %d items, %d orphaned templates\n", inh.ItemsWithInheritance, len(inh.OrphanedTemplates))
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return a, nil
}

// Transform maps a category's extracted items into its catalog and
// writes the catalog artifact. A nil extracted reads the category's
// extracted artifact of the configured release.
func (p *Pipeline) Transform(ctx context.Context, key string, extracted *artifact.Extracted, w io.Writer) (*artifact.Catalog, error) {
	c, err := p.Registry.Lookup(key)
	if err != nil {
		return nil, err
	}
	if extracted == nil {
		extracted, err = p.Writer.ReadExtracted(c.OutputName)
		if err != nil {
			return nil, fmt.Errorf("loading extracted %s: %w", c.Key, err)
		}
	}

	res, err := transform.Run(ctx, transform.Job{
		Category:    c.Key,
		Transformer: c.Transformer,
		Overrides:   p.Tables.OverridesFor(c.Key),
	}, extracted.Items, w)
	if err != nil {
		return nil, fmt.Errorf("transforming %s: %w", c.Key, err)
	}

	a := &artifact.Catalog{
		Metadata: artifact.TransformationMetadata{
			ArtifactID:          artifact.ID(artifact.StageCatalog, c.Key, p.Config.Release),
			Version:             p.Config.Release,
			TransformedAt:       p.now(),
			ItemType:            c.Key,
			ItemCount:           len(res.Entries),
			ProcessingStats:     res.Counts,
			TransformationStats: res.Stats,
		},
		Items: res.Entries,
	}
	path, err := p.Writer.WriteCatalog(c.FinalOutputName, a)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(w, "wrote %s\n", path)
	return a, nil
}

// Process extracts and transforms one category. When nothing is
// extracted the transformation is skipped and the catalog is nil.
func (p *Pipeline) Process(ctx context.Context, key string, w io.Writer) (*artifact.Catalog, error) {
	extracted, err := p.Extract(ctx, key, w)
	if err != nil {
		return nil, err
	}
	if len(extracted.Items) == 0 {
		fmt.Fprintf(w, "no %s items extracted, skipping transformation\n", key)
		return nil, nil
	}
	return p.Transform(ctx, key, extracted, w)
}
