// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns a category's folder of dump files into
// ExtractedItems. The engine owns the per-file protocol (skip, parse,
// locate, extract) and its bookkeeping; category rules plug in through
// the Extractor interface.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

var (
	// ErrSourceDirectory is returned when a category's source folder (or
	// one of its subcategory folders) cannot be listed. It is the only
	// error that aborts a category's extraction.
	ErrSourceDirectory = errors.New("source directory unreadable")

	// ErrNoElement marks a file in which no record describes the object.
	ErrNoElement = errors.New("no matching element")
)

// Input is what an extractor sees for one source file.
type Input struct {
	// Element is the record located by FindElement.
	Element source.Record

	// Records is every record of the file, for sibling lookups.
	Records []source.Record

	// FileName is the source file name without its extension.
	FileName string

	// Directory is the name of the folder holding the file.
	Directory string

	// Subcategory is the subfolder name for nested categories, or "".
	// Items that leave their own Subcategory empty receive it.
	Subcategory string
}

// SourceFile returns the file name with its extension.
func (in Input) SourceFile() string {
	return in.FileName + source.Extension
}

// FieldReport accumulates the field bookkeeping of one item. The engine
// folds it into the run's ExtractionStats keyed by the item's file name.
type FieldReport struct {
	Missing  []string
	Defaults []string
}

// MarkMissing records that field was absent from the source.
func (r *FieldReport) MarkMissing(field string) {
	r.Missing = append(r.Missing, field)
}

// MarkDefault records that field received a default value.
func (r *FieldReport) MarkDefault(field string) {
	r.Defaults = append(r.Defaults, field)
}

// Outcome is the result of extracting one file: either an accepted item
// or an intentional filter. Failures are reported as errors instead.
type Outcome struct {
	Item   *types.ExtractedItem
	Report FieldReport
	Reason string
}

// Accept wraps an extracted item and its field report.
func Accept(item *types.ExtractedItem, report FieldReport) Outcome {
	return Outcome{Item: item, Report: report}
}

// Filter marks the file as intentionally excluded.
func Filter(reason string) Outcome {
	return Outcome{Reason: reason}
}

// Filtered reports whether the outcome carries no item.
func (o Outcome) Filtered() bool {
	return o.Item == nil
}

// Extractor holds the extraction rules of one category.
type Extractor interface {
	// SkipFile reports whether a file is excluded by name, before it is read.
	SkipFile(fileName string) bool

	// FindElement locates the record describing the file's object.
	FindElement(records []source.Record, fileName string) (source.Record, bool)

	// Extract builds the item. It returns Filter for objects that are
	// deliberately left out and an error when the record is unusable.
	Extract(in Input) (Outcome, error)

	// Inheritable lists the attributes the inheritance resolver may fill
	// from a template item, in resolution order.
	Inheritable() []string
}

// Job describes one category's extraction.
type Job struct {
	// Category labels output lines.
	Category string

	// Directory is the category's source folder.
	Directory string

	// Nested means Directory holds one level of subcategory folders, each
	// walked in turn.
	Nested bool

	Extractor Extractor
}

// Result is what one extraction run produced.
type Result struct {
	Items  []*types.ExtractedItem
	Counts types.ExtractionCounts
	Stats  types.ExtractionStats
}

// Run extracts every file of the job's directory. Per-file problems are
// printed to w and recorded in the result's stats; only an unreadable
// directory returns an error.
func Run(ctx context.Context, job Job, w io.Writer) (Result, error) {
	res := Result{Stats: types.NewExtractionStats()}

	if !job.Nested {
		if err := runDir(ctx, job, job.Directory, "", &res, w); err != nil {
			return Result{Stats: types.NewExtractionStats()}, err
		}
		return res, nil
	}

	subdirs, err := source.Subdirectories(job.Directory)
	if err != nil {
		return Result{Stats: types.NewExtractionStats()}, fmt.Errorf("%w: %s: %v", ErrSourceDirectory, job.Directory, err)
	}
	for _, sub := range subdirs {
		if err := runDir(ctx, job, filepath.Join(job.Directory, sub), sub, &res, w); err != nil {
			return Result{Stats: types.NewExtractionStats()}, err
		}
	}
	return res, nil
}

func runDir(ctx context.Context, job Job, dir, subcategory string, res *Result, w io.Writer) error {
	files, err := source.JSONFiles(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrSourceDirectory, dir, err)
	}
	res.Counts.Directories++
	res.Counts.FilesFound += len(files)

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		extractFile(job, dir, subcategory, name, res, w)
	}
	return nil
}

// extractFile applies the per-file protocol. Nothing it encounters is
// returned; every outcome lands in res.
func extractFile(job Job, dir, subcategory, name string, res *Result, w io.Writer) {
	fileName := strings.TrimSuffix(name, source.Extension)
	stats := &res.Stats

	if job.Extractor.SkipFile(fileName) {
		res.Counts.Skipped++
		stats.SkippedFiles = append(stats.SkippedFiles, fileName)
		fmt.Fprintf(w, "skipped  %s\n", fileName)
		return
	}

	records, err := source.ReadFile(filepath.Join(dir, name))
	if err != nil {
		recordError(res, fileName, err, w)
		return
	}

	element, ok := job.Extractor.FindElement(records, fileName)
	if !ok || !element.HasProperties() {
		res.Counts.Warnings++
		stats.Warnings = append(stats.Warnings, types.Issue{Item: fileName, Message: ErrNoElement.Error()})
		stats.SkippedFiles = append(stats.SkippedFiles, fileName)
		fmt.Fprintf(w, "warning  %s: %v\n", fileName, ErrNoElement)
		return
	}

	out, err := job.Extractor.Extract(Input{
		Element:     element,
		Records:     records,
		FileName:    fileName,
		Directory:   filepath.Base(dir),
		Subcategory: subcategory,
	})
	if err != nil {
		recordError(res, fileName, err, w)
		return
	}
	if out.Filtered() {
		res.Counts.Filtered++
		stats.FilteredFiles = append(stats.FilteredFiles, fileName)
		if out.Reason != "" {
			fmt.Fprintf(w, "filtered %s: %s\n", fileName, out.Reason)
		} else {
			fmt.Fprintf(w, "filtered %s\n", fileName)
		}
		return
	}

	item := out.Item
	if item.SourceFile == "" {
		item.SourceFile = name
	}
	if item.Directory == "" {
		item.Directory = filepath.Base(dir)
	}
	if item.Subcategory == "" {
		item.Subcategory = subcategory
	}
	for _, f := range out.Report.Missing {
		stats.MissingFields.Add(f, fileName)
	}
	for _, f := range out.Report.Defaults {
		stats.DefaultsApplied.Add(f, fileName)
	}

	res.Items = append(res.Items, item)
	res.Counts.Extracted++
	fmt.Fprintf(w, "extracted %s\n", fileName)
}

func recordError(res *Result, fileName string, err error, w io.Writer) {
	res.Counts.Errors++
	res.Stats.Errors = append(res.Stats.Errors, types.Issue{Item: fileName, Message: err.Error()})
	fmt.Fprintf(w, "failed   %s: %v\n", fileName, err)
}
