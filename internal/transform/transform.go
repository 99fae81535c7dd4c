// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transform maps extracted items into catalog entries. The
// engine assigns ids, validates required attributes, guards against
// duplicate ids, appends hardcoded entries and applies the manual
// override table; category rules plug in through Transformer.
package transform

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/catalog-etl/pkg/types"
)

var (
	// ErrMissingAttribute marks an entry lacking a required attribute.
	ErrMissingAttribute = errors.New("missing required attribute")

	// ErrDuplicateID marks an entry whose id was already emitted.
	ErrDuplicateID = errors.New("duplicate id")
)

// Mapped is a mapper's output: the entry and the attributes that were
// filled with defaults rather than source values.
type Mapped struct {
	Entry    types.Entry
	Defaults []string
}

// Transformer holds the transformation rules of one category.
type Transformer interface {
	// GenerateID derives the stable catalog id of an item.
	GenerateID(item *types.ExtractedItem) (string, error)

	// MapEntry builds the catalog entry. item.ID is already assigned.
	MapEntry(item *types.ExtractedItem) (Mapped, error)

	// RequiredAttributes lists dotted paths every mapped entry must define.
	RequiredAttributes() []string

	// Hardcoded returns literal entries appended after mapping.
	Hardcoded() []types.Entry
}

// Job describes one category's transformation.
type Job struct {
	Category    string
	Transformer Transformer
	Overrides   types.OverrideTable
}

// Result is what one transformation run produced.
type Result struct {
	Entries []types.Entry
	Counts  types.TransformationCounts
	Stats   types.TransformationStats
}

// Run transforms items in order. An item that fails id generation,
// mapping or validation is dropped and recorded; the run continues.
// Only cancellation returns an error.
func Run(ctx context.Context, job Job, items []*types.ExtractedItem, w io.Writer) (Result, error) {
	res := Result{Stats: types.NewTransformationStats()}
	res.Counts.Received = len(items)
	required := job.Transformer.RequiredAttributes()
	seen := make(map[string]bool, len(items))

	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		key := item.Key()

		id, err := job.Transformer.GenerateID(item)
		if err != nil {
			recordError(&res, key, fmt.Errorf("generating id: %w", err), w)
			continue
		}
		item.ID = id

		mapped, err := job.Transformer.MapEntry(item)
		if err != nil {
			recordError(&res, key, fmt.Errorf("mapping: %w", err), w)
			continue
		}
		entry := mapped.Entry

		if err := Validate(entry, required); err != nil {
			res.Counts.ValidationFailures++
			res.Stats.ValidationWarnings = append(res.Stats.ValidationWarnings, types.Issue{Item: id, Message: err.Error()})
			fmt.Fprintf(w, "invalid  %s: %v\n", id, err)
			continue
		}

		if seen[id] {
			res.Counts.Duplicates++
			res.Stats.DuplicateIDs = append(res.Stats.DuplicateIDs, id)
			fmt.Fprintf(w, "dropped  %s: %v (from %s)\n", id, ErrDuplicateID, key)
			continue
		}
		seen[id] = true

		for _, d := range mapped.Defaults {
			res.Stats.DefaultsApplied.Add(d, id)
		}
		res.Entries = append(res.Entries, entry)
		res.Counts.Transformed++
	}

	for _, h := range job.Transformer.Hardcoded() {
		res.Entries = append(res.Entries, h.Clone())
		res.Counts.Hardcoded++
	}

	entries, ov := ApplyOverrides(res.Entries, job.Overrides)
	res.Entries = entries
	res.Stats.Overrides = ov
	res.Counts.Added = ov.ItemsAdded
	res.Counts.Output = len(entries)

	fmt.Fprintf(w, "transformed %d/%d %s (%d overridden, %d added)\n",
		res.Counts.Transformed, res.Counts.Received, job.Category, ov.ItemsOverridden, ov.ItemsAdded)
	return res, nil
}

// Validate checks that every dotted path resolves on entry. A path
// holding null counts as defined.
func Validate(entry types.Entry, paths []string) error {
	for _, p := range paths {
		if _, ok := entry.Lookup(p); !ok {
			return fmt.Errorf("%w: %s", ErrMissingAttribute, p)
		}
	}
	return nil
}

func recordError(res *Result, key string, err error, w io.Writer) {
	res.Counts.Errors++
	res.Stats.Errors = append(res.Stats.Errors, types.Issue{Item: key, Message: err.Error()})
	fmt.Fprintf(w, "failed   %s: %v\n", key, err)
}
