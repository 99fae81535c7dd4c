// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "slices"

// Issue is a per-file or per-item problem surfaced in artifact metadata.
type Issue struct {
	Item    string `json:"item" yaml:"item"`
	Message string `json:"message" yaml:"message"`
}

// FieldLog maps a field name to the items it applies to, in the order they
// were recorded. Used for missing fields, applied defaults and inherited
// fields.
type FieldLog map[string][]string

// Add records item against field.
func (l FieldLog) Add(field, item string) {
	l[field] = append(l[field], item)
}

// Remove drops every occurrence of item from field and deletes the field
// once its list is empty.
func (l FieldLog) Remove(field, item string) {
	items, ok := l[field]
	if !ok {
		return
	}
	items = slices.DeleteFunc(items, func(s string) bool { return s == item })
	if len(items) == 0 {
		delete(l, field)
		return
	}
	l[field] = items
}

// Has reports whether item is recorded against field.
func (l FieldLog) Has(field, item string) bool {
	return slices.Contains(l[field], item)
}

// ExtractionCounts are the per-file outcome counters of one extraction run.
type ExtractionCounts struct {
	Directories int `json:"directories" yaml:"directories"`
	FilesFound  int `json:"filesFound" yaml:"filesFound"`
	Extracted   int `json:"extracted" yaml:"extracted"`
	Skipped     int `json:"skipped" yaml:"skipped"`
	Filtered    int `json:"filtered" yaml:"filtered"`
	Warnings    int `json:"warnings" yaml:"warnings"`
	Errors      int `json:"errors" yaml:"errors"`
}

// Processed returns the number of files that reached an outcome.
func (c ExtractionCounts) Processed() int {
	return c.Extracted + c.Skipped + c.Filtered + c.Warnings + c.Errors
}

// HasFailures reports whether any file failed to extract.
func (c ExtractionCounts) HasFailures() bool {
	return c.Errors > 0
}

// InheritanceStats records the outcome of template resolution.
type InheritanceStats struct {
	Attributes           []string `json:"attributes" yaml:"attributes"`
	ItemsWithInheritance int      `json:"itemsWithInheritance" yaml:"itemsWithInheritance"`
	InheritedFields      FieldLog `json:"inheritedFields" yaml:"inheritedFields"`
	OrphanedTemplates    []string `json:"orphanedTemplates" yaml:"orphanedTemplates"`
}

// ExtractionStats is the audit block embedded in an extracted artifact.
type ExtractionStats struct {
	MissingFields   FieldLog          `json:"missingFields" yaml:"missingFields"`
	DefaultsApplied FieldLog          `json:"defaultsApplied" yaml:"defaultsApplied"`
	SkippedFiles    []string          `json:"skippedFiles" yaml:"skippedFiles"`
	FilteredFiles   []string          `json:"filteredFiles" yaml:"filteredFiles"`
	Warnings        []Issue           `json:"warnings" yaml:"warnings"`
	Errors          []Issue           `json:"errors" yaml:"errors"`
	Inheritance     *InheritanceStats `json:"inheritance,omitempty" yaml:"inheritance,omitempty"`
}

// NewExtractionStats returns stats with empty, non-nil collections so that
// artifacts always carry the same shape.
func NewExtractionStats() ExtractionStats {
	return ExtractionStats{
		MissingFields:   FieldLog{},
		DefaultsApplied: FieldLog{},
		SkippedFiles:    []string{},
		FilteredFiles:   []string{},
		Warnings:        []Issue{},
		Errors:          []Issue{},
	}
}

// TransformationCounts are the per-item outcome counters of one
// transformation run.
type TransformationCounts struct {
	Received           int `json:"received" yaml:"received"`
	Transformed        int `json:"transformed" yaml:"transformed"`
	ValidationFailures int `json:"validationFailures" yaml:"validationFailures"`
	Errors             int `json:"errors" yaml:"errors"`
	Duplicates         int `json:"duplicates" yaml:"duplicates"`
	Hardcoded          int `json:"hardcoded" yaml:"hardcoded"`
	Added              int `json:"added" yaml:"added"`
	Output             int `json:"output" yaml:"output"`
}

// OverrideStats records how the manual override table was used.
type OverrideStats struct {
	FieldsOverridden int      `json:"fieldsOverridden" yaml:"fieldsOverridden"`
	ItemsOverridden  int      `json:"itemsOverridden" yaml:"itemsOverridden"`
	ItemsAdded       int      `json:"itemsAdded" yaml:"itemsAdded"`
	UnusedOverrides  []string `json:"unusedOverrides" yaml:"unusedOverrides"`
}

// TransformationStats is the audit block embedded in a catalog artifact.
type TransformationStats struct {
	DefaultsApplied    FieldLog      `json:"defaultsApplied" yaml:"defaultsApplied"`
	ValidationWarnings []Issue       `json:"validationWarnings" yaml:"validationWarnings"`
	Errors             []Issue       `json:"errors" yaml:"errors"`
	DuplicateIDs       []string      `json:"duplicateIds" yaml:"duplicateIds"`
	Overrides          OverrideStats `json:"overrides" yaml:"overrides"`
}

// NewTransformationStats returns stats with empty, non-nil collections.
func NewTransformationStats() TransformationStats {
	return TransformationStats{
		DefaultsApplied:    FieldLog{},
		ValidationWarnings: []Issue{},
		Errors:             []Issue{},
		DuplicateIDs:       []string{},
		Overrides:          OverrideStats{UnusedOverrides: []string{}},
	}
}

// OverrideTable holds the hand-authored patches for one category.
type OverrideTable struct {
	// FieldOverrides maps an entry id to dotted paths and their values.
	FieldOverrides map[string]map[string]any `json:"fieldOverrides" yaml:"fieldOverrides"`

	// AddItems are appended to the catalog verbatim.
	AddItems []Entry `json:"addItems" yaml:"addItems"`
}
