// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inherit backfills item fields from template items. An item whose
// template path names another item of the same category copies each
// declared attribute it lacks from that item.
package inherit

import (
	"fmt"
	"slices"

	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// Resolve fills missing attributes of items from their templates, in
// place, and retracts the filled fields from missing. It returns nil
// stats when attrs is empty.
//
// Items are visited once, in order. A template that itself inherits from
// a later item has not been filled yet when its children are visited, so
// multi-level chains resolve only when parents precede children.
func Resolve(items []*types.ExtractedItem, attrs []string, missing types.FieldLog) (*types.InheritanceStats, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	for _, a := range attrs {
		if !Known(a) {
			return nil, fmt.Errorf("unknown inheritable attribute %q", a)
		}
	}

	stats := &types.InheritanceStats{
		Attributes:        slices.Clone(attrs),
		InheritedFields:   types.FieldLog{},
		OrphanedTemplates: []string{},
	}

	byKey := make(map[string]*types.ExtractedItem, len(items))
	for _, it := range items {
		if _, dup := byKey[it.Key()]; !dup {
			byKey[it.Key()] = it
		}
	}

	for _, it := range items {
		if it.Template == "" {
			continue
		}
		parent, ok := byKey[source.AssetName(it.Template)]
		if !ok {
			if !slices.Contains(stats.OrphanedTemplates, it.Template) {
				stats.OrphanedTemplates = append(stats.OrphanedTemplates, it.Template)
			}
			continue
		}
		if parent == it {
			continue
		}

		inherited := false
		for _, name := range attrs {
			a := attributes[name]
			if a.present(it) || !a.present(parent) {
				continue
			}
			a.copyFrom(it, parent)
			stats.InheritedFields.Add(name, it.Key())
			inherited = true
		}
		if inherited {
			stats.ItemsWithInheritance++
		}
	}

	for field, keys := range stats.InheritedFields {
		for _, k := range keys {
			missing.Remove(field, k)
		}
	}
	return stats, nil
}
