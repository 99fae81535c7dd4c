// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"maps"
	"slices"

	"github.com/pdiddy/catalog-etl/pkg/types"
)

// ApplyOverrides patches entries named in table.FieldOverrides and then
// appends table.AddItems. Patched entries are deep copies; the inputs are
// not modified. Paths within one override are applied in sorted order.
func ApplyOverrides(entries []types.Entry, table types.OverrideTable) ([]types.Entry, types.OverrideStats) {
	stats := types.OverrideStats{UnusedOverrides: []string{}}
	out := make([]types.Entry, 0, len(entries)+len(table.AddItems))
	used := make(map[string]bool)

	for _, e := range entries {
		patch, ok := table.FieldOverrides[e.ID()]
		if !ok {
			out = append(out, e)
			continue
		}
		patched := e.Clone()
		for _, path := range slices.Sorted(maps.Keys(patch)) {
			patched.Set(path, types.CloneValue(patch[path]))
			stats.FieldsOverridden++
		}
		stats.ItemsOverridden++
		used[e.ID()] = true
		out = append(out, patched)
	}

	for _, id := range slices.Sorted(maps.Keys(table.FieldOverrides)) {
		if !used[id] {
			stats.UnusedOverrides = append(stats.UnusedOverrides, id)
		}
	}

	for _, item := range table.AddItems {
		out = append(out, item.Clone())
		stats.ItemsAdded++
	}
	return out, stats
}
