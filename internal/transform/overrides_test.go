// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-etl/pkg/types"
)

func keyEntry(id, rarity string) types.Entry {
	return types.Entry{
		"id":   id,
		"name": id,
		"stats": map[string]any{
			"price":  1000.0,
			"weight": 0.1,
			"rarity": rarity,
		},
		"images": map[string]any{"icon": "/images/items/keys/" + id + ".webp"},
	}
}

func TestApplyOverridesPatchesOnlyListedPaths(t *testing.T) {
	before := keyEntry("key_westbunker", "Uncommon")
	table := types.OverrideTable{
		FieldOverrides: map[string]map[string]any{
			"key_westbunker": {"stats.rarity": "Epic"},
		},
	}

	out, stats := ApplyOverrides([]types.Entry{before}, table)
	require.Len(t, out, 1)

	after := out[0]
	rarity, _ := after.Lookup("stats.rarity")
	assert.Equal(t, "Epic", rarity)

	want := keyEntry("key_westbunker", "Uncommon")
	want.Set("stats.rarity", "Epic")
	assert.Equal(t, want, after, "every other path is unchanged")

	orig, _ := before.Lookup("stats.rarity")
	assert.Equal(t, "Uncommon", orig, "the input entry is not modified")

	assert.Equal(t, 1, stats.FieldsOverridden)
	assert.Equal(t, 1, stats.ItemsOverridden)
	assert.Empty(t, stats.UnusedOverrides)
}

func TestApplyOverridesValuesAreCopied(t *testing.T) {
	shared := map[string]any{"note": "original"}
	table := types.OverrideTable{
		FieldOverrides: map[string]map[string]any{
			"a": {"extra": shared},
			"b": {"extra": shared},
		},
	}
	out, _ := ApplyOverrides([]types.Entry{{"id": "a"}, {"id": "b"}}, table)
	require.Len(t, out, 2)

	out[0].Set("extra.note", "changed")
	v, _ := out[1].Lookup("extra.note")
	assert.Equal(t, "original", v)
	assert.Equal(t, "original", shared["note"])
}

func TestApplyOverridesUnusedSorted(t *testing.T) {
	table := types.OverrideTable{
		FieldOverrides: map[string]map[string]any{
			"zeta":  {"name": "z"},
			"alpha": {"name": "a"},
			"used":  {"name": "u"},
		},
	}
	_, stats := ApplyOverrides([]types.Entry{{"id": "used"}}, table)
	assert.Equal(t, []string{"alpha", "zeta"}, stats.UnusedOverrides)
}

func TestApplyOverridesAddItemsVerbatim(t *testing.T) {
	added := types.Entry{"id": "key_bomb", "stats": map[string]any{"price": 1000}}
	table := types.OverrideTable{
		FieldOverrides: map[string]map[string]any{"key_bomb": {"stats.price": 5}},
		AddItems:       []types.Entry{added},
	}

	out, stats := ApplyOverrides(nil, table)
	require.Len(t, out, 1)
	assert.Equal(t, added, out[0], "added items are not patched")
	assert.Equal(t, 1, stats.ItemsAdded)
	assert.Equal(t, []string{"key_bomb"}, stats.UnusedOverrides)

	out[0].Set("stats.price", 1)
	v, _ := added.Lookup("stats.price")
	assert.Equal(t, 1000, v)
}

func TestApplyOverridesDeterministic(t *testing.T) {
	table := types.OverrideTable{
		FieldOverrides: map[string]map[string]any{
			"x": {"stats": map[string]any{"price": 1}, "stats.price": 2},
		},
	}
	for range 5 {
		out, _ := ApplyOverrides([]types.Entry{{"id": "x"}}, table)
		v, _ := out[0].Lookup("stats.price")
		assert.Equal(t, 2, v, "sorted paths apply the object first, then the leaf")
	}
}
