// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package categories holds the per-category rules: where each item family
// lives in the export, how its fields are read, how ids are formed and how
// entries are shaped. Each category implements both extract.Extractor and
// transform.Transformer.
package categories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/tables"
	"github.com/pdiddy/catalog-etl/internal/transform"
)

// ErrUnknownCategory is matched by UnknownCategoryError.
var ErrUnknownCategory = errors.New("unknown category")

// UnknownCategoryError names a category that is not registered and lists
// the valid ones.
type UnknownCategoryError struct {
	Name  string
	Valid []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q (valid: %s)", e.Name, strings.Join(e.Valid, ", "))
}

// Is reports whether target is ErrUnknownCategory.
func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// Config describes one item category.
type Config struct {
	// Key selects the category on the command line (e.g. "food").
	Key string

	// SourceDirectory is the category's folder under the source root.
	SourceDirectory string

	// OutputName and FinalOutputName name the extracted and catalog
	// artifacts.
	OutputName      string
	FinalOutputName string

	// Category and Subcategory are the catalog labels. Subcategory is
	// empty for categories that derive it per item.
	Category    string
	Subcategory string

	// Nested means SourceDirectory holds one folder per subcategory.
	Nested bool

	Extractor   extract.Extractor
	Transformer transform.Transformer
}

// Registry is the ordered set of categories.
type Registry struct {
	configs []Config
	byKey   map[string]int
}

// NewRegistry builds the registry of all categories over the given
// lookup tables.
func NewRegistry(tbl *tables.Tables) *Registry {
	base := func(key, category, subcategory, images string) rules {
		return rules{tbl: tbl, key: key, category: category, subcategory: subcategory, images: images}
	}

	foodRules := food{base("food", "provisions", "", "food")}
	holsterRules := holsters{base("holsters", "gear", "Holsters", "holsters")}
	backpackRules := backpacks{base("backpacks", "gear", "Backpacks", "backpacks")}
	keyRules := keys{base("keys", "keys", "", "keys")}
	armorRules := armor{base("armor", "gear", "Body Armor", "armor")}
	weaponRules := weapons{base("weapons", "weapons", "", "weapons")}
	ammoRules := ammo{base("ammo", "ammo", "", "ammo")}

	configs := []Config{
		{Key: "food", SourceDirectory: "Food", OutputName: "food_data", FinalOutputName: "food",
			Category: "provisions", Nested: true, Extractor: foodRules, Transformer: foodRules},
		{Key: "holsters", SourceDirectory: "TecVest", OutputName: "holster_data", FinalOutputName: "holsters",
			Category: "gear", Subcategory: "Holsters", Extractor: holsterRules, Transformer: holsterRules},
		{Key: "backpacks", SourceDirectory: "Backpack", OutputName: "backpacks_data", FinalOutputName: "backpacks",
			Category: "gear", Subcategory: "Backpacks", Extractor: backpackRules, Transformer: backpackRules},
		{Key: "keys", SourceDirectory: "House", OutputName: "keys_data", FinalOutputName: "keys",
			Category: "keys", Nested: true, Extractor: keyRules, Transformer: keyRules},
		{Key: "armor", SourceDirectory: "TecVest", OutputName: "armor_data", FinalOutputName: "armor",
			Category: "gear", Subcategory: "Body Armor", Extractor: armorRules, Transformer: armorRules},
		{Key: "weapons", SourceDirectory: "Weapon", OutputName: "weapon_data", FinalOutputName: "weapons",
			Category: "weapons", Nested: true, Extractor: weaponRules, Transformer: weaponRules},
		{Key: "ammo", SourceDirectory: "Ammo", OutputName: "ammo_data", FinalOutputName: "ammo",
			Category: "ammo", Nested: true, Extractor: ammoRules, Transformer: ammoRules},
	}
	return newRegistry(configs)
}

func newRegistry(configs []Config) *Registry {
	r := &Registry{byKey: make(map[string]int, len(configs))}
	for _, c := range configs {
		if _, dup := r.byKey[c.Key]; dup {
			panic(fmt.Sprintf("categories: duplicate key %q", c.Key))
		}
		r.byKey[c.Key] = len(r.configs)
		r.configs = append(r.configs, c)
	}
	return r
}

// Lookup returns the category registered under key.
func (r *Registry) Lookup(key string) (Config, error) {
	i, ok := r.byKey[key]
	if !ok {
		return Config{}, &UnknownCategoryError{Name: key, Valid: r.Keys()}
	}
	return r.configs[i], nil
}

// Keys lists the category keys in processing order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.configs))
	for i, c := range r.configs {
		out[i] = c.Key
	}
	return out
}

// All returns every category in processing order.
func (r *Registry) All() []Config {
	return append([]Config(nil), r.configs...)
}
