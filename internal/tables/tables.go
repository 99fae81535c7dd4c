// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tables loads the static lookup tables the pipeline consults:
// the rarity enum map, the localization string table, legacy ids, key
// game-id exceptions and the manual override tables.
//
// Defaults are embedded in the binary. Load accepts a directory whose
// YAML files of the same names replace individual tables, so curated data
// can change without a rebuild.
package tables

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/catalog-etl/pkg/types"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	rarityFile    = "rarity.yaml"
	stringsFile   = "strings.yaml"
	legacyIDsFile = "legacy_ids.yaml"
	gameIDsFile   = "game_ids.yaml"
	overridesFile = "overrides.yaml"
)

// Tables is the read-only lookup data shared by every category.
type Tables struct {
	Rarity    map[string]string
	Strings   map[string]string
	LegacyIDs map[string]map[string]string
	GameIDs   map[string]string
	Overrides map[string]types.OverrideTable
}

// Default returns the embedded tables.
func Default() (*Tables, error) {
	t := &Tables{}
	for _, name := range t.files() {
		data, err := embedded.ReadFile("data/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading embedded table %s: %w", name, err)
		}
		if err := t.decode(name, data); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Load returns the embedded tables with any table found in dir replacing
// its default. A missing or empty dir is not an error.
func Load(dir string) (*Tables, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return t, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("reading tables directory %s: %w", dir, err)
	}

	known := make(map[string]bool)
	for _, name := range t.files() {
		known[name] = true
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !known[name] {
			fmt.Fprintf(os.Stderr, "warning: ignoring unknown table file %s\n", name)
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("reading table %s: %w", name, err)
		}
		if err := t.decode(name, data); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Tables) files() []string {
	return []string{rarityFile, stringsFile, legacyIDsFile, gameIDsFile, overridesFile}
}

func (t *Tables) decode(name string, data []byte) error {
	var target any
	switch name {
	case rarityFile:
		t.Rarity = map[string]string{}
		target = &t.Rarity
	case stringsFile:
		t.Strings = map[string]string{}
		target = &t.Strings
	case legacyIDsFile:
		t.LegacyIDs = map[string]map[string]string{}
		target = &t.LegacyIDs
	case gameIDsFile:
		t.GameIDs = map[string]string{}
		target = &t.GameIDs
	case overridesFile:
		t.Overrides = map[string]types.OverrideTable{}
		target = &t.Overrides
	default:
		return fmt.Errorf("unknown table %s", name)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parsing table %s: %w", name, err)
	}
	return nil
}

// RarityLabel maps a quality enum value to its display rarity.
func (t *Tables) RarityLabel(enum string) (string, bool) {
	v, ok := t.Rarity[enum]
	return v, ok
}

// LocalizedString looks up a display string by localization key.
func (t *Tables) LocalizedString(key string) (string, bool) {
	v, ok := t.Strings[key]
	return v, ok
}

// LegacyID returns the hand-assigned id for a source file of the given
// category. sourceFile may include its .json extension.
func (t *Tables) LegacyID(category, sourceFile string) (string, bool) {
	ids, ok := t.LegacyIDs[category]
	if !ok {
		return "", false
	}
	id, ok := ids[strings.TrimSuffix(sourceFile, ".json")]
	return id, ok && id != ""
}

// GameID returns the localization game id registered for an entry id
// whose derived game id does not match the string table.
func (t *Tables) GameID(id string) (string, bool) {
	v, ok := t.GameIDs[id]
	return v, ok
}

// OverridesFor returns the manual override table of a category. A
// category without one gets an empty table.
func (t *Tables) OverridesFor(category string) types.OverrideTable {
	o := t.Overrides[category]
	if o.FieldOverrides == nil {
		o.FieldOverrides = map[string]map[string]any{}
	}
	return o
}

// Files lists the table file names Load recognizes.
func Files() []string {
	return (&Tables{}).files()
}
