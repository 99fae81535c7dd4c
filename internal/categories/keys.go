// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// keyMaps are the map names of folders Map1..Map4. Folders matching none
// of the first three belong to the last.
var keyMaps = []string{"Suburb", "Dam", "Metro", "Resort"}

// keys covers door keys and keycards. Source folders are nested by map.
type keys struct {
	rules
}

func (c keys) Extract(in extract.Input) (extract.Outcome, error) {
	if strings.HasPrefix(in.FileName, "BP") {
		return extract.Filter("blueprint"), nil
	}
	var report extract.FieldReport
	item, err := c.extractBase(in, &report)
	if err != nil {
		return extract.Outcome{}, err
	}
	item.Subcategory = keyMap(in.Directory)
	return extract.Accept(item, report), nil
}

func keyMap(directory string) string {
	for i, name := range keyMaps[:len(keyMaps)-1] {
		if strings.Contains(directory, fmt.Sprintf("Map%d", i+1)) {
			return name
		}
	}
	return keyMaps[len(keyMaps)-1]
}

// keyBase is the file name after its second underscore
// ("Key_Map1_WestBunker" gives "WestBunker").
func keyBase(sourceFile string) (string, error) {
	name := strings.TrimSuffix(sourceFile, source.Extension)
	parts := strings.SplitN(name, "_", 3)
	if len(parts) < 3 || parts[2] == "" {
		return "", fmt.Errorf("key file name %q has fewer than two underscores", name)
	}
	return parts[2], nil
}

func (c keys) GenerateID(item *types.ExtractedItem) (string, error) {
	base, err := keyBase(item.SourceFile)
	if err != nil {
		return "", err
	}
	return "key_" + slug(base), nil
}

// gameID is the localization id of a key: an entry of the exception table
// when there is one, otherwise card.map<N>.<base> with base lowercased if
// the string table knows that form.
func (c keys) gameID(item *types.ExtractedItem) (string, error) {
	if id, ok := c.tbl.GameID(item.ID); ok {
		return id, nil
	}
	base, err := keyBase(item.SourceFile)
	if err != nil {
		return "", err
	}
	n := slices.Index(keyMaps, item.Subcategory) + 1
	id := fmt.Sprintf("card.map%d.%s", n, strings.ToLower(base))
	if _, ok := c.tbl.LocalizedString(id + "_name"); ok {
		return id, nil
	}
	return fmt.Sprintf("card.map%d.%s", n, base), nil
}

// MapEntry names the key from the string table. A key whose name is not
// in the table leaves name undefined and fails validation.
func (c keys) MapEntry(item *types.ExtractedItem) (transform.Mapped, error) {
	gameID, err := c.gameID(item)
	if err != nil {
		return transform.Mapped{}, err
	}
	e := c.entry(item, nil)
	if name, ok := c.tbl.LocalizedString(gameID + "_name"); ok {
		e["name"] = name
	} else {
		delete(e, "name")
	}
	e["gameId"] = gameID

	m := transform.Mapped{Entry: e}
	defaults{price: 1000, weight: 0.1, rarity: "Uncommon"}.apply(item, &m)
	return m, nil
}
