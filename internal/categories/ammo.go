// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"errors"
	"slices"
	"strings"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

const defaultStackSize = 60

var ammoPrefixes = []string{"WarfareAmmo_", "Ammo_"}

// ammo covers cartridges. Source folders are nested by caliber, and the
// folder name doubles as the caliber in the catalog.
type ammo struct {
	rules
}

func (ammo) SkipFile(fileName string) bool {
	return strings.HasPrefix(fileName, "BP_")
}

func (ammo) Inheritable() []string {
	return []string{"icon", "weight", "rarity", "damage", "penetration", "armorDamage", "initialSpeed", "stackSize"}
}

func (c ammo) Extract(in extract.Input) (extract.Outcome, error) {
	var report extract.FieldReport
	item, err := c.extractBase(in, &report)
	if err != nil {
		return extract.Outcome{}, err
	}

	props := in.Element.Properties
	a := &types.AmmoData{
		Damage:       number(props, "Damage"),
		Penetration:  number(props, "Penetration"),
		ArmorDamage:  number(props, "ArmorDamage"),
		InitialSpeed: number(props, "InitialSpeed"),
	}
	if v, ok := source.Number(props, "MaxStack"); ok && v > 0 {
		n := int(v)
		a.StackSize = &n
	}
	item.Ammo = a

	markMissing(&report, "damage", a.Damage)
	markMissing(&report, "penetration", a.Penetration)
	markMissing(&report, "armorDamage", a.ArmorDamage)
	markMissing(&report, "initialSpeed", a.InitialSpeed)
	markMissing(&report, "stackSize", a.StackSize)

	return extract.Accept(item, report), nil
}

func (c ammo) GenerateID(item *types.ExtractedItem) (string, error) {
	if id, ok := c.tbl.LegacyID(c.key, item.SourceFile); ok {
		return id, nil
	}
	base := strings.TrimSuffix(item.SourceFile, source.Extension)
	for _, p := range ammoPrefixes {
		if strings.HasPrefix(base, p) {
			base = strings.TrimPrefix(base, p)
			break
		}
	}
	if slug(base) == "" {
		return "", errors.New("empty ammo name")
	}
	return "ammo_" + slug(base), nil
}

func (c ammo) MapEntry(item *types.ExtractedItem) (transform.Mapped, error) {
	e := c.entry(item, optional(item.DisplayName))
	stats := e["stats"].(map[string]any)
	stats["caliber"] = item.Subcategory

	if a := item.Ammo; a != nil {
		put(stats, "damage", a.Damage)
		put(stats, "penetration", a.Penetration)
		put(stats, "armorDamage", a.ArmorDamage)
		put(stats, "initialSpeed", a.InitialSpeed)
		put(stats, "stackSize", a.StackSize)
	}

	m := transform.Mapped{Entry: e}
	if _, ok := stats["stackSize"]; !ok {
		stats["stackSize"] = defaultStackSize
		m.Defaults = append(m.Defaults, "stats.stackSize")
	}
	defaults{price: 0}.apply(item, &m)
	return m, nil
}

func (ammo) RequiredAttributes() []string {
	return append(slices.Clone(baseRequired), "stats.damage", "stats.penetration")
}
