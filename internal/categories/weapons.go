// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"errors"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// weaponPrefixes are stripped from file names to form ids.
var weaponPrefixes = []string{"WarfareWeapon_", "Weapon_", "WF_"}

// weapons covers firearms. Source folders are nested by weapon class.
type weapons struct {
	rules
}

// SkipFile drops blueprint helpers and shared base classes.
func (weapons) SkipFile(fileName string) bool {
	return strings.HasPrefix(fileName, "BP_") || strings.Contains(fileName, "Base")
}

func (weapons) Inheritable() []string {
	return []string{
		"icon", "weight", "rarity",
		"caliber", "fireRate", "ergonomics", "verticalRecoil", "horizontalRecoil", "fireModes",
	}
}

func (c weapons) Extract(in extract.Input) (extract.Outcome, error) {
	var report extract.FieldReport
	item, err := c.extractBase(in, &report)
	if err != nil {
		return extract.Outcome{}, err
	}

	props := in.Element.Properties
	w := &types.WeaponData{
		FireRate:         number(props, "RateOfFire"),
		Ergonomics:       number(props, "Ergonomics"),
		VerticalRecoil:   number(props, "VerticalRecoil"),
		HorizontalRecoil: number(props, "HorizontalRecoil"),
	}
	if cal, ok := source.String(props, "Caliber"); ok {
		tail := source.EnumTail(cal)
		w.Caliber = &tail
	}
	if modes := source.Field(props, "FireModes"); modes.IsArray() {
		w.FireModes = []string{}
		modes.ForEach(func(_, m gjson.Result) bool {
			w.FireModes = append(w.FireModes, source.EnumTail(m.String()))
			return true
		})
	}
	item.Weapon = w

	markMissing(&report, "caliber", w.Caliber)
	markMissing(&report, "fireRate", w.FireRate)
	markMissing(&report, "ergonomics", w.Ergonomics)
	markMissing(&report, "verticalRecoil", w.VerticalRecoil)
	markMissing(&report, "horizontalRecoil", w.HorizontalRecoil)
	if w.FireModes == nil {
		report.MarkMissing("fireModes")
	}

	return extract.Accept(item, report), nil
}

func (c weapons) GenerateID(item *types.ExtractedItem) (string, error) {
	if id, ok := c.tbl.LegacyID(c.key, item.SourceFile); ok {
		return id, nil
	}
	base := strings.TrimSuffix(strings.TrimSuffix(item.SourceFile, source.Extension), "_C")
	for _, p := range weaponPrefixes {
		if strings.HasPrefix(base, p) {
			base = strings.TrimPrefix(base, p)
			break
		}
	}
	if slug(base) == "" {
		return "", errors.New("empty weapon name")
	}
	return "weapon_" + slug(base), nil
}

func (c weapons) MapEntry(item *types.ExtractedItem) (transform.Mapped, error) {
	e := c.entry(item, optional(item.DisplayName))
	stats := e["stats"].(map[string]any)

	if w := item.Weapon; w != nil {
		put(stats, "caliber", w.Caliber)
		put(stats, "fireRate", w.FireRate)
		put(stats, "ergonomics", w.Ergonomics)
		put(stats, "verticalRecoil", w.VerticalRecoil)
		put(stats, "horizontalRecoil", w.HorizontalRecoil)
		if w.FireModes != nil {
			stats["fireModes"] = slices.Clone(w.FireModes)
		}
	}

	m := transform.Mapped{Entry: e}
	defaults{price: 0}.apply(item, &m)
	return m, nil
}

func (weapons) RequiredAttributes() []string {
	return append(slices.Clone(baseRequired), "stats.caliber", "stats.fireRate")
}
