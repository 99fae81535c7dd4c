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

const armorPrefix = "WarfareTecVest_"

// Names of the armor's float curves.
const (
	curvePenetration = "PenetrationChanceCurve"
	curveDamage      = "DamageScalarCurve"
	curveDurability  = "DurabilityDamageScalarCurve"
)

// armor covers body armor. Variants are built on a base vest blueprint
// and inherit its protection values.
type armor struct {
	rules
}

func (armor) SkipFile(fileName string) bool {
	return !strings.HasPrefix(fileName, armorPrefix)
}

func (armor) Inheritable() []string {
	return []string{
		"icon", "weight", "rarity",
		"durability", "armorClass", "protection",
		"penetrationChance", "damageScalar", "durabilityDamageScalar",
	}
}

func (c armor) Extract(in extract.Input) (extract.Outcome, error) {
	var report extract.FieldReport
	item, err := c.extractBase(in, &report)
	if err != nil {
		return extract.Outcome{}, err
	}
	item.Subcategory = c.subcategory

	props := in.Element.Properties
	a := &types.ArmorData{
		Durability:             number(props, "MaxDurability"),
		PenetrationChance:      keyframes(props, curvePenetration),
		DamageScalar:           keyframes(props, curveDamage),
		DurabilityDamageScalar: keyframes(props, curveDurability),
	}
	if v, ok := source.Number(props, "ArmorClass"); ok {
		class := int(v)
		a.ArmorClass = &class
	}
	if pd := source.Field(props, "ProtectiveData"); pd.IsArray() {
		a.Protection = []types.BodyPartProtection{}
		pd.ForEach(func(_, p gjson.Result) bool {
			a.Protection = append(a.Protection, types.BodyPartProtection{
				BodyPart: source.EnumTail(p.Get("Key").String()),
				Value:    p.Get("Value").Float(),
			})
			return true
		})
	}
	item.Armor = a

	markMissing(&report, "durability", a.Durability)
	markMissing(&report, "armorClass", a.ArmorClass)
	if a.Protection == nil {
		report.MarkMissing("protection")
	}
	if a.PenetrationChance == nil {
		report.MarkMissing("penetrationChance")
	}
	if a.DamageScalar == nil {
		report.MarkMissing("damageScalar")
	}
	if a.DurabilityDamageScalar == nil {
		report.MarkMissing("durabilityDamageScalar")
	}

	return extract.Accept(item, report), nil
}

// GenerateID prefers the legacy id of the source file.
func (c armor) GenerateID(item *types.ExtractedItem) (string, error) {
	if id, ok := c.tbl.LegacyID(c.key, item.SourceFile); ok {
		return id, nil
	}
	base := strings.TrimPrefix(strings.TrimSuffix(item.SourceFile, source.Extension), armorPrefix)
	if slug(base) == "" {
		return "", errors.New("empty armor name")
	}
	return "armor_" + slug(base), nil
}

func (c armor) MapEntry(item *types.ExtractedItem) (transform.Mapped, error) {
	e := c.entry(item, optional(item.DisplayName))
	stats := e["stats"].(map[string]any)

	if a := item.Armor; a != nil {
		put(stats, "durability", a.Durability)
		put(stats, "armorClass", a.ArmorClass)
		if a.Protection != nil {
			protection := make([]any, 0, len(a.Protection))
			for _, p := range a.Protection {
				protection = append(protection, map[string]any{"bodyPart": p.BodyPart, "value": p.Value})
			}
			stats["protection"] = protection
		}
		putCurve(stats, "penetrationChance", a.PenetrationChance)
		putCurve(stats, "damageScalar", a.DamageScalar)
		putCurve(stats, "durabilityDamageScalar", a.DurabilityDamageScalar)
	}

	m := transform.Mapped{Entry: e}
	defaults{price: 1000}.apply(item, &m)
	return m, nil
}

func (armor) RequiredAttributes() []string {
	return append(slices.Clone(baseRequired), "stats.durability", "stats.armorClass")
}

func putCurve(stats map[string]any, key string, frames []types.Keyframe) {
	if frames == nil {
		return
	}
	out := make([]any, 0, len(frames))
	for _, k := range frames {
		out = append(out, map[string]any{"time": k.Time, "value": k.Value})
	}
	stats[key] = out
}
