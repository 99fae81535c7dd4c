// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"errors"
	"math"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

const (
	halfWidthKey = "HalfWidth_42_152E25204555C2CC1D55A79BE2F930F1"

	// The base holster blueprint exports no TotalWidth; its in-game width
	// is fixed.
	holsterBaseTemplate = "Contractors_Showdown/Content/Blueprints/GameModes/Warfare/TecVest/VestHolster.50"
	holsterBaseWidth    = 3.1
)

// holsters covers vest holsters, which share the TecVest folder with
// armor.
type holsters struct {
	rules
}

func (holsters) SkipFile(fileName string) bool {
	return !strings.Contains(fileName, "VestHolster")
}

func (holsters) Inheritable() []string {
	return []string{"icon", "rarity", "weight", "content", "canAttach"}
}

func (c holsters) Extract(in extract.Input) (extract.Outcome, error) {
	var report extract.FieldReport
	item, err := c.extractBase(in, &report)
	if err != nil {
		return extract.Outcome{}, err
	}
	item.Subcategory = c.subcategory
	item.Holster = &types.HolsterData{}

	props := in.Element.Properties
	total, ok := source.Number(props, "TotalWidth")
	if (!ok || total == 0) && item.Template == holsterBaseTemplate {
		total = holsterBaseWidth
	}
	if total > 0 {
		item.Holster.Content = slotCapacities(props, total)
	} else {
		report.MarkMissing("content")
	}

	if classes := source.Field(props, "AttachHolsterClass"); classes.IsArray() {
		item.Holster.CanAttach = []string{}
		classes.ForEach(func(_, v gjson.Result) bool {
			if key := v.Get("Key").String(); key != "" {
				item.Holster.CanAttach = append(item.Holster.CanAttach, assetSuffix(key))
			}
			return true
		})
	} else {
		report.MarkMissing("canAttach")
	}

	return extract.Accept(item, report), nil
}

// slotCapacities divides the holster width among its PropInfo slots:
// each slot holds floor(total / (2 * halfWidth)) items.
func slotCapacities(props gjson.Result, total float64) []types.SlotCapacity {
	out := []types.SlotCapacity{}
	source.Field(props, "PropInfo").ForEach(func(_, p gjson.Result) bool {
		half, ok := source.Number(p, "Value", halfWidthKey)
		if !ok || half <= 0 {
			return true
		}
		out = append(out, types.SlotCapacity{
			Slot:  p.Get("Key").String(),
			Count: int(math.Floor(total / (half * 2))),
		})
		return true
	})
	return out
}

// assetSuffix reduces a class reference such as
// "BlueprintGeneratedClass'.../VestHolster_Pistol.VestHolster_Pistol_C'"
// to its final name segment ("Pistol").
func assetSuffix(ref string) string {
	s := ref[strings.LastIndex(ref, ".")+1:]
	s = strings.ReplaceAll(s, "'", "")
	s = strings.TrimSuffix(s, "_C")
	return s[strings.LastIndex(s, "_")+1:]
}

func (c holsters) GenerateID(item *types.ExtractedItem) (string, error) {
	base := strings.TrimSuffix(item.SourceFile, source.Extension)
	id := slug(assetSuffix(strings.ReplaceAll(base, ".", "")))
	if id == "" {
		return "", errors.New("empty holster name")
	}
	return "holster_" + id, nil
}

func (c holsters) MapEntry(item *types.ExtractedItem) (transform.Mapped, error) {
	e := c.entry(item, optional(item.DisplayName))
	stats := e["stats"].(map[string]any)

	canAttach := []string{}
	content := []any{}
	if h := item.Holster; h != nil {
		for _, a := range h.CanAttach {
			canAttach = append(canAttach, "holster_"+strings.ToLower(a))
		}
		for _, s := range h.Content {
			content = append(content, map[string]any{s.Slot: s.Count})
		}
	}
	stats["canAttach"] = canAttach
	stats["content"] = content

	m := transform.Mapped{Entry: e}
	defaults{price: 1000, weight: 2, rarity: "Common"}.apply(item, &m)
	return m, nil
}
