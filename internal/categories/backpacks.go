// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

const (
	backpackStorageType = "BackpackStorage_C"
	backpackAttachType  = "BackpackAttachPoint_C"

	// Items built directly on the base blueprint carry no weight or
	// quality of their own.
	backpackBaseTemplate = "WarfareBackpackBase.53"
)

// attachClassNames maps engine classes accepted by attachment points to
// catalog names.
var attachClassNames = map[string]string{
	"ContractorsPrimaryGun_C":        "PrimaryGun",
	"ContractorsPumpActionShotgun_C": "Shotgun",
	"VestHolster_C":                  "Holster",
	"WarfareTecVest_C":               "Vest",
	"WarfareHelmet_C":                "Helmet",
}

// backpackPrefixes are stripped from file names to form ids, first
// match wins.
var backpackPrefixes = []string{"WarfareBackpackBase_", "WarfareBackpack_", "WF_Backpack_"}

type backpacks struct {
	rules
}

func (backpacks) Inheritable() []string {
	return []string{"icon", "rarity", "weight", "sizes", "attachmentPoints"}
}

func (c backpacks) Extract(in extract.Input) (extract.Outcome, error) {
	var report extract.FieldReport
	item, err := c.extractBase(in, &report)
	if err != nil {
		return extract.Outcome{}, err
	}
	item.Subcategory = c.subcategory
	item.Backpack = &types.BackpackData{AttachmentPoints: []types.AttachmentPoint{}}

	if storage, ok := source.FindByTypePrefix(in.Records, backpackStorageType); ok {
		if b := source.Field(storage.Properties, "Bound"); b.IsObject() {
			item.Backpack.Sizes = &types.Bounds{
				X: b.Get("X").Float(),
				Y: b.Get("Y").Float(),
				Z: b.Get("Z").Float(),
			}
		}
	}
	markMissing(&report, "sizes", item.Backpack.Sizes)

	for _, r := range source.FilterByTypePrefix(in.Records, backpackAttachType) {
		point := types.AttachmentPoint{
			Tag:     source.Field(r.Properties, "Tag").String(),
			Classes: []string{},
		}
		source.Field(r.Properties, "AttachmentClasses").ForEach(func(_, v gjson.Result) bool {
			name := strings.ReplaceAll(v.Get("ObjectName").String(), "BlueprintGeneratedClass", "")
			point.Classes = append(point.Classes, name)
			return true
		})
		item.Backpack.AttachmentPoints = append(item.Backpack.AttachmentPoints, point)
	}

	if strings.HasSuffix(item.Template, backpackBaseTemplate) {
		if item.Weight == nil {
			w := 2.0
			item.Weight = &w
			report.MarkDefault("weight")
		}
		if item.Rarity == nil {
			if r, ok := c.tbl.RarityLabel("EWarfare_Quality::NewEnumerator0"); ok {
				item.Rarity = &r
				report.MarkDefault("rarity")
			}
		}
	}

	return extract.Accept(item, report), nil
}

// GenerateID strips a known file prefix, falling back to the first word
// of the display name.
func (c backpacks) GenerateID(item *types.ExtractedItem) (string, error) {
	base := strings.TrimSuffix(item.SourceFile, source.Extension)
	idBase := ""
	for _, p := range backpackPrefixes {
		if strings.Contains(base, p) {
			idBase = strings.Replace(base, p, "", 1)
			break
		}
	}
	if idBase == "" {
		if item.DisplayName == nil {
			return "", errors.New("backpack id needs a known file prefix or a display name")
		}
		idBase, _, _ = strings.Cut(*item.DisplayName, " ")
	}
	id := slug(strings.ReplaceAll(idBase, ".", ""))
	if id == "" {
		return "", errors.New("empty backpack name")
	}
	return "backpack_" + id, nil
}

func (c backpacks) MapEntry(item *types.ExtractedItem) (transform.Mapped, error) {
	e := c.entry(item, optional(item.DisplayName))
	stats := e["stats"].(map[string]any)

	if bp := item.Backpack; bp != nil {
		if bp.Sizes != nil {
			stats["sizes"] = formatBounds(*bp.Sizes)
		}
		stats["attachmentPoints"] = groupAttachmentPoints(bp.AttachmentPoints)
	}

	m := transform.Mapped{Entry: e}
	defaults{price: 1000, weight: 2, rarity: "Common"}.apply(item, &m)
	return m, nil
}

func (backpacks) RequiredAttributes() []string {
	return append(slices.Clone(baseRequired), "stats.sizes", "stats.attachmentPoints")
}

// formatBounds renders a storage grid as "XxYxZ".
func formatBounds(b types.Bounds) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
	return f(b.X) + "x" + f(b.Y) + "x" + f(b.Z)
}

// groupAttachmentPoints merges points by tag in first-seen order, maps
// class names, and drops duplicates. When "left" and "right" accept the
// same classes they collapse into one "sides" group, appended last.
func groupAttachmentPoints(points []types.AttachmentPoint) []any {
	var tags []string
	groups := map[string][]string{}
	for _, p := range points {
		if _, ok := groups[p.Tag]; !ok {
			tags = append(tags, p.Tag)
			groups[p.Tag] = []string{}
		}
		for _, c := range p.Classes {
			c = strings.ReplaceAll(c, "'", "")
			if mapped, ok := attachClassNames[c]; ok {
				c = mapped
			}
			if !slices.Contains(groups[p.Tag], c) {
				groups[p.Tag] = append(groups[p.Tag], c)
			}
		}
	}

	left, hasLeft := groups["left"]
	right, hasRight := groups["right"]
	if hasLeft && hasRight {
		l, r := slices.Sorted(slices.Values(left)), slices.Sorted(slices.Values(right))
		if slices.Equal(l, r) {
			tags = slices.DeleteFunc(tags, func(t string) bool { return t == "left" || t == "right" })
			if _, ok := groups["sides"]; !ok {
				tags = append(tags, "sides")
			}
			groups["sides"] = l
		}
	}

	out := make([]any, 0, len(tags))
	for _, t := range tags {
		out = append(out, map[string]any{"tag": t, "types": groups[t]})
	}
	return out
}
