// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"errors"
	"slices"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// foodFolders are the source folders holding solid food; every other
// folder holds drinks.
var foodFolders = []string{"Biscuits", "RaspBerry"}

// food covers consumables. Source folders are nested by product.
type food struct {
	rules
}

func (c food) Extract(in extract.Input) (extract.Outcome, error) {
	var report extract.FieldReport
	item, err := c.extractBase(in, &report)
	if err != nil {
		return extract.Outcome{}, err
	}

	props := in.Element.Properties
	// The engine spells the factor properties "Fractor".
	item.Food = &types.FoodData{
		Capacity:         nonZero(props, "Capacity"),
		Threshold:        nonZero(props, "Threshold"),
		ConsumptionSpeed: nonZero(props, "ConsumptionSpeed"),
		EnergyFactor:     nonZero(props, "EnergyFractor"),
		HydraFactor:      nonZero(props, "HydraFractor"),
	}
	markMissing(&report, "capacity", item.Food.Capacity)
	markMissing(&report, "threshold", item.Food.Threshold)
	markMissing(&report, "consumptionSpeed", item.Food.ConsumptionSpeed)
	markMissing(&report, "energyFactor", item.Food.EnergyFactor)
	markMissing(&report, "hydraFactor", item.Food.HydraFactor)

	return extract.Accept(item, report), nil
}

// GenerateID slugs the display name.
func (c food) GenerateID(item *types.ExtractedItem) (string, error) {
	if item.DisplayName == nil || slug(*item.DisplayName) == "" {
		return "", errors.New("food id needs a display name")
	}
	return "food_" + slug(*item.DisplayName), nil
}

func (c food) MapEntry(item *types.ExtractedItem) (transform.Mapped, error) {
	e := c.entry(item, optional(item.DisplayName))
	if slices.Contains(foodFolders, item.Directory) {
		e["subcategory"] = "Food"
	} else {
		e["subcategory"] = "Drinks"
	}

	stats := e["stats"].(map[string]any)
	stats["weight"] = optional(item.Weight)
	stats["rarity"] = "Common"

	fd := item.Food
	if fd == nil {
		fd = &types.FoodData{}
	}
	stats["capacity"] = optional(fd.Capacity)
	stats["threshold"] = optional(fd.Threshold)
	stats["consumptionSpeed"] = optional(fd.ConsumptionSpeed)
	stats["energyFactor"] = optional(fd.EnergyFactor)
	stats["hydraFactor"] = optional(fd.HydraFactor)

	m := transform.Mapped{Entry: e}
	defaults{price: 0}.apply(item, &m)
	return m, nil
}

func (food) RequiredAttributes() []string {
	return append(slices.Clone(baseRequired),
		"stats.capacity", "stats.threshold", "stats.consumptionSpeed", "stats.energyFactor", "stats.hydraFactor")
}
