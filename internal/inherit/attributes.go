// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package inherit

import (
	"slices"

	"github.com/pdiddy/catalog-etl/pkg/types"
)

// attribute reads and copies one inheritable field of an ExtractedItem.
// copyFrom is only called when present(src) is true, and creates the
// category block on dst when needed.
type attribute struct {
	present  func(it *types.ExtractedItem) bool
	copyFrom func(dst, src *types.ExtractedItem)
}

// pointer builds an attribute for an optional scalar. ref returns nil
// when the enclosing block is absent and create is false.
func pointer[T any](ref func(it *types.ExtractedItem, create bool) **T) attribute {
	return attribute{
		present: func(it *types.ExtractedItem) bool {
			p := ref(it, false)
			return p != nil && *p != nil
		},
		copyFrom: func(dst, src *types.ExtractedItem) {
			v := **ref(src, false)
			*ref(dst, true) = &v
		},
	}
}

// list builds an attribute for a slice field. A nil slice is absent; an
// empty one is a defined value.
func list[T any](ref func(it *types.ExtractedItem, create bool) *[]T, clone func(T) T) attribute {
	return attribute{
		present: func(it *types.ExtractedItem) bool {
			p := ref(it, false)
			return p != nil && *p != nil
		},
		copyFrom: func(dst, src *types.ExtractedItem) {
			vals := *ref(src, false)
			out := make([]T, len(vals))
			for i, v := range vals {
				out[i] = clone(v)
			}
			*ref(dst, true) = out
		},
	}
}

func same[T any](v T) T { return v }

func cloneAttachmentPoint(p types.AttachmentPoint) types.AttachmentPoint {
	return types.AttachmentPoint{Tag: p.Tag, Classes: slices.Clone(p.Classes)}
}

func foodBlock(it *types.ExtractedItem, create bool) *types.FoodData {
	if it.Food == nil && create {
		it.Food = &types.FoodData{}
	}
	return it.Food
}

func holsterBlock(it *types.ExtractedItem, create bool) *types.HolsterData {
	if it.Holster == nil && create {
		it.Holster = &types.HolsterData{}
	}
	return it.Holster
}

func backpackBlock(it *types.ExtractedItem, create bool) *types.BackpackData {
	if it.Backpack == nil && create {
		it.Backpack = &types.BackpackData{}
	}
	return it.Backpack
}

func armorBlock(it *types.ExtractedItem, create bool) *types.ArmorData {
	if it.Armor == nil && create {
		it.Armor = &types.ArmorData{}
	}
	return it.Armor
}

func weaponBlock(it *types.ExtractedItem, create bool) *types.WeaponData {
	if it.Weapon == nil && create {
		it.Weapon = &types.WeaponData{}
	}
	return it.Weapon
}

func ammoBlock(it *types.ExtractedItem, create bool) *types.AmmoData {
	if it.Ammo == nil && create {
		it.Ammo = &types.AmmoData{}
	}
	return it.Ammo
}

// in adapts a field of a category block to a pointer accessor.
func in[B, T any](block func(*types.ExtractedItem, bool) *B, field func(*B) *T) func(*types.ExtractedItem, bool) *T {
	return func(it *types.ExtractedItem, create bool) *T {
		b := block(it, create)
		if b == nil {
			return nil
		}
		return field(b)
	}
}

// attributes maps the names used in Inheritable() lists and in
// missing-field statistics to their accessors.
var attributes = map[string]attribute{
	"icon":        pointer(func(it *types.ExtractedItem, _ bool) **string { return &it.Icon }),
	"displayName": pointer(func(it *types.ExtractedItem, _ bool) **string { return &it.DisplayName }),
	"rarity":      pointer(func(it *types.ExtractedItem, _ bool) **string { return &it.Rarity }),
	"weight":      pointer(func(it *types.ExtractedItem, _ bool) **float64 { return &it.Weight }),
	"price":       pointer(func(it *types.ExtractedItem, _ bool) **float64 { return &it.Price }),

	"capacity":         pointer(in(foodBlock, func(b *types.FoodData) **float64 { return &b.Capacity })),
	"threshold":        pointer(in(foodBlock, func(b *types.FoodData) **float64 { return &b.Threshold })),
	"consumptionSpeed": pointer(in(foodBlock, func(b *types.FoodData) **float64 { return &b.ConsumptionSpeed })),
	"energyFactor":     pointer(in(foodBlock, func(b *types.FoodData) **float64 { return &b.EnergyFactor })),
	"hydraFactor":      pointer(in(foodBlock, func(b *types.FoodData) **float64 { return &b.HydraFactor })),

	"content":   list(in(holsterBlock, func(b *types.HolsterData) *[]types.SlotCapacity { return &b.Content }), same[types.SlotCapacity]),
	"canAttach": list(in(holsterBlock, func(b *types.HolsterData) *[]string { return &b.CanAttach }), same[string]),

	"sizes":            pointer(in(backpackBlock, func(b *types.BackpackData) **types.Bounds { return &b.Sizes })),
	"attachmentPoints": list(in(backpackBlock, func(b *types.BackpackData) *[]types.AttachmentPoint { return &b.AttachmentPoints }), cloneAttachmentPoint),

	"durability":             pointer(in(armorBlock, func(b *types.ArmorData) **float64 { return &b.Durability })),
	"armorClass":             pointer(in(armorBlock, func(b *types.ArmorData) **int { return &b.ArmorClass })),
	"protection":             list(in(armorBlock, func(b *types.ArmorData) *[]types.BodyPartProtection { return &b.Protection }), same[types.BodyPartProtection]),
	"penetrationChance":      list(in(armorBlock, func(b *types.ArmorData) *[]types.Keyframe { return &b.PenetrationChance }), same[types.Keyframe]),
	"damageScalar":           list(in(armorBlock, func(b *types.ArmorData) *[]types.Keyframe { return &b.DamageScalar }), same[types.Keyframe]),
	"durabilityDamageScalar": list(in(armorBlock, func(b *types.ArmorData) *[]types.Keyframe { return &b.DurabilityDamageScalar }), same[types.Keyframe]),

	"caliber":          pointer(in(weaponBlock, func(b *types.WeaponData) **string { return &b.Caliber })),
	"fireRate":         pointer(in(weaponBlock, func(b *types.WeaponData) **float64 { return &b.FireRate })),
	"ergonomics":       pointer(in(weaponBlock, func(b *types.WeaponData) **float64 { return &b.Ergonomics })),
	"verticalRecoil":   pointer(in(weaponBlock, func(b *types.WeaponData) **float64 { return &b.VerticalRecoil })),
	"horizontalRecoil": pointer(in(weaponBlock, func(b *types.WeaponData) **float64 { return &b.HorizontalRecoil })),
	"fireModes":        list(in(weaponBlock, func(b *types.WeaponData) *[]string { return &b.FireModes }), same[string]),

	"damage":       pointer(in(ammoBlock, func(b *types.AmmoData) **float64 { return &b.Damage })),
	"penetration":  pointer(in(ammoBlock, func(b *types.AmmoData) **float64 { return &b.Penetration })),
	"armorDamage":  pointer(in(ammoBlock, func(b *types.AmmoData) **float64 { return &b.ArmorDamage })),
	"initialSpeed": pointer(in(ammoBlock, func(b *types.AmmoData) **float64 { return &b.InitialSpeed })),
	"stackSize":    pointer(in(ammoBlock, func(b *types.AmmoData) **int { return &b.StackSize })),
}

// Known reports whether name is an inheritable attribute.
func Known(name string) bool {
	_, ok := attributes[name]
	return ok
}
