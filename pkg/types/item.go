// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// ExtractedItem is the intermediate record produced for one source file.
// Optional fields are nil when the source does not define them; the
// inheritance resolver may fill them in from a template item.
type ExtractedItem struct {
	// ID is assigned by the transformation stage.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`

	// SourceFile is the dump file name including its extension. It is
	// unique within one category's extracted set.
	SourceFile string `json:"sourceFile" yaml:"sourceFile"`

	// Directory is the name of the folder the source file was read from.
	Directory string `json:"directory" yaml:"directory"`

	Type string `json:"type" yaml:"type"`

	// Template is the object path of the blueprint this object derives
	// from (e.g. ".../TecVest/WarfareTecVest_Rampage.0").
	Template string `json:"template,omitempty" yaml:"template,omitempty"`

	Name        string   `json:"name" yaml:"name"`
	DisplayName *string  `json:"displayName" yaml:"displayName"`
	Icon        *string  `json:"icon" yaml:"icon"`
	Subcategory string   `json:"subcategory" yaml:"subcategory"`
	Rarity      *string  `json:"rarity" yaml:"rarity"`
	Weight      *float64 `json:"weight" yaml:"weight"`
	Price       *float64 `json:"price,omitempty" yaml:"price,omitempty"`

	Food     *FoodData     `json:"food,omitempty" yaml:"food,omitempty"`
	Holster  *HolsterData  `json:"holster,omitempty" yaml:"holster,omitempty"`
	Backpack *BackpackData `json:"backpack,omitempty" yaml:"backpack,omitempty"`
	Armor    *ArmorData    `json:"armor,omitempty" yaml:"armor,omitempty"`
	Weapon   *WeaponData   `json:"weapon,omitempty" yaml:"weapon,omitempty"`
	Ammo     *AmmoData     `json:"ammo,omitempty" yaml:"ammo,omitempty"`
}

// Key returns the identifier used for the item in statistics: the source
// file name without its extension.
func (it *ExtractedItem) Key() string {
	base := filepath.Base(it.SourceFile)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FoodData holds consumable-specific properties.
type FoodData struct {
	Capacity         *float64 `json:"capacity" yaml:"capacity"`
	Threshold        *float64 `json:"threshold" yaml:"threshold"`
	ConsumptionSpeed *float64 `json:"consumptionSpeed" yaml:"consumptionSpeed"`
	EnergyFactor     *float64 `json:"energyFactor" yaml:"energyFactor"`
	HydraFactor      *float64 `json:"hydraFactor" yaml:"hydraFactor"`
}

// SlotCapacity is the number of items of one kind a holster can carry.
type SlotCapacity struct {
	Slot  string `json:"slot" yaml:"slot"`
	Count int    `json:"count" yaml:"count"`
}

// HolsterData holds vest-holster properties.
type HolsterData struct {
	Content   []SlotCapacity `json:"content" yaml:"content"`
	CanAttach []string       `json:"canAttach" yaml:"canAttach"`
}

// Bounds is a storage grid size.
type Bounds struct {
	X float64 `json:"X" yaml:"X"`
	Y float64 `json:"Y" yaml:"Y"`
	Z float64 `json:"Z" yaml:"Z"`
}

// AttachmentPoint is one tagged mount on a backpack and the classes it accepts.
type AttachmentPoint struct {
	Tag     string   `json:"tag" yaml:"tag"`
	Classes []string `json:"classes" yaml:"classes"`
}

// BackpackData holds backpack properties.
type BackpackData struct {
	Sizes            *Bounds           `json:"sizes" yaml:"sizes"`
	AttachmentPoints []AttachmentPoint `json:"attachmentPoints" yaml:"attachmentPoints"`
}

// Keyframe is one point of a piecewise animation curve.
type Keyframe struct {
	Time  float64 `json:"time" yaml:"time"`
	Value float64 `json:"value" yaml:"value"`
}

// BodyPartProtection is the protection value an armor grants one body part.
type BodyPartProtection struct {
	BodyPart string  `json:"bodyPart" yaml:"bodyPart"`
	Value    float64 `json:"value" yaml:"value"`
}

// ArmorData holds body-armor properties.
type ArmorData struct {
	Durability             *float64             `json:"durability" yaml:"durability"`
	ArmorClass             *int                 `json:"armorClass" yaml:"armorClass"`
	Protection             []BodyPartProtection `json:"protection" yaml:"protection"`
	PenetrationChance      []Keyframe           `json:"penetrationChance" yaml:"penetrationChance"`
	DamageScalar           []Keyframe           `json:"damageScalar" yaml:"damageScalar"`
	DurabilityDamageScalar []Keyframe           `json:"durabilityDamageScalar" yaml:"durabilityDamageScalar"`
}

// WeaponData holds firearm properties.
type WeaponData struct {
	Caliber          *string  `json:"caliber" yaml:"caliber"`
	FireRate         *float64 `json:"fireRate" yaml:"fireRate"`
	Ergonomics       *float64 `json:"ergonomics" yaml:"ergonomics"`
	VerticalRecoil   *float64 `json:"verticalRecoil" yaml:"verticalRecoil"`
	HorizontalRecoil *float64 `json:"horizontalRecoil" yaml:"horizontalRecoil"`
	FireModes        []string `json:"fireModes" yaml:"fireModes"`
}

// AmmoData holds cartridge properties.
type AmmoData struct {
	Damage       *float64 `json:"damage" yaml:"damage"`
	Penetration  *float64 `json:"penetration" yaml:"penetration"`
	ArmorDamage  *float64 `json:"armorDamage" yaml:"armorDamage"`
	InitialSpeed *float64 `json:"initialSpeed" yaml:"initialSpeed"`
	StackSize    *int     `json:"stackSize" yaml:"stackSize"`
}
