// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/inherit"
	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/internal/tables"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	tbl, err := tables.Default()
	require.NoError(t, err)
	return NewRegistry(tbl)
}

func lookup(t *testing.T, key string) Config {
	t.Helper()
	c, err := testRegistry(t).Lookup(key)
	require.NoError(t, err)
	return c
}

// input parses a dump and locates its element the way the engine does.
func input(t *testing.T, c Config, dump, fileName, dir, sub string) extract.Input {
	t.Helper()
	records, err := source.Parse([]byte(dump))
	require.NoError(t, err)
	el, ok := c.Extractor.FindElement(records, fileName)
	require.True(t, ok, "no element for %s", fileName)
	return extract.Input{Element: el, Records: records, FileName: fileName, Directory: dir, Subcategory: sub}
}

// run extracts and maps one file, failing the test on any error.
func run(t *testing.T, c Config, in extract.Input) (*types.ExtractedItem, extract.FieldReport, transform.Mapped) {
	t.Helper()
	out, err := c.Extractor.Extract(in)
	require.NoError(t, err)
	require.False(t, out.Filtered())
	id, err := c.Transformer.GenerateID(out.Item)
	require.NoError(t, err)
	out.Item.ID = id
	m, err := c.Transformer.MapEntry(out.Item)
	require.NoError(t, err)
	return out.Item, out.Report, m
}

func lookupPath(t *testing.T, e types.Entry, path string) any {
	t.Helper()
	v, ok := e.Lookup(path)
	require.True(t, ok, "missing %s", path)
	return v
}

const info = `"Info": {
  "Icon_11_BA1E5C224783410CB10781B70CE5A463": {"ObjectPath": "/Game/UI/Icons/%ICON%.%ICON%"},
  "DisplayName_2_E87F8CE0471A0D0F627BBA9F7E5EE752": {"LocalizedString": "%NAME%"},
  "Quality_8_A8290BF9475A0928D1614B82C6FDBFF4": "EWarfare_Quality::NewEnumerator%Q%"
}`

func infoBag(icon, name, quality string) string {
	return strings.NewReplacer("%ICON%", icon, "%NAME%", name, "%Q%", quality).Replace(info)
}

// --- registry ---

func TestRegistryKeys(t *testing.T) {
	r := testRegistry(t)
	assert.Equal(t, []string{"food", "holsters", "backpacks", "keys", "armor", "weapons", "ammo"}, r.Keys())
	assert.Len(t, r.All(), 7)
}

func TestRegistryUnknown(t *testing.T) {
	_, err := testRegistry(t).Lookup("medical")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))

	var uc *UnknownCategoryError
	require.ErrorAs(t, err, &uc)
	assert.Equal(t, "medical", uc.Name)
	assert.Contains(t, err.Error(), "food, holsters, backpacks, keys, armor, weapons, ammo")
}

func TestRegistryInheritableAttributesKnown(t *testing.T) {
	for _, c := range testRegistry(t).All() {
		for _, a := range c.Extractor.Inheritable() {
			assert.True(t, inherit.Known(a), "%s: %s", c.Key, a)
		}
	}
}

func TestNewRegistryDuplicateKeyPanics(t *testing.T) {
	assert.Panics(t, func() {
		newRegistry([]Config{{Key: "food"}, {Key: "food"}})
	})
}

// --- base ---

func TestExtractBaseNoInfo(t *testing.T) {
	c := lookup(t, "backpacks")
	in := input(t, c, `[{"Type": "WarfareBackpack_X_C", "Properties": {"Weight": 1}}]`, "WarfareBackpack_X", "Backpack", "")
	_, err := c.Extractor.Extract(in)
	assert.Error(t, err)
}

func TestExtractBaseMissingFields(t *testing.T) {
	c := lookup(t, "backpacks")
	dump := `[{"Type": "WarfareBackpack_Bare_C", "Properties": {"Weight": 0, "Info": {}}}]`
	out, err := c.Extractor.Extract(input(t, c, dump, "WarfareBackpack_Bare", "Backpack", ""))
	require.NoError(t, err)
	assert.Nil(t, out.Item.Icon)
	assert.Nil(t, out.Item.Weight, "zero weight counts as missing")
	assert.Equal(t, []string{"icon", "displayName", "rarity", "weight", "sizes"}, out.Report.Missing)
}

func TestSlug(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Energy Drink", "energy_drink"},
		{"  Raspberry--Juice!! ", "raspberry_juice"},
		{"6B17rig", "6b17rig"},
		{"EliteOps_Green", "eliteops_green"},
		{"---", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slug(tt.in), tt.in)
	}
}

// --- food ---

func TestFood(t *testing.T) {
	c := lookup(t, "food")
	dump := `[{"Type": "Food_Biscuit_C", "Name": "Default__Food_Biscuit_C", "Properties": {
	  "Weight": 0.3, "Capacity": 100, "Threshold": 10, "ConsumptionSpeed": 2.5, "EnergyFractor": 1.5,
	  ` + infoBag("Icon_Biscuit", "Army Biscuit", "2") + `}}]`

	item, report, m := run(t, c, input(t, c, dump, "Food_Biscuit", "Biscuits", "Biscuits"))
	assert.Equal(t, "food_army_biscuit", item.ID)
	assert.Equal(t, []string{"hydraFactor"}, report.Missing)

	e := m.Entry
	assert.Equal(t, "provisions", e["category"])
	assert.Equal(t, "Food", e["subcategory"])
	assert.Equal(t, "Common", lookupPath(t, e, "stats.rarity"), "food rarity is always Common")
	assert.Equal(t, 0.0, lookupPath(t, e, "stats.price"))
	assert.Nil(t, lookupPath(t, e, "stats.hydraFactor"), "missing food stats are null")
	assert.Equal(t, "/images/items/food/Icon_Biscuit.webp", lookupPath(t, e, "images.fullsize"))
	assert.Equal(t, []string{"stats.price"}, m.Defaults)
	assert.NoError(t, transform.Validate(e, c.Transformer.RequiredAttributes()))

	_, _, drink := run(t, c, input(t, c, dump, "Food_Biscuit", "Water", "Water"))
	assert.Equal(t, "Drinks", drink.Entry["subcategory"])
}

func TestFoodIDNeedsDisplayName(t *testing.T) {
	_, err := lookup(t, "food").Transformer.GenerateID(&types.ExtractedItem{SourceFile: "x.json"})
	assert.Error(t, err)
}

// --- holsters ---

func holsterDump(props string) string {
	return `[
	  {"Type": "VestHolster_Pistol_C", "Name": "Default__VestHolster_Pistol_C",
	   "Template": {"ObjectPath": "Contractors_Showdown/Content/Blueprints/GameModes/Warfare/TecVest/VestHolster.50"},
	   "Properties": {` + props + `, ` + infoBag("Icon_Holster", "Pistol Holster", "1") + `}}
	]`
}

func TestHolsterContent(t *testing.T) {
	c := lookup(t, "holsters")
	dump := holsterDump(`"Weight": 0.5, "TotalWidth": 6.0,
	  "PropInfo": [
	    {"Key": "Pistol", "Value": {"HalfWidth_42_152E25204555C2CC1D55A79BE2F930F1": 1.0}},
	    {"Key": "Magazine", "Value": {"HalfWidth_42_152E25204555C2CC1D55A79BE2F930F1": 1.0}}
	  ],
	  "AttachHolsterClass": [
	    {"Key": "BlueprintGeneratedClass'/Game/TecVest/VestHolster_Knife.VestHolster_Knife_C'", "Value": true}
	  ]`)

	item, _, m := run(t, c, input(t, c, dump, "VestHolster_Pistol", "TecVest", ""))
	assert.Equal(t, []types.SlotCapacity{{Slot: "Pistol", Count: 3}, {Slot: "Magazine", Count: 3}}, item.Holster.Content)
	assert.Equal(t, []string{"Knife"}, item.Holster.CanAttach)
	assert.Equal(t, "Holsters", item.Subcategory)

	assert.Equal(t, "holster_pistol", m.Entry.ID())
	assert.Equal(t, "gear", m.Entry["category"])
	assert.Equal(t, []string{"holster_knife"}, lookupPath(t, m.Entry, "stats.canAttach"))
	assert.Equal(t, []any{map[string]any{"Pistol": 3}, map[string]any{"Magazine": 3}}, lookupPath(t, m.Entry, "stats.content"))
	assert.Equal(t, "Uncommon", lookupPath(t, m.Entry, "stats.rarity"))
	assert.Equal(t, 1000.0, lookupPath(t, m.Entry, "stats.price"))
	assert.NoError(t, transform.Validate(m.Entry, c.Transformer.RequiredAttributes()))
}

func TestHolsterFallbackWidth(t *testing.T) {
	c := lookup(t, "holsters")
	dump := holsterDump(`"PropInfo": [{"Key": "Grenade", "Value": {"HalfWidth_42_152E25204555C2CC1D55A79BE2F930F1": 0.5}}]`)

	item, report, m := run(t, c, input(t, c, dump, "VestHolster_Pistol", "TecVest", ""))
	assert.Equal(t, []types.SlotCapacity{{Slot: "Grenade", Count: 3}}, item.Holster.Content)
	assert.Contains(t, report.Missing, "weight")
	assert.Contains(t, report.Missing, "canAttach")
	assert.Equal(t, 2.0, lookupPath(t, m.Entry, "stats.weight"))
	assert.Equal(t, []string{}, lookupPath(t, m.Entry, "stats.canAttach"))
	assert.ElementsMatch(t, []string{"stats.price", "stats.weight"}, m.Defaults)
}

func TestHolsterSkipFile(t *testing.T) {
	c := lookup(t, "holsters")
	assert.False(t, c.Extractor.SkipFile("VestHolster_Pistol"))
	assert.True(t, c.Extractor.SkipFile("WarfareTecVest_6B17"))
}

func TestAssetSuffix(t *testing.T) {
	assert.Equal(t, "Knife", assetSuffix("BlueprintGeneratedClass'/Game/VestHolster_Knife.VestHolster_Knife_C'"))
	assert.Equal(t, "Pistol", assetSuffix("VestHolster_Pistol"))
	assert.Equal(t, "Plain", assetSuffix("Plain"))
}

// --- backpacks ---

const backpackDump = `[
  {"Type": "WarfareBackpack_EliteOps_C", "Name": "Default__WarfareBackpack_EliteOps_C",
   "Template": {"ObjectPath": "Contractors_Showdown/Content/Blueprints/GameModes/Warfare/Backpack/WarfareBackpackBase.53"},
   "Properties": {` + `%INFO%` + `}},
  {"Type": "BackpackStorage_C", "Name": "Storage", "Properties": {"Bound": {"X": 5, "Y": 6, "Z": 1}}},
  {"Type": "BackpackAttachPoint_C", "Name": "Left", "Properties": {"Tag": "left", "AttachmentClasses": [
    {"ObjectName": "BlueprintGeneratedClass'VestHolster_C'"},
    {"ObjectName": "BlueprintGeneratedClass'ContractorsPrimaryGun_C'"}
  ]}},
  {"Type": "BackpackAttachPoint_C", "Name": "Right", "Properties": {"Tag": "right", "AttachmentClasses": [
    {"ObjectName": "BlueprintGeneratedClass'ContractorsPrimaryGun_C'"},
    {"ObjectName": "BlueprintGeneratedClass'VestHolster_C'"},
    {"ObjectName": "BlueprintGeneratedClass'VestHolster_C'"}
  ]}},
  {"Type": "BackpackAttachPoint_C", "Name": "Top", "Properties": {"Tag": "top", "AttachmentClasses": [
    {"ObjectName": "BlueprintGeneratedClass'WarfareHelmet_C'"},
    {"ObjectName": "BlueprintGeneratedClass'Sleeping_Bag_C'"}
  ]}}
]`

func TestBackpack(t *testing.T) {
	c := lookup(t, "backpacks")
	dump := strings.ReplaceAll(backpackDump, "%INFO%", `"Info": {
	  "Icon_11_BA1E5C224783410CB10781B70CE5A463": {"ObjectPath": "/Game/UI/Icon_EliteOps.Icon_EliteOps"},
	  "DisplayName_2_E87F8CE0471A0D0F627BBA9F7E5EE752": {"LocalizedString": "Elite Ops"}}`)

	item, report, m := run(t, c, input(t, c, dump, "WarfareBackpack_EliteOps", "Backpack", ""))
	assert.Equal(t, &types.Bounds{X: 5, Y: 6, Z: 1}, item.Backpack.Sizes)
	require.Len(t, item.Backpack.AttachmentPoints, 3)
	assert.Equal(t, []string{"'VestHolster_C'", "'ContractorsPrimaryGun_C'"}, item.Backpack.AttachmentPoints[0].Classes)

	// Base-template backpacks default weight and rarity at extraction.
	assert.InDelta(t, 2.0, *item.Weight, 1e-9)
	assert.Equal(t, "Common", *item.Rarity)
	assert.Equal(t, []string{"weight", "rarity"}, report.Defaults)

	e := m.Entry
	assert.Equal(t, "backpack_eliteops", e.ID())
	assert.Equal(t, "5x6x1", lookupPath(t, e, "stats.sizes"))
	assert.Equal(t, []any{
		map[string]any{"tag": "top", "types": []string{"Helmet", "Sleeping_Bag_C"}},
		map[string]any{"tag": "sides", "types": []string{"Holster", "PrimaryGun"}},
	}, lookupPath(t, e, "stats.attachmentPoints"))
	assert.NoError(t, transform.Validate(e, c.Transformer.RequiredAttributes()))
}

func TestGroupAttachmentPointsKeepsDifferingSides(t *testing.T) {
	got := groupAttachmentPoints([]types.AttachmentPoint{
		{Tag: "left", Classes: []string{"VestHolster_C"}},
		{Tag: "right", Classes: []string{"WarfareHelmet_C"}},
	})
	assert.Equal(t, []any{
		map[string]any{"tag": "left", "types": []string{"Holster"}},
		map[string]any{"tag": "right", "types": []string{"Helmet"}},
	}, got)
}

func TestBackpackIDs(t *testing.T) {
	c := lookup(t, "backpacks")
	name := "Hyper Tec Pack"
	tests := []struct {
		file string
		want string
	}{
		{"WarfareBackpackBase_6SH118.json", "backpack_6sh118"},
		{"WarfareBackpack_EliteOps_Green.json", "backpack_eliteops_green"},
		{"WF_Backpack_Robinson.json", "backpack_robinson"},
		{"HyperTec.json", "backpack_hyper"},
	}
	for _, tt := range tests {
		id, err := c.Transformer.GenerateID(&types.ExtractedItem{SourceFile: tt.file, DisplayName: &name})
		require.NoError(t, err)
		assert.Equal(t, tt.want, id, tt.file)
	}
	_, err := c.Transformer.GenerateID(&types.ExtractedItem{SourceFile: "Odd.json"})
	assert.Error(t, err)
}

func TestBackpackWithoutSizesFailsValidation(t *testing.T) {
	c := lookup(t, "backpacks")
	dump := `[{"Type": "WarfareBackpack_Tiny_C", "Properties": {"Weight": 1, ` + infoBag("I", "Tiny", "0") + `}}]`
	_, report, m := run(t, c, input(t, c, dump, "WarfareBackpack_Tiny", "Backpack", ""))
	assert.Contains(t, report.Missing, "sizes")
	assert.ErrorIs(t, transform.Validate(m.Entry, c.Transformer.RequiredAttributes()), transform.ErrMissingAttribute)
}

// --- keys ---

func keyDump(typ string) string {
	return `[{"Type": "` + typ + `_C", "Properties": {` + infoBag("Icon_Key", "Key", "1") + `}}]`
}

func TestKeys(t *testing.T) {
	c := lookup(t, "keys")

	item, _, m := run(t, c, input(t, c, keyDump("Key_Map1_WestBunker"), "Key_Map1_WestBunker", "Map1", "Map1"))
	assert.Equal(t, "Suburb", item.Subcategory)
	assert.Equal(t, "key_westbunker", m.Entry.ID())
	assert.Equal(t, "card.map1.basementexit", m.Entry["gameId"], "exception table wins")
	assert.Equal(t, "West Bunker Key", m.Entry["name"])
	assert.Equal(t, "Uncommon", lookupPath(t, m.Entry, "stats.rarity"))
	assert.Equal(t, 0.1, lookupPath(t, m.Entry, "stats.weight"))
	assert.Equal(t, 1000.0, lookupPath(t, m.Entry, "stats.price"))
	assert.NoError(t, transform.Validate(m.Entry, c.Transformer.RequiredAttributes()))

	_, _, m = run(t, c, input(t, c, keyDump("Key_Map4_Tunnel"), "Key_Map4_Tunnel", "Map4", "Map4"))
	assert.Equal(t, "card.map4.tunnel", m.Entry["gameId"])
	assert.Equal(t, "Tunnel Key", m.Entry["name"])
	assert.Equal(t, "Resort", m.Entry["subcategory"])

	_, _, m = run(t, c, input(t, c, keyDump("Key_Map2_Nowhere"), "Key_Map2_Nowhere", "Map2", "Map2"))
	assert.Equal(t, "card.map2.Nowhere", m.Entry["gameId"], "unlowered form when the table has neither")
	_, ok := m.Entry["name"]
	assert.False(t, ok)
	assert.ErrorIs(t, transform.Validate(m.Entry, c.Transformer.RequiredAttributes()), transform.ErrMissingAttribute)
}

func TestKeysFilterBlueprints(t *testing.T) {
	c := lookup(t, "keys")
	out, err := c.Extractor.Extract(input(t, c, keyDump("BP_KeyBase"), "BP_KeyBase", "Map1", "Map1"))
	require.NoError(t, err)
	assert.True(t, out.Filtered())
}

func TestKeyMap(t *testing.T) {
	assert.Equal(t, "Suburb", keyMap("Map1"))
	assert.Equal(t, "Dam", keyMap("Map2_Keys"))
	assert.Equal(t, "Metro", keyMap("Map3"))
	assert.Equal(t, "Resort", keyMap("Map4"))
	assert.Equal(t, "Resort", keyMap("Elsewhere"))
}

func TestKeyIDNeedsTwoUnderscores(t *testing.T) {
	_, err := lookup(t, "keys").Transformer.GenerateID(&types.ExtractedItem{SourceFile: "Key_Lonely.json"})
	assert.Error(t, err)
}

// --- armor ---

const armorDump = `[{"Type": "WarfareTecVest_6B17_C", "Name": "Default__WarfareTecVest_6B17_C",
  "Template": {"ObjectPath": "Contractors_Showdown/Content/Blueprints/GameModes/Warfare/TecVest/WarfareTecVest.0"},
  "Properties": {
    "Weight": 7.5, "MaxDurability": 60, "ArmorClass": 4,
    "ProtectiveData": [{"Key": "EWarfareBodyPart::Thorax", "Value": 1}, {"Key": "EWarfareBodyPart::Stomach", "Value": 0.5}],
    "PenetrationChanceCurve": {"EditorCurveData": {"Keys": [{"Time": 0, "Value": 1}, {"Time": 1, "Value": 0.2}]}},
    "Info": {
      "Icon_11_BA1E5C224783410CB10781B70CE5A463": {"ObjectPath": "/Game/UI/Icon_6B17.Icon_6B17"},
      "DisplayName_2_E87F8CE0471A0D0F627BBA9F7E5EE752": {"LocalizedString": "6B17"},
      "Quality_8_A8290BF9475A0928D1614B82C6FDBFF4": "EWarfare_Quality::NewEnumerator3"}}}]`

func TestArmor(t *testing.T) {
	c := lookup(t, "armor")
	assert.True(t, c.Extractor.SkipFile("VestHolster_Pistol"))

	item, report, m := run(t, c, input(t, c, armorDump, "WarfareTecVest_6B17", "TecVest", ""))
	assert.Equal(t, 4, *item.Armor.ArmorClass)
	assert.Equal(t, []types.BodyPartProtection{{BodyPart: "Thorax", Value: 1}, {BodyPart: "Stomach", Value: 0.5}}, item.Armor.Protection)
	assert.Equal(t, []types.Keyframe{{Time: 0, Value: 1}, {Time: 1, Value: 0.2}}, item.Armor.PenetrationChance)
	assert.Equal(t, []string{"damageScalar", "durabilityDamageScalar"}, report.Missing)

	e := m.Entry
	assert.Equal(t, "armor_6b17", e.ID(), "legacy id")
	assert.Equal(t, "Body Armor", e["subcategory"])
	assert.Equal(t, "Epic", lookupPath(t, e, "stats.rarity"))
	assert.Equal(t, 60.0, lookupPath(t, e, "stats.durability"))
	_, ok := e.Lookup("stats.damageScalar")
	assert.False(t, ok)
	assert.NoError(t, transform.Validate(e, c.Transformer.RequiredAttributes()))
}

func TestArmorDerivedID(t *testing.T) {
	id, err := lookup(t, "armor").Transformer.GenerateID(&types.ExtractedItem{SourceFile: "WarfareTecVest_Brand-New.json"})
	require.NoError(t, err)
	assert.Equal(t, "armor_brand_new", id)
}

// --- weapons and ammo ---

func TestWeapon(t *testing.T) {
	c := lookup(t, "weapons")
	assert.True(t, c.Extractor.SkipFile("BP_WeaponHelper"))
	assert.True(t, c.Extractor.SkipFile("WarfareWeapon_RifleBase"))

	dump := `[{"Type": "WarfareWeapon_AK74_C", "Properties": {
	  "Weight": 3.3, "RateOfFire": 650, "Ergonomics": 40, "VerticalRecoil": 140, "HorizontalRecoil": 0,
	  "Caliber": "ECaliber::Caliber_545x39", "FireModes": ["EFireMode::Single", "EFireMode::Auto"],
	  ` + infoBag("Icon_AK74", "AK-74", "2") + `}}]`

	item, report, m := run(t, c, input(t, c, dump, "WarfareWeapon_AK74", "AssaultRifle", "AssaultRifle"))
	assert.Empty(t, report.Missing)
	assert.Equal(t, "AssaultRifle", item.Subcategory)
	assert.Equal(t, "weapon_ak74", m.Entry.ID())
	assert.Equal(t, "Caliber_545x39", lookupPath(t, m.Entry, "stats.caliber"))
	assert.Equal(t, []string{"Single", "Auto"}, lookupPath(t, m.Entry, "stats.fireModes"))
	assert.Equal(t, 0.0, lookupPath(t, m.Entry, "stats.horizontalRecoil"), "zero is a value for weapon stats")
	assert.NoError(t, transform.Validate(m.Entry, c.Transformer.RequiredAttributes()))
}

func TestAmmo(t *testing.T) {
	c := lookup(t, "ammo")
	dump := `[{"Type": "Ammo_545x39_PS_C", "Properties": {
	  "Weight": 0.01, "Damage": 50, "Penetration": 30, "ArmorDamage": 40, "InitialSpeed": 890,
	  ` + infoBag("Icon_545PS", "5.45x39 PS", "1") + `}}]`

	_, report, m := run(t, c, input(t, c, dump, "Ammo_545x39_PS", "545x39", "545x39"))
	assert.Equal(t, []string{"stackSize"}, report.Missing)
	assert.Equal(t, "ammo_545x39_ps", m.Entry.ID())
	assert.Equal(t, "545x39", lookupPath(t, m.Entry, "stats.caliber"))
	assert.Equal(t, 60, lookupPath(t, m.Entry, "stats.stackSize"))
	assert.ElementsMatch(t, []string{"stats.price", "stats.stackSize"}, m.Defaults)
	assert.NoError(t, transform.Validate(m.Entry, c.Transformer.RequiredAttributes()))
}

// Every derived id is category-prefixed and limited to [a-z0-9_].
func TestIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z]+_[a-z0-9_]+$`)
	name := "Some Name (v2)"
	r := testRegistry(t)
	files := []string{
		"Food_Odd Name.json", "VestHolster_Pistol.json", "WarfareBackpack_Odd.Name.json",
		"Key_Map1_Odd-Name.json", "WarfareTecVest_Odd Name.json", "WarfareWeapon_M4A1_C.json", "Ammo_9x19 AP.json",
	}
	for i, c := range r.All() {
		id, err := c.Transformer.GenerateID(&types.ExtractedItem{SourceFile: files[i], DisplayName: &name})
		require.NoError(t, err, c.Key)
		assert.Regexp(t, pattern, id, c.Key)
	}
}
