// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package categories

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/pdiddy/catalog-etl/internal/extract"
	"github.com/pdiddy/catalog-etl/internal/source"
	"github.com/pdiddy/catalog-etl/internal/tables"
	"github.com/pdiddy/catalog-etl/internal/transform"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// Keys of the item info struct. The engine suffixes property names with
// a generated GUID.
const (
	infoIcon        = "Icon_11_BA1E5C224783410CB10781B70CE5A463"
	infoDisplayName = "DisplayName_2_E87F8CE0471A0D0F627BBA9F7E5EE752"
	infoQuality     = "Quality_8_A8290BF9475A0928D1614B82C6FDBFF4"
)

// infoBags are the property names the info struct is found under,
// in lookup order.
var infoBags = []string{"warfare Prop Info", "Info", "Info_0"}

var errNoInfo = errors.New("no item info in properties")

// baseRequired are the attributes every catalog entry must define.
var baseRequired = []string{
	"id", "name", "description", "category", "subcategory",
	"images.icon", "images.thumbnail", "images.fullsize",
	"stats.rarity", "stats.price", "stats.weight",
	"tips",
}

// rules carries what every category shares and provides the default
// behavior of both rule interfaces. Categories embed it and override
// what differs.
type rules struct {
	tbl *tables.Tables

	// key is the registry key, used for legacy-id lookups.
	key string

	// category and subcategory are the catalog labels.
	category    string
	subcategory string

	// images is the folder under /images/items/ holding the icons.
	images string
}

func (rules) SkipFile(string) bool { return false }

// FindElement returns the record whose Type starts with the file name.
func (rules) FindElement(records []source.Record, fileName string) (source.Record, bool) {
	return source.FindByTypePrefix(records, fileName)
}

func (rules) Inheritable() []string { return nil }

func (rules) RequiredAttributes() []string { return baseRequired }

func (rules) Hardcoded() []types.Entry { return nil }

// extractBase reads the fields every category shares: icon, display name,
// rarity and weight. Absent fields stay nil and are reported missing. A
// zero weight counts as absent.
func (r rules) extractBase(in extract.Input, report *extract.FieldReport) (*types.ExtractedItem, error) {
	props := in.Element.Properties
	info := source.FirstField(props, infoBags...)
	if !info.IsObject() {
		return nil, errNoInfo
	}

	item := &types.ExtractedItem{
		SourceFile:  in.SourceFile(),
		Directory:   in.Directory,
		Type:        in.Element.Type,
		Template:    in.Element.Template,
		Name:        in.Element.Name,
		Subcategory: in.Subcategory,
	}
	if item.Subcategory == "" {
		item.Subcategory = in.Directory
	}

	if p, ok := source.String(info, infoIcon, "ObjectPath"); ok {
		icon := source.AssetName(p)
		item.Icon = &icon
	} else {
		report.MarkMissing("icon")
	}

	if name, ok := source.String(info, infoDisplayName, "LocalizedString"); ok {
		item.DisplayName = &name
	} else {
		report.MarkMissing("displayName")
	}

	if q, ok := source.String(info, infoQuality); ok {
		if label, ok := r.tbl.RarityLabel(q); ok {
			item.Rarity = &label
		}
	}
	if item.Rarity == nil {
		report.MarkMissing("rarity")
	}

	item.Weight = nonZero(props, "Weight")
	if item.Weight == nil {
		report.MarkMissing("weight")
	}
	return item, nil
}

// entry builds the fields every catalog entry shares. Stats start with
// weight and rarity when known; categories add the rest.
func (r rules) entry(item *types.ExtractedItem, name any) types.Entry {
	stats := map[string]any{}
	if item.Weight != nil {
		stats["weight"] = *item.Weight
	}
	if item.Rarity != nil {
		stats["rarity"] = *item.Rarity
	}
	return types.Entry{
		"id":          item.ID,
		"name":        name,
		"description": "",
		"category":    r.category,
		"subcategory": item.Subcategory,
		"images":      imagePaths(r.images, item.Icon),
		"stats":       stats,
		"tips":        "",
	}
}

// defaults fills the shared stats a category falls back to when the
// source has none, recording each in mapped.Defaults.
type defaults struct {
	price  float64
	weight float64
	rarity string
}

func (d defaults) apply(item *types.ExtractedItem, m *transform.Mapped) {
	stats := m.Entry["stats"].(map[string]any)
	if item.Price != nil {
		stats["price"] = *item.Price
	} else {
		stats["price"] = d.price
		m.Defaults = append(m.Defaults, "stats.price")
	}
	if _, ok := stats["weight"]; !ok && d.weight != 0 {
		stats["weight"] = d.weight
		m.Defaults = append(m.Defaults, "stats.weight")
	}
	if _, ok := stats["rarity"]; !ok && d.rarity != "" {
		stats["rarity"] = d.rarity
		m.Defaults = append(m.Defaults, "stats.rarity")
	}
}

// imagePaths derives the three image URLs from the icon asset. Without an
// icon the paths are left out, so validation rejects the entry.
func imagePaths(folder string, icon *string) map[string]any {
	images := map[string]any{}
	if icon == nil {
		return images
	}
	p := "/images/items/" + folder + "/" + *icon + ".webp"
	images["icon"] = p
	images["thumbnail"] = p
	images["fullsize"] = p
	return images
}

// slug lowercases s and collapses every run of characters outside
// [a-z0-9] into a single underscore, trimming underscores at the ends.
func slug(s string) string {
	var b strings.Builder
	pending := false
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('_')
			}
			pending = false
			b.WriteRune(c)
			continue
		}
		pending = true
	}
	return b.String()
}

// number returns a numeric property, or nil when it is absent.
func number(r gjson.Result, keys ...string) *float64 {
	if v, ok := source.Number(r, keys...); ok {
		return &v
	}
	return nil
}

// nonZero is number with zero treated as absent.
func nonZero(r gjson.Result, keys ...string) *float64 {
	if v, ok := source.Number(r, keys...); ok && v != 0 {
		return &v
	}
	return nil
}

// optional converts a nil pointer to an untyped nil, so entries hold
// null rather than a typed nil pointer.
func optional[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// put sets key only when p is non-nil, leaving the attribute undefined
// otherwise.
func put[T any](m map[string]any, key string, p *T) {
	if p != nil {
		m[key] = *p
	}
}

// markMissing reports field when p is nil.
func markMissing[T any](report *extract.FieldReport, field string, p *T) {
	if p == nil {
		report.MarkMissing(field)
	}
}

// keyframes reads an engine float curve: <name>.EditorCurveData.Keys.
func keyframes(props gjson.Result, name string) []types.Keyframe {
	keys := source.Field(props, name, "EditorCurveData", "Keys")
	if !keys.IsArray() {
		return nil
	}
	out := []types.Keyframe{}
	keys.ForEach(func(_, k gjson.Result) bool {
		out = append(out, types.Keyframe{Time: k.Get("Time").Float(), Value: k.Get("Value").Float()})
		return true
	})
	return out
}
