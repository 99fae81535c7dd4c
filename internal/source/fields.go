// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"strings"

	"github.com/tidwall/gjson"
)

// Field descends through literal keys. Keys are escaped, so names
// containing gjson path syntax (dots, wildcards) are matched verbatim.
func Field(r gjson.Result, keys ...string) gjson.Result {
	escaped := make([]string, len(keys))
	for i, k := range keys {
		escaped[i] = gjson.Escape(k)
	}
	return r.Get(strings.Join(escaped, "."))
}

// FirstField returns the first of keys that exists on r.
func FirstField(r gjson.Result, keys ...string) gjson.Result {
	for _, k := range keys {
		if v := Field(r, k); v.Exists() {
			return v
		}
	}
	return gjson.Result{}
}

// Number returns a numeric field. The boolean is false when the field is
// absent or not a number.
func Number(r gjson.Result, keys ...string) (float64, bool) {
	v := Field(r, keys...)
	if v.Type != gjson.Number {
		return 0, false
	}
	return v.Float(), true
}

// String returns a non-empty string field.
func String(r gjson.Result, keys ...string) (string, bool) {
	v := Field(r, keys...)
	if v.Type != gjson.String || v.Str == "" {
		return "", false
	}
	return v.Str, true
}

// AssetName reduces an object path such as
// "/Game/UI/Icons/Icon_Vest.Icon_Vest" to its asset name ("Icon_Vest"):
// the last path segment up to its first dot.
func AssetName(objectPath string) string {
	name := objectPath[strings.LastIndex(objectPath, "/")+1:]
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}
	return name
}

// EnumTail strips the enum type from a value such as
// "ECaliber::Caliber_762x39", returning "Caliber_762x39".
func EnumTail(v string) string {
	if i := strings.LastIndex(v, "::"); i >= 0 {
		return v[i+2:]
	}
	return v
}
