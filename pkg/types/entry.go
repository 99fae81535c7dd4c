// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Entry is a catalog record in its canonical output shape. Values are
// JSON-shaped: nested objects are map[string]any, lists are []any or
// []string, leaves are strings, numbers, bools or nil.
//
// A key that is absent is undefined; a key holding nil is null. Only the
// former fails required-attribute validation.
type Entry map[string]any

// ID returns the entry's "id" field, or "" when it is not a string.
func (e Entry) ID() string {
	id, _ := e["id"].(string)
	return id
}

// Lookup resolves a dotted path (e.g. "stats.rarity") through nested
// objects. The boolean is false when any segment is missing or a
// non-object is traversed.
func (e Entry) Lookup(path string) (any, bool) {
	var cur any = map[string]any(e)
	for _, part := range strings.Split(path, ".") {
		m, ok := asObject(cur)
		if !ok {
			return nil, false
		}
		v, ok := m[part]
		if !ok {
			return nil, false
		}
		cur = v
	}
	return cur, true
}

// Set assigns v at a dotted path, creating intermediate objects that are
// missing or hold a non-object value.
func (e Entry) Set(path string, v any) {
	parts := strings.Split(path, ".")
	cur := map[string]any(e)
	for _, part := range parts[:len(parts)-1] {
		next, ok := asObject(cur[part])
		if !ok {
			next = map[string]any{}
			cur[part] = next
		}
		cur = next
	}
	cur[parts[len(parts)-1]] = v
}

// Clone returns a deep copy of e that shares no maps or slices with it.
func (e Entry) Clone() Entry {
	if e == nil {
		return nil
	}
	return Entry(cloneObject(e))
}

// CloneValue deep-copies a JSON-shaped value.
func CloneValue(v any) any {
	switch t := v.(type) {
	case Entry:
		return t.Clone()
	case map[string]any:
		return cloneObject(t)
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = CloneValue(x)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(t))
		for i, x := range t {
			out[i] = cloneObject(x)
		}
		return out
	case []string:
		return append([]string(nil), t...)
	case []float64:
		return append([]float64(nil), t...)
	case []int:
		return append([]int(nil), t...)
	default:
		return v
	}
}

func cloneObject(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}
	return out
}

func asObject(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case Entry:
		return t, t != nil
	case map[string]any:
		return t, t != nil
	}
	return nil, false
}
