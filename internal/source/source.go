// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source reads game-engine dump files. Each file is a JSON array of
// object records; property bags stay as gjson results so extractors can
// reach deeply nested, engine-specific keys without declaring structs for
// them.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
)

// Extension is the suffix of dump files.
const Extension = ".json"

var (
	// ErrInvalidJSON is returned for a file that does not parse as JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrNotArray is returned for a file whose top-level value is not an array.
	ErrNotArray = errors.New("top-level value is not an array")
)

// Record is one exported object.
type Record struct {
	// Type is the object's class name (e.g. "WarfareTecVest_6B17_C").
	Type string

	// Name is the object name within the package.
	Name string

	// Template is Template.ObjectPath, or "" when the object has none.
	Template string

	// Properties is the object's property bag.
	Properties gjson.Result
}

// HasProperties reports whether the record carries a property object.
func (r Record) HasProperties() bool {
	return r.Properties.IsObject()
}

// Parse decodes the contents of one dump file.
func Parse(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, ErrNotArray
	}

	records := []Record{}
	root.ForEach(func(_, v gjson.Result) bool {
		records = append(records, Record{
			Type:       v.Get("Type").String(),
			Name:       v.Get("Name").String(),
			Template:   v.Get("Template.ObjectPath").String(),
			Properties: v.Get("Properties"),
		})
		return true
	})
	return records, nil
}

// ReadFile reads and parses one dump file.
func ReadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// FindByTypePrefix returns the first record whose Type starts with prefix.
func FindByTypePrefix(records []Record, prefix string) (Record, bool) {
	for _, r := range records {
		if r.Type != "" && strings.HasPrefix(r.Type, prefix) {
			return r, true
		}
	}
	return Record{}, false
}

// FilterByTypePrefix returns every record whose Type starts with prefix,
// in file order.
func FilterByTypePrefix(records []Record, prefix string) []Record {
	var out []Record
	for _, r := range records {
		if r.Type != "" && strings.HasPrefix(r.Type, prefix) {
			out = append(out, r)
		}
	}
	return out
}

// JSONFiles lists the dump files directly inside dir, sorted by name.
func JSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// Subdirectories lists the folders directly inside dir, sorted by name.
func Subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}
