// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package artifact persists pipeline output. Each stage's result is
// wrapped in a metadata envelope (version, timestamp, counts and the
// run's statistics) and written to <dir>/<release>/<name>.json.
package artifact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/catalog-etl/pkg/types"
)

// ErrNotFound is returned when an artifact does not exist.
var ErrNotFound = errors.New("artifact not found")

// Stage names, used in artifact ids.
const (
	StageExtracted = "extracted"
	StageCatalog   = "catalog"
)

// namespace scopes artifact ids to this tool.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/pdiddy/catalog-etl/artifacts"))

// ExtractionMetadata heads an extracted artifact.
type ExtractionMetadata struct {
	ArtifactID      string                 `json:"artifactId"`
	Version         string                 `json:"version"`
	ExtractedAt     time.Time              `json:"extractedAt"`
	ItemType        string                 `json:"itemType"`
	ItemCount       int                    `json:"itemCount"`
	SourceDirectory string                 `json:"sourceDirectory"`
	ProcessingStats types.ExtractionCounts `json:"processingStats"`
	ExtractionStats types.ExtractionStats  `json:"extractionStats"`
}

// Extracted is the envelope of the extraction stage.
type Extracted struct {
	Metadata ExtractionMetadata     `json:"metadata"`
	Items    []*types.ExtractedItem `json:"items"`
}

// TransformationMetadata heads a catalog artifact.
type TransformationMetadata struct {
	ArtifactID          string                     `json:"artifactId"`
	Version             string                     `json:"version"`
	TransformedAt       time.Time                  `json:"transformedAt"`
	ItemType            string                     `json:"itemType"`
	ItemCount           int                        `json:"itemCount"`
	ProcessingStats     types.TransformationCounts `json:"processingStats"`
	TransformationStats types.TransformationStats  `json:"transformationStats"`
}

// Catalog is the envelope of the transformation stage.
type Catalog struct {
	Metadata TransformationMetadata `json:"metadata"`
	Items    []types.Entry          `json:"items"`
}

// ID returns the artifact id of one stage's output for an item type and
// release. The id is a name-based UUID, so a rerun keeps it.
func ID(stage, itemType, release string) string {
	return uuid.NewSHA1(namespace, []byte(stage+"/"+itemType+"/"+release)).String()
}

// Writer stores artifacts of one release.
type Writer struct {
	// Dir is the artifact root; files go under Dir/Release.
	Dir     string
	Release string
}

// Path returns where the artifact called name is stored.
func (w Writer) Path(name string) string {
	return filepath.Join(w.Dir, w.Release, name+".json")
}

// WriteExtracted stores an extracted artifact and returns its path.
func (w Writer) WriteExtracted(name string, a *Extracted) (string, error) {
	if a.Items == nil {
		a.Items = []*types.ExtractedItem{}
	}
	return w.write(name, a)
}

// WriteCatalog stores a catalog artifact and returns its path.
func (w Writer) WriteCatalog(name string, a *Catalog) (string, error) {
	if a.Items == nil {
		a.Items = []types.Entry{}
	}
	return w.write(name, a)
}

// ReadExtracted loads an extracted artifact.
func (w Writer) ReadExtracted(name string) (*Extracted, error) {
	var a Extracted
	if err := w.read(name, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ReadCatalog loads a catalog artifact.
func (w Writer) ReadCatalog(name string) (*Catalog, error) {
	var a Catalog
	if err := w.read(name, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// write replaces the artifact atomically: a temp file in the target
// directory is renamed over it.
func (w Writer) write(name string, v any) (string, error) {
	path := w.Path(name)
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", name, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating artifact directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+name+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("replacing %s: %w", path, err)
	}
	return path, nil
}

func (w Writer) read(name string, v any) error {
	path := w.Path(name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
