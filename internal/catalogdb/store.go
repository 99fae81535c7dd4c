// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalogdb indexes catalog artifacts in SQLite so single entries
// can be looked up by id without loading every category file.
package catalogdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/catalog-etl/internal/artifact"
	"github.com/pdiddy/catalog-etl/pkg/types"
)

// ErrNotFound is returned when no entry has the requested id.
var ErrNotFound = errors.New("catalog entry not found")

// Store manages the catalog index database.
type Store struct {
	db *sql.DB
}

// ArtifactRecord describes the catalog artifact a category was last
// indexed from.
type ArtifactRecord struct {
	ItemType      string
	Release       string
	ArtifactID    string
	TransformedAt time.Time
	ItemCount     int
}

// IngestSummary reports the result of indexing one catalog.
type IngestSummary struct {
	Indexed  int
	Removed  int
	Skipped  int
	Replaced []string
}

// Open opens or creates the index database at path and creates the
// schema if it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			subcategory TEXT,
			name TEXT,
			rarity TEXT,
			release TEXT NOT NULL,
			document TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category)`,
		`CREATE TABLE IF NOT EXISTS artifacts (
			item_type TEXT PRIMARY KEY,
			release TEXT NOT NULL,
			artifact_id TEXT NOT NULL,
			transformed_at TEXT,
			item_count INTEGER,
			metadata TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest replaces the indexed entries of itemType with the items of
// catalog in one transaction. Entries without an id are skipped. When an
// id is already held by another category, the new entry wins and the id
// is listed in Replaced.
func (s *Store) Ingest(ctx context.Context, itemType string, catalog *artifact.Catalog, w io.Writer) (IngestSummary, error) {
	var summary IngestSummary

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM entries WHERE category = ?`, itemType)
	if err != nil {
		return summary, fmt.Errorf("deleting old entries: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		summary.Removed = int(n)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (id, category, subcategory, name, rarity, release, document)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			category=excluded.category, subcategory=excluded.subcategory,
			name=excluded.name, rarity=excluded.rarity,
			release=excluded.release, document=excluded.document`)
	if err != nil {
		return summary, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	owner, err := tx.PrepareContext(ctx, `SELECT category FROM entries WHERE id = ?`)
	if err != nil {
		return summary, fmt.Errorf("preparing owner query: %w", err)
	}
	defer owner.Close()

	release := catalog.Metadata.Version
	for _, e := range catalog.Items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		id := e.ID()
		if id == "" {
			fmt.Fprintf(w, "skipped  entry without id\n")
			summary.Skipped++
			continue
		}

		var prev string
		switch err := owner.QueryRowContext(ctx, id).Scan(&prev); {
		case err == nil:
			fmt.Fprintf(w, "replaced %s (was %s)\n", id, prev)
			summary.Replaced = append(summary.Replaced, id)
		case !errors.Is(err, sql.ErrNoRows):
			return summary, fmt.Errorf("checking entry %s: %w", id, err)
		}

		doc, err := json.Marshal(e)
		if err != nil {
			return summary, fmt.Errorf("encoding entry %s: %w", id, err)
		}
		_, err = stmt.ExecContext(ctx, id, itemType,
			stringField(e, "subcategory"), stringField(e, "name"), stringField(e, "stats.rarity"),
			release, string(doc))
		if err != nil {
			return summary, fmt.Errorf("inserting entry %s: %w", id, err)
		}
		summary.Indexed++
	}

	meta, err := json.Marshal(catalog.Metadata)
	if err != nil {
		return summary, fmt.Errorf("encoding metadata: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO artifacts (item_type, release, artifact_id, transformed_at, item_count, metadata)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(item_type) DO UPDATE SET
			release=excluded.release, artifact_id=excluded.artifact_id,
			transformed_at=excluded.transformed_at, item_count=excluded.item_count,
			metadata=excluded.metadata`,
		itemType, release, catalog.Metadata.ArtifactID,
		catalog.Metadata.TransformedAt.UTC().Format(time.RFC3339), summary.Indexed, string(meta),
	)
	if err != nil {
		return summary, fmt.Errorf("recording artifact: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing %s: %w", itemType, err)
	}
	fmt.Fprintf(w, "indexed %d %s entries (%d removed, %d skipped)\n", summary.Indexed, itemType, summary.Removed, summary.Skipped)
	return summary, nil
}

// Lookup returns the entry stored under id together with its category.
func (s *Store) Lookup(ctx context.Context, id string) (types.Entry, string, error) {
	var category, doc string
	err := s.db.QueryRowContext(ctx, `SELECT category, document FROM entries WHERE id = ?`, id).Scan(&category, &doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, "", fmt.Errorf("querying entry %s: %w", id, err)
	}
	e, err := decode(doc)
	if err != nil {
		return nil, "", fmt.Errorf("decoding entry %s: %w", id, err)
	}
	return e, category, nil
}

// List returns the entries of itemType ordered by id.
func (s *Store) List(ctx context.Context, itemType string) ([]types.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, document FROM entries WHERE category = ? ORDER BY id`, itemType)
	if err != nil {
		return nil, fmt.Errorf("querying %s entries: %w", itemType, err)
	}
	defer rows.Close()

	var out []types.Entry
	for rows.Next() {
		var id, doc string
		if err := rows.Scan(&id, &doc); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e, err := decode(doc)
		if err != nil {
			return nil, fmt.Errorf("decoding entry %s: %w", id, err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Artifacts returns the indexed artifact of every category, ordered by
// item type.
func (s *Store) Artifacts(ctx context.Context) ([]ArtifactRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT item_type, release, artifact_id, transformed_at, item_count FROM artifacts ORDER BY item_type`)
	if err != nil {
		return nil, fmt.Errorf("querying artifacts: %w", err)
	}
	defer rows.Close()

	var out []ArtifactRecord
	for rows.Next() {
		var r ArtifactRecord
		var at sql.NullString
		if err := rows.Scan(&r.ItemType, &r.Release, &r.ArtifactID, &at, &r.ItemCount); err != nil {
			return nil, fmt.Errorf("scanning artifact: %w", err)
		}
		if at.Valid {
			r.TransformedAt, _ = time.Parse(time.RFC3339, at.String)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func decode(doc string) (types.Entry, error) {
	var e types.Entry
	if err := json.Unmarshal([]byte(doc), &e); err != nil {
		return nil, err
	}
	return e, nil
}

// stringField returns the string at path, or NULL when the path is
// missing or does not hold a string.
func stringField(e types.Entry, path string) sql.NullString {
	v, ok := e.Lookup(path)
	if !ok {
		return sql.NullString{}
	}
	s, ok := v.(string)
	return sql.NullString{String: s, Valid: ok}
}
