// Package storage maintains a SQLite index over the bibliography entries.
//
// The database is rebuilt wholesale from the .bib sources on every index
// run; it is a query convenience, never the source of truth.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Entry sources.
const (
	SourcePublication = "publication"
	SourceTalk        = "talk"
)

// Entry is one indexed bibliography entry.
type Entry struct {
	Key      string            `json:"key"`
	Source   string            `json:"source"`   // publication or talk
	Kind     string            `json:"kind"`     // BibTeX entry type
	Category string            `json:"category"` // render bucket, "" if dropped
	Title    string            `json:"title"`
	Venue    string            `json:"venue,omitempty"`
	Year     int               `json:"year"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// DB wraps the SQLite index database.
type DB struct {
	db *sql.DB
}

// Open opens or creates the index database at path.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			key TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			kind TEXT NOT NULL,
			category TEXT,
			title TEXT,
			venue TEXT,
			year INTEGER NOT NULL DEFAULT 0,
			fields_json TEXT
		);
		CREATE INDEX IF NOT EXISTS idx_entries_year ON entries(year DESC);
		CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category);
	`
	_, err := db.Exec(schema)
	return err
}

// Rebuild replaces the full contents of the index with the given entries.
// Returns the number of entries stored.
func (d *DB) Rebuild(entries []Entry) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return 0, fmt.Errorf("clearing entries: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO entries (key, source, kind, category, title, venue, year, fields_json)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		fieldsJSON, err := json.Marshal(e.Fields)
		if err != nil {
			return 0, fmt.Errorf("encoding fields for %s: %w", e.Key, err)
		}
		if _, err := stmt.Exec(e.Key, e.Source, e.Kind, e.Category, e.Title, e.Venue, e.Year, string(fieldsJSON)); err != nil {
			return 0, fmt.Errorf("inserting %s: %w", e.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing: %w", err)
	}
	return len(entries), nil
}

// ListAll returns every indexed entry, newest first.
func (d *DB) ListAll() ([]Entry, error) {
	rows, err := d.db.Query(`
		SELECT key, source, kind, category, title, venue, year, fields_json
		FROM entries
		ORDER BY year DESC, key
	`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var fieldsJSON string
		if err := rows.Scan(&e.Key, &e.Source, &e.Kind, &e.Category, &e.Title, &e.Venue, &e.Year, &fieldsJSON); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		if fieldsJSON != "" {
			if err := json.Unmarshal([]byte(fieldsJSON), &e.Fields); err != nil {
				return nil, fmt.Errorf("decoding fields for %s: %w", e.Key, err)
			}
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListBySource returns the indexed entries with the given source, newest first.
func (d *DB) ListBySource(source string) ([]Entry, error) {
	all, err := d.ListAll()
	if err != nil {
		return nil, err
	}
	filtered := make([]Entry, 0, len(all))
	for _, e := range all {
		if e.Source == source {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// CountByCategory returns entry counts keyed by category.
func (d *DB) CountByCategory() (map[string]int, error) {
	rows, err := d.db.Query(`SELECT category, COUNT(*) FROM entries GROUP BY category`)
	if err != nil {
		return nil, fmt.Errorf("counting entries: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		counts[category] = n
	}
	return counts, rows.Err()
}
