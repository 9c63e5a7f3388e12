// Package sqlite stores encoded corpora in an SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/fwojciec/diffmark"
)

// ErrNotFound is returned by Lookup when no entry has the requested base.
var ErrNotFound = errors.New("entry not found")

// Store manages encoded corpus persistence.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the database at dbPath.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening corpus db: %w", err)
	}

	if err := createTables(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createTables(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS entries (
			id   INTEGER PRIMARY KEY AUTOINCREMENT,
			base TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS patterns (
			entry_id INTEGER NOT NULL REFERENCES entries(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			pattern  TEXT NOT NULL,
			PRIMARY KEY (entry_id, position)
		);
		CREATE INDEX IF NOT EXISTS idx_entries_base ON entries(base);
	`)
	if err != nil {
		return fmt.Errorf("creating corpus tables: %w", err)
	}
	return nil
}

// Save replaces the stored corpus with entries in a single transaction.
func (s *Store) Save(ctx context.Context, entries []diffmark.EncodedEntry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM patterns; DELETE FROM entries;"); err != nil {
		return fmt.Errorf("clearing corpus: %w", err)
	}

	insertEntry, err := tx.PrepareContext(ctx, "INSERT INTO entries (base) VALUES (?)")
	if err != nil {
		return err
	}
	defer insertEntry.Close()
	insertPattern, err := tx.PrepareContext(ctx, "INSERT INTO patterns (entry_id, position, pattern) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer insertPattern.Close()

	for _, e := range entries {
		result, err := insertEntry.ExecContext(ctx, e.Base)
		if err != nil {
			return fmt.Errorf("inserting entry %q: %w", e.Base, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		for i, p := range e.Patterns {
			if _, err := insertPattern.ExecContext(ctx, id, i, p); err != nil {
				return fmt.Errorf("inserting pattern %d of %q: %w", i, e.Base, err)
			}
		}
	}

	return tx.Commit()
}

// Load returns every stored entry in insertion order.
func (s *Store) Load(ctx context.Context) ([]diffmark.EncodedEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.base, p.pattern
		FROM entries e
		LEFT JOIN patterns p ON p.entry_id = e.id
		ORDER BY e.id, p.position`)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Lookup returns the first stored entry whose base is base.
func (s *Store) Lookup(ctx context.Context, base string) (diffmark.EncodedEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.base, p.pattern
		FROM entries e
		LEFT JOIN patterns p ON p.entry_id = e.id
		WHERE e.id = (SELECT MIN(id) FROM entries WHERE base = ?)
		ORDER BY p.position`, base)
	if err != nil {
		return diffmark.EncodedEntry{}, fmt.Errorf("looking up %q: %w", base, err)
	}
	defer rows.Close()

	entries, err := scanEntries(rows)
	if err != nil {
		return diffmark.EncodedEntry{}, err
	}
	if len(entries) == 0 {
		return diffmark.EncodedEntry{}, fmt.Errorf("%q: %w", base, ErrNotFound)
	}
	return entries[0], nil
}

// Variants reconstructs the variants stored for base.
func (s *Store) Variants(ctx context.Context, base string) ([]string, error) {
	e, err := s.Lookup(ctx, base)
	if err != nil {
		return nil, err
	}
	decoded, err := e.Decode()
	if err != nil {
		return nil, err
	}
	return decoded.Variants, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]diffmark.EncodedEntry, error) {
	var entries []diffmark.EncodedEntry
	lastID := int64(-1)
	for rows.Next() {
		var id int64
		var base string
		var pattern sql.NullString
		if err := rows.Scan(&id, &base, &pattern); err != nil {
			return nil, fmt.Errorf("scanning corpus row: %w", err)
		}
		if id != lastID {
			entries = append(entries, diffmark.EncodedEntry{Base: base, Patterns: []string{}})
			lastID = id
		}
		if pattern.Valid {
			last := &entries[len(entries)-1]
			last.Patterns = append(last.Patterns, pattern.String)
		}
	}
	return entries, rows.Err()
}
