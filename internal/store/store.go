// Package store persists user binding overrides in a SQLite database.
// It implements the lookup/save contract consumed by binding
// resolution plus the maintenance operations the CLI needs.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_meta (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS input_bindings (
	command    TEXT PRIMARY KEY COLLATE NOCASE,
	chord      TEXT NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// DB is an open binding store. Command names compare
// case-insensitively.
type DB struct {
	db *sql.DB
}

// Open opens or creates the store at path, creating parent directories
// and initializing the schema as needed.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to store: %w", err)
	}

	s := &DB{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// initSchema creates missing tables and records the schema version on
// a fresh database. A database written by a newer build is refused
// rather than guessed at.
func (s *DB) initSchema() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating store schema: %w", err)
	}

	var ver int
	err := s.db.QueryRow("SELECT version FROM schema_meta LIMIT 1").Scan(&ver)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		if _, err := s.db.Exec("INSERT INTO schema_meta (version) VALUES (?)", schemaVersion); err != nil {
			return fmt.Errorf("recording schema version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("reading store schema version: %w", err)
	case ver > schemaVersion:
		return fmt.Errorf("store schema version %d is newer than this build supports (%d)", ver, schemaVersion)
	}
	return nil
}

// Lookup returns the stored chord for a command. A missing row is
// ("", false, nil); a non-nil error means the store itself failed,
// which resolution treats as source-absent.
func (s *DB) Lookup(name string) (string, bool, error) {
	var chord string
	err := s.db.QueryRow("SELECT chord FROM input_bindings WHERE command = ?", name).Scan(&chord)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("looking up %s: %w", name, err)
	}
	return chord, true, nil
}

// Save stores the chord for a command, replacing any existing value.
func (s *DB) Save(name, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO input_bindings (command, chord, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(command) DO UPDATE SET chord = excluded.chord, updated_at = excluded.updated_at
	`, name, value)
	if err != nil {
		return fmt.Errorf("saving binding for %s: %w", name, err)
	}
	return nil
}

// Delete removes the stored binding for a command. ok reports whether
// a row existed; deleting an absent command is not an error.
func (s *DB) Delete(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM input_bindings WHERE command = ?", name)
	if err != nil {
		return false, fmt.Errorf("deleting binding for %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear removes every stored binding.
func (s *DB) Clear() error {
	if _, err := s.db.Exec("DELETE FROM input_bindings"); err != nil {
		return fmt.Errorf("clearing bindings: %w", err)
	}
	return nil
}

// Row is one stored binding.
type Row struct {
	Command   string
	Chord     string
	UpdatedAt time.Time
}

// List returns every stored binding ordered by command name.
func (s *DB) List() ([]Row, error) {
	rows, err := s.db.Query("SELECT command, chord, updated_at FROM input_bindings ORDER BY command COLLATE NOCASE")
	if err != nil {
		return nil, fmt.Errorf("listing bindings: %w", err)
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var updated string
		if err := rows.Scan(&r.Command, &r.Chord, &updated); err != nil {
			return nil, fmt.Errorf("scanning binding row: %w", err)
		}
		if t, err := time.Parse("2006-01-02 15:04:05", updated); err == nil {
			r.UpdatedAt = t
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Close releases the underlying database.
func (s *DB) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
