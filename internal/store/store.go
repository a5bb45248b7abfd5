// Package store persists solve-search runs to SQLite, following the
// teacher's embedded-migration/schema_version pattern.
package store

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

//go:embed migrations/001_initial.sql
var migration001 string

var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
}

// DB wraps the SQLite connection used for solve history.
type DB struct {
	*sql.DB
	path string
}

// DefaultPath returns the default database path under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("store: home directory: %w", err)
	}
	dir := filepath.Join(home, ".kociemba")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("store: create config dir: %w", err)
	}
	return filepath.Join(dir, "kociemba.db"), nil
}

// Open opens (or creates) the SQLite database at path and applies any
// pending migrations. The DSN enables WAL journaling and foreign keys.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create database dir: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	db := &DB{DB: sqlDB, path: path}
	if err := db.migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// OpenDefault opens the database at DefaultPath.
func OpenDefault() (*DB, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the database file path.
func (db *DB) Path() string { return db.path }

func (db *DB) migrate() error {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("store: check schema_version: %w", err)
	}

	current := 0
	if count > 0 {
		if err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&current); err != nil {
			return fmt.Errorf("store: read schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("store: apply migration %d: %w", m.version, err)
		}
	}
	return nil
}
