// Package store persists the vocabulary catalog, per-word progress records,
// and the append-only review event log in SQLite. The engine packages never
// import this; cmd wires records out of the store and results back in.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Catalog returns a CatalogRepo backed by this store.
func (s *Store) Catalog() CatalogRepo {
	return &catalogRepo{db: s.db}
}

// Progress returns a ProgressRepo backed by this store.
func (s *Store) Progress() ProgressRepo {
	return &progressRepo{db: s.db}
}

// Events returns an EventRepo backed by this store.
func (s *Store) Events() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS chapters (
			id TEXT PRIMARY KEY,
			number INTEGER NOT NULL,
			title TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS words (
			id TEXT PRIMARY KEY,
			lemma TEXT NOT NULL,
			translation TEXT NOT NULL,
			part_of_speech TEXT NOT NULL DEFAULT '',
			occurrences INTEGER NOT NULL DEFAULT 0,
			chapter_id TEXT NOT NULL REFERENCES chapters(id),
			UNIQUE (lemma, chapter_id)
		)`,
		`CREATE TABLE IF NOT EXISTS progress (
			word_id TEXT PRIMARY KEY REFERENCES words(id),
			mastery_level INTEGER NOT NULL DEFAULT 0,
			health REAL NOT NULL DEFAULT 100,
			last_reviewed_at TEXT,
			last_correct_review_at TEXT,
			next_due_at TEXT,
			total_reviews INTEGER NOT NULL DEFAULT 0,
			correct_reviews INTEGER NOT NULL DEFAULT 0,
			consecutive_correct INTEGER NOT NULL DEFAULT 0,
			failed_recently INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS review_events (
			id TEXT PRIMARY KEY,
			word_id TEXT NOT NULL REFERENCES words(id),
			rating TEXT NOT NULL,
			mastery_before INTEGER NOT NULL,
			mastery_after INTEGER NOT NULL,
			interval_days INTEGER NOT NULL,
			reviewed_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_review_events_word ON review_events(word_id)`,
	}
	for _, stmt := range ddl {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. VOQUAB_DB environment variable
// 2. $XDG_DATA_HOME/voquab/voquab.db
// 3. ~/.local/share/voquab/voquab.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("VOQUAB_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "voquab", "voquab.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
