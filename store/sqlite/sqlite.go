// Package sqlite provides a durable core.Store backed by a SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/hupe1980/telemetry/core"
)

// DefaultNamespace scopes keys when none is configured.
const DefaultNamespace = "AnalyticsSDK"

const schema = `
	CREATE TABLE IF NOT EXISTS kv (
		namespace TEXT NOT NULL,
		key TEXT NOT NULL,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT (strftime('%s','now')),
		PRIMARY KEY (namespace, key)
	);
`

// Options configures a SQLite Store.
type Options struct {
	// Namespace scopes every key so several recorders can share one database.
	Namespace string
}

// Store persists key/value pairs in the kv table.
type Store struct {
	db        *sql.DB
	namespace string
}

// Open opens (or creates) the database at path and initializes the schema.
func Open(path string, optFns ...func(o *Options)) (*Store, error) {
	opts := Options{Namespace: DefaultNamespace}
	for _, fn := range optFns {
		fn(&opts)
	}
	if path == "" {
		return nil, fmt.Errorf("%w: sqlite path must not be empty", core.ErrInvalidConfiguration)
	}
	if opts.Namespace == "" {
		opts.Namespace = DefaultNamespace
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection serializes writers and keeps ":memory:" databases
	// from splitting across connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &Store{db: db, namespace: opts.Namespace}, nil
}

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE namespace = ? AND key = ?`, s.namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Put stores (or overwrites) value under key.
func (s *Store) Put(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (namespace, key, value, updated_at) VALUES (?, ?, ?, strftime('%s','now'))
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, s.namespace, key, value)
	if err != nil {
		return fmt.Errorf("put %s: %w", key, err)
	}
	return nil
}

// Remove deletes key. Missing keys are ignored.
func (s *Store) Remove(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE namespace = ? AND key = ?`, s.namespace, key); err != nil {
		return fmt.Errorf("remove %s: %w", key, err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
