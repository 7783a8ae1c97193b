// Package sqlite provides a kvstore.Store backed by a single SQLite
// table, using the pure-Go modernc.org/sqlite driver so no cgo is
// required.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"github.com/nexushr/nexushr/internal/kvstore"
)

// Store persists each named collection as a JSON blob in a
// collections(name, payload) table.
type Store struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) a sqlite-backed store at path.
// If path is empty, uses nexushr.db in the working directory.
func New(path string) (*Store, error) {
	if path == "" {
		path = "nexushr.db"
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	log.Debug().Str("path", path).Msg("sqlite store initialized")

	return &Store{db: db, path: path}, nil
}

// Get returns the payload for a collection.
func (s *Store) Get(ctx context.Context, collection string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM collections WHERE name = ?`, collection,
	).Scan(&payload)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, kvstore.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("select collection %s: %w", collection, err)
	}

	return payload, nil
}

// Put replaces the payload for a collection.
func (s *Store) Put(ctx context.Context, collection string, payload []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO collections (name, payload) VALUES (?, ?)
		 ON CONFLICT (name) DO UPDATE SET payload = excluded.payload`,
		collection, payload,
	)
	if err != nil {
		return fmt.Errorf("upsert collection %s: %w", collection, err)
	}

	return nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
