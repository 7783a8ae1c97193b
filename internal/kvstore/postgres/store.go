// Package postgres provides a kvstore.Store backed by a PostgreSQL
// table, for deployments where the HR data should live in a shared
// database rather than on local disk.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/internal/kvstore"
)

const maxPutAttempts = 4

// Store persists each named collection as a JSON blob in a
// collections(name, payload) table.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a postgres-backed store on an existing pool and ensures
// the collections table exists.
func New(ctx context.Context, pool *pgxpool.Pool) (*Store, error) {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		payload BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	if err != nil {
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Get returns the payload for a collection.
func (s *Store) Get(ctx context.Context, collection string) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM collections WHERE name = $1`, collection,
	).Scan(&payload)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kvstore.ErrCollectionNotFound
		}
		return nil, fmt.Errorf("select collection %s: %w", collection, err)
	}

	return payload, nil
}

// Put replaces the payload for a collection. Transient failures
// (serialization conflicts, dropped connections) are retried with
// exponential backoff before giving up.
func (s *Store) Put(ctx context.Context, collection string, payload []byte) error {
	operation := func() (struct{}, error) {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO collections (name, payload, updated_at) VALUES ($1, $2, now())
			 ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = now()`,
			collection, payload,
		)
		if err != nil {
			if isRetryable(err) {
				log.Debug().Err(err).Str("collection", collection).Msg("retrying collection write")
				return struct{}{}, err
			}
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, nil
	}

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(maxPutAttempts),
		backoff.WithMaxElapsedTime(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("upsert collection %s: %w", collection, err)
	}

	return nil
}
