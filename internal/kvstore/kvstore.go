package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Sentinel errors for store operations
var (
	// ErrCollectionNotFound is returned by Get when a collection has never
	// been written. Load absorbs it into an empty slice.
	ErrCollectionNotFound = errors.New("collection not found")
)

// Store is the persistence substrate: get/set of a named collection as
// an opaque serialized payload. Each collection is an independently
// serialized JSON array of records, and a Put replaces the collection
// wholesale. Every higher-level operation is a read-modify-write of one
// or more collections through this interface; the store itself knows
// nothing about the record shapes.
//
// Implementations must make Put atomic per collection but are not
// required to isolate concurrent callers. The data layer assumes a
// single logical writer at a time.
type Store interface {
	// Get returns the serialized payload for a collection.
	// Returns ErrCollectionNotFound if the collection has never been written.
	Get(ctx context.Context, collection string) ([]byte, error)

	// Put replaces the serialized payload for a collection.
	Put(ctx context.Context, collection string, payload []byte) error
}

// Load decodes a collection into a slice of records. A collection that
// has never been written decodes to an empty slice, matching the
// "missing key means empty list" contract of the substrate.
func Load[T any](ctx context.Context, s Store, collection string) ([]T, error) {
	payload, err := s.Get(ctx, collection)
	if err != nil {
		if errors.Is(err, ErrCollectionNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("load %s: %w", collection, err)
	}

	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}

	return records, nil
}

// Save encodes a slice of records and replaces the collection. A nil
// slice is stored as an empty array, never as JSON null.
func Save[T any](ctx context.Context, s Store, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}

	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", collection, err)
	}

	if err := s.Put(ctx, collection, payload); err != nil {
		return fmt.Errorf("save %s: %w", collection, err)
	}

	return nil
}
