package kvstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"
)

// File implements Store with one JSON file per collection under a base
// directory, the local-disk analog of a browser localStorage substrate.
type File struct {
	mu sync.Mutex

	baseDir string
}

// NewFile creates a file-backed store rooted at baseDir.
// If baseDir is empty, uses ~/.nexushr/data/
func NewFile(baseDir string) (*File, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".nexushr", "data")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	log.Debug().Str("baseDir", baseDir).Msg("file store initialized")

	return &File{baseDir: baseDir}, nil
}

// Get reads the payload for a collection from disk.
func (s *File) Get(ctx context.Context, collection string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrCollectionNotFound
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", collection, err)
	}

	return payload, nil
}

// Put writes the payload for a collection to disk. The write goes to a
// temp file first and is renamed into place so a crash mid-write cannot
// leave a truncated collection behind.
func (s *File) Put(ctx context.Context, collection string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.path(collection)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, payload, 0600); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", collection, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace collection %s: %w", collection, err)
	}

	return nil
}

func (s *File) path(collection string) string {
	return filepath.Join(s.baseDir, collection+".json")
}
