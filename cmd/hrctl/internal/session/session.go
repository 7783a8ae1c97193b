// Package session persists the logged-in user and token between hrctl
// invocations. This is presentation-layer state: the data layer issues
// the token once and this package keeps it across command runs, the way
// a web client would keep it across page reloads.
package session

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mr-tron/base58"
	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/internal/models"
)

// Sentinel errors
var (
	// ErrNotLoggedIn is returned when no session file exists.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Session is the persisted login state.
type Session struct {
	User      models.User `json:"user"`
	Token     string      `json:"token"`
	CreatedAt time.Time   `json:"created_at"`
}

// Fingerprint returns a short base58-encoded SHA-256 digest of the
// token, safe to put in log lines where the raw token is not.
func (s *Session) Fingerprint() string {
	hash := sha256.Sum256([]byte(s.Token))
	return base58.Encode(hash[:8])
}

// Store manages the session file on the local filesystem.
type Store struct {
	baseDir string
}

// NewStore creates a session store.
// If baseDir is empty, uses ~/.nexushr/
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".nexushr")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	return &Store{baseDir: baseDir}, nil
}

// Save writes the session file with 0600 permissions.
func (s *Store) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := os.WriteFile(s.path(), data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	log.Debug().
		Str("user_id", sess.User.ID).
		Str("token_fingerprint", sess.Fingerprint()).
		Msg("session saved")

	return nil
}

// Load reads the current session. Returns ErrNotLoggedIn if no session
// file exists.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &sess, nil
}

// Clear removes the session file. Clearing an absent session is a no-op.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session: %w", err)
	}
	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.baseDir, "session.json")
}
