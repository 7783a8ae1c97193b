// Package config loads the optional hrctl configuration file. Command
// line flags override anything set here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Backend names accepted in the config file and on the command line.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config selects and parameterizes the storage backend.
type Config struct {
	// Backend is one of memory, file, sqlite, postgres. Default: file.
	Backend string `yaml:"backend"`

	// DataDir is the base directory for the file backend.
	DataDir string `yaml:"data_dir"`

	// SQLitePath is the database file for the sqlite backend.
	SQLitePath string `yaml:"sqlite_path"`

	// PostgresDSN is the connection string for the postgres backend.
	PostgresDSN string `yaml:"postgres_dsn"`

	// LatencyMillis is the simulated per-operation store delay in
	// milliseconds. Zero disables the delay.
	LatencyMillis int `yaml:"latency_ms"`

	// TokenSecret signs session tokens. Any non-empty string works for
	// a local simulation; pick a long random one if the store is shared.
	TokenSecret string `yaml:"token_secret"`
}

// Latency returns the simulated store delay as a duration.
func (c *Config) Latency() time.Duration {
	return time.Duration(c.LatencyMillis) * time.Millisecond
}

// ApplyDefaults applies default values to unset fields.
func (c *Config) ApplyDefaults() {
	if c.Backend == "" {
		c.Backend = BackendFile
	}
	if c.TokenSecret == "" {
		c.TokenSecret = "nexushr-local-dev"
	}
}

// Validate checks that the backend selection is usable.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendFile, BackendSQLite:
		return nil
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("postgres backend requires postgres_dsn")
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// DefaultPath returns ~/.nexushr/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".nexushr", "config.yaml"), nil
}

// Load reads a config file. A missing file yields a default config, not
// an error.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.ApplyDefaults()
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
