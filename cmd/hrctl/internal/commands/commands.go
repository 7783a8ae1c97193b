// Package commands implements the hrctl subcommands. Each command opens
// the configured storage backend, wires the record keeper services over
// it, and renders the result as text or JSON.
package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/nexushr/nexushr/cmd/hrctl/internal/session"
	"github.com/nexushr/nexushr/internal/config"
	"github.com/nexushr/nexushr/internal/hr"
	"github.com/nexushr/nexushr/internal/kvstore"
	"github.com/nexushr/nexushr/internal/kvstore/postgres"
	"github.com/nexushr/nexushr/internal/kvstore/sqlite"
)

// Globals are flags shared by every subcommand.
type Globals struct {
	Debug   bool
	Version string

	// Config is the path to the config file. Empty means
	// ~/.nexushr/config.yaml.
	Config string

	// Backend overrides the configured storage backend.
	Backend string

	// LatencyMillis overrides the configured simulated store delay.
	// Negative means no override.
	LatencyMillis int
}

// env is the assembled application for one command invocation.
type env struct {
	cfg         *config.Config
	store       kvstore.Store
	auth        *hr.AuthService
	employees   *hr.EmployeeService
	teams       *hr.TeamService
	assignments *hr.AssignmentService
	audit       *hr.AuditLog
	queries     *hr.QueryService
	sessions    *session.Store

	closeFn func()
}

func (e *env) Close() {
	if e.closeFn != nil {
		e.closeFn()
	}
}

// actor loads the persisted session. Commands that mutate records call
// this so audit entries carry the logged-in user.
func (e *env) actor() (*session.Session, error) {
	sess, err := e.sessions.Load()
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// openEnv loads configuration, opens the selected backend and wires the
// services over it.
func openEnv(ctx context.Context, globals *Globals) (*env, error) {
	path := globals.Config
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if globals.Backend != "" {
		cfg.Backend = globals.Backend
	}
	if globals.LatencyMillis >= 0 {
		cfg.LatencyMillis = globals.LatencyMillis
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store, closeFn, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("backend", cfg.Backend).
		Dur("latency", cfg.Latency()).
		Msg("storage backend opened")

	store = kvstore.WithLatency(store, cfg.Latency())

	tokens, err := hr.NewTokenIssuer([]byte(cfg.TokenSecret))
	if err != nil {
		closeFn()
		return nil, err
	}

	sessions, err := session.NewStore("")
	if err != nil {
		closeFn()
		return nil, err
	}

	audit := hr.NewAuditLog(store)

	return &env{
		cfg:         cfg,
		store:       store,
		auth:        hr.NewAuthService(store, audit, tokens),
		employees:   hr.NewEmployeeService(store, audit),
		teams:       hr.NewTeamService(store, audit),
		assignments: hr.NewAssignmentService(store, audit),
		audit:       audit,
		queries:     hr.NewQueryService(store, audit),
		sessions:    sessions,
		closeFn:     closeFn,
	}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	noop := func() {}

	switch cfg.Backend {
	case config.BackendMemory:
		return kvstore.NewMemory(), noop, nil
	case config.BackendFile:
		store, err := kvstore.NewFile(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case config.BackendSQLite:
		store, err := sqlite.New(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warn().Err(err).Msg("failed to close sqlite store")
			}
		}, nil
	case config.BackendPostgres:
		poolCfg := &postgres.PoolConfig{ConnString: cfg.PostgresDSN}
		pool, err := postgres.NewPool(ctx, poolCfg)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgres.New(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// confirm prompts for a destructive action unless yes is set.
func confirm(yes bool, prompt string) bool {
	if yes {
		return true
	}

	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	var answer string
	if _, err := fmt.Scanln(&answer); err != nil {
		return false
	}
	return answer == "y" || answer == "Y" || answer == "yes"
}

func formatTime(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
