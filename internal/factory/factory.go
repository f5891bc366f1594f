package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/dependencies/random"
	"github.com/blackpdx/ggokka-ot/internal/services/analysis"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/catalog"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
	"github.com/blackpdx/ggokka-ot/internal/storage"
	"github.com/blackpdx/ggokka-ot/internal/storage/memory"
	"github.com/blackpdx/ggokka-ot/internal/storage/postgres"
	redisstorage "github.com/blackpdx/ggokka-ot/internal/storage/redis"
	"github.com/blackpdx/ggokka-ot/internal/web/session"
	"github.com/blackpdx/ggokka-ot/internal/web/sse"
)

// Storage type constants
const (
	StorageTypeMemory   = "memory"
	StorageTypeRedis    = "redis"
	StorageTypePostgres = "postgres"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	AuthService    *auth.Service
	CatalogService *catalog.Service
	Analyzer       *analysis.Analyzer
	Sessions       *session.Store
	HubManager     *sse.HubManager
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "postgres")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// PostgresConfig holds PostgreSQL settings (required if StorageType is "postgres")
	PostgresConfig *postgres.Config
	// AnalysisDelay is how long a body analysis takes
	AnalysisDelay time.Duration
	// Flow configures the flow controller of every browser session
	Flow flow.Config
	// SessionIdleTimeout drops browser sessions untouched for this long
	SessionIdleTimeout time.Duration
}

// New creates a new application with all dependencies wired
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg, logger), nil
}

func openStorage(ctx context.Context, cfg Config) (storage.Storage, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		store, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		return store, nil
	case StorageTypePostgres:
		if cfg.PostgresConfig == nil {
			return nil, errors.New("PostgresConfig required when StorageType is postgres")
		}
		return postgres.Open(ctx, *cfg.PostgresConfig)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'postgres'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *App {
	authCfg := cfg.AuthConfig
	if authCfg.BcryptCost == 0 {
		authCfg = auth.DefaultConfig()
	}

	catalogService := catalog.New(rnd)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		AuthService:    auth.New(store, clk, authCfg),
		CatalogService: catalogService,
		Analyzer:       analysis.New(clk, cfg.AnalysisDelay, logger),
		Sessions: session.NewStore(session.Config{
			Flow:        cfg.Flow,
			Styles:      catalogService.StyleNames(),
			IdleTimeout: cfg.SessionIdleTimeout,
		}, clk, logger),
		HubManager: sse.NewHubManager(logger),
	}
}

// PruneSessions drops idle browser sessions and their event hubs
func (a *App) PruneSessions() int {
	removed := a.Sessions.Prune()
	for _, id := range removed {
		a.HubManager.RemoveHub(id)
	}
	return len(removed)
}

// Close releases the storage connection, if any
func (a *App) Close() error {
	if c, ok := a.Storage.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
