package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blackpdx/ggokka-ot/internal/api"
	apimw "github.com/blackpdx/ggokka-ot/internal/api/middleware"
	"github.com/blackpdx/ggokka-ot/internal/config"
	"github.com/blackpdx/ggokka-ot/internal/factory"
	"github.com/blackpdx/ggokka-ot/internal/storage/postgres"
	redisstorage "github.com/blackpdx/ggokka-ot/internal/storage/redis"
	"github.com/blackpdx/ggokka-ot/internal/web"
)

// pruneInterval is how often idle browser sessions and rate limit buckets are dropped
const pruneInterval = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}
	level, _ := cfg.LogLevel()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded", cfg.LogAttrs()...)

	// Build factory config
	factoryCfg := factory.Config{
		Logger:             logger,
		StorageType:        cfg.Storage.Type,
		AnalysisDelay:      cfg.Analysis.Delay,
		Flow:               cfg.FlowSettings(),
		SessionIdleTimeout: cfg.Session.IdleTimeout,
	}
	switch cfg.Storage.Type {
	case config.StorageRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.Storage.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	case config.StoragePostgres:
		pgCfg := postgres.DefaultConfig()
		pgCfg.URL = cfg.Storage.DatabaseURL
		pgCfg.Migrate = cfg.Storage.Migrate
		factoryCfg.PostgresConfig = &pgCfg
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Create application factory
	app, err := factory.New(ctx, factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	// Create API router
	limiter := apimw.NewRateLimiter(cfg.RateLimitSettings(), app.Clock, logger)
	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:      logger,
		AuthService: app.AuthService,
		Clock:       app.Clock,
		RateLimiter: limiter,
		CORSOrigins: cfg.CORS.Origins,
	})

	// Create web router
	webRouter := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		Clock:          app.Clock,
		AuthService:    app.AuthService,
		CatalogService: app.CatalogService,
		Analyzer:       app.Analyzer,
		Sessions:       app.Sessions,
		HubManager:     app.HubManager,
	})

	// Combine routers
	mux := http.NewServeMux()
	mux.Handle("/app", webRouter)
	mux.Handle("/app/", webRouter)
	mux.Handle("/", apiRouter)

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Server.Host
	serverConfig.Port = cfg.Server.Port
	server := api.NewServer(mux, serverConfig, logger)

	go prune(ctx, app, limiter, logger)

	if err := server.Run(ctx); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func prune(ctx context.Context, app *factory.App, limiter *apimw.RateLimiter, logger *slog.Logger) {
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := app.PruneSessions(); n > 0 {
				logger.Debug("idle sessions dropped", slog.Int("count", n))
			}
			if n := limiter.Prune(); n > 0 {
				logger.Debug("rate limit buckets dropped", slog.Int("count", n))
			}
		}
	}
}
