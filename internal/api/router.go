package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/blackpdx/ggokka-ot/internal/api/handler"
	"github.com/blackpdx/ggokka-ot/internal/api/middleware"
	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	sharedmw "github.com/blackpdx/ggokka-ot/internal/middleware"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger      *slog.Logger
	AuthService *auth.Service
	Clock       clock.Clock
	// RateLimit applies to login and signup
	RateLimit middleware.RateLimitConfig
	// RateLimiter is used instead of building one from RateLimit, so the
	// caller can prune it
	RateLimiter *middleware.RateLimiter
	// CORSOrigins lists allowed origins; empty allows any
	CORSOrigins []string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	userHandler := handler.NewUserHandler(cfg.AuthService, cfg.Logger)

	limiter := cfg.RateLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, clk, cfg.Logger)
	}
	loggingMiddleware := sharedmw.Logging(cfg.Logger, clk)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	r.HandleFunc("/", handler.Liveness).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", handler.Health).Methods(http.MethodGet)
	api.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)

	authRoutes := api.NewRoute().Subrouter()
	authRoutes.Use(limiter.Middleware)
	authRoutes.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)
	authRoutes.HandleFunc("/signup", userHandler.Signup).Methods(http.MethodPost)

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}
