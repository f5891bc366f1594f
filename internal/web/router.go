package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/services/analysis"
	"github.com/blackpdx/ggokka-ot/internal/services/auth"
	"github.com/blackpdx/ggokka-ot/internal/services/catalog"
	"github.com/blackpdx/ggokka-ot/internal/web/handler"
	"github.com/blackpdx/ggokka-ot/internal/web/middleware"
	"github.com/blackpdx/ggokka-ot/internal/web/session"
	"github.com/blackpdx/ggokka-ot/internal/web/sse"
)

// RouterConfig holds configuration for the web router
type RouterConfig struct {
	Logger         *slog.Logger
	Clock          clock.Clock
	AuthService    *auth.Service
	CatalogService *catalog.Service
	Analyzer       *analysis.Analyzer
	Sessions       *session.Store
	HubManager     *sse.HubManager
}

// NewRouter creates a new web router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger, cfg.Clock)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	sessionMiddleware := middleware.AppSession(cfg.Sessions)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create SSE hub manager if not provided
	hubManager := cfg.HubManager
	if hubManager == nil {
		hubManager = sse.NewHubManager(cfg.Logger)
	}

	appHandler := handler.NewAppHandler(cfg.AuthService, cfg.CatalogService, cfg.Analyzer, hubManager, cfg.Clock, cfg.Logger)

	app := r.PathPrefix("/app").Subrouter()
	app.Use(flashMiddleware)
	app.Use(sessionMiddleware)

	app.HandleFunc("", appHandler.Show).Methods(http.MethodGet)
	app.HandleFunc("/", appHandler.Show).Methods(http.MethodGet)
	app.HandleFunc("/events", appHandler.Events).Methods(http.MethodGet)
	app.HandleFunc("/event", appHandler.Event).Methods(http.MethodPost)
	app.HandleFunc("/back", appHandler.Back).Methods(http.MethodPost)
	app.HandleFunc("/restart", appHandler.Restart).Methods(http.MethodPost)
	app.HandleFunc("/login", appHandler.Login).Methods(http.MethodPost)
	app.HandleFunc("/signup", appHandler.Signup).Methods(http.MethodPost)
	app.HandleFunc("/profile", appHandler.Profile).Methods(http.MethodPost)
	app.HandleFunc("/analysis", appHandler.Analysis).Methods(http.MethodPost)
	app.HandleFunc("/outfits/refresh", appHandler.RefreshOutfits).Methods(http.MethodPost)

	return r
}
