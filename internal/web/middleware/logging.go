package middleware

import (
	"log/slog"
	"net/http"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
	"github.com/blackpdx/ggokka-ot/internal/middleware"
)

// Logging creates logging middleware for the screen app
func Logging(logger *slog.Logger, clk clock.Clock) func(http.Handler) http.Handler {
	return middleware.Logging(logger, clk)
}
