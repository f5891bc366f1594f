package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/blackpdx/ggokka-ot/internal/api/apierr"
	"github.com/blackpdx/ggokka-ot/internal/dependencies/clock"
)

// RateLimitConfig configures the per-client token bucket
type RateLimitConfig struct {
	// PerMinute is the sustained number of requests allowed per client
	PerMinute int
	// Burst is the bucket size
	Burst int
}

// DefaultRateLimitConfig returns defaults for the auth endpoints
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		PerMinute: 30,
		Burst:     10,
	}
}

// RateLimiter hands out one token bucket per client address
type RateLimiter struct {
	cfg    RateLimitConfig
	clock  clock.Clock
	logger *slog.Logger

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimiter creates a RateLimiter. A zero PerMinute disables limiting.
func NewRateLimiter(cfg RateLimitConfig, clk clock.Clock, logger *slog.Logger) *RateLimiter {
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &RateLimiter{
		cfg:      cfg,
		clock:    clk,
		logger:   logger,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Allow reports whether a request from client may proceed now
func (l *RateLimiter) Allow(client string) bool {
	if l.cfg.PerMinute <= 0 {
		return true
	}

	l.mu.Lock()
	lim, ok := l.limiters[client]
	if !ok {
		lim = rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.cfg.PerMinute)), l.cfg.Burst)
		l.limiters[client] = lim
	}
	l.mu.Unlock()

	return lim.AllowN(l.clock.Now(), 1)
}

// Prune forgets clients whose bucket has refilled completely. Such a client
// is indistinguishable from a new one, so nothing is lost.
func (l *RateLimiter) Prune() int {
	now := l.clock.Now()
	full := float64(l.cfg.Burst)

	l.mu.Lock()
	defer l.mu.Unlock()
	removed := 0
	for client, lim := range l.limiters {
		if lim.TokensAt(now) >= full {
			delete(l.limiters, client)
			removed++
		}
	}
	return removed
}

// Clients returns the number of tracked clients
func (l *RateLimiter) Clients() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limiters)
}

// Middleware rejects requests over the limit with 429
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientAddr(r)
		if !l.Allow(client) {
			l.logger.Warn("rate limited",
				slog.String("client", client),
				slog.String("path", r.URL.Path),
			)
			apierr.WriteError(w, apierr.NewRateLimitedError())
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
