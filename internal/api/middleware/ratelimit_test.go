package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackpdx/ggokka-ot/internal/api/middleware"
	"github.com/blackpdx/ggokka-ot/internal/dependencies/mocks"
	"github.com/blackpdx/ggokka-ot/internal/testutil"
)

func newLimiter(perMinute, burst int) (*middleware.RateLimiter, *mocks.MockClock) {
	clk := mocks.NewMockClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC))
	cfg := middleware.RateLimitConfig{PerMinute: perMinute, Burst: burst}
	return middleware.NewRateLimiter(cfg, clk, testutil.NopLogger()), clk
}

func TestPruneDropsRefilledClients(t *testing.T) {
	limiter, clk := newLimiter(60, 2)

	require.True(t, limiter.Allow("10.0.0.1"))
	require.True(t, limiter.Allow("10.0.0.1"))
	require.False(t, limiter.Allow("10.0.0.1"))
	require.True(t, limiter.Allow("10.0.0.2"))
	assert.Equal(t, 2, limiter.Clients())

	// Neither bucket is full yet
	assert.Equal(t, 0, limiter.Prune())

	clk.Advance(time.Minute)

	assert.Equal(t, 2, limiter.Prune())
	assert.Equal(t, 0, limiter.Clients())
}

func TestPruneKeepsClientsStillLimited(t *testing.T) {
	limiter, clk := newLimiter(1, 1)

	require.True(t, limiter.Allow("10.0.0.1"))
	clk.Advance(30 * time.Second)

	assert.Equal(t, 0, limiter.Prune())
	assert.False(t, limiter.Allow("10.0.0.1"))
	assert.Equal(t, 1, limiter.Clients())
}

func TestDisabledLimiterTracksNobody(t *testing.T) {
	limiter, _ := newLimiter(0, 0)

	for i := 0; i < 5; i++ {
		assert.True(t, limiter.Allow("10.0.0.1"))
	}
	assert.Equal(t, 0, limiter.Clients())
	assert.Equal(t, 0, limiter.Prune())
}

func TestMiddlewareRejectsOverLimit(t *testing.T) {
	limiter, _ := newLimiter(1, 1)
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	serve := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
		req.RemoteAddr = "10.0.0.1:5555"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusNoContent, serve())
	assert.Equal(t, http.StatusTooManyRequests, serve())
}
