package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackpdx/ggokka-ot/internal/dependencies/mocks"
	"github.com/blackpdx/ggokka-ot/internal/middleware"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	for _, l := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if l == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(l), &entry))
		lines = append(lines, entry)
	}
	return lines
}

func TestLoggingLevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		level  string
		logged bool
	}{
		{"ok", "/app", http.StatusOK, "INFO", true},
		{"client error", "/api/login", http.StatusUnauthorized, "WARN", true},
		{"server error", "/api/users", http.StatusInternalServerError, "ERROR", true},
		{"health ok is quiet", "/api/health", http.StatusOK, "", false},
		{"health failure is logged", "/api/health", http.StatusServiceUnavailable, "ERROR", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			clk := mocks.NewMockClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

			h := middleware.Logging(logger, clk)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			lines := logLines(t, &buf)
			if !tt.logged {
				assert.Empty(t, lines)
				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.level, lines[0]["level"])
			assert.Equal(t, tt.path, lines[0]["path"])
			assert.EqualValues(t, tt.status, lines[0]["status"])
			assert.EqualValues(t, 4, lines[0]["size"])
		})
	}
}

func TestLoggingKeepsFlusher(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	var flushed bool
	h := middleware.Logging(logger, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		f, ok := w.(http.Flusher)
		flushed = ok
		if ok {
			f.Flush()
		}
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app/events", nil))
	assert.True(t, flushed)
	assert.True(t, rec.Flushed)
}

func TestRecoveryCallsPanicHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	h := middleware.Recovery(logger, middleware.DefaultPanicHandler)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/app/event", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "panic recovered", lines[0]["msg"])
	assert.Equal(t, "/app/event", lines[0]["path"])
}
