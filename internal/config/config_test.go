package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackpdx/ggokka-ot/internal/model"
	"github.com/blackpdx/ggokka-ot/internal/services/flow"
)

// noEnvFile points Load at a file that does not exist
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GGOKKA_CONFIG", "")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.True(t, cfg.Storage.Migrate)
	assert.Equal(t, 3*time.Second, cfg.Analysis.Delay)
	assert.Empty(t, cfg.CORS.Origins)
	assert.Equal(t, 30, cfg.RateLimit.PerMinute)
	assert.Equal(t, 24*time.Hour, cfg.Session.IdleTimeout)

	fc := cfg.FlowSettings()
	assert.Equal(t, flow.BackLinear, fc.BackPolicy)
	assert.Equal(t, []model.Screen{model.ScreenVirtualFitting, model.ScreenRecentStyling, model.ScreenBlockedOutfits}, fc.Unavailable)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GGOKKA_CONFIG", "")
	t.Setenv("GGOKKA_SERVER_PORT", "9090")
	t.Setenv("GGOKKA_STORAGE_TYPE", "redis")
	t.Setenv("GGOKKA_STORAGE_REDIS_URL", "redis://cache:6379/1")
	t.Setenv("GGOKKA_ANALYSIS_DELAY", "500ms")
	t.Setenv("GGOKKA_CORS_ORIGINS", "http://a.example, http://b.example")
	t.Setenv("GGOKKA_FLOW_BACK_POLICY", "to-auth")
	t.Setenv("GGOKKA_FLOW_UNAVAILABLE", "shopping")
	t.Setenv("GGOKKA_LOG_LEVEL", "debug")

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, StorageRedis, cfg.Storage.Type)
	assert.Equal(t, "redis://cache:6379/1", cfg.Storage.RedisURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Analysis.Delay)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.Origins)
	assert.Equal(t, flow.BackToAuth, cfg.FlowSettings().BackPolicy)
	assert.Equal(t, []model.Screen{model.ScreenShopping}, cfg.FlowSettings().Unavailable)

	level, err := cfg.LogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeFile(t, "ggokka.toml", `
[server]
port = 7070

[rate_limit]
per_minute = 5
burst = 2

[flow]
unavailable = ["virtual-fitting"]
fallback_home = true
`)
	t.Setenv("GGOKKA_CONFIG", path)

	cfg, err := Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, 5, cfg.RateLimitSettings().PerMinute)
	assert.Equal(t, 2, cfg.RateLimitSettings().Burst)
	assert.True(t, cfg.FlowSettings().FallbackHome)
	assert.Equal(t, []string{"virtual-fitting"}, cfg.Flow.Unavailable)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("GGOKKA_CONFIG", "")
	t.Cleanup(func() { _ = os.Unsetenv("GGOKKA_SERVER_PORT") })
	path := writeFile(t, ".env", "GGOKKA_SERVER_PORT=6060\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("GGOKKA_CONFIG", "")
	t.Setenv("GGOKKA_SERVER_PORT", "5050")
	path := writeFile(t, ".env", "GGOKKA_SERVER_PORT=6060\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5050, cfg.Server.Port)
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("GGOKKA_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Load(noEnvFile(t))
	assert.ErrorContains(t, err, "read config")
}

func TestValidate(t *testing.T) {
	t.Setenv("GGOKKA_CONFIG", "")
	base, err := Load(noEnvFile(t))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"storage type", func(c *Config) { c.Storage.Type = "sqlite" }, "storage.type"},
		{"redis url", func(c *Config) { c.Storage.Type = StorageRedis; c.Storage.RedisURL = "" }, "redis_url"},
		{"database url", func(c *Config) { c.Storage.Type = StoragePostgres; c.Storage.DatabaseURL = "" }, "database_url"},
		{"delay", func(c *Config) { c.Analysis.Delay = -time.Second }, "analysis.delay"},
		{"back policy", func(c *Config) { c.Flow.BackPolicy = "sideways" }, "back_policy"},
		{"unavailable home", func(c *Config) { c.Flow.Unavailable = []string{"home"} }, "home"},
		{"unavailable onboarding", func(c *Config) { c.Flow.Unavailable = []string{"login"} }, "login"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.Flow.Unavailable = append([]string(nil), base.Flow.Unavailable...)
			tt.mutate(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.want)
		})
	}
}
