package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, "smart_balance", cfg.DefaultStrategy)
	assert.Equal(t, 3, cfg.SuggestLimit)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.NotEmpty(t, cfg.DatabaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/tasks")
	t.Setenv("REDIS_URL", "redis://localhost:6379/1")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("SUGGEST_LIMIT", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, "postgres://localhost/tasks", cfg.DatabaseURL)
	assert.Equal(t, "redis://localhost:6379/1", cfg.RedisURL)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 5, cfg.SuggestLimit)
}

func TestLoadIgnoresGarbageValues(t *testing.T) {
	t.Setenv("SUGGEST_LIMIT", "many")
	t.Setenv("CACHE_TTL", "a while")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.SuggestLimit)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}
