// Package config loads application configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Application
	AppEnv   string
	LogLevel string

	// HTTP server
	HTTPAddr string

	// Database (postgres://... or sqlite://path, empty disables persistence)
	DatabaseURL string

	// Redis response cache (empty disables caching)
	RedisURL string
	CacheTTL time.Duration

	// Engine defaults
	DefaultStrategy string
	SuggestLimit    int
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPAddr: getEnv("HTTP_ADDR", "0.0.0.0:8080"),

		DatabaseURL: getEnv("DATABASE_URL", defaultSQLiteURL()),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getDurationEnv("CACHE_TTL", 5*time.Minute),

		DefaultStrategy: getEnv("DEFAULT_STRATEGY", "smart_balance"),
		SuggestLimit:    getIntEnv("SUGGEST_LIMIT", 3),
	}

	return cfg, nil
}

// IsDevelopment returns true when running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// IsProduction returns true when running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func defaultSQLiteURL() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sqlite://task-analyzer.db"
	}
	return "sqlite://" + home + "/.task-analyzer/tasks.db"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
