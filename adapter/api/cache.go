package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sony/gobreaker/v2"
)

const cacheKeyPrefix = "task-analyzer:response:"

// ResponseCache is a Redis-backed cache for rendered responses, keyed by a
// digest of the request body. The engine is deterministic, so an identical
// batch and strategy always produce an identical response, which makes the
// body digest a safe key. A circuit breaker guards the Redis calls: when
// the cache is unreachable, requests degrade to direct computation instead
// of failing.
type ResponseCache struct {
	client  *redis.Client
	breaker *gobreaker.CircuitBreaker[[]byte]
	ttl     time.Duration
	logger  *slog.Logger
}

// NewResponseCache creates a response cache. Returns nil when client is nil,
// which callers treat as caching disabled.
func NewResponseCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ResponseCache {
	if client == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:    "response-cache",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("cache circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &ResponseCache{
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[[]byte](settings),
		ttl:     ttl,
		logger:  logger,
	}
}

// CacheKey derives the cache key for an endpoint and request body.
func CacheKey(endpoint string, body []byte) string {
	digest := sha256.Sum256(body)
	return cacheKeyPrefix + endpoint + ":" + hex.EncodeToString(digest[:])
}

// Get returns the cached payload for key, if present. A miss is not a
// breaker failure, only an unreachable Redis is.
func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.breaker.Execute(func() ([]byte, error) {
		b, err := c.client.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return b, err
	})
	if err != nil {
		if !errors.Is(err, gobreaker.ErrOpenState) {
			c.logger.DebugContext(ctx, "cache get failed", "error", err)
		}
		return nil, false
	}
	if payload == nil {
		return nil, false
	}
	return payload, true
}

// Set stores a payload under key. Failures are logged, never surfaced.
func (c *ResponseCache) Set(ctx context.Context, key string, payload []byte) {
	_, err := c.breaker.Execute(func() ([]byte, error) {
		return nil, c.client.Set(ctx, key, payload, c.ttl).Err()
	})
	if err != nil && !errors.Is(err, gobreaker.ErrOpenState) {
		c.logger.DebugContext(ctx, "cache set failed", "error", err)
	}
}
