// Package redis holds the Redis adapters: the connection helper, the
// sighting dedup store, and the profile cache.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config carries the Redis connection settings resolved from the environment.
// Timeout bounds the connectivity check; a non-positive value falls back to
// defaultTimeout.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// Connect builds a Redis client and verifies connectivity with a ping before
// handing it out, so a misconfigured address fails at startup rather than on
// the first dedup check.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
