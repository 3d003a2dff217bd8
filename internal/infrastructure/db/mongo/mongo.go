// Package mongo holds the MongoDB adapters: the connection helper and the
// user, item, and sighting repositories.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config carries the MongoDB connection settings resolved from the
// environment. Timeout bounds the initial connect and ping; a non-positive
// value falls back to defaultTimeout.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return defaultTimeout
	}
	return c.Timeout
}

// Connect dials MongoDB, verifies connectivity with a ping, and returns the
// client together with the lost-and-found database handle.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.timeout())
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
