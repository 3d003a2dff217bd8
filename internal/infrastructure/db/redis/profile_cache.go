package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/findly-app/lostfound-api/internal/core/domain"
)

const profileTTL = 5 * time.Minute

// ProfileCache is a read-through cache for profile projections. Entries are
// invalidated on every profile or password mutation; a miss always falls
// through to the store.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached profile or (nil, nil) on a miss.
func (c *ProfileCache) Get(ctx context.Context, userID string) (*domain.User, error) {
	raw, err := c.client.Get(ctx, c.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("profile cache get: %w", err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		// A corrupt entry behaves like a miss.
		_ = c.client.Del(ctx, c.key(userID)).Err()
		return nil, nil
	}
	return &user, nil
}

// Set stores the profile projection for profileTTL. The password hash is
// never cached; the domain type strips it from JSON.
func (c *ProfileCache) Set(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("profile cache set: %w", err)
	}
	return c.client.Set(ctx, c.key(user.ID), raw, profileTTL).Err()
}

// Invalidate drops the cached entry for userID.
func (c *ProfileCache) Invalidate(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}

func (c *ProfileCache) key(userID string) string {
	return "profile:" + userID
}
