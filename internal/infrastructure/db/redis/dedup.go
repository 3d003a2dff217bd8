package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/findly-app/lostfound-api/internal/core/ports"
)

const dedupTTL = time.Hour

// SightingDedup provides idempotency checks for sighting reports backed by
// Redis. Repeat reports of the same item by the same user inside a one-minute
// bucket are considered duplicates.
// Key format: sighting:<item_id>:<reporter_id>:<minute_bucket>
type SightingDedup struct {
	client *redis.Client
}

// NewSightingDedup creates a SightingDedup wrapping the given Redis client.
func NewSightingDedup(client *redis.Client) *SightingDedup {
	return &SightingDedup{client: client}
}

// IsDuplicate reports whether an equivalent sighting has already been processed.
func (d *SightingDedup) IsDuplicate(ctx context.Context, in ports.SightingInput) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(in)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this sighting has been processed (expires after dedupTTL).
func (d *SightingDedup) Mark(ctx context.Context, in ports.SightingInput) error {
	return d.client.Set(ctx, d.key(in), "1", dedupTTL).Err()
}

func (d *SightingDedup) key(in ports.SightingInput) string {
	return fmt.Sprintf("sighting:%s:%s:%d", in.ItemID, in.ReporterID, in.Timestamp.Unix()/60)
}
