package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultCountTTL = time.Minute

// CountCache keeps successful notification counts for a short TTL so a
// burst of launcher refreshes does not hammer the providers.
// Key format: notifycount:<user_id>:<app_id>
type CountCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCountCache creates a CountCache wrapping the given Redis client. A
// non-positive ttl falls back to one minute.
func NewCountCache(client *redis.Client, ttl time.Duration) *CountCache {
	if ttl <= 0 {
		ttl = defaultCountTTL
	}
	return &CountCache{client: client, ttl: ttl}
}

// Get returns the cached count for (user, app), reporting a miss when the
// key is absent or expired.
func (c *CountCache) Get(ctx context.Context, userID, appID string) (int, bool, error) {
	n, err := c.client.Get(ctx, c.key(userID, appID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("count cache get: %w", err)
	}
	return n, true, nil
}

// Set records a count for (user, app), expiring after the configured TTL.
func (c *CountCache) Set(ctx context.Context, userID, appID string, count int) error {
	return c.client.Set(ctx, c.key(userID, appID), count, c.ttl).Err()
}

func (c *CountCache) key(userID, appID string) string {
	return fmt.Sprintf("notifycount:%s:%s", userID, appID)
}
