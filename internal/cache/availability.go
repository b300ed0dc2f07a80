package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/clippercuts/booking-api/internal/domain/booking"
)

// AvailabilityCache keeps resolved availability for a short TTL so repeated
// calendar lookups don't hit the database. It is read-side only: correctness
// still comes from the submit-time check and the slot unique index.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

// NewAvailabilityCache wraps a redis client; a nil client disables caching.
func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

func key(barberID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", barberID, date)
}

// Get returns the cached availability or nil on miss. Errors degrade to a
// miss; the caller recomputes.
func (c *AvailabilityCache) Get(ctx context.Context, barberID uint, date string) (*domain.Availability, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}

	val, err := c.client.Get(ctx, key(barberID, date)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("availability cache get: %w", err)
	}

	var av domain.Availability
	if err := json.Unmarshal([]byte(val), &av); err != nil {
		return nil, fmt.Errorf("availability cache unmarshal: %w", err)
	}

	return &av, nil
}

func (c *AvailabilityCache) Set(ctx context.Context, av *domain.Availability) error {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := json.Marshal(av)
	if err != nil {
		return fmt.Errorf("availability cache marshal: %w", err)
	}

	if err := c.client.Set(ctx, key(av.BarberID, av.Date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("availability cache set: %w", err)
	}

	return nil
}

// Invalidate drops the cached entry after any booking write for the pair.
func (c *AvailabilityCache) Invalidate(ctx context.Context, barberID uint, date string) error {
	if c == nil || c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, key(barberID, date)).Err(); err != nil {
		return fmt.Errorf("availability cache del: %w", err)
	}
	return nil
}
