// Package rediscache provides an optional Redis-backed cache for derived
// read models (trends, reminders, heatmaps). Cache misses and cache errors
// both fall through to PostgreSQL; the cache never blocks a read.
package rediscache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/oneonone-backend/internal/config"
)

const keyPrefix = "oneonone:readmodel:"

// Cache wraps a Redis client with JSON get/set and invalidation helpers.
// A nil *Cache is valid and behaves as a disabled cache: gets miss, sets
// and invalidations are no-ops.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis using RedisConfig and pings for fail-fast validation.
func New(ctx context.Context, cfg config.RedisConfig) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &Cache{client: client, ttl: cfg.CacheTTL}, nil
}

// NewWithClient creates a cache from an existing Redis client (tests).
func NewWithClient(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

func key(parts ...string) string {
	k := keyPrefix
	for i, p := range parts {
		if i > 0 {
			k += ":"
		}
		k += p
	}
	return k
}

// MemberKey builds a member-scoped read model key.
func MemberKey(kind, memberID string) string {
	return key(kind, memberID)
}

// GlobalKey builds a cross-member read model key.
func GlobalKey(kind string) string {
	return key(kind)
}

// Get unmarshals the cached JSON value into dest.
// Returns false on miss or on any cache error.
func (c *Cache) Get(ctx context.Context, k string, dest any) bool {
	if c == nil {
		return false
	}
	data, err := c.client.Get(ctx, k).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// Poisoned entry: drop it so the next write repairs the key.
		_ = c.client.Del(ctx, k).Err()
		return false
	}
	return true
}

// Set stores the value as JSON with the configured TTL. Errors are returned
// so callers can log them, but callers must not fail the read on them.
func (c *Cache) Set(ctx context.Context, k string, value any) error {
	if c == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	if err := c.client.Set(ctx, k, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("set cache key %s: %w", k, err)
	}
	return nil
}

// GetMember reads a member-scoped read model. Returns false on miss.
func (c *Cache) GetMember(ctx context.Context, kind, memberID string, dest any) bool {
	return c.Get(ctx, MemberKey(kind, memberID), dest)
}

// SetMember stores a member-scoped read model.
func (c *Cache) SetMember(ctx context.Context, kind, memberID string, value any) error {
	return c.Set(ctx, MemberKey(kind, memberID), value)
}

// GetGlobal reads a cross-member read model. Returns false on miss.
func (c *Cache) GetGlobal(ctx context.Context, kind string, dest any) bool {
	return c.Get(ctx, GlobalKey(kind), dest)
}

// SetGlobal stores a cross-member read model.
func (c *Cache) SetGlobal(ctx context.Context, kind string, value any) error {
	return c.Set(ctx, GlobalKey(kind), value)
}

// InvalidateMember drops all member-scoped read models for one member plus
// the global listings. Called after every meeting or member mutation.
func (c *Cache) InvalidateMember(ctx context.Context, memberID string) error {
	if c == nil {
		return nil
	}
	keys := []string{
		MemberKey("action_trends", memberID),
		MemberKey("topic_trends", memberID),
		GlobalKey("meeting_frequency"),
		GlobalKey("heatmap"),
		GlobalKey("recommended"),
		GlobalKey("overdue"),
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate member %s: %w", memberID, err)
	}
	return nil
}
