// internal/adapters/redis_adapter/cache.go
package redis_a

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/alsaqri/phoneshop/internal/core/ports"
)

// ErrCacheMiss is returned by Load when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

const scanBatch = 100

// Cache is the Redis implementation of ports.Cache. Values are stored as JSON.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

var _ ports.Cache = (*Cache)(nil)

// NewCache wraps client; ttl applies when a caller passes none.
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger.With(slog.String("component", "cache")),
	}
}

// Load decodes the value at key into dest.
func (c *Cache) Load(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrCacheMiss
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// Store encodes value at key.
func (c *Cache) Store(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, c.expiry(ttl)).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Remember serves key from Redis or runs load once per key across
// concurrent callers. Redis being down degrades to calling load directly.
func (c *Cache) Remember(ctx context.Context, key string, ttl time.Duration, dest interface{}, load ports.Loader) error {
	err := c.Load(ctx, key, dest)
	if err == nil {
		c.logger.DebugContext(ctx, "cache hit", slog.String("key", key))
		return nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		c.logger.WarnContext(ctx, "cache read failed, loading from source",
			slog.String("key", key),
			slog.String("error", err.Error()))
	}

	v, err, shared := c.group.Do(key, func() (interface{}, error) {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", key, err)
		}
		if err := c.client.Set(ctx, key, data, c.expiry(ttl)).Err(); err != nil {
			c.logger.WarnContext(ctx, "failed to cache loaded value",
				slog.String("key", key),
				slog.String("error", err.Error()))
		}
		return data, nil
	})
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	c.logger.DebugContext(ctx, "cache filled",
		slog.String("key", key),
		slog.Bool("shared", shared))
	return json.Unmarshal(v.([]byte), dest)
}

// Invalidate deletes exact keys and everything matching wildcard patterns.
func (c *Cache) Invalidate(ctx context.Context, patterns ...string) error {
	var keys []string
	for _, p := range patterns {
		if !strings.Contains(p, "*") {
			keys = append(keys, p)
			continue
		}

		iter := c.client.Scan(ctx, 0, p, scanBatch).Iterator()
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("redis scan %s: %w", p, err)
		}
	}
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	c.logger.DebugContext(ctx, "cache invalidated", slog.Int("keys", len(keys)))
	return nil
}

// Reserve stores the claim time under key if nobody holds it.
func (c *Cache) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := c.client.SetNX(ctx, key, time.Now().Unix(), c.expiry(ttl)).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

// Count increments the counter at key.
func (c *Cache) Count(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("redis incr %s: %w", key, err)
	}
	return n, nil
}

// Ping checks that Redis answers.
func (c *Cache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *Cache) expiry(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return c.ttl
	}
	return ttl
}
