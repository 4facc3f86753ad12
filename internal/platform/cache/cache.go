// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache provides the read-through cache of single catalogue records.

The cache is strictly fail-open: a Redis outage is logged and the request falls
back to PostgreSQL. Only successful lookups are cached, so errors are always
recomputed, and every mutation of a record invalidates its key.
*/
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/kaamelott/pkg/slice"
)

// Cache is a byte-oriented key/value store with best-effort semantics.
type Cache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set stores a value under key.
	Set(ctx context.Context, key string, value []byte)
	// Delete evicts the given keys.
	Delete(ctx context.Context, keys ...string)
}

// Key renders the cache key of one record.
func Key(prefix string, id int) string {
	return prefix + strconv.Itoa(id)
}

// Keys renders the cache keys of several records sharing a prefix.
func Keys(prefix string, ids []int) []string {
	return slice.Map(ids, func(id int) string { return Key(prefix, id) })
}

// # Redis

// RedisCache implements [Cache] on Redis with a fixed TTL.
type RedisCache struct {
	client redis.Cmdable
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis creates a Redis-backed cache.
func NewRedis(client redis.Cmdable, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Get implements [Cache].
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "cache_get_failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, false
	}
	return value, true
}

// Set implements [Cache].
func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache_set_failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Delete implements [Cache].
func (c *RedisCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.WarnContext(ctx, "cache_delete_failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

// # Disabled

// Noop is the [Cache] used when no Redis is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte)        {}
func (Noop) Delete(context.Context, ...string)          {}

// # Read-Through

// Fetch returns the cached value of key, or calls load and caches its result.
// Load errors are returned unchanged and never cached. Undecodable entries are
// treated as misses.
func Fetch[T any](ctx context.Context, c Cache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	if raw, ok := c.Get(ctx, key); ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			return cached, nil
		}
		c.Delete(ctx, key)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if raw, err := json.Marshal(value); err == nil {
		c.Set(ctx, key, raw)
	}
	return value, nil
}
