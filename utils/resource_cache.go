// File: utils/resource_cache.go
package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const resourceCachePrefix = "cache:"

// ResourceCache is a write-through-invalidation cache keyed by resource
// type + id. Reads go through Get/Set; every mutating operation calls
// Invalidate (or InvalidateResource) for the keys it dirtied.
type ResourceCache interface {
	Get(ctx context.Context, resource, id string, out interface{}) (bool, error)
	Set(ctx context.Context, resource, id string, value interface{}) error
	Invalidate(ctx context.Context, resource, id string) error
	InvalidateResource(ctx context.Context, resource string) error
}

// RedisResourceCache is the production ResourceCache backed by Redis.
type RedisResourceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisResourceCache builds a cache over the given client with the given TTL.
func NewRedisResourceCache(client *redis.Client, ttl time.Duration) *RedisResourceCache {
	return &RedisResourceCache{Client: client, TTL: ttl}
}

func resourceKey(resource, id string) string {
	return resourceCachePrefix + resource + ":" + id
}

// Get unmarshals the cached blob for (resource, id) into out. The bool
// reports whether a cached value existed.
func (rc *RedisResourceCache) Get(ctx context.Context, resource, id string, out interface{}) (bool, error) {
	data, err := rc.Client.Get(ctx, resourceKey(resource, id)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cache get failed: %w", err)
	}
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return false, fmt.Errorf("cache entry for %s:%s is corrupt: %w", resource, id, err)
	}
	return true, nil
}

// Set stores value under (resource, id) with the cache TTL.
func (rc *RedisResourceCache) Set(ctx context.Context, resource, id string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}
	if err := rc.Client.Set(ctx, resourceKey(resource, id), data, rc.TTL).Err(); err != nil {
		return fmt.Errorf("cache set failed: %w", err)
	}
	return nil
}

// Invalidate drops the entry for (resource, id).
func (rc *RedisResourceCache) Invalidate(ctx context.Context, resource, id string) error {
	if err := rc.Client.Del(ctx, resourceKey(resource, id)).Err(); err != nil {
		return fmt.Errorf("cache invalidate failed: %w", err)
	}
	return nil
}

// InvalidateResource drops every entry under the resource prefix.
func (rc *RedisResourceCache) InvalidateResource(ctx context.Context, resource string) error {
	iter := rc.Client.Scan(ctx, 0, resourceCachePrefix+resource+":*", 0).Iterator()
	for iter.Next(ctx) {
		if err := rc.Client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("cache invalidate failed: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache scan failed: %w", err)
	}
	return nil
}
