// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"latewiz/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs the provider-resource cache.
	CacheClient *redis.Client
	// AttemptCacheClient is the dedicated client for connection-attempt state.
	AttemptCacheClient *redis.Client
)

// InitCache initializes the Redis client for provider-resource caching.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the resource cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAttemptCache initializes the Redis client for connection-attempt state.
func InitAttemptCache() {
	AttemptCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAttemptDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AttemptCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Attempts): %v", err)
	}
}

// GetAttemptCacheClient returns the Redis client for connection-attempt state.
func GetAttemptCacheClient() *redis.Client {
	if AttemptCacheClient == nil {
		InitAttemptCache()
	}
	return AttemptCacheClient
}
