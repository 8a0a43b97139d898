// File: utils/cache.go
package utils

import (
	"context"
	"time"

	"ridelink/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// LeaseCacheClient is the dedicated client for seat-lease keys.
	LeaseCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client. Unlike the database,
// a missing Redis is not fatal: callers fall back to in-process state.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Redis (cache) unreachable, caching disabled: %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitLeaseCache initializes the Redis client for seat-lease keys.
func InitLeaseCache() {
	LeaseCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisLeaseDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := LeaseCacheClient.Ping(ctx).Result(); err != nil {
		GetLogger().Sugar().Warnf("Redis (lease) unreachable, seat leases fall back to memory: %v", err)
	}
}

// GetLeaseCacheClient returns the Redis client for seat-lease keys.
func GetLeaseCacheClient() *redis.Client {
	if LeaseCacheClient == nil {
		InitLeaseCache()
	}
	return LeaseCacheClient
}

// RedisAvailable reports whether the given client answers a ping within a
// bounded timeout.
func RedisAvailable(client *redis.Client) bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
