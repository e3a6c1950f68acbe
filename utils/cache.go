package utils

import (
	"context"
	"log"
	"time"

	"movebot/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient stores conversation transcripts.
	SessionClient *redis.Client
	// CacheClient is the generic cache client (distance lookups).
	CacheClient *redis.Client
)

// RedisConfigured reports whether a Redis address is set. Without it the
// server falls back to in-memory sessions and synchronous email delivery.
func RedisConfigured() bool {
	return config.AppConfig.RedisAddr != ""
}

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes the session and cache clients.
func InitRedis() {
	SessionClient = newClient(config.AppConfig.RedisSessionDB)
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
}

// GetSessionClient returns the Redis client for conversation storage.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitRedis()
	}
	return SessionClient
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitRedis()
	}
	return CacheClient
}
