package db

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

const CacheKeyPrefix = "litmus:cache:"

func ConnectRedis(ctx context.Context, redisURL string) error {
	if redisURL == "" {
		return errors.New("REDIS_URL is not set")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	Redis = redis.NewClient(opt)

	return Redis.Ping(ctx).Err()
}

func CloseRedis() {
	if Redis != nil {
		Redis.Close()
	}
}

// ResponseCache keeps upstream API response bodies for a short time so jobs started
// back to back share one read. Failures are logged and treated as misses.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewResponseCache(client *redis.Client, ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = 2 * time.Minute
	}
	return &ResponseCache{client: client, ttl: ttl}
}

func (c *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, CacheKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return b, true
}

func (c *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if err := c.client.Set(ctx, CacheKeyPrefix+key, body, c.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}
