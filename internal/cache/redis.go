package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "polyfaq:"

// RedisCache is a Redis-backed page cache.
type RedisCache struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisCache connects to Redis at the given URL and verifies the
// connection with a bounded ping.
func NewRedisCache(url, keyPrefix string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return NewRedisCacheFromClient(client, keyPrefix), nil
}

// NewRedisCacheFromClient wraps an existing Redis client.
func NewRedisCacheFromClient(client *redis.Client, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisCache{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves a payload. An absent or expired key is a miss, not an
// error; any other Redis failure is returned to the caller.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set stores a payload with the given TTL.
func (c *RedisCache) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error {
	return c.client.Set(ctx, c.keyPrefix+key, payload, ttl).Err()
}

// Close closes the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Ping tests the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Verify RedisCache implements PageCache
var _ PageCache = (*RedisCache)(nil)
