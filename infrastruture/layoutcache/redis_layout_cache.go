package layoutcache

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":lock"

// RedisLayoutCache stores carved wall layouts in Redis with TTL support.
type RedisLayoutCache struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
}

// NewRedisLayoutCache initializes a RedisLayoutCache with the provided Redis client and TTL.
// A non-positive TTL keeps entries until evicted.
func NewRedisLayoutCache(client *redis.Client, ttlSeconds int) (i.LayoutCache, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}

	cache := &RedisLayoutCache{
		client: client,
		ttl:    time.Duration(max(ttlSeconds, 0)) * time.Second,
	}
	pool := goredis.NewPool(client)
	cache.locker = redsync.New(pool)
	return cache, nil
}

// Get returns the masks stored under key. A missing key is not an error.
func (c *RedisLayoutCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	masks, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return masks, true, nil
}

// Set stores masks under key, refreshing its expiration.
func (c *RedisLayoutCache) Set(ctx context.Context, key string, masks []byte) error {
	return c.client.Set(ctx, key, masks, c.ttl).Err()
}

// Lock takes a distributed lock so concurrent requests carve a layout once.
func (c *RedisLayoutCache) Lock(ctx context.Context, key string) (func(), error) {
	mutex := c.locker.NewMutex(key + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}
