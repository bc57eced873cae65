package cache

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPrefix namespaces every key the server writes.
const RedisPrefix = "ganttline:"

// RedisCache stores entries in Redis. Network failures are retried with
// backoff; a missing key is a plain miss.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to the server at url, e.g.
// "redis://localhost:6379/0". The connection is verified with PING.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	c := &RedisCache{client: redis.NewClient(opts)}
	if err := c.retry(ctx, func() error { return c.client.Ping(ctx).Err() }); err != nil {
		_ = c.client.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return c, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.retry(ctx, func() error {
		var err error
		data, err = c.client.Get(ctx, RedisPrefix+key).Bytes()
		return err
	})
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.retry(ctx, func() error {
		return c.client.Set(ctx, RedisPrefix+key, data, ttl).Err()
	})
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.retry(ctx, func() error {
		return c.client.Del(ctx, RedisPrefix+key).Err()
	})
}

func (c *RedisCache) Close() error { return c.client.Close() }

// retry runs fn with backoff while it fails on the network.
func (c *RedisCache) retry(ctx context.Context, fn func() error) error {
	return RetryWithBackoff(ctx, func() error {
		err := fn()
		var ne net.Error
		if errors.As(err, &ne) {
			return Retryable(err)
		}
		return err
	})
}

var _ Cache = (*RedisCache)(nil)
