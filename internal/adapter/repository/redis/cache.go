package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iho/gobalance/internal/infrastructure/metrics"
)

// Cache implements usecase.Cache using Redis.
type Cache struct {
	client  *redis.Client
	prefix  string
	metrics *metrics.Metrics
}

// NewCache creates a new Cache. m may be nil to skip instrumentation.
func NewCache(client *redis.Client, m *metrics.Metrics) *Cache {
	return &Cache{
		client:  client,
		prefix:  "cache:",
		metrics: m,
	}
}

// Get retrieves a value by key. A missing key returns nil without error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	val, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		c.observe("get", start, nil)
		return nil, nil
	}
	c.observe("get", start, err)
	if err != nil {
		return nil, err
	}

	return val, nil
}

// Set stores a value with TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	start := time.Now()

	err := c.client.Set(ctx, c.prefix+key, value, ttl).Err()
	c.observe("set", start, err)

	return err
}

// Delete removes a key.
func (c *Cache) Delete(ctx context.Context, key string) error {
	start := time.Now()

	err := c.client.Del(ctx, c.prefix+key).Err()
	c.observe("del", start, err)

	return err
}

func (c *Cache) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	c.metrics.RedisOperations.WithLabelValues(operation).Inc()
	c.metrics.RedisDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.RedisErrors.WithLabelValues(operation).Inc()
	}
}
