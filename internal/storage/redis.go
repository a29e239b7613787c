package storage

import (
	"context"
	"errors"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/marek-a-m/vigor/internal/ring"
	"github.com/marek-a-m/vigor/internal/xerrors"
)

const metricsKeyPrefix = "vigor:metrics:"

var _ MetricsCache = (*RedisCache)(nil)

// RedisCache stores computed ring metrics as JSON values keyed by day.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func metricsKey(preset string, day time.Time) string {
	return metricsKeyPrefix + preset + ":day:" + day.Format(time.DateOnly)
}

func (c *RedisCache) GetMetrics(ctx context.Context, preset string, day time.Time) (ring.Metrics, error) {
	data, err := c.client.Get(ctx, metricsKey(preset, day)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ring.Metrics{}, ErrNotFound
	}
	if err != nil {
		return ring.Metrics{}, err
	}

	var m ring.Metrics
	if err := go_json.Unmarshal(data, &m); err != nil {
		return ring.Metrics{}, xerrors.Internal(
			xerrors.WithMessage("corrupt cached metrics"),
			xerrors.WithCause(err),
		)
	}
	return m, nil
}

func (c *RedisCache) SetMetrics(ctx context.Context, preset string, m ring.Metrics, ttl time.Duration) error {
	data, err := go_json.Marshal(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, metricsKey(preset, m.Date), data, ttl).Err()
}
