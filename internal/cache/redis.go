// FilePath: internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/twinops/pulsehub/internal/config"
	"github.com/twinops/pulsehub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

const snapshotKey = "pulsehub:dashboard:snapshot"

// RedisCache shares the dashboard snapshot between instances. Expiry is
// delegated to Redis, so a hit is fresh by construction. Any Redis
// failure is treated as a miss; the caller recomputes.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache creates a Redis-backed snapshot cache.
func NewRedisCache(cfg config.Redis, ttl time.Duration) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    ttl,
	}
}

// Ping verifies the Redis connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) Get(ctx context.Context) (models.DashboardSnapshot, bool) {
	data, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		return models.DashboardSnapshot{}, false
	}
	if err != nil {
		nuts.L.Warnf("[RedisCache] Failed to read snapshot: %v", err)
		return models.DashboardSnapshot{}, false
	}

	var snapshot models.DashboardSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		nuts.L.Warnf("[RedisCache] Failed to decode snapshot: %v", err)
		return models.DashboardSnapshot{}, false
	}
	return snapshot, true
}

func (c *RedisCache) Put(ctx context.Context, snapshot models.DashboardSnapshot) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		nuts.L.Warnf("[RedisCache] Failed to encode snapshot: %v", err)
		return
	}
	if err := c.client.Set(ctx, snapshotKey, data, c.ttl).Err(); err != nil {
		nuts.L.Warnf("[RedisCache] Failed to store snapshot: %v", err)
	}
}
