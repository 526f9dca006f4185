// Package cache provides a small Redis-backed TTL cache for the dashboard
// stats aggregate. It is config-gated; with no Redis URL the service
// recomputes stats on every request.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

const statsKey = "crm:stats"

// StatsCache caches the computed dashboard aggregate for a short TTL
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

// NewStatsCache builds a cache over an existing Redis client
func NewStatsCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *StatsCache {
	return &StatsCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached stats, or nil on a miss. Cache errors degrade to
// a miss; the caller recomputes.
func (c *StatsCache) Get(ctx context.Context) *models.Stats {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Warn("Stats cache read failed")
		}
		return nil
	}

	var stats models.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		c.logger.WithError(err).Warn("Stats cache entry corrupt, ignoring")
		return nil
	}
	return &stats
}

// Set stores the stats aggregate under the configured TTL
func (c *StatsCache) Set(ctx context.Context, stats *models.Stats) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Warn("Stats cache write failed")
	}
}

// Invalidate drops the cached aggregate
func (c *StatsCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		c.logger.WithError(err).Warn("Stats cache invalidation failed")
	}
}
