package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"taskmanager/internal/modules/statistics"
)

const dashboardKey = "statistics:dashboard"

type StatisticsCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *slog.Logger
}

func NewStatisticsCache(client *redis.Client, ttl time.Duration, log *slog.Logger) *StatisticsCache {
	return &StatisticsCache{client: client, ttl: ttl, log: log}
}

func (c *StatisticsCache) CachedDashboard(ctx context.Context) (*statistics.DashboardResponse, error) {
	raw, err := c.client.Get(ctx, dashboardKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, statistics.ErrDashboardNotCached
		}
		c.log.Warn("failed to read dashboard from cache", "error", err)
		return nil, err
	}

	var dashboard statistics.DashboardResponse
	if err := json.Unmarshal(raw, &dashboard); err != nil {
		c.log.Warn("failed to decode cached dashboard", "error", err)
		return nil, statistics.ErrDashboardNotCached
	}
	return &dashboard, nil
}

func (c *StatisticsCache) CacheDashboard(ctx context.Context, d *statistics.DashboardResponse) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, dashboardKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn("failed to write dashboard to cache", "error", err)
		return err
	}
	return nil
}
