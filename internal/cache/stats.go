package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/config"
	"github.com/EyobKifle/Sarahs-ShortCake-sub001/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	statsKeyPrefix     = "dashboard:stats"
	statsScanBatchSize = 100
)

type DashboardStatsCache interface {
	GetStats(ctx context.Context, periodToken string) (*domain.DashboardStats, bool, error)
	SetStats(ctx context.Context, periodToken string, stats *domain.DashboardStats) error
	InvalidateAll(ctx context.Context) error
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopStatsCache struct{}

func NewDashboardStatsCache(cfg config.CacheConfig) (DashboardStatsCache, error) {
	if !cfg.Enabled {
		return &noopStatsCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisStatsCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopDashboardStatsCache() DashboardStatsCache {
	return &noopStatsCache{}
}

func (c *redisStatsCache) GetStats(ctx context.Context, periodToken string) (*domain.DashboardStats, bool, error) {
	key := buildStatsKey(periodToken)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(payload, &stats); err != nil {
		return nil, false, fmt.Errorf("decode dashboard stats cache: %w", err)
	}

	return &stats, true, nil
}

func (c *redisStatsCache) SetStats(ctx context.Context, periodToken string, stats *domain.DashboardStats) error {
	key := buildStatsKey(periodToken)
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("encode dashboard stats cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisStatsCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, statsKeyPrefix, statsScanBatchSize)
}

func (n *noopStatsCache) GetStats(ctx context.Context, periodToken string) (*domain.DashboardStats, bool, error) {
	return nil, false, nil
}

func (n *noopStatsCache) SetStats(ctx context.Context, periodToken string, stats *domain.DashboardStats) error {
	return nil
}

func (n *noopStatsCache) InvalidateAll(ctx context.Context) error {
	return nil
}

func buildStatsKey(periodToken string) string {
	if periodToken == "" {
		periodToken = "default"
	}
	return fmt.Sprintf("%s:%s", statsKeyPrefix, periodToken)
}
