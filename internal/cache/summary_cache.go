package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stockwise/backend-go/internal/config"
	"github.com/stockwise/backend-go/internal/domain"
)

const (
	summaryKeyPrefix   = "sales:summary"
	summaryScanBatches = 100
)

// SummaryCache keeps per-tenant sales summaries keyed by granularity.
// Mutating operations invalidate the whole tenant scope.
type SummaryCache interface {
	GetSummary(ctx context.Context, userID int64, granularity string) (domain.SalesSummary, bool, error)
	SetSummary(ctx context.Context, userID int64, granularity string, summary domain.SalesSummary) error
	InvalidateUser(ctx context.Context, userID int64) error
}

type redisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSummaryCache struct{}

func NewSummaryCache(cfg config.CacheConfig) (SummaryCache, error) {
	if !cfg.Enabled {
		return &noopSummaryCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisSummaryCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func NewNoopSummaryCache() SummaryCache {
	return &noopSummaryCache{}
}

func (c *redisSummaryCache) GetSummary(ctx context.Context, userID int64, granularity string) (domain.SalesSummary, bool, error) {
	key := buildSummaryKey(userID, granularity)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return domain.SalesSummary{}, false, nil
	}
	if err != nil {
		return domain.SalesSummary{}, false, fmt.Errorf("redis get failed: %w", err)
	}

	var summary domain.SalesSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return domain.SalesSummary{}, false, fmt.Errorf("decode sales summary cache: %w", err)
	}

	return summary, true, nil
}

func (c *redisSummaryCache) SetSummary(ctx context.Context, userID int64, granularity string, summary domain.SalesSummary) error {
	key := buildSummaryKey(userID, granularity)
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("encode sales summary cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisSummaryCache) InvalidateUser(ctx context.Context, userID int64) error {
	return deleteKeysWithPrefix(ctx, c.client, fmt.Sprintf("%s:%d:", summaryKeyPrefix, userID), summaryScanBatches)
}

func (n *noopSummaryCache) GetSummary(ctx context.Context, userID int64, granularity string) (domain.SalesSummary, bool, error) {
	return domain.SalesSummary{}, false, nil
}

func (n *noopSummaryCache) SetSummary(ctx context.Context, userID int64, granularity string, summary domain.SalesSummary) error {
	return nil
}

func (n *noopSummaryCache) InvalidateUser(ctx context.Context, userID int64) error {
	return nil
}

func buildSummaryKey(userID int64, granularity string) string {
	return fmt.Sprintf("%s:%d:%s", summaryKeyPrefix, userID, granularity)
}
