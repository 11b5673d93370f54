package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/clubtenis/tienda-api/internal/application/dto"
	"github.com/clubtenis/tienda-api/internal/application/reporting"
)

var _ reporting.Cache = (*ReportCache)(nil)

// lossStatsKey clave única del cache de estadísticas de pérdidas (no varía por período).
const lossStatsKey = "report:losses"

// ReportCache cache de corta vida para reportes computados, en Redis.
// Los reportes siguen siendo recomputables en cualquier momento; el cache
// solo amortigua ráfagas de lecturas del panel de administración.
type ReportCache struct {
	client *redis.Client
}

// NewReportCache construye el cache de reportes sobre el cliente Redis.
func NewReportCache(client *redis.Client) *ReportCache {
	return &ReportCache{client: client}
}

func (c *ReportCache) GetInventory(ctx context.Context, key string) (*dto.InventoryReportDTO, bool, error) {
	var report dto.InventoryReportDTO
	ok, err := c.get(ctx, key, &report)
	if !ok || err != nil {
		return nil, false, err
	}
	return &report, true, nil
}

func (c *ReportCache) SetInventory(ctx context.Context, key string, report *dto.InventoryReportDTO, ttl time.Duration) error {
	return c.set(ctx, key, report, ttl)
}

func (c *ReportCache) GetLossStats(ctx context.Context) (*dto.LossStatisticsDTO, bool, error) {
	var stats dto.LossStatisticsDTO
	ok, err := c.get(ctx, lossStatsKey, &stats)
	if !ok || err != nil {
		return nil, false, err
	}
	return &stats, true, nil
}

func (c *ReportCache) SetLossStats(ctx context.Context, stats *dto.LossStatisticsDTO, ttl time.Duration) error {
	return c.set(ctx, lossStatsKey, stats, ttl)
}

func (c *ReportCache) get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *ReportCache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if value == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}
