package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/felstore-tech/analytics-backend/internal/cfg"
	"github.com/felstore-tech/analytics-backend/internal/usecase"
	"github.com/felstore-tech/analytics-backend/pkg/clients"
	"github.com/felstore-tech/analytics-backend/pkg/e"
	"github.com/felstore-tech/analytics-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// reportKey — ключ последнего отчёта в Redis.
const reportKey = "report:latest"

// CacheRepo хранит последний собранный отчёт в Redis с TTL.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetReport возвращает закэшированный отчёт.
// Промах и битые данные выражаются как e.ErrReportNotCached.
func (c *CacheRepo) GetReport(ctx context.Context) (*usecase.RetailReport, error) {
	data, err := c.client.Client.Get(ctx, reportKey).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, e.ErrReportNotCached
		}

		c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	report, err := c.unmarshalReport(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))

		// Повреждённая запись бесполезна, убираем её сразу
		if err := c.client.Client.Del(context.Background(), reportKey).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}

		return nil, e.ErrReportNotCached
	}

	return report, nil
}

// SetReport кэширует отчёт с TTL из конфигурации.
func (c *CacheRepo) SetReport(ctx context.Context, report *usecase.RetailReport) error {
	data, err := c.marshalReport(report)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, reportKey, data, c.cfg.ReportTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// marshalReport сериализует отчёт в JSON для кэша
func (c *CacheRepo) marshalReport(report *usecase.RetailReport) ([]byte, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// unmarshalReport десериализует JSON из кэша в отчёт
func (c *CacheRepo) unmarshalReport(data []byte) (*usecase.RetailReport, error) {
	var report usecase.RetailReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, err
	}

	return &report, nil
}
