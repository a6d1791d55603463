package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/fintrack/internal/logger"
	"github.com/sbilibin2017/fintrack/internal/models"
)

// ReportCacheRepository stores computed monthly reports in Redis so repeated
// dashboard loads skip the aggregation pass.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached reports
}

// NewReportCacheRepository creates a new repository instance with the given TTL.
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get fetches a cached report. A cache miss returns (nil, nil).
func (r *ReportCacheRepository) Get(ctx context.Context, key string) (*models.MonthlyReport, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("report cache get",
			"key", key,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var report models.MonthlyReport
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		logger.Log.Errorw("report cache decode failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("report cache hit", "key", key)
	return &report, nil
}

// Set caches a report under the given key with the configured TTL.
func (r *ReportCacheRepository) Set(ctx context.Context, key string, report models.MonthlyReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("report cache set",
		"key", key,
		"error", err,
	)

	return err
}

// Delete drops cached reports. Missing keys are not an error.
func (r *ReportCacheRepository) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()

	logger.Log.Infow("report cache delete",
		"keys", keys,
		"error", err,
	)

	return err
}
