package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
)

const dashboardCacheKey = "dashboard_stats"

// ensureDashboardRow creates the singleton snapshot row inside tx if it does
// not exist yet, so counter updates always have a row to land on. The schema
// pins the row to id 1, so a concurrent creation is a no-op here.
func ensureDashboardRow(ctx context.Context, tx pgx.Tx) error {
	query := `
		INSERT INTO dashboard_stats (id, active_alerts, high_risk_zones, validated_reports, community_sentinels)
		VALUES (1, 0, 0, 0, 0)
		ON CONFLICT (id) DO NOTHING;
	`
	if _, err := tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure dashboard stats row: %w", err)
	}
	return nil
}

// invalidateDashboardCache drops the cached dashboard snapshot. Best effort:
// a failed invalidation only delays the refresh by one cache TTL.
func invalidateDashboardCache(ctx context.Context, redisClient *redis.Client) {
	if redisClient == nil {
		return
	}
	_ = redisClient.Del(ctx, dashboardCacheKey).Err()
}
