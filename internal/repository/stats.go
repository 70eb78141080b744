package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type StatsRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewStatsRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.StatsRepository {
	return &StatsRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const dashboardColumns = `
	id,
	active_alerts,
	high_risk_zones,
	validated_reports,
	community_sentinels,
	updated_at
`

func scanDashboard(row pgx.Row) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}
	err := row.Scan(
		&stats.ID,
		&stats.ActiveAlerts,
		&stats.HighRiskZones,
		&stats.ValidatedReports,
		&stats.CommunitySentinels,
		&stats.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// GetDashboard returns the singleton snapshot row.
func (r *StatsRepository) GetDashboard(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT ` + dashboardColumns + `
		FROM dashboard_stats
		WHERE id = 1;
	`
	stats, err := scanDashboard(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("dashboard stats row: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}
	return stats, nil
}

// CreateDashboard creates the all-zero snapshot row if it is missing and
// returns whichever row wins. Safe under concurrent first access.
func (r *StatsRepository) CreateDashboard(ctx context.Context) (*models.DashboardStats, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin create dashboard transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := ensureDashboardRow(ctx, tx); err != nil {
		return nil, err
	}
	stats, err := scanDashboard(tx.QueryRow(ctx, `
		SELECT `+dashboardColumns+`
		FROM dashboard_stats
		WHERE id = 1;
	`))
	if err != nil {
		return nil, fmt.Errorf("failed to get dashboard stats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit create dashboard transaction: %w", err)
	}
	return stats, nil
}

// UpdateSentinelCount overwrites the community_sentinels counter with a live
// count.
func (r *StatsRepository) UpdateSentinelCount(ctx context.Context, count int) error {
	_, err := r.db.Exec(ctx, `
		UPDATE dashboard_stats SET
			community_sentinels = $1,
			updated_at = NOW()
		WHERE id = 1;
	`, count)
	if err != nil {
		return fmt.Errorf("failed to update sentinel counter: %w", err)
	}
	return nil
}

// GetDashboardFromCache returns the cached snapshot or nil on a cache miss.
func (r *StatsRepository) GetDashboardFromCache(ctx context.Context) (*models.DashboardStats, error) {
	if r.redisClient == nil {
		return nil, nil
	}

	data, err := r.redisClient.Get(ctx, dashboardCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get dashboard stats from cache: %w", err)
	}

	stats := &models.DashboardStats{}
	if err := json.Unmarshal(data, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached dashboard stats: %w", err)
	}
	return stats, nil
}

// SetDashboardCache stores the snapshot with the configured TTL.
func (r *StatsRepository) SetDashboardCache(ctx context.Context, stats *models.DashboardStats) error {
	if r.redisClient == nil {
		return nil
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard stats: %w", err)
	}
	if err := r.redisClient.Set(ctx, dashboardCacheKey, data, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache dashboard stats: %w", err)
	}
	return nil
}

func (r *StatsRepository) countRow(ctx context.Context, query string, args ...any) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// CountSentinels counts active sentinel accounts.
func (r *StatsRepository) CountSentinels(ctx context.Context) (int, error) {
	count, err := r.countRow(ctx, `SELECT COUNT(*) FROM users WHERE is_active = TRUE AND is_sentinel = TRUE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count sentinels: %w", err)
	}
	return count, nil
}

// CountActiveUsers counts all active accounts.
func (r *StatsRepository) CountActiveUsers(ctx context.Context) (int, error) {
	count, err := r.countRow(ctx, `SELECT COUNT(*) FROM users WHERE is_active = TRUE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

// CountDistinctUserLocations counts distinct non-empty locations of active
// accounts.
func (r *StatsRepository) CountDistinctUserLocations(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(DISTINCT location)
		FROM users
		WHERE is_active = TRUE AND location IS NOT NULL AND location <> '';
	`
	count, err := r.countRow(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("failed to count distinct user locations: %w", err)
	}
	return count, nil
}

// CountReports counts all reports.
func (r *StatsRepository) CountReports(ctx context.Context) (int, error) {
	count, err := r.countRow(ctx, `SELECT COUNT(*) FROM reports;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

// CountValidatedReports counts validated reports.
func (r *StatsRepository) CountValidatedReports(ctx context.Context) (int, error) {
	count, err := r.countRow(ctx, `SELECT COUNT(*) FROM reports WHERE validated = TRUE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count validated reports: %w", err)
	}
	return count, nil
}

// CountUnvalidatedReports counts reports still awaiting validation.
func (r *StatsRepository) CountUnvalidatedReports(ctx context.Context) (int, error) {
	count, err := r.countRow(ctx, `SELECT COUNT(*) FROM reports WHERE validated = FALSE;`)
	if err != nil {
		return 0, fmt.Errorf("failed to count unvalidated reports: %w", err)
	}
	return count, nil
}

// CountValidatedBetween counts reports validated within [from, to).
func (r *StatsRepository) CountValidatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reports
		WHERE validated = TRUE AND created_at >= $1 AND created_at < $2;
	`
	count, err := r.countRow(ctx, query, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to count validated reports in range: %w", err)
	}
	return count, nil
}

// CountReportsByThreatTypes counts reports with any of the given threat types.
func (r *StatsRepository) CountReportsByThreatTypes(ctx context.Context, threatTypes []string) (int, error) {
	count, err := r.countRow(ctx, `SELECT COUNT(*) FROM reports WHERE threat_type = ANY($1);`, threatTypes)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports by threat type: %w", err)
	}
	return count, nil
}

// CountReportsByThreatTypesBetween counts reports with any of the given threat
// types created within [from, to).
func (r *StatsRepository) CountReportsByThreatTypesBetween(ctx context.Context, threatTypes []string, from, to time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM reports
		WHERE threat_type = ANY($1) AND created_at >= $2 AND created_at < $3;
	`
	count, err := r.countRow(ctx, query, threatTypes, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports by threat type in range: %w", err)
	}
	return count, nil
}

// CountValidatedByThreatTypes counts validated reports with any of the given
// threat types.
func (r *StatsRepository) CountValidatedByThreatTypes(ctx context.Context, threatTypes []string) (int, error) {
	query := `SELECT COUNT(*) FROM reports WHERE validated = TRUE AND threat_type = ANY($1);`
	count, err := r.countRow(ctx, query, threatTypes)
	if err != nil {
		return 0, fmt.Errorf("failed to count validated reports by threat type: %w", err)
	}
	return count, nil
}

// GroupReportsByLocation returns per-location report totals, most reported
// locations first.
func (r *StatsRepository) GroupReportsByLocation(ctx context.Context, limit int) ([]models.LocationReportStats, error) {
	query := `
		SELECT
			location,
			COUNT(*) AS total_reports,
			COUNT(*) FILTER (WHERE validated = TRUE) AS validated_reports
		FROM reports
		WHERE location <> ''
		GROUP BY location
		ORDER BY total_reports DESC, location ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to group reports by location: %w", err)
	}
	defer rows.Close()

	stats := make([]models.LocationReportStats, 0)
	for rows.Next() {
		var row models.LocationReportStats
		if err := rows.Scan(&row.Location, &row.TotalReports, &row.ValidatedReports); err != nil {
			return nil, fmt.Errorf("failed to scan location report row: %w", err)
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location report rows: %w", err)
	}
	return stats, nil
}

// GroupSentinelsByLocation returns per-location active sentinel counts,
// largest groups first.
func (r *StatsRepository) GroupSentinelsByLocation(ctx context.Context, limit int) ([]models.LocationMemberStats, error) {
	query := `
		SELECT location, COUNT(*) AS members
		FROM users
		WHERE is_active = TRUE AND is_sentinel = TRUE AND location IS NOT NULL AND location <> ''
		GROUP BY location
		ORDER BY members DESC, location ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to group sentinels by location: %w", err)
	}
	defer rows.Close()

	stats := make([]models.LocationMemberStats, 0)
	for rows.Next() {
		var row models.LocationMemberStats
		if err := rows.Scan(&row.Location, &row.Members); err != nil {
			return nil, fmt.Errorf("failed to scan location member row: %w", err)
		}
		stats = append(stats, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating location member rows: %w", err)
	}
	return stats, nil
}

// RecentValidatedReports returns validated reports created since the given
// time, newest first.
func (r *StatsRepository) RecentValidatedReports(ctx context.Context, since time.Time, limit int) ([]*models.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE validated = TRUE AND created_at >= $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent validated reports: %w", err)
	}
	return collectReports(rows)
}

// RecentUnvalidatedReports returns unvalidated reports created since the given
// time, newest first.
func (r *StatsRepository) RecentUnvalidatedReports(ctx context.Context, since time.Time, limit int) ([]*models.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE validated = FALSE AND created_at >= $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent unvalidated reports: %w", err)
	}
	return collectReports(rows)
}

// RecentValidatedBySeverity returns validated reports of the given severities
// created since the given time, newest first.
func (r *StatsRepository) RecentValidatedBySeverity(ctx context.Context, severities []string, since time.Time, limit int) ([]*models.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE validated = TRUE AND severity = ANY($1) AND created_at >= $2
		ORDER BY created_at DESC, id DESC
		LIMIT $3;
	`
	rows, err := r.db.Query(ctx, query, severities, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list validated reports by severity: %w", err)
	}
	return collectReports(rows)
}

// RecentActiveAlerts returns active alerts created since the given time,
// newest first.
func (r *StatsRepository) RecentActiveAlerts(ctx context.Context, since time.Time, limit int) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE is_active = TRUE AND created_at >= $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent active alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating alert rows: %w", err)
	}
	return alerts, nil
}

// TopVolunteer returns the active sentinel with positive points and the
// highest total.
func (r *StatsRepository) TopVolunteer(ctx context.Context) (*models.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE is_active = TRUE AND is_sentinel = TRUE AND points > 0
		ORDER BY points DESC, id ASC
		LIMIT 1;
	`
	user, err := scanUser(r.db.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("top volunteer: %w", service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get top volunteer: %w", err)
	}
	return user, nil
}

// ListZones returns the first zones in insertion order.
func (r *StatsRepository) ListZones(ctx context.Context, limit int) ([]*models.Zone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM zones
		ORDER BY id ASC
		LIMIT $1;
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	defer rows.Close()

	zones := make([]*models.Zone, 0)
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone row: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zone rows: %w", err)
	}
	return zones, nil
}
