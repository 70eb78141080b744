package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type ReportRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewReportRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ReportRepository {
	return &ReportRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const reportColumns = `
	id,
	title,
	description,
	location,
	latitude,
	longitude,
	threat_type,
	severity,
	status,
	validated,
	reporter_id,
	created_at,
	updated_at
`

func scanReport(row pgx.Row) (*models.Report, error) {
	report := &models.Report{}
	err := row.Scan(
		&report.ID,
		&report.Title,
		&report.Description,
		&report.Location,
		&report.Latitude,
		&report.Longitude,
		&report.ThreatType,
		&report.Severity,
		&report.Status,
		&report.Validated,
		&report.ReporterID,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func collectReports(rows pgx.Rows) ([]*models.Report, error) {
	defer rows.Close()

	reports := make([]*models.Report, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}
	return reports, nil
}

// Create inserts a new threat report.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) error {
	query := `
		INSERT INTO reports (title, description, location, latitude, longitude, threat_type, severity, status, validated, reporter_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.Title,
		report.Description,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.ThreatType,
		report.Severity,
		report.Status,
		report.Validated,
		report.ReporterID,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	return nil
}

// GetByID returns the report with the given id.
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*models.Report, error) {
	query := `SELECT ` + reportColumns + ` FROM reports WHERE id = $1;`

	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// List returns reports with offset pagination, newest first.
func (r *ReportRepository) List(ctx context.Context, skip, limit int) ([]*models.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return collectReports(rows)
}

// ListByReporter returns all reports submitted by one account, newest first.
func (r *ReportRepository) ListByReporter(ctx context.Context, reporterID int64) ([]*models.Report, error) {
	query := `
		SELECT ` + reportColumns + `
		FROM reports
		WHERE reporter_id = $1
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, reporterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports by reporter: %w", err)
	}
	return collectReports(rows)
}

// Validate performs the full validation triple in one transaction: flip the
// report to validated, award the reporter +10 points and increment the
// dashboard validated_reports counter. Concurrent validations of distinct
// reports both land; validating the same report twice fails.
func (r *ReportRepository) Validate(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin validate transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var validated bool
	var reporterID *int64
	err = tx.QueryRow(ctx, `SELECT validated, reporter_id FROM reports WHERE id = $1 FOR UPDATE;`, id).
		Scan(&validated, &reporterID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("report with id %d: %w", id, service.ErrNotFound)
		}
		return fmt.Errorf("failed to lock report for validate: %w", err)
	}
	if validated {
		return fmt.Errorf("report with id %d: %w", id, service.ErrAlreadyValidated)
	}

	_, err = tx.Exec(ctx, `
		UPDATE reports SET
			validated = TRUE,
			status = 'validated',
			updated_at = NOW()
		WHERE id = $1;
	`, id)
	if err != nil {
		return fmt.Errorf("failed to mark report validated: %w", err)
	}

	if reporterID != nil {
		_, err = tx.Exec(ctx, `
			UPDATE users SET
				points = points + 10,
				updated_at = NOW()
			WHERE id = $1;
		`, *reporterID)
		if err != nil {
			return fmt.Errorf("failed to award reporter points: %w", err)
		}
	}

	if err := ensureDashboardRow(ctx, tx); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		UPDATE dashboard_stats SET
			validated_reports = validated_reports + 1,
			updated_at = NOW()
		WHERE id = 1;
	`)
	if err != nil {
		return fmt.Errorf("failed to increment validated reports counter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit validate transaction: %w", err)
	}

	invalidateDashboardCache(ctx, r.redisClient)
	return nil
}
