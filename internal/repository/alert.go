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

type AlertRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAlertRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AlertRepository {
	return &AlertRepository{
		db:          db,
		redisClient: redisClient,
	}
}

const alertColumns = `
	id,
	title,
	message,
	alert_type,
	severity,
	location,
	is_active,
	created_at,
	resolved_at
`

func scanAlert(row pgx.Row) (*models.Alert, error) {
	alert := &models.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.Title,
		&alert.Message,
		&alert.AlertType,
		&alert.Severity,
		&alert.Location,
		&alert.IsActive,
		&alert.CreatedAt,
		&alert.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

// Create inserts an active alert and increments the dashboard active_alerts
// counter in the same transaction.
func (r *AlertRepository) Create(ctx context.Context, alert *models.Alert) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin create alert transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO alerts (title, message, alert_type, severity, location, is_active)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, query,
		alert.Title,
		alert.Message,
		alert.AlertType,
		alert.Severity,
		alert.Location,
		alert.IsActive,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}

	if err := ensureDashboardRow(ctx, tx); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
		UPDATE dashboard_stats SET
			active_alerts = active_alerts + 1,
			updated_at = NOW()
		WHERE id = 1;
	`)
	if err != nil {
		return fmt.Errorf("failed to increment active alerts counter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit create alert transaction: %w", err)
	}

	invalidateDashboardCache(ctx, r.redisClient)
	return nil
}

// ListActive returns all active alerts, newest first.
func (r *AlertRepository) ListActive(ctx context.Context) ([]*models.Alert, error) {
	query := `
		SELECT ` + alertColumns + `
		FROM alerts
		WHERE is_active = TRUE
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active alerts: %w", err)
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

// Resolve deactivates an alert and decrements the active_alerts counter,
// floored at zero, in one transaction. Resolving an already-resolved alert
// is a no-op that leaves the counter untouched.
func (r *AlertRepository) Resolve(ctx context.Context, id int64) (*models.Alert, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin resolve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	resolveQuery := `
		UPDATE alerts SET
			is_active = FALSE,
			resolved_at = NOW()
		WHERE id = $1 AND is_active = TRUE
		RETURNING ` + alertColumns + `;
	`
	alert, err := scanAlert(tx.QueryRow(ctx, resolveQuery, id))
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("failed to resolve alert: %w", err)
		}

		// Either the alert does not exist or it was already resolved.
		alert, err = scanAlert(tx.QueryRow(ctx, `SELECT `+alertColumns+` FROM alerts WHERE id = $1;`, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, fmt.Errorf("alert with id %d: %w", id, service.ErrNotFound)
			}
			return nil, fmt.Errorf("failed to get alert: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit resolve transaction: %w", err)
		}
		return alert, nil
	}

	if err := ensureDashboardRow(ctx, tx); err != nil {
		return nil, err
	}
	_, err = tx.Exec(ctx, `
		UPDATE dashboard_stats SET
			active_alerts = GREATEST(active_alerts - 1, 0),
			updated_at = NOW()
		WHERE id = 1;
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to decrement active alerts counter: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit resolve transaction: %w", err)
	}

	invalidateDashboardCache(ctx, r.redisClient)
	return alert, nil
}
