package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ZoneRepository struct {
	db *pgxpool.Pool
}

func NewZoneRepository(db *pgxpool.Pool) service.ZoneRepository {
	return &ZoneRepository{
		db: db,
	}
}

const zoneColumns = `
	id,
	name,
	description,
	risk_level,
	coordinates,
	area_size,
	created_at,
	last_patrol
`

func scanZone(row pgx.Row) (*models.Zone, error) {
	zone := &models.Zone{}
	err := row.Scan(
		&zone.ID,
		&zone.Name,
		&zone.Description,
		&zone.RiskLevel,
		&zone.Coordinates,
		&zone.AreaSize,
		&zone.CreatedAt,
		&zone.LastPatrol,
	)
	if err != nil {
		return nil, err
	}
	return zone, nil
}

// Create inserts a new zone.
func (r *ZoneRepository) Create(ctx context.Context, zone *models.Zone) error {
	query := `
		INSERT INTO zones (name, description, risk_level, coordinates, area_size)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		zone.Name,
		zone.Description,
		zone.RiskLevel,
		zone.Coordinates,
		zone.AreaSize,
	).Scan(&zone.ID, &zone.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create zone: %w", err)
	}
	return nil
}

// GetByID returns the zone with the given id.
func (r *ZoneRepository) GetByID(ctx context.Context, id int64) (*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1;`

	zone, err := scanZone(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("zone with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get zone by id: %w", err)
	}
	return zone, nil
}

// List returns zones with offset pagination in insertion order.
func (r *ZoneRepository) List(ctx context.Context, skip, limit int) ([]*models.Zone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM zones
		ORDER BY id ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, limit, skip)
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

// CountHighRisk returns the number of zones with risk_level = 'high'.
func (r *ZoneRepository) CountHighRisk(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM zones WHERE risk_level = 'high';`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count high risk zones: %w", err)
	}
	return count, nil
}
