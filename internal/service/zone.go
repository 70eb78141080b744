package service

import (
	"context"
	"fmt"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/sirupsen/logrus"
)

// ZoneRepository defines the contract for zone storage.
type ZoneRepository interface {
	Create(ctx context.Context, zone *models.Zone) error
	GetByID(ctx context.Context, id int64) (*models.Zone, error)
	List(ctx context.Context, skip, limit int) ([]*models.Zone, error)
	CountHighRisk(ctx context.Context) (int, error)
}

// ZoneService defines the contract for zone management. Zones are immutable
// after registration.
type ZoneService interface {
	CreateZone(ctx context.Context, zone *models.Zone) error
	GetZone(ctx context.Context, id int64) (*models.Zone, error)
	ListZones(ctx context.Context, skip, limit int) ([]*models.Zone, error)
	HighRiskCount(ctx context.Context) (int, error)
}

type zoneService struct {
	repo   ZoneRepository
	logger *logrus.Logger
}

func NewZoneService(repo ZoneRepository, logger *logrus.Logger) ZoneService {
	return &zoneService{
		repo:   repo,
		logger: logger,
	}
}

// CreateZone registers a new monitored zone.
func (s *zoneService) CreateZone(ctx context.Context, zone *models.Zone) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "CreateZone",
		"name":    zone.Name,
	})
	log.Info("Attempting to create a new zone")

	if zone.RiskLevel == "" {
		zone.RiskLevel = "low"
	}

	if err := s.repo.Create(ctx, zone); err != nil {
		log.WithError(err).Error("Failed to create zone in repository")
		return fmt.Errorf("service: could not create zone: %w", err)
	}

	log.WithField("zone_id", zone.ID).Info("Zone created successfully")
	return nil
}

// GetZone fetches a zone by ID.
func (s *zoneService) GetZone(ctx context.Context, id int64) (*models.Zone, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "GetZone",
		"zone_id": id,
	})

	zone, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get zone from repository")
		return nil, fmt.Errorf("service: could not get zone: %w", err)
	}
	return zone, nil
}

// ListZones returns zones with offset pagination.
func (s *zoneService) ListZones(ctx context.Context, skip, limit int) ([]*models.Zone, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "zone",
		"method":  "ListZones",
		"skip":    skip,
		"limit":   limit,
	})
	log.Info("Listing zones")

	zones, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list zones from repository")
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}

	log.WithField("count", len(zones)).Info("Zones listed successfully")
	return zones, nil
}

// HighRiskCount returns the number of high-risk zones.
func (s *zoneService) HighRiskCount(ctx context.Context) (int, error) {
	count, err := s.repo.CountHighRisk(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to count high risk zones")
		return 0, fmt.Errorf("service: could not count high risk zones: %w", err)
	}
	return count, nil
}
