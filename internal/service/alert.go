package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AlertRepository defines the contract for alert storage.
type AlertRepository interface {
	// Create inserts an active alert and increments the dashboard
	// active_alerts counter in the same transaction.
	Create(ctx context.Context, alert *models.Alert) error
	ListActive(ctx context.Context) ([]*models.Alert, error)
	// Resolve deactivates the alert, stamps resolved_at and decrements the
	// dashboard active_alerts counter, floored at zero, in one transaction.
	Resolve(ctx context.Context, id int64) (*models.Alert, error)
}

// AlertService defines the contract for the alert lifecycle.
type AlertService interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	ListActiveAlerts(ctx context.Context) ([]*models.Alert, error)
	ResolveAlert(ctx context.Context, id int64) (*models.Alert, error)
}

type alertService struct {
	repo      AlertRepository
	logger    *logrus.Logger
	publisher webhook.AlertPublisher
}

func NewAlertService(repo AlertRepository, logger *logrus.Logger, publisher webhook.AlertPublisher) AlertService {
	return &alertService{
		repo:      repo,
		logger:    logger,
		publisher: publisher,
	}
}

// CreateAlert issues a new active alert and broadcasts it to webhook
// subscribers.
func (s *alertService) CreateAlert(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "CreateAlert",
		"title":   alert.Title,
	})
	log.Info("Attempting to create a new alert")

	alert.IsActive = true
	if alert.Severity == "" {
		alert.Severity = "medium"
	}

	if err := s.repo.Create(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}

	event := webhook.NewAlertEvent(webhook.EventAlertCreated, alert)
	if err := s.publisher.Publish(ctx, event); err != nil {
		// Delivery is best effort. The alert itself is already committed.
		log.WithError(err).Warn("Failed to publish alert webhook event")
	}

	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return nil
}

// ListActiveAlerts returns all currently active alerts.
func (s *alertService) ListActiveAlerts(ctx context.Context) ([]*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "ListActiveAlerts",
	})
	log.Info("Listing active alerts")

	alerts, err := s.repo.ListActive(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts from repository")
		return nil, fmt.Errorf("service: could not list alerts: %w", err)
	}

	log.WithField("count", len(alerts)).Info("Alerts listed successfully")
	return alerts, nil
}

// ResolveAlert resolves an active alert. The active_alerts counter never goes
// below zero, whatever the interleaving of create/resolve calls.
func (s *alertService) ResolveAlert(ctx context.Context, id int64) (*models.Alert, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ResolveAlert",
		"alert_id": id,
	})
	log.Info("Attempting to resolve alert")

	alert, err := s.repo.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Attempted to resolve a non-existent alert")
			return nil, fmt.Errorf("service: alert %d not found for resolve: %w", id, err)
		}
		log.WithError(err).Error("Failed to resolve alert in repository")
		return nil, fmt.Errorf("service: could not resolve alert: %w", err)
	}

	event := webhook.NewAlertEvent(webhook.EventAlertResolved, alert)
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish alert webhook event")
	}

	log.Info("Alert resolved successfully")
	return alert, nil
}
