package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/sirupsen/logrus"
)

// ReportRepository defines the contract for threat report storage.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id int64) (*models.Report, error)
	List(ctx context.Context, skip, limit int) ([]*models.Report, error)
	ListByReporter(ctx context.Context, reporterID int64) ([]*models.Report, error)
	// Validate marks the report validated, awards the reporter +10 points and
	// increments the dashboard validated_reports counter, all in one
	// transaction. Either every effect lands or none does.
	Validate(ctx context.Context, id int64) error
}

// ReportService defines the contract for the report lifecycle.
type ReportService interface {
	CreateReport(ctx context.Context, report *models.Report, reporterID int64) error
	GetReport(ctx context.Context, id int64) (*models.Report, error)
	ListReports(ctx context.Context, skip, limit int) ([]*models.Report, error)
	ListMyReports(ctx context.Context, reporterID int64) ([]*models.Report, error)
	ValidateReport(ctx context.Context, id int64) error
}

type reportService struct {
	repo   ReportRepository
	logger *logrus.Logger
}

func NewReportService(repo ReportRepository, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		logger: logger,
	}
}

// CreateReport submits a new threat report on behalf of the reporter.
func (s *reportService) CreateReport(ctx context.Context, report *models.Report, reporterID int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "CreateReport",
		"title":       report.Title,
		"reporter_id": reporterID,
	})
	log.Info("Attempting to create a new report")

	report.Status = models.ReportStatusPending
	report.Validated = false
	report.ReporterID = &reporterID
	if report.Severity == "" {
		report.Severity = "medium"
	}

	if err := s.repo.Create(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return fmt.Errorf("service: could not create report: %w", err)
	}

	log.WithField("report_id", report.ID).Info("Report created successfully")
	return nil
}

// GetReport fetches a report by ID.
func (s *reportService) GetReport(ctx context.Context, id int64) (*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "GetReport",
		"report_id": id,
	})

	report, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get report from repository")
		return nil, fmt.Errorf("service: could not get report: %w", err)
	}
	return report, nil
}

// ListReports returns reports with offset pagination.
func (s *reportService) ListReports(ctx context.Context, skip, limit int) ([]*models.Report, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 1 || limit > 100 {
		limit = 100
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "ListReports",
		"skip":    skip,
		"limit":   limit,
	})
	log.Info("Listing reports")

	reports, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}

	log.WithField("count", len(reports)).Info("Reports listed successfully")
	return reports, nil
}

// ListMyReports returns all reports submitted by the caller.
func (s *reportService) ListMyReports(ctx context.Context, reporterID int64) ([]*models.Report, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "report",
		"method":      "ListMyReports",
		"reporter_id": reporterID,
	})
	log.Info("Listing reports by reporter")

	reports, err := s.repo.ListByReporter(ctx, reporterID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, nil
}

// ValidateReport validates a pending report. The point award and the snapshot
// counter increment are applied atomically with the status change.
func (s *reportService) ValidateReport(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ValidateReport",
		"report_id": id,
	})
	log.Info("Attempting to validate report")

	if err := s.repo.Validate(ctx, id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			log.Warn("Attempted to validate a non-existent report")
			return fmt.Errorf("service: report %d not found for validate: %w", id, err)
		case errors.Is(err, ErrAlreadyValidated):
			log.Warn("Attempted to validate an already-validated report")
			return fmt.Errorf("service: report %d already validated: %w", id, err)
		}
		log.WithError(err).Error("Failed to validate report in repository")
		return fmt.Errorf("service: could not validate report: %w", err)
	}

	log.Info("Report validated successfully")
	return nil
}
