package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewReportService(repoMock, logger)
	return service.(*reportService), repoMock
}

func TestCreateReport_Success(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		Title:      "Illegal cutting near creek",
		Location:   "Pichavaram, Tamil Nadu",
		ThreatType: "illegal_cutting",
	}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, r *models.Report) error {
			assert.Equal(t, models.ReportStatusPending, r.Status)
			assert.False(t, r.Validated)
			require.NotNil(t, r.ReporterID)
			assert.Equal(t, int64(7), *r.ReporterID)
			assert.Equal(t, "medium", r.Severity)
			r.ID = 1
			return nil
		}).Times(1)

	err := service.CreateReport(ctx, report, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(1), report.ID)
}

func TestCreateReport_KeepsExplicitSeverity(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()
	report := &models.Report{
		Title:      "Oil slick along shore",
		Location:   "Mumbai, Maharashtra",
		ThreatType: "pollution",
		Severity:   "high",
	}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, r *models.Report) {
			assert.Equal(t, "high", r.Severity)
		}).Return(nil).Times(1)

	err := service.CreateReport(ctx, report, 7)

	require.NoError(t, err)
}

func TestGetReport_NotFound(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(99)).Return(nil, ErrNotFound).Times(1)

	report, err := service.GetReport(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListReports_ClampsPagination(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()
	expected := []*models.Report{
		{ID: 1, Title: "Report 1"},
		{ID: 2, Title: "Report 2"},
	}

	// Negative skip and oversized limit fall back to 0/100.
	repoMock.EXPECT().List(ctx, 0, 100).Return(expected, nil).Times(1)

	reports, err := service.ListReports(ctx, -5, 1000)

	require.NoError(t, err)
	assert.Equal(t, expected, reports)
}

func TestListMyReports_Success(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()
	expected := []*models.Report{
		{ID: 3, Title: "My report"},
	}

	repoMock.EXPECT().ListByReporter(ctx, int64(7)).Return(expected, nil).Times(1)

	reports, err := service.ListMyReports(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, expected, reports)
}

func TestValidateReport_Success(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().Validate(ctx, int64(1)).Return(nil).Times(1)

	err := service.ValidateReport(ctx, 1)

	require.NoError(t, err)
}

func TestValidateReport_NotFound(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().Validate(ctx, int64(99)).Return(ErrNotFound).Times(1)

	err := service.ValidateReport(ctx, 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "not found for validate")
}

func TestValidateReport_AlreadyValidated(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()

	repoMock.EXPECT().Validate(ctx, int64(1)).Return(ErrAlreadyValidated).Times(1)

	err := service.ValidateReport(ctx, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAlreadyValidated)
}

func TestValidateReport_RepositoryError(t *testing.T) {
	service, repoMock := newTestReportService(t)
	ctx := context.Background()
	repoError := fmt.Errorf("connection reset")

	repoMock.EXPECT().Validate(ctx, int64(1)).Return(repoError).Times(1)

	err := service.ValidateReport(ctx, 1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not validate report")
}
