package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service/mocks"
	"github.com/diyapatel028/Mangrove-sentinals/internal/webhook"
	webhook_mocks "github.com/diyapatel028/Mangrove-sentinals/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *webhook_mocks.MockAlertPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	publisherMock := webhook_mocks.NewMockAlertPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewAlertService(repoMock, logger, publisherMock)
	return service.(*alertService), repoMock, publisherMock
}

func TestCreateAlert_Success(t *testing.T) {
	service, repoMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{
		Title:     "Cyclone warning",
		AlertType: "weather",
	}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, a *models.Alert) error {
			assert.True(t, a.IsActive)
			assert.Equal(t, "medium", a.Severity)
			a.ID = 1
			return nil
		}).Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.AlertEvent) {
			assert.Equal(t, webhook.EventAlertCreated, event.Kind)
			assert.Equal(t, alert, event.Alert)
		}).Return(nil).Times(1)

	err := service.CreateAlert(ctx, alert)

	require.NoError(t, err)
	assert.Equal(t, int64(1), alert.ID)
}

func TestCreateAlert_PublishFailureIsNonFatal(t *testing.T) {
	service, repoMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{Title: "Cyclone warning", AlertType: "weather"}

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis down")).
		Times(1)

	// The alert is committed; a lost webhook must not fail the call.
	err := service.CreateAlert(ctx, alert)

	require.NoError(t, err)
}

func TestCreateAlert_RepositoryError(t *testing.T) {
	service, repoMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{Title: "Cyclone warning", AlertType: "weather"}

	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(fmt.Errorf("connection reset")).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := service.CreateAlert(ctx, alert)

	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create alert")
}

func TestListActiveAlerts_Success(t *testing.T) {
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	expected := []*models.Alert{
		{ID: 2, Title: "High tide advisory"},
		{ID: 1, Title: "Cyclone warning"},
	}

	repoMock.EXPECT().ListActive(ctx).Return(expected, nil).Times(1)

	alerts, err := service.ListActiveAlerts(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, alerts)
}

func TestResolveAlert_Success(t *testing.T) {
	service, repoMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()
	resolved := &models.Alert{ID: 1, Title: "Cyclone warning", IsActive: false}

	repoMock.EXPECT().Resolve(ctx, int64(1)).Return(resolved, nil).Times(1)
	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.AlertEvent) {
			assert.Equal(t, webhook.EventAlertResolved, event.Kind)
			assert.Equal(t, resolved, event.Alert)
		}).Return(nil).Times(1)

	alert, err := service.ResolveAlert(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, resolved, alert)
}

func TestResolveAlert_NotFound(t *testing.T) {
	service, repoMock, publisherMock := newTestAlertService(t)
	ctx := context.Background()

	repoMock.EXPECT().Resolve(ctx, int64(99)).Return(nil, ErrNotFound).Times(1)
	publisherMock.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	alert, err := service.ResolveAlert(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "not found for resolve")
}
