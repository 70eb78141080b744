package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/diyapatel028/Mangrove-sentinals/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestZoneService(t *testing.T) (*zoneService, *mocks.MockZoneRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockZoneRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewZoneService(repoMock, logger)
	return service.(*zoneService), repoMock
}

func TestCreateZone_DefaultsRiskLevel(t *testing.T) {
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	areaSize := 12.5
	zone := &models.Zone{Name: "Pichavaram North", AreaSize: &areaSize}

	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, z *models.Zone) error {
			assert.Equal(t, "low", z.RiskLevel)
			z.ID = 1
			return nil
		}).Times(1)

	err := service.CreateZone(ctx, zone)

	require.NoError(t, err)
	assert.Equal(t, int64(1), zone.ID)
}

func TestGetZone_NotFound(t *testing.T) {
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().GetByID(ctx, int64(99)).Return(nil, ErrNotFound).Times(1)

	zone, err := service.GetZone(ctx, 99)

	require.Error(t, err)
	assert.Nil(t, zone)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListZones_ClampsPagination(t *testing.T) {
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()
	expected := []*models.Zone{
		{ID: 1, Name: "Pichavaram North"},
	}

	repoMock.EXPECT().List(ctx, 0, 100).Return(expected, nil).Times(1)

	zones, err := service.ListZones(ctx, -1, 0)

	require.NoError(t, err)
	assert.Equal(t, expected, zones)
}

func TestHighRiskCount_Success(t *testing.T) {
	service, repoMock := newTestZoneService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountHighRisk(ctx).Return(3, nil).Times(1)

	count, err := service.HighRiskCount(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
