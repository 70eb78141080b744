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

func newTestStatsService(t *testing.T) (*statsService, *mocks.MockStatsRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockStatsRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	service := NewStatsService(repoMock, logger)
	return service.(*statsService), repoMock
}

func TestDashboardStats_FromCache(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()
	cached := &models.DashboardStats{
		ActiveAlerts:       2,
		ValidatedReports:   30,
		CommunitySentinels: 12,
	}

	repoMock.EXPECT().GetDashboardFromCache(ctx).Return(cached, nil).Times(1)

	stats, err := service.DashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, cached, stats)
}

func TestDashboardStats_RefreshesSentinelCount(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()
	stored := &models.DashboardStats{
		ID:                 1,
		ActiveAlerts:       2,
		ValidatedReports:   30,
		CommunitySentinels: 10, // stale
	}

	repoMock.EXPECT().GetDashboardFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetDashboard(ctx).Return(stored, nil).Times(1)
	repoMock.EXPECT().CountSentinels(ctx).Return(14, nil).Times(1)
	repoMock.EXPECT().UpdateSentinelCount(ctx, 14).Return(nil).Times(1)
	repoMock.EXPECT().
		SetDashboardCache(ctx, gomock.Any()).
		Do(func(ctx context.Context, s *models.DashboardStats) {
			assert.Equal(t, 14, s.CommunitySentinels)
		}).Return(nil).Times(1)

	stats, err := service.DashboardStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 14, stats.CommunitySentinels)
	assert.Equal(t, 2, stats.ActiveAlerts)
}

func TestDashboardStats_CreatesRowOnFirstAccess(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()
	created := &models.DashboardStats{ID: 1}

	repoMock.EXPECT().GetDashboardFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().GetDashboard(ctx).Return(nil, ErrNotFound).Times(1)
	repoMock.EXPECT().CreateDashboard(ctx).Return(created, nil).Times(1)
	repoMock.EXPECT().CountSentinels(ctx).Return(0, nil).Times(1)
	repoMock.EXPECT().UpdateSentinelCount(ctx, 0).Return(nil).Times(1)
	repoMock.EXPECT().SetDashboardCache(ctx, gomock.Any()).Return(nil).Times(1)

	stats, err := service.DashboardStats(ctx)

	require.NoError(t, err)
	assert.Zero(t, stats.ActiveAlerts)
	assert.Zero(t, stats.CommunitySentinels)
}

func TestImpactSeries_EmptyStore(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountValidatedReports(ctx).Return(0, nil).Times(1)

	series, err := service.ImpactSeries(ctx)

	require.NoError(t, err)
	require.Len(t, series, 7)
	// With no validated reports the floors carry the series: 1 through 7.
	for i, entry := range series {
		assert.Equal(t, i+1, entry.ValidatedReports)
	}
	assert.Equal(t, "Jan", series[0].Month)
	assert.Equal(t, "Jul", series[6].Month)
}

func TestImpactSeries_LargeStore(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountValidatedReports(ctx).Return(1000, nil).Times(1)

	series, err := service.ImpactSeries(ctx)

	require.NoError(t, err)
	require.Len(t, series, 7)
	expected := []int{975, 980, 985, 990, 992, 995, 1000}
	for i, entry := range series {
		assert.Equal(t, expected[i], entry.ValidatedReports)
	}
}

func TestEcosystemHealth_EmptyStoreDefaults(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountReportsByThreatTypesBetween(ctx, []string{"pollution"}, gomock.Any(), gomock.Any()).
		Return(0, nil).Times(1)
	repoMock.EXPECT().CountValidatedReports(ctx).Return(0, nil).Times(1)
	repoMock.EXPECT().
		CountValidatedByThreatTypes(ctx, []string{"restoration", "conservation"}).
		Return(0, nil).Times(1)
	repoMock.EXPECT().
		CountReportsByThreatTypes(ctx, []string{"illegal_cutting", "construction"}).
		Return(0, nil).Times(1)

	health, err := service.EcosystemHealth(ctx)

	require.NoError(t, err)
	assert.Equal(t, 95, health.WaterQuality)
	assert.Equal(t, 180, health.SpeciesCount)
	assert.Equal(t, 75, health.ForestCover)
	assert.InDelta(t, 7.7, health.HealthScore, 0.001)
}

func TestEnvironmentalTrends_EmptyStoreBaseline(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountReportsByThreatTypesBetween(ctx, []string{"pollution"}, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(7)
	repoMock.EXPECT().
		CountValidatedBetween(ctx, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(7)

	trends, err := service.EnvironmentalTrends(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}, trends.Labels)
	// With no activity in any bucket only the gradual baseline remains.
	assert.Equal(t, []int{70, 72, 74, 76, 78, 80, 82}, trends.WaterQuality)
	assert.Equal(t, []int{65, 66, 68, 69, 71, 72, 74}, trends.AirQuality)
}

func TestEnvironmentalTrends_HeavyPollutionHitsFloor(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountReportsByThreatTypesBetween(ctx, []string{"pollution"}, gomock.Any(), gomock.Any()).
		Return(500, nil).
		Times(7)
	repoMock.EXPECT().
		CountValidatedBetween(ctx, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(7)

	trends, err := service.EnvironmentalTrends(ctx)

	require.NoError(t, err)
	// Any amount of pollution can only push the indices down to their floors.
	assert.Equal(t, []int{60, 60, 60, 60, 60, 60, 60}, trends.WaterQuality)
	assert.Equal(t, []int{55, 55, 55, 55, 55, 55, 55}, trends.AirQuality)
}

func TestEnvironmentalTrends_HeavyConservationHitsCeiling(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountReportsByThreatTypesBetween(ctx, []string{"pollution"}, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(7)
	repoMock.EXPECT().
		CountValidatedBetween(ctx, gomock.Any(), gomock.Any()).
		Return(500, nil).
		Times(7)

	trends, err := service.EnvironmentalTrends(ctx)

	require.NoError(t, err)
	assert.Equal(t, []int{90, 90, 90, 90, 90, 90, 90}, trends.WaterQuality)
	assert.Equal(t, []int{85, 85, 85, 85, 85, 85, 85}, trends.AirQuality)
}

func TestBiodiversityData_EmptyStore(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountValidatedReports(ctx).Return(0, nil).Times(1)

	data, err := service.BiodiversityData(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"Birds", "Fish", "Plants", "Mammals", "Others"}, data.Labels)
	assert.Equal(t, []int{35, 30, 20, 10, 5}, data.Data)
}

func TestMonitoringStations_FallbackWithoutZones(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().ListZones(ctx, 4).Return(nil, nil).Times(1)

	stations, err := service.MonitoringStations(ctx)

	require.NoError(t, err)
	require.Len(t, stations, 4)
	assert.Equal(t, "Sundarbans-01", stations[0].Name)
}

func TestMonitoringStations_FromZones(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()
	zones := []*models.Zone{
		{ID: 3, Name: "Pichavaram"},
		{ID: 7, Name: "Coringa"},
	}

	repoMock.EXPECT().ListZones(ctx, 4).Return(zones, nil).Times(1)

	stations, err := service.MonitoringStations(ctx)

	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "Pichavaram-01", stations[0].Name)
	assert.Equal(t, "Zone 3", stations[0].Location)
	assert.Equal(t, "Online", stations[0].Status)
	assert.Equal(t, "Coringa-02", stations[1].Name)
}

func TestSpeciesTrends_EmptyStore(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountValidatedBetween(ctx, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(1)
	repoMock.EXPECT().
		CountReportsByThreatTypesBetween(ctx, []string{"illegal_cutting", "pollution", "overfishing"}, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(1)

	trends, err := service.SpeciesTrends(ctx)

	require.NoError(t, err)
	assert.Equal(t, 87, trends.Birds.Count)
	assert.Equal(t, 156, trends.Fish.Count)
	assert.Equal(t, 34, trends.Plants.Count)
	assert.Zero(t, trends.Birds.Trend)
	assert.Zero(t, trends.Fish.Trend)
	assert.Zero(t, trends.Plants.Trend)
}

func TestSpeciesTrends_ClampsGrowth(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountValidatedBetween(ctx, gomock.Any(), gomock.Any()).
		Return(1000, nil).
		Times(1)
	repoMock.EXPECT().
		CountReportsByThreatTypesBetween(ctx, []string{"illegal_cutting", "pollution", "overfishing"}, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(1)

	trends, err := service.SpeciesTrends(ctx)

	require.NoError(t, err)
	// A year of heavy conservation saturates each category's ceiling.
	assert.Equal(t, 20.0, trends.Birds.Trend)
	assert.Equal(t, 15.0, trends.Fish.Trend)
	assert.Equal(t, 25.0, trends.Plants.Trend)
}

func TestSpeciesTrends_ClampsDecline(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().
		CountValidatedBetween(ctx, gomock.Any(), gomock.Any()).
		Return(0, nil).
		Times(1)
	repoMock.EXPECT().
		CountReportsByThreatTypesBetween(ctx, []string{"illegal_cutting", "pollution", "overfishing"}, gomock.Any(), gomock.Any()).
		Return(1000, nil).
		Times(1)

	trends, err := service.SpeciesTrends(ctx)

	require.NoError(t, err)
	assert.Equal(t, -15.0, trends.Birds.Trend)
	assert.Equal(t, -10.0, trends.Fish.Trend)
	assert.Equal(t, -5.0, trends.Plants.Trend)
}

func TestConservationStats_Success(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountValidatedReports(ctx).Return(10, nil).Times(1)
	repoMock.EXPECT().CountSentinels(ctx).Return(6, nil).Times(1)

	stats, err := service.ConservationStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 150, stats.TreesPlanted)
	assert.Equal(t, 25, stats.AreaRestored)
	assert.Equal(t, 6, stats.Volunteers)
}

func TestCommunityStats_EmptyStoreDefaults(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountSentinels(ctx).Return(0, nil).Times(1)
	repoMock.EXPECT().CountDistinctUserLocations(ctx).Return(0, nil).Times(1)
	repoMock.EXPECT().CountValidatedReports(ctx).Return(0, nil).Times(1)

	stats, err := service.CommunityStats(ctx)

	require.NoError(t, err)
	// No recorded locations still yields a minimum of five groups.
	assert.Equal(t, 5, stats.LocalGroups)
	assert.Zero(t, stats.Volunteers)
	assert.Zero(t, stats.ImpactHours)
}

func TestCommunityStats_CapsLocalGroups(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountSentinels(ctx).Return(20, nil).Times(1)
	repoMock.EXPECT().CountDistinctUserLocations(ctx).Return(120, nil).Times(1)
	repoMock.EXPECT().CountValidatedReports(ctx).Return(10, nil).Times(1)

	stats, err := service.CommunityStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 50, stats.LocalGroups)
	assert.Equal(t, 20*15+10*3, stats.ImpactHours)
}

func TestLocalGroups_PadsWithDefaults(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()
	rows := []models.LocationMemberStats{
		{Location: "Fort Kochi, Kochi, Kerala", Members: 24},
	}

	repoMock.EXPECT().GroupSentinelsByLocation(ctx, 3).Return(rows, nil).Times(1)

	groups, err := service.LocalGroups(ctx)

	require.NoError(t, err)
	require.Len(t, groups, 3)
	assert.Equal(t, "Coastal Guardians", groups[0].Name)
	assert.Equal(t, "Kochi, Kerala", groups[0].Location)
	assert.Equal(t, 24, groups[0].Members)
	assert.Equal(t, 3, groups[0].Projects)
	// Remaining slots come from the fixed defaults.
	assert.Equal(t, "Mangrove Protectors", groups[1].Name)
	assert.Equal(t, 89, groups[1].Members)
	assert.Equal(t, "Eco Warriors", groups[2].Name)
}

func TestVolunteerOfMonth_Placeholder(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().TopVolunteer(ctx).Return(nil, ErrNotFound).Times(1)

	volunteer, err := service.VolunteerOfMonth(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", volunteer.Name)
	assert.Equal(t, 320, volunteer.PointsEarned)
}

func TestVolunteerOfMonth_FromTopSentinel(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()
	top := &models.User{
		ID:       1,
		FullName: "Asha Nair",
		Location: "Fort Kochi, Kerala",
		Points:   140,
	}

	repoMock.EXPECT().TopVolunteer(ctx).Return(top, nil).Times(1)

	volunteer, err := service.VolunteerOfMonth(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Asha Nair", volunteer.Name)
	assert.Equal(t, "Fort Kochi", volunteer.Location)
	assert.Equal(t, 140, volunteer.PointsEarned)
	// Estimates use truncating division with floors.
	assert.Equal(t, 20, volunteer.HoursVolunteered)
	assert.Equal(t, 3, volunteer.EventsOrganized)
}

func TestEventsStats_EmptyStoreFloors(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountActiveUsers(ctx).Return(0, nil).Times(1)
	repoMock.EXPECT().CountReports(ctx).Return(0, nil).Times(1)

	stats, err := service.EventsStats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 8, stats.UpcomingEvents)
	assert.Equal(t, 5, stats.MonthlyEvents)
	assert.Equal(t, 500, stats.TotalAttendees)
	assert.Equal(t, 50, stats.CompletedEvents)
}

func TestUpcomingEvents_PlacesAlertLocationsFirst(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()
	alerts := []*models.Alert{
		{ID: 1, Location: "Sundarbans, West Bengal"},
	}
	reports := []*models.Report{
		{ID: 2, Location: "Coringa, Andhra Pradesh"},
	}

	repoMock.EXPECT().RecentActiveAlerts(ctx, gomock.Any(), 3).Return(alerts, nil).Times(1)
	repoMock.EXPECT().RecentUnvalidatedReports(ctx, gomock.Any(), 2).Return(reports, nil).Times(1)

	events, err := service.UpcomingEvents(ctx)

	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, "Sundarbans, West Bengal", events[0].Location)
	assert.Equal(t, "Coringa, Andhra Pradesh", events[1].Location)
	// The rest fall back to fixed locations.
	assert.Equal(t, "TERI University, New Delhi", events[2].Location)
	assert.Equal(t, "India Habitat Centre, Delhi", events[3].Location)
}

func TestEventCategories_EmptyStoreFloors(t *testing.T) {
	service, repoMock := newTestStatsService(t)
	ctx := context.Background()

	repoMock.EXPECT().CountReports(ctx).Return(0, nil).Times(1)
	repoMock.EXPECT().
		CountReportsByThreatTypes(ctx, []string{"restoration", "conservation"}).
		Return(0, nil).Times(1)
	repoMock.EXPECT().CountValidatedReports(ctx).Return(0, nil).Times(1)
	repoMock.EXPECT().CountUnvalidatedReports(ctx).Return(0, nil).Times(1)

	categories, err := service.EventCategories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 8)
	expected := map[string]int{
		"Conservation": 5,
		"Research":     3,
		"Education":    4,
		"Advocacy":     2,
		"Community":    6,
		"Technology":   3,
		"Cultural":     4,
		"Youth":        3,
	}
	for _, cat := range categories {
		assert.Equal(t, expected[cat.Name], cat.Count, cat.Name)
	}
}
