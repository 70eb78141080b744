package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/diyapatel028/Mangrove-sentinals/internal/models"
	"github.com/sirupsen/logrus"
)

// StatsRepository defines the read queries the aggregator combines into
// summaries, plus access to the dashboard snapshot row and its cache.
type StatsRepository interface {
	GetDashboard(ctx context.Context) (*models.DashboardStats, error)
	CreateDashboard(ctx context.Context) (*models.DashboardStats, error)
	UpdateSentinelCount(ctx context.Context, count int) error
	GetDashboardFromCache(ctx context.Context) (*models.DashboardStats, error)
	SetDashboardCache(ctx context.Context, stats *models.DashboardStats) error

	CountSentinels(ctx context.Context) (int, error)
	CountActiveUsers(ctx context.Context) (int, error)
	CountDistinctUserLocations(ctx context.Context) (int, error)
	CountReports(ctx context.Context) (int, error)
	CountValidatedReports(ctx context.Context) (int, error)
	CountUnvalidatedReports(ctx context.Context) (int, error)
	CountValidatedBetween(ctx context.Context, from, to time.Time) (int, error)
	CountReportsByThreatTypes(ctx context.Context, threatTypes []string) (int, error)
	CountReportsByThreatTypesBetween(ctx context.Context, threatTypes []string, from, to time.Time) (int, error)
	CountValidatedByThreatTypes(ctx context.Context, threatTypes []string) (int, error)
	GroupReportsByLocation(ctx context.Context, limit int) ([]models.LocationReportStats, error)
	GroupSentinelsByLocation(ctx context.Context, limit int) ([]models.LocationMemberStats, error)
	RecentValidatedReports(ctx context.Context, since time.Time, limit int) ([]*models.Report, error)
	RecentUnvalidatedReports(ctx context.Context, since time.Time, limit int) ([]*models.Report, error)
	RecentValidatedBySeverity(ctx context.Context, severities []string, since time.Time, limit int) ([]*models.Report, error)
	RecentActiveAlerts(ctx context.Context, since time.Time, limit int) ([]*models.Alert, error)
	TopVolunteer(ctx context.Context) (*models.User, error)
	ListZones(ctx context.Context, limit int) ([]*models.Zone, error)
}

// StatsService defines the statistics aggregator: read-only computations that
// combine store queries into dashboard summaries. No operation here fails on
// absent data; every summary has a documented default so dashboards always
// render. The only write is the lazy creation of the snapshot row.
type StatsService interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	ImpactSeries(ctx context.Context) ([]models.ImpactEntry, error)

	EcosystemHealth(ctx context.Context) (*models.EcosystemHealth, error)
	EnvironmentalTrends(ctx context.Context) (*models.EnvironmentalTrends, error)
	BiodiversityData(ctx context.Context) (*models.BiodiversityData, error)
	MonitoringStations(ctx context.Context) ([]models.MonitoringStation, error)
	SpeciesTrends(ctx context.Context) (*models.SpeciesTrends, error)

	ConservationStats(ctx context.Context) (*models.ConservationStats, error)
	ConservationProjects(ctx context.Context) ([]models.ConservationProject, error)
	ConservationUpdates(ctx context.Context) ([]models.ConservationUpdate, error)

	CommunityStats(ctx context.Context) (*models.CommunityStats, error)
	VolunteerOpportunities(ctx context.Context) ([]models.VolunteerOpportunity, error)
	LocalGroups(ctx context.Context) ([]models.LocalGroup, error)
	SuccessStories(ctx context.Context) ([]models.SuccessStory, error)
	VolunteerOfMonth(ctx context.Context) (*models.VolunteerOfMonth, error)

	EventsStats(ctx context.Context) (*models.EventsStats, error)
	UpcomingEvents(ctx context.Context) ([]models.UpcomingEvent, error)
	PastHighlights(ctx context.Context) ([]models.PastHighlight, error)
	EventCategories(ctx context.Context) ([]models.EventCategory, error)
}

type statsService struct {
	repo   StatsRepository
	logger *logrus.Logger
}

func NewStatsService(repo StatsRepository, logger *logrus.Logger) StatsService {
	return &statsService{
		repo:   repo,
		logger: logger,
	}
}

var trendLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul"}

// DashboardStats returns the snapshot row, creating an all-zero row on first
// access, with the community_sentinels counter refreshed from a live count.
func (s *statsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "stats",
		"method":  "DashboardStats",
	})

	if cached, err := s.repo.GetDashboardFromCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to read dashboard stats from cache")
	} else if cached != nil {
		log.Debug("Dashboard stats served from cache")
		return cached, nil
	}

	stats, err := s.repo.GetDashboard(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.WithError(err).Error("Failed to get dashboard stats")
			return nil, fmt.Errorf("service: could not get dashboard stats: %w", err)
		}
		stats, err = s.repo.CreateDashboard(ctx)
		if err != nil {
			log.WithError(err).Error("Failed to create dashboard stats row")
			return nil, fmt.Errorf("service: could not create dashboard stats: %w", err)
		}
		log.Info("Created default dashboard stats row")
	}

	sentinels, err := s.repo.CountSentinels(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to count sentinels")
		return nil, fmt.Errorf("service: could not count sentinels: %w", err)
	}
	if err := s.repo.UpdateSentinelCount(ctx, sentinels); err != nil {
		log.WithError(err).Error("Failed to refresh sentinel counter")
		return nil, fmt.Errorf("service: could not refresh sentinel counter: %w", err)
	}
	stats.CommunitySentinels = sentinels

	if err := s.repo.SetDashboardCache(ctx, stats); err != nil {
		log.WithError(err).Warn("Failed to cache dashboard stats")
	}
	return stats, nil
}

// ImpactSeries returns seven monthly entries, Jan through Jul. Each entry is
// the current validated count minus a decreasing offset, floored so the series
// stays positive and non-decreasing on an empty store.
func (s *statsService) ImpactSeries(ctx context.Context) ([]models.ImpactEntry, error) {
	validated, err := s.repo.CountValidatedReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count validated reports: %w", err)
	}

	series := []models.ImpactEntry{
		{Month: "Jan", ValidatedReports: maxInt(1, validated-25)},
		{Month: "Feb", ValidatedReports: maxInt(2, validated-20)},
		{Month: "Mar", ValidatedReports: maxInt(3, validated-15)},
		{Month: "Apr", ValidatedReports: maxInt(4, validated-10)},
		{Month: "May", ValidatedReports: maxInt(5, validated-8)},
		{Month: "Jun", ValidatedReports: maxInt(6, validated-5)},
		{Month: "Jul", ValidatedReports: maxInt(validated, 7)},
	}
	return series, nil
}

// EcosystemHealth derives health metrics from report activity. The formulas
// are self-defaulting: an empty store yields the base values.
func (s *statsService) EcosystemHealth(ctx context.Context) (*models.EcosystemHealth, error) {
	now := time.Now()

	pollution, err := s.repo.CountReportsByThreatTypesBetween(ctx, []string{"pollution"}, now.AddDate(0, 0, -90), now)
	if err != nil {
		return nil, fmt.Errorf("service: could not count pollution reports: %w", err)
	}
	// Water quality index, 0-100. Lower pollution means higher quality.
	waterQuality := maxInt(50, 95-pollution*3)

	validated, err := s.repo.CountValidatedReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count validated reports: %w", err)
	}
	// Base species count plus a conservation bonus, capped at 300 total.
	speciesCount := 180 + minInt(validated*2, 120)

	conservation, err := s.repo.CountValidatedByThreatTypes(ctx, []string{"restoration", "conservation"})
	if err != nil {
		return nil, fmt.Errorf("service: could not count conservation reports: %w", err)
	}
	destruction, err := s.repo.CountReportsByThreatTypes(ctx, []string{"illegal_cutting", "construction"})
	if err != nil {
		return nil, fmt.Errorf("service: could not count destruction reports: %w", err)
	}
	forestCover := clampFloat(45, 95, 75+float64(conservation)*2-float64(destruction)*1.5)

	healthScore := (float64(waterQuality)*0.3 + forestCover*0.4 + math.Min(float64(speciesCount)/300*100, 100)*0.3) / 10

	return &models.EcosystemHealth{
		WaterQuality: waterQuality,
		SpeciesCount: speciesCount,
		ForestCover:  int(forestCover),
		HealthScore:  round1(healthScore),
	}, nil
}

// EnvironmentalTrends returns water and air quality series over seven
// 30-day buckets, combining a gradual baseline with the bucket's conservation
// and pollution activity.
func (s *statsService) EnvironmentalTrends(ctx context.Context) (*models.EnvironmentalTrends, error) {
	now := time.Now()

	trends := &models.EnvironmentalTrends{
		Labels:       trendLabels,
		WaterQuality: make([]int, 0, len(trendLabels)),
		AirQuality:   make([]int, 0, len(trendLabels)),
	}

	for i := 0; i < len(trendLabels); i++ {
		monthStart := now.AddDate(0, 0, -30*(7-i))
		monthEnd := now.AddDate(0, 0, -30*(6-i))

		pollution, err := s.repo.CountReportsByThreatTypesBetween(ctx, []string{"pollution"}, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("service: could not count pollution reports: %w", err)
		}
		conservation, err := s.repo.CountValidatedBetween(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, fmt.Errorf("service: could not count validated reports: %w", err)
		}

		// Water quality improves with conservation, degrades with pollution.
		water := clampFloat(60, 90, 70+float64(i)*2+float64(conservation)*3-float64(pollution)*2)
		// Air quality follows the same shape, less volatile.
		air := clampFloat(55, 85, 65+float64(i)*1.5+float64(conservation)*2-float64(pollution)*1.5)

		trends.WaterQuality = append(trends.WaterQuality, int(water))
		trends.AirQuality = append(trends.AirQuality, int(air))
	}
	return trends, nil
}

// BiodiversityData returns the category distribution, scaled up by
// conservation success with a built-in 80% cap.
func (s *statsService) BiodiversityData(ctx context.Context) (*models.BiodiversityData, error) {
	validated, err := s.repo.CountValidatedReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count validated reports: %w", err)
	}

	multiplier := 1 + math.Min(float64(validated)/100, 0.8)

	labels := []string{"Birds", "Fish", "Plants", "Mammals", "Others"}
	base := []int{35, 30, 20, 10, 5}
	data := make([]int, len(base))
	for i, pct := range base {
		data[i] = int(float64(pct) * multiplier)
	}

	return &models.BiodiversityData{Labels: labels, Data: data}, nil
}

var defaultStations = []models.MonitoringStation{
	{Name: "Sundarbans-01", Location: "West Bengal", Status: "Online", LastReading: "2 hours ago"},
	{Name: "Bhitarkanika-02", Location: "Odisha", Status: "Online", LastReading: "1 hour ago"},
	{Name: "Pichavaram-03", Location: "Tamil Nadu", Status: "Maintenance", LastReading: "6 hours ago"},
	{Name: "Coringa-04", Location: "Andhra Pradesh", Status: "Online", LastReading: "30 minutes ago"},
}

// MonitoringStations maps the first four zones onto station records, falling
// back to four fixed default stations when no zones exist.
func (s *statsService) MonitoringStations(ctx context.Context) ([]models.MonitoringStation, error) {
	zones, err := s.repo.ListZones(ctx, 4)
	if err != nil {
		return nil, fmt.Errorf("service: could not list zones: %w", err)
	}
	if len(zones) == 0 {
		return defaultStations, nil
	}

	statuses := []string{"Online", "Online", "Maintenance", "Online"}
	readings := []string{"2 hours ago", "1 hour ago", "6 hours ago", "30 minutes ago"}

	stations := make([]models.MonitoringStation, 0, len(zones))
	for i, zone := range zones {
		stations = append(stations, models.MonitoringStation{
			Name:        fmt.Sprintf("%s-%02d", zone.Name, i+1),
			Location:    fmt.Sprintf("Zone %d", zone.ID),
			Status:      statuses[i%len(statuses)],
			LastReading: readings[i%len(readings)],
		})
	}
	return stations, nil
}

// SpeciesTrends derives population trends from a year of conservation
// activity against threat activity, clamped per category.
func (s *statsService) SpeciesTrends(ctx context.Context) (*models.SpeciesTrends, error) {
	now := time.Now()
	yearAgo := now.AddDate(0, 0, -365)

	conservation, err := s.repo.CountValidatedBetween(ctx, yearAgo, now)
	if err != nil {
		return nil, fmt.Errorf("service: could not count validated reports: %w", err)
	}
	threats, err := s.repo.CountReportsByThreatTypesBetween(ctx, []string{"illegal_cutting", "pollution", "overfishing"}, yearAgo, now)
	if err != nil {
		return nil, fmt.Errorf("service: could not count threat reports: %w", err)
	}

	conservationImpact := float64(conservation) * 0.5
	threatImpact := float64(threats) * 0.3

	return &models.SpeciesTrends{
		Birds: models.SpeciesTrend{
			Count: 87,
			Trend: round1(clampFloat(-15, 20, conservationImpact-threatImpact)),
		},
		Fish: models.SpeciesTrend{
			Count: 156,
			Trend: round1(clampFloat(-10, 15, conservationImpact*0.8-threatImpact*1.2)),
		},
		Plants: models.SpeciesTrend{
			Count: 34,
			Trend: round1(clampFloat(-5, 25, conservationImpact*1.2-threatImpact*0.8)),
		},
	}, nil
}

// ConservationStats estimates conservation output from validated reports:
// 15 trees and 2.5 hectares per validated report.
func (s *statsService) ConservationStats(ctx context.Context) (*models.ConservationStats, error) {
	validated, err := s.repo.CountValidatedReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count validated reports: %w", err)
	}
	volunteers, err := s.repo.CountSentinels(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count sentinels: %w", err)
	}

	return &models.ConservationStats{
		ActiveProjects: 24,
		TreesPlanted:   validated * 15,
		AreaRestored:   int(float64(validated) * 2.5),
		Volunteers:     volunteers,
	}, nil
}

// ConservationProjects builds per-location project summaries from reports
// grouped by location, top four locations by report count.
func (s *statsService) ConservationProjects(ctx context.Context) ([]models.ConservationProject, error) {
	rows, err := s.repo.GroupReportsByLocation(ctx, 4)
	if err != nil {
		return nil, fmt.Errorf("service: could not group reports by location: %w", err)
	}

	statuses := []string{"Active", "Planning", "In Progress", "Completed"}

	projects := make([]models.ConservationProject, 0, len(rows))
	for i, row := range rows {
		projects = append(projects, models.ConservationProject{
			Title:            fmt.Sprintf("Mangrove Restoration - %s", firstLocationPart(row.Location)),
			Location:         row.Location,
			Status:           statuses[i%len(statuses)],
			TreesPlanted:     row.ValidatedReports * 12,
			TotalReports:     row.TotalReports,
			ValidatedReports: row.ValidatedReports,
			Description:      fmt.Sprintf("Conservation project in %s with community involvement", row.Location),
		})
	}
	return projects, nil
}

// ConservationUpdates turns the last five validated reports of the past 30
// days into recent-update lines.
func (s *statsService) ConservationUpdates(ctx context.Context) ([]models.ConservationUpdate, error) {
	reports, err := s.repo.RecentValidatedReports(ctx, time.Now().AddDate(0, 0, -30), 5)
	if err != nil {
		return nil, fmt.Errorf("service: could not list recent validated reports: %w", err)
	}

	colors := []string{"green", "blue", "amber"}

	updates := make([]models.ConservationUpdate, 0, len(reports))
	for i, report := range reports {
		place := firstLocationPart(report.Location)
		title := strings.ToLower(report.Title)

		var text, color string
		switch {
		case strings.Contains(title, "cutting"):
			text = fmt.Sprintf("Successfully stopped illegal cutting in %s", place)
			color = "amber"
		case strings.Contains(title, "restoration"), strings.Contains(title, "plant"):
			text = fmt.Sprintf("Planted new saplings in %s", place)
			color = "green"
		default:
			text = fmt.Sprintf("Conservation action completed in %s", place)
			color = colors[i%len(colors)]
		}

		updates = append(updates, models.ConservationUpdate{
			Text:     text,
			DotColor: color,
			Date:     report.CreatedAt,
		})
	}
	return updates, nil
}

// CommunityStats summarizes participation: local groups are estimated from
// distinct user locations, defaulting to five and capped at fifty.
func (s *statsService) CommunityStats(ctx context.Context) (*models.CommunityStats, error) {
	volunteers, err := s.repo.CountSentinels(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count sentinels: %w", err)
	}
	localGroups, err := s.repo.CountDistinctUserLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count user locations: %w", err)
	}
	if localGroups == 0 {
		localGroups = 5
	}
	projects, err := s.repo.CountValidatedReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count validated reports: %w", err)
	}

	return &models.CommunityStats{
		Volunteers:  volunteers,
		LocalGroups: minInt(localGroups, 50),
		Projects:    projects,
		ImpactHours: volunteers*15 + projects*3,
	}, nil
}

var opportunityTemplates = []models.VolunteerOpportunity{
	{Title: "Beach Cleanup Drive", Description: "Join us for a coastal cleanup", VolunteersNeeded: 25, Status: "Open"},
	{Title: "Mangrove Planting", Description: "Help plant mangrove saplings in restoration area", VolunteersNeeded: 8, Status: "Limited"},
	{Title: "Educational Outreach", Description: "Teach local school children about mangrove ecosystems", VolunteersNeeded: 15, Status: "Open"},
	{Title: "Wildlife Monitoring", Description: "Monitor bird populations and marine life", VolunteersNeeded: 12, Status: "Training"},
}

var fallbackLocations = []string{
	"Marine National Park, Gujarat",
	"Sundarbans, West Bengal",
	"Pichavaram, Tamil Nadu",
	"Bhitarkanika, Odisha",
}

// VolunteerOpportunities schedules the four opportunity templates at the
// locations of recent unvalidated reports, falling back to fixed locations.
func (s *statsService) VolunteerOpportunities(ctx context.Context) ([]models.VolunteerOpportunity, error) {
	reports, err := s.repo.RecentUnvalidatedReports(ctx, time.Now().AddDate(0, 0, -30), 4)
	if err != nil {
		return nil, fmt.Errorf("service: could not list recent reports: %w", err)
	}

	opportunities := make([]models.VolunteerOpportunity, 0, len(opportunityTemplates))
	for i, tmpl := range opportunityTemplates {
		opportunity := tmpl
		if i < len(reports) {
			opportunity.Location = reports[i].Location
		} else {
			opportunity.Location = fallbackLocations[i]
		}
		opportunity.Date = time.Now().AddDate(0, 0, 7+i*7).Format("Jan 02, 2006")
		opportunities = append(opportunities, opportunity)
	}
	return opportunities, nil
}

var defaultGroups = []models.LocalGroup{
	{Name: "Coastal Guardians", Location: "Chennai, Tamil Nadu", Members: 145, Projects: 23, Icon: "🌊"},
	{Name: "Mangrove Protectors", Location: "Mumbai, Maharashtra", Members: 89, Projects: 18, Icon: "🐦"},
	{Name: "Eco Warriors", Location: "Kolkata, West Bengal", Members: 203, Projects: 31, Icon: "🌱"},
}

// LocalGroups groups active sentinels by location and returns the top three
// by member count, padded with fixed default groups up to length three.
func (s *statsService) LocalGroups(ctx context.Context) ([]models.LocalGroup, error) {
	rows, err := s.repo.GroupSentinelsByLocation(ctx, 3)
	if err != nil {
		return nil, fmt.Errorf("service: could not group sentinels by location: %w", err)
	}

	names := []string{"Coastal Guardians", "Mangrove Protectors", "Eco Warriors"}
	icons := []string{"🌊", "🐦", "🌱"}

	groups := make([]models.LocalGroup, 0, 3)
	for i, row := range rows {
		groups = append(groups, models.LocalGroup{
			Name:     names[i%len(names)],
			Location: cityState(row.Location),
			Members:  row.Members,
			Projects: maxInt(1, row.Members/8),
			Icon:     icons[i%len(icons)],
		})
	}

	for len(groups) < 3 {
		groups = append(groups, defaultGroups[len(groups)])
	}
	return groups, nil
}

// SuccessStories customizes two story templates from recent high-severity
// validated reports.
func (s *statsService) SuccessStories(ctx context.Context) ([]models.SuccessStory, error) {
	reports, err := s.repo.RecentValidatedBySeverity(ctx, []string{"high"}, time.Time{}, 2)
	if err != nil {
		return nil, fmt.Errorf("service: could not list validated reports: %w", err)
	}

	templates := []models.SuccessStory{
		{
			Title:       "Fishermen Turn Conservation Champions",
			Description: "Local fishing community successfully restored mangrove habitat, improving both fish populations and coastal protection.",
			Impact:      "25 hectares restored",
		},
		{
			Title:       "Student-Led Monitoring Program",
			Description: "College students established a citizen science program, training volunteers to monitor water quality and wildlife populations.",
			Impact:      "500+ volunteers trained",
		},
	}
	suffixes := []string{"Kerala", "Goa"}

	stories := make([]models.SuccessStory, 0, len(templates))
	for i, tmpl := range templates {
		story := tmpl
		if i < len(reports) {
			place := firstLocationPart(reports[i].Location)
			story.Location = fmt.Sprintf("%s, %s", place, suffixes[i])

			title := strings.ToLower(reports[i].Title)
			switch {
			case strings.Contains(title, "cutting"):
				story.Title = fmt.Sprintf("Community Stops Illegal Cutting in %s", place)
				story.Description = fmt.Sprintf("Local volunteers successfully prevented unauthorized mangrove destruction in %s.", place)
			case strings.Contains(title, "pollution"):
				story.Title = fmt.Sprintf("Pollution Cleanup Success in %s", place)
				story.Description = fmt.Sprintf("Community-led cleanup effort restored ecosystem health in %s.", place)
			}
		} else {
			story.Location = fmt.Sprintf("Sample City, %s", suffixes[i])
		}

		if i == 0 {
			story.Type = "Success Story"
		} else {
			story.Type = "Impact Story"
		}
		stories = append(stories, story)
	}
	return stories, nil
}

// defaultVolunteer is returned when no active sentinel has earned points yet.
var defaultVolunteer = models.VolunteerOfMonth{
	Name:             "Priya Sharma",
	Title:            "Marine Biology Student",
	Location:         "Chennai",
	Description:      "Organized 12 beach cleanups and educated 300+ school children about marine conservation. Her dedication has inspired a new generation of environmental stewards.",
	HoursVolunteered: 47,
	EventsOrganized:  8,
	PointsEarned:     320,
}

// VolunteerOfMonth features the top-points active sentinel. Hours and events
// are estimated from points with truncating integer division.
func (s *statsService) VolunteerOfMonth(ctx context.Context) (*models.VolunteerOfMonth, error) {
	top, err := s.repo.TopVolunteer(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			placeholder := defaultVolunteer
			return &placeholder, nil
		}
		return nil, fmt.Errorf("service: could not get top volunteer: %w", err)
	}

	location := "Unknown Location"
	if top.Location != "" {
		location = firstLocationPart(top.Location)
	}

	return &models.VolunteerOfMonth{
		Name:             top.FullName,
		Title:            "Conservation Volunteer",
		Location:         location,
		Description:      fmt.Sprintf("Outstanding volunteer who has contributed significantly to mangrove conservation efforts. With %d points earned through dedicated service.", top.Points),
		HoursVolunteered: maxInt(20, top.Points/7),
		EventsOrganized:  maxInt(1, top.Points/40),
		PointsEarned:     top.Points,
	}, nil
}

// EventsStats estimates event activity from account and report counts.
func (s *statsService) EventsStats(ctx context.Context) (*models.EventsStats, error) {
	activeUsers, err := s.repo.CountActiveUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count active users: %w", err)
	}
	totalReports, err := s.repo.CountReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count reports: %w", err)
	}

	return &models.EventsStats{
		UpcomingEvents:  minInt(15, maxInt(8, activeUsers/50)),
		MonthlyEvents:   minInt(10, maxInt(5, activeUsers/80)),
		TotalAttendees:  activeUsers*2 + 500,
		CompletedEvents: minInt(200, maxInt(50, totalReports/3)),
	}, nil
}

var eventTemplates = []models.UpcomingEvent{
	{Title: "Beach Cleanup & Mangrove Survey", Description: "Community-driven cleanup followed by ecosystem health assessment", Time: "7:00 AM - 2:00 PM", Spots: "25", Type: "cleanup"},
	{Title: "Mangrove Restoration Workshop", Description: "Hands-on training for proper mangrove planting techniques", Time: "6:00 AM - 12:00 PM", Spots: "15", Type: "workshop"},
	{Title: "Scientific Research Symposium", Description: "Latest research findings on mangrove ecosystem resilience", Time: "9:00 AM - 5:00 PM", Spots: "Virtual + In-person", Type: "research"},
	{Title: "Photography Contest & Exhibition", Description: "Showcase the beauty of mangrove ecosystems through photography", Time: "10:00 AM - 8:00 PM", Spots: "Open to all", Type: "cultural"},
}

var eventFallbackLocations = []string{
	"Marine National Park, Gujarat",
	"Sundarbans, West Bengal",
	"TERI University, New Delhi",
	"India Habitat Centre, Delhi",
}

// UpcomingEvents schedules the four event templates weekly, placed at recent
// alert locations first, then recent report locations, then fixed fallbacks.
func (s *statsService) UpcomingEvents(ctx context.Context) ([]models.UpcomingEvent, error) {
	now := time.Now()

	alerts, err := s.repo.RecentActiveAlerts(ctx, now.AddDate(0, 0, -30), 3)
	if err != nil {
		return nil, fmt.Errorf("service: could not list recent alerts: %w", err)
	}
	reports, err := s.repo.RecentUnvalidatedReports(ctx, now.AddDate(0, 0, -14), 2)
	if err != nil {
		return nil, fmt.Errorf("service: could not list recent reports: %w", err)
	}

	events := make([]models.UpcomingEvent, 0, len(eventTemplates))
	for i, tmpl := range eventTemplates {
		event := tmpl

		switch {
		case i < len(alerts):
			event.Location = alerts[i].Location
		case i-len(alerts) < len(reports):
			event.Location = reports[i-len(alerts)].Location
		default:
			event.Location = eventFallbackLocations[i%len(eventFallbackLocations)]
		}

		date := now.AddDate(0, 0, 7+i*7)
		event.Date = date.Format("Jan 02, 2006")
		event.Day = date.Day()
		event.Month = strings.ToUpper(date.Format("Jan"))

		events = append(events, event)
	}
	return events, nil
}

// PastHighlights builds three highlight entries from recent validated
// medium/high reports, with fixed defaults when data is sparse.
func (s *statsService) PastHighlights(ctx context.Context) ([]models.PastHighlight, error) {
	now := time.Now()

	reports, err := s.repo.RecentValidatedBySeverity(ctx, []string{"medium", "high"}, now.AddDate(0, 0, -90), 3)
	if err != nil {
		return nil, fmt.Errorf("service: could not list validated reports: %w", err)
	}

	type highlightTemplate struct {
		title        string
		describe     func(place string) string
		participants string
	}
	templates := []highlightTemplate{
		{
			title:        "Mega Restoration Drive",
			describe:     func(place string) string { return fmt.Sprintf("Volunteers planted mangrove saplings in %s", place) },
			participants: "Community volunteers",
		},
		{
			title: "Youth Leadership Summit",
			describe: func(place string) string {
				return fmt.Sprintf("Young leaders from multiple states gathered for conservation training in %s", place)
			},
			participants: "Young leaders",
		},
		{
			title:        "Marine Research Expedition",
			describe:     func(place string) string { return fmt.Sprintf("Scientists documented new species in %s ecosystem", place) },
			participants: "Research team",
		},
	}
	defaultPlaces := []string{"Pichavaram", "Sundarbans", "Bhitarkanika"}

	highlights := make([]models.PastHighlight, 0, len(templates))
	for i, tmpl := range templates {
		var place string
		var date time.Time
		if i < len(reports) {
			place = firstLocationPart(reports[i].Location)
			date = reports[i].CreatedAt
		} else {
			place = defaultPlaces[i%len(defaultPlaces)]
			date = now.AddDate(0, 0, -(30 + i*20))
		}

		highlights = append(highlights, models.PastHighlight{
			Title:        tmpl.title,
			Description:  tmpl.describe(place),
			Date:         date.Format("Jan 02, 2006"),
			Status:       "Completed",
			Participants: tmpl.participants,
		})
	}
	return highlights, nil
}

// EventCategories returns the eight fixed categories with counts floored by
// report activity.
func (s *statsService) EventCategories(ctx context.Context) ([]models.EventCategory, error) {
	totalReports, err := s.repo.CountReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count reports: %w", err)
	}
	conservationReports, err := s.repo.CountReportsByThreatTypes(ctx, []string{"restoration", "conservation"})
	if err != nil {
		return nil, fmt.Errorf("service: could not count conservation reports: %w", err)
	}
	researchActivity, err := s.repo.CountValidatedReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count validated reports: %w", err)
	}
	educationalNeeds, err := s.repo.CountUnvalidatedReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not count unvalidated reports: %w", err)
	}

	categories := []models.EventCategory{
		{Name: "Conservation", Icon: "🌱", Description: "Tree planting and habitat restoration", Count: maxInt(5, conservationReports)},
		{Name: "Research", Icon: "🔬", Description: "Scientific studies and data collection", Count: maxInt(3, researchActivity/5)},
		{Name: "Education", Icon: "📚", Description: "Workshops and training programs", Count: maxInt(4, educationalNeeds/8)},
		{Name: "Advocacy", Icon: "📢", Description: "Policy discussions and awareness", Count: maxInt(2, totalReports/20)},
		{Name: "Community", Icon: "🤝", Description: "Local engagement and networking", Count: maxInt(6, totalReports/15)},
		{Name: "Technology", Icon: "💻", Description: "Innovation in conservation tools", Count: 3},
		{Name: "Cultural", Icon: "🎨", Description: "Art, music, and cultural events", Count: 4},
		{Name: "Youth", Icon: "👨‍🎓", Description: "Student-focused activities", Count: maxInt(3, educationalNeeds/12)},
	}
	return categories, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampFloat(lo, hi, v float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// round1 rounds half away from zero to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// firstLocationPart returns the text before the first comma.
func firstLocationPart(location string) string {
	part, _, _ := strings.Cut(location, ",")
	return strings.TrimSpace(part)
}

// cityState keeps the last two comma-separated parts of a location.
func cityState(location string) string {
	parts := strings.Split(location, ",")
	if len(parts) < 2 {
		return location
	}
	tail := parts[len(parts)-2:]
	for i := range tail {
		tail[i] = strings.TrimSpace(tail[i])
	}
	return strings.Join(tail, ", ")
}
