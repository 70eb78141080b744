package models

import (
	"time"
)

// Summary shapes produced by the statistics aggregator. These are derived
// values only; nothing here is persisted except DashboardStats.

// ImpactEntry is one month of the dashboard impact series.
type ImpactEntry struct {
	Month            string `json:"month"`
	ValidatedReports int    `json:"validated_reports"`
}

// EcosystemHealth holds the derived ecosystem health metrics.
type EcosystemHealth struct {
	WaterQuality int     `json:"water_quality"`
	SpeciesCount int     `json:"species_count"`
	ForestCover  int     `json:"forest_cover"`
	HealthScore  float64 `json:"health_score"`
}

// EnvironmentalTrends holds label-aligned monthly quality series.
type EnvironmentalTrends struct {
	Labels       []string `json:"labels"`
	WaterQuality []int    `json:"water_quality"`
	AirQuality   []int    `json:"air_quality"`
}

// BiodiversityData holds the category distribution for the biodiversity chart.
type BiodiversityData struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// MonitoringStation describes one monitoring station derived from a zone.
type MonitoringStation struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	LastReading string `json:"last_reading"`
}

// SpeciesTrend is the population trend for one species category.
type SpeciesTrend struct {
	Count int     `json:"count"`
	Trend float64 `json:"trend"`
}

// SpeciesTrends groups the tracked species categories.
type SpeciesTrends struct {
	Birds  SpeciesTrend `json:"birds"`
	Fish   SpeciesTrend `json:"fish"`
	Plants SpeciesTrend `json:"plants"`
}

// ConservationStats summarizes conservation activity.
type ConservationStats struct {
	ActiveProjects int `json:"active_projects"`
	TreesPlanted   int `json:"trees_planted"`
	AreaRestored   int `json:"area_restored"`
	Volunteers     int `json:"volunteers"`
}

// ConservationProject is a per-location project summary.
type ConservationProject struct {
	Title            string `json:"title"`
	Location         string `json:"location"`
	Status           string `json:"status"`
	TreesPlanted     int    `json:"trees_planted"`
	TotalReports     int    `json:"total_reports"`
	ValidatedReports int    `json:"validated_reports"`
	Description      string `json:"description"`
}

// ConservationUpdate is one recent-update line derived from a validated report.
type ConservationUpdate struct {
	Text     string    `json:"text"`
	DotColor string    `json:"dot_color"`
	Date     time.Time `json:"date"`
}

// CommunityStats summarizes community participation.
type CommunityStats struct {
	Volunteers  int `json:"volunteers"`
	LocalGroups int `json:"local_groups"`
	Projects    int `json:"projects"`
	ImpactHours int `json:"impact_hours"`
}

// VolunteerOpportunity is an open volunteering slot.
type VolunteerOpportunity struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	VolunteersNeeded int    `json:"volunteers_needed"`
	Status           string `json:"status"`
	Location         string `json:"location"`
	Date             string `json:"date"`
}

// LocalGroup is a community group derived from sentinel locations.
type LocalGroup struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Members  int    `json:"members"`
	Projects int    `json:"projects"`
	Icon     string `json:"icon"`
}

// SuccessStory is a community success story derived from validated reports.
type SuccessStory struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Impact      string `json:"impact"`
	Type        string `json:"type"`
}

// VolunteerOfMonth is the featured volunteer summary.
type VolunteerOfMonth struct {
	Name             string `json:"name"`
	Title            string `json:"title"`
	Location         string `json:"location"`
	Description      string `json:"description"`
	HoursVolunteered int    `json:"hours_volunteered"`
	EventsOrganized  int    `json:"events_organized"`
	PointsEarned     int    `json:"points_earned"`
}

// EventsStats summarizes event activity.
type EventsStats struct {
	UpcomingEvents  int `json:"upcoming_events"`
	MonthlyEvents   int `json:"monthly_events"`
	TotalAttendees  int `json:"total_attendees"`
	CompletedEvents int `json:"completed_events"`
}

// UpcomingEvent is a scheduled community event.
type UpcomingEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Day         int    `json:"day"`
	Month       string `json:"month"`
	Time        string `json:"time"`
	Spots       string `json:"spots"`
	Type        string `json:"type"`
}

// PastHighlight is a completed event highlight.
type PastHighlight struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	Participants string `json:"participants"`
}

// EventCategory is an event category with an activity-derived count.
type EventCategory struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// LocationReportStats is a group-by-location report aggregate row.
type LocationReportStats struct {
	Location         string `json:"location"`
	TotalReports     int    `json:"total_reports"`
	ValidatedReports int    `json:"validated_reports"`
}

// LocationMemberStats is a group-by-location sentinel count row.
type LocationMemberStats struct {
	Location string `json:"location"`
	Members  int    `json:"members"`
}
