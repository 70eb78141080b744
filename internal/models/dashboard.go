package models

import (
	"time"
)

// DashboardStats is the singleton cached-counter row backing the dashboard
// summary endpoint. Counters stay >= 0; lifecycle handlers adjust them with
// atomic statements.
type DashboardStats struct {
	ID                 int64     `json:"-"`
	ActiveAlerts       int       `json:"active_alerts"`
	HighRiskZones      int       `json:"high_risk_zones"`
	ValidatedReports   int       `json:"validated_reports"`
	CommunitySentinels int       `json:"community_sentinels"`
	UpdatedAt          time.Time `json:"updated_at"`
}
