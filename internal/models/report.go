package models

import (
	"time"
)

// Report statuses.
const (
	ReportStatusPending     = "pending"
	ReportStatusUnderReview = "under_review"
	ReportStatusValidated   = "validated"
	ReportStatusRejected    = "rejected"
)

// Report is an environmental threat report submitted by a user.
// Validated == true holds exactly when Status == "validated".
type Report struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	ThreatType  string    `json:"threat_type"`
	Severity    string    `json:"severity"`
	Status      string    `json:"status"`
	Validated   bool      `json:"validated"`
	ReporterID  *int64    `json:"reporter_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
