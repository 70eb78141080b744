package models

import (
	"time"
)

// Alert is an active warning issued for a location. ResolvedAt is set
// exactly when the alert has been resolved (IsActive == false).
type Alert struct {
	ID         int64      `json:"id"`
	Title      string     `json:"title"`
	Message    string     `json:"message,omitempty"`
	AlertType  string     `json:"alert_type"`
	Severity   string     `json:"severity"`
	Location   string     `json:"location,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}
