package models

import (
	"time"
)

// Zone is a monitored conservation area. Zones are immutable after creation.
type Zone struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	RiskLevel   string     `json:"risk_level"`
	Coordinates string     `json:"coordinates,omitempty"`
	AreaSize    *float64   `json:"area_size,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastPatrol  *time.Time `json:"last_patrol,omitempty"`
}
