package v1

import (
	"time"
)

// RegisterRequest DTO for account registration
// @Description DTO for account registration
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Location string `json:"location,omitempty" validate:"omitempty,max=255"`
}

// LoginRequest DTO for credential verification
// @Description DTO for credential verification
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse DTO carrying the issued access token
// @Description DTO carrying the issued access token
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

// UpdateProfileRequest DTO for profile updates. Absent fields stay unchanged.
// @Description DTO for profile updates
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=2,max=255"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Location *string `json:"location,omitempty" validate:"omitempty,max=255"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

// AwardPointsRequest DTO for point awards
// @Description DTO for point awards
type AwardPointsRequest struct {
	Points int `json:"points" validate:"required"`
}

// PointsResponse DTO with the new point total
// @Description DTO with the new point total
type PointsResponse struct {
	TotalPoints int `json:"total_points"`
}

// UserResponse DTO for account data
// @Description DTO for account data
type UserResponse struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone,omitempty"`
	Location   string    `json:"location,omitempty"`
	IsActive   bool      `json:"is_active"`
	IsSentinel bool      `json:"is_sentinel"`
	Points     int       `json:"points"`
	Badges     string    `json:"badges,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateReportRequest DTO for submitting a threat report
// @Description DTO for submitting a threat report
type CreateReportRequest struct {
	Title       string   `json:"title" validate:"required,min=2,max=255"`
	Description string   `json:"description,omitempty"`
	Location    string   `json:"location" validate:"required,max=255"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	ThreatType  string   `json:"threat_type" validate:"required,max=100"`
	Severity    string   `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
}

// ReportResponse DTO for threat report data
// @Description DTO for threat report data
type ReportResponse struct {
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

// CreateAlertRequest DTO for issuing an alert
// @Description DTO for issuing an alert
type CreateAlertRequest struct {
	Title     string `json:"title" validate:"required,min=2,max=255"`
	Message   string `json:"message,omitempty"`
	AlertType string `json:"alert_type" validate:"required,max=100"`
	Severity  string `json:"severity,omitempty" validate:"omitempty,oneof=low medium high"`
	Location  string `json:"location,omitempty" validate:"omitempty,max=255"`
}

// AlertResponse DTO for alert data
// @Description DTO for alert data
type AlertResponse struct {
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

// CreateZoneRequest DTO for registering a monitored zone
// @Description DTO for registering a monitored zone
type CreateZoneRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Description string   `json:"description,omitempty"`
	RiskLevel   string   `json:"risk_level,omitempty" validate:"omitempty,oneof=low medium high"`
	Coordinates string   `json:"coordinates,omitempty" validate:"omitempty,max=255"`
	AreaSize    *float64 `json:"area_size,omitempty" validate:"omitempty,gt=0"`
}

// ZoneResponse DTO for zone data
// @Description DTO for zone data
type ZoneResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	RiskLevel   string     `json:"risk_level"`
	Coordinates string     `json:"coordinates,omitempty"`
	AreaSize    *float64   `json:"area_size,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	LastPatrol  *time.Time `json:"last_patrol,omitempty"`
}

// HighRiskCountResponse DTO with the high-risk zone count
// @Description DTO with the high-risk zone count
type HighRiskCountResponse struct {
	HighRiskZones int `json:"high_risk_zones"`
}
