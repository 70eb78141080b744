package models

import (
	"time"
)

// ProfileUpdate carries the allowlisted profile fields for an update.
// Nil means "leave as is".
type ProfileUpdate struct {
	FullName *string
	Phone    *string
	Location *string
	Password *string
}

// User is a registered community member. Sentinels are active volunteers
// eligible for leaderboard ranking.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"full_name"`
	Phone          string    `json:"phone,omitempty"`
	Location       string    `json:"location,omitempty"`
	IsActive       bool      `json:"is_active"`
	IsSentinel     bool      `json:"is_sentinel"`
	Points         int       `json:"points"`
	Badges         string    `json:"badges,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
