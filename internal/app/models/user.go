package models

import (
	"strings"
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	FirstName    string     `json:"first_name" db:"first_name" example:"John"`                // User's first name
	LastName     string     `json:"last_name" db:"last_name" example:"Doe"`                   // User's last name
	Email        string     `json:"email" db:"email" example:"john@peerconnect.app"`          // User's email address (unique)
	Username     string     `json:"username" db:"username" example:"johnd"`                   // Login/display handle
	PasswordHash string     `json:"-" db:"password_hash"`                                     // Hashed password (excluded from JSON)
	Role         Role       `json:"role" db:"role" example:"Mentee"`                          // Admin, Mentor or Mentee
	Status       UserStatus `json:"status" db:"status" example:"Active"`                      // Account status
	Skills       string     `json:"skills" db:"skills" example:"Go,SQL"`                      // Comma-separated tag list
	Bio          *string    `json:"bio,omitempty" db:"bio"`                                   // Free-text bio (nullable)
	ProfileImage *string    `json:"profile_image,omitempty" db:"profile_image"`               // Stored image URL (nullable)
	DateJoined   time.Time  `json:"date_joined" db:"date_joined" example:"2024-01-01T10:00:00Z"`
}

// FullName returns the display name used across enriched API payloads.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Subjects splits the skills CSV into a tag slice. Empty skills yield an
// empty slice rather than [""].
func (u *User) Subjects() []string {
	if strings.TrimSpace(u.Skills) == "" {
		return []string{}
	}
	parts := strings.Split(u.Skills, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// RoleCount is a per-role user tally for the admin dashboard
type RoleCount struct {
	Role  Role  `json:"role" db:"role"`
	Count int64 `json:"count" db:"count"`
}
