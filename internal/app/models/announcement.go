package models

import (
	"strings"
	"time"
)

// Announcement carries a title/description broadcast with optional role
// targeting and optional expiry.
type Announcement struct {
	ID         int64      `json:"id" db:"id"`
	CreatedBy  int64      `json:"created_by" db:"created_by"`
	Title      string     `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	TargetRole *string    `json:"target_role,omitempty" db:"target_role"` // nil = everyone
	ExpiryDate *time.Time `json:"expiry_date,omitempty" db:"expiry_date"` // nil = never expires
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	AuthorName string     `json:"author_name,omitempty" db:"author_name"` // joined creator name
}

// VisibleTo reports whether the announcement should appear in the feed of a
// viewer with the given role at the given time. Admins see every targeting
// bucket but are still subject to expiry. Role comparison is
// case-insensitive.
func (a *Announcement) VisibleTo(role string, now time.Time) bool {
	if a.ExpiryDate != nil && !a.ExpiryDate.After(now) {
		return false
	}
	if a.TargetRole == nil {
		return true
	}
	if strings.EqualFold(role, string(RoleAdmin)) {
		return true
	}
	return strings.EqualFold(*a.TargetRole, role)
}
