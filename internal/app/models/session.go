package models

import "time"

// SessionTypeGroup is the only session type the platform schedules today;
// reference_id points at the group.
const SessionTypeGroup = "group"

// Session is a scheduled meeting tied to a group. Immutable after creation.
// reminder_sent is persisted for an external reminder dispatcher; nothing in
// this codebase flips it.
type Session struct {
	ID           int64     `json:"id" db:"id"`
	Type         string    `json:"type" db:"type" example:"group"`
	ReferenceID  int64     `json:"reference_id" db:"reference_id"`
	UserID       *int64    `json:"user_id,omitempty" db:"user_id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description,omitempty" db:"description"`
	SessionDate  time.Time `json:"session_date" db:"session_date"`
	Duration     int       `json:"duration" db:"duration"` // minutes
	MeetingLink  *string   `json:"meeting_link,omitempty" db:"meeting_link"`
	ReminderSent bool      `json:"reminder_sent" db:"reminder_sent"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	CreatedBy    string    `json:"created_by,omitempty" db:"created_by"` // joined creator name
}
