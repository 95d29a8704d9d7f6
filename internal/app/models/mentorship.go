package models

import "time"

// Mentorship defines a mentor/student relationship row with its own lifecycle
type Mentorship struct {
	ID        int64            `json:"id" db:"id"`
	MentorID  int64            `json:"mentor_id" db:"mentor_id"`
	StudentID int64            `json:"student_id" db:"student_id"`
	Subject   *string          `json:"subject,omitempty" db:"subject"`
	Status    MentorshipStatus `json:"status" db:"status" example:"Pending"`
	StartDate time.Time        `json:"start_date" db:"start_date"`
	EndDate   *time.Time       `json:"end_date,omitempty" db:"end_date"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// MentorshipWithStudent is a mentorship joined with the student's identity
// for the admin dashboard listing.
type MentorshipWithStudent struct {
	Mentorship
	FullName     string  `json:"full_name" db:"full_name"`
	ProfileImage *string `json:"profile_image,omitempty" db:"profile_image"`
	Email        string  `json:"email" db:"email"`
}
