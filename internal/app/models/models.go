package models

// Role defines the user role type
type Role string

const (
	RoleAdmin  Role = "Admin"
	RoleMentor Role = "Mentor"
	RoleMentee Role = "Mentee"
)

// UserStatus defines the lifecycle state of a user account.
// Mentor accounts start as Pending until an admin approves them.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusPending  UserStatus = "Pending"
	UserStatusRejected UserStatus = "Rejected"
)

// MentorshipStatus defines the lifecycle state of a mentorship row
type MentorshipStatus string

const (
	MentorshipPending   MentorshipStatus = "Pending"
	MentorshipActive    MentorshipStatus = "Active"
	MentorshipCompleted MentorshipStatus = "Completed"
	MentorshipRejected  MentorshipStatus = "Reject"
)

// ValidMentorshipStatus reports whether s is one of the accepted states.
func ValidMentorshipStatus(s MentorshipStatus) bool {
	switch s {
	case MentorshipPending, MentorshipActive, MentorshipCompleted, MentorshipRejected:
		return true
	}
	return false
}

// LogStatus is the outcome recorded with a system log entry
type LogStatus string

const (
	LogStatusSuccess LogStatus = "success"
	LogStatusError   LogStatus = "error"
)
