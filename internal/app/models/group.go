package models

import "time"

// Group defines a study group owned by an instructor (Mentor or Admin)
type Group struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Subject      string    `json:"subject" db:"subject"`
	Description  *string   `json:"description,omitempty" db:"description"`
	InstructorID int64     `json:"instructor_id" db:"instructor_id"`
	Status       string    `json:"status" db:"status" example:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// GroupSummary is a group enriched with member count and instructor name
// for the group list view.
type GroupSummary struct {
	Group
	MemberCount    int64  `json:"member_count" db:"member_count"`
	InstructorName string `json:"instructor_name" db:"instructor_name"`
}

// GroupMember links a user to a group. (group_id, user_id) is unique.
type GroupMember struct {
	ID       int64     `json:"id" db:"id"`
	GroupID  int64     `json:"group_id" db:"group_id"`
	UserID   int64     `json:"user_id" db:"user_id"`
	Role     string    `json:"role" db:"role" example:"Member"`
	JoinedAt time.Time `json:"joined_at" db:"joined_at"`
}

// GroupMemberDetail is a membership row joined with the member's identity
type GroupMemberDetail struct {
	GroupMember
	UserName  string `json:"user_name" db:"user_name"`
	UserEmail string `json:"user_email" db:"user_email"`
	UserRole  Role   `json:"user_role" db:"user_role"`
}

// GroupMessage is an append-only chat message inside a group
type GroupMessage struct {
	ID         int64     `json:"id" db:"id"`
	GroupID    int64     `json:"group_id" db:"group_id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	Message    string    `json:"message" db:"message"`
	Attachment *string   `json:"attachment,omitempty" db:"attachment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UserName   string    `json:"user_name,omitempty" db:"user_name"` // joined sender name
}

// GroupFile is an append-only file record uploaded into a group
type GroupFile struct {
	ID           int64     `json:"id" db:"id"`
	GroupID      int64     `json:"group_id" db:"group_id"`
	UserID       int64     `json:"user_id" db:"user_id"`
	FileName     string    `json:"file_name" db:"file_name"`
	FilePath     string    `json:"file_path" db:"file_path"`
	FileSize     int64     `json:"file_size" db:"file_size"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UploaderName string    `json:"uploader_name,omitempty" db:"uploader_name"` // joined uploader name
}
