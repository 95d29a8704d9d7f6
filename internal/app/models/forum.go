package models

import "time"

// ForumPost is a forum thread. views is a monotonic counter bumped on each
// detail fetch.
type ForumPost struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	Title         string    `json:"title" db:"title"`
	Content       string    `json:"content" db:"content"`
	Tags          string    `json:"tags" db:"tags"` // comma-separated
	Views         int64     `json:"views" db:"views"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
	CreatedByName string    `json:"created_by_name,omitempty" db:"created_by_name"` // joined author first name
	AnswerCount   int64     `json:"answer_count" db:"answer_count"`
}

// ForumAnswer is an answer on a thread. votes is a signed tally mutated only
// through atomic increments at the storage layer.
type ForumAnswer struct {
	ID            int64          `json:"id" db:"id"`
	PostID        int64          `json:"post_id" db:"post_id"`
	UserID        int64          `json:"user_id" db:"user_id"`
	Content       string         `json:"content" db:"content"`
	Votes         int64          `json:"votes" db:"votes"`
	CreatedAt     time.Time      `json:"created_at" db:"created_at"`
	RepliedByName string         `json:"replied_by_name,omitempty" db:"replied_by_name"` // joined author first name
	Comments      []ForumComment `json:"comments"`
}

// ForumComment is a comment on an answer. Leaf node, no further nesting.
type ForumComment struct {
	ID              int64     `json:"id" db:"id"`
	AnswerID        int64     `json:"answer_id" db:"answer_id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	Content         string    `json:"content" db:"content"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	CommentedByName string    `json:"commented_by_name,omitempty" db:"commented_by_name"`
}
