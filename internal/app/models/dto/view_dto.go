package dto

import "github.com/peerconnect/peerconnect/internal/app/models"

// LoginResponse is the payload returned on successful authentication.
// The user never includes the password hash.
type LoginResponse struct {
	Message string       `json:"message" example:"Login successful"`
	User    *models.User `json:"user"`
	Role    models.Role  `json:"role" example:"Mentee"`
	ID      int64        `json:"id" example:"7"`
	Token   string       `json:"token"`
}

// GroupViewResponse aggregates everything the group page shows
type GroupViewResponse struct {
	Group    *models.Group              `json:"group"`
	Members  []models.GroupMemberDetail `json:"members"`
	Messages []models.GroupMessage      `json:"messages"`
	Files    []models.GroupFile         `json:"files"`
	Sessions []models.Session           `json:"sessions"`
}

// MemberListResponse wraps the enriched member list of a group
type MemberListResponse struct {
	Members []models.GroupMemberDetail `json:"members"`
}

// SessionListResponse wraps the session list of a group
type SessionListResponse struct {
	Sessions []models.Session `json:"sessions"`
}

// SentMessageResponse is returned after posting a group message
type SentMessageResponse struct {
	Message *models.GroupMessage `json:"message"`
	Success bool                 `json:"success" example:"true"`
}

// CreatedSessionResponse is returned after scheduling a session
type CreatedSessionResponse struct {
	Session *models.Session `json:"session"`
	Success bool            `json:"success" example:"true"`
}

// ThreadDetailResponse is the thread page payload: the thread plus its
// answers (votes desc, oldest first on ties), comments nested per answer.
// Thread is null when the id does not resolve; the endpoint still returns
// 200 with this shape for legacy clients.
type ThreadDetailResponse struct {
	Thread  *models.ForumPost    `json:"thread"`
	Answers []models.ForumAnswer `json:"answers"`
}

// VoteResponse reports the tally after an answer vote
type VoteResponse struct {
	Message string `json:"message" example:"Vote updated"`
	Votes   int64  `json:"votes" example:"4"`
}

// MentorResponse is a mentor row with the skills CSV exploded for the
// approval screens.
type MentorResponse struct {
	models.User
	SubjectList []string `json:"subjects"`
}

// NewMentorResponse shapes a user for the mentor listings
func NewMentorResponse(u models.User) MentorResponse {
	return MentorResponse{User: u, SubjectList: u.Subjects()}
}

// ChatReply carries the chatbot proxy result. Raw is the unmodified
// upstream body.
type ChatReply struct {
	Reply string `json:"reply,omitempty"`
	Raw   string `json:"raw,omitempty"`
}
