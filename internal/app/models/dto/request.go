package dto

// LoginRequest is the credential payload for /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"john@peerconnect.app"`
	Password string `json:"password" validate:"required" example:"secret"`
}

// CreateUserRequest registers a user. Carried as multipart form fields so a
// profile image can ride along; the file itself is handled separately.
type CreateUserRequest struct {
	FirstName string  `form:"first_name" example:"John"`
	LastName  string  `form:"last_name" example:"Doe"`
	Email     string  `form:"email" example:"john@peerconnect.app"`
	Username  string  `form:"username" example:"johnd"`
	Password  string  `form:"password"`
	Role      *string `form:"role" example:"Mentee"`
	Status    *string `form:"status" example:"Active"`
	Skills    *string `form:"skills" example:"Go,SQL"`
	Bio       *string `form:"bio"`
}

// UpdateUserRequest is a partial user update; nil fields are left unchanged
// and the password is only rehashed when supplied.
type UpdateUserRequest struct {
	FirstName *string `form:"first_name"`
	LastName  *string `form:"last_name"`
	Email     *string `form:"email"`
	Username  *string `form:"username"`
	Password  *string `form:"password"`
	Role      *string `form:"role"`
	Status    *string `form:"status"`
	Skills    *string `form:"skills"`
	Bio       *string `form:"bio"`
}

// CreateMentorshipRequest creates a mentorship application.
// Status and dates are optional; status defaults to Pending and start_date
// to the request date.
type CreateMentorshipRequest struct {
	MentorID  int64   `json:"mentor_id" example:"3"`
	StudentID int64   `json:"student_id" example:"7"`
	Subject   *string `json:"subject,omitempty" example:"Algorithms"`
	Status    *string `json:"status,omitempty" example:"Pending"`
	StartDate *string `json:"start_date,omitempty" example:"2025-05-01"`
	EndDate   *string `json:"end_date,omitempty" example:"2025-08-01"`
}

// UpdateMentorshipRequest is a partial update; nil fields are left unchanged.
type UpdateMentorshipRequest struct {
	MentorID  *int64  `json:"mentor_id,omitempty"`
	StudentID *int64  `json:"student_id,omitempty"`
	Subject   *string `json:"subject,omitempty"`
	Status    *string `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// CreateGroupRequest creates a study group. user_id identifies the caller
// for the auto-enroll side effect.
type CreateGroupRequest struct {
	Name        string  `json:"name" example:"Go Study Circle"`
	Subject     string  `json:"subject" example:"Backend Engineering"`
	Description *string `json:"description,omitempty"`
	InstructorID int64  `json:"instructor_id" example:"3"`
	Status      *string `json:"status,omitempty" example:"active"`
	UserID      int64   `json:"user_id" example:"3"`
}

// UpdateGroupRequest is a partial group update; nil fields are left unchanged.
type UpdateGroupRequest struct {
	Name        *string `json:"name,omitempty"`
	Subject     *string `json:"subject,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// AddMemberRequest enrolls a user into a group
type AddMemberRequest struct {
	GroupID int64   `json:"group_id" example:"1"`
	UserID  int64   `json:"user_id" example:"7"`
	Role    *string `json:"role,omitempty" example:"Member"`
}

// JoinGroupRequest enrolls the caller into the group named in the path
type JoinGroupRequest struct {
	UserID int64   `json:"user_id" example:"7"`
	Role   *string `json:"role,omitempty"`
}

// UpdateMemberRequest changes a membership role by group_member row id
type UpdateMemberRequest struct {
	Role *string `json:"role,omitempty" example:"Moderator"`
}

// SendMessageRequest posts a chat message into a group
type SendMessageRequest struct {
	UserID     int64   `json:"user_id" example:"7"`
	Message    string  `json:"message" example:"Meeting moved to 6pm"`
	Attachment *string `json:"attachment,omitempty"`
}

// AddSessionRequest schedules a meeting for a group
type AddSessionRequest struct {
	UserID      *int64  `json:"user_id,omitempty" example:"3"`
	Title       string  `json:"title" example:"Weekly sync"`
	Description *string `json:"description,omitempty"`
	SessionDate string  `json:"session_date" example:"2025-06-10 18:00:00"`
	Duration    int     `json:"duration" example:"60"`
	MeetingLink *string `json:"meeting_link,omitempty"`
}

// CreateThreadRequest opens a forum thread
type CreateThreadRequest struct {
	UserID  int64   `json:"user_id" example:"7"`
	Title   string  `json:"title" example:"How do goroutines leak?"`
	Content string  `json:"content"`
	Tags    *string `json:"tags,omitempty" example:"go,concurrency"`
}

// CreateReplyRequest answers a thread
type CreateReplyRequest struct {
	PostID  int64  `json:"post_id" example:"1"`
	UserID  int64  `json:"user_id" example:"3"`
	Content string `json:"content"`
}

// CreateCommentRequest comments on an answer (leaf level)
type CreateCommentRequest struct {
	AnswerID int64  `json:"answer_id" example:"5"`
	UserID   int64  `json:"user_id" example:"7"`
	Content  string `json:"content"`
}

// CreateAnnouncementRequest publishes an announcement
type CreateAnnouncementRequest struct {
	CreatedBy   int64   `json:"created_by" example:"1"`
	Title       string  `json:"title" example:"Maintenance window"`
	Description string  `json:"description"`
	TargetRole  *string `json:"target_role,omitempty" example:"Mentor"`
	ExpiryDate  *string `json:"expiry_date,omitempty" example:"2025-12-31 23:59:59"`
}

// CreateLogRequest appends a system log entry
type CreateLogRequest struct {
	UserID  *int64 `json:"user_id,omitempty"`
	Action  string `json:"action" example:"login"`
	Details string `json:"details,omitempty"`
	Status  string `json:"status,omitempty" example:"success"`
}

// ChatRequest is the free-text payload relayed to the chatbot upstream
type ChatRequest struct {
	Message string `json:"message" example:"What is PeerConnect?"`
}
