package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/filestorage"
)

// groupFileDir is the storage subdirectory for group file uploads
const groupFileDir = "group_files"

// sessionDateLayout is the wire format for session scheduling
const sessionDateLayout = "2006-01-02 15:04:05"

type groupStore interface {
	Create(ctx context.Context, g *models.Group) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Group, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetAllSummaries(ctx context.Context) ([]models.GroupSummary, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type groupMemberStore interface {
	Add(ctx context.Context, member *models.GroupMember) (int64, error)
	ListByGroup(ctx context.Context, groupID int64) ([]models.GroupMemberDetail, error)
	UpdateRole(ctx context.Context, memberID int64, role string) error
	Delete(ctx context.Context, memberID int64) error
}

type groupMessageStore interface {
	Create(ctx context.Context, message *models.GroupMessage) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.GroupMessage, error)
	ListByGroup(ctx context.Context, groupID int64) ([]models.GroupMessage, error)
}

type groupFileStore interface {
	Create(ctx context.Context, file *models.GroupFile) (int64, error)
	ListByGroup(ctx context.Context, groupID int64) ([]models.GroupFile, error)
}

type sessionStore interface {
	Create(ctx context.Context, session *models.Session) (int64, error)
	ListByGroup(ctx context.Context, groupID int64) ([]models.Session, error)
}

// groupUserReader is the user lookup the group workflows need
type groupUserReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// GroupService defines the interface for study-group operations: the groups
// themselves plus membership, chat, file sharing and scheduled sessions.
type GroupService interface {
	CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error)
	GetGroups(ctx context.Context) ([]models.GroupSummary, error)
	GetGroupView(ctx context.Context, id int64) (*dto.GroupViewResponse, error)
	UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error)
	DeleteGroup(ctx context.Context, id int64) error
	CountGroups(ctx context.Context) (int64, error)

	AddMember(ctx context.Context, req *dto.AddMemberRequest) (*models.GroupMember, error)
	JoinGroup(ctx context.Context, groupID int64, req *dto.JoinGroupRequest) (*models.GroupMember, error)
	GetMembers(ctx context.Context, groupID int64) ([]models.GroupMemberDetail, error)
	UpdateMemberRole(ctx context.Context, memberID int64, role string) error
	RemoveMember(ctx context.Context, memberID int64) error

	SendMessage(ctx context.Context, groupID int64, req *dto.SendMessageRequest) (*models.GroupMessage, error)

	UploadFile(ctx context.Context, groupID, userID int64, fileHeader *multipart.FileHeader) (*models.GroupFile, error)
	GetFiles(ctx context.Context, groupID int64) ([]models.GroupFile, error)

	AddSession(ctx context.Context, groupID int64, req *dto.AddSessionRequest) (*models.Session, error)
	GetSessions(ctx context.Context, groupID int64) ([]models.Session, error)
}

type groupServiceImpl struct {
	groups             groupStore
	members            groupMemberStore
	messages           groupMessageStore
	files              groupFileStore
	sessions           sessionStore
	users              groupUserReader
	fileStorage        filestorage.FileStorage
	defaultMeetingLink string
	logger             zerolog.Logger
}

// NewGroupService creates a new GroupService
func NewGroupService(
	groups groupStore,
	members groupMemberStore,
	messages groupMessageStore,
	files groupFileStore,
	sessions sessionStore,
	users groupUserReader,
	fileStorage filestorage.FileStorage,
	defaultMeetingLink string,
	logger zerolog.Logger,
) GroupService {
	return &groupServiceImpl{
		groups:             groups,
		members:            members,
		messages:           messages,
		files:              files,
		sessions:           sessions,
		users:              users,
		fileStorage:        fileStorage,
		defaultMeetingLink: defaultMeetingLink,
		logger:             logger,
	}
}

// CreateGroup creates a study group. When the creator is an Admin or Mentor
// they are enrolled into the group immediately.
func (s *groupServiceImpl) CreateGroup(ctx context.Context, req *dto.CreateGroupRequest) (*models.Group, error) {
	if req.Name == "" || req.Subject == "" || req.InstructorID == 0 {
		return nil, apperrors.NewValidationError("Name, subject and instructor_id are required")
	}

	group := &models.Group{
		Name:         req.Name,
		Subject:      req.Subject,
		Description:  req.Description,
		InstructorID: req.InstructorID,
		Status:       "active",
	}
	if req.Status != nil && *req.Status != "" {
		group.Status = *req.Status
	}

	if _, err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}

	if req.UserID != 0 {
		creator, err := s.users.GetByID(ctx, req.UserID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("userID", req.UserID).Msg("Group creator lookup failed, skipping auto-enroll")
			return group, nil
		}
		if creator.Role == models.RoleAdmin || creator.Role == models.RoleMentor {
			member := &models.GroupMember{
				GroupID: group.ID,
				UserID:  req.UserID,
				Role:    "Member",
			}
			if _, err := s.members.Add(ctx, member); err != nil {
				s.logger.Warn().Err(err).Int64("groupID", group.ID).Int64("userID", req.UserID).Msg("Auto-enroll failed")
			}
		}
	}

	return group, nil
}

// GetGroups lists all groups with member counts and instructor names
func (s *groupServiceImpl) GetGroups(ctx context.Context) ([]models.GroupSummary, error) {
	return s.groups.GetAllSummaries(ctx)
}

// GetGroupView assembles the full group page: the group plus its members,
// chat history, files and sessions.
func (s *groupServiceImpl) GetGroupView(ctx context.Context, id int64) (*dto.GroupViewResponse, error) {
	group, err := s.groups.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	members, err := s.members.ListByGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	messages, err := s.messages.ListByGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	files, err := s.files.ListByGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListByGroup(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.GroupViewResponse{
		Group:    group,
		Members:  members,
		Messages: messages,
		Files:    files,
		Sessions: sessions,
	}, nil
}

// UpdateGroup applies a partial update; nil fields are left unchanged
func (s *groupServiceImpl) UpdateGroup(ctx context.Context, id int64, req *dto.UpdateGroupRequest) (*models.Group, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	if err := s.groups.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.groups.GetByID(ctx, id)
}

// DeleteGroup removes a group and everything hanging off it
func (s *groupServiceImpl) DeleteGroup(ctx context.Context, id int64) error {
	return s.groups.Delete(ctx, id)
}

// CountGroups returns the total group count for the dashboard
func (s *groupServiceImpl) CountGroups(ctx context.Context) (int64, error) {
	return s.groups.Count(ctx)
}

// AddMember enrolls a user into a group. A duplicate enrollment surfaces as
// ErrAlreadyJoined straight from the unique constraint.
func (s *groupServiceImpl) AddMember(ctx context.Context, req *dto.AddMemberRequest) (*models.GroupMember, error) {
	if req.GroupID == 0 || req.UserID == 0 {
		return nil, apperrors.NewValidationError("group_id and user_id are required")
	}

	exists, err := s.groups.Exists(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGroupNotFound
	}

	member := &models.GroupMember{
		GroupID: req.GroupID,
		UserID:  req.UserID,
		Role:    "Member",
	}
	if req.Role != nil && *req.Role != "" {
		member.Role = *req.Role
	}

	if _, err := s.members.Add(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// JoinGroup enrolls the caller into the group named in the path
func (s *groupServiceImpl) JoinGroup(ctx context.Context, groupID int64, req *dto.JoinGroupRequest) (*models.GroupMember, error) {
	return s.AddMember(ctx, &dto.AddMemberRequest{
		GroupID: groupID,
		UserID:  req.UserID,
		Role:    req.Role,
	})
}

// GetMembers lists the members of a group with their identities joined in
func (s *groupServiceImpl) GetMembers(ctx context.Context, groupID int64) ([]models.GroupMemberDetail, error) {
	exists, err := s.groups.Exists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGroupNotFound
	}
	return s.members.ListByGroup(ctx, groupID)
}

// UpdateMemberRole changes a membership role by its row id
func (s *groupServiceImpl) UpdateMemberRole(ctx context.Context, memberID int64, role string) error {
	if role == "" {
		return apperrors.NewValidationError("role is required")
	}
	return s.members.UpdateRole(ctx, memberID, role)
}

// RemoveMember deletes a membership row by its id
func (s *groupServiceImpl) RemoveMember(ctx context.Context, memberID int64) error {
	return s.members.Delete(ctx, memberID)
}

// SendMessage appends a chat message and returns it enriched with the
// sender's name.
func (s *groupServiceImpl) SendMessage(ctx context.Context, groupID int64, req *dto.SendMessageRequest) (*models.GroupMessage, error) {
	if req.UserID == 0 || req.Message == "" {
		return nil, apperrors.NewValidationError("user_id and message are required")
	}

	exists, err := s.groups.Exists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGroupNotFound
	}

	message := &models.GroupMessage{
		GroupID:    groupID,
		UserID:     req.UserID,
		Message:    req.Message,
		Attachment: req.Attachment,
	}
	if _, err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	return s.messages.GetByID(ctx, message.ID)
}

// UploadFile stores an uploaded file and records it against the group
func (s *groupServiceImpl) UploadFile(ctx context.Context, groupID, userID int64, fileHeader *multipart.FileHeader) (*models.GroupFile, error) {
	if userID == 0 || fileHeader == nil {
		return nil, apperrors.NewValidationError("user_id and file are required")
	}

	exists, err := s.groups.Exists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGroupNotFound
	}

	path, err := s.fileStorage.SaveFileWithPath(fileHeader, groupFileDir)
	if err != nil {
		s.logger.Error().Err(err).Int64("groupID", groupID).Msg("Failed to store group file")
		return nil, err
	}

	file := &models.GroupFile{
		GroupID:  groupID,
		UserID:   userID,
		FileName: fileHeader.Filename,
		FilePath: path,
		FileSize: fileHeader.Size,
	}
	if _, err := s.files.Create(ctx, file); err != nil {
		// The metadata row failed; drop the orphaned file
		if delErr := s.fileStorage.DeleteFile(path); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}

	return file, nil
}

// GetFiles lists the files shared in a group
func (s *groupServiceImpl) GetFiles(ctx context.Context, groupID int64) ([]models.GroupFile, error) {
	exists, err := s.groups.Exists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGroupNotFound
	}
	return s.files.ListByGroup(ctx, groupID)
}

// AddSession schedules a meeting for a group. The meeting link falls back to
// the configured default when the caller supplies none.
func (s *groupServiceImpl) AddSession(ctx context.Context, groupID int64, req *dto.AddSessionRequest) (*models.Session, error) {
	if req.Title == "" || req.SessionDate == "" || req.Duration == 0 {
		return nil, apperrors.NewValidationError("title, session_date and duration are required")
	}

	exists, err := s.groups.Exists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGroupNotFound
	}

	sessionDate, err := time.Parse(sessionDateLayout, req.SessionDate)
	if err != nil {
		return nil, apperrors.NewValidationError("session_date must be YYYY-MM-DD HH:MM:SS")
	}

	session := &models.Session{
		Type:         models.SessionTypeGroup,
		ReferenceID:  groupID,
		UserID:       req.UserID,
		Title:        req.Title,
		Description:  req.Description,
		SessionDate:  sessionDate,
		Duration:     req.Duration,
		MeetingLink:  req.MeetingLink,
		ReminderSent: false,
	}
	if session.MeetingLink == nil && s.defaultMeetingLink != "" {
		link := s.defaultMeetingLink
		session.MeetingLink = &link
	}

	if _, err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// GetSessions lists the sessions scheduled for a group
func (s *groupServiceImpl) GetSessions(ctx context.Context, groupID int64) ([]models.Session, error) {
	exists, err := s.groups.Exists(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrGroupNotFound
	}
	return s.sessions.ListByGroup(ctx, groupID)
}
