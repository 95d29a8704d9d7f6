package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/auth"
	"github.com/peerconnect/peerconnect/internal/pkg/email"
	"github.com/peerconnect/peerconnect/internal/pkg/filestorage"
	"github.com/peerconnect/peerconnect/internal/pkg/validation"
)

// profileImageDir is the storage subdirectory for user profile images
const profileImageDir = "profile_images"

// userStore is the slice of user storage the user workflows need
type userStore interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	GetByRoleAndStatus(ctx context.Context, role, status string) ([]models.User, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
	GetRecent(ctx context.Context, limit int) ([]models.User, error)
	GetRoleDistribution(ctx context.Context) ([]models.RoleCount, error)
}

// UserService defines the interface for user and mentor-approval operations
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest, image *multipart.FileHeader) (*models.User, error)
	GetUser(ctx context.Context, id int64) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest, image *multipart.FileHeader) (*models.User, error)
	DeleteUser(ctx context.Context, id int64) error

	ApproveMentor(ctx context.Context, id int64) (*models.User, error)
	RejectMentor(ctx context.Context, id int64) (*models.User, error)
	GetPendingMentors(ctx context.Context) ([]dto.MentorResponse, error)
	GetActiveMentors(ctx context.Context) ([]dto.MentorResponse, error)
	GetActiveMentees(ctx context.Context) ([]models.User, error)

	CountUsers(ctx context.Context) (int64, error)
	CountMentors(ctx context.Context) (int64, error)
	GetRecentUsers(ctx context.Context) ([]models.User, error)
	GetRoleDistribution(ctx context.Context) ([]models.RoleCount, error)
}

type userServiceImpl struct {
	users       userStore
	fileStorage filestorage.FileStorage
	notifier    email.Notifier
	logger      zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(
	users userStore,
	fileStorage filestorage.FileStorage,
	notifier email.Notifier,
	logger zerolog.Logger,
) UserService {
	return &userServiceImpl{
		users:       users,
		fileStorage: fileStorage,
		notifier:    notifier,
		logger:      logger,
	}
}

// Register creates a new user account. Role defaults to Mentee and status to
// Active; mentor signups arrive with status Pending and wait for approval.
func (s *userServiceImpl) Register(ctx context.Context, req *dto.CreateUserRequest, image *multipart.FileHeader) (*models.User, error) {
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("First name, last name, email, username and password are required")
	}
	if !validation.NewStringValidation(req.Email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return nil, apperrors.NewValidationError("Email address is not valid")
	}
	if !validation.NewStringValidation(req.Password).WithMinLength(validation.PasswordMinLength).Validate() {
		return nil, apperrors.NewValidationError("Password is too short")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         models.RoleMentee,
		Status:       models.UserStatusActive,
	}
	if req.Role != nil && *req.Role != "" {
		user.Role = models.Role(*req.Role)
	}
	if req.Status != nil && *req.Status != "" {
		user.Status = models.UserStatus(*req.Status)
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	user.Bio = req.Bio

	if image != nil {
		path, err := s.fileStorage.SaveFileWithPath(image, profileImageDir)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to store profile image")
			return nil, err
		}
		user.ProfileImage = &path
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

// GetUser retrieves one user without the password hash
func (s *userServiceImpl) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// GetAllUsers retrieves every user without password hashes
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// UpdateUser applies a partial update; omitted fields keep their values and
// the password is only rehashed when one is supplied.
func (s *userServiceImpl) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest, image *multipart.FileHeader) (*models.User, error) {
	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.FirstName != nil {
		fields["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		fields["last_name"] = *req.LastName
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to hash password")
			return nil, err
		}
		fields["password_hash"] = hash
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Skills != nil {
		fields["skills"] = *req.Skills
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	if image != nil {
		path, err := s.fileStorage.SaveFileWithPath(image, profileImageDir)
		if err != nil {
			s.logger.Error().Err(err).Msg("Failed to store profile image")
			return nil, err
		}
		fields["profile_image"] = path

		// Replace, don't accumulate
		if existing.ProfileImage != nil {
			if err := s.fileStorage.DeleteFile(*existing.ProfileImage); err != nil {
				s.logger.Warn().Err(err).Str("path", *existing.ProfileImage).Msg("Failed to remove old profile image")
			}
		}
	}

	if err := s.users.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.GetUser(ctx, id)
}

// DeleteUser removes a user and their stored profile image
func (s *userServiceImpl) DeleteUser(ctx context.Context, id int64) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	if user.ProfileImage != nil {
		if err := s.fileStorage.DeleteFile(*user.ProfileImage); err != nil {
			s.logger.Warn().Err(err).Str("path", *user.ProfileImage).Msg("Failed to remove profile image")
		}
	}

	return nil
}

// ApproveMentor activates a pending mentor account and sends the welcome
// email. Delivery failure is logged and never affects the approval.
func (s *userServiceImpl) ApproveMentor(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateStatus(ctx, id, string(models.UserStatusActive)); err != nil {
		return nil, err
	}
	user.Status = models.UserStatusActive

	if err := s.notifier.SendMentorApproved(user.Email, user.FullName()); err != nil {
		s.logger.Warn().Err(err).Str("email", user.Email).Msg("Mentor approval email failed")
	}

	user.PasswordHash = ""
	return user, nil
}

// RejectMentor marks a mentor application as rejected. No email goes out.
func (s *userServiceImpl) RejectMentor(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateStatus(ctx, id, string(models.UserStatusRejected)); err != nil {
		return nil, err
	}
	user.Status = models.UserStatusRejected

	user.PasswordHash = ""
	return user, nil
}

// GetPendingMentors lists mentor accounts waiting for approval
func (s *userServiceImpl) GetPendingMentors(ctx context.Context) ([]dto.MentorResponse, error) {
	return s.mentorList(ctx, models.UserStatusPending)
}

// GetActiveMentors lists approved mentor accounts
func (s *userServiceImpl) GetActiveMentors(ctx context.Context) ([]dto.MentorResponse, error) {
	return s.mentorList(ctx, models.UserStatusActive)
}

func (s *userServiceImpl) mentorList(ctx context.Context, status models.UserStatus) ([]dto.MentorResponse, error) {
	users, err := s.users.GetByRoleAndStatus(ctx, string(models.RoleMentor), string(status))
	if err != nil {
		return nil, err
	}

	mentors := make([]dto.MentorResponse, 0, len(users))
	for _, u := range users {
		u.PasswordHash = ""
		mentors = append(mentors, dto.NewMentorResponse(u))
	}
	return mentors, nil
}

// GetActiveMentees lists active mentee accounts
func (s *userServiceImpl) GetActiveMentees(ctx context.Context) ([]models.User, error) {
	users, err := s.users.GetByRoleAndStatus(ctx, string(models.RoleMentee), string(models.UserStatusActive))
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// CountUsers returns the total user count for the dashboard
func (s *userServiceImpl) CountUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

// CountMentors returns the total mentor count for the dashboard
func (s *userServiceImpl) CountMentors(ctx context.Context) (int64, error) {
	return s.users.CountByRole(ctx, string(models.RoleMentor))
}

// GetRecentUsers returns the three newest registrations for the dashboard
func (s *userServiceImpl) GetRecentUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.GetRecent(ctx, 3)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

// GetRoleDistribution returns user counts grouped by role
func (s *userServiceImpl) GetRoleDistribution(ctx context.Context) ([]models.RoleCount, error) {
	return s.users.GetRoleDistribution(ctx)
}
