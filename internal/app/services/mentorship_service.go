package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

// dateLayout is the wire format for mentorship dates
const dateLayout = "2006-01-02"

// mentorshipStore is the slice of storage the mentorship workflows need
type mentorshipStore interface {
	Create(ctx context.Context, m *models.Mentorship) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Mentorship, error)
	GetAll(ctx context.Context) ([]models.Mentorship, error)
	GetAllWithStudent(ctx context.Context) ([]models.MentorshipWithStudent, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Mentorship, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// MentorshipService defines the interface for mentorship operations
type MentorshipService interface {
	Create(ctx context.Context, req *dto.CreateMentorshipRequest) (*models.Mentorship, error)
	GetByID(ctx context.Context, id int64) (*models.Mentorship, error)
	GetAll(ctx context.Context) ([]models.Mentorship, error)
	GetAllWithStudent(ctx context.Context) ([]models.MentorshipWithStudent, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Mentorship, error)
	Update(ctx context.Context, id int64, req *dto.UpdateMentorshipRequest) (*models.Mentorship, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type mentorshipServiceImpl struct {
	mentorships mentorshipStore
	logger      zerolog.Logger
}

// NewMentorshipService creates a new MentorshipService
func NewMentorshipService(mentorships mentorshipStore, logger zerolog.Logger) MentorshipService {
	return &mentorshipServiceImpl{
		mentorships: mentorships,
		logger:      logger,
	}
}

// Create opens a mentorship. Status defaults to Pending and start_date to
// today unless the caller overrides them.
func (s *mentorshipServiceImpl) Create(ctx context.Context, req *dto.CreateMentorshipRequest) (*models.Mentorship, error) {
	if req.MentorID == 0 || req.StudentID == 0 {
		return nil, apperrors.NewValidationError("Mentor ID and Student ID are required")
	}

	m := &models.Mentorship{
		MentorID:  req.MentorID,
		StudentID: req.StudentID,
		Subject:   req.Subject,
		Status:    models.MentorshipPending,
		StartDate: time.Now(),
	}

	if req.Status != nil && *req.Status != "" {
		m.Status = models.MentorshipStatus(*req.Status)
	}
	if req.StartDate != nil && *req.StartDate != "" {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("start_date must be YYYY-MM-DD")
		}
		m.StartDate = start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("end_date must be YYYY-MM-DD")
		}
		m.EndDate = &end
	}

	if _, err := s.mentorships.Create(ctx, m); err != nil {
		return nil, err
	}

	return m, nil
}

// GetByID retrieves one mentorship
func (s *mentorshipServiceImpl) GetByID(ctx context.Context, id int64) (*models.Mentorship, error) {
	return s.mentorships.GetByID(ctx, id)
}

// GetAll retrieves all mentorships
func (s *mentorshipServiceImpl) GetAll(ctx context.Context) ([]models.Mentorship, error) {
	return s.mentorships.GetAll(ctx)
}

// GetAllWithStudent retrieves the admin dashboard view
func (s *mentorshipServiceImpl) GetAllWithStudent(ctx context.Context) ([]models.MentorshipWithStudent, error) {
	return s.mentorships.GetAllWithStudent(ctx)
}

// GetByUserID retrieves the mentorships a user participates in on either side
func (s *mentorshipServiceImpl) GetByUserID(ctx context.Context, userID int64) ([]models.Mentorship, error) {
	return s.mentorships.GetByUserID(ctx, userID)
}

// Update applies a partial update. Nil fields are dropped before the update
// reaches storage, so they can never null out a column. An invalid status
// aborts before any mutation.
func (s *mentorshipServiceImpl) Update(ctx context.Context, id int64, req *dto.UpdateMentorshipRequest) (*models.Mentorship, error) {
	fields := map[string]interface{}{}

	if req.MentorID != nil {
		fields["mentor_id"] = *req.MentorID
	}
	if req.StudentID != nil {
		fields["student_id"] = *req.StudentID
	}
	if req.Subject != nil {
		fields["subject"] = *req.Subject
	}
	if req.Status != nil {
		if !models.ValidMentorshipStatus(models.MentorshipStatus(*req.Status)) {
			return nil, apperrors.ErrInvalidMentorshipStatus
		}
		fields["status"] = *req.Status
	}
	if req.StartDate != nil && *req.StartDate != "" {
		start, err := time.Parse(dateLayout, *req.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("start_date must be YYYY-MM-DD")
		}
		fields["start_date"] = start
	}
	if req.EndDate != nil && *req.EndDate != "" {
		end, err := time.Parse(dateLayout, *req.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("end_date must be YYYY-MM-DD")
		}
		fields["end_date"] = end
	}

	if err := s.mentorships.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.mentorships.GetByID(ctx, id)
}

// Delete removes a mentorship
func (s *mentorshipServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.mentorships.Delete(ctx, id)
}

// Count returns the total number of mentorships
func (s *mentorshipServiceImpl) Count(ctx context.Context) (int64, error) {
	return s.mentorships.Count(ctx)
}
