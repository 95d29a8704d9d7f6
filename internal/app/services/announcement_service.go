package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/email"
)

// expiryLayout is the wire format for announcement expiry timestamps
const expiryLayout = "2006-01-02 15:04:05"

type announcementStore interface {
	Create(ctx context.Context, a *models.Announcement) (int64, error)
	GetAll(ctx context.Context) ([]models.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

// recipientReader lists the active users an announcement broadcast goes to
type recipientReader interface {
	GetActiveRecipients(ctx context.Context, role *string) ([]models.User, error)
}

// AnnouncementService defines the interface for announcement operations
type AnnouncementService interface {
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	GetVisible(ctx context.Context, role string) ([]models.Announcement, error)
	GetAll(ctx context.Context) ([]models.Announcement, error)
	Delete(ctx context.Context, id int64) error
}

type announcementServiceImpl struct {
	announcements announcementStore
	recipients    recipientReader
	notifier      email.Notifier
	logger        zerolog.Logger
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(
	announcements announcementStore,
	recipients recipientReader,
	notifier email.Notifier,
	logger zerolog.Logger,
) AnnouncementService {
	return &announcementServiceImpl{
		announcements: announcements,
		recipients:    recipients,
		notifier:      notifier,
		logger:        logger,
	}
}

// Create publishes an announcement, then emails it to the active users of
// the targeted role. The row is committed before any email goes out, and a
// failed send only produces a log line.
func (s *announcementServiceImpl) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	if req.CreatedBy == 0 || req.Title == "" || req.Description == "" {
		return nil, apperrors.NewValidationError("created_by, title and description are required")
	}

	a := &models.Announcement{
		CreatedBy:   req.CreatedBy,
		Title:       req.Title,
		Description: req.Description,
		TargetRole:  req.TargetRole,
	}
	if req.ExpiryDate != nil && *req.ExpiryDate != "" {
		expiry, err := time.Parse(expiryLayout, *req.ExpiryDate)
		if err != nil {
			return nil, apperrors.NewValidationError("expiry_date must be YYYY-MM-DD HH:MM:SS")
		}
		a.ExpiryDate = &expiry
	}

	if _, err := s.announcements.Create(ctx, a); err != nil {
		return nil, err
	}

	s.broadcast(ctx, a)

	return a, nil
}

func (s *announcementServiceImpl) broadcast(ctx context.Context, a *models.Announcement) {
	recipients, err := s.recipients.GetActiveRecipients(ctx, a.TargetRole)
	if err != nil {
		s.logger.Warn().Err(err).Int64("announcementID", a.ID).Msg("Failed to resolve broadcast recipients")
		return
	}

	for _, user := range recipients {
		if err := s.notifier.SendAnnouncement(user.Email, a.Title, a.Description); err != nil {
			s.logger.Warn().Err(err).Str("email", user.Email).Int64("announcementID", a.ID).Msg("Announcement email failed")
		}
	}
}

// GetVisible lists the announcements a viewer with the given role should
// see: unexpired rows targeted at everyone, their role, or any role when
// the viewer is an admin.
func (s *announcementServiceImpl) GetVisible(ctx context.Context, role string) ([]models.Announcement, error) {
	all, err := s.announcements.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	visible := []models.Announcement{}
	for _, a := range all {
		if a.VisibleTo(role, now) {
			visible = append(visible, a)
		}
	}
	return visible, nil
}

// GetAll lists every announcement, expired ones included, for the admin
// management screen.
func (s *announcementServiceImpl) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return s.announcements.GetAll(ctx)
}

// Delete removes an announcement
func (s *announcementServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.announcements.Delete(ctx, id)
}
