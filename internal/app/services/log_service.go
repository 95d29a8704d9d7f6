package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

type logStore interface {
	Create(ctx context.Context, entry *models.SystemLog) (int64, error)
	GetAll(ctx context.Context) ([]models.SystemLog, error)
	GetByID(ctx context.Context, id int64) (*models.SystemLog, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.SystemLog, error)
}

// LogService defines the interface for the append-only system log
type LogService interface {
	Add(ctx context.Context, req *dto.CreateLogRequest, ip string) (*models.SystemLog, error)
	Record(ctx context.Context, userID *int64, action, details string, status models.LogStatus, ip string)
	GetAll(ctx context.Context) ([]models.SystemLog, error)
	GetByID(ctx context.Context, id int64) (*models.SystemLog, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.SystemLog, error)
}

type logServiceImpl struct {
	logs   logStore
	logger zerolog.Logger
}

// NewLogService creates a new LogService
func NewLogService(logs logStore, logger zerolog.Logger) LogService {
	return &logServiceImpl{
		logs:   logs,
		logger: logger,
	}
}

// Add appends a log entry from an API request. Status defaults to success.
func (s *logServiceImpl) Add(ctx context.Context, req *dto.CreateLogRequest, ip string) (*models.SystemLog, error) {
	if req.Action == "" {
		return nil, apperrors.NewValidationError("action is required")
	}

	entry := &models.SystemLog{
		UserID:    req.UserID,
		Action:    req.Action,
		Details:   req.Details,
		Status:    models.LogStatusSuccess,
		IPAddress: ip,
	}
	if req.Status != "" {
		entry.Status = models.LogStatus(req.Status)
	}

	if _, err := s.logs.Create(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Record appends an audit entry from a workflow action. Audit writes never
// fail the action that triggered them; an error here only produces a log
// line.
func (s *logServiceImpl) Record(ctx context.Context, userID *int64, action, details string, status models.LogStatus, ip string) {
	entry := &models.SystemLog{
		UserID:    userID,
		Action:    action,
		Details:   details,
		Status:    status,
		IPAddress: ip,
	}
	if _, err := s.logs.Create(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Msg("Failed to append audit entry")
	}
}

// GetAll retrieves every log entry
func (s *logServiceImpl) GetAll(ctx context.Context) ([]models.SystemLog, error) {
	return s.logs.GetAll(ctx)
}

// GetByID retrieves one log entry
func (s *logServiceImpl) GetByID(ctx context.Context, id int64) (*models.SystemLog, error) {
	return s.logs.GetByID(ctx, id)
}

// GetByUserID retrieves the log entries recorded for one user
func (s *logServiceImpl) GetByUserID(ctx context.Context, userID int64) ([]models.SystemLog, error) {
	return s.logs.GetByUserID(ctx, userID)
}
