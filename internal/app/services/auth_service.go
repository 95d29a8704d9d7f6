package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/auth"
)

// credentialStore is the slice of user storage the auth flow needs
type credentialStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	users      credentialStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users credentialStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues an access token. Unknown emails and
// wrong passwords produce the same error so the endpoint cannot be used to
// probe for accounts.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.NewValidationError("Email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("email", req.Email).Msg("Failed to look up user for login")
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.jwtService.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate access token")
		return nil, err
	}

	// The hash never leaves this layer
	user.PasswordHash = ""

	return &dto.LoginResponse{
		Message: "Login successful",
		User:    user,
		Role:    user.Role,
		ID:      user.ID,
		Token:   token,
	}, nil
}
