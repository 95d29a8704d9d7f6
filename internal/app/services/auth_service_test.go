package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/auth"
)

type fakeCredentialStore struct {
	user *models.User
}

func (f *fakeCredentialStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.user == nil || f.user.Email != email {
		return nil, apperrors.ErrUserNotFound
	}
	u := *f.user
	return &u, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "peerconnect.test",
	})
}

func loginFixtureUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	return &models.User{
		ID:           7,
		Email:        "jane@peerconnect.app",
		FirstName:    "Jane",
		LastName:     "Doe",
		PasswordHash: hash,
		Role:         models.RoleMentor,
		Status:       models.UserStatusActive,
	}
}

func TestLoginSuccess(t *testing.T) {
	user := loginFixtureUser(t)
	svc := NewAuthService(&fakeCredentialStore{user: user}, testJWTService(), zerolog.Nop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@peerconnect.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, models.RoleMentor, resp.Role)
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.User)
	assert.Empty(t, resp.User.PasswordHash, "the hash never leaves the service")
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	user := loginFixtureUser(t)
	svc := NewAuthService(&fakeCredentialStore{user: user}, testJWTService(), zerolog.Nop())

	_, unknownErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@peerconnect.app",
		Password: "correct horse",
	})
	_, wrongPassErr := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@peerconnect.app",
		Password: "wrong",
	})

	assert.ErrorIs(t, unknownErr, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error(), "responses must not reveal which part was wrong")
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(&fakeCredentialStore{}, testJWTService(), zerolog.Nop())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jane@peerconnect.app"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestLoginTokenCarriesIdentity(t *testing.T) {
	user := loginFixtureUser(t)
	jwtService := testJWTService()
	svc := NewAuthService(&fakeCredentialStore{user: user}, jwtService, zerolog.Nop())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "jane@peerconnect.app",
		Password: "correct horse",
	})
	require.NoError(t, err)

	claims, err := jwtService.ValidateAndExtractClaims(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "jane@peerconnect.app", claims.Email)
	assert.Equal(t, string(models.RoleMentor), claims.Role)
}
