package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/peerconnect/peerconnect/internal/app/models"
	appRepos "github.com/peerconnect/peerconnect/internal/app/repositories"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

const (
	defaultAdminEmail    = "admin@peerconnect.app"
	defaultAdminPassword = "Admin123!"
)

// CreateDefaultData makes sure a platform administrator exists so a fresh
// database is usable right after the first start. The default password is
// meant to be changed on first login.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default admin account...")

	if _, err := userRepo.GetByEmail(ctx, defaultAdminEmail); err == nil {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		lgr.Error().Err(err).Msg("Error checking for admin user")
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &appModels.User{
		FirstName:    "System",
		LastName:     "Administrator",
		Email:        defaultAdminEmail,
		Username:     "admin",
		PasswordHash: string(hashedPassword),
		Role:         appModels.RoleAdmin,
		Status:       appModels.UserStatusActive,
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		// A concurrent start may have won the insert race.
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Info().Msg("Admin user already exists, skipping creation")
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", adminID).Msg("Default admin user created")
	return nil
}
