package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

type fakeLogStore struct {
	entries   []models.SystemLog
	createErr error
}

func (f *fakeLogStore) Create(ctx context.Context, entry *models.SystemLog) (int64, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	entry.ID = int64(len(f.entries) + 1)
	f.entries = append(f.entries, *entry)
	return entry.ID, nil
}

func (f *fakeLogStore) GetAll(ctx context.Context) ([]models.SystemLog, error) {
	return f.entries, nil
}

func (f *fakeLogStore) GetByID(ctx context.Context, id int64) (*models.SystemLog, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}

func (f *fakeLogStore) GetByUserID(ctx context.Context, userID int64) ([]models.SystemLog, error) {
	return f.entries, nil
}

func TestLogAddDefaultsToSuccess(t *testing.T) {
	store := &fakeLogStore{}
	svc := NewLogService(store, zerolog.Nop())

	entry, err := svc.Add(context.Background(), &dto.CreateLogRequest{Action: "login"}, "203.0.113.9")
	require.NoError(t, err)

	assert.Equal(t, models.LogStatusSuccess, entry.Status)
	assert.Equal(t, "203.0.113.9", entry.IPAddress)
}

func TestLogAddRequiresAction(t *testing.T) {
	svc := NewLogService(&fakeLogStore{}, zerolog.Nop())

	_, err := svc.Add(context.Background(), &dto.CreateLogRequest{Details: "no action"}, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRecordNeverPanicsOnStoreFailure(t *testing.T) {
	store := &fakeLogStore{createErr: errors.New("db down")}
	svc := NewLogService(store, zerolog.Nop())

	userID := int64(7)
	assert.NotPanics(t, func() {
		svc.Record(context.Background(), &userID, "login", "ok", models.LogStatusSuccess, "203.0.113.9")
	})
}
