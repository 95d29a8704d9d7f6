package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

type fakeMentorshipStore struct {
	created       *models.Mentorship
	updatedID     int64
	updatedFields map[string]interface{}
	updateCalled  bool
	byID          *models.Mentorship
	byIDErr       error
}

func (f *fakeMentorshipStore) Create(ctx context.Context, m *models.Mentorship) (int64, error) {
	m.ID = 1
	f.created = m
	return m.ID, nil
}

func (f *fakeMentorshipStore) GetByID(ctx context.Context, id int64) (*models.Mentorship, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	if f.byID != nil {
		return f.byID, nil
	}
	return &models.Mentorship{ID: id}, nil
}

func (f *fakeMentorshipStore) GetAll(ctx context.Context) ([]models.Mentorship, error) {
	return []models.Mentorship{}, nil
}

func (f *fakeMentorshipStore) GetAllWithStudent(ctx context.Context) ([]models.MentorshipWithStudent, error) {
	return []models.MentorshipWithStudent{}, nil
}

func (f *fakeMentorshipStore) GetByUserID(ctx context.Context, userID int64) ([]models.Mentorship, error) {
	return []models.Mentorship{}, nil
}

func (f *fakeMentorshipStore) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	f.updateCalled = true
	f.updatedID = id
	f.updatedFields = fields
	return nil
}

func (f *fakeMentorshipStore) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeMentorshipStore) Count(ctx context.Context) (int64, error) { return 0, nil }

func TestMentorshipCreateDefaults(t *testing.T) {
	store := &fakeMentorshipStore{}
	svc := NewMentorshipService(store, zerolog.Nop())

	m, err := svc.Create(context.Background(), &dto.CreateMentorshipRequest{
		MentorID:  3,
		StudentID: 7,
	})
	require.NoError(t, err)

	assert.Equal(t, models.MentorshipPending, m.Status)
	assert.WithinDuration(t, time.Now(), m.StartDate, time.Minute)
	assert.Nil(t, m.EndDate)
	require.NotNil(t, store.created)
	assert.Equal(t, int64(3), store.created.MentorID)
}

func TestMentorshipCreateRequiresParticipants(t *testing.T) {
	svc := NewMentorshipService(&fakeMentorshipStore{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), &dto.CreateMentorshipRequest{MentorID: 3})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMentorshipCreateParsesDates(t *testing.T) {
	store := &fakeMentorshipStore{}
	svc := NewMentorshipService(store, zerolog.Nop())

	start := "2025-05-01"
	end := "2025-08-01"
	m, err := svc.Create(context.Background(), &dto.CreateMentorshipRequest{
		MentorID:  3,
		StudentID: 7,
		StartDate: &start,
		EndDate:   &end,
	})
	require.NoError(t, err)

	assert.Equal(t, 2025, m.StartDate.Year())
	require.NotNil(t, m.EndDate)
	assert.Equal(t, time.August, m.EndDate.Month())
}

func TestMentorshipCreateRejectsBadDate(t *testing.T) {
	svc := NewMentorshipService(&fakeMentorshipStore{}, zerolog.Nop())

	bad := "01/05/2025"
	_, err := svc.Create(context.Background(), &dto.CreateMentorshipRequest{
		MentorID:  3,
		StudentID: 7,
		StartDate: &bad,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMentorshipUpdateInvalidStatusNeverMutates(t *testing.T) {
	store := &fakeMentorshipStore{}
	svc := NewMentorshipService(store, zerolog.Nop())

	bad := "Cancelled"
	_, err := svc.Update(context.Background(), 1, &dto.UpdateMentorshipRequest{Status: &bad})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidMentorshipStatus))
	assert.False(t, store.updateCalled, "an invalid status must abort before storage is touched")
}

func TestMentorshipUpdateDropsNilFields(t *testing.T) {
	store := &fakeMentorshipStore{}
	svc := NewMentorshipService(store, zerolog.Nop())

	subject := "Algorithms"
	_, err := svc.Update(context.Background(), 5, &dto.UpdateMentorshipRequest{Subject: &subject})
	require.NoError(t, err)

	assert.Equal(t, int64(5), store.updatedID)
	assert.Equal(t, map[string]interface{}{"subject": "Algorithms"}, store.updatedFields)
}

func TestMentorshipUpdateAcceptsLegacyRejectStatus(t *testing.T) {
	store := &fakeMentorshipStore{}
	svc := NewMentorshipService(store, zerolog.Nop())

	status := string(models.MentorshipRejected)
	_, err := svc.Update(context.Background(), 2, &dto.UpdateMentorshipRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, "Reject", store.updatedFields["status"])
}

func TestMentorshipUpdateReturnsFreshRow(t *testing.T) {
	store := &fakeMentorshipStore{byID: &models.Mentorship{ID: 9, Status: models.MentorshipActive}}
	svc := NewMentorshipService(store, zerolog.Nop())

	status := string(models.MentorshipActive)
	m, err := svc.Update(context.Background(), 9, &dto.UpdateMentorshipRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.MentorshipActive, m.Status)
}
