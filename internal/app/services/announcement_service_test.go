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

type fakeAnnouncementStore struct {
	created *models.Announcement
	all     []models.Announcement
}

func (f *fakeAnnouncementStore) Create(ctx context.Context, a *models.Announcement) (int64, error) {
	a.ID = 1
	f.created = a
	return a.ID, nil
}

func (f *fakeAnnouncementStore) GetAll(ctx context.Context) ([]models.Announcement, error) {
	return f.all, nil
}

func (f *fakeAnnouncementStore) Delete(ctx context.Context, id int64) error { return nil }

type fakeRecipientReader struct {
	requestedRole *string
	recipients    []models.User
}

func (f *fakeRecipientReader) GetActiveRecipients(ctx context.Context, role *string) ([]models.User, error) {
	f.requestedRole = role
	return f.recipients, nil
}

type fakeNotifier struct {
	approvedEmails    []string
	announcementsSent []string
	sendErr           error
}

func (f *fakeNotifier) SendMentorApproved(toEmail, toName string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.approvedEmails = append(f.approvedEmails, toEmail)
	return nil
}

func (f *fakeNotifier) SendAnnouncement(toEmail, title, description string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.announcementsSent = append(f.announcementsSent, toEmail)
	return nil
}

func strPtr(s string) *string { return &s }

func TestAnnouncementCreateBroadcastsToTargetRole(t *testing.T) {
	store := &fakeAnnouncementStore{}
	recipients := &fakeRecipientReader{recipients: []models.User{
		{ID: 3, Email: "mentor1@peerconnect.app"},
		{ID: 4, Email: "mentor2@peerconnect.app"},
	}}
	notifier := &fakeNotifier{}
	svc := NewAnnouncementService(store, recipients, notifier, zerolog.Nop())

	a, err := svc.Create(context.Background(), &dto.CreateAnnouncementRequest{
		CreatedBy:   1,
		Title:       "Maintenance window",
		Description: "Saturday 02:00",
		TargetRole:  strPtr("Mentor"),
	})
	require.NoError(t, err)
	assert.NotZero(t, a.ID)

	require.NotNil(t, recipients.requestedRole)
	assert.Equal(t, "Mentor", *recipients.requestedRole)
	assert.Equal(t, []string{"mentor1@peerconnect.app", "mentor2@peerconnect.app"}, notifier.announcementsSent)
}

func TestAnnouncementCreateSucceedsWhenEmailFails(t *testing.T) {
	store := &fakeAnnouncementStore{}
	recipients := &fakeRecipientReader{recipients: []models.User{{ID: 3, Email: "x@peerconnect.app"}}}
	notifier := &fakeNotifier{sendErr: errors.New("smtp down")}
	svc := NewAnnouncementService(store, recipients, notifier, zerolog.Nop())

	a, err := svc.Create(context.Background(), &dto.CreateAnnouncementRequest{
		CreatedBy:   1,
		Title:       "Heads up",
		Description: "details",
	})
	require.NoError(t, err, "the row is committed before any email goes out")
	assert.NotZero(t, a.ID)
}

func TestAnnouncementCreateValidation(t *testing.T) {
	svc := NewAnnouncementService(&fakeAnnouncementStore{}, &fakeRecipientReader{}, &fakeNotifier{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), &dto.CreateAnnouncementRequest{Title: "no author"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAnnouncementCreateRejectsBadExpiry(t *testing.T) {
	svc := NewAnnouncementService(&fakeAnnouncementStore{}, &fakeRecipientReader{}, &fakeNotifier{}, zerolog.Nop())

	_, err := svc.Create(context.Background(), &dto.CreateAnnouncementRequest{
		CreatedBy:   1,
		Title:       "t",
		Description: "d",
		ExpiryDate:  strPtr("31-12-2025"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetVisibleFiltersByRoleAndExpiry(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)
	store := &fakeAnnouncementStore{all: []models.Announcement{
		{ID: 1, Title: "everyone"},
		{ID: 2, Title: "mentors only", TargetRole: strPtr("Mentor")},
		{ID: 3, Title: "mentees only", TargetRole: strPtr("Mentee")},
		{ID: 4, Title: "expired", ExpiryDate: &past},
		{ID: 5, Title: "still on", ExpiryDate: &future},
	}}
	svc := NewAnnouncementService(store, &fakeRecipientReader{}, &fakeNotifier{}, zerolog.Nop())

	visible, err := svc.GetVisible(context.Background(), "mentor")
	require.NoError(t, err)

	ids := make([]int64, 0, len(visible))
	for _, a := range visible {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{1, 2, 5}, ids, "role matching is case-insensitive and expired rows drop out")
}

func TestGetVisibleAdminSeesAllTargetsButNotExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	store := &fakeAnnouncementStore{all: []models.Announcement{
		{ID: 1, TargetRole: strPtr("Mentor")},
		{ID: 2, TargetRole: strPtr("Mentee")},
		{ID: 3, TargetRole: strPtr("Mentor"), ExpiryDate: &past},
	}}
	svc := NewAnnouncementService(store, &fakeRecipientReader{}, &fakeNotifier{}, zerolog.Nop())

	visible, err := svc.GetVisible(context.Background(), "Admin")
	require.NoError(t, err)
	require.Len(t, visible, 2, "expiry still applies to admins")
}
