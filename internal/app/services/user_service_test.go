package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/auth"
)

type fakeUserStore struct {
	created       *models.User
	byID          map[int64]*models.User
	statusUpdates map[int64]string
	updatedFields map[string]interface{}
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:          map[int64]*models.User{},
		statusUpdates: map[int64]string{},
	}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	user.ID = 1
	clone := *user
	f.created = &clone
	return user.ID, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if u, ok := f.byID[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetAll(ctx context.Context) ([]models.User, error) {
	return []models.User{}, nil
}

func (f *fakeUserStore) GetByRoleAndStatus(ctx context.Context, role, status string) ([]models.User, error) {
	return []models.User{}, nil
}

func (f *fakeUserStore) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	f.updatedFields = fields
	return nil
}

func (f *fakeUserStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeUserStore) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeUserStore) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeUserStore) CountByRole(ctx context.Context, role string) (int64, error) {
	return 0, nil
}

func (f *fakeUserStore) GetRecent(ctx context.Context, limit int) ([]models.User, error) {
	return []models.User{}, nil
}

func (f *fakeUserStore) GetRoleDistribution(ctx context.Context) ([]models.RoleCount, error) {
	return []models.RoleCount{}, nil
}

func registrationRequest() *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@peerconnect.app",
		Username:  "johnd",
		Password:  "secret123",
	}
}

func TestRegisterDefaultsToActiveMentee(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, &fakeNotifier{}, zerolog.Nop())

	user, err := svc.Register(context.Background(), registrationRequest(), nil)
	require.NoError(t, err)

	assert.Equal(t, models.RoleMentee, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.Empty(t, user.PasswordHash, "the response strips the hash")
	require.NotNil(t, store.created)
	assert.True(t, auth.CheckPassword(store.created.PasswordHash, "secret123"), "storage received a bcrypt hash of the password")
}

func TestRegisterHonorsMentorSignupStatus(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, nil, &fakeNotifier{}, zerolog.Nop())

	req := registrationRequest()
	req.Role = strPtr("Mentor")
	req.Status = strPtr("Pending")

	user, err := svc.Register(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, models.RoleMentor, user.Role)
	assert.Equal(t, models.UserStatusPending, user.Status)
}

func TestRegisterRejectsBadEmail(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), nil, &fakeNotifier{}, zerolog.Nop())

	req := registrationRequest()
	req.Email = "not-an-email"

	_, err := svc.Register(context.Background(), req, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc := NewUserService(newFakeUserStore(), nil, &fakeNotifier{}, zerolog.Nop())

	req := registrationRequest()
	req.Password = "abc"

	_, err := svc.Register(context.Background(), req, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestApproveMentorActivatesAndEmails(t *testing.T) {
	store := newFakeUserStore()
	store.byID[3] = &models.User{
		ID:        3,
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@peerconnect.app",
		Role:      models.RoleMentor,
		Status:    models.UserStatusPending,
	}
	notifier := &fakeNotifier{}
	svc := NewUserService(store, nil, notifier, zerolog.Nop())

	user, err := svc.ApproveMentor(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.Equal(t, "Active", store.statusUpdates[3])
	assert.Equal(t, []string{"jane@peerconnect.app"}, notifier.approvedEmails)
}

func TestApproveMentorSurvivesEmailFailure(t *testing.T) {
	store := newFakeUserStore()
	store.byID[3] = &models.User{ID: 3, Email: "jane@peerconnect.app", Role: models.RoleMentor}
	notifier := &fakeNotifier{sendErr: assert.AnError}
	svc := NewUserService(store, nil, notifier, zerolog.Nop())

	user, err := svc.ApproveMentor(context.Background(), 3)
	require.NoError(t, err, "a failed welcome email must not undo the approval")
	assert.Equal(t, models.UserStatusActive, user.Status)
}

func TestRejectMentorSendsNoEmail(t *testing.T) {
	store := newFakeUserStore()
	store.byID[3] = &models.User{ID: 3, Email: "jane@peerconnect.app", Role: models.RoleMentor}
	notifier := &fakeNotifier{}
	svc := NewUserService(store, nil, notifier, zerolog.Nop())

	user, err := svc.RejectMentor(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, models.UserStatusRejected, user.Status)
	assert.Equal(t, "Rejected", store.statusUpdates[3])
	assert.Empty(t, notifier.approvedEmails)
}

func TestUpdateUserSkipsEmptyPassword(t *testing.T) {
	store := newFakeUserStore()
	store.byID[7] = &models.User{ID: 7, FirstName: "John"}
	svc := NewUserService(store, nil, &fakeNotifier{}, zerolog.Nop())

	first := "Johnny"
	empty := ""
	_, err := svc.UpdateUser(context.Background(), 7, &dto.UpdateUserRequest{
		FirstName: &first,
		Password:  &empty,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{"first_name": "Johnny"}, store.updatedFields)
}

func TestGetUserStripsHash(t *testing.T) {
	store := newFakeUserStore()
	store.byID[7] = &models.User{ID: 7, PasswordHash: "$2a$12$something"}
	svc := NewUserService(store, nil, &fakeNotifier{}, zerolog.Nop())

	user, err := svc.GetUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, user.PasswordHash)
}
