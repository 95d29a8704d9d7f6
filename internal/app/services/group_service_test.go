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
)

type fakeGroupStore struct {
	created *models.Group
	exists  bool
}

func (f *fakeGroupStore) Create(ctx context.Context, g *models.Group) (int64, error) {
	g.ID = 1
	f.created = g
	return g.ID, nil
}

func (f *fakeGroupStore) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	if !f.exists {
		return nil, apperrors.ErrGroupNotFound
	}
	return &models.Group{ID: id}, nil
}

func (f *fakeGroupStore) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

func (f *fakeGroupStore) GetAllSummaries(ctx context.Context) ([]models.GroupSummary, error) {
	return []models.GroupSummary{}, nil
}

func (f *fakeGroupStore) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	return nil
}

func (f *fakeGroupStore) Delete(ctx context.Context, id int64) error { return nil }

func (f *fakeGroupStore) Count(ctx context.Context) (int64, error) { return 0, nil }

type fakeMemberStore struct {
	added  []models.GroupMember
	addErr error
}

func (f *fakeMemberStore) Add(ctx context.Context, member *models.GroupMember) (int64, error) {
	if f.addErr != nil {
		return 0, f.addErr
	}
	member.ID = int64(len(f.added) + 1)
	f.added = append(f.added, *member)
	return member.ID, nil
}

func (f *fakeMemberStore) ListByGroup(ctx context.Context, groupID int64) ([]models.GroupMemberDetail, error) {
	return []models.GroupMemberDetail{}, nil
}

func (f *fakeMemberStore) UpdateRole(ctx context.Context, memberID int64, role string) error {
	return nil
}

func (f *fakeMemberStore) Delete(ctx context.Context, memberID int64) error { return nil }

type fakeMessageStore struct {
	created   *models.GroupMessage
	fetchedID int64
}

func (f *fakeMessageStore) Create(ctx context.Context, message *models.GroupMessage) (int64, error) {
	message.ID = 77
	f.created = message
	return message.ID, nil
}

func (f *fakeMessageStore) GetByID(ctx context.Context, id int64) (*models.GroupMessage, error) {
	f.fetchedID = id
	return &models.GroupMessage{ID: id, UserName: "Jane Doe"}, nil
}

func (f *fakeMessageStore) ListByGroup(ctx context.Context, groupID int64) ([]models.GroupMessage, error) {
	return []models.GroupMessage{}, nil
}

type fakeFileStore struct{}

func (f *fakeFileStore) Create(ctx context.Context, file *models.GroupFile) (int64, error) {
	file.ID = 1
	return 1, nil
}

func (f *fakeFileStore) ListByGroup(ctx context.Context, groupID int64) ([]models.GroupFile, error) {
	return []models.GroupFile{}, nil
}

type fakeSessionStore struct {
	created *models.Session
}

func (f *fakeSessionStore) Create(ctx context.Context, session *models.Session) (int64, error) {
	session.ID = 1
	f.created = session
	return 1, nil
}

func (f *fakeSessionStore) ListByGroup(ctx context.Context, groupID int64) ([]models.Session, error) {
	return []models.Session{}, nil
}

type fakeUserReader struct {
	user *models.User
	err  error
}

func (f *fakeUserReader) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func newGroupServiceForTest(groups *fakeGroupStore, members *fakeMemberStore, messages *fakeMessageStore, sessions *fakeSessionStore, users *fakeUserReader, meetingLink string) GroupService {
	return NewGroupService(groups, members, messages, &fakeFileStore{}, sessions, users, nil, meetingLink, zerolog.Nop())
}

func TestCreateGroupAutoEnrollsMentorCreator(t *testing.T) {
	groups := &fakeGroupStore{}
	members := &fakeMemberStore{}
	users := &fakeUserReader{user: &models.User{ID: 3, Role: models.RoleMentor}}
	svc := newGroupServiceForTest(groups, members, &fakeMessageStore{}, &fakeSessionStore{}, users, "")

	group, err := svc.CreateGroup(context.Background(), &dto.CreateGroupRequest{
		Name:         "Go Study Circle",
		Subject:      "Backend Engineering",
		InstructorID: 3,
		UserID:       3,
	})
	require.NoError(t, err)

	assert.Equal(t, "active", group.Status)
	require.Len(t, members.added, 1)
	assert.Equal(t, group.ID, members.added[0].GroupID)
	assert.Equal(t, int64(3), members.added[0].UserID)
	assert.Equal(t, "Member", members.added[0].Role)
}

func TestCreateGroupDoesNotEnrollMenteeCreator(t *testing.T) {
	members := &fakeMemberStore{}
	users := &fakeUserReader{user: &models.User{ID: 7, Role: models.RoleMentee}}
	svc := newGroupServiceForTest(&fakeGroupStore{}, members, &fakeMessageStore{}, &fakeSessionStore{}, users, "")

	_, err := svc.CreateGroup(context.Background(), &dto.CreateGroupRequest{
		Name:         "Reading Club",
		Subject:      "Papers",
		InstructorID: 3,
		UserID:       7,
	})
	require.NoError(t, err)

	assert.Empty(t, members.added)
}

func TestCreateGroupSucceedsWhenAutoEnrollFails(t *testing.T) {
	members := &fakeMemberStore{addErr: apperrors.ErrAlreadyJoined}
	users := &fakeUserReader{user: &models.User{ID: 1, Role: models.RoleAdmin}}
	svc := newGroupServiceForTest(&fakeGroupStore{}, members, &fakeMessageStore{}, &fakeSessionStore{}, users, "")

	group, err := svc.CreateGroup(context.Background(), &dto.CreateGroupRequest{
		Name:         "Ops Guild",
		Subject:      "Infra",
		InstructorID: 1,
		UserID:       1,
	})
	require.NoError(t, err)
	assert.NotZero(t, group.ID)
}

func TestJoinGroupMissingGroup(t *testing.T) {
	svc := newGroupServiceForTest(&fakeGroupStore{exists: false}, &fakeMemberStore{}, &fakeMessageStore{}, &fakeSessionStore{}, &fakeUserReader{}, "")

	_, err := svc.JoinGroup(context.Background(), 42, &dto.JoinGroupRequest{UserID: 7})
	assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
}

func TestJoinGroupDuplicateSurfacesConflict(t *testing.T) {
	members := &fakeMemberStore{addErr: apperrors.ErrAlreadyJoined}
	svc := newGroupServiceForTest(&fakeGroupStore{exists: true}, members, &fakeMessageStore{}, &fakeSessionStore{}, &fakeUserReader{}, "")

	_, err := svc.JoinGroup(context.Background(), 1, &dto.JoinGroupRequest{UserID: 7})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyJoined)
}

func TestAddMemberDefaultsRole(t *testing.T) {
	members := &fakeMemberStore{}
	svc := newGroupServiceForTest(&fakeGroupStore{exists: true}, members, &fakeMessageStore{}, &fakeSessionStore{}, &fakeUserReader{}, "")

	member, err := svc.AddMember(context.Background(), &dto.AddMemberRequest{GroupID: 1, UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "Member", member.Role)
}

func TestSendMessageReturnsEnrichedRow(t *testing.T) {
	messages := &fakeMessageStore{}
	svc := newGroupServiceForTest(&fakeGroupStore{exists: true}, &fakeMemberStore{}, messages, &fakeSessionStore{}, &fakeUserReader{}, "")

	sent, err := svc.SendMessage(context.Background(), 1, &dto.SendMessageRequest{
		UserID:  7,
		Message: "Meeting moved to 6pm",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(77), messages.fetchedID, "the stored row is re-read so the sender name rides along")
	assert.Equal(t, "Jane Doe", sent.UserName)
}

func TestAddSessionFillsDefaultMeetingLink(t *testing.T) {
	sessions := &fakeSessionStore{}
	svc := newGroupServiceForTest(&fakeGroupStore{exists: true}, &fakeMemberStore{}, &fakeMessageStore{}, sessions, &fakeUserReader{}, "https://meet.example.com/room")

	session, err := svc.AddSession(context.Background(), 1, &dto.AddSessionRequest{
		Title:       "Weekly sync",
		SessionDate: "2025-06-10 18:00:00",
		Duration:    60,
	})
	require.NoError(t, err)

	require.NotNil(t, session.MeetingLink)
	assert.Equal(t, "https://meet.example.com/room", *session.MeetingLink)
	assert.Equal(t, models.SessionTypeGroup, session.Type)
	assert.Equal(t, int64(1), session.ReferenceID)
	assert.False(t, session.ReminderSent)
}

func TestAddSessionWithoutCreator(t *testing.T) {
	sessions := &fakeSessionStore{}
	svc := newGroupServiceForTest(&fakeGroupStore{exists: true}, &fakeMemberStore{}, &fakeMessageStore{}, sessions, &fakeUserReader{}, "")

	session, err := svc.AddSession(context.Background(), 1, &dto.AddSessionRequest{
		Title:       "Open office hours",
		SessionDate: "2025-06-12 16:00:00",
		Duration:    45,
	})
	require.NoError(t, err)

	assert.Nil(t, session.UserID, "a session scheduled without a creator stays anonymous")
	require.NotNil(t, sessions.created)
	assert.Nil(t, sessions.created.UserID)
}

func TestAddSessionKeepsCallerLink(t *testing.T) {
	sessions := &fakeSessionStore{}
	svc := newGroupServiceForTest(&fakeGroupStore{exists: true}, &fakeMemberStore{}, &fakeMessageStore{}, sessions, &fakeUserReader{}, "https://meet.example.com/room")

	link := "https://zoom.example.com/j/123"
	session, err := svc.AddSession(context.Background(), 1, &dto.AddSessionRequest{
		Title:       "Exam prep",
		SessionDate: "2025-06-11 19:30:00",
		Duration:    90,
		MeetingLink: &link,
	})
	require.NoError(t, err)
	assert.Equal(t, link, *session.MeetingLink)
}

func TestAddSessionRejectsBadDate(t *testing.T) {
	svc := newGroupServiceForTest(&fakeGroupStore{exists: true}, &fakeMemberStore{}, &fakeMessageStore{}, &fakeSessionStore{}, &fakeUserReader{}, "")

	_, err := svc.AddSession(context.Background(), 1, &dto.AddSessionRequest{
		Title:       "Weekly sync",
		SessionDate: "tomorrow evening",
		Duration:    60,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestGetSessionsMissingGroup(t *testing.T) {
	svc := newGroupServiceForTest(&fakeGroupStore{exists: false}, &fakeMemberStore{}, &fakeMessageStore{}, &fakeSessionStore{}, &fakeUserReader{}, "")

	_, err := svc.GetSessions(context.Background(), 42)
	assert.ErrorIs(t, err, apperrors.ErrGroupNotFound)
}
