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

type fakeForumStore struct {
	calls         []string
	votes         int64
	appliedDeltas []int
	voteErr       error
	incrementErr  error
	post          *models.ForumPost
	answers       []models.ForumAnswer
	comments      []models.ForumComment
}

func (f *fakeForumStore) CreatePost(ctx context.Context, post *models.ForumPost) (int64, error) {
	post.ID = 1
	return 1, nil
}

func (f *fakeForumStore) ListPosts(ctx context.Context) ([]models.ForumPost, error) {
	return []models.ForumPost{}, nil
}

func (f *fakeForumStore) IncrementViews(ctx context.Context, postID int64) error {
	f.calls = append(f.calls, "increment")
	return f.incrementErr
}

func (f *fakeForumStore) GetPostByID(ctx context.Context, postID int64) (*models.ForumPost, error) {
	f.calls = append(f.calls, "get")
	if f.post == nil {
		return nil, apperrors.ErrThreadNotFound
	}
	return f.post, nil
}

func (f *fakeForumStore) DeletePost(ctx context.Context, postID int64) error { return nil }

func (f *fakeForumStore) CountPosts(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeForumStore) CreateAnswer(ctx context.Context, answer *models.ForumAnswer) (int64, error) {
	answer.ID = 1
	return 1, nil
}

func (f *fakeForumStore) GetAnswerByID(ctx context.Context, id int64) (*models.ForumAnswer, error) {
	return &models.ForumAnswer{ID: id}, nil
}

func (f *fakeForumStore) ListAnswers(ctx context.Context) ([]models.ForumAnswer, error) {
	return f.answers, nil
}

func (f *fakeForumStore) ListAnswersByPost(ctx context.Context, postID int64) ([]models.ForumAnswer, error) {
	return f.answers, nil
}

func (f *fakeForumStore) DeleteAnswer(ctx context.Context, id int64) error { return nil }

func (f *fakeForumStore) AdjustVotes(ctx context.Context, answerID int64, delta int) (int64, error) {
	if f.voteErr != nil {
		return 0, f.voteErr
	}
	f.appliedDeltas = append(f.appliedDeltas, delta)
	f.votes += int64(delta)
	return f.votes, nil
}

func (f *fakeForumStore) CreateComment(ctx context.Context, comment *models.ForumComment) (int64, error) {
	comment.ID = 1
	return 1, nil
}

func (f *fakeForumStore) ListCommentsByPost(ctx context.Context, postID int64) ([]models.ForumComment, error) {
	return f.comments, nil
}

func TestGetThreadDetailCountsTheView(t *testing.T) {
	store := &fakeForumStore{post: &models.ForumPost{ID: 1, Title: "Goroutine leaks"}}
	svc := NewForumService(store, zerolog.Nop())

	detail, err := svc.GetThreadDetail(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, detail.Thread)
	require.GreaterOrEqual(t, len(store.calls), 2)
	assert.Equal(t, "increment", store.calls[0], "view counter bumps before the read")
}

func TestGetThreadDetailMissingThread(t *testing.T) {
	store := &fakeForumStore{incrementErr: apperrors.ErrThreadNotFound}
	svc := NewForumService(store, zerolog.Nop())

	detail, err := svc.GetThreadDetail(context.Background(), 42)
	require.NoError(t, err, "a missing thread is not an error on this endpoint")

	assert.Nil(t, detail.Thread)
	require.NotNil(t, detail.Answers)
	assert.Empty(t, detail.Answers)
}

func TestGetThreadDetailNestsComments(t *testing.T) {
	store := &fakeForumStore{
		post: &models.ForumPost{ID: 1},
		answers: []models.ForumAnswer{
			{ID: 10, PostID: 1, Votes: 5},
			{ID: 11, PostID: 1, Votes: 2},
		},
		comments: []models.ForumComment{
			{ID: 100, AnswerID: 11, Content: "agreed"},
			{ID: 101, AnswerID: 11, Content: "same here"},
		},
	}
	svc := NewForumService(store, zerolog.Nop())

	detail, err := svc.GetThreadDetail(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, detail.Answers, 2)
	assert.NotNil(t, detail.Answers[0].Comments, "answers without comments carry an empty slice, not null")
	assert.Empty(t, detail.Answers[0].Comments)
	assert.Len(t, detail.Answers[1].Comments, 2)
}

func TestGetThreadDetailCountsAnswers(t *testing.T) {
	store := &fakeForumStore{
		post: &models.ForumPost{ID: 1},
		answers: []models.ForumAnswer{
			{ID: 10, PostID: 1},
			{ID: 11, PostID: 1},
		},
	}
	svc := NewForumService(store, zerolog.Nop())

	detail, err := svc.GetThreadDetail(context.Background(), 1)
	require.NoError(t, err)

	require.NotNil(t, detail.Thread)
	assert.Equal(t, int64(2), detail.Thread.AnswerCount, "answer_count reflects the fetched answers")
}

func TestVoteAnswerUpThenDownReturnsToStart(t *testing.T) {
	store := &fakeForumStore{votes: 3}
	svc := NewForumService(store, zerolog.Nop())

	votes, err := svc.VoteAnswer(context.Background(), 10, VoteUp)
	require.NoError(t, err)
	assert.Equal(t, int64(4), votes)

	votes, err = svc.VoteAnswer(context.Background(), 10, VoteDown)
	require.NoError(t, err)
	assert.Equal(t, int64(3), votes)

	assert.Equal(t, []int{1, -1}, store.appliedDeltas)
}

func TestVoteAnswerRejectsUnknownDirection(t *testing.T) {
	store := &fakeForumStore{}
	svc := NewForumService(store, zerolog.Nop())

	_, err := svc.VoteAnswer(context.Background(), 10, "sideways")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, store.appliedDeltas)
}

func TestVoteAnswerMissingAnswer(t *testing.T) {
	store := &fakeForumStore{voteErr: apperrors.ErrAnswerNotFound}
	svc := NewForumService(store, zerolog.Nop())

	_, err := svc.VoteAnswer(context.Background(), 99, VoteUp)
	assert.ErrorIs(t, err, apperrors.ErrAnswerNotFound)
}

func TestCreateThreadValidation(t *testing.T) {
	svc := NewForumService(&fakeForumStore{}, zerolog.Nop())

	_, err := svc.CreateThread(context.Background(), &dto.CreateThreadRequest{UserID: 7, Title: "no content"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateReplyStartsAtZeroVotes(t *testing.T) {
	svc := NewForumService(&fakeForumStore{}, zerolog.Nop())

	answer, err := svc.CreateReply(context.Background(), &dto.CreateReplyRequest{
		PostID:  1,
		UserID:  3,
		Content: "use pprof",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), answer.Votes)
	assert.NotNil(t, answer.Comments)
}
