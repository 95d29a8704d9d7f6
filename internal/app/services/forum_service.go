package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/app/models/dto"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

// Vote directions accepted by VoteAnswer
const (
	VoteUp   = "up"
	VoteDown = "down"
)

type forumStore interface {
	CreatePost(ctx context.Context, post *models.ForumPost) (int64, error)
	ListPosts(ctx context.Context) ([]models.ForumPost, error)
	IncrementViews(ctx context.Context, postID int64) error
	GetPostByID(ctx context.Context, postID int64) (*models.ForumPost, error)
	DeletePost(ctx context.Context, postID int64) error
	CountPosts(ctx context.Context) (int64, error)
	CreateAnswer(ctx context.Context, answer *models.ForumAnswer) (int64, error)
	GetAnswerByID(ctx context.Context, id int64) (*models.ForumAnswer, error)
	ListAnswers(ctx context.Context) ([]models.ForumAnswer, error)
	ListAnswersByPost(ctx context.Context, postID int64) ([]models.ForumAnswer, error)
	DeleteAnswer(ctx context.Context, id int64) error
	AdjustVotes(ctx context.Context, answerID int64, delta int) (int64, error)
	CreateComment(ctx context.Context, comment *models.ForumComment) (int64, error)
	ListCommentsByPost(ctx context.Context, postID int64) ([]models.ForumComment, error)
}

// ForumService defines the interface for Q&A forum operations
type ForumService interface {
	CreateThread(ctx context.Context, req *dto.CreateThreadRequest) (*models.ForumPost, error)
	GetThreads(ctx context.Context) ([]models.ForumPost, error)
	GetThreadDetail(ctx context.Context, id int64) (*dto.ThreadDetailResponse, error)
	DeleteThread(ctx context.Context, id int64) error
	CountThreads(ctx context.Context) (int64, error)

	CreateReply(ctx context.Context, req *dto.CreateReplyRequest) (*models.ForumAnswer, error)
	GetReplies(ctx context.Context) ([]models.ForumAnswer, error)
	GetReply(ctx context.Context, id int64) (*models.ForumAnswer, error)
	DeleteReply(ctx context.Context, id int64) error
	VoteAnswer(ctx context.Context, answerID int64, direction string) (int64, error)

	CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*models.ForumComment, error)
}

type forumServiceImpl struct {
	forum  forumStore
	logger zerolog.Logger
}

// NewForumService creates a new ForumService
func NewForumService(forum forumStore, logger zerolog.Logger) ForumService {
	return &forumServiceImpl{
		forum:  forum,
		logger: logger,
	}
}

// CreateThread opens a thread. Tags default to empty and views start at 0.
func (s *forumServiceImpl) CreateThread(ctx context.Context, req *dto.CreateThreadRequest) (*models.ForumPost, error) {
	if req.UserID == 0 || req.Title == "" || req.Content == "" {
		return nil, apperrors.NewValidationError("user_id, title and content are required")
	}

	post := &models.ForumPost{
		UserID:  req.UserID,
		Title:   req.Title,
		Content: req.Content,
		Views:   0,
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}

	if _, err := s.forum.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// GetThreads lists all threads with author names and answer counts
func (s *forumServiceImpl) GetThreads(ctx context.Context) ([]models.ForumPost, error) {
	return s.forum.ListPosts(ctx)
}

// GetThreadDetail bumps the view counter, then returns the thread with its
// answers ordered by vote tally and their comments nested in. A missing
// thread yields a response with a nil Thread rather than an error; the
// endpoint contract predates proper 404s.
func (s *forumServiceImpl) GetThreadDetail(ctx context.Context, id int64) (*dto.ThreadDetailResponse, error) {
	if err := s.forum.IncrementViews(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrThreadNotFound) {
			return &dto.ThreadDetailResponse{Thread: nil, Answers: []models.ForumAnswer{}}, nil
		}
		return nil, err
	}

	thread, err := s.forum.GetPostByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.forum.ListAnswersByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	thread.AnswerCount = int64(len(answers))

	comments, err := s.forum.ListCommentsByPost(ctx, id)
	if err != nil {
		return nil, err
	}

	byAnswer := make(map[int64][]models.ForumComment, len(answers))
	for _, c := range comments {
		byAnswer[c.AnswerID] = append(byAnswer[c.AnswerID], c)
	}
	for i := range answers {
		cs := byAnswer[answers[i].ID]
		if cs == nil {
			cs = []models.ForumComment{}
		}
		answers[i].Comments = cs
	}

	return &dto.ThreadDetailResponse{
		Thread:  thread,
		Answers: answers,
	}, nil
}

// DeleteThread removes a thread and its answers and comments
func (s *forumServiceImpl) DeleteThread(ctx context.Context, id int64) error {
	return s.forum.DeletePost(ctx, id)
}

// CountThreads returns the total thread count
func (s *forumServiceImpl) CountThreads(ctx context.Context) (int64, error) {
	return s.forum.CountPosts(ctx)
}

// CreateReply answers a thread
func (s *forumServiceImpl) CreateReply(ctx context.Context, req *dto.CreateReplyRequest) (*models.ForumAnswer, error) {
	if req.PostID == 0 || req.UserID == 0 || req.Content == "" {
		return nil, apperrors.NewValidationError("post_id, user_id and content are required")
	}

	answer := &models.ForumAnswer{
		PostID:  req.PostID,
		UserID:  req.UserID,
		Content: req.Content,
		Votes:   0,
	}
	if _, err := s.forum.CreateAnswer(ctx, answer); err != nil {
		return nil, err
	}
	answer.Comments = []models.ForumComment{}

	return answer, nil
}

// GetReplies lists every answer across the forum
func (s *forumServiceImpl) GetReplies(ctx context.Context) ([]models.ForumAnswer, error) {
	return s.forum.ListAnswers(ctx)
}

// GetReply retrieves one answer
func (s *forumServiceImpl) GetReply(ctx context.Context, id int64) (*models.ForumAnswer, error) {
	return s.forum.GetAnswerByID(ctx, id)
}

// DeleteReply removes an answer and its comments
func (s *forumServiceImpl) DeleteReply(ctx context.Context, id int64) error {
	return s.forum.DeleteAnswer(ctx, id)
}

// VoteAnswer applies one up or down vote and returns the new tally. The
// increment happens atomically in storage, so an up vote followed by a down
// vote always lands back on the starting tally.
func (s *forumServiceImpl) VoteAnswer(ctx context.Context, answerID int64, direction string) (int64, error) {
	var delta int
	switch direction {
	case VoteUp:
		delta = 1
	case VoteDown:
		delta = -1
	default:
		return 0, apperrors.NewValidationError("vote type must be 'up' or 'down'")
	}

	return s.forum.AdjustVotes(ctx, answerID, delta)
}

// CreateComment comments on an answer. Comments are leaves; nothing nests
// under them.
func (s *forumServiceImpl) CreateComment(ctx context.Context, req *dto.CreateCommentRequest) (*models.ForumComment, error) {
	if req.AnswerID == 0 || req.UserID == 0 || req.Content == "" {
		return nil, apperrors.NewValidationError("answer_id, user_id and content are required")
	}

	comment := &models.ForumComment{
		AnswerID: req.AnswerID,
		UserID:   req.UserID,
		Content:  req.Content,
	}
	if _, err := s.forum.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}
