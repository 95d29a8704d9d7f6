package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

// ForumRepository handles database operations for forum posts, answers and
// comments.
type ForumRepository struct {
	db *pgxpool.Pool
}

// NewForumRepository creates a new ForumRepository
func NewForumRepository(db *pgxpool.Pool) *ForumRepository {
	return &ForumRepository{db: db}
}

// CreatePost inserts a new thread
func (r *ForumRepository) CreatePost(ctx context.Context, post *models.ForumPost) (int64, error) {
	query := `
		INSERT INTO forum_posts (user_id, title, content, tags, views)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		post.UserID,
		post.Title,
		post.Content,
		post.Tags,
		post.Views,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating forum post: %w", err)
	}

	return post.ID, nil
}

// ListPosts retrieves all threads joined with author first name and answer
// count, newest first.
func (r *ForumRepository) ListPosts(ctx context.Context) ([]models.ForumPost, error) {
	query := `
		SELECT
			p.id, p.user_id, p.title, p.content, p.tags, p.views,
			p.created_at, p.updated_at,
			COALESCE(u.first_name, '') AS created_by_name,
			COUNT(a.id) AS answer_count
		FROM forum_posts p
		LEFT JOIN users u ON u.id = p.user_id
		LEFT JOIN forum_answers a ON a.post_id = p.id
		GROUP BY p.id, u.first_name
		ORDER BY p.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing forum posts: %w", err)
	}
	defer rows.Close()

	posts := []models.ForumPost{}
	for rows.Next() {
		var p models.ForumPost
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Title,
			&p.Content,
			&p.Tags,
			&p.Views,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.CreatedByName,
			&p.AnswerCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning forum post row: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating forum post rows: %w", err)
	}

	return posts, nil
}

// IncrementViews bumps the view counter in a single UPDATE so concurrent
// reads cannot lose increments. Returns ErrThreadNotFound when the thread
// does not exist.
func (r *ForumRepository) IncrementViews(ctx context.Context, postID int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE forum_posts SET views = views + 1 WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("error incrementing post views: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThreadNotFound
	}
	return nil
}

// GetPostByID retrieves one thread joined with its author's first name
func (r *ForumRepository) GetPostByID(ctx context.Context, postID int64) (*models.ForumPost, error) {
	query := `
		SELECT
			p.id, p.user_id, p.title, p.content, p.tags, p.views,
			p.created_at, p.updated_at,
			COALESCE(u.first_name, '') AS created_by_name
		FROM forum_posts p
		LEFT JOIN users u ON u.id = p.user_id
		WHERE p.id = $1
	`

	var p models.ForumPost
	err := r.db.QueryRow(ctx, query, postID).Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Content,
		&p.Tags,
		&p.Views,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CreatedByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrThreadNotFound
		}
		return nil, fmt.Errorf("error retrieving forum post: %w", err)
	}

	return &p, nil
}

// DeletePost removes a thread; answers and comments cascade with it
func (r *ForumRepository) DeletePost(ctx context.Context, postID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM forum_posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("error deleting forum post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrThreadNotFound
	}
	return nil
}

// CountPosts returns the total number of threads
func (r *ForumRepository) CountPosts(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM forum_posts`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting forum posts: %w", err)
	}
	return total, nil
}

// CreateAnswer inserts a new answer on a thread
func (r *ForumRepository) CreateAnswer(ctx context.Context, answer *models.ForumAnswer) (int64, error) {
	query := `
		INSERT INTO forum_answers (post_id, user_id, content, votes)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		answer.PostID,
		answer.UserID,
		answer.Content,
		answer.Votes,
	).Scan(&answer.ID, &answer.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating forum answer: %w", err)
	}

	return answer.ID, nil
}

// GetAnswerByID retrieves one answer
func (r *ForumRepository) GetAnswerByID(ctx context.Context, id int64) (*models.ForumAnswer, error) {
	query := `
		SELECT
			a.id, a.post_id, a.user_id, a.content, a.votes, a.created_at,
			COALESCE(u.first_name, '') AS replied_by_name
		FROM forum_answers a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.id = $1
	`

	var a models.ForumAnswer
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.PostID,
		&a.UserID,
		&a.Content,
		&a.Votes,
		&a.CreatedAt,
		&a.RepliedByName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnswerNotFound
		}
		return nil, fmt.Errorf("error retrieving forum answer: %w", err)
	}

	return &a, nil
}

// ListAnswers retrieves every answer across all threads, newest first
func (r *ForumRepository) ListAnswers(ctx context.Context) ([]models.ForumAnswer, error) {
	query := `
		SELECT
			a.id, a.post_id, a.user_id, a.content, a.votes, a.created_at,
			COALESCE(u.first_name, '') AS replied_by_name
		FROM forum_answers a
		LEFT JOIN users u ON u.id = a.user_id
		ORDER BY a.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing forum answers: %w", err)
	}
	defer rows.Close()

	return collectAnswers(rows)
}

// ListAnswersByPost retrieves the answers of a thread ordered by vote tally
// (highest first) then age, with author first names joined in.
func (r *ForumRepository) ListAnswersByPost(ctx context.Context, postID int64) ([]models.ForumAnswer, error) {
	query := `
		SELECT
			a.id, a.post_id, a.user_id, a.content, a.votes, a.created_at,
			COALESCE(u.first_name, '') AS replied_by_name
		FROM forum_answers a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.post_id = $1
		ORDER BY a.votes DESC, a.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing answers for post: %w", err)
	}
	defer rows.Close()

	return collectAnswers(rows)
}

// DeleteAnswer removes an answer; its comments cascade with it
func (r *ForumRepository) DeleteAnswer(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM forum_answers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting forum answer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnswerNotFound
	}
	return nil
}

// AdjustVotes applies a vote delta in a single UPDATE and returns the new
// tally. Concurrent votes all land because the increment happens in the
// database, not in application code.
func (r *ForumRepository) AdjustVotes(ctx context.Context, answerID int64, delta int) (int64, error) {
	var votes int64
	err := r.db.QueryRow(ctx,
		`UPDATE forum_answers SET votes = votes + $1 WHERE id = $2 RETURNING votes`,
		delta, answerID,
	).Scan(&votes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrAnswerNotFound
		}
		return 0, fmt.Errorf("error adjusting answer votes: %w", err)
	}
	return votes, nil
}

// CreateComment inserts a new comment on an answer
func (r *ForumRepository) CreateComment(ctx context.Context, comment *models.ForumComment) (int64, error) {
	query := `
		INSERT INTO forum_comments (answer_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.AnswerID,
		comment.UserID,
		comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating forum comment: %w", err)
	}

	return comment.ID, nil
}

// ListCommentsByPost retrieves every comment under a thread in one query,
// oldest first, keyed by answer in the caller.
func (r *ForumRepository) ListCommentsByPost(ctx context.Context, postID int64) ([]models.ForumComment, error) {
	query := `
		SELECT
			c.id, c.answer_id, c.user_id, c.content, c.created_at,
			COALESCE(u.first_name, '') AS commented_by_name
		FROM forum_comments c
		JOIN forum_answers a ON a.id = c.answer_id
		LEFT JOIN users u ON u.id = c.user_id
		WHERE a.post_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("error listing comments for post: %w", err)
	}
	defer rows.Close()

	comments := []models.ForumComment{}
	for rows.Next() {
		var c models.ForumComment
		err := rows.Scan(
			&c.ID,
			&c.AnswerID,
			&c.UserID,
			&c.Content,
			&c.CreatedAt,
			&c.CommentedByName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning comment row: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comment rows: %w", err)
	}

	return comments, nil
}

func collectAnswers(rows pgx.Rows) ([]models.ForumAnswer, error) {
	answers := []models.ForumAnswer{}
	for rows.Next() {
		var a models.ForumAnswer
		err := rows.Scan(
			&a.ID,
			&a.PostID,
			&a.UserID,
			&a.Content,
			&a.Votes,
			&a.CreatedAt,
			&a.RepliedByName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning answer row: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating answer rows: %w", err)
	}
	return answers, nil
}
