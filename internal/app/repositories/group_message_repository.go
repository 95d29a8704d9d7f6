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

// GroupMessageRepository handles database operations for group chat messages
type GroupMessageRepository struct {
	db *pgxpool.Pool
}

// NewGroupMessageRepository creates a new GroupMessageRepository
func NewGroupMessageRepository(db *pgxpool.Pool) *GroupMessageRepository {
	return &GroupMessageRepository{db: db}
}

// Create inserts a new chat message
func (r *GroupMessageRepository) Create(ctx context.Context, message *models.GroupMessage) (int64, error) {
	query := `
		INSERT INTO group_messages (group_id, user_id, message, attachment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		message.GroupID,
		message.UserID,
		message.Message,
		message.Attachment,
	).Scan(&message.ID, &message.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating group message: %w", err)
	}

	return message.ID, nil
}

// GetByID retrieves one message joined with the sender's name
func (r *GroupMessageRepository) GetByID(ctx context.Context, id int64) (*models.GroupMessage, error) {
	query := `
		SELECT
			gm.id, gm.group_id, gm.user_id, gm.message, gm.attachment, gm.created_at,
			CONCAT(u.first_name, ' ', u.last_name) AS user_name
		FROM group_messages gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.id = $1
	`

	var m models.GroupMessage
	err := r.db.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.GroupID,
		&m.UserID,
		&m.Message,
		&m.Attachment,
		&m.CreatedAt,
		&m.UserName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving group message: %w", err)
	}

	return &m, nil
}

// ListByGroup retrieves the chat history of a group, oldest first, with
// sender names joined in.
func (r *GroupMessageRepository) ListByGroup(ctx context.Context, groupID int64) ([]models.GroupMessage, error) {
	query := `
		SELECT
			gm.id, gm.group_id, gm.user_id, gm.message, gm.attachment, gm.created_at,
			CONCAT(u.first_name, ' ', u.last_name) AS user_name
		FROM group_messages gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing group messages: %w", err)
	}
	defer rows.Close()

	messages := []models.GroupMessage{}
	for rows.Next() {
		var m models.GroupMessage
		err := rows.Scan(
			&m.ID,
			&m.GroupID,
			&m.UserID,
			&m.Message,
			&m.Attachment,
			&m.CreatedAt,
			&m.UserName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning group message row: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group message rows: %w", err)
	}

	return messages, nil
}
