package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerconnect/peerconnect/internal/app/models"
)

// SessionRepository handles database operations for scheduled sessions
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new session
func (r *SessionRepository) Create(ctx context.Context, session *models.Session) (int64, error) {
	query := `
		INSERT INTO sessions (
			type, reference_id, user_id, title, description, session_date,
			duration, meeting_link, reminder_sent
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		session.Type,
		session.ReferenceID,
		session.UserID,
		session.Title,
		session.Description,
		session.SessionDate,
		session.Duration,
		session.MeetingLink,
		session.ReminderSent,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating session: %w", err)
	}

	return session.ID, nil
}

// ListByGroup retrieves the sessions scheduled for a group, soonest first,
// with the creator's name joined in.
func (r *SessionRepository) ListByGroup(ctx context.Context, groupID int64) ([]models.Session, error) {
	query := `
		SELECT
			s.id, s.type, s.reference_id, s.user_id, s.title, s.description,
			s.session_date, s.duration, s.meeting_link, s.reminder_sent, s.created_at,
			COALESCE(CONCAT(u.first_name, ' ', u.last_name), '') AS created_by
		FROM sessions s
		LEFT JOIN users u ON u.id = s.user_id
		WHERE s.type = $1 AND s.reference_id = $2
		ORDER BY s.session_date ASC
	`

	rows, err := r.db.Query(ctx, query, models.SessionTypeGroup, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing sessions: %w", err)
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var s models.Session
		err := rows.Scan(
			&s.ID,
			&s.Type,
			&s.ReferenceID,
			&s.UserID,
			&s.Title,
			&s.Description,
			&s.SessionDate,
			&s.Duration,
			&s.MeetingLink,
			&s.ReminderSent,
			&s.CreatedAt,
			&s.CreatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning session row: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", err)
	}

	return sessions, nil
}
