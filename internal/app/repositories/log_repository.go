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

// LogRepository handles database operations for the append-only system log
type LogRepository struct {
	db *pgxpool.Pool
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *pgxpool.Pool) *LogRepository {
	return &LogRepository{db: db}
}

// Create appends a log entry. Entries are never updated or deleted.
func (r *LogRepository) Create(ctx context.Context, entry *models.SystemLog) (int64, error) {
	query := `
		INSERT INTO system_logs (user_id, action, details, status, ip_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		entry.UserID,
		entry.Action,
		entry.Details,
		entry.Status,
		entry.IPAddress,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating system log entry: %w", err)
	}

	return entry.ID, nil
}

// GetAll retrieves every log entry, newest first
func (r *LogRepository) GetAll(ctx context.Context) ([]models.SystemLog, error) {
	query := `
		SELECT id, user_id, action, details, status, ip_address, created_at
		FROM system_logs
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing system logs: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

// GetByID retrieves a single log entry
func (r *LogRepository) GetByID(ctx context.Context, id int64) (*models.SystemLog, error) {
	query := `
		SELECT id, user_id, action, details, status, ip_address, created_at
		FROM system_logs
		WHERE id = $1
	`

	var entry models.SystemLog
	err := r.db.QueryRow(ctx, query, id).Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Action,
		&entry.Details,
		&entry.Status,
		&entry.IPAddress,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving system log entry: %w", err)
	}

	return &entry, nil
}

// GetByUserID retrieves the log entries recorded for one user, newest first
func (r *LogRepository) GetByUserID(ctx context.Context, userID int64) ([]models.SystemLog, error) {
	query := `
		SELECT id, user_id, action, details, status, ip_address, created_at
		FROM system_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing system logs for user: %w", err)
	}
	defer rows.Close()

	return collectLogs(rows)
}

func collectLogs(rows pgx.Rows) ([]models.SystemLog, error) {
	logs := []models.SystemLog{}
	for rows.Next() {
		var entry models.SystemLog
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.Action,
			&entry.Details,
			&entry.Status,
			&entry.IPAddress,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning system log row: %w", err)
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating system log rows: %w", err)
	}
	return logs, nil
}
