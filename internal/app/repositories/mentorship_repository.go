package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

// MentorshipRepository handles database operations for mentorships
type MentorshipRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewMentorshipRepository creates a new MentorshipRepository
func NewMentorshipRepository(db *pgxpool.Pool) *MentorshipRepository {
	return &MentorshipRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanMentorship(row pgx.Row, m *models.Mentorship) error {
	return row.Scan(
		&m.ID,
		&m.MentorID,
		&m.StudentID,
		&m.Subject,
		&m.Status,
		&m.StartDate,
		&m.EndDate,
		&m.CreatedAt,
	)
}

// Create inserts a new mentorship and returns its ID
func (r *MentorshipRepository) Create(ctx context.Context, m *models.Mentorship) (int64, error) {
	query := `
		INSERT INTO mentorships (mentor_id, student_id, subject, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		m.MentorID,
		m.StudentID,
		m.Subject,
		m.Status,
		m.StartDate,
		m.EndDate,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating mentorship: %w", err)
	}

	return m.ID, nil
}

// GetByID retrieves a mentorship by ID
func (r *MentorshipRepository) GetByID(ctx context.Context, id int64) (*models.Mentorship, error) {
	query := `
		SELECT id, mentor_id, student_id, subject, status, start_date, end_date, created_at
		FROM mentorships
		WHERE id = $1
	`

	var m models.Mentorship
	if err := scanMentorship(r.db.QueryRow(ctx, query, id), &m); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrMentorshipNotFound
		}
		return nil, fmt.Errorf("error retrieving mentorship: %w", err)
	}

	return &m, nil
}

// GetAll retrieves all mentorships, newest first
func (r *MentorshipRepository) GetAll(ctx context.Context) ([]models.Mentorship, error) {
	query := `
		SELECT id, mentor_id, student_id, subject, status, start_date, end_date, created_at
		FROM mentorships
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorships: %w", err)
	}
	defer rows.Close()

	return collectMentorships(rows)
}

// GetAllWithStudent retrieves all mentorships joined with the student's
// identity for the admin dashboard, newest first.
func (r *MentorshipRepository) GetAllWithStudent(ctx context.Context) ([]models.MentorshipWithStudent, error) {
	query := `
		SELECT
			m.id, m.mentor_id, m.student_id, m.subject, m.status,
			m.start_date, m.end_date, m.created_at,
			CONCAT(u.first_name, ' ', u.last_name) AS full_name,
			u.profile_image, u.email
		FROM mentorships m
		JOIN users u ON u.id = m.student_id
		ORDER BY m.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorships with students: %w", err)
	}
	defer rows.Close()

	result := []models.MentorshipWithStudent{}
	for rows.Next() {
		var m models.MentorshipWithStudent
		err := rows.Scan(
			&m.ID,
			&m.MentorID,
			&m.StudentID,
			&m.Subject,
			&m.Status,
			&m.StartDate,
			&m.EndDate,
			&m.CreatedAt,
			&m.FullName,
			&m.ProfileImage,
			&m.Email,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning mentorship row: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentorship rows: %w", err)
	}

	return result, nil
}

// GetByUserID retrieves mentorships where the user is mentor or student
func (r *MentorshipRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Mentorship, error) {
	query := `
		SELECT id, mentor_id, student_id, subject, status, start_date, end_date, created_at
		FROM mentorships
		WHERE mentor_id = $1 OR student_id = $1
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing mentorships for user: %w", err)
	}
	defer rows.Close()

	return collectMentorships(rows)
}

// Update applies a partial update built from the given column/value pairs
func (r *MentorshipRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	builder := r.sb.Update("mentorships").Where(squirrel.Eq{"id": id})
	for column, value := range fields {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building mentorship update: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating mentorship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipNotFound
	}

	return nil
}

// Delete removes a mentorship by ID
func (r *MentorshipRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM mentorships WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting mentorship: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMentorshipNotFound
	}
	return nil
}

// Count returns the total number of mentorships
func (r *MentorshipRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mentorships`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting mentorships: %w", err)
	}
	return total, nil
}

func collectMentorships(rows pgx.Rows) ([]models.Mentorship, error) {
	mentorships := []models.Mentorship{}
	for rows.Next() {
		var m models.Mentorship
		if err := scanMentorship(rows, &m); err != nil {
			return nil, fmt.Errorf("error scanning mentorship row: %w", err)
		}
		mentorships = append(mentorships, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mentorship rows: %w", err)
	}
	return mentorships, nil
}
