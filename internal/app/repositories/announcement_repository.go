package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
)

// AnnouncementRepository handles database operations for announcements
type AnnouncementRepository struct {
	db *pgxpool.Pool
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{db: db}
}

// Create inserts a new announcement
func (r *AnnouncementRepository) Create(ctx context.Context, a *models.Announcement) (int64, error) {
	query := `
		INSERT INTO announcements (created_by, title, description, target_role, expiry_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		a.CreatedBy,
		a.Title,
		a.Description,
		a.TargetRole,
		a.ExpiryDate,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating announcement: %w", err)
	}

	return a.ID, nil
}

// GetAll retrieves every announcement, newest first, with the author's name
// joined in. Visibility filtering happens above this layer.
func (r *AnnouncementRepository) GetAll(ctx context.Context) ([]models.Announcement, error) {
	query := `
		SELECT
			a.id, a.created_by, a.title, a.description, a.target_role,
			a.expiry_date, a.created_at,
			COALESCE(CONCAT(u.first_name, ' ', u.last_name), '') AS author_name
		FROM announcements a
		LEFT JOIN users u ON u.id = a.created_by
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		err := rows.Scan(
			&a.ID,
			&a.CreatedBy,
			&a.Title,
			&a.Description,
			&a.TargetRole,
			&a.ExpiryDate,
			&a.CreatedAt,
			&a.AuthorName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	return announcements, nil
}

// Delete removes an announcement by ID
func (r *AnnouncementRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting announcement: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAnnouncementNotFound
	}
	return nil
}
