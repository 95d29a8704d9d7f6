package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerconnect/peerconnect/internal/app/models"
)

// GroupFileRepository handles database operations for group file records
type GroupFileRepository struct {
	db *pgxpool.Pool
}

// NewGroupFileRepository creates a new GroupFileRepository
func NewGroupFileRepository(db *pgxpool.Pool) *GroupFileRepository {
	return &GroupFileRepository{db: db}
}

// Create inserts a new file record
func (r *GroupFileRepository) Create(ctx context.Context, file *models.GroupFile) (int64, error) {
	query := `
		INSERT INTO group_files (group_id, user_id, file_name, file_path, file_size)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		file.GroupID,
		file.UserID,
		file.FileName,
		file.FilePath,
		file.FileSize,
	).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating group file record: %w", err)
	}

	return file.ID, nil
}

// ListByGroup retrieves the files of a group, newest first, with uploader
// names joined in.
func (r *GroupFileRepository) ListByGroup(ctx context.Context, groupID int64) ([]models.GroupFile, error) {
	query := `
		SELECT
			gf.id, gf.group_id, gf.user_id, gf.file_name, gf.file_path, gf.file_size, gf.created_at,
			CONCAT(u.first_name, ' ', u.last_name) AS uploader_name
		FROM group_files gf
		JOIN users u ON u.id = gf.user_id
		WHERE gf.group_id = $1
		ORDER BY gf.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing group files: %w", err)
	}
	defer rows.Close()

	files := []models.GroupFile{}
	for rows.Next() {
		var f models.GroupFile
		err := rows.Scan(
			&f.ID,
			&f.GroupID,
			&f.UserID,
			&f.FileName,
			&f.FilePath,
			&f.FileSize,
			&f.CreatedAt,
			&f.UploaderName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning group file row: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group file rows: %w", err)
	}

	return files, nil
}
