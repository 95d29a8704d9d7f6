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

// GroupRepository handles database operations for study groups
type GroupRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new group and returns its ID
func (r *GroupRepository) Create(ctx context.Context, g *models.Group) (int64, error) {
	query := `
		INSERT INTO groups (name, subject, description, instructor_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		g.Name,
		g.Subject,
		g.Description,
		g.InstructorID,
		g.Status,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating group: %w", err)
	}

	return g.ID, nil
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(ctx context.Context, id int64) (*models.Group, error) {
	query := `
		SELECT id, name, subject, description, instructor_id, status, created_at
		FROM groups
		WHERE id = $1
	`

	var g models.Group
	err := r.db.QueryRow(ctx, query, id).Scan(
		&g.ID,
		&g.Name,
		&g.Subject,
		&g.Description,
		&g.InstructorID,
		&g.Status,
		&g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("error retrieving group: %w", err)
	}

	return &g, nil
}

// Exists reports whether a group with the given ID exists
func (r *GroupRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM groups WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking group existence: %w", err)
	}
	return exists, nil
}

// GetAllSummaries retrieves all groups enriched with member count and
// instructor name in one query.
func (r *GroupRepository) GetAllSummaries(ctx context.Context) ([]models.GroupSummary, error) {
	query := `
		SELECT
			g.id, g.name, g.subject, g.description, g.instructor_id, g.status, g.created_at,
			COUNT(gm.id) AS member_count,
			COALESCE(CONCAT(u.first_name, ' ', u.last_name), '') AS instructor_name
		FROM groups g
		LEFT JOIN group_members gm ON gm.group_id = g.id
		LEFT JOIN users u ON u.id = g.instructor_id
		GROUP BY g.id, u.first_name, u.last_name
		ORDER BY g.id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing groups: %w", err)
	}
	defer rows.Close()

	groups := []models.GroupSummary{}
	for rows.Next() {
		var g models.GroupSummary
		err := rows.Scan(
			&g.ID,
			&g.Name,
			&g.Subject,
			&g.Description,
			&g.InstructorID,
			&g.Status,
			&g.CreatedAt,
			&g.MemberCount,
			&g.InstructorName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning group row: %w", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group rows: %w", err)
	}

	return groups, nil
}

// Update applies a partial update built from the given column/value pairs
func (r *GroupRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	builder := r.sb.Update("groups").Where(squirrel.Eq{"id": id})
	for column, value := range fields {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building group update: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error updating group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}

	return nil
}

// Delete removes a group by ID. Members, messages, files and sessions go
// with it through the FK cascade.
func (r *GroupRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting group: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrGroupNotFound
	}
	return nil
}

// Count returns the total number of groups
func (r *GroupRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM groups`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting groups: %w", err)
	}
	return total, nil
}
