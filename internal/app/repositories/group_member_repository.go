package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/peerconnect/peerconnect/internal/app/models"
	"github.com/peerconnect/peerconnect/internal/pkg/apperrors"
	"github.com/peerconnect/peerconnect/internal/pkg/dberrors"
)

// GroupMemberRepository handles database operations for group memberships
type GroupMemberRepository struct {
	db *pgxpool.Pool
}

// NewGroupMemberRepository creates a new GroupMemberRepository
func NewGroupMemberRepository(db *pgxpool.Pool) *GroupMemberRepository {
	return &GroupMemberRepository{db: db}
}

// Add inserts a membership row. The UNIQUE(group_id, user_id) constraint is
// the source of truth for duplicates, so concurrent joins cannot both
// succeed; a violation surfaces as ErrAlreadyJoined.
func (r *GroupMemberRepository) Add(ctx context.Context, member *models.GroupMember) (int64, error) {
	query := `
		INSERT INTO group_members (group_id, user_id, role)
		VALUES ($1, $2, $3)
		RETURNING id, joined_at
	`

	err := r.db.QueryRow(ctx, query,
		member.GroupID,
		member.UserID,
		member.Role,
	).Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrAlreadyJoined
		}
		return 0, fmt.Errorf("error adding group member: %w", err)
	}

	return member.ID, nil
}

// ListByGroup retrieves the members of a group joined with their identity
func (r *GroupMemberRepository) ListByGroup(ctx context.Context, groupID int64) ([]models.GroupMemberDetail, error) {
	query := `
		SELECT
			gm.id, gm.group_id, gm.user_id, gm.role, gm.joined_at,
			CONCAT(u.first_name, ' ', u.last_name) AS user_name,
			u.email, u.role AS user_role
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at ASC
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("error listing group members: %w", err)
	}
	defer rows.Close()

	members := []models.GroupMemberDetail{}
	for rows.Next() {
		var m models.GroupMemberDetail
		err := rows.Scan(
			&m.ID,
			&m.GroupID,
			&m.UserID,
			&m.Role,
			&m.JoinedAt,
			&m.UserName,
			&m.UserEmail,
			&m.UserRole,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning group member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating group member rows: %w", err)
	}

	return members, nil
}

// UpdateRole changes a member's role within the group
func (r *GroupMemberRepository) UpdateRole(ctx context.Context, memberID int64, role string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE group_members SET role = $1 WHERE id = $2`, role, memberID)
	if err != nil {
		return fmt.Errorf("error updating member role: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrMemberNotFound
	}
	return nil
}

// Delete removes a membership row by its own ID. Removing an absent row is
// not an error.
func (r *GroupMemberRepository) Delete(ctx context.Context, memberID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM group_members WHERE id = $1`, memberID); err != nil {
		return fmt.Errorf("error removing group member: %w", err)
	}
	return nil
}
