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
	"github.com/peerconnect/peerconnect/internal/pkg/dberrors"
)

const userColumns = `id, first_name, last_name, email, username, password_hash, role, status, skills, bio, profile_image, date_joined`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanUser(row pgx.Row, u *models.User) error {
	return row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Username,
		&u.PasswordHash,
		&u.Role,
		&u.Status,
		&u.Skills,
		&u.Bio,
		&u.ProfileImage,
		&u.DateJoined,
	)
}

// Create inserts a new user and returns its ID
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (
			first_name, last_name, email, username, password_hash, role, status, skills, bio, profile_image
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, date_joined
	`

	err := r.db.QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.Role,
		user.Status,
		user.Skills,
		user.Bio,
		user.ProfileImage,
	).Scan(&user.ID, &user.DateJoined)

	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrEmailAlreadyExists
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.User
	if err := scanUser(r.db.QueryRow(ctx, query, id), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.User
	if err := scanUser(r.db.QueryRow(ctx, query, email), &user); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	return &user, nil
}

// GetAll retrieves every user, newest first
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// GetByRoleAndStatus retrieves users matching a role and status, newest first
func (r *UserRepository) GetByRoleAndStatus(ctx context.Context, role, status string) ([]models.User, error) {
	sql, args, err := r.sb.Select(
		"id", "first_name", "last_name", "email", "username", "password_hash",
		"role", "status", "skills", "bio", "profile_image", "date_joined",
	).
		From("users").
		Where(squirrel.Eq{"role": role, "status": status}).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building user query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing users by role: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// Update applies a partial update built from the given column/value pairs
func (r *UserRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	builder := r.sb.Update("users").Where(squirrel.Eq{"id": id})
	for column, value := range fields {
		builder = builder.Set(column, value)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("error building user update: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateStatus sets a user's account status
func (r *UserRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating user status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("error counting users: %w", err)
	}
	return total, nil
}

// CountByRole returns the number of users with the given role
func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = $1`, role).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting users by role: %w", err)
	}
	return total, nil
}

// GetRecent retrieves the most recently registered users
func (r *UserRepository) GetRecent(ctx context.Context, limit int) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY date_joined DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent users: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

// GetRoleDistribution returns user counts grouped by role
func (r *UserRepository) GetRoleDistribution(ctx context.Context) ([]models.RoleCount, error) {
	query := `SELECT role, COUNT(*) AS count FROM users GROUP BY role ORDER BY role`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error reading role distribution: %w", err)
	}
	defer rows.Close()

	counts := []models.RoleCount{}
	for rows.Next() {
		var rc models.RoleCount
		if err := rows.Scan(&rc.Role, &rc.Count); err != nil {
			return nil, fmt.Errorf("error scanning role distribution row: %w", err)
		}
		counts = append(counts, rc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role distribution rows: %w", err)
	}

	return counts, nil
}

// GetActiveRecipients returns active users, optionally restricted to one
// role, for outbound email broadcasts.
func (r *UserRepository) GetActiveRecipients(ctx context.Context, role *string) ([]models.User, error) {
	builder := r.sb.Select(
		"id", "first_name", "last_name", "email", "username", "password_hash",
		"role", "status", "skills", "bio", "profile_image", "date_joined",
	).
		From("users").
		Where(squirrel.Eq{"status": models.UserStatusActive})

	if role != nil && *role != "" {
		builder = builder.Where(squirrel.Eq{"role": *role})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building recipient query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing recipients: %w", err)
	}
	defer rows.Close()

	return collectUsers(rows)
}

func collectUsers(rows pgx.Rows) ([]models.User, error) {
	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
