package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

// UserRepository handles database operations on the users table.
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

// CredentialRow is a user joined with its optional staff profile, as needed
// by the login flow.
type CredentialRow struct {
	UserID            int64
	Name              string
	Email             string
	PasswordHash      string
	Role              string
	StaffID           *int64
	Department        *string
	ProfilePictureURL *string
}

// GetCredentialsByEmail fetches the user plus any staff profile for login.
// Returns apperrors.ErrUserNotFound when the email is unknown.
func (r *UserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*CredentialRow, error) {
	query := squirrel.Select(
		"u.id", "u.name", "u.email", "u.password", "u.role",
		"s.id", "s.department", "s.profile_picture_url",
	).
		From("users u").
		LeftJoin("staff s ON u.email = s.email").
		Where("u.email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var row CredentialRow
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&row.UserID,
		&row.Name,
		&row.Email,
		&row.PasswordHash,
		&row.Role,
		&row.StaffID,
		&row.Department,
		&row.ProfilePictureURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &row, nil
}

// GetBasicProfileByEmail fetches the bare user fields used as the profile
// fallback when no staff row exists.
func (r *UserRepository) GetBasicProfileByEmail(ctx context.Context, email string) (*dto.BasicProfile, error) {
	query := squirrel.Select("id", "name", "email", "role").
		From("users").
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var profile dto.BasicProfile
	err = r.db.QueryRow(ctx, sql, args...).Scan(&profile.UserID, &profile.Name, &profile.Email, &profile.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &profile, nil
}

// UpdatePassword replaces the stored password hash for the email.
// Returns apperrors.ErrUserNotFound when no row matched.
func (r *UserRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	query := squirrel.Update("users").
		Set("password", passwordHash).
		Where("email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// CountUsers returns the total number of user rows. Used by seeding.
func (r *UserRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}

// InsertUser inserts a standalone user row, outside any staff transaction.
// Used by seeding.
func InsertUser(ctx context.Context, pool *pgxpool.Pool, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, user.Role).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}
	if err := pool.QueryRow(ctx, sql, args...).Scan(&user.ID); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// insertUserTx inserts a user inside an open transaction and returns the
// generated id, for the two-table staff create.
func insertUserTx(ctx context.Context, tx pgx.Tx, user *models.User) (int64, error) {
	query := squirrel.Insert("users").
		Columns("name", "email", "password", "role").
		Values(user.Name, user.Email, user.Password, user.Role).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var id int64
	if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
