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
	"github.com/archiva/campusconnect/internal/db"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
	"github.com/archiva/campusconnect/internal/pkg/dberrors"
)

// staffColumns are the staff table columns in scan order.
var staffColumns = []string{
	"s.id", "s.user_id", "s.prefix", "s.first_name", "s.last_name", "s.gender",
	"s.date_of_birth", "s.blood_group", "s.mobile_number", "s.marital_status",
	"s.alternative_mobile_number", "s.alternative_email", "s.aadhaar_number",
	"s.religion", "s.mother_tongue", "s.nationality", "s.state",
	"s.profile_status", "s.department", "s.email", "s.profile_picture_url",
}

// StaffRepository handles database operations for staff profiles and their
// backing user rows.
type StaffRepository struct {
	db *pgxpool.Pool
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(db *pgxpool.Pool) *StaffRepository {
	return &StaffRepository{db: db}
}

func scanStaff(row pgx.Row, withUser bool) (*models.Staff, error) {
	var s models.Staff
	dest := []any{
		&s.ID, &s.UserID, &s.Prefix, &s.FirstName, &s.LastName, &s.Gender,
		&s.DateOfBirth, &s.BloodGroup, &s.MobileNumber, &s.MaritalStatus,
		&s.AlternativeMobileNumber, &s.AlternativeEmail, &s.AadhaarNumber,
		&s.Religion, &s.MotherTongue, &s.Nationality, &s.State,
		&s.ProfileStatus, &s.Department, &s.Email, &s.ProfilePictureURL,
	}
	if withUser {
		dest = append(dest, &s.Name, &s.Role)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetProfileByEmail fetches the staff profile joined with its user row.
// Returns apperrors.ErrProfileNotFound when there is no staff row.
func (r *StaffRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Staff, error) {
	query := squirrel.Select(append(staffColumns, "u.name", "u.role")...).
		From("staff s").
		Join("users u ON s.user_id = u.id").
		Where("s.email = ?", email).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	staff, err := scanStaff(r.db.QueryRow(ctx, sql, args...), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return staff, nil
}

// GetByID fetches one staff profile with the user's name and role.
func (r *StaffRepository) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	query := squirrel.Select(append(staffColumns, "u.name", "u.role")...).
		From("staff s").
		Join("users u ON s.user_id = u.id").
		Where("s.id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	staff, err := scanStaff(r.db.QueryRow(ctx, sql, args...), true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return staff, nil
}

// GetEmailByID resolves a staff id to its email.
func (r *StaffRepository) GetEmailByID(ctx context.Context, id int64) (string, error) {
	var email string
	err := r.db.QueryRow(ctx, "SELECT email FROM staff WHERE id = $1", id).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrStaffNotFound
		}
		return "", fmt.Errorf("error executing query: %w", err)
	}
	return email, nil
}

// UpdateProfilePicture stores the uploaded picture path on the staff row.
func (r *StaffRepository) UpdateProfilePicture(ctx context.Context, email, path string) error {
	query := squirrel.Update("staff").
		Set("profile_picture_url", path).
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

// ListByDepartment returns the staff roster of one department ordered by name.
func (r *StaffRepository) ListByDepartment(ctx context.Context, department string) ([]dto.StaffSummary, error) {
	query := squirrel.Select("s.id", "u.name", "s.email", "s.profile_picture_url").
		From("staff s").
		Join("users u ON s.user_id = u.id").
		Where("s.department = ?", department).
		OrderBy("u.name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	summaries := []dto.StaffSummary{}
	for rows.Next() {
		var s dto.StaffSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.ProfilePictureURL); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

// ListBasic returns id/name/email for every staff member, for admin pickers.
func (r *StaffRepository) ListBasic(ctx context.Context) ([]dto.StaffListItem, error) {
	query := squirrel.Select("s.id", "u.name", "u.email").
		From("users u").
		Join("staff s ON u.id = s.user_id").
		OrderBy("u.name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	items := []dto.StaffListItem{}
	for rows.Next() {
		var item dto.StaffListItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Email); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListWithUsers returns all staff profiles with their user role, ordered by
// first name.
func (r *StaffRepository) ListWithUsers(ctx context.Context) ([]models.Staff, error) {
	query := squirrel.Select(append(staffColumns, "u.name", "u.role")...).
		From("staff s").
		Join("users u ON s.user_id = u.id").
		OrderBy("s.first_name").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	staff := []models.Staff{}
	for rows.Next() {
		s, err := scanStaff(rows, true)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		staff = append(staff, *s)
	}
	return staff, rows.Err()
}

// CreateWithUser inserts the user row, then the staff row referencing the
// generated user id, all inside one transaction. A unique violation on
// either insert maps to apperrors.ErrEmailAlreadyExists.
func (r *StaffRepository) CreateWithUser(ctx context.Context, user *models.User, staff *models.Staff) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		userID, err := insertUserTx(ctx, tx, user)
		if err != nil {
			return err
		}

		query := squirrel.Insert("staff").
			Columns("user_id", "prefix", "first_name", "last_name", "gender",
				"date_of_birth", "blood_group", "mobile_number", "marital_status",
				"alternative_mobile_number", "alternative_email", "aadhaar_number",
				"religion", "mother_tongue", "nationality", "state",
				"profile_status", "department", "email").
			Values(userID, staff.Prefix, staff.FirstName, staff.LastName, staff.Gender,
				staff.DateOfBirth, staff.BloodGroup, staff.MobileNumber, staff.MaritalStatus,
				staff.AlternativeMobileNumber, staff.AlternativeEmail, staff.AadhaarNumber,
				staff.Religion, staff.MotherTongue, staff.Nationality, staff.State,
				staff.ProfileStatus, staff.Department, staff.Email).
			Suffix("RETURNING id").
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := query.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if err := tx.QueryRow(ctx, sql, args...).Scan(&staff.ID); err != nil {
			return err
		}
		staff.UserID = userID
		return nil
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateWithUser updates the staff row and its user row in one transaction.
// passwordHash is only applied when non-nil.
func (r *StaffRepository) UpdateWithUser(ctx context.Context, staffID int64, staff *models.Staff, name, role string, passwordHash *string) error {
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		err := tx.QueryRow(ctx, "SELECT user_id FROM staff WHERE id = $1", staffID).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStaffNotFound
			}
			return err
		}

		staffUpdate := squirrel.Update("staff").
			Set("prefix", staff.Prefix).
			Set("first_name", staff.FirstName).
			Set("last_name", staff.LastName).
			Set("gender", staff.Gender).
			Set("date_of_birth", staff.DateOfBirth).
			Set("blood_group", staff.BloodGroup).
			Set("mobile_number", staff.MobileNumber).
			Set("marital_status", staff.MaritalStatus).
			Set("alternative_mobile_number", staff.AlternativeMobileNumber).
			Set("alternative_email", staff.AlternativeEmail).
			Set("aadhaar_number", staff.AadhaarNumber).
			Set("religion", staff.Religion).
			Set("mother_tongue", staff.MotherTongue).
			Set("nationality", staff.Nationality).
			Set("state", staff.State).
			Set("profile_status", staff.ProfileStatus).
			Set("department", staff.Department).
			Set("email", staff.Email).
			Where("id = ?", staffID).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := staffUpdate.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}

		userUpdate := squirrel.Update("users").
			Set("name", name).
			Set("email", staff.Email).
			Set("role", role).
			Where("id = ?", userID).
			PlaceholderFormat(squirrel.Dollar)
		if passwordHash != nil {
			userUpdate = userUpdate.Set("password", *passwordHash)
		}

		sql, args, err = userUpdate.ToSql()
		if err != nil {
			return fmt.Errorf("error building SQL: %w", err)
		}
		if _, err := tx.Exec(ctx, sql, args...); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// DeleteWithUser removes the staff row and its user row in one transaction.
// The cascade is manual: a staff row must never outlive its user or vice versa.
func (r *StaffRepository) DeleteWithUser(ctx context.Context, staffID int64) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var userID int64
		err := tx.QueryRow(ctx, "SELECT user_id FROM staff WHERE id = $1", staffID).Scan(&userID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrStaffNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, "DELETE FROM staff WHERE id = $1", staffID); err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, "DELETE FROM users WHERE id = $1", userID); err != nil {
			return err
		}
		return nil
	})
}
