package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
	"github.com/archiva/campusconnect/internal/pkg/dberrors"
)

var studentColumns = []string{
	"id", "student_name", "register_number", "roll_number", "year_of_study",
	"department", "section", "semester", "from_year", "to_year",
}

// rosterOrder sorts by the trailing three digits of the register number, the
// order class lists are taken in.
const rosterOrder = "RIGHT(register_number, 3)"

// StudentRepository handles database operations for students.
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var s models.Student
	err := row.Scan(&s.ID, &s.StudentName, &s.RegisterNumber, &s.RollNumber,
		&s.YearOfStudy, &s.Department, &s.Section, &s.Semester, &s.FromYear, &s.ToYear)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StudentRepository) queryStudents(ctx context.Context, query squirrel.SelectBuilder) ([]models.Student, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		students = append(students, *s)
	}
	return students, rows.Err()
}

// List returns every student in roster order.
func (r *StudentRepository) List(ctx context.Context) ([]models.Student, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		OrderBy(rosterOrder).
		PlaceholderFormat(squirrel.Dollar)
	return r.queryStudents(ctx, query)
}

// ListByClass returns the students of one year/section. yearLabel is the
// stored display label ("2nd Year").
func (r *StudentRepository) ListByClass(ctx context.Context, yearLabel, section string) ([]models.Student, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		Where("year_of_study = ?", yearLabel).
		Where("section = ?", section).
		OrderBy(rosterOrder).
		PlaceholderFormat(squirrel.Dollar)
	return r.queryStudents(ctx, query)
}

// GetRoster returns the name/register-number roster of one class.
func (r *StudentRepository) GetRoster(ctx context.Context, department, yearLabel, section string) ([]models.RosterEntry, error) {
	query := squirrel.Select("student_name", "register_number").
		From("students").
		Where("department = ?", department).
		Where("year_of_study = ?", yearLabel).
		Where("section = ?", section).
		OrderBy(rosterOrder).
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

	roster := []models.RosterEntry{}
	for rows.Next() {
		var e models.RosterEntry
		if err := rows.Scan(&e.StudentName, &e.RegisterNumber); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

// GetByID fetches one student.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := squirrel.Select(studentColumns...).
		From("students").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return student, nil
}

// Create inserts a student. A duplicate register or roll number maps to
// apperrors.ErrStudentNumberExists and leaves the existing row unchanged.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := squirrel.Insert("students").
		Columns("student_name", "register_number", "roll_number", "year_of_study",
			"department", "section", "semester", "from_year", "to_year").
		Values(student.StudentName, student.RegisterNumber, student.RollNumber,
			student.YearOfStudy, student.Department, student.Section,
			student.Semester, student.FromYear, student.ToYear).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Update replaces a student's editable fields.
func (r *StudentRepository) Update(ctx context.Context, id int64, student *models.Student) error {
	query := squirrel.Update("students").
		Set("student_name", student.StudentName).
		Set("register_number", student.RegisterNumber).
		Set("roll_number", student.RollNumber).
		Set("year_of_study", student.YearOfStudy).
		Set("department", student.Department).
		Set("section", student.Section).
		Set("semester", student.Semester).
		Set("from_year", student.FromYear).
		Set("to_year", student.ToYear).
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	result, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}
