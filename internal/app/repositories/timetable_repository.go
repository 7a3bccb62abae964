package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

var timetableColumns = []string{
	"id", "staff_email", "class_name", "course_code", "department", "year",
	"section", "semester", "day_of_week", "start_time", "end_time", "period_number",
}

// weekdayOrder sorts timetable rows Monday-first the way the week is taught.
const weekdayOrder = "array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday','Saturday','Sunday'], day_of_week)"

// TimetableRepository handles database operations for timetable entries.
type TimetableRepository struct {
	db *pgxpool.Pool
}

// NewTimetableRepository creates a new TimetableRepository
func NewTimetableRepository(db *pgxpool.Pool) *TimetableRepository {
	return &TimetableRepository{db: db}
}

func (r *TimetableRepository) queryEntries(ctx context.Context, query squirrel.SelectBuilder) ([]models.TimetableEntry, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	entries := []models.TimetableEntry{}
	for rows.Next() {
		var e models.TimetableEntry
		err := rows.Scan(&e.ID, &e.StaffEmail, &e.ClassName, &e.CourseCode,
			&e.Department, &e.Year, &e.Section, &e.Semester, &e.DayOfWeek,
			&e.StartTime, &e.EndTime, &e.PeriodNumber)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListForStaffDay returns a staff member's periods on one weekday, ordered
// by start time. The stored weekday is matched case-insensitively and
// trimmed, tolerating hand-entered rows.
func (r *TimetableRepository) ListForStaffDay(ctx context.Context, staffEmail, weekday string) ([]models.TimetableEntry, error) {
	query := squirrel.Select(timetableColumns...).
		From("timetables").
		Where("staff_email = ?", staffEmail).
		Where("LOWER(TRIM(day_of_week)) = LOWER(?)", weekday).
		OrderBy("start_time").
		PlaceholderFormat(squirrel.Dollar)
	return r.queryEntries(ctx, query)
}

// ListByStaffEmail returns the full week for a staff member, Monday first.
func (r *TimetableRepository) ListByStaffEmail(ctx context.Context, staffEmail string) ([]models.TimetableEntry, error) {
	query := squirrel.Select(timetableColumns...).
		From("timetables").
		Where("staff_email = ?", staffEmail).
		OrderBy(weekdayOrder, "start_time").
		PlaceholderFormat(squirrel.Dollar)
	return r.queryEntries(ctx, query)
}

// Create inserts a timetable entry.
func (r *TimetableRepository) Create(ctx context.Context, entry *models.TimetableEntry) error {
	query := squirrel.Insert("timetables").
		Columns("staff_email", "class_name", "course_code", "department", "year",
			"section", "semester", "day_of_week", "start_time", "end_time", "period_number").
		Values(entry.StaffEmail, entry.ClassName, entry.CourseCode, entry.Department,
			entry.Year, entry.Section, entry.Semester, entry.DayOfWeek,
			entry.StartTime, entry.EndTime, entry.PeriodNumber).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&entry.ID); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// Update replaces a timetable entry's fields.
func (r *TimetableRepository) Update(ctx context.Context, id int64, entry *models.TimetableEntry) error {
	query := squirrel.Update("timetables").
		Set("staff_email", entry.StaffEmail).
		Set("class_name", entry.ClassName).
		Set("course_code", entry.CourseCode).
		Set("department", entry.Department).
		Set("year", entry.Year).
		Set("section", entry.Section).
		Set("semester", entry.Semester).
		Set("day_of_week", entry.DayOfWeek).
		Set("start_time", entry.StartTime).
		Set("end_time", entry.EndTime).
		Set("period_number", entry.PeriodNumber).
		Where("id = ?", id).
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
		return apperrors.ErrTimetableEntryNotFound
	}
	return nil
}

// Delete removes a timetable entry. Deleting an already-absent id succeeds.
func (r *TimetableRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, "DELETE FROM timetables WHERE id = $1", id); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// DistinctClassesByDepartment lists the year/section pairs taught in a
// department, restricted to the four regular years.
func (r *TimetableRepository) DistinctClassesByDepartment(ctx context.Context, department string) ([]models.ClassGroup, error) {
	query := squirrel.Select("year", "section").
		Distinct().
		From("timetables").
		Where("department = ?", department).
		Where(squirrel.Eq{"year": []string{"1", "2", "3", "4"}}).
		OrderBy("year", "section").
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

	classes := []models.ClassGroup{}
	for rows.Next() {
		var c models.ClassGroup
		if err := rows.Scan(&c.Year, &c.Section); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// DistinctClassesByStaff lists the year/section/department groups a staff
// member teaches.
func (r *TimetableRepository) DistinctClassesByStaff(ctx context.Context, staffEmail string) ([]models.ClassGroup, error) {
	query := squirrel.Select("year", "section", "department").
		Distinct().
		From("timetables").
		Where("staff_email = ?", staffEmail).
		OrderBy("year", "section").
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

	classes := []models.ClassGroup{}
	for rows.Next() {
		var c models.ClassGroup
		if err := rows.Scan(&c.Year, &c.Section, &c.Department); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// DistinctCoursesByStaff lists the class/course pairs a staff member teaches.
func (r *TimetableRepository) DistinctCoursesByStaff(ctx context.Context, staffEmail string) ([]models.CourseAssignment, error) {
	query := squirrel.Select("class_name", "course_code").
		Distinct().
		From("timetables").
		Where("staff_email = ?", staffEmail).
		OrderBy("class_name").
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

	courses := []models.CourseAssignment{}
	for rows.Next() {
		var c models.CourseAssignment
		if err := rows.Scan(&c.ClassName, &c.CourseCode); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}
