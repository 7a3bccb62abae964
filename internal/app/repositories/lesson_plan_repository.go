package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/db"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

// LessonPlanRepository handles database operations for lesson plan files.
type LessonPlanRepository struct {
	db *pgxpool.Pool
}

// NewLessonPlanRepository creates a new LessonPlanRepository
func NewLessonPlanRepository(db *pgxpool.Pool) *LessonPlanRepository {
	return &LessonPlanRepository{db: db}
}

// CreateBatch records a multi-file upload as one transaction so a failed
// insert never leaves a partial upload visible.
func (r *LessonPlanRepository) CreateBatch(ctx context.Context, plans []models.LessonPlan) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, plan := range plans {
			query := squirrel.Insert("lesson_plans").
				Columns("staff_id", "course_code", "file_name", "file_path").
				Values(plan.StaffID, plan.CourseCode, plan.FileName, plan.FilePath).
				PlaceholderFormat(squirrel.Dollar)

			sql, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("error building SQL: %w", err)
			}
			if _, err := tx.Exec(ctx, sql, args...); err != nil {
				return err
			}
		}
		return nil
	})
}

// ListByStaffCourse returns a staff member's files for one course, newest first.
func (r *LessonPlanRepository) ListByStaffCourse(ctx context.Context, staffID int64, courseCode string) ([]models.LessonPlan, error) {
	query := squirrel.Select("id", "staff_id", "course_code", "file_name", "file_path", "uploaded_at").
		From("lesson_plans").
		Where("staff_id = ?", staffID).
		Where("course_code = ?", courseCode).
		OrderBy("uploaded_at DESC").
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

	plans := []models.LessonPlan{}
	for rows.Next() {
		var p models.LessonPlan
		if err := rows.Scan(&p.ID, &p.StaffID, &p.CourseCode, &p.FileName, &p.FilePath, &p.UploadedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}

// GetByID fetches one lesson plan row.
func (r *LessonPlanRepository) GetByID(ctx context.Context, id int64) (*models.LessonPlan, error) {
	query := squirrel.Select("id", "staff_id", "course_code", "file_name", "file_path", "uploaded_at").
		From("lesson_plans").
		Where("id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var p models.LessonPlan
	err = r.db.QueryRow(ctx, sql, args...).Scan(&p.ID, &p.StaffID, &p.CourseCode, &p.FileName, &p.FilePath, &p.UploadedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLessonPlanNotFound
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &p, nil
}

// Delete removes a lesson plan row.
func (r *LessonPlanRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM lesson_plans WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrLessonPlanNotFound
	}
	return nil
}
