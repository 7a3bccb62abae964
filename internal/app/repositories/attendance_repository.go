package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/db"
)

// AttendanceRepository handles database operations for attendance records.
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// attendanceUpsert builds the per-record upsert. The conflict target is the
// attendance natural key; a second write for the same key overwrites the
// measurable fields and never creates a duplicate.
func attendanceUpsert(rec models.AttendanceRecord) squirrel.InsertBuilder {
	return squirrel.Insert("attendance").
		Columns("student_reg_no", "staff_id", "attendance_date", "period_number", "status", "reason").
		Values(rec.StudentRegNo, rec.StaffID, rec.AttendanceDate, rec.PeriodNumber, rec.Status, rec.Reason).
		Suffix("ON CONFLICT (student_reg_no, attendance_date, period_number) DO UPDATE SET status = EXCLUDED.status, reason = EXCLUDED.reason").
		PlaceholderFormat(squirrel.Dollar)
}

// SaveBatch applies a batch of attendance records as one transaction.
// Records are applied in input order; the first failing write aborts and
// rolls back the whole batch, so partial application is never observable.
func (r *AttendanceRepository) SaveBatch(ctx context.Context, records []models.AttendanceRecord) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, rec := range records {
			sql, args, err := attendanceUpsert(rec).ToSql()
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

// ListRecent returns attendance rows for the given register numbers over the
// last `days` days, newest first, with the recording staff member's name.
func (r *AttendanceRepository) ListRecent(ctx context.Context, regNos []string, days int) ([]models.AttendanceRecord, error) {
	query := squirrel.Select(
		"a.student_reg_no",
		"to_char(a.attendance_date, 'YYYY-MM-DD')",
		"a.period_number", "a.status", "a.reason",
		"to_char(a.created_at, 'YYYY-MM-DD HH24:MI:SS')",
		"u.name",
	).
		From("attendance a").
		Join("staff s ON a.staff_id = s.id").
		Join("users u ON s.user_id = u.id").
		Where(squirrel.Eq{"a.student_reg_no": regNos}).
		Where(fmt.Sprintf("a.attendance_date >= CURRENT_DATE - INTERVAL '%d days'", days)).
		OrderBy("a.attendance_date DESC", "a.period_number").
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

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var rec models.AttendanceRecord
		err := rows.Scan(&rec.StudentRegNo, &rec.AttendanceDate, &rec.PeriodNumber,
			&rec.Status, &rec.Reason, &rec.CreatedAt, &rec.StaffName)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// StatusRow is a minimal attendance projection for range aggregation.
type StatusRow struct {
	StudentRegNo string
	Status       string
}

// ListStatusInRange returns (register number, status) pairs for the given
// register numbers between fromDate and toDate inclusive.
func (r *AttendanceRepository) ListStatusInRange(ctx context.Context, regNos []string, fromDate, toDate string) ([]StatusRow, error) {
	query := squirrel.Select("student_reg_no", "status").
		From("attendance").
		Where(squirrel.Eq{"student_reg_no": regNos}).
		Where("attendance_date BETWEEN ? AND ?", fromDate, toDate).
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

	statuses := []StatusRow{}
	for rows.Next() {
		var s StatusRow
		if err := rows.Scan(&s.StudentRegNo, &s.Status); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		statuses = append(statuses, s)
	}
	return statuses, rows.Err()
}
