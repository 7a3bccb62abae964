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
)

// CalendarRepository handles database operations for the academic calendar.
// The table is sparse: dates without a row are implicit working days.
type CalendarRepository struct {
	db *pgxpool.Pool
}

// NewCalendarRepository creates a new CalendarRepository
func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// calendarUpsert builds the per-day upsert keyed on the calendar date.
func calendarUpsert(day models.CalendarDay) squirrel.InsertBuilder {
	return squirrel.Insert("academic_calendar").
		Columns("calendar_date", "is_working_day", "activity_description").
		Values(day.CalendarDate, day.IsWorkingDay, day.ActivityDescription).
		Suffix("ON CONFLICT (calendar_date) DO UPDATE SET " +
			"is_working_day = EXCLUDED.is_working_day, " +
			"activity_description = EXCLUDED.activity_description").
		PlaceholderFormat(squirrel.Dollar)
}

// Upsert writes one calendar day, overwriting any existing entry for the date.
func (r *CalendarRepository) Upsert(ctx context.Context, day models.CalendarDay) error {
	sql, args, err := calendarUpsert(day).ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	return nil
}

// BulkUpsert applies a calendar import as one all-or-nothing transaction.
func (r *CalendarRepository) BulkUpsert(ctx context.Context, days []models.CalendarDay) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, day := range days {
			sql, args, err := calendarUpsert(day).ToSql()
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

func (r *CalendarRepository) queryDays(ctx context.Context, query squirrel.SelectBuilder) ([]models.CalendarDay, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	days := []models.CalendarDay{}
	for rows.Next() {
		var d models.CalendarDay
		if err := rows.Scan(&d.CalendarDate, &d.IsWorkingDay, &d.ActivityDescription); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		days = append(days, d)
	}
	return days, rows.Err()
}

// ListMonth returns the explicit entries of one calendar month.
func (r *CalendarRepository) ListMonth(ctx context.Context, year, month int) ([]models.CalendarDay, error) {
	query := squirrel.Select("to_char(calendar_date, 'YYYY-MM-DD')", "is_working_day", "activity_description").
		From("academic_calendar").
		Where("EXTRACT(YEAR FROM calendar_date) = ?", year).
		Where("EXTRACT(MONTH FROM calendar_date) = ?", month).
		OrderBy("calendar_date").
		PlaceholderFormat(squirrel.Dollar)
	return r.queryDays(ctx, query)
}

// GetDay returns the entry for one date, or nil when the date has no row
// (an implicit working day, not an error).
func (r *CalendarRepository) GetDay(ctx context.Context, date string) (*models.CalendarDay, error) {
	query := squirrel.Select("to_char(calendar_date, 'YYYY-MM-DD')", "is_working_day", "activity_description").
		From("academic_calendar").
		Where("calendar_date = ?", date).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	var d models.CalendarDay
	err = r.db.QueryRow(ctx, sql, args...).Scan(&d.CalendarDate, &d.IsWorkingDay, &d.ActivityDescription)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &d, nil
}

// ListNonWorkingInRange returns the non-working days between fromDate and
// toDate inclusive.
func (r *CalendarRepository) ListNonWorkingInRange(ctx context.Context, fromDate, toDate string) ([]models.CalendarDay, error) {
	query := squirrel.Select("to_char(calendar_date, 'YYYY-MM-DD')", "is_working_day", "activity_description").
		From("academic_calendar").
		Where("calendar_date BETWEEN ? AND ?", fromDate, toDate).
		Where("is_working_day = FALSE").
		OrderBy("calendar_date").
		PlaceholderFormat(squirrel.Dollar)
	return r.queryDays(ctx, query)
}
