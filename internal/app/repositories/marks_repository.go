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

// MarksRepository handles database operations for internal marks.
type MarksRepository struct {
	db *pgxpool.Pool
}

// NewMarksRepository creates a new MarksRepository
func NewMarksRepository(db *pgxpool.Pool) *MarksRepository {
	return &MarksRepository{db: db}
}

// marksUpsert builds the per-student upsert keyed on the register number.
func marksUpsert(m models.InternalMarks) squirrel.InsertBuilder {
	return squirrel.Insert("internal_marks").
		Columns("student_reg_no", "year", "section", "department",
			"cat1_marks", "cat2_marks", "sac1_marks", "sac2_marks",
			"sac3_marks", "sac4_marks", "sac5_marks", "internal_total").
		Values(m.StudentRegNo, m.Year, m.Section, m.Department,
			m.Cat1Marks, m.Cat2Marks, m.Sac1Marks, m.Sac2Marks,
			m.Sac3Marks, m.Sac4Marks, m.Sac5Marks, m.InternalTotal).
		Suffix("ON CONFLICT (student_reg_no) DO UPDATE SET " +
			"cat1_marks = EXCLUDED.cat1_marks, cat2_marks = EXCLUDED.cat2_marks, " +
			"sac1_marks = EXCLUDED.sac1_marks, sac2_marks = EXCLUDED.sac2_marks, " +
			"sac3_marks = EXCLUDED.sac3_marks, sac4_marks = EXCLUDED.sac4_marks, " +
			"sac5_marks = EXCLUDED.sac5_marks, internal_total = EXCLUDED.internal_total").
		PlaceholderFormat(squirrel.Dollar)
}

// SaveBatch applies a batch of marks rows as one all-or-nothing transaction.
func (r *MarksRepository) SaveBatch(ctx context.Context, batch []models.InternalMarks) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, m := range batch {
			sql, args, err := marksUpsert(m).ToSql()
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

// RosterWithMarks returns the class roster left-joined with each student's
// marks row, in roster order. Students with no marks row yet get a nil Marks.
func (r *MarksRepository) RosterWithMarks(ctx context.Context, department, yearLabel, section string) ([]models.MarksRosterRow, error) {
	query := squirrel.Select(
		"s.student_name", "s.register_number",
		"m.id", "m.student_reg_no", "m.year", "m.section", "m.department",
		"m.cat1_marks", "m.cat2_marks", "m.sac1_marks", "m.sac2_marks",
		"m.sac3_marks", "m.sac4_marks", "m.sac5_marks", "m.internal_total",
	).
		From("students s").
		LeftJoin("internal_marks m ON s.register_number = m.student_reg_no").
		Where("s.department = ?", department).
		Where("s.year_of_study = ?", yearLabel).
		Where("s.section = ?", section).
		OrderBy("RIGHT(s.register_number, 3)").
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

	roster := []models.MarksRosterRow{}
	for rows.Next() {
		var row models.MarksRosterRow
		var (
			id           *int64
			studentRegNo *string
			year         *string
			section      *string
			department   *string
		)
		m := models.InternalMarks{}
		err := rows.Scan(&row.StudentName, &row.RegisterNumber,
			&id, &studentRegNo, &year, &section, &department,
			&m.Cat1Marks, &m.Cat2Marks, &m.Sac1Marks, &m.Sac2Marks,
			&m.Sac3Marks, &m.Sac4Marks, &m.Sac5Marks, &m.InternalTotal)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		if id != nil {
			m.ID = *id
			m.StudentRegNo = *studentRegNo
			m.Year = *year
			m.Section = *section
			m.Department = *department
			row.Marks = &m
		}
		roster = append(roster, row)
	}
	return roster, rows.Err()
}
