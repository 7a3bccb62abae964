package repositories

import (
	"strings"
	"testing"

	"github.com/archiva/campusconnect/internal/app/models"
)

func TestAttendanceUpsertSQL(t *testing.T) {
	rec := models.AttendanceRecord{
		StudentRegNo:   "611220104001",
		StaffID:        7,
		AttendanceDate: "2025-07-01",
		PeriodNumber:   3,
		Status:         "Absent",
		Reason:         "Medical",
	}

	sql, args, err := attendanceUpsert(rec).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(sql, "ON CONFLICT (student_reg_no, attendance_date, period_number)") {
		t.Errorf("missing natural-key conflict target: %s", sql)
	}
	if !strings.Contains(sql, "status = EXCLUDED.status") || !strings.Contains(sql, "reason = EXCLUDED.reason") {
		t.Errorf("overwrite clause incomplete: %s", sql)
	}
	if !strings.Contains(sql, "$6") {
		t.Errorf("expected dollar placeholders: %s", sql)
	}
	if len(args) != 6 {
		t.Errorf("expected 6 args, got %d", len(args))
	}
}

func TestMarksUpsertSQL(t *testing.T) {
	cat1 := 42.5
	m := models.InternalMarks{
		StudentRegNo: "611220104001",
		Year:         "2",
		Section:      "A",
		Department:   "CSE",
		Cat1Marks:    &cat1,
	}

	sql, args, err := marksUpsert(m).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(sql, "ON CONFLICT (student_reg_no)") {
		t.Errorf("missing register-number conflict target: %s", sql)
	}
	for _, col := range []string{"cat1_marks", "cat2_marks", "sac5_marks", "internal_total"} {
		if !strings.Contains(sql, col+" = EXCLUDED."+col) {
			t.Errorf("column %s not overwritten on conflict: %s", col, sql)
		}
	}
	if len(args) != 12 {
		t.Errorf("expected 12 args, got %d", len(args))
	}
	// Unassessed components travel as nil pointers so they stay NULL.
	if v, ok := args[5].(*float64); !ok || v != nil {
		t.Errorf("expected nil for unset mark, got %v", args[5])
	}
}

func TestCalendarUpsertSQL(t *testing.T) {
	day := models.CalendarDay{
		CalendarDate:        "2025-08-15",
		IsWorkingDay:        false,
		ActivityDescription: "Independence Day",
	}

	sql, args, err := calendarUpsert(day).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(sql, "ON CONFLICT (calendar_date)") {
		t.Errorf("missing date conflict target: %s", sql)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d", len(args))
	}
}

func TestPushSubscriptionUpsertSQL(t *testing.T) {
	sql, args, err := pushSubscriptionUpsert("https://push.example/ep1", `{"endpoint":"https://push.example/ep1"}`).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(sql, "ON CONFLICT (endpoint) DO UPDATE SET subscription = EXCLUDED.subscription") {
		t.Errorf("missing endpoint conflict clause: %s", sql)
	}
	if len(args) != 2 {
		t.Errorf("expected 2 args, got %d", len(args))
	}
}
