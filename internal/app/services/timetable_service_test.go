package services

import (
	"context"
	"testing"
	"time"
)

// Sundays return an empty timetable before any lookup happens, so a calendar
// row marking the date as working changes nothing. The zero-value repos prove
// neither is reached.
func TestTodayForStaffSundayIsEmpty(t *testing.T) {
	sunday := time.Date(2025, time.August, 3, 10, 30, 0, 0, time.UTC)
	svc := &TimetableService{now: func() time.Time { return sunday }}

	entries, err := svc.TodayForStaff(context.Background(), "staff@campus.local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries on a Sunday, want 0", len(entries))
	}
}
