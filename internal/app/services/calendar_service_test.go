package services

import (
	"context"
	"testing"

	"github.com/archiva/campusconnect/internal/app/models/dto"
)

func TestCalendarUpsertValidation(t *testing.T) {
	svc := &CalendarService{}
	flag := dto.WorkingDayFlag(false)

	tests := []struct {
		name string
		req  dto.CalendarUpdateRequest
	}{
		{"missing date", dto.CalendarUpdateRequest{IsWorkingDay: &flag}},
		{"missing flag", dto.CalendarUpdateRequest{CalendarDate: "2025-08-15"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Upsert(context.Background(), tt.req); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// An import where every entry is missing a required field writes nothing and
// succeeds with a zero count. The zero-value service proves the repository is
// never reached.
func TestCalendarBulkImportAllMalformedIsNoOp(t *testing.T) {
	svc := &CalendarService{}
	flag := dto.WorkingDayFlag(true)

	entries := []dto.CalendarImportEntry{
		{Date: "", IsWorkingDay: &flag, Activity: "Reopening Day"},
		{Date: "2025-06-02", IsWorkingDay: nil, Activity: "Classes Begin"},
		{Date: "2025-06-03", IsWorkingDay: &flag, Activity: "  "},
	}

	count, err := svc.BulkImport(context.Background(), entries)
	if err != nil {
		t.Errorf("all-skipped import: unexpected error %v", err)
	}
	if count != 0 {
		t.Errorf("all-skipped import: got count %d, want 0", count)
	}
}
