package dto

import (
	"encoding/json"
	"testing"
)

func TestWorkingDayFlagUnmarshal(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{`true`, true, false},
		{`false`, false, false},
		{`1`, true, false},
		{`0`, false, false},
		{`"1"`, true, false},
		{`"0"`, false, false},
		{`"yes"`, false, true},
		{`2`, false, true},
	}

	for _, tt := range tests {
		var flag WorkingDayFlag
		err := json.Unmarshal([]byte(tt.input), &flag)
		if tt.wantErr {
			if err == nil {
				t.Errorf("input %s: expected error, got %v", tt.input, flag)
			}
			continue
		}
		if err != nil {
			t.Errorf("input %s: unexpected error: %v", tt.input, err)
			continue
		}
		if bool(flag) != tt.want {
			t.Errorf("input %s: expected %v, got %v", tt.input, tt.want, flag)
		}
	}
}

func TestCalendarImportEntryUnmarshal(t *testing.T) {
	raw := `{"date":"2025-08-15","is_working_day":"0","activity":"Independence Day"}`

	var entry CalendarImportEntry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Date != "2025-08-15" {
		t.Errorf("unexpected date: %s", entry.Date)
	}
	if entry.IsWorkingDay == nil || bool(*entry.IsWorkingDay) {
		t.Errorf("expected non-working day, got %v", entry.IsWorkingDay)
	}
	if entry.Activity != "Independence Day" {
		t.Errorf("unexpected activity: %s", entry.Activity)
	}

	// A missing flag stays nil so the import can skip the entry.
	var partial CalendarImportEntry
	if err := json.Unmarshal([]byte(`{"date":"2025-08-16"}`), &partial); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if partial.IsWorkingDay != nil {
		t.Errorf("expected nil flag, got %v", partial.IsWorkingDay)
	}
}
