package academic

import (
	"testing"
	"time"
)

func TestYearLabel(t *testing.T) {
	tests := []struct {
		year string
		want string
	}{
		{year: "1", want: "1st Year"},
		{year: "2", want: "2nd Year"},
		{year: "3", want: "3rd Year"},
		{year: "4", want: "4th Year"},
		{year: "5", want: "5th Year"},
		{year: "7", want: "7th Year"},
	}
	for _, tt := range tests {
		t.Run(tt.year, func(t *testing.T) {
			if got := YearLabel(tt.year); got != tt.want {
				t.Errorf("YearLabel(%q) = %q, want %q", tt.year, got, tt.want)
			}
		})
	}
}

func TestPeriodStatus(t *testing.T) {
	at := func(clock string) time.Time {
		parsed, err := time.Parse("15:04:05", clock)
		if err != nil {
			t.Fatalf("bad test clock %q: %v", clock, err)
		}
		return parsed
	}

	tests := []struct {
		name  string
		now   string
		start string
		end   string
		want  string
	}{
		{name: "inside window", now: "09:30:00", start: "09:00:00", end: "10:00:00", want: StatusOngoing},
		{name: "end boundary is ongoing", now: "10:00:00", start: "09:00:00", end: "10:00:00", want: StatusOngoing},
		{name: "start boundary is ongoing", now: "09:00:00", start: "09:00:00", end: "10:00:00", want: StatusOngoing},
		{name: "just past end", now: "10:00:01", start: "09:00:00", end: "10:00:00", want: StatusCompleted},
		{name: "just before start", now: "08:59:00", start: "09:00:00", end: "10:00:00", want: StatusUpcoming},
		{name: "minute precision times", now: "10:01:00", start: "09:00", end: "10:00", want: StatusCompleted},
		{name: "unparseable window", now: "09:30:00", start: "morning", end: "noon", want: StatusUpcoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PeriodStatus(at(tt.now), tt.start, tt.end); got != tt.want {
				t.Errorf("PeriodStatus(%s, %s, %s) = %q, want %q", tt.now, tt.start, tt.end, got, tt.want)
			}
		})
	}
}
