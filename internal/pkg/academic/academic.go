// Package academic holds the small domain conventions shared across the
// registry: the stored year-of-study labels and period time windows.
package academic

import (
	"fmt"
	"time"
)

// Period status values as reported on timetable entries.
const (
	StatusCompleted = "Completed"
	StatusOngoing   = "Ongoing"
	StatusUpcoming  = "Upcoming"
)

// Attendance status values stored per period.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceOnDuty  = "On Duty"
)

var yearLabels = map[string]string{
	"1": "1st Year",
	"2": "2nd Year",
	"3": "3rd Year",
	"4": "4th Year",
}

// YearLabel maps a numeric year parameter to the display label stored in the
// students table ("2" -> "2nd Year"). Years outside 1-4 fall back to the
// generated "Nth Year" form; the roster lookup then simply matches nothing.
func YearLabel(year string) string {
	if label, ok := yearLabels[year]; ok {
		return label
	}
	return fmt.Sprintf("%sth Year", year)
}

// PeriodStatus classifies a period window against the current time of day.
// Boundary times count as Ongoing; anything past the end time is Completed.
// start and end are stored as HH:MM or HH:MM:SS strings.
func PeriodStatus(now time.Time, start, end string) string {
	startSec, err := clockSeconds(start)
	if err != nil {
		return StatusUpcoming
	}
	endSec, err := clockSeconds(end)
	if err != nil {
		return StatusUpcoming
	}

	nowSec := now.Hour()*3600 + now.Minute()*60 + now.Second()
	switch {
	case nowSec > endSec:
		return StatusCompleted
	case nowSec >= startSec:
		return StatusOngoing
	default:
		return StatusUpcoming
	}
}

// clockSeconds parses an HH:MM[:SS] string into seconds since midnight.
func clockSeconds(clock string) (int, error) {
	var h, m, s int
	if _, err := fmt.Sscanf(clock, "%d:%d:%d", &h, &m, &s); err != nil {
		s = 0
		if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("invalid clock value %q", clock)
		}
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || s < 0 || s > 59 {
		return 0, fmt.Errorf("clock value %q out of range", clock)
	}
	return h*3600 + m*60 + s, nil
}
