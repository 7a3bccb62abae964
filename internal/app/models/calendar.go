package models

// CalendarDay defines one academic calendar entry. The table is sparse:
// a date with no row is a working day with no activity.
type CalendarDay struct {
	CalendarDate        string `json:"calendar_date" db:"calendar_date"` // YYYY-MM-DD
	IsWorkingDay        bool   `json:"is_working_day" db:"is_working_day"`
	ActivityDescription string `json:"activity_description" db:"activity_description"`
}

// DefaultCalendarDay synthesizes the implicit entry for a date with no row.
func DefaultCalendarDay(date string) CalendarDay {
	return CalendarDay{
		CalendarDate:        date,
		IsWorkingDay:        true,
		ActivityDescription: "",
	}
}
