package models

// TimetableEntry defines one period of a staff member's weekly timetable.
// Times of day are stored as HH:MM:SS strings.
type TimetableEntry struct {
	ID           int64  `json:"id" db:"id"`
	StaffEmail   string `json:"staff_email" db:"staff_email"`
	ClassName    string `json:"class_name" db:"class_name"`
	CourseCode   string `json:"course_code" db:"course_code"`
	Department   string `json:"department" db:"department"`
	Year         string `json:"year" db:"year"`
	Section      string `json:"section" db:"section"`
	Semester     string `json:"semester" db:"semester"`
	DayOfWeek    string `json:"day_of_week" db:"day_of_week"`
	StartTime    string `json:"start_time" db:"start_time"`
	EndTime      string `json:"end_time" db:"end_time"`
	PeriodNumber int    `json:"period_number" db:"period_number"`

	// Status is computed against the current time of day for the today
	// view; it is never persisted.
	Status string `json:"status,omitempty"`
}

// ClassGroup is a distinct year/section (optionally department) grouping
// derived from timetable rows.
type ClassGroup struct {
	Year       string `json:"year" db:"year"`
	Section    string `json:"section" db:"section"`
	Department string `json:"department,omitempty" db:"department"`
}

// CourseAssignment is a distinct class/course pairing a staff member teaches.
type CourseAssignment struct {
	ClassName  string `json:"class_name" db:"class_name"`
	CourseCode string `json:"course_code" db:"course_code"`
}
