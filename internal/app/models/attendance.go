package models

// AttendanceRecord defines one student-period attendance entry. The natural
// key is (student_reg_no, attendance_date, period_number); a second save for
// the same key overwrites status and reason.
type AttendanceRecord struct {
	ID            int64  `json:"id,omitempty" db:"id"`
	StudentRegNo  string `json:"student_reg_no" db:"student_reg_no"`
	StaffID       int64  `json:"staff_id" db:"staff_id"`
	AttendanceDate string `json:"attendance_date" db:"attendance_date"` // YYYY-MM-DD
	PeriodNumber  int    `json:"period_number" db:"period_number"`
	Status        string `json:"status" db:"status"` // Present, Absent, On Duty
	Reason        string `json:"reason" db:"reason"`

	// Joined fields for the HOD view.
	CreatedAt string `json:"created_at,omitempty"`
	StaffName string `json:"staff_name,omitempty"`
}

// AttendanceReportRow is the per-student aggregation over a date range.
// On-duty periods are excluded from the percentage denominator.
type AttendanceReportRow struct {
	StudentName          string `json:"student_name"`
	RegisterNumber       string `json:"register_number"`
	PresentCount         int    `json:"present_count"`
	AbsentCount          int    `json:"absent_count"`
	OnDutyCount          int    `json:"onduty_count"`
	AttendancePercentage string `json:"attendance_percentage"`
}
