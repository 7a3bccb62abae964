package dto

import "github.com/archiva/campusconnect/internal/app/models"

// AttendanceEntry is one record of a batch attendance save.
type AttendanceEntry struct {
	StudentRegNo   string `json:"student_reg_no" binding:"required"`
	StaffID        int64  `json:"staff_id" binding:"required"`
	AttendanceDate string `json:"attendance_date" binding:"required"`
	PeriodNumber   int    `json:"period_number" binding:"required"`
	Status         string `json:"status" binding:"required"`
	Reason         string `json:"reason"`
}

// AttendanceSaveRequest is the POST /api/attendance/save body.
type AttendanceSaveRequest struct {
	AttendanceData []AttendanceEntry `json:"attendanceData"`
}

// HODAttendanceResponse is the recent-attendance view for a class.
type HODAttendanceResponse struct {
	Envelope
	Students   []models.RosterEntry      `json:"students"`
	Attendance []models.AttendanceRecord `json:"attendance"`
}

// AttendanceReportResponse is the date-range report payload. Holidays are
// the non-working calendar days inside the range, for display context.
type AttendanceReportResponse struct {
	Envelope
	Report   []models.AttendanceReportRow `json:"report"`
	Holidays []models.CalendarDay         `json:"holidays"`
}
