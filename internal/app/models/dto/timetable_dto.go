package dto

import "github.com/archiva/campusconnect/internal/app/models"

// TimetableEntryRequest is the admin create/update body for one period.
type TimetableEntryRequest struct {
	StaffEmail   string `json:"staff_email" binding:"required,email"`
	ClassName    string `json:"class_name" binding:"required"`
	CourseCode   string `json:"course_code" binding:"required"`
	Department   string `json:"department"`
	Year         string `json:"year"`
	Section      string `json:"section"`
	Semester     string `json:"semester"`
	DayOfWeek    string `json:"day_of_week" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	PeriodNumber int    `json:"period_number"`
}

// TodayTimetableResponse is the GET /api/staff/timetables/today payload.
type TodayTimetableResponse struct {
	Envelope
	TodayTimetable []models.TimetableEntry `json:"todayTimetable"`
}

// TimetableResponse is the admin per-staff timetable payload.
type TimetableResponse struct {
	Envelope
	Timetable []models.TimetableEntry `json:"timetable"`
}

// ClassesResponse lists distinct class groups.
type ClassesResponse struct {
	Envelope
	Classes []models.ClassGroup `json:"classes"`
}

// CoursesResponse lists distinct course assignments.
type CoursesResponse struct {
	Envelope
	Courses []models.CourseAssignment `json:"courses"`
}
