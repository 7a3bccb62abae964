package dto

import "github.com/archiva/campusconnect/internal/app/models"

// StudentPayload carries the editable student fields for admin create/update.
// YearOfStudy arrives as the stored display label ("2nd Year").
type StudentPayload struct {
	StudentName    string `json:"student_name" binding:"required"`
	RegisterNumber string `json:"register_number" binding:"required"`
	RollNumber     string `json:"roll_number" binding:"required"`
	YearOfStudy    string `json:"year_of_study" binding:"required"`
	Department     string `json:"department" binding:"required"`
	Section        string `json:"section" binding:"required"`
	Semester       string `json:"semester"`
	FromYear       string `json:"from_year"`
	ToYear         string `json:"to_year"`
}

// SaveStudentRequest wraps the payload under the key the client sends.
type SaveStudentRequest struct {
	StudentData StudentPayload `json:"studentData" binding:"required"`
}

// StudentsResponse is the payload for student collection reads.
type StudentsResponse struct {
	Envelope
	Students []models.Student `json:"students"`
}

// StudentResponse is the GET /api/admin/students/:id payload.
type StudentResponse struct {
	Envelope
	Student models.Student `json:"student"`
}

// RosterResponse is the payload for roster reads keyed by class.
type RosterResponse struct {
	Envelope
	Students []models.RosterEntry `json:"students"`
}
