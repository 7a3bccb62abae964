package dto

import "github.com/archiva/campusconnect/internal/app/models"

// StudentMarksEntry is one student's marks in a batch save. Mark fields are
// pointers so an unassessed component stays NULL instead of becoming zero.
type StudentMarksEntry struct {
	RegNo         string   `json:"reg_no"`
	Cat1Marks     *float64 `json:"cat1_marks"`
	Cat2Marks     *float64 `json:"cat2_marks"`
	Sac1Marks     *float64 `json:"sac1_marks"`
	Sac2Marks     *float64 `json:"sac2_marks"`
	Sac3Marks     *float64 `json:"sac3_marks"`
	Sac4Marks     *float64 `json:"sac4_marks"`
	Sac5Marks     *float64 `json:"sac5_marks"`
	InternalTotal *float64 `json:"internal_total"`
}

// MarksSaveRequest is the POST /api/marks/save body. Year arrives numeric
// ("2") and is stored as-is on the marks row, matching the existing data.
type MarksSaveRequest struct {
	MarksData  []StudentMarksEntry `json:"marksData"`
	Year       string              `json:"year" binding:"required"`
	Section    string              `json:"section" binding:"required"`
	Department string              `json:"department" binding:"required"`
}

// MarksRosterResponse is the GET /api/marks/:department/:year/:section payload.
type MarksRosterResponse struct {
	Envelope
	Students []models.MarksRosterRow `json:"students"`
}
