package dto

import "github.com/archiva/campusconnect/internal/app/models"

// LessonPlanFilesResponse is the GET /api/lesson-plans/:course_code payload.
type LessonPlanFilesResponse struct {
	Envelope
	Files []models.LessonPlan `json:"files"`
}
