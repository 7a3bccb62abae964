package models

import "time"

// LessonPlan defines an uploaded lesson plan file owned by a staff member.
type LessonPlan struct {
	ID         int64     `json:"id" db:"id"`
	StaffID    int64     `json:"staff_id" db:"staff_id"`
	CourseCode string    `json:"course_code" db:"course_code"`
	FileName   string    `json:"file_name" db:"file_name"`
	FilePath   string    `json:"file_path" db:"file_path"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}
