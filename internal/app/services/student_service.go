package services

import (
	"context"
	"strings"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/academic"
)

// StudentService handles student record management and class rosters.
type StudentService struct {
	studentRepo *repositories.StudentRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo *repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func studentFromPayload(payload dto.StudentPayload) *models.Student {
	return &models.Student{
		StudentName:    strings.TrimSpace(payload.StudentName),
		RegisterNumber: strings.TrimSpace(payload.RegisterNumber),
		RollNumber:     strings.TrimSpace(payload.RollNumber),
		YearOfStudy:    payload.YearOfStudy,
		Department:     payload.Department,
		Section:        payload.Section,
		Semester:       payload.Semester,
		FromYear:       payload.FromYear,
		ToYear:         payload.ToYear,
	}
}

// List returns every student ordered by register number suffix.
func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.List(ctx)
}

// ListByClass returns the students of one year/section. The year arrives
// numeric and is matched against the stored display label.
func (s *StudentService) ListByClass(ctx context.Context, year, section string) ([]models.Student, error) {
	return s.studentRepo.ListByClass(ctx, academic.YearLabel(year), section)
}

// GetRoster returns the slim name/register-number roster for a class.
func (s *StudentService) GetRoster(ctx context.Context, department, year, section string) ([]models.RosterEntry, error) {
	return s.studentRepo.GetRoster(ctx, department, academic.YearLabel(year), section)
}

// GetByID returns one student record.
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

// Create adds a student record.
func (s *StudentService) Create(ctx context.Context, payload dto.StudentPayload) (*models.Student, error) {
	student := studentFromPayload(payload)
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update rewrites a student record.
func (s *StudentService) Update(ctx context.Context, id int64, payload dto.StudentPayload) error {
	return s.studentRepo.Update(ctx, id, studentFromPayload(payload))
}

// Delete removes a student record. Attendance and marks rows keyed by the
// register number are left in place.
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.studentRepo.Delete(ctx, id)
}
