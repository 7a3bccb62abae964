package services

import (
	"context"
	"strings"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/academic"
)

// MarksService handles internal assessment marks.
type MarksService struct {
	marksRepo   *repositories.MarksRepository
	studentRepo *repositories.StudentRepository
}

// NewMarksService creates a new MarksService
func NewMarksService(marksRepo *repositories.MarksRepository, studentRepo *repositories.StudentRepository) *MarksService {
	return &MarksService{marksRepo: marksRepo, studentRepo: studentRepo}
}

// SaveBatch upserts the class's marks rows in one transaction. Entries with
// a blank register number are skipped rather than failing the batch; a batch
// where nothing survives is a no-op success.
func (s *MarksService) SaveBatch(ctx context.Context, req dto.MarksSaveRequest) error {
	batch := make([]models.InternalMarks, 0, len(req.MarksData))
	for _, e := range req.MarksData {
		regNo := strings.TrimSpace(e.RegNo)
		if regNo == "" {
			continue
		}
		batch = append(batch, models.InternalMarks{
			StudentRegNo:  regNo,
			Year:          req.Year,
			Section:       req.Section,
			Department:    req.Department,
			Cat1Marks:     e.Cat1Marks,
			Cat2Marks:     e.Cat2Marks,
			Sac1Marks:     e.Sac1Marks,
			Sac2Marks:     e.Sac2Marks,
			Sac3Marks:     e.Sac3Marks,
			Sac4Marks:     e.Sac4Marks,
			Sac5Marks:     e.Sac5Marks,
			InternalTotal: e.InternalTotal,
		})
	}
	if len(batch) == 0 {
		return nil
	}

	return s.marksRepo.SaveBatch(ctx, batch)
}

// Roster returns the class roster joined with each student's marks row, if
// one exists.
func (s *MarksService) Roster(ctx context.Context, department, year, section string) ([]models.MarksRosterRow, error) {
	return s.marksRepo.RosterWithMarks(ctx, department, academic.YearLabel(year), section)
}
