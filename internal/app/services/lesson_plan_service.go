package services

import (
	"context"
	"mime/multipart"

	"github.com/rs/zerolog"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
	"github.com/archiva/campusconnect/internal/pkg/filestorage"
)

// LessonPlanService handles lesson plan file uploads and retrieval.
type LessonPlanService struct {
	lessonPlanRepo *repositories.LessonPlanRepository
	fileStorage    filestorage.Storage
	logger         zerolog.Logger
}

// NewLessonPlanService creates a new LessonPlanService
func NewLessonPlanService(
	lessonPlanRepo *repositories.LessonPlanRepository,
	fileStorage filestorage.Storage,
	logger zerolog.Logger,
) *LessonPlanService {
	return &LessonPlanService{
		lessonPlanRepo: lessonPlanRepo,
		fileStorage:    fileStorage,
		logger:         logger,
	}
}

// Upload stores the files on disk and records them in one transaction. If
// the insert fails the saved files are removed again.
func (s *LessonPlanService) Upload(ctx context.Context, staffID int64, courseCode string, files []*multipart.FileHeader) ([]models.LessonPlan, error) {
	if len(files) == 0 {
		return nil, apperrors.NewBadRequestError("No files uploaded")
	}

	plans := make([]models.LessonPlan, 0, len(files))
	saved := make([]string, 0, len(files))
	for _, file := range files {
		path, err := s.fileStorage.SaveFile(file)
		if err != nil {
			s.cleanup(saved)
			return nil, err
		}
		saved = append(saved, path)
		plans = append(plans, models.LessonPlan{
			StaffID:    staffID,
			CourseCode: courseCode,
			FileName:   file.Filename,
			FilePath:   path,
		})
	}

	if err := s.lessonPlanRepo.CreateBatch(ctx, plans); err != nil {
		s.cleanup(saved)
		return nil, err
	}
	return plans, nil
}

func (s *LessonPlanService) cleanup(paths []string) {
	for _, path := range paths {
		if err := s.fileStorage.DeleteFile(path); err != nil {
			s.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove orphaned upload")
		}
	}
}

// List returns a staff member's files for one course, newest first.
func (s *LessonPlanService) List(ctx context.Context, staffID int64, courseCode string) ([]models.LessonPlan, error) {
	return s.lessonPlanRepo.ListByStaffCourse(ctx, staffID, courseCode)
}

// Delete removes the record and then the file from disk. A failure to unlink
// the file is logged but does not fail the delete.
func (s *LessonPlanService) Delete(ctx context.Context, id int64) error {
	plan, err := s.lessonPlanRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.lessonPlanRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.fileStorage.DeleteFile(plan.FilePath); err != nil {
		s.logger.Warn().Err(err).Str("path", plan.FilePath).Msg("Failed to remove lesson plan file")
	}
	return nil
}
