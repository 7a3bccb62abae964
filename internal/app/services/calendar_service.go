package services

import (
	"context"
	"strings"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

// CalendarService handles the academic calendar.
type CalendarService struct {
	calendarRepo *repositories.CalendarRepository
}

// NewCalendarService creates a new CalendarService
func NewCalendarService(calendarRepo *repositories.CalendarRepository) *CalendarService {
	return &CalendarService{calendarRepo: calendarRepo}
}

// Month returns a month's calendar entries. Dates without a row are implicit
// working days and are not listed.
func (s *CalendarService) Month(ctx context.Context, year, month int) ([]models.CalendarDay, error) {
	return s.calendarRepo.ListMonth(ctx, year, month)
}

// Day returns one date's entry, synthesizing the default working day when no
// row exists.
func (s *CalendarService) Day(ctx context.Context, date string) (models.CalendarDay, error) {
	day, err := s.calendarRepo.GetDay(ctx, date)
	if err != nil {
		return models.CalendarDay{}, err
	}
	if day == nil {
		return models.DefaultCalendarDay(date), nil
	}
	return *day, nil
}

// Upsert writes one calendar entry, replacing any existing row for the date.
func (s *CalendarService) Upsert(ctx context.Context, req dto.CalendarUpdateRequest) error {
	if strings.TrimSpace(req.CalendarDate) == "" || req.IsWorkingDay == nil {
		return apperrors.NewBadRequestError("calendar_date and is_working_day are required")
	}
	return s.calendarRepo.Upsert(ctx, models.CalendarDay{
		CalendarDate:        req.CalendarDate,
		IsWorkingDay:        bool(*req.IsWorkingDay),
		ActivityDescription: req.ActivityDescription,
	})
}

// BulkImport upserts a batch of entries in one transaction and returns how
// many were written. Malformed entries are dropped, not rejected; a batch
// where nothing survives is a no-op success reporting zero writes.
func (s *CalendarService) BulkImport(ctx context.Context, entries []dto.CalendarImportEntry) (int, error) {
	days := make([]models.CalendarDay, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.Date) == "" || e.IsWorkingDay == nil || strings.TrimSpace(e.Activity) == "" {
			continue
		}
		days = append(days, models.CalendarDay{
			CalendarDate:        e.Date,
			IsWorkingDay:        bool(*e.IsWorkingDay),
			ActivityDescription: e.Activity,
		})
	}
	if len(days) == 0 {
		return 0, nil
	}

	if err := s.calendarRepo.BulkUpsert(ctx, days); err != nil {
		return 0, err
	}
	return len(days), nil
}
