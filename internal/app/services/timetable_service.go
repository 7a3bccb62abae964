package services

import (
	"context"
	"strings"
	"time"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/academic"
)

// TimetableService handles timetable management and the staff today view.
type TimetableService struct {
	timetableRepo *repositories.TimetableRepository
	calendarRepo  *repositories.CalendarRepository
	staffRepo     *repositories.StaffRepository
	now           func() time.Time
}

// NewTimetableService creates a new TimetableService
func NewTimetableService(
	timetableRepo *repositories.TimetableRepository,
	calendarRepo *repositories.CalendarRepository,
	staffRepo *repositories.StaffRepository,
) *TimetableService {
	return &TimetableService{
		timetableRepo: timetableRepo,
		calendarRepo:  calendarRepo,
		staffRepo:     staffRepo,
		now:           time.Now,
	}
}

func entryFromRequest(req dto.TimetableEntryRequest) *models.TimetableEntry {
	return &models.TimetableEntry{
		StaffEmail:   strings.TrimSpace(strings.ToLower(req.StaffEmail)),
		ClassName:    req.ClassName,
		CourseCode:   req.CourseCode,
		Department:   req.Department,
		Year:         req.Year,
		Section:      req.Section,
		Semester:     req.Semester,
		DayOfWeek:    req.DayOfWeek,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		PeriodNumber: req.PeriodNumber,
	}
}

// TodayForStaff returns the staff member's periods for today, each annotated
// with its live status. Sundays and calendar non-working days return an
// empty timetable; there are no scheduled periods on a Sunday, so a calendar
// row cannot turn one back on.
func (s *TimetableService) TodayForStaff(ctx context.Context, staffEmail string) ([]models.TimetableEntry, error) {
	now := s.now()
	if now.Weekday() == time.Sunday {
		return []models.TimetableEntry{}, nil
	}

	day, err := s.calendarRepo.GetDay(ctx, now.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if day != nil && !day.IsWorkingDay {
		return []models.TimetableEntry{}, nil
	}

	entries, err := s.timetableRepo.ListForStaffDay(ctx, staffEmail, now.Weekday().String())
	if err != nil {
		return nil, err
	}

	for i := range entries {
		entries[i].Status = academic.PeriodStatus(now, entries[i].StartTime, entries[i].EndTime)
	}
	return entries, nil
}

// ListByStaff returns a staff member's full weekly timetable.
func (s *TimetableService) ListByStaff(ctx context.Context, staffEmail string) ([]models.TimetableEntry, error) {
	return s.timetableRepo.ListByStaffEmail(ctx, staffEmail)
}

// ListByStaffID resolves the staff id to its email and returns the timetable.
func (s *TimetableService) ListByStaffID(ctx context.Context, staffID int64) ([]models.TimetableEntry, error) {
	email, err := s.staffRepo.GetEmailByID(ctx, staffID)
	if err != nil {
		return nil, err
	}
	return s.timetableRepo.ListByStaffEmail(ctx, email)
}

// Create adds one timetable period.
func (s *TimetableService) Create(ctx context.Context, req dto.TimetableEntryRequest) (*models.TimetableEntry, error) {
	entry := entryFromRequest(req)
	if err := s.timetableRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// Update rewrites one timetable period.
func (s *TimetableService) Update(ctx context.Context, id int64, req dto.TimetableEntryRequest) error {
	return s.timetableRepo.Update(ctx, id, entryFromRequest(req))
}

// Delete removes one timetable period.
func (s *TimetableService) Delete(ctx context.Context, id int64) error {
	return s.timetableRepo.Delete(ctx, id)
}

// ClassesByDepartment returns the distinct year/section groups of a
// department's timetable rows.
func (s *TimetableService) ClassesByDepartment(ctx context.Context, department string) ([]models.ClassGroup, error) {
	return s.timetableRepo.DistinctClassesByDepartment(ctx, department)
}

// ClassesByStaff returns the distinct classes a staff member teaches.
func (s *TimetableService) ClassesByStaff(ctx context.Context, staffEmail string) ([]models.ClassGroup, error) {
	return s.timetableRepo.DistinctClassesByStaff(ctx, staffEmail)
}

// CoursesByStaff returns the distinct class/course pairings a staff member
// teaches.
func (s *TimetableService) CoursesByStaff(ctx context.Context, staffEmail string) ([]models.CourseAssignment, error) {
	return s.timetableRepo.DistinctCoursesByStaff(ctx, staffEmail)
}
