package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/academic"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
)

// recentAttendanceDays is the window of the department head's recent view.
const recentAttendanceDays = 3

// AttendanceService handles attendance capture and reporting.
type AttendanceService struct {
	attendanceRepo *repositories.AttendanceRepository
	studentRepo    *repositories.StudentRepository
	calendarRepo   *repositories.CalendarRepository
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(
	attendanceRepo *repositories.AttendanceRepository,
	studentRepo *repositories.StudentRepository,
	calendarRepo *repositories.CalendarRepository,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		calendarRepo:   calendarRepo,
	}
}

// SaveBatch stores one period's attendance in a single transaction. Saving
// the same student/date/period again overwrites the earlier status.
func (s *AttendanceService) SaveBatch(ctx context.Context, entries []dto.AttendanceEntry) error {
	if len(entries) == 0 {
		return apperrors.NewBadRequestError("No attendance data provided")
	}

	records := make([]models.AttendanceRecord, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.StudentRegNo) == "" {
			continue
		}
		records = append(records, models.AttendanceRecord{
			StudentRegNo:   strings.TrimSpace(e.StudentRegNo),
			StaffID:        e.StaffID,
			AttendanceDate: e.AttendanceDate,
			PeriodNumber:   e.PeriodNumber,
			Status:         e.Status,
			Reason:         e.Reason,
		})
	}
	if len(records) == 0 {
		return apperrors.NewBadRequestError("No attendance data provided")
	}

	return s.attendanceRepo.SaveBatch(ctx, records)
}

// RecentForClass returns a class roster plus its attendance records of the
// last three days, for the department head's review view.
func (s *AttendanceService) RecentForClass(ctx context.Context, department, year, section string) ([]models.RosterEntry, []models.AttendanceRecord, error) {
	roster, err := s.studentRepo.GetRoster(ctx, department, academic.YearLabel(year), section)
	if err != nil {
		return nil, nil, err
	}
	if len(roster) == 0 {
		return roster, []models.AttendanceRecord{}, nil
	}

	regNos := make([]string, len(roster))
	for i, r := range roster {
		regNos[i] = r.RegisterNumber
	}

	records, err := s.attendanceRepo.ListRecent(ctx, regNos, recentAttendanceDays)
	if err != nil {
		return nil, nil, err
	}
	return roster, records, nil
}

// Report aggregates attendance between fromDate and toDate for a class and
// lists the non-working days inside the range.
func (s *AttendanceService) Report(ctx context.Context, department, year, section, fromDate, toDate string) ([]models.AttendanceReportRow, []models.CalendarDay, error) {
	roster, err := s.studentRepo.GetRoster(ctx, department, academic.YearLabel(year), section)
	if err != nil {
		return nil, nil, err
	}

	holidays, err := s.calendarRepo.ListNonWorkingInRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, nil, err
	}

	if len(roster) == 0 {
		return []models.AttendanceReportRow{}, holidays, nil
	}

	regNos := make([]string, len(roster))
	for i, r := range roster {
		regNos[i] = r.RegisterNumber
	}

	statuses, err := s.attendanceRepo.ListStatusInRange(ctx, regNos, fromDate, toDate)
	if err != nil {
		return nil, nil, err
	}

	return buildAttendanceReport(roster, statuses), holidays, nil
}

// buildAttendanceReport counts statuses per student and derives the
// percentage over present plus absent periods. On-duty periods are counted
// but excluded from the denominator; a student with no countable periods
// reports "0.00".
func buildAttendanceReport(roster []models.RosterEntry, statuses []repositories.StatusRow) []models.AttendanceReportRow {
	type tally struct {
		present int
		absent  int
		onDuty  int
	}
	counts := make(map[string]*tally, len(roster))
	for _, r := range roster {
		counts[r.RegisterNumber] = &tally{}
	}

	for _, s := range statuses {
		t, ok := counts[s.StudentRegNo]
		if !ok {
			continue
		}
		switch s.Status {
		case academic.AttendancePresent:
			t.present++
		case academic.AttendanceAbsent:
			t.absent++
		case academic.AttendanceOnDuty:
			t.onDuty++
		}
	}

	report := make([]models.AttendanceReportRow, 0, len(roster))
	for _, r := range roster {
		t := counts[r.RegisterNumber]
		percentage := "0.00"
		if total := t.present + t.absent; total > 0 {
			percentage = fmt.Sprintf("%.2f", float64(t.present)/float64(total)*100)
		}
		report = append(report, models.AttendanceReportRow{
			StudentName:          r.StudentName,
			RegisterNumber:       r.RegisterNumber,
			PresentCount:         t.present,
			AbsentCount:          t.absent,
			OnDutyCount:          t.onDuty,
			AttendancePercentage: percentage,
		})
	}
	return report
}
