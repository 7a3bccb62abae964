package services

import (
	"context"
	"testing"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
)

func TestBuildAttendanceReport(t *testing.T) {
	roster := []models.RosterEntry{
		{StudentName: "Anitha R", RegisterNumber: "611220104001"},
		{StudentName: "Bharath K", RegisterNumber: "611220104002"},
		{StudentName: "Charu D", RegisterNumber: "611220104003"},
	}
	statuses := []repositories.StatusRow{
		{StudentRegNo: "611220104001", Status: "Present"},
		{StudentRegNo: "611220104001", Status: "Present"},
		{StudentRegNo: "611220104001", Status: "Absent"},
		{StudentRegNo: "611220104002", Status: "On Duty"},
		{StudentRegNo: "611220104002", Status: "On Duty"},
		// Records for students outside the roster are ignored.
		{StudentRegNo: "611220104999", Status: "Present"},
	}

	report := buildAttendanceReport(roster, statuses)

	if len(report) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(report))
	}

	first := report[0]
	if first.PresentCount != 2 || first.AbsentCount != 1 || first.OnDutyCount != 0 {
		t.Errorf("unexpected counts for first student: %+v", first)
	}
	if first.AttendancePercentage != "66.67" {
		t.Errorf("expected percentage 66.67, got %s", first.AttendancePercentage)
	}

	// Only on-duty periods: the denominator is empty, so the percentage
	// stays at the zero value.
	second := report[1]
	if second.OnDutyCount != 2 {
		t.Errorf("expected 2 on-duty periods, got %d", second.OnDutyCount)
	}
	if second.AttendancePercentage != "0.00" {
		t.Errorf("expected percentage 0.00, got %s", second.AttendancePercentage)
	}

	// No records at all.
	third := report[2]
	if third.PresentCount != 0 || third.AbsentCount != 0 || third.AttendancePercentage != "0.00" {
		t.Errorf("unexpected row for student with no records: %+v", third)
	}
}

func TestSaveBatchRejectsEmptyInput(t *testing.T) {
	svc := &AttendanceService{}

	if err := svc.SaveBatch(context.Background(), nil); err == nil {
		t.Error("expected error for empty batch")
	}

	// Entries that only carry blank register numbers are filtered out and
	// the batch is rejected before touching storage.
	entries := []dto.AttendanceEntry{
		{StudentRegNo: "   ", AttendanceDate: "2025-07-01", PeriodNumber: 1, Status: "Present"},
	}
	if err := svc.SaveBatch(context.Background(), entries); err == nil {
		t.Error("expected error for batch with only blank register numbers")
	}
}
