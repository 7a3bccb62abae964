package services

import (
	"context"
	"strings"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
	"github.com/archiva/campusconnect/internal/pkg/auth"
)

// defaultStaffPassword seeds new accounts the admin has not set a password
// for; staff are expected to change it on first login.
const defaultStaffPassword = "staff123"

// StaffService handles staff account management.
type StaffService struct {
	staffRepo *repositories.StaffRepository
}

// NewStaffService creates a new StaffService
func NewStaffService(staffRepo *repositories.StaffRepository) *StaffService {
	return &StaffService{staffRepo: staffRepo}
}

func staffFromPayload(payload dto.StaffPayload) *models.Staff {
	return &models.Staff{
		Prefix:                  payload.Prefix,
		FirstName:               strings.TrimSpace(payload.FirstName),
		LastName:                strings.TrimSpace(payload.LastName),
		Gender:                  payload.Gender,
		DateOfBirth:             payload.DateOfBirth,
		BloodGroup:              payload.BloodGroup,
		MobileNumber:            payload.MobileNumber,
		MaritalStatus:           payload.MaritalStatus,
		AlternativeMobileNumber: payload.AlternativeMobileNumber,
		AlternativeEmail:        payload.AlternativeEmail,
		AadhaarNumber:           payload.AadhaarNumber,
		Religion:                payload.Religion,
		MotherTongue:            payload.MotherTongue,
		Nationality:             payload.Nationality,
		State:                   payload.State,
		ProfileStatus:           payload.ProfileStatus,
		Department:              payload.Department,
		Email:                   strings.TrimSpace(strings.ToLower(payload.Email)),
	}
}

func displayName(payload dto.StaffPayload) string {
	name := strings.TrimSpace(payload.FirstName + " " + payload.LastName)
	if payload.Prefix != "" {
		return payload.Prefix + " " + name
	}
	return name
}

func staffRole(payload dto.StaffPayload) string {
	if payload.Role == "" {
		return models.RoleStaff
	}
	return payload.Role
}

// List returns every staff profile with its account role.
func (s *StaffService) List(ctx context.Context) ([]models.Staff, error) {
	return s.staffRepo.ListWithUsers(ctx)
}

// ListBasic returns id/name/email for every staff member.
func (s *StaffService) ListBasic(ctx context.Context) ([]dto.StaffListItem, error) {
	return s.staffRepo.ListBasic(ctx)
}

// ListByDepartment returns the roster of one department.
func (s *StaffService) ListByDepartment(ctx context.Context, department string) ([]dto.StaffSummary, error) {
	return s.staffRepo.ListByDepartment(ctx, department)
}

// GetByID returns one staff profile.
func (s *StaffService) GetByID(ctx context.Context, id int64) (*models.Staff, error) {
	return s.staffRepo.GetByID(ctx, id)
}

// Create adds a staff member: the user account and the profile row are
// written in one transaction. A missing password falls back to the default.
func (s *StaffService) Create(ctx context.Context, payload dto.StaffPayload) (*models.Staff, error) {
	password := payload.Password
	if password == "" {
		password = defaultStaffPassword
	}
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:     displayName(payload),
		Email:    strings.TrimSpace(strings.ToLower(payload.Email)),
		Password: hash,
		Role:     staffRole(payload),
	}
	staff := staffFromPayload(payload)

	if err := s.staffRepo.CreateWithUser(ctx, user, staff); err != nil {
		return nil, err
	}
	staff.Name = user.Name
	staff.Role = user.Role
	return staff, nil
}

// Update rewrites the staff profile and its user row. The password is only
// rehashed when the payload carries one.
func (s *StaffService) Update(ctx context.Context, id int64, payload dto.StaffPayload) error {
	var passwordHash *string
	if payload.Password != "" {
		hash, err := auth.HashPassword(payload.Password)
		if err != nil {
			return err
		}
		passwordHash = &hash
	}

	staff := staffFromPayload(payload)
	return s.staffRepo.UpdateWithUser(ctx, id, staff, displayName(payload), staffRole(payload), passwordHash)
}

// Delete removes the staff member and their user account together.
func (s *StaffService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.ErrBadRequest
	}
	return s.staffRepo.DeleteWithUser(ctx, id)
}
