package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/rs/zerolog"

	"github.com/archiva/campusconnect/internal/app/models"
	"github.com/archiva/campusconnect/internal/app/models/dto"
	"github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/apperrors"
	"github.com/archiva/campusconnect/internal/pkg/auth"
	"github.com/archiva/campusconnect/internal/pkg/filestorage"
)

// AuthService handles login, profile reads, and credential updates.
type AuthService struct {
	userRepo           *repositories.UserRepository
	staffRepo          *repositories.StaffRepository
	fileStorage        filestorage.Storage
	requireOldPassword bool
	logger             zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	staffRepo *repositories.StaffRepository,
	fileStorage filestorage.Storage,
	requireOldPassword bool,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:           userRepo,
		staffRepo:          staffRepo,
		fileStorage:        fileStorage,
		requireOldPassword: requireOldPassword,
		logger:             logger,
	}
}

// Login verifies the credentials and returns the session profile. An unknown
// email and a wrong password fail with distinct errors; both map to 401.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginUser, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	row, err := s.userRepo.GetCredentialsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(row.PasswordHash, password) {
		s.logger.Warn().Str("email", email).Msg("Login failed: incorrect password")
		return nil, apperrors.ErrIncorrectPassword
	}

	user := &dto.LoginUser{
		ID:                row.UserID,
		Name:              row.Name,
		Email:             row.Email,
		Role:              row.Role,
		ProfilePictureURL: row.ProfilePictureURL,
	}
	if row.Department != nil {
		user.Department = *row.Department
	}

	return user, nil
}

// GetStaffProfile returns the full staff profile for the email.
func (s *AuthService) GetStaffProfile(ctx context.Context, email string) (*models.Staff, error) {
	return s.staffRepo.GetProfileByEmail(ctx, email)
}

// GetBasicProfile returns the bare user fields for accounts with no staff
// row, such as the seeded admin.
func (s *AuthService) GetBasicProfile(ctx context.Context, email string) (*dto.BasicProfile, error) {
	return s.userRepo.GetBasicProfileByEmail(ctx, email)
}

// UpdatePassword replaces the stored password hash. When the old-password
// policy is enabled the current password must be supplied and must match.
func (s *AuthService) UpdatePassword(ctx context.Context, req dto.PasswordUpdateRequest) error {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	if s.requireOldPassword {
		row, err := s.userRepo.GetCredentialsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if !auth.CheckPassword(row.PasswordHash, req.OldPassword) {
			return apperrors.ErrIncorrectPassword
		}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, email, hash); err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("Password updated")
	return nil
}

// UpdateProfilePicture stores the uploaded picture and records its public
// path on the staff row. A previous picture is removed from disk.
func (s *AuthService) UpdateProfilePicture(ctx context.Context, email string, file *multipart.FileHeader) (string, error) {
	staff, err := s.staffRepo.GetProfileByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrProfileNotFound) {
		return "", err
	}

	path, err := s.fileStorage.SaveFile(file)
	if err != nil {
		return "", err
	}

	if err := s.staffRepo.UpdateProfilePicture(ctx, email, path); err != nil {
		if delErr := s.fileStorage.DeleteFile(path); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", path).Msg("Failed to remove orphaned upload")
		}
		return "", err
	}

	if staff != nil && staff.ProfilePictureURL != nil && *staff.ProfilePictureURL != "" {
		if delErr := s.fileStorage.DeleteFile(*staff.ProfilePictureURL); delErr != nil {
			s.logger.Warn().Err(delErr).Str("path", *staff.ProfilePictureURL).Msg("Failed to remove previous picture")
		}
	}

	return path, nil
}
