package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/archiva/campusconnect/internal/app/models"
	appRepos "github.com/archiva/campusconnect/internal/app/repositories"
	"github.com/archiva/campusconnect/internal/pkg/auth"
)

// Default admin credentials created on an empty database. The password is
// expected to be changed right after first login.
const (
	defaultAdminName     = "Administrator"
	defaultAdminEmail    = "admin@campus.local"
	defaultAdminPassword = "admin123"
)

// CreateDefaultData seeds the default admin account when the users table is
// empty, so a fresh deployment can be logged into.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	count, err := userRepo.CountUsers(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to count users for seeding")
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.User{
		Name:     defaultAdminName,
		Email:    defaultAdminEmail,
		Password: hash,
		Role:     appModels.RoleAdmin,
	}
	if err := appRepos.InsertUser(ctx, dbPool, admin); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin user")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Seeded default admin account")
	return nil
}
