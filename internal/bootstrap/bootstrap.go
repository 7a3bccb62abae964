package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/archiva/campusconnect/internal/app/controllers"
	appMigrations "github.com/archiva/campusconnect/internal/app/migrations"
	appRepos "github.com/archiva/campusconnect/internal/app/repositories"
	appRoutes "github.com/archiva/campusconnect/internal/app/routes"
	appServices "github.com/archiva/campusconnect/internal/app/services"
	"github.com/archiva/campusconnect/internal/config"
	"github.com/archiva/campusconnect/internal/db"
	appMiddleware "github.com/archiva/campusconnect/internal/middleware"
	"github.com/archiva/campusconnect/internal/pkg/filestorage"
	"github.com/archiva/campusconnect/internal/pkg/logger"
	"github.com/archiva/campusconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	StaffService      *appServices.StaffService
	StudentService    *appServices.StudentService
	TimetableService  *appServices.TimetableService
	AttendanceService *appServices.AttendanceService
	MarksService      *appServices.MarksService
	CalendarService   *appServices.CalendarService
	LessonPlanService *appServices.LessonPlanService
	PushService       *appServices.PushService

	AuthController       *appControllers.AuthController
	StaffController      *appControllers.StaffController
	StudentController    *appControllers.StudentController
	TimetableController  *appControllers.TimetableController
	AttendanceController *appControllers.AttendanceController
	MarksController      *appControllers.MarksController
	CalendarController   *appControllers.CalendarController
	LessonPlanController *appControllers.LessonPlanController
	PushController       *appControllers.PushController

	Repos       *appRepos.Repositories
	FileStorage *filestorage.LocalStorage
	Logger      zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log the error but don't fail the startup over seed data.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Uploads.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StaffRepository,
		deps.FileStorage,
		cfg.Auth.RequireOldPassword,
		lgr,
	)
	deps.StaffService = appServices.NewStaffService(deps.Repos.StaffRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.TimetableService = appServices.NewTimetableService(
		deps.Repos.TimetableRepository,
		deps.Repos.CalendarRepository,
		deps.Repos.StaffRepository,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CalendarRepository,
	)
	deps.MarksService = appServices.NewMarksService(deps.Repos.MarksRepository, deps.Repos.StudentRepository)
	deps.CalendarService = appServices.NewCalendarService(deps.Repos.CalendarRepository)
	deps.LessonPlanService = appServices.NewLessonPlanService(deps.Repos.LessonPlanRepository, deps.FileStorage, lgr)
	deps.PushService = appServices.NewPushService(
		deps.Repos.PushSubscriptionRepository,
		cfg.Push.VAPIDPublicKey,
		cfg.Push.VAPIDPrivateKey,
		cfg.Push.Subject,
		lgr,
	)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StaffController = appControllers.NewStaffController(deps.StaffService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.MarksController = appControllers.NewMarksController(deps.MarksService)
	deps.CalendarController = appControllers.NewCalendarController(deps.CalendarService)
	deps.LessonPlanController = appControllers.NewLessonPlanController(deps.LessonPlanService)
	deps.PushController = appControllers.NewPushController(deps.PushService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StaffController,
		deps.StudentController,
		deps.TimetableController,
		deps.AttendanceController,
		deps.MarksController,
		deps.CalendarController,
		deps.LessonPlanController,
		deps.PushController,
	)

	return router
}
