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

	_ "github.com/oztrk/teacherhub/docs" // generated swagger docs
	appControllers "github.com/oztrk/teacherhub/internal/app/controllers"
	appMigrations "github.com/oztrk/teacherhub/internal/app/migrations"
	appRepos "github.com/oztrk/teacherhub/internal/app/repositories"
	appRoutes "github.com/oztrk/teacherhub/internal/app/routes"
	appServices "github.com/oztrk/teacherhub/internal/app/services"
	appState "github.com/oztrk/teacherhub/internal/app/state"
	"github.com/oztrk/teacherhub/internal/config"
	"github.com/oztrk/teacherhub/internal/db"
	appMiddleware "github.com/oztrk/teacherhub/internal/middleware"
	"github.com/oztrk/teacherhub/internal/pkg/logger"
	"github.com/oztrk/teacherhub/internal/seed"
)

// healthBanner is the immutable part of the health-check response.
const healthBanner = "I'm good. You've already asked me"

// Dependencies holds all the application dependencies.
type Dependencies struct {
	State             *appState.AppState
	Repos             *appRepos.Repositories
	TeacherService    appServices.TeacherService
	CourseService     appServices.CourseService
	HealthController  *appControllers.HealthController
	TeacherController *appControllers.TeacherController
	CourseController  *appControllers.CourseController
	Logger            zerolog.Logger
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

// SetupDatabase establishes the connection pool, runs migrations, and
// seeds development data.
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

	if cfg.Server.Mode == "development" {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes shared state, repositories, services,
// and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.State = appState.New(healthBanner, dbPool)
	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)

	deps.HealthController = appControllers.NewHealthController(deps.State)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// SetupRouter assembles the gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router, deps.HealthController, deps.TeacherController, deps.CourseController)
	appRoutes.SetupSwagger(router)

	lgr.Info().Msg("Router configured")
	return router
}
