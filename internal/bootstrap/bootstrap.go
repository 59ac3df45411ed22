package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	appControllers "github.com/onur/coursespace/internal/app/controllers"
	appMigrations "github.com/onur/coursespace/internal/app/migrations"
	appRepos "github.com/onur/coursespace/internal/app/repositories"
	appRoutes "github.com/onur/coursespace/internal/app/routes"
	appServices "github.com/onur/coursespace/internal/app/services"
	"github.com/onur/coursespace/internal/config"
	"github.com/onur/coursespace/internal/db"
	appMiddleware "github.com/onur/coursespace/internal/middleware"
	"github.com/onur/coursespace/internal/pkg/auth"
	"github.com/onur/coursespace/internal/pkg/filestorage"
	"github.com/onur/coursespace/internal/pkg/logger"
	"github.com/onur/coursespace/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appControllers.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *auth.JWTService
	Materializer   *filestorage.TempMaterializer
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase connects to Postgres, reconciles the schema and seeds the
// default rows. A schema patch failure is logged but does not abort
// startup; already-applied parts of the schema keep working.
func SetupDatabase(cfg *config.Config) (*db.PostgresDB, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Info().Msg("Reconciling database schema...")
	reconciler := appMigrations.NewReconciler(database.Pool)
	if err := reconciler.Reconcile(ctx); err != nil {
		logger.Error().Err(err).Msg("Schema reconciliation incomplete, proceeding anyway")
	}

	if err := seed.EnsureDefaultData(ctx, database.Pool, cfg); err != nil {
		logger.Error().Err(err).Msg("Failed to seed default data, proceeding anyway")
	}

	return database, nil
}

// BuildDependencies initializes repositories, services and controllers
func BuildDependencies(cfg *config.Config, database *db.PostgresDB) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(database)

	accessExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		accessExp = time.Hour
	}
	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Materializer, err = filestorage.NewTempMaterializer(cfg.Server.TempDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize temp file storage: %w", err)
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.Materializer)
	deps.Controllers = appControllers.NewControllers(deps.Services)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
