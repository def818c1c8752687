package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/akhilduddi/college-complaints-management-system/internal/app/controllers"
	appMigrations "github.com/akhilduddi/college-complaints-management-system/internal/app/migrations"
	appRepos "github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	appRoutes "github.com/akhilduddi/college-complaints-management-system/internal/app/routes"
	appServices "github.com/akhilduddi/college-complaints-management-system/internal/app/services"
	"github.com/akhilduddi/college-complaints-management-system/internal/config"
	"github.com/akhilduddi/college-complaints-management-system/internal/db"
	appMiddleware "github.com/akhilduddi/college-complaints-management-system/internal/middleware"
	pkgAuth "github.com/akhilduddi/college-complaints-management-system/internal/pkg/auth"
	"github.com/akhilduddi/college-complaints-management-system/internal/pkg/logger"
	"github.com/akhilduddi/college-complaints-management-system/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Services   *appServices.Services

	AuthController             *appControllers.AuthController
	ComplaintController        *appControllers.ComplaintController
	TeacherComplaintController *appControllers.TeacherComplaintController
	ResourceController         *appControllers.ResourceController
	AuthMiddleware             *appMiddleware.AuthMiddleware

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(config.ConfigPath())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: cfg.Logging.Format == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrateCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := appMigrations.NewMigrator(dbPool).Migrate(migrateCtx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, cfg.Admin.RegistrationKey, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.Auth, lgr.With().Str("controller", "auth").Logger())
	deps.ComplaintController = appControllers.NewComplaintController(deps.Services.Complaints, deps.Services.Export)
	deps.TeacherComplaintController = appControllers.NewTeacherComplaintController(deps.Services.TeacherComplaints)
	deps.ResourceController = appControllers.NewResourceController(deps.Services.Resources)

	return deps
}

// SeedDefaults creates the configured default admin when it is missing.
// Failures are logged and do not stop startup.
func SeedDefaults(ctx context.Context, cfg *config.Config, deps *Dependencies) {
	if err := seed.CreateDefaultData(ctx, cfg, deps.Services.Auth, deps.Logger); err != nil {
		deps.Logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidators()

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)
	router.NoRoute(appMiddleware.NoRouteHandler())

	appRoutes.SetupSwagger(router, "")

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.ComplaintController,
		deps.TeacherComplaintController,
		deps.ResourceController,
		deps.AuthMiddleware,
	)

	// Liveness endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
