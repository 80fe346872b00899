package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-admin/config"
	"clinic-admin/internal/access"
	deliveryHttp "clinic-admin/internal/delivery/http"
	"clinic-admin/internal/delivery/http/handler"
	"clinic-admin/internal/delivery/http/middleware"
	"clinic-admin/internal/infrastructure/cache"
	"clinic-admin/internal/infrastructure/database"
	"clinic-admin/internal/repository"
	"clinic-admin/internal/service"
	"clinic-admin/internal/usecase"
	"clinic-admin/pkg/jwt"
	"clinic-admin/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Cron        *cron.Cron
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// The route registry is static configuration; a malformed registry is a
	// programming error and must stop the process before it serves traffic.
	if err := access.Validate(); err != nil {
		return nil, err
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, err
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, staticService := initializeServer(cfg, db, redisClient)
	app.Server = server

	// Seed the reference-data cache and keep it in sync on a schedule.
	if err := staticService.Resync(context.Background()); err != nil {
		logrus.Warnf("Initial static data resync failed: %+v", err)
	}
	app.Cron = cron.New()
	if _, err := app.Cron.AddFunc(cfg.StaticData.ResyncCron, func() {
		if err := staticService.Resync(context.Background()); err != nil {
			logrus.Warnf("Scheduled static data resync failed: %+v", err)
		}
	}); err != nil {
		return nil, fmt.Errorf("failed to schedule static data resync: %w", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, service.StaticDataService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	patientRepo := repository.NewPatientRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	transferRepo := repository.NewTransferRepository()
	staticRepo := repository.NewStaticDataRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditRepo)
	sessionService := service.NewSessionService(db, log, userRepo, redisClient, cfg.Session.CacheTTL)
	staticService := service.NewStaticDataService(db, log, staticRepo, redisClient, cfg.StaticData.CacheTTL)
	lookupService := service.NewLookupService(db, log, userRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, sessionService, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRepo, lookupService, sessionService, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	recordUsecase := usecase.NewMedicalRecordUsecase(db, log, recordRepo, patientRepo, userRepo, auditService)
	transferUsecase := usecase.NewTransferUsecase(db, log, transferRepo, recordRepo, userRepo, auditService)
	staticUsecase := usecase.NewStaticDataUsecase(db, log, staticRepo, staticService, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	recordHandler := handler.NewMedicalRecordHandler(recordUsecase, customValidator)
	transferHandler := handler.NewTransferHandler(transferUsecase, customValidator)
	staticHandler := handler.NewStaticDataHandler(staticUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	pageHandler := handler.NewPageHandler()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSAllowOrigin)
	routeGuard := middleware.NewRouteGuard(log, authMiddleware, sessionService, staticService)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		userHandler,
		patientHandler,
		recordHandler,
		transferHandler,
		staticHandler,
		auditLogHandler,
		pageHandler,
		authMiddleware,
		corsMiddleware,
		routeGuard,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, staticService
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.Cron.Start()

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Stop scheduled jobs first so no resync races the closing connections
	if app.Cron != nil {
		app.Cron.Stop()
	}

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
