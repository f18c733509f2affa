package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-prescription-portal/config"
	deliveryHttp "go-prescription-portal/internal/delivery/http"
	"go-prescription-portal/internal/delivery/http/handler"
	"go-prescription-portal/internal/delivery/http/middleware"
	domainRepo "go-prescription-portal/internal/domain/repository"
	"go-prescription-portal/internal/infrastructure/cache"
	"go-prescription-portal/internal/infrastructure/database"
	"go-prescription-portal/internal/repository"
	"go-prescription-portal/internal/service"
	"go-prescription-portal/internal/usecase"
	"go-prescription-portal/pkg/jwt"
	"go-prescription-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	log.Info("Database connected successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	log.Info("Redis connected successfully")

	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// NewLogger configures a JSON logrus logger at the configured level
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// newRecordCorpus picks where prescription history is read from
func newRecordCorpus(cfg *config.Config, log *logrus.Logger, db *gorm.DB, prescriptionRepo domainRepo.PrescriptionRepository) domainRepo.RecordCorpus {
	if cfg.Catalog.CorpusSource == config.CorpusSourceStatic {
		log.Info("Serving prescription history from the static demo corpus")
		return repository.NewStaticRecordCorpus()
	}
	return repository.NewDatabaseRecordCorpus(db, prescriptionRepo)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	prescriptionRepo := repository.NewPrescriptionRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	tokenRepo := repository.NewTokenRepository(redisClient)
	draftRepo := repository.NewDraftRepository(redisClient, cfg.Draft.TTL)
	medicineCorpus := repository.NewStaticMedicineCorpus()
	recordCorpus := newRecordCorpus(cfg, log, db, prescriptionRepo)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	submitter := service.NewPrescriptionSubmitter(db, log, prescriptionRepo, auditService)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, tokenRepo, jwtService, auditService)
	draftUsecase := usecase.NewPrescriptionDraftUsecase(db, log, draftRepo, patientProfileRepo, medicineCorpus, submitter, auditService)
	historyUsecase := usecase.NewPrescriptionHistoryUsecase(db, log, prescriptionRepo, recordCorpus, auditService)
	directoryUsecase := usecase.NewPatientDirectoryUsecase(db, log, patientProfileRepo)
	catalogUsecase := usecase.NewMedicineCatalogUsecase(log, medicineCorpus, cfg.Catalog.MedicineSearchLimit)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	draftHandler := handler.NewPrescriptionDraftHandler(draftUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(historyUsecase, directoryUsecase)
	patientHandler := handler.NewPatientHandler(historyUsecase)
	medicineHandler := handler.NewMedicineHandler(catalogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenRepo, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)
	recoverMiddleware := middleware.NewRecoverMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		draftHandler,
		doctorHandler,
		patientHandler,
		medicineHandler,
		authMiddleware,
		corsMiddleware,
		recoverMiddleware,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server fails
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
