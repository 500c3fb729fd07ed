package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidaplus-api/config"
	deliveryHttp "vidaplus-api/internal/delivery/http"
	"vidaplus-api/internal/delivery/http/handler"
	"vidaplus-api/internal/delivery/http/middleware"
	"vidaplus-api/internal/domain/entity"
	"vidaplus-api/internal/infrastructure/cache"
	"vidaplus-api/internal/infrastructure/database"
	"vidaplus-api/internal/repository"
	"vidaplus-api/internal/service"
	"vidaplus-api/internal/usecase"
	"vidaplus-api/pkg/jwt"
	"vidaplus-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Database migrations applied")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Seed the bootstrap administrator account
	if err := seedAdministrator(db, cfg.Admin); err != nil {
		return nil, fmt.Errorf("failed to seed administrator: %w", err)
	}

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedAdministrator creates the configured administrator account on first
// start, so the admin-only routes are reachable on a fresh database. A missing
// ADMIN_EMAIL skips seeding; an existing account leaves the database untouched.
func seedAdministrator(db *gorm.DB, cfg config.AdminConfig) error {
	if cfg.Email == "" {
		logrus.Warn("ADMIN_EMAIL not set, skipping administrator seed")
		return nil
	}

	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	adminRepo := repository.NewAdministratorProfileRepository()

	// The role rows come from the migrations; refuse to seed against a
	// half-applied schema.
	role, err := roleRepo.FindByID(db, entity.RoleIDAdministrator)
	if err != nil {
		return err
	}
	if role == nil {
		return fmt.Errorf("administrator role row missing, migrations incomplete")
	}

	existing, err := userRepo.FindByEmail(db, cfg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	tx := db.Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:    cfg.Email,
		Password: string(hashedPassword),
		FullName: cfg.FullName,
		RoleID:   entity.RoleIDAdministrator,
	}
	if err := userRepo.Create(tx, user); err != nil {
		return err
	}

	profile := &entity.AdministratorProfile{
		UserID: user.ID,
		CPF:    cfg.CPF,
	}
	if err := adminRepo.Create(tx, profile); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	logrus.Infof("Seeded administrator account %s", cfg.Email)
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientProfileRepository()
	professionalRepo := repository.NewProfessionalProfileRepository()
	adminRepo := repository.NewAdministratorProfileRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	recordRepo := repository.NewMedicalRecordRepository()
	sessionRepo := repository.NewTelemedicineSessionRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, patientRepo, professionalRepo, auditService, jwtService, redisClient)
	patientUsecase := usecase.NewPatientProfileUsecase(db, log, userRepo, patientRepo, auditService)
	professionalUsecase := usecase.NewProfessionalProfileUsecase(db, log, userRepo, professionalRepo, auditService)
	adminUsecase := usecase.NewAdministratorUsecase(db, log, userRepo, adminRepo, auditService)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, professionalRepo, auditService)
	recordUsecase := usecase.NewMedicalRecordUsecase(db, log, appointmentRepo, recordRepo, auditService)
	telemedicineUsecase := usecase.NewTelemedicineUsecase(db, log, cfg.Telemedicine, appointmentRepo, sessionRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	professionalHandler := handler.NewProfessionalHandler(professionalUsecase, customValidator)
	administratorHandler := handler.NewAdministratorHandler(adminUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	medicalRecordHandler := handler.NewMedicalRecordHandler(recordUsecase, customValidator)
	telemedicineHandler := handler.NewTelemedicineHandler(telemedicineUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		professionalHandler,
		administratorHandler,
		appointmentHandler,
		medicalRecordHandler,
		telemedicineHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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
