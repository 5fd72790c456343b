package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelternet/config"
	deliveryHttp "shelternet/internal/delivery/http"
	"shelternet/internal/delivery/http/handler"
	"shelternet/internal/delivery/http/middleware"
	"shelternet/internal/infrastructure/cache"
	"shelternet/internal/infrastructure/database"
	"shelternet/internal/repository"
	"shelternet/internal/service"
	"shelternet/internal/usecase"
	"shelternet/pkg/jwt"
	"shelternet/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	authUsecase usecase.AuthUsecase
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

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server, app.authUsecase = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, usecase.AuthUsecase) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	shelterRepo := repository.NewShelterRepository()
	vetRepo := repository.NewVetRepository()
	visitorRepo := repository.NewVisitorRepository()
	animalRepo := repository.NewAnimalRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	accessPolicy := service.NewAccessPolicy()
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, auditService, jwtService, redisClient)
	shelterUsecase := usecase.NewShelterUsecase(db, log, userRepo, roleRepo, shelterRepo, animalRepo, accessPolicy, auditService)
	vetUsecase := usecase.NewVetUsecase(db, log, userRepo, roleRepo, vetRepo, shelterRepo, animalRepo, accessPolicy, auditService)
	visitorUsecase := usecase.NewVisitorUsecase(db, log, userRepo, roleRepo, visitorRepo, animalRepo, accessPolicy, auditService)
	animalUsecase := usecase.NewAnimalUsecase(db, log, userRepo, shelterRepo, visitorRepo, animalRepo, accessPolicy, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, userRepo, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	shelterHandler := handler.NewShelterHandler(shelterUsecase, customValidator)
	vetHandler := handler.NewVetHandler(vetUsecase, customValidator)
	visitorHandler := handler.NewVisitorHandler(visitorUsecase, customValidator)
	animalHandler := handler.NewAnimalHandler(animalUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, shelterHandler, vetHandler, visitorHandler, animalHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, authUsecase
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Seed the role table before accepting requests
	if err := app.authUsecase.SeedRoles(context.Background()); err != nil {
		logrus.Fatalf("Failed to seed roles: %v", err)
	}
	logrus.Info("Roles seeded successfully")

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
