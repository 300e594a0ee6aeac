package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"research_connect/database"
	"research_connect/internal/config"
	"research_connect/internal/email"
	"research_connect/internal/handlers"
	"research_connect/internal/logger"
	"research_connect/internal/middleware"
	"research_connect/internal/repositories"
	"research_connect/internal/routes"
	"research_connect/internal/services"
	"research_connect/internal/validator"
	"research_connect/pkg/apperrors"
)

// Run boots the server: config, logger, database, DI wiring, router.
// The gorm handle is opened once here and injected everywhere; the
// driver pools connections internally.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())

	if cfg.JWT.Secret == "" {
		logger.Warn("TOKEN_SECRET is not set; authenticated routes will return 500")
	}

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter builds the gin engine with all middleware, services and
// routes. Exposed separately so tests can run against httptest.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)

	appHandlers := initializeHandlers(cfg, serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	emailProvider := buildEmailProvider(cfg)

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()

	authService := services.NewAuthService(userRepo, profileRepo, emailProvider, cfg.JWT.Secret, sessionTTL(cfg), cfg.App.BaseURL)
	userService := services.NewUserService(userRepo, profileRepo)

	return &services.ServiceContainer{
		AuthService: authService,
		UserService: userService,
	}
}

func initializeHandlers(cfg *config.Config, container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler: handlers.NewAuthHandler(baseHandler, container.AuthService, cfg.IsProduction(), sessionTTL(cfg)),
		UserHandler: handlers.NewUserHandler(baseHandler, container.UserService, cfg.JWT.Secret),
	}
}

// sessionTTL converts the configured token lifetime into a duration
// shared by the token issuer and the cookie Max-Age.
func sessionTTL(cfg *config.Config) time.Duration {
	return time.Duration(cfg.TokenTTLHours()) * time.Hour
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.App.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func buildEmailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("SMTP is not configured, outbound email disabled")
		return email.NoopProvider{}
	}

	provider, err := email.NewSMTPProvider(&email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("Invalid SMTP configuration, outbound email disabled", "error", err)
		return email.NoopProvider{}
	}
	return provider
}
