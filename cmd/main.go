package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/cache"
	"github.com/iinterntechnologies-oss/crm-tool/internal/config"
	"github.com/iinterntechnologies-oss/crm-tool/internal/events"
	"github.com/iinterntechnologies-oss/crm-tool/internal/handlers"
	"github.com/iinterntechnologies-oss/crm-tool/internal/middleware"
	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
	"github.com/iinterntechnologies-oss/crm-tool/internal/services"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := initDatabase(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	if err := autoMigrate(db); err != nil {
		logger.WithError(err).Fatal("Failed to migrate database")
	}

	// Optional NATS activity stream
	var publisher *events.Publisher
	if cfg.NATS.Enabled {
		publisher, err = events.NewPublisher(cfg.NATS, logger)
		if err != nil {
			logger.WithError(err).Warn("Activity events disabled: NATS unavailable")
		} else {
			defer publisher.Close()
		}
	}

	// Optional Redis stats cache
	var statsCache *cache.StatsCache
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			logger.WithError(err).Warn("Stats cache disabled: invalid Redis URL")
		} else {
			statsCache = cache.NewStatsCache(
				redis.NewClient(opts),
				time.Duration(cfg.Redis.StatsTTLSecs)*time.Second,
				logger,
			)
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	clientRepo := repository.NewClientRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	goalRepo := repository.NewGoalRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Services
	jwtService := services.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiryMinutes)
	authService := services.NewAuthService(userRepo, jwtService, logger)
	activityService := services.NewActivityService(activityRepo, publisher, logger)
	leadService := services.NewLeadService(leadRepo, activityService, logger)
	clientService := services.NewClientService(clientRepo, taskRepo, activityService, logger)
	customerService := services.NewCustomerService(customerRepo, logger)
	goalService := services.NewGoalService(goalRepo, activityService, logger)
	taskService := services.NewTaskService(taskRepo, activityService, logger)
	noteService := services.NewNoteService(noteRepo, logger)
	statsService := services.NewStatsService(statsRepo, statsCache, logger)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService, logger)
	leadHandler := handlers.NewLeadHandler(leadService, logger)
	clientHandler := handlers.NewClientHandler(clientService, logger)
	customerHandler := handlers.NewCustomerHandler(customerService, logger)
	goalHandler := handlers.NewGoalHandler(goalService, logger)
	taskHandler := handlers.NewTaskHandler(taskService, logger)
	noteHandler := handlers.NewNoteHandler(noteService, logger)
	activityHandler := handlers.NewActivityHandler(activityService, logger)
	statsHandler := handlers.NewStatsHandler(statsService, logger)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, authService)

	router := setupRouter(cfg, logger, authMiddleware,
		healthHandler, authHandler, leadHandler, clientHandler, customerHandler,
		goalHandler, taskHandler, noteHandler, activityHandler, statsHandler)

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.WithField("address", cfg.GetServerAddress()).Info("Starting crm-tool")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}

	logger.Info("Server exited")
}

func setupRouter(
	cfg *config.Config,
	logger *logrus.Logger,
	authMiddleware *middleware.AuthMiddleware,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	leadHandler *handlers.LeadHandler,
	clientHandler *handlers.ClientHandler,
	customerHandler *handlers.CustomerHandler,
	goalHandler *handlers.GoalHandler,
	taskHandler *handlers.TaskHandler,
	noteHandler *handlers.NoteHandler,
	activityHandler *handlers.ActivityHandler,
	statsHandler *handlers.StatsHandler,
) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS(cfg.CORS))

	// Unauthenticated surface
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Everything else requires a bearer token
	api := router.Group("/")
	api.Use(authMiddleware.AuthRequired())
	{
		api.GET("/leads", leadHandler.List)
		api.POST("/leads", leadHandler.Create)
		api.GET("/leads/:id", leadHandler.Get)
		api.PATCH("/leads/:id", leadHandler.Update)
		api.DELETE("/leads/:id", leadHandler.Delete)
		api.POST("/leads/:id/convert", leadHandler.Convert)

		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.GET("/clients/:id", clientHandler.Get)
		api.PATCH("/clients/:id", clientHandler.Update)
		api.DELETE("/clients/:id", clientHandler.Delete)
		api.POST("/clients/:id/complete", clientHandler.Complete)
		api.POST("/clients/:id/onboarding-tasks", clientHandler.GenerateOnboardingTasks)

		api.GET("/customers", customerHandler.List)
		api.POST("/customers", customerHandler.Create)
		api.GET("/customers/:id", customerHandler.Get)
		api.PATCH("/customers/:id", customerHandler.Update)
		api.DELETE("/customers/:id", customerHandler.Delete)

		api.GET("/goals", goalHandler.List)
		api.POST("/goals", goalHandler.Create)
		api.GET("/goals/:id", goalHandler.Get)
		api.PATCH("/goals/:id", goalHandler.Update)
		api.DELETE("/goals/:id", goalHandler.Delete)

		api.GET("/tasks", taskHandler.List)
		api.POST("/tasks", taskHandler.Create)
		api.GET("/tasks/:id", taskHandler.Get)
		api.PATCH("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Create)
		api.GET("/notes/:id", noteHandler.Get)
		api.PATCH("/notes/:id", noteHandler.Update)
		api.DELETE("/notes/:id", noteHandler.Delete)

		api.GET("/activities", activityHandler.List)
		api.POST("/activities", activityHandler.Create)
		api.DELETE("/activities/:id", activityHandler.Delete)

		api.GET("/stats", statsHandler.Get)
	}

	return router
}

func autoMigrate(db *gorm.DB) error {
	modelsToMigrate := []interface{}{
		&models.User{},
		&models.Lead{},
		&models.Client{},
		&models.Customer{},
		&models.Goal{},
		&models.Task{},
		&models.Note{},
		&models.Activity{},
	}

	for _, model := range modelsToMigrate {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}
	return nil
}

func initDatabase(cfg *config.Config, logger *logrus.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database")
	return db, nil
}
