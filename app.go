package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/clipstack/clipstack-backend/internal/auth"
	"github.com/clipstack/clipstack-backend/internal/comment"
	"github.com/clipstack/clipstack-backend/internal/config"
	"github.com/clipstack/clipstack-backend/internal/database"
	"github.com/clipstack/clipstack-backend/internal/database/postgres"
	"github.com/clipstack/clipstack-backend/internal/health"
	httpHandler "github.com/clipstack/clipstack-backend/internal/http"
	"github.com/clipstack/clipstack-backend/internal/logger"
	"github.com/clipstack/clipstack-backend/internal/notification"
	"github.com/clipstack/clipstack-backend/internal/profile"
)

// App holds all application dependencies
type App struct {
	ctx      context.Context
	Config   *config.Config
	db       *gorm.DB
	dbSvc    *database.DatabaseService
	redis    *redis.Client
	router   *gin.Engine
	logger   logger.Logger
	tokens   auth.TokenService
	comments *comment.Service
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config, appLogger logger.Logger) (*App, error) {
	dbService := database.NewDatabaseService(&cfg.Database, appLogger)
	db, err := dbService.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.Notification.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %v", err)
		}
	}

	commentRepo := postgres.NewCommentRepository(db, appLogger)
	reactionRepo := postgres.NewReactionRepository(db, appLogger)
	profileLookup := profile.NewService(db)

	commentService := comment.NewService(
		commentRepo,
		reactionRepo,
		profileLookup,
		comment.DeletePolicy(cfg.Comment.OnDelete),
		appLogger,
	)

	if redisClient != nil {
		producer := notification.NewCommentProducer(redisClient, &cfg.Notification, appLogger)
		commentService.SetEventPublisher(producer)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	app := &App{
		ctx:      ctx,
		Config:   cfg,
		db:       db,
		dbSvc:    dbService,
		redis:    redisClient,
		router:   router,
		logger:   appLogger,
		tokens:   auth.NewJWTService(auth.NewConfigFromAuthConfig(&cfg.Auth)),
		comments: commentService,
	}

	app.setupRoutes()

	return app, nil
}

func (a *App) setupRoutes() {
	responseHandler := httpHandler.NewResponseHandler(a.logger)

	a.router.Use(httpHandler.RecoveryMiddleware(responseHandler, a.logger))
	a.router.Use(httpHandler.RequestLoggerMiddleware(a.logger))
	a.router.Use(httpHandler.CORSMiddleware())

	healthHandler := health.NewHandler(responseHandler, a.db, a.redis)
	a.router.GET("/health", healthHandler.HandleHealthCheck)

	commentHandler := comment.NewHandler(a.comments, responseHandler)
	commentHandler.RegisterRoutes(a.router, a.tokens)
}

// Run starts the application
func (a *App) Run() error {
	port := a.Config.Server.Port
	a.logger.LogInfo(fmt.Sprintf("Starting server on port %d", port), nil)
	if err := a.router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return a.logger.LogError(err, "server failed to start")
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.LogWarn("Error closing Redis connection", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if err := a.dbSvc.Close(); err != nil {
		a.logger.LogWarn("Error closing database connections", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.logger.LogInfo("Application shutdown complete", nil)
	return nil
}
