package main

import (
	"fmt"
	"net/http"
	"os"

	"spendsense/internal/config"
	"spendsense/internal/database"
	"spendsense/internal/handlers"
	"spendsense/internal/logger"
	"spendsense/internal/middleware"
	"spendsense/internal/services"
	"spendsense/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "spendsense/internal/docs" // Import swagger docs
)

// @title           SpendSense Health Score API
// @version         1.0
// @description     Computes, records, and serves the SpendSense financial health score: a daily weighted five-factor 0-100 score with history and improvement suggestions.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	scoreService := services.NewHealthScoreService(db)
	runService := services.NewScoreRunService(db)

	// Initialize handlers
	scoreHandler := handlers.NewHealthScoreHandler(scoreService, runService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Pipeline routes (machine-to-machine, X-API-Key)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey))
	pipeline.POST("/scores", scoreHandler.ComputeScores)

	// User routes (bearer JWT from the main app)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	scores := protected.Group("/scores")
	scores.GET("/current", scoreHandler.GetCurrentScore)
	scores.GET("/history", scoreHandler.GetScoreHistory)
	scores.GET("/suggestions", scoreHandler.GetSuggestions)

	log.Infof("Starting SpendSense health score server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
