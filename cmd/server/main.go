package main

import (
	"context"
	"log"
	"time"

	"lexsim-backend/config"
	"lexsim-backend/extractor"
	"lexsim-backend/handlers"
	"lexsim-backend/middleware"
	"lexsim-backend/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file from project root (relative to cmd/server/)
	// Try current directory first, then project root
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	// Initialize the generation provider
	generator, err := service.NewGenerator(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize generation provider",
			zap.String("provider", string(cfg.Provider)),
			zap.Error(err),
		)
	}

	// Initialize services
	simulationService := service.NewSimulationService(
		service.WithGenerator(generator),
		service.WithExtractor(extractor.New(logger)),
		service.WithLogger(logger),
	)

	// Initialize handlers and middleware
	simulationHandler := handlers.NewSimulationHandler(simulationService, logger)
	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimitPerMinute,
		time.Minute,
		middleware.WithRateLimiterLogger(logger),
	)

	// Setup Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.CORSOrigins) == 1 && cfg.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSOrigins
		corsConfig.AllowCredentials = true
	}
	r.Use(cors.New(corsConfig))

	// Health check endpoint
	r.GET("/health", simulationHandler.Health)

	// API routes
	api := r.Group("/api")
	{
		api.POST("/simulate", rateLimiter.Middleware(), simulationHandler.Simulate)
	}

	// Start server
	logger.Info("server starting",
		zap.String("app", cfg.AppName),
		zap.String("port", cfg.Port),
		zap.String("provider", string(cfg.Provider)),
	)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
