package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aura-health/aura/backend/internal/config"
	"github.com/aura-health/aura/backend/internal/handlers"
	"github.com/aura-health/aura/backend/internal/logger"
	"github.com/aura-health/aura/backend/internal/middleware"
	"github.com/aura-health/aura/backend/internal/repository"
	"github.com/aura-health/aura/backend/internal/service"
	"github.com/aura-health/aura/backend/pkg/supabase"
	"github.com/gin-gonic/gin"
	"github.com/go-co-op/gocron"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	// Initialize structured logging
	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting aura API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
	)

	// Initialize Supabase client
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)

	// Initialize repositories
	healthRepo := repository.NewHealthDataRepository(supabaseClient)
	patternRepo := repository.NewPatternRepository(supabaseClient)
	predictionRepo := repository.NewPredictionRepository(supabaseClient)
	idempotencyRepo := repository.NewIdempotencyRepository(supabaseClient)

	// Initialize services
	healthService := service.NewHealthDataService(healthRepo)
	wellnessService := service.NewWellnessService(healthRepo, patternRepo, predictionRepo)

	// Initialize handlers
	healthDataHandler := handlers.NewHealthDataHandler(healthService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)

	// Purge expired predictions hourly so stale suggestions never linger
	scheduler := gocron.NewScheduler(time.UTC)
	if _, err := scheduler.Every(1).Hour().Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := predictionRepo.DeleteExpired(ctx, time.Now()); err != nil {
			logger.Default().Error("expired prediction purge failed", logger.Err(err))
			return
		}
		logger.Default().Debug("expired prediction purge completed")
	}); err != nil {
		return fmt.Errorf("failed to schedule prediction purge: %w", err)
	}
	scheduler.StartAsync()
	defer scheduler.Stop()

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		protected.Use(middleware.Idempotency(idempotencyRepo))
		{
			// Health data routes
			protected.POST("/health/data", healthDataHandler.RecordHealthData)
			protected.POST("/health/data/batch", healthDataHandler.RecordHealthDataBatch)
			protected.GET("/health/data", healthDataHandler.GetHealthData)
			protected.GET("/health/latest", healthDataHandler.GetLatestHealthData)

			// Wellness routes
			protected.POST("/wellness/analyze", middleware.RateLimitAnalyze(), wellnessHandler.Analyze)
			protected.GET("/wellness/profile", wellnessHandler.GetProfile)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
