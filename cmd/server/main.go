package main

import (
	"fmt"
	"net/http"

	"trail-catalog-go/internal/config"
	"trail-catalog-go/internal/database"
	"trail-catalog-go/internal/handler"
	"trail-catalog-go/internal/repository"
	"trail-catalog-go/internal/service"
	"trail-catalog-go/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	logger.Info("starting trail catalog API server")

	logger.Info("connecting to database...")
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer database.Close(db)

	logger.Info("running database migrations...")
	if err := database.Migrate(db); err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	if err := database.HealthCheck(db); err != nil {
		logger.Fatalf("database is not reachable: %v", err)
	}

	logger.Info("database connected and migrated")

	trailRepo := repository.NewTrailRepository(db)
	userRepo := repository.NewUserRepository(db)

	trailValidator := validation.NewTrailValidator(userRepo)
	trailService := service.NewTrailService(trailRepo, trailValidator, logger)

	trailHandler := handler.NewTrailHandler(trailService, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	trailHandler.RegisterRoutes(router)

	router.GET("/api/v1/health", func(c *gin.Context) {
		if err := database.HealthCheck(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Trail Catalog API Server",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("server listening on %s", serverAddr)

	if err := router.Run(serverAddr); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}

// corsMiddleware adds CORS headers for browser clients.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization, X-Requested-With")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
