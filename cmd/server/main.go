package main

import (
	"fmt"
	"log"

	"github.com/architect/lostfound/internal/auth"
	authHandlers "github.com/architect/lostfound/internal/auth/handlers"
	"github.com/architect/lostfound/internal/common/database"
	"github.com/architect/lostfound/internal/common/middleware"
	itemHandlers "github.com/architect/lostfound/internal/items/handlers"
	"github.com/architect/lostfound/internal/items/models"
	"github.com/architect/lostfound/pkg/config"
	"github.com/architect/lostfound/pkg/logger"
	"github.com/architect/lostfound/pkg/metrics"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := database.InitWithType(cfg.Database.Type, cfg.Database.DSN); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.DB.AutoMigrate(&models.Item{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.SecretKey, cfg.Auth.TokenExpiry, cfg.Auth.Issuer)
	login := authHandlers.NewLoginHandlers(tokens, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())
	router.Use(metrics.Middleware())

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Lost & Found API is running")
	})
	router.GET("/metrics", metrics.Handler())

	router.GET("/items", itemHandlers.ListItems)
	router.GET("/items/:id", itemHandlers.GetItem)
	router.POST("/items", middleware.OptionalAuth(tokens), itemHandlers.CreateItem)
	router.PUT("/items/:id", middleware.RequireRole(tokens, auth.RoleUser), itemHandlers.UpdateItem)
	router.DELETE("/items/:id", middleware.RequireRole(tokens, auth.RoleAdmin), itemHandlers.DeleteItem)

	router.POST("/login/user", login.UserLogin)
	router.POST("/login/admin", login.AdminLogin)

	address := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting Lost & Found API server",
		zap.String("address", address),
		zap.String("env", cfg.Server.Env),
		zap.String("database", cfg.Database.Type),
	)

	if err := router.Run(address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
