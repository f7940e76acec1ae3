// Package main is the entry point for the auth service.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ushakiran23/Ushakiran-Back/internal/config"
	"github.com/ushakiran23/Ushakiran-Back/internal/database"
	"github.com/ushakiran23/Ushakiran-Back/internal/handlers"
	"github.com/ushakiran23/Ushakiran-Back/internal/middleware"
	"github.com/ushakiran23/Ushakiran-Back/internal/repository"
	"github.com/ushakiran23/Ushakiran-Back/internal/routes"
	"github.com/ushakiran23/Ushakiran-Back/internal/service"
	"github.com/ushakiran23/Ushakiran-Back/pkg/redis"
)

// @title Travel-U Auth Service API
// @version 1.0
// @description Authentication service for the Travel-U backend
// @host localhost:8084
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(os.Stdout)

	// Load configuration
	cfg := config.Load()
	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Initialize Redis
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	resetTokenRepo := repository.NewResetTokenRepository(redisClient)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	authService := service.NewAuthService(userRepo, resetTokenRepo, jwtService, cfg.FrontendBaseURL)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler()

	// Setup router
	router := gin.Default()
	routes.Setup(router, middleware.Authentication(jwtService, userRepo), authHandler, healthHandler)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("starting auth service")
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
