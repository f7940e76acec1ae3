// Package routes defines HTTP routes for the auth service.
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ushakiran23/Ushakiran-Back/internal/handlers"
	"github.com/ushakiran23/Ushakiran-Back/internal/metrics"
)

// Setup configures all HTTP routes for the application. The authentication
// middleware runs for every route exactly once, before any handler.
func Setup(
	router *gin.Engine,
	authentication gin.HandlerFunc,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(metrics.Middleware())
	router.Use(authentication)

	// Health check
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	v1 := router.Group("/api/v1/auth")
	{
		v1.POST("/register", authHandler.Register)
		v1.POST("/login", authHandler.Login)
		v1.POST("/forgot-password", authHandler.ForgotPassword)
		v1.GET("/me", authHandler.Me)
	}
}
