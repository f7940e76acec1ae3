// Package handlers contains HTTP request handlers for the auth service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ushakiran23/Ushakiran-Back/internal/metrics"
	"github.com/ushakiran23/Ushakiran-Back/internal/middleware"
	"github.com/ushakiran23/Ushakiran-Back/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest represents the forgot-password request payload.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// Register godoc
// @Summary Register a new account
// @Description Create a user and return an authentication token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 200 {object} service.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailExists) {
			metrics.Registrations.WithLabelValues("conflict").Inc()
			respondError(c, http.StatusConflict, service.ErrEmailExists.Error())
			return
		}
		metrics.Registrations.WithLabelValues("error").Inc()
		logAndRespondError(c, http.StatusInternalServerError, err, "registration failed")
		return
	}

	metrics.Registrations.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, response)
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return an authentication token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.LoginAttempts.WithLabelValues("failure").Inc()
			respondError(c, http.StatusUnauthorized, service.ErrInvalidCredentials.Error())
			return
		}
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		logAndRespondError(c, http.StatusInternalServerError, err, "login failed")
		return
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, response)
}

// ForgotPassword godoc
// @Summary Request a password reset
// @Description Issue a reset token and return the reset link
// @Tags auth
// @Accept json
// @Produce json
// @Param request body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	resetLink, err := h.authService.ForgotPassword(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRequired):
			metrics.PasswordResetRequests.WithLabelValues("invalid").Inc()
			respondError(c, http.StatusBadRequest, service.ErrEmailRequired.Error())
		case errors.Is(err, service.ErrEmailNotFound):
			metrics.PasswordResetRequests.WithLabelValues("not_found").Inc()
			respondError(c, http.StatusNotFound, service.ErrEmailNotFound.Error())
		default:
			metrics.PasswordResetRequests.WithLabelValues("error").Inc()
			logAndRespondError(c, http.StatusInternalServerError, err, "forgot password failed")
		}
		return
	}

	// Email delivery is not wired up yet; the link is returned in the body
	// so the frontend can surface it.
	metrics.PasswordResetRequests.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"reset_link": resetLink})
}

// Me godoc
// @Summary Current user
// @Description Return the identity attached to the request
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "not authenticated")
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": user.Email})
}
