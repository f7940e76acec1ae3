package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/ushakiran23/Ushakiran-Back/internal/middleware"
	"github.com/ushakiran23/Ushakiran-Back/internal/models"
	"github.com/ushakiran23/Ushakiran-Back/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	registerFunc       func(ctx context.Context, email, password string) (*service.AuthResponse, error)
	loginFunc          func(ctx context.Context, email, password string) (*service.AuthResponse, error)
	forgotPasswordFunc func(ctx context.Context, email string) (string, error)
	findByEmailFunc    func(ctx context.Context, email string) (*models.User, error)
	emailExistsFunc    func(ctx context.Context, email string) (bool, error)
}

func (m *mockAuthService) Register(ctx context.Context, email, password string) (*service.AuthResponse, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.AuthResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if m.forgotPasswordFunc != nil {
		return m.forgotPasswordFunc(ctx, email)
	}
	return "", errors.New("not implemented")
}

func (m *mockAuthService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) EmailExists(ctx context.Context, email string) (bool, error) {
	if m.emailExistsFunc != nil {
		return m.emailExistsFunc(ctx, email)
	}
	return false, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupTestRouter(mockService *mockAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewAuthHandler(mockService)
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)
	router.POST("/forgot-password", handler.ForgotPassword)
	router.GET("/me", handler.Me)

	return router
}

func postJSON(router *gin.Engine, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body: %v", err)
	}
	return body
}

// =============================================================================
// Register Tests
// =============================================================================

func TestRegisterHandler_Success(t *testing.T) {
	mockService := &mockAuthService{
		registerFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return &service.AuthResponse{Token: "signed-token", ExpiresIn: 3600, Email: email}, nil
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/register", `{"email":"a@x.com","password":"secret123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	body := decodeBody(t, w)
	if body["token"] != "signed-token" {
		t.Errorf("token = %v, want signed-token", body["token"])
	}
	if body["email"] != "a@x.com" {
		t.Errorf("email = %v, want a@x.com", body["email"])
	}
}

func TestRegisterHandler_Conflict(t *testing.T) {
	mockService := &mockAuthService{
		registerFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return nil, service.ErrEmailExists
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/register", `{"email":"a@x.com","password":"secret123"}`)

	if w.Code != http.StatusConflict {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestRegisterHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing password",
			body: `{"email":"a@x.com"}`,
		},
		{
			name: "missing email",
			body: `{"password":"secret123"}`,
		},
		{
			name: "invalid email",
			body: `{"email":"not-an-email","password":"secret123"}`,
		},
		{
			name: "malformed json",
			body: `{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(&mockAuthService{})

			w := postJSON(router, "/register", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRegisterHandler_InternalError(t *testing.T) {
	mockService := &mockAuthService{
		registerFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return nil, errors.New("pg: connection refused")
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/register", `{"email":"a@x.com","password":"secret123"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
	}

	// Internal detail must not leak to the client
	body := decodeBody(t, w)
	if body["error"] != "registration failed" {
		t.Errorf("error = %v, want the generic message", body["error"])
	}
}

// =============================================================================
// Login Tests
// =============================================================================

func TestLoginHandler_Success(t *testing.T) {
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return &service.AuthResponse{Token: "signed-token", ExpiresIn: 3600, Email: email}, nil
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/login", `{"email":"a@x.com","password":"secret123"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	body := decodeBody(t, w)
	if body["token"] != "signed-token" {
		t.Errorf("token = %v, want signed-token", body["token"])
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, email, password string) (*service.AuthResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/login", `{"email":"a@x.com","password":"wrong"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLoginHandler_BadRequest(t *testing.T) {
	router := setupTestRouter(&mockAuthService{})

	w := postJSON(router, "/login", `{"email":"a@x.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

// =============================================================================
// ForgotPassword Tests
// =============================================================================

func TestForgotPasswordHandler_Success(t *testing.T) {
	mockService := &mockAuthService{
		forgotPasswordFunc: func(ctx context.Context, email string) (string, error) {
			return "http://localhost:5173/reset-password?token=abc", nil
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/forgot-password", `{"email":"a@x.com"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	body := decodeBody(t, w)
	if body["reset_link"] != "http://localhost:5173/reset-password?token=abc" {
		t.Errorf("reset_link = %v, want the issued link", body["reset_link"])
	}
}

func TestForgotPasswordHandler_BlankEmail(t *testing.T) {
	mockService := &mockAuthService{
		forgotPasswordFunc: func(ctx context.Context, email string) (string, error) {
			return "", service.ErrEmailRequired
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/forgot-password", `{"email":""}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestForgotPasswordHandler_UnknownEmail(t *testing.T) {
	mockService := &mockAuthService{
		forgotPasswordFunc: func(ctx context.Context, email string) (string, error) {
			return "", service.ErrEmailNotFound
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/forgot-password", `{"email":"nobody@x.com"}`)

	if w.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestForgotPasswordHandler_InternalError(t *testing.T) {
	mockService := &mockAuthService{
		forgotPasswordFunc: func(ctx context.Context, email string) (string, error) {
			return "", errors.New("redis: connection refused")
		},
	}
	router := setupTestRouter(mockService)

	w := postJSON(router, "/forgot-password", `{"email":"a@x.com"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

// =============================================================================
// Me Tests
// =============================================================================

func TestMeHandler_Authenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(&mockAuthService{})
	router.GET("/me", func(c *gin.Context) {
		middleware.SetCurrentUser(c, &models.User{ID: 1, Email: "a@x.com"})
	}, handler.Me)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	body := decodeBody(t, w)
	if body["email"] != "a@x.com" {
		t.Errorf("email = %v, want a@x.com", body["email"])
	}
}

func TestMeHandler_Unauthenticated(t *testing.T) {
	router := setupTestRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

// =============================================================================
// Health Tests
// =============================================================================

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", NewHealthHandler().Check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", w.Code, http.StatusOK)
	}

	body := decodeBody(t, w)
	if body["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", body["status"])
	}
}
