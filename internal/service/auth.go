package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ushakiran23/Ushakiran-Back/internal/models"
	"github.com/ushakiran23/Ushakiran-Back/internal/repository"
)

var (
	// ErrEmailExists is returned by Register when the email is taken.
	ErrEmailExists = errors.New("email already registered")
	// ErrInvalidCredentials is returned by Login for unknown email and wrong
	// password alike, so the two cases cannot be told apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailRequired is returned by ForgotPassword for a blank email.
	ErrEmailRequired = errors.New("email is required")
	// ErrEmailNotFound is returned by ForgotPassword when no account exists.
	ErrEmailNotFound = errors.New("no account found for this email")
)

// resetTokenTTL is how long a password-reset token stays redeemable.
const resetTokenTTL = 10 * time.Minute

// AuthResponse carries a freshly minted authentication token.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
	Email     string `json:"email"`
}

// AuthService orchestrates registration, login and the password-reset
// lifecycle on top of the credential stores.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, email, password string) (*AuthResponse, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type authService struct {
	userRepo        repository.UserRepository
	resetTokenRepo  repository.ResetTokenRepository
	jwtService      JWTService
	frontendBaseURL string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	userRepo repository.UserRepository,
	resetTokenRepo repository.ResetTokenRepository,
	jwtService JWTService,
	frontendBaseURL string,
) AuthService {
	return &authService{
		userRepo:        userRepo,
		resetTokenRepo:  resetTokenRepo,
		jwtService:      jwtService,
		frontendBaseURL: strings.TrimSuffix(frontendBaseURL, "/"),
	}
}

func (s *authService) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.mintResponse(user.Email)
}

func (s *authService) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.mintResponse(user.Email)
}

// ForgotPassword issues a reset token and returns the link the frontend
// redeems it with. Unlike Login, this path reports whether the account
// exists; the asymmetry is deliberate and documented.
func (s *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", ErrEmailRequired
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", ErrEmailNotFound
	}

	resetToken := &models.PasswordResetToken{
		Email:     email,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.resetTokenRepo.Create(ctx, resetToken); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/reset-password?token=%s", s.frontendBaseURL, resetToken.Token), nil
}

func (s *authService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userRepo.FindByEmail(ctx, email)
}

func (s *authService) EmailExists(ctx context.Context, email string) (bool, error) {
	return s.userRepo.ExistsByEmail(ctx, email)
}

func (s *authService) mintResponse(email string) (*AuthResponse, error) {
	token, err := s.jwtService.GenerateToken(email)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{
		Token:     token,
		ExpiresIn: int64(s.jwtService.Expiry().Seconds()),
		Email:     email,
	}, nil
}
