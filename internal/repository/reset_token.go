package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ushakiran23/Ushakiran-Back/internal/models"
)

var (
	// ErrTokenNotFound is returned when no reset token exists for the value.
	ErrTokenNotFound = errors.New("reset token not found")
	// ErrDuplicateToken is returned when the token string is already in use.
	ErrDuplicateToken = errors.New("reset token already exists")
)

// ResetTokenRepository defines the interface for password-reset token storage.
// Tokens are keyed by their token string, so uniqueness across all records is
// enforced by the store itself.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *models.PasswordResetToken) error
	FindByToken(ctx context.Context, token string) (*models.PasswordResetToken, error)
}

type resetTokenRepository struct {
	redis *redis.Client
}

// NewResetTokenRepository creates a Redis-backed ResetTokenRepository.
func NewResetTokenRepository(redisClient *redis.Client) ResetTokenRepository {
	return &resetTokenRepository{redis: redisClient}
}

func (r *resetTokenRepository) Create(ctx context.Context, token *models.PasswordResetToken) error {
	value, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to encode reset token: %w", err)
	}

	// SETNX rejects a second record with the same token string. The record
	// expires with the token itself, so redeemed-but-stale rows never pile up.
	ok, err := r.redis.SetNX(ctx, resetTokenKey(token.Token), value, time.Until(token.ExpiresAt)).Result()
	if err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}
	if !ok {
		return ErrDuplicateToken
	}
	return nil
}

func (r *resetTokenRepository) FindByToken(ctx context.Context, token string) (*models.PasswordResetToken, error) {
	value, err := r.redis.Get(ctx, resetTokenKey(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to load reset token: %w", err)
	}

	var record models.PasswordResetToken
	if err := json.Unmarshal([]byte(value), &record); err != nil {
		return nil, fmt.Errorf("failed to decode reset token: %w", err)
	}
	return &record, nil
}

func resetTokenKey(token string) string {
	return fmt.Sprintf("reset_token:%s", token)
}
