// Package models contains data models for the auth service.
package models

import "time"

// PasswordResetToken is a single-purpose credential issued on a
// forgot-password request. The token string is globally unique; the record
// lives in Redis under the token string and is serialized as JSON.
type PasswordResetToken struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
