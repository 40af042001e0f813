// Package auth provides token issuing/verification and credential hashing.
package auth

import (
	"context"
	"time"

	"github.com/phrazzld/mesto-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed token asserting the given user's
	// identity, expiring after the configured lifetime.
	GenerateToken(ctx context.Context, userID domain.ID) (string, error)

	// ValidateToken verifies the provided token string and extracts the
	// claims. Verification is binary: a bad signature, malformed payload,
	// or elapsed expiry all fail, with no partial outcomes.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the minimal identity descriptor embedded in a signed token.
type Claims struct {
	// UserID is the account the token was issued for.
	UserID domain.ID `json:"uid,omitempty"`

	// Standard registered JWT claims.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
