package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT access tokens.
type Claims struct {
	UserID uuid.UUID
	Role   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a new signed access token for a given user.
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateRefreshToken creates an opaque refresh token together with the
	// hash under which it is stored.
	GenerateRefreshToken(userID uuid.UUID) (raw string, hash string, err error)

	// HashRefreshToken returns the storage hash of a raw refresh token.
	HashRefreshToken(raw string) string

	// GetAccessTokenDuration returns the configured duration for access tokens.
	GetAccessTokenDuration() time.Duration

	// GetRefreshTokenDuration returns the configured duration for refresh tokens.
	GetRefreshTokenDuration() time.Duration
}
