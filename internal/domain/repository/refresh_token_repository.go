package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token exists but is past its expiry.
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)

// RefreshTokenRepository defines the persistence operations for user sessions.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// ConsumeByHash atomically deletes the token with the given hash and returns it.
	// Returns ErrRefreshTokenNotFound when no such token exists. A second call with
	// the same hash always fails, which makes every token single-use.
	ConsumeByHash(ctx context.Context, hash string) (*entity.RefreshToken, error)

	// DeleteByUserID removes all sessions belonging to a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes tokens whose expiry has passed. Returns the number removed.
	DeleteExpired(ctx context.Context) (int64, error)
}
