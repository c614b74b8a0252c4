package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByExternalID retrieves a single user by their external identity provider id.
	FindByExternalID(ctx context.Context, externalID string) (*entity.User, error)

	// FindByUsername retrieves a single user by their login name.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// List returns users matching the query, sorted by name ascending.
	List(ctx context.Context, query ListQuery) ([]*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// Replace substitutes the whole record body while preserving the id,
	// implemented as delete-and-reinsert-by-id.
	Replace(ctx context.Context, user *entity.User) error

	// Delete removes a user. Dependent records keep their dangling references.
	Delete(ctx context.Context, id uuid.UUID) error
}
