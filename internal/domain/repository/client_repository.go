package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrClientNotFound is returned when a client organization is not found.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository defines the persistence operations for customer organizations.
type ClientRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// List returns clients matching the query, newest first.
	List(ctx context.Context, query ListQuery) ([]*entity.Client, error)

	Create(ctx context.Context, client *entity.Client) error

	Update(ctx context.Context, client *entity.Client) error

	// Replace substitutes the whole record body while preserving the id.
	Replace(ctx context.Context, client *entity.Client) error

	Delete(ctx context.Context, id uuid.UUID) error
}
