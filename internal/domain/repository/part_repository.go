package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPartNotFound is returned when a part is not found.
var ErrPartNotFound = errors.New("part not found")

// PartRepository defines the persistence operations for spare parts.
type PartRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Part, error)

	// List returns parts matching the query, newest first.
	List(ctx context.Context, query ListQuery) ([]*entity.Part, error)

	Create(ctx context.Context, part *entity.Part) error

	Update(ctx context.Context, part *entity.Part) error

	Replace(ctx context.Context, part *entity.Part) error

	Delete(ctx context.Context, id uuid.UUID) error
}
