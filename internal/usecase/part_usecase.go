package usecase

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
)

// PartUsecase defines the operations on spare parts.
type PartUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*PartDTO, error)
	List(ctx context.Context, query repository.ListQuery) ([]*PartDTO, error)
	Create(ctx context.Context, input PartInput) (*PartDTO, error)
	Update(ctx context.Context, id uuid.UUID, input PartInput) (*PartDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// States lists the part lifecycle states.
	States() []string
}
