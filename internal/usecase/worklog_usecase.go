package usecase

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
)

// WorkLogUsecase defines the operations on daily work logs.
type WorkLogUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*WorkLogDTO, error)
	List(ctx context.Context, query repository.ListQuery) ([]*WorkLogDTO, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*WorkLogDTO, error)
	Create(ctx context.Context, input WorkLogInput) (*WorkLogDTO, error)
	Update(ctx context.Context, id uuid.UUID, input WorkLogInput) (*WorkLogDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
