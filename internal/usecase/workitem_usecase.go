package usecase

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
)

// WorkItemUsecase defines the operations on individual work items.
type WorkItemUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*WorkItemDTO, error)
	List(ctx context.Context, query repository.ListQuery) ([]*WorkItemDTO, error)
	ListByWorkLog(ctx context.Context, workLogID uuid.UUID) ([]*WorkItemDTO, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*WorkItemDTO, error)
	ListByMachine(ctx context.Context, machineID uuid.UUID, query repository.ListQuery) ([]*WorkItemDTO, error)
	Create(ctx context.Context, input WorkItemInput) (*WorkItemDTO, error)
	Update(ctx context.Context, id uuid.UUID, input WorkItemInput) (*WorkItemDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// WorkTypes lists the task classifications.
	WorkTypes() []string
}
