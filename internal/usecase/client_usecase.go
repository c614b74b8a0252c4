package usecase

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
)

// ClientUsecase defines the operations on customer organizations.
type ClientUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*ClientDTO, error)
	List(ctx context.Context, query repository.ListQuery) ([]*ClientDTO, error)
	Create(ctx context.Context, input ClientInput) (*ClientDTO, error)
	Update(ctx context.Context, id uuid.UUID, input ClientInput) (*ClientDTO, error)
	Replace(ctx context.Context, id uuid.UUID, input ClientInput) (*ClientDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// ContractTypes lists the contract type labels offered by the UI.
	ContractTypes() []string
}
