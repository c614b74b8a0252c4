package usecase

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
)

// MachineUsecase defines the operations on tracked machines.
type MachineUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*MachineDTO, error)
	List(ctx context.Context, query repository.ListQuery) ([]*MachineDTO, error)
	ListBySite(ctx context.Context, siteID uuid.UUID) ([]*MachineDTO, error)
	Create(ctx context.Context, input MachineInput) (*MachineDTO, error)
	Update(ctx context.Context, id uuid.UUID, input MachineInput) (*MachineDTO, error)
	Replace(ctx context.Context, id uuid.UUID, input MachineInput) (*MachineDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// States lists the lifecycle states in order.
	States() []string

	// QRCode renders the printable PNG label for a machine.
	QRCode(ctx context.Context, id uuid.UUID) ([]byte, error)
}
