package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMachineNotFound is returned when a machine is not found.
var ErrMachineNotFound = errors.New("machine not found")

// MachineRepository defines the persistence operations for tracked machines.
type MachineRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error)

	// List returns machines matching the query, newest first.
	List(ctx context.Context, query ListQuery) ([]*entity.Machine, error)

	Create(ctx context.Context, machine *entity.Machine) error

	Update(ctx context.Context, machine *entity.Machine) error

	Replace(ctx context.Context, machine *entity.Machine) error

	// UpdateSlots persists only the attachment slot counters.
	UpdateSlots(ctx context.Context, id uuid.UUID, slots entity.SlotCounts) error

	Delete(ctx context.Context, id uuid.UUID) error
}
