package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWorkLogNotFound is returned when a work log is not found.
var ErrWorkLogNotFound = errors.New("work log not found")

// WorkLogRepository defines the persistence operations for daily work logs.
type WorkLogRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkLog, error)

	// List returns work logs matching the query, ordered by update time ascending.
	List(ctx context.Context, query ListQuery) ([]*entity.WorkLog, error)

	// ListByOwner returns work logs that include the given user among the owners.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, query ListQuery) ([]*entity.WorkLog, error)

	Create(ctx context.Context, log *entity.WorkLog) error

	Update(ctx context.Context, log *entity.WorkLog) error

	Replace(ctx context.Context, log *entity.WorkLog) error

	// UpdateSlots persists only the attachment slot counters.
	UpdateSlots(ctx context.Context, id uuid.UUID, slots entity.SlotCounts) error

	Delete(ctx context.Context, id uuid.UUID) error
}
