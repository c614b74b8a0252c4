package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrWorkItemNotFound is returned when a work item is not found.
var ErrWorkItemNotFound = errors.New("work item not found")

// WorkItemRepository defines the persistence operations for individual work items.
type WorkItemRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkItem, error)

	// List returns work items matching the query, newest first.
	List(ctx context.Context, query ListQuery) ([]*entity.WorkItem, error)

	// ListByWorkLog returns all items attached to the given work log.
	ListByWorkLog(ctx context.Context, workLogID uuid.UUID) ([]*entity.WorkItem, error)

	// ListByOwner returns work items that include the given user among the owners.
	ListByOwner(ctx context.Context, ownerID uuid.UUID, query ListQuery) ([]*entity.WorkItem, error)

	// ListByMachine returns work items recorded against the given machine.
	ListByMachine(ctx context.Context, machineID uuid.UUID, query ListQuery) ([]*entity.WorkItem, error)

	Create(ctx context.Context, item *entity.WorkItem) error

	Update(ctx context.Context, item *entity.WorkItem) error

	Replace(ctx context.Context, item *entity.WorkItem) error

	Delete(ctx context.Context, id uuid.UUID) error
}
