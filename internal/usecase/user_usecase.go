package usecase

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
)

// UserUsecase defines the operations on user accounts.
type UserUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context, query repository.ListQuery) ([]*UserDTO, error)
	Create(ctx context.Context, input UserInput) (*UserDTO, error)

	// Update merges the provided fields. Only an admin actor may touch the
	// role field.
	Update(ctx context.Context, actor Actor, id uuid.UUID, input UserInput) (*UserDTO, error)

	// Replace overwrites the whole record, keeping the id. The role guard
	// applies the same way as for Update.
	Replace(ctx context.Context, actor Actor, id uuid.UUID, input UserInput) (*UserDTO, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// Roles lists the assignable user roles.
	Roles() []string
}
