package usecase

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"

	"github.com/google/uuid"
)

// SiteUsecase defines the operations on physical sites.
type SiteUsecase interface {
	Get(ctx context.Context, id uuid.UUID) (*SiteDTO, error)
	List(ctx context.Context, query repository.ListQuery) ([]*SiteDTO, error)
	Create(ctx context.Context, input SiteInput) (*SiteDTO, error)
	Update(ctx context.Context, id uuid.UUID, input SiteInput) (*SiteDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// Nearby returns the closest other sites by great-circle distance,
	// nearest first.
	Nearby(ctx context.Context, id uuid.UUID, limit int) ([]*NearbySiteDTO, error)
}
