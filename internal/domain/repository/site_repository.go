package repository

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSiteNotFound is returned when a site is not found.
var ErrSiteNotFound = errors.New("site not found")

// SiteRepository defines the persistence operations for physical sites.
type SiteRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error)

	// List returns sites matching the query, ordered by name ascending.
	List(ctx context.Context, query ListQuery) ([]*entity.Site, error)

	// ListAll returns every site without pagination. Used for proximity scans.
	ListAll(ctx context.Context) ([]*entity.Site, error)

	Create(ctx context.Context, site *entity.Site) error

	Update(ctx context.Context, site *entity.Site) error

	Replace(ctx context.Context, site *entity.Site) error

	Delete(ctx context.Context, id uuid.UUID) error
}
