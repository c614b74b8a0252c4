package impl

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/geo"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultNearbyLimit caps the proximity listing when the caller does not ask
// for a specific count.
const defaultNearbyLimit = 10

// siteService implements the SiteUsecase interface.
type siteService struct {
	sites  repository.SiteRepository
	logger *slog.Logger
}

// NewSiteService is the constructor for siteService.
func NewSiteService(sites repository.SiteRepository, logger *slog.Logger) usecase.SiteUsecase {
	return &siteService{sites: sites, logger: logger}
}

// Get retrieves a single site with its owner and client resolved.
func (srv *siteService) Get(ctx context.Context, id uuid.UUID) (*usecase.SiteDTO, error) {
	site, err := srv.sites.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("site not found")
		}

		return nil, errors.Wrap(err, "failed to get site")
	}

	return usecase.ToSiteDTO(site), nil
}

// List returns sites matching the query, name ascending.
func (srv *siteService) List(ctx context.Context, query repository.ListQuery) ([]*usecase.SiteDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	sites, err := srv.sites.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sites")
	}

	dtos := make([]*usecase.SiteDTO, 0, len(sites))
	for _, site := range sites {
		dtos = append(dtos, usecase.ToSiteDTO(site))
	}

	return dtos, nil
}

// Create registers a new site.
func (srv *siteService) Create(ctx context.Context, input usecase.SiteInput) (*usecase.SiteDTO, error) {
	name, err := requireString(input.Name, "name")
	if err != nil {
		return nil, err
	}

	site := &entity.Site{
		Name:          name,
		OwnerID:       input.OwnerID,
		ClientID:      input.ClientID,
		City:          stringOr(input.City, ""),
		Address:       stringOr(input.Address, ""),
		LastVisitDate: input.LastVisitDate,
	}
	if input.Longitude != nil {
		site.Longitude = *input.Longitude
	}
	if input.Latitude != nil {
		site.Latitude = *input.Latitude
	}

	if err := srv.sites.Create(ctx, site); err != nil {
		return nil, err
	}

	srv.logger.Info("site created",
		slog.String("siteID", site.ID.String()),
		slog.String("name", site.Name))

	return srv.Get(ctx, site.ID)
}

// Update merges the provided fields into the stored site.
func (srv *siteService) Update(ctx context.Context, id uuid.UUID, input usecase.SiteInput) (*usecase.SiteDTO, error) {
	patch := &entity.Site{
		ID:            id,
		Name:          stringOr(input.Name, ""),
		OwnerID:       input.OwnerID,
		ClientID:      input.ClientID,
		City:          stringOr(input.City, ""),
		Address:       stringOr(input.Address, ""),
		LastVisitDate: input.LastVisitDate,
	}
	if input.Longitude != nil {
		patch.Longitude = *input.Longitude
	}
	if input.Latitude != nil {
		patch.Latitude = *input.Latitude
	}

	if err := srv.sites.Update(ctx, patch); err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("site not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes a site. Machines located there keep their dangling reference.
func (srv *siteService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.sites.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("site not found")
		}

		return errors.Wrap(err, "failed to delete site")
	}

	srv.logger.Info("site deleted", slog.String("siteID", id.String()))

	return nil
}

// Nearby returns the closest other sites by great-circle distance, nearest first.
func (srv *siteService) Nearby(ctx context.Context, id uuid.UUID, limit int) ([]*usecase.NearbySiteDTO, error) {
	origin, err := srv.sites.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSiteNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("site not found")
		}

		return nil, errors.Wrap(err, "failed to get site")
	}

	all, err := srv.sites.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sites")
	}

	if limit <= 0 {
		limit = defaultNearbyLimit
	}

	nearby := make([]*usecase.NearbySiteDTO, 0, len(all))
	for _, site := range all {
		if site.ID == origin.ID {
			continue
		}
		nearby = append(nearby, &usecase.NearbySiteDTO{
			Site:           usecase.ToSiteDTO(site),
			DistanceMeters: geo.Distance(origin.Longitude, origin.Latitude, site.Longitude, site.Latitude),
		})
	}

	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})
	if len(nearby) > limit {
		nearby = nearby[:limit]
	}

	return nearby, nil
}
