package postgres

import (
	"context"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// siteFilterColumns whitelists the filterable columns for site listings.
var siteFilterColumns = map[string]string{
	"name":     "name",
	"city":     "city",
	"ownerId":  "owner_id",
	"clientId": "client_id",
}

// siteRepository implements the repository.SiteRepository interface using GORM.
type siteRepository struct {
	db *gorm.DB
}

// NewSiteRepository is the constructor for siteRepository.
func NewSiteRepository(db *gorm.DB) repository.SiteRepository {
	return &siteRepository{db: db}
}

// FindByID retrieves a single site by its unique ID, resolving the owner and
// client references when they still exist.
func (repo *siteRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Site, error) {
	var siteM model.SiteModel
	if err := repo.db.WithContext(ctx).
		Preload("Owner").
		Preload("Client").
		First(&siteM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSiteNotFound
		}

		return nil, errors.Wrap(err, "failed to find site by id")
	}

	return toSiteDomain(&siteM), nil
}

// List returns sites matching the query, ordered by name ascending.
func (repo *siteRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Site, error) {
	var models []*model.SiteModel
	tx := applyListQuery(repo.db.WithContext(ctx), query, siteFilterColumns, "name asc").
		Preload("Owner").
		Preload("Client")
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list sites")
	}

	sites := make([]*entity.Site, 0, len(models))
	for _, siteM := range models {
		sites = append(sites, toSiteDomain(siteM))
	}

	return sites, nil
}

// ListAll returns every site without pagination. Used for proximity scans.
func (repo *siteRepository) ListAll(ctx context.Context) ([]*entity.Site, error) {
	var models []*model.SiteModel
	if err := repo.db.WithContext(ctx).Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list all sites")
	}

	sites := make([]*entity.Site, 0, len(models))
	for _, siteM := range models {
		sites = append(sites, toSiteDomain(siteM))
	}

	return sites, nil
}

// Create persists a new site entity.
func (repo *siteRepository) Create(ctx context.Context, site *entity.Site) error {
	siteM := fromSiteDomain(site)

	if err := repo.db.WithContext(ctx).Create(siteM).Error; err != nil {
		return translateWriteError(err, "site")
	}

	site.ID = siteM.ID
	site.CreatedAt = siteM.CreatedAt
	site.UpdatedAt = siteM.UpdatedAt

	return nil
}

// Update merges the non-zero fields of the entity into the stored record.
func (repo *siteRepository) Update(ctx context.Context, site *entity.Site) error {
	siteM := fromSiteDomain(site)

	result := repo.db.WithContext(ctx).
		Model(&model.SiteModel{}).
		Where("id = ?", site.ID).
		Updates(siteM)
	if result.Error != nil {
		return translateWriteError(result.Error, "site")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSiteNotFound
	}

	return nil
}

// Replace overwrites the whole record body while preserving the id.
func (repo *siteRepository) Replace(ctx context.Context, site *entity.Site) error {
	siteM := fromSiteDomain(site)

	result := repo.db.WithContext(ctx).
		Model(&model.SiteModel{}).
		Where("id = ?", site.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(siteM)
	if result.Error != nil {
		return translateWriteError(result.Error, "site")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSiteNotFound
	}

	return nil
}

// Delete removes a site by its ID. Machines located at the site keep their
// stale reference, there is no cascade.
func (repo *siteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.SiteModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete site")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSiteNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toSiteDomain(data *model.SiteModel) *entity.Site {
	if data == nil {
		return nil
	}

	return &entity.Site{
		ID:            data.ID,
		Name:          data.Name,
		OwnerID:       data.OwnerID,
		Owner:         toUserDomain(data.Owner),
		ClientID:      data.ClientID,
		Client:        toClientDomain(data.Client),
		City:          data.City,
		Address:       data.Address,
		Longitude:     data.Longitude,
		Latitude:      data.Latitude,
		LastVisitDate: data.LastVisitDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromSiteDomain(data *entity.Site) *model.SiteModel {
	if data == nil {
		return nil
	}

	return &model.SiteModel{
		ID:            data.ID,
		Name:          data.Name,
		OwnerID:       data.OwnerID,
		ClientID:      data.ClientID,
		City:          data.City,
		Address:       data.Address,
		Longitude:     data.Longitude,
		Latitude:      data.Latitude,
		LastVisitDate: data.LastVisitDate,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
