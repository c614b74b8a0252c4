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

// partFilterColumns whitelists the filterable columns for part listings.
var partFilterColumns = map[string]string{
	"name":      "name",
	"partId":    "part_id",
	"state":     "state",
	"machineId": "machine_id",
}

// partRepository implements the repository.PartRepository interface using GORM.
type partRepository struct {
	db *gorm.DB
}

// NewPartRepository is the constructor for partRepository.
func NewPartRepository(db *gorm.DB) repository.PartRepository {
	return &partRepository{db: db}
}

// FindByID retrieves a single part by its unique ID, resolving the machine it
// is installed on when the reference is still live.
func (repo *partRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Part, error) {
	var partM model.PartModel
	if err := repo.db.WithContext(ctx).
		Preload("Machine").
		First(&partM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartNotFound
		}

		return nil, errors.Wrap(err, "failed to find part by id")
	}

	return toPartDomain(&partM), nil
}

// List returns parts matching the query, newest first.
func (repo *partRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Part, error) {
	var models []*model.PartModel
	tx := applyListQuery(repo.db.WithContext(ctx), query, partFilterColumns, "created_at desc").
		Preload("Machine")
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list parts")
	}

	parts := make([]*entity.Part, 0, len(models))
	for _, partM := range models {
		parts = append(parts, toPartDomain(partM))
	}

	return parts, nil
}

// Create persists a new part entity.
func (repo *partRepository) Create(ctx context.Context, part *entity.Part) error {
	partM := fromPartDomain(part)

	if err := repo.db.WithContext(ctx).Create(partM).Error; err != nil {
		return translateWriteError(err, "part")
	}

	part.ID = partM.ID
	part.CreatedAt = partM.CreatedAt
	part.UpdatedAt = partM.UpdatedAt

	return nil
}

// Update merges the non-zero fields of the entity into the stored record.
func (repo *partRepository) Update(ctx context.Context, part *entity.Part) error {
	partM := fromPartDomain(part)

	result := repo.db.WithContext(ctx).
		Model(&model.PartModel{}).
		Where("id = ?", part.ID).
		Updates(partM)
	if result.Error != nil {
		return translateWriteError(result.Error, "part")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartNotFound
	}

	return nil
}

// Replace overwrites the whole record body while preserving the id.
func (repo *partRepository) Replace(ctx context.Context, part *entity.Part) error {
	partM := fromPartDomain(part)

	result := repo.db.WithContext(ctx).
		Model(&model.PartModel{}).
		Where("id = ?", part.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(partM)
	if result.Error != nil {
		return translateWriteError(result.Error, "part")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartNotFound
	}

	return nil
}

// Delete removes a part by its ID.
func (repo *partRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PartModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete part")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toPartDomain(data *model.PartModel) *entity.Part {
	if data == nil {
		return nil
	}

	return &entity.Part{
		ID:        data.ID,
		Name:      data.Name,
		PartID:    data.PartID,
		State:     entity.PartState(data.State),
		MachineID: data.MachineID,
		Machine:   toMachineDomain(data.Machine),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromPartDomain(data *entity.Part) *model.PartModel {
	if data == nil {
		return nil
	}

	return &model.PartModel{
		ID:        data.ID,
		Name:      data.Name,
		PartID:    data.PartID,
		State:     string(data.State),
		MachineID: data.MachineID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
