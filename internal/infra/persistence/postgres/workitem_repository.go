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

// workItemListOrder sorts work item listings by last modification.
const workItemListOrder = "updated_at desc"

// workItemFilterColumns whitelists the filterable columns for work item listings.
var workItemFilterColumns = map[string]string{
	"workLogId": "work_log_id",
	"workType":  "work_type",
	"machineId": "machine_id",
}

// workItemRepository implements the repository.WorkItemRepository interface using GORM.
type workItemRepository struct {
	db *gorm.DB
}

// NewWorkItemRepository is the constructor for workItemRepository.
func NewWorkItemRepository(db *gorm.DB) repository.WorkItemRepository {
	return &workItemRepository{db: db}
}

// FindByID retrieves a single work item by its unique ID with its references resolved.
func (repo *workItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkItem, error) {
	var itemM model.WorkItemModel
	if err := repo.db.WithContext(ctx).
		Preload("Machine").
		Preload("Part").
		Preload("NewPart").
		Preload("Owners", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("Owners.User").
		First(&itemM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkItemNotFound
		}

		return nil, errors.Wrap(err, "failed to find work item by id")
	}

	return toWorkItemDomain(&itemM), nil
}

// List returns work items matching the query, most recently updated first.
func (repo *workItemRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.WorkItem, error) {
	tx := applyListQuery(repo.db.WithContext(ctx), query, workItemFilterColumns, workItemListOrder)

	return repo.findItems(tx)
}

// ListByWorkLog returns all items attached to the given work log.
func (repo *workItemRepository) ListByWorkLog(ctx context.Context, workLogID uuid.UUID) ([]*entity.WorkItem, error) {
	tx := repo.db.WithContext(ctx).
		Where("work_log_id = ?", workLogID).
		Order(workItemListOrder)

	return repo.findItems(tx)
}

// ListByOwner returns work items that include the given user among the owners.
func (repo *workItemRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*entity.WorkItem, error) {
	tx := applyListQuery(repo.db.WithContext(ctx), query, workItemFilterColumns, "work_items."+workItemListOrder).
		Joins("JOIN work_item_owners ON work_item_owners.work_item_id = work_items.id").
		Where("work_item_owners.user_id = ?", ownerID)

	return repo.findItems(tx)
}

// ListByMachine returns work items recorded against the given machine.
func (repo *workItemRepository) ListByMachine(ctx context.Context, machineID uuid.UUID, query repository.ListQuery) ([]*entity.WorkItem, error) {
	tx := applyListQuery(repo.db.WithContext(ctx), query, workItemFilterColumns, workItemListOrder).
		Where("machine_id = ?", machineID)

	return repo.findItems(tx)
}

func (repo *workItemRepository) findItems(tx *gorm.DB) ([]*entity.WorkItem, error) {
	var models []*model.WorkItemModel
	if err := tx.
		Preload("Machine").
		Preload("Part").
		Preload("NewPart").
		Preload("Owners", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("Owners.User").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list work items")
	}

	items := make([]*entity.WorkItem, 0, len(models))
	for _, itemM := range models {
		items = append(items, toWorkItemDomain(itemM))
	}

	return items, nil
}

// Create persists a new work item entity with its owner rows.
func (repo *workItemRepository) Create(ctx context.Context, item *entity.WorkItem) error {
	itemM := fromWorkItemDomain(item)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(itemM).Error; err != nil {
			return err
		}

		return insertWorkItemOwners(tx, itemM.ID, item.OwnerIDs)
	})
	if err != nil {
		return translateWriteError(err, "work item")
	}

	item.ID = itemM.ID
	item.CreatedAt = itemM.CreatedAt
	item.UpdatedAt = itemM.UpdatedAt

	return nil
}

// Update merges the non-zero fields of the entity into the stored record and,
// when owner ids are supplied, rewrites the owner rows.
func (repo *workItemRepository) Update(ctx context.Context, item *entity.WorkItem) error {
	itemM := fromWorkItemDomain(item)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.WorkItemModel{}).
			Where("id = ?", item.ID).
			Updates(itemM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrWorkItemNotFound
		}

		if item.OwnerIDs == nil {
			return nil
		}

		return replaceWorkItemOwners(tx, item.ID, item.OwnerIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrWorkItemNotFound) {
			return err
		}

		return translateWriteError(err, "work item")
	}

	return nil
}

// Replace overwrites the whole record body and the owner rows while
// preserving the id.
func (repo *workItemRepository) Replace(ctx context.Context, item *entity.WorkItem) error {
	itemM := fromWorkItemDomain(item)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.WorkItemModel{}).
			Where("id = ?", item.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(itemM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrWorkItemNotFound
		}

		return replaceWorkItemOwners(tx, item.ID, item.OwnerIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrWorkItemNotFound) {
			return err
		}

		return translateWriteError(err, "work item")
	}

	return nil
}

// Delete removes a work item and its owner rows.
func (repo *workItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.WorkItemOwnerModel{}, "work_item_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.WorkItemModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrWorkItemNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrWorkItemNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete work item")
	}

	return nil
}

func insertWorkItemOwners(tx *gorm.DB, itemID uuid.UUID, ownerIDs []uuid.UUID) error {
	if len(ownerIDs) == 0 {
		return nil
	}

	rows := make([]model.WorkItemOwnerModel, 0, len(ownerIDs))
	for i, userID := range ownerIDs {
		rows = append(rows, model.WorkItemOwnerModel{
			WorkItemID: itemID,
			UserID:     userID,
			Position:   i,
		})
	}

	return tx.Create(&rows).Error
}

func replaceWorkItemOwners(tx *gorm.DB, itemID uuid.UUID, ownerIDs []uuid.UUID) error {
	if err := tx.Delete(&model.WorkItemOwnerModel{}, "work_item_id = ?", itemID).Error; err != nil {
		return err
	}

	return insertWorkItemOwners(tx, itemID, ownerIDs)
}

// --- Mapper Functions ---

func toWorkItemDomain(data *model.WorkItemModel) *entity.WorkItem {
	if data == nil {
		return nil
	}

	item := &entity.WorkItem{
		ID:          data.ID,
		WorkLogID:   data.WorkLogID,
		WorkLog:     toWorkLogDomain(data.WorkLog),
		WorkType:    entity.WorkType(data.WorkType),
		MachineID:   data.MachineID,
		Machine:     toMachineDomain(data.Machine),
		PartID:      data.PartID,
		Part:        toPartDomain(data.Part),
		NewPartID:   data.NewPartID,
		NewPart:     toPartDomain(data.NewPart),
		PartCount:   data.PartCount,
		Description: data.Description,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	for _, owner := range data.Owners {
		item.OwnerIDs = append(item.OwnerIDs, owner.UserID)
		if owner.User != nil {
			item.Owners = append(item.Owners, toUserDomain(owner.User))
		}
	}

	return item
}

func fromWorkItemDomain(data *entity.WorkItem) *model.WorkItemModel {
	if data == nil {
		return nil
	}

	return &model.WorkItemModel{
		ID:          data.ID,
		WorkLogID:   data.WorkLogID,
		WorkType:    string(data.WorkType),
		MachineID:   data.MachineID,
		PartID:      data.PartID,
		NewPartID:   data.NewPartID,
		PartCount:   data.PartCount,
		Description: data.Description,
		StartTime:   data.StartTime,
		EndTime:     data.EndTime,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
