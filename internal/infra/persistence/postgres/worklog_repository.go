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

// workLogFilterColumns whitelists the filterable columns for work log listings.
var workLogFilterColumns = map[string]string{
	"siteId":      "site_id",
	"workLogType": "work_log_type",
}

// workLogSlotColumns maps attachment categories onto their counter columns.
var workLogSlotColumns = map[entity.SlotCategory]string{
	entity.SlotInstallRecord:   "slot_install_record",
	entity.SlotDailyInspection: "slot_daily_inspection",
	entity.SlotCalibration:     "slot_calibration",
	entity.SlotVerification:    "slot_verification",
	entity.SlotConsumableSwap:  "slot_consumable_swap",
	entity.SlotGasSwap:         "slot_gas_swap",
	entity.SlotRepairRecord:    "slot_repair_record",
}

// workLogRepository implements the repository.WorkLogRepository interface using GORM.
type workLogRepository struct {
	db *gorm.DB
}

// NewWorkLogRepository is the constructor for workLogRepository.
func NewWorkLogRepository(db *gorm.DB) repository.WorkLogRepository {
	return &workLogRepository{db: db}
}

// FindByID retrieves a single work log by its unique ID, resolving the site
// and the owning users.
func (repo *workLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkLog, error) {
	var logM model.WorkLogModel
	if err := repo.db.WithContext(ctx).
		Preload("Site").
		Preload("Owners", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("Owners.User").
		First(&logM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkLogNotFound
		}

		return nil, errors.Wrap(err, "failed to find work log by id")
	}

	return toWorkLogDomain(&logM), nil
}

// List returns work logs matching the query, ordered by update time ascending.
func (repo *workLogRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.WorkLog, error) {
	tx := applyListQuery(repo.db.WithContext(ctx), query, workLogFilterColumns, "updated_at asc")

	return repo.findLogs(tx)
}

// ListByOwner returns work logs that include the given user among the owners.
func (repo *workLogRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*entity.WorkLog, error) {
	tx := applyListQuery(repo.db.WithContext(ctx), query, workLogFilterColumns, "work_logs.updated_at asc").
		Joins("JOIN work_log_owners ON work_log_owners.work_log_id = work_logs.id").
		Where("work_log_owners.user_id = ?", ownerID)

	return repo.findLogs(tx)
}

func (repo *workLogRepository) findLogs(tx *gorm.DB) ([]*entity.WorkLog, error) {
	var models []*model.WorkLogModel
	if err := tx.
		Preload("Site").
		Preload("Owners", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("Owners.User").
		Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list work logs")
	}

	logs := make([]*entity.WorkLog, 0, len(models))
	for _, logM := range models {
		logs = append(logs, toWorkLogDomain(logM))
	}

	return logs, nil
}

// Create persists a new work log entity with its owner rows.
func (repo *workLogRepository) Create(ctx context.Context, log *entity.WorkLog) error {
	logM := fromWorkLogDomain(log)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(logM).Error; err != nil {
			return err
		}

		return insertWorkLogOwners(tx, logM.ID, log.OwnerIDs)
	})
	if err != nil {
		return translateWriteError(err, "work log")
	}

	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt
	log.UpdatedAt = logM.UpdatedAt

	return nil
}

// Update merges the non-zero fields of the entity into the stored record and,
// when owner ids are supplied, rewrites the owner rows.
func (repo *workLogRepository) Update(ctx context.Context, log *entity.WorkLog) error {
	logM := fromWorkLogDomain(log)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.WorkLogModel{}).
			Where("id = ?", log.ID).
			Updates(logM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrWorkLogNotFound
		}

		if log.OwnerIDs == nil {
			return nil
		}

		return replaceWorkLogOwners(tx, log.ID, log.OwnerIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrWorkLogNotFound) {
			return err
		}

		return translateWriteError(err, "work log")
	}

	return nil
}

// Replace overwrites the whole record body and the owner rows while
// preserving the id.
func (repo *workLogRepository) Replace(ctx context.Context, log *entity.WorkLog) error {
	logM := fromWorkLogDomain(log)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.WorkLogModel{}).
			Where("id = ?", log.ID).
			Select("*").
			Omit("id", "created_at").
			Updates(logM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrWorkLogNotFound
		}

		return replaceWorkLogOwners(tx, log.ID, log.OwnerIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrWorkLogNotFound) {
			return err
		}

		return translateWriteError(err, "work log")
	}

	return nil
}

// UpdateSlots persists only the attachment slot counters.
func (repo *workLogRepository) UpdateSlots(ctx context.Context, id uuid.UUID, slots entity.SlotCounts) error {
	updates := make(map[string]any, len(slots))
	for category, count := range slots {
		column, ok := workLogSlotColumns[category]
		if !ok {
			continue
		}
		updates[column] = count
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.WorkLogModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update work log slots")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkLogNotFound
	}

	return nil
}

// Delete removes a work log and its owner rows. Work items referencing it are
// kept, there is no cascade.
func (repo *workLogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.WorkLogOwnerModel{}, "work_log_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.WorkLogModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrWorkLogNotFound
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrWorkLogNotFound) {
			return err
		}

		return errors.Wrap(err, "failed to delete work log")
	}

	return nil
}

func insertWorkLogOwners(tx *gorm.DB, logID uuid.UUID, ownerIDs []uuid.UUID) error {
	if len(ownerIDs) == 0 {
		return nil
	}

	rows := make([]model.WorkLogOwnerModel, 0, len(ownerIDs))
	for i, userID := range ownerIDs {
		rows = append(rows, model.WorkLogOwnerModel{
			WorkLogID: logID,
			UserID:    userID,
			Position:  i,
		})
	}

	return tx.Create(&rows).Error
}

func replaceWorkLogOwners(tx *gorm.DB, logID uuid.UUID, ownerIDs []uuid.UUID) error {
	if err := tx.Delete(&model.WorkLogOwnerModel{}, "work_log_id = ?", logID).Error; err != nil {
		return err
	}

	return insertWorkLogOwners(tx, logID, ownerIDs)
}

// --- Mapper Functions ---

func toWorkLogDomain(data *model.WorkLogModel) *entity.WorkLog {
	if data == nil {
		return nil
	}

	log := &entity.WorkLog{
		ID:               data.ID,
		SiteID:           data.SiteID,
		Site:             toSiteDomain(data.Site),
		WorkLogType:      entity.WorkLogType(data.WorkLogType),
		Date:             data.Date,
		ToSiteCommute:    toCommuteDomain(data.ToSiteCommute),
		LeaveSiteCommute: toCommuteDomain(data.LeaveSiteCommute),
		Slots: entity.SlotCounts{
			entity.SlotInstallRecord:   data.SlotInstallRecord,
			entity.SlotDailyInspection: data.SlotDailyInspection,
			entity.SlotCalibration:     data.SlotCalibration,
			entity.SlotVerification:    data.SlotVerification,
			entity.SlotConsumableSwap:  data.SlotConsumableSwap,
			entity.SlotGasSwap:         data.SlotGasSwap,
			entity.SlotRepairRecord:    data.SlotRepairRecord,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	for _, owner := range data.Owners {
		log.OwnerIDs = append(log.OwnerIDs, owner.UserID)
		if owner.User != nil {
			log.Owners = append(log.Owners, toUserDomain(owner.User))
		}
	}

	return log
}

func fromWorkLogDomain(data *entity.WorkLog) *model.WorkLogModel {
	if data == nil {
		return nil
	}

	return &model.WorkLogModel{
		ID:                  data.ID,
		SiteID:              data.SiteID,
		WorkLogType:         string(data.WorkLogType),
		Date:                data.Date,
		ToSiteCommute:       fromCommuteDomain(data.ToSiteCommute),
		LeaveSiteCommute:    fromCommuteDomain(data.LeaveSiteCommute),
		SlotInstallRecord:   data.Slots.Get(entity.SlotInstallRecord),
		SlotDailyInspection: data.Slots.Get(entity.SlotDailyInspection),
		SlotCalibration:     data.Slots.Get(entity.SlotCalibration),
		SlotVerification:    data.Slots.Get(entity.SlotVerification),
		SlotConsumableSwap:  data.Slots.Get(entity.SlotConsumableSwap),
		SlotGasSwap:         data.Slots.Get(entity.SlotGasSwap),
		SlotRepairRecord:    data.Slots.Get(entity.SlotRepairRecord),
		CreatedAt:           data.CreatedAt,
		UpdatedAt:           data.UpdatedAt,
	}
}

func toCommuteDomain(data model.CommuteColumns) *entity.Commute {
	if data.SiteID == nil && data.CarID == "" && data.Date == nil {
		return nil
	}

	return &entity.Commute{
		SiteID:     data.SiteID,
		CarID:      data.CarID,
		StartKilos: data.StartKilos,
		EndKilos:   data.EndKilos,
		Date:       data.Date,
	}
}

func fromCommuteDomain(data *entity.Commute) model.CommuteColumns {
	if data == nil {
		return model.CommuteColumns{}
	}

	return model.CommuteColumns{
		SiteID:     data.SiteID,
		CarID:      data.CarID,
		StartKilos: data.StartKilos,
		EndKilos:   data.EndKilos,
		Date:       data.Date,
	}
}
