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

// machineFilterColumns whitelists the filterable columns for machine listings.
var machineFilterColumns = map[string]string{
	"machineId":  "machine_id",
	"alias":      "alias",
	"type":       "type",
	"state":      "state",
	"locationId": "location_id",
}

// machineSlotColumns maps attachment categories onto their counter columns.
var machineSlotColumns = map[entity.SlotCategory]string{
	entity.SlotPolicy:        "slot_policy",
	entity.SlotRegistration:  "slot_registration",
	entity.SlotOperationCert: "slot_operation_cert",
	entity.SlotLaborCert:     "slot_labor_cert",
	entity.SlotManual:        "slot_manual",
	entity.SlotInstruction:   "slot_instruction",
	entity.SlotInspection:    "slot_inspection",
	entity.SlotGasConfig:     "slot_gas_config",
}

// machineRepository implements the repository.MachineRepository interface using GORM.
type machineRepository struct {
	db *gorm.DB
}

// NewMachineRepository is the constructor for machineRepository.
func NewMachineRepository(db *gorm.DB) repository.MachineRepository {
	return &machineRepository{db: db}
}

// FindByID retrieves a single machine by its unique ID, resolving the site it
// is installed at when the reference is still live.
func (repo *machineRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Machine, error) {
	var machineM model.MachineModel
	if err := repo.db.WithContext(ctx).
		Preload("Location").
		First(&machineM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMachineNotFound
		}

		return nil, errors.Wrap(err, "failed to find machine by id")
	}

	return toMachineDomain(&machineM), nil
}

// List returns machines matching the query, newest first.
func (repo *machineRepository) List(ctx context.Context, query repository.ListQuery) ([]*entity.Machine, error) {
	var models []*model.MachineModel
	tx := applyListQuery(repo.db.WithContext(ctx), query, machineFilterColumns, "created_at desc").
		Preload("Location")
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list machines")
	}

	machines := make([]*entity.Machine, 0, len(models))
	for _, machineM := range models {
		machines = append(machines, toMachineDomain(machineM))
	}

	return machines, nil
}

// Create persists a new machine entity.
func (repo *machineRepository) Create(ctx context.Context, machine *entity.Machine) error {
	machineM := fromMachineDomain(machine)

	if err := repo.db.WithContext(ctx).Create(machineM).Error; err != nil {
		return translateWriteError(err, "machine")
	}

	machine.ID = machineM.ID
	machine.CreatedAt = machineM.CreatedAt
	machine.UpdatedAt = machineM.UpdatedAt

	return nil
}

// Update merges the non-zero fields of the entity into the stored record.
func (repo *machineRepository) Update(ctx context.Context, machine *entity.Machine) error {
	machineM := fromMachineDomain(machine)

	result := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("id = ?", machine.ID).
		Updates(machineM)
	if result.Error != nil {
		return translateWriteError(result.Error, "machine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// Replace overwrites the whole record body while preserving the id.
func (repo *machineRepository) Replace(ctx context.Context, machine *entity.Machine) error {
	machineM := fromMachineDomain(machine)

	result := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("id = ?", machine.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(machineM)
	if result.Error != nil {
		return translateWriteError(result.Error, "machine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// UpdateSlots persists only the attachment slot counters.
func (repo *machineRepository) UpdateSlots(ctx context.Context, id uuid.UUID, slots entity.SlotCounts) error {
	updates := make(map[string]any, len(slots))
	for category, count := range slots {
		column, ok := machineSlotColumns[category]
		if !ok {
			continue
		}
		updates[column] = count
	}
	if len(updates) == 0 {
		return nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MachineModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update machine slots")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// Delete removes a machine by its ID. Parts installed on it keep their stale
// reference, there is no cascade.
func (repo *machineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.MachineModel{}, "id = ?", id)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete machine")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMachineNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toMachineDomain(data *model.MachineModel) *entity.Machine {
	if data == nil {
		return nil
	}

	return &entity.Machine{
		ID:         data.ID,
		MachineID:  data.MachineID,
		Alias:      data.Alias,
		Type:       data.Type,
		State:      entity.MachineState(data.State),
		LocationID: data.LocationID,
		Location:   toSiteDomain(data.Location),
		Slots: entity.SlotCounts{
			entity.SlotPolicy:        data.SlotPolicy,
			entity.SlotRegistration:  data.SlotRegistration,
			entity.SlotOperationCert: data.SlotOperationCert,
			entity.SlotLaborCert:     data.SlotLaborCert,
			entity.SlotManual:        data.SlotManual,
			entity.SlotInstruction:   data.SlotInstruction,
			entity.SlotInspection:    data.SlotInspection,
			entity.SlotGasConfig:     data.SlotGasConfig,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromMachineDomain(data *entity.Machine) *model.MachineModel {
	if data == nil {
		return nil
	}

	return &model.MachineModel{
		ID:                data.ID,
		MachineID:         data.MachineID,
		Alias:             data.Alias,
		Type:              data.Type,
		State:             string(data.State),
		LocationID:        data.LocationID,
		SlotPolicy:        data.Slots.Get(entity.SlotPolicy),
		SlotRegistration:  data.Slots.Get(entity.SlotRegistration),
		SlotOperationCert: data.Slots.Get(entity.SlotOperationCert),
		SlotLaborCert:     data.Slots.Get(entity.SlotLaborCert),
		SlotManual:        data.Slots.Get(entity.SlotManual),
		SlotInstruction:   data.Slots.Get(entity.SlotInstruction),
		SlotInspection:    data.Slots.Get(entity.SlotInspection),
		SlotGasConfig:     data.Slots.Get(entity.SlotGasConfig),
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}
