package impl

import (
	"context"
	"log/slog"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// machineService implements the MachineUsecase interface.
type machineService struct {
	machines repository.MachineRepository
	qrcodes  service.QRCodeService
	logger   *slog.Logger
}

// NewMachineService is the constructor for machineService.
func NewMachineService(
	machines repository.MachineRepository,
	qrcodes service.QRCodeService,
	logger *slog.Logger,
) usecase.MachineUsecase {
	return &machineService{
		machines: machines,
		qrcodes:  qrcodes,
		logger:   logger,
	}
}

// Get retrieves a single machine with its site resolved.
func (srv *machineService) Get(ctx context.Context, id uuid.UUID) (*usecase.MachineDTO, error) {
	machine, err := srv.machines.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("machine not found")
		}

		return nil, errors.Wrap(err, "failed to get machine")
	}

	return usecase.ToMachineDTO(machine), nil
}

// List returns machines matching the query, newest first.
func (srv *machineService) List(ctx context.Context, query repository.ListQuery) ([]*usecase.MachineDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	machines, err := srv.machines.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list machines")
	}

	return toMachineDTOs(machines), nil
}

// ListBySite returns all machines installed at the given site.
func (srv *machineService) ListBySite(ctx context.Context, siteID uuid.UUID) ([]*usecase.MachineDTO, error) {
	query := repository.ListQuery{Filter: map[string]any{"locationId": siteID}}
	query = query.Normalize(usecase.DefaultPerPage)

	machines, err := srv.machines.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list machines by site")
	}

	return toMachineDTOs(machines), nil
}

// Create registers a new machine. State defaults to the first lifecycle state.
func (srv *machineService) Create(ctx context.Context, input usecase.MachineInput) (*usecase.MachineDTO, error) {
	machineID, err := requireString(input.MachineID, "machineId")
	if err != nil {
		return nil, err
	}
	alias, err := requireString(input.Alias, "alias")
	if err != nil {
		return nil, err
	}

	machine := &entity.Machine{
		MachineID:  machineID,
		Alias:      alias,
		Type:       stringOr(input.Type, ""),
		State:      entity.MachineStates[0],
		LocationID: input.LocationID,
		Slots:      entity.SlotCounts{},
	}
	if input.State != nil {
		state := entity.MachineState(*input.State)
		if !state.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown machine state: " + *input.State)
		}
		machine.State = state
	}

	if err := srv.machines.Create(ctx, machine); err != nil {
		return nil, err
	}

	srv.logger.Info("machine created",
		slog.String("machineID", machine.ID.String()),
		slog.String("alias", machine.Alias))

	return srv.Get(ctx, machine.ID)
}

// Update merges the provided fields into the stored machine.
func (srv *machineService) Update(ctx context.Context, id uuid.UUID, input usecase.MachineInput) (*usecase.MachineDTO, error) {
	patch, err := buildMachinePatch(id, input)
	if err != nil {
		return nil, err
	}

	if err := srv.machines.Update(ctx, patch); err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("machine not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Replace overwrites the whole machine record, keeping the id and the slot counters.
func (srv *machineService) Replace(ctx context.Context, id uuid.UUID, input usecase.MachineInput) (*usecase.MachineDTO, error) {
	current, err := srv.machines.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("machine not found")
		}

		return nil, errors.Wrap(err, "failed to find machine")
	}

	machineID, err := requireString(input.MachineID, "machineId")
	if err != nil {
		return nil, err
	}
	alias, err := requireString(input.Alias, "alias")
	if err != nil {
		return nil, err
	}

	replacement := &entity.Machine{
		ID:         id,
		MachineID:  machineID,
		Alias:      alias,
		Type:       stringOr(input.Type, ""),
		State:      current.State,
		LocationID: input.LocationID,
		Slots:      current.Slots,
	}
	if input.State != nil {
		state := entity.MachineState(*input.State)
		if !state.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown machine state: " + *input.State)
		}
		replacement.State = state
	}

	if err := srv.machines.Replace(ctx, replacement); err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("machine not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes a machine. Installed parts keep their dangling reference.
func (srv *machineService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.machines.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("machine not found")
		}

		return errors.Wrap(err, "failed to delete machine")
	}

	srv.logger.Info("machine deleted", slog.String("machineID", id.String()))

	return nil
}

// States lists the lifecycle states in order.
func (srv *machineService) States() []string {
	states := make([]string, len(entity.MachineStates))
	for i, state := range entity.MachineStates {
		states[i] = string(state)
	}

	return states
}

// QRCode renders the printable PNG label for a machine.
func (srv *machineService) QRCode(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := srv.machines.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMachineNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("machine not found")
		}

		return nil, errors.Wrap(err, "failed to find machine")
	}

	png, err := srv.qrcodes.GenerateMachineQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate machine QR label")
	}

	return png, nil
}

func buildMachinePatch(id uuid.UUID, input usecase.MachineInput) (*entity.Machine, error) {
	patch := &entity.Machine{
		ID:         id,
		MachineID:  stringOr(input.MachineID, ""),
		Alias:      stringOr(input.Alias, ""),
		Type:       stringOr(input.Type, ""),
		LocationID: input.LocationID,
	}
	if input.State != nil {
		state := entity.MachineState(*input.State)
		if !state.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown machine state: " + *input.State)
		}
		patch.State = state
	}

	return patch, nil
}

func toMachineDTOs(machines []*entity.Machine) []*usecase.MachineDTO {
	dtos := make([]*usecase.MachineDTO, 0, len(machines))
	for _, machine := range machines {
		dtos = append(dtos, usecase.ToMachineDTO(machine))
	}

	return dtos
}
