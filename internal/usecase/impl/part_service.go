package impl

import (
	"context"
	"log/slog"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// partService implements the PartUsecase interface.
type partService struct {
	parts  repository.PartRepository
	logger *slog.Logger
}

// NewPartService is the constructor for partService.
func NewPartService(parts repository.PartRepository, logger *slog.Logger) usecase.PartUsecase {
	return &partService{parts: parts, logger: logger}
}

// Get retrieves a single part with its machine resolved.
func (srv *partService) Get(ctx context.Context, id uuid.UUID) (*usecase.PartDTO, error) {
	part, err := srv.parts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("part not found")
		}

		return nil, errors.Wrap(err, "failed to get part")
	}

	return usecase.ToPartDTO(part), nil
}

// List returns parts matching the query, newest first.
func (srv *partService) List(ctx context.Context, query repository.ListQuery) ([]*usecase.PartDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	parts, err := srv.parts.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list parts")
	}

	dtos := make([]*usecase.PartDTO, 0, len(parts))
	for _, part := range parts {
		dtos = append(dtos, usecase.ToPartDTO(part))
	}

	return dtos, nil
}

// Create registers a new part. State defaults to in-stock.
func (srv *partService) Create(ctx context.Context, input usecase.PartInput) (*usecase.PartDTO, error) {
	name, err := requireString(input.Name, "name")
	if err != nil {
		return nil, err
	}

	part := &entity.Part{
		Name:      name,
		PartID:    stringOr(input.PartID, ""),
		State:     entity.PartStates[0],
		MachineID: input.MachineID,
	}
	if input.State != nil {
		state := entity.PartState(*input.State)
		if !state.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown part state: " + *input.State)
		}
		part.State = state
	}

	if err := srv.parts.Create(ctx, part); err != nil {
		return nil, err
	}

	srv.logger.Info("part created",
		slog.String("partID", part.ID.String()),
		slog.String("name", part.Name))

	return srv.Get(ctx, part.ID)
}

// Update merges the provided fields into the stored part.
func (srv *partService) Update(ctx context.Context, id uuid.UUID, input usecase.PartInput) (*usecase.PartDTO, error) {
	patch := &entity.Part{
		ID:        id,
		Name:      stringOr(input.Name, ""),
		PartID:    stringOr(input.PartID, ""),
		MachineID: input.MachineID,
	}
	if input.State != nil {
		state := entity.PartState(*input.State)
		if !state.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown part state: " + *input.State)
		}
		patch.State = state
	}

	if err := srv.parts.Update(ctx, patch); err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("part not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes a part.
func (srv *partService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.parts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPartNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("part not found")
		}

		return errors.Wrap(err, "failed to delete part")
	}

	srv.logger.Info("part deleted", slog.String("partID", id.String()))

	return nil
}

// States lists the part lifecycle states.
func (srv *partService) States() []string {
	states := make([]string, len(entity.PartStates))
	for i, state := range entity.PartStates {
		states[i] = string(state)
	}

	return states
}
