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

// workItemService implements the WorkItemUsecase interface.
type workItemService struct {
	workItems repository.WorkItemRepository
	logger    *slog.Logger
}

// NewWorkItemService is the constructor for workItemService.
func NewWorkItemService(workItems repository.WorkItemRepository, logger *slog.Logger) usecase.WorkItemUsecase {
	return &workItemService{workItems: workItems, logger: logger}
}

// Get retrieves a single work item with its references resolved.
func (srv *workItemService) Get(ctx context.Context, id uuid.UUID) (*usecase.WorkItemDTO, error) {
	item, err := srv.workItems.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkItemNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("work item not found")
		}

		return nil, errors.Wrap(err, "failed to get work item")
	}

	return usecase.ToWorkItemDTO(item), nil
}

// List returns work items matching the query, newest first.
func (srv *workItemService) List(ctx context.Context, query repository.ListQuery) ([]*usecase.WorkItemDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	items, err := srv.workItems.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list work items")
	}

	return toWorkItemDTOs(items), nil
}

// ListByWorkLog returns all items attached to the given work log.
func (srv *workItemService) ListByWorkLog(ctx context.Context, workLogID uuid.UUID) ([]*usecase.WorkItemDTO, error) {
	items, err := srv.workItems.ListByWorkLog(ctx, workLogID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list work items by work log")
	}

	return toWorkItemDTOs(items), nil
}

// ListByOwner returns work items that include the given user among the owners.
func (srv *workItemService) ListByOwner(ctx context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*usecase.WorkItemDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	items, err := srv.workItems.ListByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list work items by owner")
	}

	return toWorkItemDTOs(items), nil
}

// ListByMachine returns work items recorded against the given machine.
func (srv *workItemService) ListByMachine(ctx context.Context, machineID uuid.UUID, query repository.ListQuery) ([]*usecase.WorkItemDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	items, err := srv.workItems.ListByMachine(ctx, machineID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list work items by machine")
	}

	return toWorkItemDTOs(items), nil
}

// Create records a new task against a work log.
func (srv *workItemService) Create(ctx context.Context, input usecase.WorkItemInput) (*usecase.WorkItemDTO, error) {
	if input.WorkLogID == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("workLogId is required")
	}
	workType, err := requireString(input.WorkType, "workType")
	if err != nil {
		return nil, err
	}
	if !entity.WorkType(workType).IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown work type: " + workType)
	}

	item := &entity.WorkItem{
		WorkLogID:   *input.WorkLogID,
		OwnerIDs:    input.OwnerIDs,
		WorkType:    entity.WorkType(workType),
		MachineID:   input.MachineID,
		PartID:      input.PartID,
		NewPartID:   input.NewPartID,
		Description: stringOr(input.Description, ""),
	}
	if input.PartCount != nil {
		item.PartCount = *input.PartCount
	}
	if input.StartTime != nil {
		item.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		item.EndTime = *input.EndTime
	}

	if err := srv.workItems.Create(ctx, item); err != nil {
		return nil, err
	}

	srv.logger.Info("work item created",
		slog.String("workItemID", item.ID.String()),
		slog.String("workLogID", item.WorkLogID.String()))

	return srv.Get(ctx, item.ID)
}

// Update merges the provided fields into the stored work item.
func (srv *workItemService) Update(ctx context.Context, id uuid.UUID, input usecase.WorkItemInput) (*usecase.WorkItemDTO, error) {
	patch := &entity.WorkItem{
		ID:          id,
		OwnerIDs:    input.OwnerIDs,
		MachineID:   input.MachineID,
		PartID:      input.PartID,
		NewPartID:   input.NewPartID,
		Description: stringOr(input.Description, ""),
	}
	if input.WorkLogID != nil {
		patch.WorkLogID = *input.WorkLogID
	}
	if input.WorkType != nil {
		workType := entity.WorkType(*input.WorkType)
		if !workType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown work type: " + *input.WorkType)
		}
		patch.WorkType = workType
	}
	if input.PartCount != nil {
		patch.PartCount = *input.PartCount
	}
	if input.StartTime != nil {
		patch.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		patch.EndTime = *input.EndTime
	}

	if err := srv.workItems.Update(ctx, patch); err != nil {
		if errors.Is(err, repository.ErrWorkItemNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("work item not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes a work item.
func (srv *workItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.workItems.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWorkItemNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("work item not found")
		}

		return errors.Wrap(err, "failed to delete work item")
	}

	srv.logger.Info("work item deleted", slog.String("workItemID", id.String()))

	return nil
}

// WorkTypes lists the task classifications.
func (srv *workItemService) WorkTypes() []string {
	types := make([]string, len(entity.WorkTypes))
	for i, workType := range entity.WorkTypes {
		types[i] = string(workType)
	}

	return types
}

func toWorkItemDTOs(items []*entity.WorkItem) []*usecase.WorkItemDTO {
	dtos := make([]*usecase.WorkItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, usecase.ToWorkItemDTO(item))
	}

	return dtos
}
