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

// workLogService implements the WorkLogUsecase interface.
type workLogService struct {
	workLogs repository.WorkLogRepository
	logger   *slog.Logger
}

// NewWorkLogService is the constructor for workLogService.
func NewWorkLogService(workLogs repository.WorkLogRepository, logger *slog.Logger) usecase.WorkLogUsecase {
	return &workLogService{workLogs: workLogs, logger: logger}
}

// Get retrieves a single work log with its site and owners resolved.
func (srv *workLogService) Get(ctx context.Context, id uuid.UUID) (*usecase.WorkLogDTO, error) {
	log, err := srv.workLogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrWorkLogNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("work log not found")
		}

		return nil, errors.Wrap(err, "failed to get work log")
	}

	return usecase.ToWorkLogDTO(log), nil
}

// List returns work logs matching the query, oldest update first.
func (srv *workLogService) List(ctx context.Context, query repository.ListQuery) ([]*usecase.WorkLogDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	logs, err := srv.workLogs.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list work logs")
	}

	return toWorkLogDTOs(logs), nil
}

// ListByOwner returns work logs that include the given user among the owners.
func (srv *workLogService) ListByOwner(ctx context.Context, ownerID uuid.UUID, query repository.ListQuery) ([]*usecase.WorkLogDTO, error) {
	query = query.Normalize(usecase.DefaultPerPage)

	logs, err := srv.workLogs.ListByOwner(ctx, ownerID, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list work logs by owner")
	}

	return toWorkLogDTOs(logs), nil
}

// Create records a new visit. Type defaults to maintenance.
func (srv *workLogService) Create(ctx context.Context, input usecase.WorkLogInput) (*usecase.WorkLogDTO, error) {
	log := &entity.WorkLog{
		OwnerIDs:         input.OwnerIDs,
		SiteID:           input.SiteID,
		WorkLogType:      entity.WorkLogTypeMaintenance,
		Date:             input.Date,
		ToSiteCommute:    toCommuteEntity(input.ToSiteCommute),
		LeaveSiteCommute: toCommuteEntity(input.LeaveSiteCommute),
		Slots:            entity.SlotCounts{},
	}
	if input.WorkLogType != nil {
		logType := entity.WorkLogType(*input.WorkLogType)
		if !logType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown work log type: " + *input.WorkLogType)
		}
		log.WorkLogType = logType
	}

	if err := srv.workLogs.Create(ctx, log); err != nil {
		return nil, err
	}

	srv.logger.Info("work log created", slog.String("workLogID", log.ID.String()))

	return srv.Get(ctx, log.ID)
}

// Update merges the provided fields into the stored work log. Owner ids, when
// present, replace the owner set wholesale.
func (srv *workLogService) Update(ctx context.Context, id uuid.UUID, input usecase.WorkLogInput) (*usecase.WorkLogDTO, error) {
	patch := &entity.WorkLog{
		ID:               id,
		OwnerIDs:         input.OwnerIDs,
		SiteID:           input.SiteID,
		Date:             input.Date,
		ToSiteCommute:    toCommuteEntity(input.ToSiteCommute),
		LeaveSiteCommute: toCommuteEntity(input.LeaveSiteCommute),
	}
	if input.WorkLogType != nil {
		logType := entity.WorkLogType(*input.WorkLogType)
		if !logType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unknown work log type: " + *input.WorkLogType)
		}
		patch.WorkLogType = logType
	}

	if err := srv.workLogs.Update(ctx, patch); err != nil {
		if errors.Is(err, repository.ErrWorkLogNotFound) {
			return nil, domainerrors.ErrNotFound.WrapMessage("work log not found")
		}

		return nil, err
	}

	return srv.Get(ctx, id)
}

// Delete removes a work log. Its work items keep their dangling reference.
func (srv *workLogService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.workLogs.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrWorkLogNotFound) {
			return domainerrors.ErrNotFound.WrapMessage("work log not found")
		}

		return errors.Wrap(err, "failed to delete work log")
	}

	srv.logger.Info("work log deleted", slog.String("workLogID", id.String()))

	return nil
}

func toCommuteEntity(input *usecase.CommuteInput) *entity.Commute {
	if input == nil {
		return nil
	}

	commute := &entity.Commute{
		SiteID: input.SiteID,
		CarID:  stringOr(input.CarID, ""),
		Date:   input.Date,
	}
	if input.StartKilos != nil {
		commute.StartKilos = *input.StartKilos
	}
	if input.EndKilos != nil {
		commute.EndKilos = *input.EndKilos
	}

	return commute
}

func toWorkLogDTOs(logs []*entity.WorkLog) []*usecase.WorkLogDTO {
	dtos := make([]*usecase.WorkLogDTO, 0, len(logs))
	for _, log := range logs {
		dtos = append(dtos, usecase.ToWorkLogDTO(log))
	}

	return dtos
}
