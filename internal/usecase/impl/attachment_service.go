package impl

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/repository"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// attachmentService implements the AttachmentUsecase interface for both
// machines and work logs. The two owner kinds differ only in their category
// sets and in which repository holds the counters.
type attachmentService struct {
	machines repository.MachineRepository
	workLogs repository.WorkLogRepository
	store    service.AttachmentStore
	logger   *slog.Logger
}

// NewAttachmentService is the constructor for attachmentService.
func NewAttachmentService(
	machines repository.MachineRepository,
	workLogs repository.WorkLogRepository,
	store service.AttachmentStore,
	logger *slog.Logger,
) usecase.AttachmentUsecase {
	return &attachmentService{
		machines: machines,
		workLogs: workLogs,
		store:    store,
		logger:   logger,
	}
}

// Upload stores a file into the given slot, or clears the whole category when
// index is 0. The counter only ever moves forward on uploads: writing into an
// already-counted slot overwrites the file and leaves the counter alone.
func (srv *attachmentService) Upload(ctx context.Context, kind usecase.AttachmentOwnerKind, ownerID uuid.UUID, category string, index int, file io.Reader) (map[string]int, error) {
	slotCategory, categories, err := srv.resolveCategory(kind, category)
	if err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("index must not be negative")
	}

	slots, err := srv.loadSlots(ctx, kind, ownerID)
	if err != nil {
		return nil, err
	}
	if slots == nil {
		slots = entity.SlotCounts{}
	}

	if index == 0 {
		// Clear the category: files first (best effort), then the counter.
		srv.store.Remove(ownerID, slotCategory, slots.Get(slotCategory))
		slots.Set(slotCategory, 0)
	} else {
		if err := srv.store.Save(ownerID, slotCategory, index, file); err != nil {
			return nil, errors.Wrap(err, "failed to store slot file")
		}
		if index > slots.Get(slotCategory) {
			slots.Set(slotCategory, index)
		}
	}

	if err := srv.saveSlots(ctx, kind, ownerID, slots); err != nil {
		return nil, err
	}

	srv.logger.Info("slot upload processed",
		slog.String("ownerKind", string(kind)),
		slog.String("ownerID", ownerID.String()),
		slog.String("category", category),
		slog.Int("index", index))

	return countersFor(slots, categories), nil
}

// Download streams the slot file at the deterministic path.
func (srv *attachmentService) Download(ctx context.Context, kind usecase.AttachmentOwnerKind, ownerID uuid.UUID, category string, index int) (io.ReadCloser, error) {
	slotCategory, _, err := srv.resolveCategory(kind, category)
	if err != nil {
		return nil, err
	}
	if index < 1 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("index must be positive")
	}

	// Confirm the owner still exists before touching the disk.
	if _, err := srv.loadSlots(ctx, kind, ownerID); err != nil {
		return nil, err
	}

	rc, err := srv.store.Open(ownerID, slotCategory, index)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domainerrors.ErrNotFound.WrapMessage("slot file not found")
		}

		return nil, errors.Wrap(err, "failed to open slot file")
	}

	return rc, nil
}

// resolveCategory validates the category against the owner kind's set.
func (srv *attachmentService) resolveCategory(kind usecase.AttachmentOwnerKind, category string) (entity.SlotCategory, []entity.SlotCategory, error) {
	slotCategory := entity.SlotCategory(category)

	var categories []entity.SlotCategory
	switch kind {
	case usecase.AttachmentOwnerMachine:
		categories = entity.MachineSlotCategories
	case usecase.AttachmentOwnerWorkLog:
		categories = entity.WorkLogSlotCategories
	default:
		return "", nil, domainerrors.ErrValidationFailed.WithDetails("unknown attachment owner kind")
	}

	if !entity.ValidSlotCategory(slotCategory, categories) {
		return "", nil, domainerrors.ErrValidationFailed.WithDetails("unknown attachment category: " + category)
	}

	return slotCategory, categories, nil
}

func (srv *attachmentService) loadSlots(ctx context.Context, kind usecase.AttachmentOwnerKind, ownerID uuid.UUID) (entity.SlotCounts, error) {
	switch kind {
	case usecase.AttachmentOwnerMachine:
		machine, err := srv.machines.FindByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrMachineNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("machine not found")
			}

			return nil, errors.Wrap(err, "failed to find machine")
		}

		return machine.Slots, nil
	case usecase.AttachmentOwnerWorkLog:
		log, err := srv.workLogs.FindByID(ctx, ownerID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkLogNotFound) {
				return nil, domainerrors.ErrNotFound.WrapMessage("work log not found")
			}

			return nil, errors.Wrap(err, "failed to find work log")
		}

		return log.Slots, nil
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown attachment owner kind")
	}
}

func (srv *attachmentService) saveSlots(ctx context.Context, kind usecase.AttachmentOwnerKind, ownerID uuid.UUID, slots entity.SlotCounts) error {
	var err error
	switch kind {
	case usecase.AttachmentOwnerMachine:
		err = srv.machines.UpdateSlots(ctx, ownerID, slots)
	case usecase.AttachmentOwnerWorkLog:
		err = srv.workLogs.UpdateSlots(ctx, ownerID, slots)
	}
	if err != nil {
		return errors.Wrap(err, "failed to persist slot counters")
	}

	return nil
}

func countersFor(slots entity.SlotCounts, categories []entity.SlotCategory) map[string]int {
	out := make(map[string]int, len(categories))
	for _, category := range categories {
		out[string(category)] = slots.Get(category)
	}

	return out
}
