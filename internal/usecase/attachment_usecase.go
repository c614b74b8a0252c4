package usecase

import (
	"context"
	"io"

	"github.com/google/uuid"
)

// AttachmentOwnerKind names which resource an attachment hangs off.
type AttachmentOwnerKind string

const (
	AttachmentOwnerMachine AttachmentOwnerKind = "machine"
	AttachmentOwnerWorkLog AttachmentOwnerKind = "worklog"
)

// AttachmentUsecase manages the numbered file slots of machines and work logs.
type AttachmentUsecase interface {
	// Upload stores a file into the given slot. Index >= 1 persists the file
	// and advances the category counter when index exceeds it. Index == 0
	// deletes all files of the category and resets the counter.
	// Returns the category counters after the operation.
	Upload(ctx context.Context, kind AttachmentOwnerKind, ownerID uuid.UUID, category string, index int, file io.Reader) (map[string]int, error)

	// Download streams the slot file. A slot that was never written resolves
	// to NotFound.
	Download(ctx context.Context, kind AttachmentOwnerKind, ownerID uuid.UUID, category string, index int) (io.ReadCloser, error)
}
