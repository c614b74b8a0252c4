package service

import (
	"io"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
)

// AttachmentStore defines the interface for storing numbered attachment files.
// Files are addressed deterministically by owner, category and slot index, so no
// per-file metadata is persisted anywhere else.
type AttachmentStore interface {
	// Save writes the content of r into the slot file, overwriting any previous
	// content at the same index.
	Save(ownerID uuid.UUID, category entity.SlotCategory, index int, r io.Reader) error

	// Open opens the slot file for reading. Returns an error satisfying
	// IsNotExist checks when the slot was never written.
	Open(ownerID uuid.UUID, category entity.SlotCategory, index int) (io.ReadCloser, error)

	// Remove deletes slot files 1 through upto for the owner and category.
	// Missing files are skipped, removal failures are logged and swallowed.
	Remove(ownerID uuid.UUID, category entity.SlotCategory, upto int)
}
