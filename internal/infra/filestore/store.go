// Package filestore persists numbered attachment files on the local disk.
// The path of every file is a pure function of owner id, category and slot
// index, so lookups never need a metadata table.
package filestore

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ZzzGreay/LanyuERP-BE/config"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store is a local-disk implementation of the AttachmentStore interface.
type Store struct {
	baseDir   string
	extension string
	logger    *slog.Logger
}

// NewStore creates an attachment store rooted at the configured base directory.
func NewStore(cfg *config.Config, logger *slog.Logger) service.AttachmentStore {
	return &Store{
		baseDir:   cfg.Files.BaseDir,
		extension: cfg.Files.Extension,
		logger:    logger,
	}
}

// Path returns the deterministic on-disk location of a slot file:
// {baseDir}/{category}/{ownerID}_{category}_{index}{ext}.
func (s *Store) Path(ownerID uuid.UUID, category entity.SlotCategory, index int) string {
	name := fmt.Sprintf("%s_%s_%d%s", ownerID.String(), category, index, s.extension)

	return filepath.Join(s.baseDir, string(category), name)
}

// Save writes the content of r into the slot file, creating the category
// directory on first use. An existing file at the same index is overwritten.
func (s *Store) Save(ownerID uuid.UUID, category entity.SlotCategory, index int, r io.Reader) error {
	path := s.Path(ownerID, category, index)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create category directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create slot file")
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return errors.Wrap(err, "write slot file")
	}

	return nil
}

// Open opens the slot file for reading. The raw os error is returned so
// callers can distinguish a missing slot with os.IsNotExist.
func (s *Store) Open(ownerID uuid.UUID, category entity.SlotCategory, index int) (io.ReadCloser, error) {
	return os.Open(s.Path(ownerID, category, index))
}

// Remove deletes slot files 1 through upto for the owner and category.
// Failures are logged and swallowed, the reset of the counter must not be
// blocked by a file that is already gone or unremovable.
func (s *Store) Remove(ownerID uuid.UUID, category entity.SlotCategory, upto int) {
	for i := 1; i <= upto; i++ {
		path := s.Path(ownerID, category, i)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove slot file",
				slog.String("path", path),
				slog.Any("error", err))
		}
	}
}
