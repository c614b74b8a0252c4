package filestore

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZzzGreay/LanyuERP-BE/config"
	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Files = &config.FilesConfig{
		BaseDir:   t.TempDir(),
		Extension: ".jpg",
	}

	return NewStore(cfg, slog.New(slog.DiscardHandler)).(*Store)
}

func TestStore_PathIsDeterministic(t *testing.T) {
	store := newTestStore(t)
	ownerID := uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	path := store.Path(ownerID, entity.SlotManual, 3)
	assert.Equal(t,
		filepath.Join(store.baseDir, "manual", "7c9e6679-7425-40de-944b-e07fc1f90ae7_manual_3.jpg"),
		path)
}

func TestStore_SaveAndOpen(t *testing.T) {
	store := newTestStore(t)
	ownerID := uuid.New()

	err := store.Save(ownerID, entity.SlotPolicy, 1, strings.NewReader("image-bytes"))
	require.NoError(t, err)

	rc, err := store.Open(ownerID, entity.SlotPolicy, 1)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "image-bytes", string(content))
}

func TestStore_SaveOverwritesSameSlot(t *testing.T) {
	store := newTestStore(t)
	ownerID := uuid.New()

	require.NoError(t, store.Save(ownerID, entity.SlotPolicy, 2, strings.NewReader("first")))
	require.NoError(t, store.Save(ownerID, entity.SlotPolicy, 2, strings.NewReader("second")))

	rc, err := store.Open(ownerID, entity.SlotPolicy, 2)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}

func TestStore_OpenMissingSlot(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Open(uuid.New(), entity.SlotManual, 1)
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestStore_RemoveDeletesRange(t *testing.T) {
	store := newTestStore(t)
	ownerID := uuid.New()

	for i := 1; i <= 3; i++ {
		require.NoError(t, store.Save(ownerID, entity.SlotCalibration, i, strings.NewReader("x")))
	}

	store.Remove(ownerID, entity.SlotCalibration, 3)

	for i := 1; i <= 3; i++ {
		_, err := store.Open(ownerID, entity.SlotCalibration, i)
		assert.True(t, os.IsNotExist(err), "slot %d should be gone", i)
	}
}

func TestStore_RemoveToleratesSparseSlots(t *testing.T) {
	store := newTestStore(t)
	ownerID := uuid.New()

	// Only slot 2 exists; removing 1..3 must not fail.
	require.NoError(t, store.Save(ownerID, entity.SlotGasSwap, 2, strings.NewReader("x")))

	store.Remove(ownerID, entity.SlotGasSwap, 3)

	_, err := store.Open(ownerID, entity.SlotGasSwap, 2)
	assert.True(t, os.IsNotExist(err))
}
