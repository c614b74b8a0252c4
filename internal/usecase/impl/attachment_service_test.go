package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"
	domainerrors "github.com/ZzzGreay/LanyuERP-BE/internal/domain/errors"
	"github.com/ZzzGreay/LanyuERP-BE/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type attachmentServiceFixtures struct {
	service  usecase.AttachmentUsecase
	machines *fakeMachineRepo
	workLogs *fakeWorkLogRepo
	store    *fakeAttachmentStore
}

func createTestAttachmentService(t *testing.T) attachmentServiceFixtures {
	t.Helper()

	machines := newFakeMachineRepo()
	workLogs := newFakeWorkLogRepo()
	store := newFakeAttachmentStore()

	svc := NewAttachmentService(machines, workLogs, store, newDiscardLogger())

	return attachmentServiceFixtures{
		service:  svc,
		machines: machines,
		workLogs: workLogs,
		store:    store,
	}
}

func TestAttachmentService_Upload_AdvancesCounter(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{
		MachineID: "M-001",
		Slots:     entity.SlotCounts{entity.SlotManual: 2},
	})

	counters, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotManual), 3,
		strings.NewReader("manual v3"))

	require.NoError(t, err)
	assert.Equal(t, 3, counters[string(entity.SlotManual)])
	assert.Equal(t, 0, counters[string(entity.SlotPolicy)])
	require.Len(t, fx.machines.slotWrites, 1)
	assert.Equal(t, 3, fx.machines.slotWrites[0].Get(entity.SlotManual))
}

func TestAttachmentService_Upload_OverwriteKeepsCounter(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{
		MachineID: "M-001",
		Slots:     entity.SlotCounts{entity.SlotManual: 5},
	})

	counters, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotManual), 2,
		strings.NewReader("manual v2, revised"))

	require.NoError(t, err)
	assert.Equal(t, 5, counters[string(entity.SlotManual)])
}

func TestAttachmentService_Upload_ZeroIndexClearsCategory(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{
		MachineID: "M-001",
		Slots:     entity.SlotCounts{entity.SlotManual: 4},
	})

	counters, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotManual), 0, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, counters[string(entity.SlotManual)])
	// The store was asked to sweep slots 1..4.
	require.Len(t, fx.store.removals, 1)
	assert.Equal(t, 4, fx.store.removals[0])
}

func TestAttachmentService_Upload_WorkLogCategory(t *testing.T) {
	fx := createTestAttachmentService(t)
	log := fx.workLogs.add(&entity.WorkLog{Slots: entity.SlotCounts{}})

	counters, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerWorkLog, log.ID, string(entity.SlotCalibration), 1,
		strings.NewReader("calibration sheet"))

	require.NoError(t, err)
	assert.Equal(t, 1, counters[string(entity.SlotCalibration)])
	require.Len(t, fx.workLogs.slotWrites, 1)
}

func TestAttachmentService_Upload_UnknownCategory(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{MachineID: "M-001"})

	_, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, "selfies", 1,
		strings.NewReader("nope"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAttachmentService_Upload_CategoryKindMismatch(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{MachineID: "M-001"})

	// calibration is a work-log category, not a machine one.
	_, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotCalibration), 1,
		strings.NewReader("nope"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAttachmentService_Upload_MissingOwner(t *testing.T) {
	fx := createTestAttachmentService(t)

	_, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerMachine, uuid.New(), string(entity.SlotManual), 1,
		strings.NewReader("orphan"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestAttachmentService_Download_RoundTrip(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{MachineID: "M-001", Slots: entity.SlotCounts{}})

	_, err := fx.service.Upload(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotManual), 1,
		strings.NewReader("the manual"))
	require.NoError(t, err)

	rc, err := fx.service.Download(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotManual), 1)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "the manual", string(data))
}

func TestAttachmentService_Download_MissingSlot(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{MachineID: "M-001"})

	_, err := fx.service.Download(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotManual), 7)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.ErrorCode())
}

func TestAttachmentService_Download_ZeroIndexRejected(t *testing.T) {
	fx := createTestAttachmentService(t)
	machine := fx.machines.add(&entity.Machine{MachineID: "M-001"})

	_, err := fx.service.Download(context.Background(),
		usecase.AttachmentOwnerMachine, machine.ID, string(entity.SlotManual), 0)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}
