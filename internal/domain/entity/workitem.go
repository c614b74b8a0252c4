package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkType classifies the task performed during a work item.
type WorkType string

const (
	WorkTypeInstall     WorkType = "install"
	WorkTypeMaintenance WorkType = "maintenance"
	WorkTypeRepair      WorkType = "repair"
)

// WorkTypes lists the valid work types.
var WorkTypes = []WorkType{WorkTypeInstall, WorkTypeMaintenance, WorkTypeRepair}

// IsValid checks if the WorkType is a known value.
func (t WorkType) IsValid() bool {
	return t == WorkTypeInstall || t == WorkTypeMaintenance || t == WorkTypeRepair
}

// WorkItem is a single task performed during a WorkLog visit: who did what on
// which machine, optionally swapping a part for a new one.
type WorkItem struct {
	ID          uuid.UUID
	WorkLogID   uuid.UUID
	WorkLog     *WorkLog // Resolved on read.
	OwnerIDs    []uuid.UUID
	Owners      []*User
	WorkType    WorkType
	MachineID   *uuid.UUID
	Machine     *Machine
	PartID      *uuid.UUID // Part originally on the machine.
	Part        *Part
	NewPartID   *uuid.UUID // Replacement part, when one was installed.
	NewPart     *Part
	PartCount   int
	Description string
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
