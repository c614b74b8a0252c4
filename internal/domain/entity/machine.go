package entity

import (
	"time"

	"github.com/google/uuid"
)

// MachineState describes where a machine sits in its lifecycle.
type MachineState string

const (
	MachineStateInitializing     MachineState = "initializing"
	MachineStateAssembling       MachineState = "assembling"
	MachineStateRunning          MachineState = "running"
	MachineStateNeedsMaintenance MachineState = "needs-maintenance"
	MachineStateUnderRepair      MachineState = "under-repair"
	MachineStateDamaged          MachineState = "damaged"
)

// MachineStates lists all lifecycle states in order. The first entry is the
// default for newly created machines.
var MachineStates = []MachineState{
	MachineStateInitializing,
	MachineStateAssembling,
	MachineStateRunning,
	MachineStateNeedsMaintenance,
	MachineStateUnderRepair,
	MachineStateDamaged,
}

// IsValid checks if the MachineState is a known value.
func (s MachineState) IsValid() bool {
	for _, state := range MachineStates {
		if s == state {
			return true
		}
	}

	return false
}

// Machine is a single equipment unit installed at a site. Each attachment
// category carries an integer slot counter; see SlotCounts.
type Machine struct {
	ID         uuid.UUID
	MachineID  string // Unique equipment code.
	Alias      string // Unique short name, e.g. the boiler number.
	Type       string
	State      MachineState
	LocationID *uuid.UUID
	Location   *Site // Resolved on read.
	Slots      SlotCounts
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
