package entity

import (
	"time"

	"github.com/google/uuid"
)

// PartState describes whether a part is on the shelf or installed.
type PartState string

const (
	PartStateInStock PartState = "in-stock"
	PartStateInUse   PartState = "in-use"
)

// PartStates lists the part lifecycle states; the first is the default.
var PartStates = []PartState{PartStateInStock, PartStateInUse}

// IsValid checks if the PartState is a known value.
func (s PartState) IsValid() bool {
	return s == PartStateInStock || s == PartStateInUse
}

// Part is a spare or installed component. MachineID is set while the part is
// installed; removing the machine does not clear it (no cascade).
type Part struct {
	ID        uuid.UUID
	Name      string
	PartID    string // Component code.
	State     PartState
	MachineID *uuid.UUID
	Machine   *Machine // Resolved on read.
	CreatedAt time.Time
	UpdatedAt time.Time
}
