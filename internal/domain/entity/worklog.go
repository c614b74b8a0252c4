package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorkLogType distinguishes routine maintenance visits from repair call-outs.
type WorkLogType string

const (
	WorkLogTypeMaintenance WorkLogType = "maintenance"
	WorkLogTypeRepair      WorkLogType = "repair"
)

// WorkLogTypes lists the valid visit types.
var WorkLogTypes = []WorkLogType{WorkLogTypeMaintenance, WorkLogTypeRepair}

// IsValid checks if the WorkLogType is a known value.
func (t WorkLogType) IsValid() bool {
	return t == WorkLogTypeMaintenance || t == WorkLogTypeRepair
}

// Commute records one leg of a vehicle trip to or from a site.
type Commute struct {
	SiteID     *uuid.UUID // Origin for the outbound leg, destination for the return leg.
	Site       *Site      // Resolved on read, name only.
	CarID      string
	StartKilos float64 // Odometer at departure.
	EndKilos   float64 // Odometer at arrival.
	Date       *time.Time
}

// WorkLog records one maintenance or repair visit to a site, including the
// round-trip vehicle commutes and the attachment slot counters.
type WorkLog struct {
	ID               uuid.UUID
	OwnerIDs         []uuid.UUID
	Owners           []*User // Resolved on read.
	SiteID           *uuid.UUID
	Site             *Site
	WorkLogType      WorkLogType
	Date             *time.Time
	ToSiteCommute    *Commute
	LeaveSiteCommute *Commute
	Slots            SlotCounts
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
