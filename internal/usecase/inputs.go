package usecase

import (
	"time"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor identifies who is performing an operation, extracted from the access
// token by the auth middleware.
type Actor struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin
}

// Default page sizes. The client list is the only short one, matching how the
// mobile app paginates.
const (
	DefaultPerPage        = 10000
	DefaultPerPageClients = 30
)

// The input types below carry request bodies into the services. Nil pointer
// fields mean "not provided": Create validates required ones, Update merges
// only the provided ones, Replace writes every field.

// UserInput carries the mutable attributes of a user.
type UserInput struct {
	ExternalID    *string `json:"externalId"`
	Username      *string `json:"username"`
	Name          *string `json:"name"`
	Password      *string `json:"password"`
	Role          *string `json:"role"`
	LastLoginTime *int64  `json:"lastLoginTime"`
}

// ClientInput carries the mutable attributes of a client.
type ClientInput struct {
	Name              *string `json:"name"`
	ContractStartDate *string `json:"contractStartDate"`
	ContractEndDate   *string `json:"contractEndDate"`
	ContractType      *string `json:"contractType"`
	Note              *string `json:"note"`
}

// SiteInput carries the mutable attributes of a site.
type SiteInput struct {
	Name          *string    `json:"name"`
	OwnerID       *uuid.UUID `json:"ownerId"`
	ClientID      *uuid.UUID `json:"clientId"`
	City          *string    `json:"city"`
	Address       *string    `json:"address"`
	Longitude     *float64   `json:"longitude"`
	Latitude      *float64   `json:"latitude"`
	LastVisitDate *time.Time `json:"lastVisitDate"`
}

// MachineInput carries the mutable attributes of a machine.
type MachineInput struct {
	MachineID  *string    `json:"machineId"`
	Alias      *string    `json:"alias"`
	Type       *string    `json:"type"`
	State      *string    `json:"state"`
	LocationID *uuid.UUID `json:"locationId"`
}

// PartInput carries the mutable attributes of a part.
type PartInput struct {
	Name      *string    `json:"name"`
	PartID    *string    `json:"partId"`
	State     *string    `json:"state"`
	MachineID *uuid.UUID `json:"machineId"`
}

// CommuteInput carries one trip leg of a work log.
type CommuteInput struct {
	SiteID     *uuid.UUID `json:"siteId"`
	CarID      *string    `json:"carId"`
	StartKilos *float64   `json:"startKilos"`
	EndKilos   *float64   `json:"endKilos"`
	Date       *time.Time `json:"date"`
}

// WorkLogInput carries the mutable attributes of a work log.
type WorkLogInput struct {
	OwnerIDs         []uuid.UUID   `json:"ownerIds"`
	SiteID           *uuid.UUID    `json:"siteId"`
	WorkLogType      *string       `json:"workLogType"`
	Date             *time.Time    `json:"date"`
	ToSiteCommute    *CommuteInput `json:"toSiteCommute"`
	LeaveSiteCommute *CommuteInput `json:"leaveSiteCommute"`
}

// WorkItemInput carries the mutable attributes of a work item.
type WorkItemInput struct {
	WorkLogID   *uuid.UUID  `json:"workLogId"`
	OwnerIDs    []uuid.UUID `json:"ownerIds"`
	WorkType    *string     `json:"workType"`
	MachineID   *uuid.UUID  `json:"machineId"`
	PartID      *uuid.UUID  `json:"partId"`
	NewPartID   *uuid.UUID  `json:"newPartId"`
	PartCount   *int        `json:"partCount"`
	Description *string     `json:"description"`
	StartTime   *time.Time  `json:"startTime"`
	EndTime     *time.Time  `json:"endTime"`
}
