// Package usecase contains the application-specific business rules.
package usecase

import (
	"time"

	"github.com/ZzzGreay/LanyuERP-BE/internal/domain/entity"

	"github.com/google/uuid"
)

// The DTO types below are the fixed wire shapes of each resource. Everything a
// response carries goes through one of these transforms; storage rows and
// internal fields (notably the password hash) never leak past them.

// UserDTO is the wire shape of a user account.
type UserDTO struct {
	ID            uuid.UUID `json:"id"`
	ExternalID    string    `json:"externalId,omitempty"`
	Username      string    `json:"username,omitempty"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	LastLoginTime int64     `json:"lastLoginTime"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToUserDTO maps a user entity onto its wire shape.
func ToUserDTO(user *entity.User) *UserDTO {
	if user == nil {
		return nil
	}

	return &UserDTO{
		ID:            user.ID,
		ExternalID:    user.ExternalID,
		Username:      user.Username,
		Name:          user.Name,
		Role:          user.Role.String(),
		LastLoginTime: user.LastLoginTime,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.UpdatedAt,
	}
}

// ClientDTO is the wire shape of a customer organization.
type ClientDTO struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	ContractStartDate string    `json:"contractStartDate,omitempty"`
	ContractEndDate   string    `json:"contractEndDate,omitempty"`
	ContractType      string    `json:"contractType,omitempty"`
	Note              string    `json:"note,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// ToClientDTO maps a client entity onto its wire shape.
func ToClientDTO(client *entity.Client) *ClientDTO {
	if client == nil {
		return nil
	}

	return &ClientDTO{
		ID:                client.ID,
		Name:              client.Name,
		ContractStartDate: client.ContractStartDate,
		ContractEndDate:   client.ContractEndDate,
		ContractType:      client.ContractType,
		Note:              client.Note,
		CreatedAt:         client.CreatedAt,
		UpdatedAt:         client.UpdatedAt,
	}
}

// SiteDTO is the wire shape of a site. Owner and client resolve to display
// names when the reference is still live.
type SiteDTO struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	OwnerID       *uuid.UUID `json:"ownerId,omitempty"`
	OwnerName     string     `json:"ownerName,omitempty"`
	ClientID      *uuid.UUID `json:"clientId,omitempty"`
	ClientName    string     `json:"clientName,omitempty"`
	City          string     `json:"city,omitempty"`
	Address       string     `json:"address,omitempty"`
	Longitude     float64    `json:"longitude"`
	Latitude      float64    `json:"latitude"`
	LastVisitDate *time.Time `json:"lastVisitDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// ToSiteDTO maps a site entity onto its wire shape.
func ToSiteDTO(site *entity.Site) *SiteDTO {
	if site == nil {
		return nil
	}

	dto := &SiteDTO{
		ID:            site.ID,
		Name:          site.Name,
		OwnerID:       site.OwnerID,
		ClientID:      site.ClientID,
		City:          site.City,
		Address:       site.Address,
		Longitude:     site.Longitude,
		Latitude:      site.Latitude,
		LastVisitDate: site.LastVisitDate,
		CreatedAt:     site.CreatedAt,
		UpdatedAt:     site.UpdatedAt,
	}
	if site.Owner != nil {
		dto.OwnerName = site.Owner.Name
	}
	if site.Client != nil {
		dto.ClientName = site.Client.Name
	}

	return dto
}

// NearbySiteDTO is a site paired with its distance from a reference site.
type NearbySiteDTO struct {
	Site           *SiteDTO `json:"site"`
	DistanceMeters float64  `json:"distanceMeters"`
}

// MachineDTO is the wire shape of a machine, slot counters included.
type MachineDTO struct {
	ID           uuid.UUID      `json:"id"`
	MachineID    string         `json:"machineId"`
	Alias        string         `json:"alias"`
	Type         string         `json:"type,omitempty"`
	State        string         `json:"state"`
	LocationID   *uuid.UUID     `json:"locationId,omitempty"`
	LocationName string         `json:"locationName,omitempty"`
	Slots        map[string]int `json:"slots"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

// ToMachineDTO maps a machine entity onto its wire shape.
func ToMachineDTO(machine *entity.Machine) *MachineDTO {
	if machine == nil {
		return nil
	}

	dto := &MachineDTO{
		ID:         machine.ID,
		MachineID:  machine.MachineID,
		Alias:      machine.Alias,
		Type:       machine.Type,
		State:      string(machine.State),
		LocationID: machine.LocationID,
		Slots:      slotsToMap(machine.Slots, entity.MachineSlotCategories),
		CreatedAt:  machine.CreatedAt,
		UpdatedAt:  machine.UpdatedAt,
	}
	if machine.Location != nil {
		dto.LocationName = machine.Location.Name
	}

	return dto
}

// PartDTO is the wire shape of a spare part.
type PartDTO struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	PartID       string     `json:"partId,omitempty"`
	State        string     `json:"state"`
	MachineID    *uuid.UUID `json:"machineId,omitempty"`
	MachineAlias string     `json:"machineAlias,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// ToPartDTO maps a part entity onto its wire shape.
func ToPartDTO(part *entity.Part) *PartDTO {
	if part == nil {
		return nil
	}

	dto := &PartDTO{
		ID:        part.ID,
		Name:      part.Name,
		PartID:    part.PartID,
		State:     string(part.State),
		MachineID: part.MachineID,
		CreatedAt: part.CreatedAt,
		UpdatedAt: part.UpdatedAt,
	}
	if part.Machine != nil {
		dto.MachineAlias = part.Machine.Alias
	}

	return dto
}

// CommuteDTO is the wire shape of one trip leg.
type CommuteDTO struct {
	SiteID     *uuid.UUID `json:"siteId,omitempty"`
	CarID      string     `json:"carId,omitempty"`
	StartKilos float64    `json:"startKilos"`
	EndKilos   float64    `json:"endKilos"`
	Date       *time.Time `json:"date,omitempty"`
}

func toCommuteDTO(commute *entity.Commute) *CommuteDTO {
	if commute == nil {
		return nil
	}

	return &CommuteDTO{
		SiteID:     commute.SiteID,
		CarID:      commute.CarID,
		StartKilos: commute.StartKilos,
		EndKilos:   commute.EndKilos,
		Date:       commute.Date,
	}
}

// WorkLogDTO is the wire shape of a work log.
type WorkLogDTO struct {
	ID               uuid.UUID      `json:"id"`
	OwnerIDs         []uuid.UUID    `json:"ownerIds"`
	OwnerNames       []string       `json:"ownerNames,omitempty"`
	SiteID           *uuid.UUID     `json:"siteId,omitempty"`
	SiteName         string         `json:"siteName,omitempty"`
	WorkLogType      string         `json:"workLogType"`
	Date             *time.Time     `json:"date,omitempty"`
	ToSiteCommute    *CommuteDTO    `json:"toSiteCommute,omitempty"`
	LeaveSiteCommute *CommuteDTO    `json:"leaveSiteCommute,omitempty"`
	Slots            map[string]int `json:"slots"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ToWorkLogDTO maps a work log entity onto its wire shape.
func ToWorkLogDTO(log *entity.WorkLog) *WorkLogDTO {
	if log == nil {
		return nil
	}

	dto := &WorkLogDTO{
		ID:               log.ID,
		OwnerIDs:         log.OwnerIDs,
		SiteID:           log.SiteID,
		WorkLogType:      string(log.WorkLogType),
		Date:             log.Date,
		ToSiteCommute:    toCommuteDTO(log.ToSiteCommute),
		LeaveSiteCommute: toCommuteDTO(log.LeaveSiteCommute),
		Slots:            slotsToMap(log.Slots, entity.WorkLogSlotCategories),
		CreatedAt:        log.CreatedAt,
		UpdatedAt:        log.UpdatedAt,
	}
	if dto.OwnerIDs == nil {
		dto.OwnerIDs = []uuid.UUID{}
	}
	if log.Site != nil {
		dto.SiteName = log.Site.Name
	}
	for _, owner := range log.Owners {
		dto.OwnerNames = append(dto.OwnerNames, owner.Name)
	}

	return dto
}

// WorkItemDTO is the wire shape of a work item.
type WorkItemDTO struct {
	ID           uuid.UUID   `json:"id"`
	WorkLogID    uuid.UUID   `json:"workLogId"`
	OwnerIDs     []uuid.UUID `json:"ownerIds"`
	OwnerNames   []string    `json:"ownerNames,omitempty"`
	WorkType     string      `json:"workType"`
	MachineID    *uuid.UUID  `json:"machineId,omitempty"`
	MachineAlias string      `json:"machineAlias,omitempty"`
	PartID       *uuid.UUID  `json:"partId,omitempty"`
	NewPartID    *uuid.UUID  `json:"newPartId,omitempty"`
	PartCount    int         `json:"partCount"`
	Description  string      `json:"description,omitempty"`
	StartTime    time.Time   `json:"startTime"`
	EndTime      time.Time   `json:"endTime"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// ToWorkItemDTO maps a work item entity onto its wire shape.
func ToWorkItemDTO(item *entity.WorkItem) *WorkItemDTO {
	if item == nil {
		return nil
	}

	dto := &WorkItemDTO{
		ID:          item.ID,
		WorkLogID:   item.WorkLogID,
		OwnerIDs:    item.OwnerIDs,
		WorkType:    string(item.WorkType),
		MachineID:   item.MachineID,
		PartID:      item.PartID,
		NewPartID:   item.NewPartID,
		PartCount:   item.PartCount,
		Description: item.Description,
		StartTime:   item.StartTime,
		EndTime:     item.EndTime,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
	if dto.OwnerIDs == nil {
		dto.OwnerIDs = []uuid.UUID{}
	}
	if item.Machine != nil {
		dto.MachineAlias = item.Machine.Alias
	}
	for _, owner := range item.Owners {
		dto.OwnerNames = append(dto.OwnerNames, owner.Name)
	}

	return dto
}

// TokenDTO is the wire shape of an issued token pair.
type TokenDTO struct {
	TokenType    string `json:"tokenType"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

func slotsToMap(slots entity.SlotCounts, categories []entity.SlotCategory) map[string]int {
	out := make(map[string]int, len(categories))
	for _, category := range categories {
		out[string(category)] = slots.Get(category)
	}

	return out
}
