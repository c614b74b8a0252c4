package model

import (
	"time"

	"github.com/google/uuid"
)

// MachineModel mirrors the 'machines' table. Each attachment category keeps an
// integer counter naming the highest uploaded slot index.
type MachineModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	MachineID  string     `gorm:"type:varchar(100);unique;not null;column:machine_id"`
	Alias      string     `gorm:"type:varchar(100);unique;not null"`
	Type       string     `gorm:"type:varchar(100)"`
	State      string     `gorm:"type:varchar(30);not null;default:'initializing'"`
	LocationID *uuid.UUID `gorm:"type:uuid;index"`

	SlotPolicy        int `gorm:"not null;default:0"`
	SlotRegistration  int `gorm:"not null;default:0"`
	SlotOperationCert int `gorm:"not null;default:0"`
	SlotLaborCert     int `gorm:"not null;default:0"`
	SlotManual        int `gorm:"not null;default:0"`
	SlotInstruction   int `gorm:"not null;default:0"`
	SlotInspection    int `gorm:"not null;default:0"`
	SlotGasConfig     int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Location *SiteModel `gorm:"foreignKey:LocationID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (MachineModel) TableName() string {
	return "machines"
}
