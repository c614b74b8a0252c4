package model

import (
	"time"

	"github.com/google/uuid"
)

// PartModel mirrors the 'parts' table. MachineID stays set after the machine
// itself is deleted, lookups just stop resolving.
type PartModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string     `gorm:"type:varchar(100);not null"`
	PartID    string     `gorm:"type:varchar(100);column:part_id"`
	State     string     `gorm:"type:varchar(20);not null;default:'in-stock'"`
	MachineID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Machine *MachineModel `gorm:"foreignKey:MachineID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (PartModel) TableName() string {
	return "parts"
}
