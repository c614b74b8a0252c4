package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkItemModel mirrors the 'work_items' table. Part and NewPart reference the
// component removed and the component installed during a swap.
type WorkItemModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	WorkLogID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	WorkType    string     `gorm:"type:varchar(20);not null"`
	MachineID   *uuid.UUID `gorm:"type:uuid;index"`
	PartID      *uuid.UUID `gorm:"type:uuid"`
	NewPartID   *uuid.UUID `gorm:"type:uuid"`
	PartCount   int        `gorm:"not null;default:0"`
	Description string     `gorm:"type:text"`
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	WorkLog *WorkLogModel        `gorm:"foreignKey:WorkLogID;constraint:-"`
	Machine *MachineModel        `gorm:"foreignKey:MachineID;constraint:-"`
	Part    *PartModel           `gorm:"foreignKey:PartID;constraint:-"`
	NewPart *PartModel           `gorm:"foreignKey:NewPartID;constraint:-"`
	Owners  []WorkItemOwnerModel `gorm:"foreignKey:WorkItemID"`
}

// TableName explicitly sets the table name for GORM.
func (WorkItemModel) TableName() string {
	return "work_items"
}

// WorkItemOwnerModel mirrors the 'work_item_owners' join table.
type WorkItemOwnerModel struct {
	WorkItemID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position   int       `gorm:"not null;default:0"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (WorkItemOwnerModel) TableName() string {
	return "work_item_owners"
}
