package model

import (
	"time"

	"github.com/google/uuid"
)

// CommuteColumns is embedded twice into WorkLogModel, once per trip leg,
// using column prefixes to_ and leave_.
type CommuteColumns struct {
	SiteID     *uuid.UUID `gorm:"type:uuid"`
	CarID      string     `gorm:"type:varchar(50)"`
	StartKilos float64
	EndKilos   float64
	Date       *time.Time
}

// WorkLogModel mirrors the 'work_logs' table. Owners live in the
// work_log_owners join table; slot counters sit inline like on machines.
type WorkLogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SiteID      *uuid.UUID `gorm:"type:uuid;index"`
	WorkLogType string     `gorm:"type:varchar(20);not null;default:'maintenance'"`
	Date        *time.Time

	ToSiteCommute    CommuteColumns `gorm:"embedded;embeddedPrefix:to_"`
	LeaveSiteCommute CommuteColumns `gorm:"embedded;embeddedPrefix:leave_"`

	SlotInstallRecord   int `gorm:"not null;default:0"`
	SlotDailyInspection int `gorm:"not null;default:0"`
	SlotCalibration     int `gorm:"not null;default:0"`
	SlotVerification    int `gorm:"not null;default:0"`
	SlotConsumableSwap  int `gorm:"not null;default:0"`
	SlotGasSwap         int `gorm:"not null;default:0"`
	SlotRepairRecord    int `gorm:"not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Site   *SiteModel          `gorm:"foreignKey:SiteID;constraint:-"`
	Owners []WorkLogOwnerModel `gorm:"foreignKey:WorkLogID"`
}

// TableName explicitly sets the table name for GORM.
func (WorkLogModel) TableName() string {
	return "work_logs"
}

// WorkLogOwnerModel mirrors the 'work_log_owners' join table. Order of owners
// is preserved through the position column.
type WorkLogOwnerModel struct {
	WorkLogID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Position  int       `gorm:"not null;default:0"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (WorkLogOwnerModel) TableName() string {
	return "work_log_owners"
}
