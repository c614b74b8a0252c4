package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table. Contract dates are stored as plain
// date strings, matching what operators type in.
type ClientModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name              string    `gorm:"type:varchar(100);unique;not null"`
	ContractStartDate string    `gorm:"type:varchar(20)"`
	ContractEndDate   string    `gorm:"type:varchar(20)"`
	ContractType      string    `gorm:"type:varchar(50)"`
	Note              string    `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
