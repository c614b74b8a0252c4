package model

import (
	"time"

	"github.com/google/uuid"
)

// SiteModel mirrors the 'sites' table. Owner and client are plain references
// without foreign key constraints, deleting either side never cascades here.
type SiteModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name          string     `gorm:"type:varchar(100);unique;not null"`
	OwnerID       *uuid.UUID `gorm:"type:uuid;index"`
	ClientID      *uuid.UUID `gorm:"type:uuid;index"`
	City          string     `gorm:"type:varchar(100)"`
	Address       string     `gorm:"type:varchar(255)"`
	Longitude     float64
	Latitude      float64
	LastVisitDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner  *UserModel   `gorm:"foreignKey:OwnerID;constraint:-"`
	Client *ClientModel `gorm:"foreignKey:ClientID;constraint:-"`
}

// TableName explicitly sets the table name for GORM.
func (SiteModel) TableName() string {
	return "sites"
}
