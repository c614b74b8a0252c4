package entity

import (
	"time"

	"github.com/google/uuid"
)

// Site is a physical location where machines are installed. Owner and Client
// are lookup-only references: deleting either leaves the site untouched.
type Site struct {
	ID            uuid.UUID
	Name          string // Unique site name.
	OwnerID       *uuid.UUID
	Owner         *User // Resolved on read when requested.
	ClientID      *uuid.UUID
	Client        *Client
	City          string
	Address       string
	Longitude     float64
	Latitude      float64
	LastVisitDate *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
