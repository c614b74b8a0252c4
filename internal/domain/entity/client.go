package entity

import (
	"time"

	"github.com/google/uuid"
)

// ContractTypes lists the contract labels the UI offers when filing a client.
var ContractTypes = []string{"purchase", "rental", "service"}

// Client is a customer organization holding a service contract.
type Client struct {
	ID                uuid.UUID
	Name              string // Unique organization name.
	ContractStartDate string // Date string, "2006-01-02".
	ContractEndDate   string
	ContractType      string
	Note              string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
