package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation services.
type QRCodeService interface {
	// GenerateMachineQR generates a PNG QR code encoding the machine lookup URL.
	GenerateMachineQR(machineID uuid.UUID) ([]byte, error)
}
