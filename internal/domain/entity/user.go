// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. Accounts are normally auto-created on the first
// successful login against the external identity provider; the optional local
// credential (username/password) exists for accounts that predate the bridge.
type User struct {
	ID            uuid.UUID
	ExternalID    string // The user's unique id at the external identity provider.
	Username      string // Lowercased login name, unique.
	Name          string // Display name, unique.
	PasswordHash  string // bcrypt hash of the optional local credential. Never serialized.
	Role          Role
	LastLoginTime int64 // Epoch seconds of the most recent successful login.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RefreshToken represents a long-lived, single-use session record.
// It is consumed (deleted) on redemption and a fresh one is issued in its place.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time
	CreatedAt time.Time
}
