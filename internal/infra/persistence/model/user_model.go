package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
// ExternalID and Username are nullable: accounts created through the identity
// bridge have no local credential, pre-bridge accounts have no external id.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	ExternalID    *string   `gorm:"type:varchar(255);uniqueIndex"`
	Username      *string   `gorm:"type:varchar(100);uniqueIndex"`
	Name          string    `gorm:"type:varchar(100);unique;not null"`
	PasswordHash  string    `gorm:"type:varchar(255)"`
	Role          string    `gorm:"type:varchar(20);not null;default:'user'"`
	LastLoginTime int64
	CreatedAt     time.Time
	UpdatedAt     time.Time

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// RefreshTokenModel mirrors the 'refresh_tokens' table. Only the SHA-256 hash
// of a token is ever stored.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
