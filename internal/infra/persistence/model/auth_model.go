package model

import (
	"time"

	"github.com/google/uuid"
)

// RefreshTokenModel mirrors the 'refresh_tokens' table. UUID columns align with PostgreSQL schema.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null"`
	TokenHash string    `gorm:"type:varchar(255);unique;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

// EmailConfirmationModel mirrors the 'email_confirmations' table. Codes are
// single-use; ConfirmedAt stays NULL until consumed.
type EmailConfirmationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Email       string    `gorm:"type:varchar(255);not null;index"`
	Code        string    `gorm:"type:varchar(64);not null"`
	ConfirmedAt *time.Time
	ExpiresAt   time.Time `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailConfirmationModel) TableName() string {
	return "email_confirmations"
}
