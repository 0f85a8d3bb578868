// Package model holds the GORM persistence structs mirroring the PostgreSQL
// schema. They are kept separate from domain entities so the schema can
// evolve without leaking storage concerns into the domain.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type AccountModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email      string    `gorm:"type:varchar(255);unique;not null"`
	Handle     string    `gorm:"type:varchar(255);unique;not null"`
	SecretHash string    `gorm:"type:varchar(255);not null"`
	Kind       string    `gorm:"type:varchar(16);not null"`
	Staff      bool      `gorm:"not null;default:false"`
	Superuser  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	VendorProfile   *VendorProfileModel   `gorm:"foreignKey:AccountID"`
	ConsumerProfile *ConsumerProfileModel `gorm:"foreignKey:AccountID"`
	RefreshTokens   []RefreshTokenModel   `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// VendorProfileModel mirrors the 'vendor_profiles' table. AccountID references accounts.id (UUID).
type VendorProfileModel struct {
	AccountID    uuid.UUID          `gorm:"primaryKey"`
	Verified     bool               `gorm:"not null;default:false"`
	Restricted   bool               `gorm:"not null;default:false"`
	Organization *OrganizationModel `gorm:"foreignKey:VendorAccountID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VendorProfileModel) TableName() string {
	return "vendor_profiles"
}

// ConsumerProfileModel mirrors the 'consumer_profiles' table. AccountID references accounts.id (UUID).
type ConsumerProfileModel struct {
	AccountID uuid.UUID  `gorm:"primaryKey"`
	FullName  string     `gorm:"type:varchar(255)"`
	BirthDate *time.Time `gorm:"type:date"`
	Interests []InterestModel `gorm:"many2many:consumer_interests;joinForeignKey:ConsumerAccountID;joinReferences:InterestID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ConsumerProfileModel) TableName() string {
	return "consumer_profiles"
}
