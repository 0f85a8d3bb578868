package model

import (
	"time"

	"github.com/google/uuid"
)

// OrganizationModel mirrors the 'organizations' table. The unique index on
// VendorAccountID enforces the one-organization-per-vendor rule at the
// database level.
type OrganizationModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VendorAccountID uuid.UUID `gorm:"type:uuid;unique;not null"`
	Name            string    `gorm:"type:varchar(255);unique;not null"`
	Address         string    `gorm:"type:varchar(1024)"`
	Verified        bool      `gorm:"not null;default:false"`
	Reviewed        bool      `gorm:"not null;default:false"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Campaigns []CampaignModel `gorm:"foreignKey:OrganizationID"`
	Outlets   []OutletModel   `gorm:"foreignKey:OrganizationID"`
}

// TableName explicitly sets the table name for GORM.
func (OrganizationModel) TableName() string {
	return "organizations"
}

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Start          time.Time `gorm:"not null"`
	End            time.Time `gorm:"not null"`
	Active         bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Organization *OrganizationModel `gorm:"foreignKey:OrganizationID"`
	Coupons      []CouponModel      `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}

// OutletModel mirrors the 'outlets' table. Coordinates are stored as raw
// decimals; the derived geometry lives on the domain entity.
type OutletModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Description    string    `gorm:"type:text"`
	Address        string    `gorm:"type:varchar(1024)"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Organization *OrganizationModel `gorm:"foreignKey:OrganizationID"`
}

// TableName explicitly sets the table name for GORM.
func (OutletModel) TableName() string {
	return "outlets"
}
