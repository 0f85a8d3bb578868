package model

import (
	"time"

	"github.com/google/uuid"
)

// CouponModel mirrors the 'coupons' table. Outlets and interests are
// many-to-many through join tables managed by GORM.
type CouponModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	TypeID     uuid.UUID `gorm:"type:uuid;not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null"`
	CampaignID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Deal        string `gorm:"type:varchar(255);not null"`
	Terms       string `gorm:"type:text"`
	Amount      int    `gorm:"not null;default:0"`
	Code        string `gorm:"type:varchar(64);not null"`

	Start time.Time `gorm:"not null"`
	End   time.Time `gorm:"not null"`

	Advertisement bool `gorm:"not null;default:false"`
	Active        bool `gorm:"not null;default:true"`
	Published     bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Campaign  *CampaignModel  `gorm:"foreignKey:CampaignID"`
	Outlets   []OutletModel   `gorm:"many2many:coupon_outlets;joinForeignKey:CouponID;joinReferences:OutletID"`
	Interests []InterestModel `gorm:"many2many:coupon_interests;joinForeignKey:CouponID;joinReferences:InterestID"`
}

// TableName explicitly sets the table name for GORM.
func (CouponModel) TableName() string {
	return "coupons"
}
