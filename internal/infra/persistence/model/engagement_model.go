package model

import (
	"time"

	"github.com/google/uuid"
)

// RatingModel mirrors the 'ratings' table. One rating per consumer per coupon.
type RatingModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConsumerAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_consumer_coupon"`
	CouponID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_consumer_coupon"`
	Rate              int       `gorm:"not null"`
	Review            string    `gorm:"type:text"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RatingModel) TableName() string {
	return "ratings"
}

// ShortlistModel mirrors the 'shortlists' table.
type ShortlistModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConsumerAccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shortlists_consumer_coupon"`
	CouponID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_shortlists_consumer_coupon"`
	Active            bool      `gorm:"not null;default:true"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShortlistModel) TableName() string {
	return "shortlists"
}

// RedemptionModel mirrors the 'redemptions' table.
type RedemptionModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConsumerAccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	CouponID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (RedemptionModel) TableName() string {
	return "redemptions"
}
