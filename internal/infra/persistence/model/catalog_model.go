package model

import "github.com/google/uuid"

// CouponTypeModel mirrors the 'coupon_types' table.
type CouponTypeModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CouponTypeModel) TableName() string {
	return "coupon_types"
}

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// InterestModel mirrors the 'interests' table.
type InterestModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);unique;not null"`
	Description string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (InterestModel) TableName() string {
	return "interests"
}
