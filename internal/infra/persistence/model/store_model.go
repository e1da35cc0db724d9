package model

import (
	"time"

	"gorm.io/gorm"
)

// StoreModel mirrors the 'stores' table.
type StoreModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	Address   string `gorm:"type:varchar(255);not null"`
	CityID    uint   `gorm:"not null;index"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Contacts []StoreContactDetailModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StoreContactDetailModel mirrors the 'store_contact_details' table.
type StoreContactDetailModel struct {
	ID          uint   `gorm:"primaryKey"`
	StoreID     uint   `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(100);not null"`
	Email       string `gorm:"type:varchar(255)"`
	PhoneNumber string `gorm:"type:varchar(10);not null"`
	IsPrimary   bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StoreContactDetailModel) TableName() string {
	return "store_contact_details"
}
