// Package model contains the GORM persistence models mirroring the database
// schema.
package model

import (
	"time"

	"gorm.io/gorm"
)

// SaaSAdminModel mirrors the 'saas_admins' table. Email uniqueness is enforced
// by a partial unique index over live rows (deleted_at IS NULL): the
// application's exists pre-check is only an optimistic fast path, this index
// is what actually decides concurrent duplicate creates.
type SaaSAdminModel struct {
	ID          uint   `gorm:"primaryKey"`
	Username    string `gorm:"type:varchar(50);not null"`
	FirstName   string `gorm:"type:varchar(50);not null"`
	LastName    string `gorm:"type:varchar(50);not null"`
	Email       string `gorm:"type:varchar(255);not null;index:idx_saas_admins_live_email,unique,where:deleted_at IS NULL"`
	PhoneNumber string `gorm:"type:varchar(10);not null"`
	Password    string `gorm:"type:varchar(255);not null"`
	IsActive    bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (SaaSAdminModel) TableName() string {
	return "saas_admins"
}
