package model

import (
	"time"

	"gorm.io/gorm"
)

// HolidayModel mirrors the 'holidays' table. Duplicate (title, date) pairs are
// rejected for live rows only, same partial-index trick as saas_admins.
type HolidayModel struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"type:varchar(50);not null;index:idx_holidays_live_title_date,unique,where:deleted_at IS NULL"`
	Date        time.Time `gorm:"type:date;not null;index:idx_holidays_live_title_date,unique,where:deleted_at IS NULL"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (HolidayModel) TableName() string {
	return "holidays"
}
