package repository

import (
	"context"
	"errors"
	"time"

	"lmi/internal/domain/entity"
)

// ErrHolidayNotFound is returned when no live holiday matches the query.
var ErrHolidayNotFound = errors.New("holiday not found")

// HolidayUpdate is the caller-writable field set for a holiday.
type HolidayUpdate struct {
	Title       string
	Date        time.Time
	Description string
}

// HolidayRepository defines persistence operations for holidays. The same
// live-rows-only discipline as SaaSAdminRepository applies.
type HolidayRepository interface {
	List(ctx context.Context, query ListQuery) ([]entity.Holiday, int64, error)

	FindByID(ctx context.Context, id uint) (*entity.Holiday, error)

	FindSummaryByID(ctx context.Context, id uint) (*entity.HolidaySummary, error)

	// ExistsByTitleDate reports whether a live holiday with the same title on
	// the same date exists, optionally excluding one row.
	ExistsByTitleDate(ctx context.Context, title string, date time.Time, excludeID uint) (bool, error)

	Create(ctx context.Context, holiday *entity.Holiday) error

	Update(ctx context.Context, id uint, fields HolidayUpdate) error

	Delete(ctx context.Context, id uint) error
}
