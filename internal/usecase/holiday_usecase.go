package usecase

import (
	"context"
	"time"
)

// HolidayDateLayout is the wire format for holiday dates.
const HolidayDateLayout = "2006-01-02"

// HolidayInput is the request payload for creating or updating a holiday.
type HolidayInput struct {
	Title       *string `json:"title" validate:"required,min=3,max=50"`
	Date        *string `json:"date" validate:"required,datetime=2006-01-02"`
	Description *string `json:"description" validate:"omitempty,max=255"`
}

// ParsedDate returns the validated date as a time value.
func (in *HolidayInput) ParsedDate() (time.Time, error) {
	return time.Parse(HolidayDateLayout, *in.Date)
}

// HolidayView is the external read projection of a holiday.
type HolidayView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// HolidayUsecase defines the holiday management operations. Update and
// Delete return the target's title for the confirmation message.
type HolidayUsecase interface {
	List(ctx context.Context, input ListInput) (*Page[HolidayView], error)
	Create(ctx context.Context, input *HolidayInput) error
	Get(ctx context.Context, id uint) (*HolidayView, error)
	Update(ctx context.Context, id uint, input *HolidayInput) (string, error)
	Delete(ctx context.Context, id uint) (string, error)
}
