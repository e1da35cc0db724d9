package entity

import "time"

// Holiday is a store-wide non-working day shown on billing calendars.
type Holiday struct {
	ID          uint
	Title       string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HolidaySummary is the minimal projection for update/delete confirmations.
type HolidaySummary struct {
	ID    uint
	Title string
}
