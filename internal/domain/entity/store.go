package entity

import "time"

// Store is a laundry outlet operated on the platform. Like the location
// hierarchy, stores are modelled but their endpoints are not wired yet.
type Store struct {
	ID        uint
	Name      string
	Address   string
	CityID    uint
	IsActive  bool
	Contacts  []StoreContactDetail
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreContactDetail is a phone/email contact attached to a store.
type StoreContactDetail struct {
	ID          uint
	StoreID     uint
	Name        string
	Email       string
	PhoneNumber string
	IsPrimary   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
