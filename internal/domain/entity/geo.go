package entity

import "time"

// Country, State and City form the location hierarchy stores are registered
// under. They are part of the admin data model; dedicated endpoints for them
// are not wired yet.

type Country struct {
	ID        uint
	Name      string
	ISOCode   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type State struct {
	ID        uint
	Name      string
	CountryID uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

type City struct {
	ID        uint
	Name      string
	StateID   uint
	CreatedAt time.Time
	UpdatedAt time.Time
}
