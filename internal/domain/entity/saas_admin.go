// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// SaaSAdmin represents a platform administrator account. The numeric ID is
// assigned by the store on insert and never changes afterwards. Password holds
// the bcrypt hash of the generated credential; the plaintext exists only for
// the moment it is handed to the out-of-band dispatcher and is never part of
// any read projection.
type SaaSAdmin struct {
	ID          uint
	Username    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Password    string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SaaSAdminSummary is the minimal projection used by update/delete flows:
// just enough to confirm existence and build the confirmation message.
type SaaSAdminSummary struct {
	ID       uint
	Username string
}
