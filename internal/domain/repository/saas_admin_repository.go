// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"lmi/internal/domain/entity"
)

// ErrSaaSAdminNotFound is returned when no live SAAS admin matches the query.
var ErrSaaSAdminNotFound = errors.New("saas admin not found")

// SortOrder is the direction applied to a list query's sort key.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListQuery carries pre-validated pagination and ordering parameters. SortBy
// is a column name already checked against the resource's allow-list; the
// repository appends the primary key as a secondary sort so page boundaries
// stay stable when sort values collide.
type ListQuery struct {
	SortBy string
	Order  SortOrder
	Page   int
	Size   int
}

// Offset returns the row offset for the requested page.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Size
}

// SaaSAdminUpdate is the full set of caller-writable fields, applied as one
// bulk mutation. Identity and system-owned fields are not part of it.
type SaaSAdminUpdate struct {
	Username    string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
}

// SaaSAdminRepository defines persistence operations for SAAS admin accounts.
// All reads see live (non-deleted) rows only, and list/find projections never
// include the credential column.
type SaaSAdminRepository interface {
	// List returns one page of admins plus the total live count.
	List(ctx context.Context, query ListQuery) ([]entity.SaaSAdmin, int64, error)

	// FindByID retrieves a single admin through the restricted projection.
	FindByID(ctx context.Context, id uint) (*entity.SaaSAdmin, error)

	// FindSummaryByID retrieves just id+username, for existence checks and
	// confirmation messages.
	FindSummaryByID(ctx context.Context, id uint) (*entity.SaaSAdminSummary, error)

	// ExistsByEmail reports whether a live admin owns the email. A non-zero
	// excludeID leaves that row out of the check (update flow).
	ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error)

	// Create persists a new admin. A unique-constraint violation on email is
	// surfaced as a *domainerrors.ConflictError, not a raw store error.
	Create(ctx context.Context, admin *entity.SaaSAdmin) error

	// Update applies the bulk field mutation to an existing admin.
	Update(ctx context.Context, id uint, fields SaaSAdminUpdate) error

	// Delete soft-deletes the admin, removing it from the live set.
	Delete(ctx context.Context, id uint) error
}
