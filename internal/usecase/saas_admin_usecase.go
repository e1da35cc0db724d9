// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"
)

// --- Input DTOs ---

// SaaSAdminInput is the request payload for creating or updating an admin.
// Fields are pointers so an absent field and an empty one validate
// differently. The password never appears here; it is generated server-side.
type SaaSAdminInput struct {
	Username    *string `json:"username" validate:"required,min=3,max=50"`
	FirstName   *string `json:"first_name" validate:"required,min=3,max=50"`
	LastName    *string `json:"last_name" validate:"required,min=3,max=50"`
	Email       *string `json:"email" validate:"required,email_address"`
	PhoneNumber *string `json:"phone_number" validate:"required,phone_length,phone_digits"`
}

// --- Output DTOs ---

// SaaSAdminView is the external read projection of an admin. Username and
// password are deliberately absent.
type SaaSAdminView struct {
	ID          uint      `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// SaaSAdminUsecase defines the admin management operations the delivery
// layer depends on. Update and Delete return the target's username for the
// confirmation message.
type SaaSAdminUsecase interface {
	List(ctx context.Context, input ListInput) (*Page[SaaSAdminView], error)
	Create(ctx context.Context, input *SaaSAdminInput) error
	Get(ctx context.Context, id uint) (*SaaSAdminView, error)
	Update(ctx context.Context, id uint, input *SaaSAdminInput) (string, error)
	Delete(ctx context.Context, id uint) (string, error)
}
