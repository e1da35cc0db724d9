// Package repository provides testify mocks for the domain repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmi/internal/domain/entity"
	"lmi/internal/domain/repository"
)

// MockSaaSAdminRepository is a mock implementation of repository.SaaSAdminRepository.
type MockSaaSAdminRepository struct {
	mock.Mock
}

func (m *MockSaaSAdminRepository) List(ctx context.Context, query repository.ListQuery) ([]entity.SaaSAdmin, int64, error) {
	args := m.Called(ctx, query)

	var admins []entity.SaaSAdmin
	if v := args.Get(0); v != nil {
		admins = v.([]entity.SaaSAdmin)
	}

	return admins, args.Get(1).(int64), args.Error(2)
}

func (m *MockSaaSAdminRepository) FindByID(ctx context.Context, id uint) (*entity.SaaSAdmin, error) {
	args := m.Called(ctx, id)

	var admin *entity.SaaSAdmin
	if v := args.Get(0); v != nil {
		admin = v.(*entity.SaaSAdmin)
	}

	return admin, args.Error(1)
}

func (m *MockSaaSAdminRepository) FindSummaryByID(ctx context.Context, id uint) (*entity.SaaSAdminSummary, error) {
	args := m.Called(ctx, id)

	var summary *entity.SaaSAdminSummary
	if v := args.Get(0); v != nil {
		summary = v.(*entity.SaaSAdminSummary)
	}

	return summary, args.Error(1)
}

func (m *MockSaaSAdminRepository) ExistsByEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	args := m.Called(ctx, email, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *MockSaaSAdminRepository) Create(ctx context.Context, admin *entity.SaaSAdmin) error {
	args := m.Called(ctx, admin)

	return args.Error(0)
}

func (m *MockSaaSAdminRepository) Update(ctx context.Context, id uint, fields repository.SaaSAdminUpdate) error {
	args := m.Called(ctx, id, fields)

	return args.Error(0)
}

func (m *MockSaaSAdminRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
