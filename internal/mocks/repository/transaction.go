package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmi/internal/domain/repository"
)

// MockRepositoryFactory hands out the repositories a test wires in.
type MockRepositoryFactory struct {
	SaaSAdminRepo repository.SaaSAdminRepository
	HolidayRepo   repository.HolidayRepository
}

func (f *MockRepositoryFactory) SaaSAdmins() repository.SaaSAdminRepository {
	return f.SaaSAdminRepo
}

func (f *MockRepositoryFactory) Holidays() repository.HolidayRepository {
	return f.HolidayRepo
}

// MockTransactionManager runs the callback against the configured factory.
// When the expectation returns a non-nil error the callback is skipped,
// simulating a transaction that failed to begin.
type MockTransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}

	return fn(m.Factory)
}
