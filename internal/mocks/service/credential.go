// Package service provides testify mocks for the domain service interfaces.
package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmi/internal/domain/service"
)

// MockCredentialGenerator is a mock implementation of service.CredentialGenerator.
type MockCredentialGenerator struct {
	mock.Mock
}

func (m *MockCredentialGenerator) Generate() (string, error) {
	args := m.Called()

	return args.String(0), args.Error(1)
}

// MockCredentialHasher is a mock implementation of service.CredentialHasher.
type MockCredentialHasher struct {
	mock.Mock
}

func (m *MockCredentialHasher) Hash(plain string) (string, error) {
	args := m.Called(plain)

	return args.String(0), args.Error(1)
}

func (m *MockCredentialHasher) Compare(hashed, plain string) error {
	args := m.Called(hashed, plain)

	return args.Error(0)
}

// MockCredentialDispatcher is a mock implementation of service.CredentialDispatcher.
type MockCredentialDispatcher struct {
	mock.Mock
}

func (m *MockCredentialDispatcher) Dispatch(ctx context.Context, notice *service.CredentialNotice) error {
	args := m.Called(ctx, notice)

	return args.Error(0)
}

func (m *MockCredentialDispatcher) Close() error {
	args := m.Called()

	return args.Error(0)
}
