// Package usecase provides testify mocks for the usecase interfaces.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"lmi/internal/usecase"
)

// MockSaaSAdminUsecase is a mock implementation of usecase.SaaSAdminUsecase.
type MockSaaSAdminUsecase struct {
	mock.Mock
}

func (m *MockSaaSAdminUsecase) List(ctx context.Context, input usecase.ListInput) (*usecase.Page[usecase.SaaSAdminView], error) {
	args := m.Called(ctx, input)

	var page *usecase.Page[usecase.SaaSAdminView]
	if v := args.Get(0); v != nil {
		page = v.(*usecase.Page[usecase.SaaSAdminView])
	}

	return page, args.Error(1)
}

func (m *MockSaaSAdminUsecase) Create(ctx context.Context, input *usecase.SaaSAdminInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockSaaSAdminUsecase) Get(ctx context.Context, id uint) (*usecase.SaaSAdminView, error) {
	args := m.Called(ctx, id)

	var view *usecase.SaaSAdminView
	if v := args.Get(0); v != nil {
		view = v.(*usecase.SaaSAdminView)
	}

	return view, args.Error(1)
}

func (m *MockSaaSAdminUsecase) Update(ctx context.Context, id uint, input *usecase.SaaSAdminInput) (string, error) {
	args := m.Called(ctx, id, input)

	return args.String(0), args.Error(1)
}

func (m *MockSaaSAdminUsecase) Delete(ctx context.Context, id uint) (string, error) {
	args := m.Called(ctx, id)

	return args.String(0), args.Error(1)
}

// MockHolidayUsecase is a mock implementation of usecase.HolidayUsecase.
type MockHolidayUsecase struct {
	mock.Mock
}

func (m *MockHolidayUsecase) List(ctx context.Context, input usecase.ListInput) (*usecase.Page[usecase.HolidayView], error) {
	args := m.Called(ctx, input)

	var page *usecase.Page[usecase.HolidayView]
	if v := args.Get(0); v != nil {
		page = v.(*usecase.Page[usecase.HolidayView])
	}

	return page, args.Error(1)
}

func (m *MockHolidayUsecase) Create(ctx context.Context, input *usecase.HolidayInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *MockHolidayUsecase) Get(ctx context.Context, id uint) (*usecase.HolidayView, error) {
	args := m.Called(ctx, id)

	var view *usecase.HolidayView
	if v := args.Get(0); v != nil {
		view = v.(*usecase.HolidayView)
	}

	return view, args.Error(1)
}

func (m *MockHolidayUsecase) Update(ctx context.Context, id uint, input *usecase.HolidayInput) (string, error) {
	args := m.Called(ctx, id, input)

	return args.String(0), args.Error(1)
}

func (m *MockHolidayUsecase) Delete(ctx context.Context, id uint) (string, error) {
	args := m.Called(ctx, id)

	return args.String(0), args.Error(1)
}
