package repository

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"lmi/internal/domain/entity"
	"lmi/internal/domain/repository"
)

// MockHolidayRepository is a mock implementation of repository.HolidayRepository.
type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) List(ctx context.Context, query repository.ListQuery) ([]entity.Holiday, int64, error) {
	args := m.Called(ctx, query)

	var holidays []entity.Holiday
	if v := args.Get(0); v != nil {
		holidays = v.([]entity.Holiday)
	}

	return holidays, args.Get(1).(int64), args.Error(2)
}

func (m *MockHolidayRepository) FindByID(ctx context.Context, id uint) (*entity.Holiday, error) {
	args := m.Called(ctx, id)

	var holiday *entity.Holiday
	if v := args.Get(0); v != nil {
		holiday = v.(*entity.Holiday)
	}

	return holiday, args.Error(1)
}

func (m *MockHolidayRepository) FindSummaryByID(ctx context.Context, id uint) (*entity.HolidaySummary, error) {
	args := m.Called(ctx, id)

	var summary *entity.HolidaySummary
	if v := args.Get(0); v != nil {
		summary = v.(*entity.HolidaySummary)
	}

	return summary, args.Error(1)
}

func (m *MockHolidayRepository) ExistsByTitleDate(ctx context.Context, title string, date time.Time, excludeID uint) (bool, error) {
	args := m.Called(ctx, title, date, excludeID)

	return args.Bool(0), args.Error(1)
}

func (m *MockHolidayRepository) Create(ctx context.Context, holiday *entity.Holiday) error {
	args := m.Called(ctx, holiday)

	return args.Error(0)
}

func (m *MockHolidayRepository) Update(ctx context.Context, id uint, fields repository.HolidayUpdate) error {
	args := m.Called(ctx, id, fields)

	return args.Error(0)
}

func (m *MockHolidayRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}
