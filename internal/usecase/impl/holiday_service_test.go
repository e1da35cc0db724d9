package impl

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"lmi/internal/domain/entity"
	domainerrors "lmi/internal/domain/errors"
	"lmi/internal/domain/repository"
	"lmi/internal/errors"
	mockRepo "lmi/internal/mocks/repository"
	"lmi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type holidayServiceFixtures struct {
	service     usecase.HolidayUsecase
	holidayRepo *mockRepo.MockHolidayRepository
	txManager   *mockRepo.MockTransactionManager
}

func createTestHolidayService(t *testing.T) holidayServiceFixtures {
	t.Helper()

	holidayRepo := new(mockRepo.MockHolidayRepository)
	txManager := &mockRepo.MockTransactionManager{
		Factory: &mockRepo.MockRepositoryFactory{HolidayRepo: holidayRepo},
	}

	svc := NewHolidayService(HolidayServiceParams{
		TxManager:   txManager,
		HolidayRepo: holidayRepo,
		Logger:      slog.Default(),
	})

	return holidayServiceFixtures{
		service:     svc,
		holidayRepo: holidayRepo,
		txManager:   txManager,
	}
}

func validHolidayInput() *usecase.HolidayInput {
	title := "New Year"
	date := "2026-01-01"
	description := "First day of the year"

	return &usecase.HolidayInput{
		Title:       &title,
		Date:        &date,
		Description: &description,
	}
}

func TestHolidayService_List(t *testing.T) {
	fx := createTestHolidayService(t)
	ctx := context.Background()

	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	holidays := []entity.Holiday{
		{ID: 1, Title: "New Year", Date: date},
	}

	fx.holidayRepo.On("List", ctx, repository.ListQuery{
		SortBy: "date",
		Order:  repository.SortAsc,
		Page:   1,
		Size:   10,
	}).Return(holidays, int64(1), nil)

	page, err := fx.service.List(ctx, usecase.ListInput{SortBy: "date", Order: "asc", Page: 1, Size: 10})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "New Year", page.Items[0].Title)
	assert.Equal(t, "2026-01-01", page.Items[0].Date)
	assert.Equal(t, 1, page.Pages)
}

func TestHolidayService_Create(t *testing.T) {
	fx := createTestHolidayService(t)
	ctx := context.Background()

	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	fx.holidayRepo.On("ExistsByTitleDate", ctx, "New Year", date, uint(0)).Return(false, nil)
	fx.holidayRepo.On("Create", ctx, mock.AnythingOfType("*entity.Holiday")).
		Run(func(args mock.Arguments) {
			holiday := args.Get(1).(*entity.Holiday)
			assert.Equal(t, "New Year", holiday.Title)
			assert.Equal(t, date, holiday.Date)
			assert.Equal(t, "First day of the year", holiday.Description)
		}).
		Return(nil)

	assert.NoError(t, fx.service.Create(ctx, validHolidayInput()))
}

func TestHolidayService_Create_DuplicateTitleDate(t *testing.T) {
	fx := createTestHolidayService(t)
	ctx := context.Background()

	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	fx.holidayRepo.On("ExistsByTitleDate", ctx, "New Year", date, uint(0)).Return(true, nil)

	err := fx.service.Create(ctx, validHolidayInput())

	var conflict *domainerrors.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "title", conflict.Field)
	assert.Equal(t, "New Year", conflict.Value)

	fx.holidayRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestHolidayService_Get_NotFound(t *testing.T) {
	fx := createTestHolidayService(t)
	ctx := context.Background()

	fx.holidayRepo.On("FindByID", ctx, uint(42)).Return(nil, repository.ErrHolidayNotFound)

	_, err := fx.service.Get(ctx, 42)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "Holiday not found.", appErr.Message())
}

func TestHolidayService_Update(t *testing.T) {
	fx := createTestHolidayService(t)
	ctx := context.Background()

	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fx.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	fx.holidayRepo.On("FindSummaryByID", ctx, uint(3)).
		Return(&entity.HolidaySummary{ID: 3, Title: "Old Title"}, nil)
	fx.holidayRepo.On("ExistsByTitleDate", ctx, "New Year", date, uint(3)).Return(false, nil)
	fx.holidayRepo.On("Update", ctx, uint(3), repository.HolidayUpdate{
		Title:       "New Year",
		Date:        date,
		Description: "First day of the year",
	}).Return(nil)

	title, err := fx.service.Update(ctx, 3, validHolidayInput())
	require.NoError(t, err)
	assert.Equal(t, "Old Title", title)
}

func TestHolidayService_Delete_StoreFailure(t *testing.T) {
	fx := createTestHolidayService(t)
	ctx := context.Background()

	fx.txManager.On("Execute", ctx, mock.Anything).Return(nil)
	fx.holidayRepo.On("FindSummaryByID", ctx, uint(3)).
		Return(&entity.HolidaySummary{ID: 3, Title: "New Year"}, nil)
	fx.holidayRepo.On("Delete", ctx, uint(3)).Return(errors.New("connection reset"))

	_, err := fx.service.Delete(ctx, 3)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Unable to delete Holiday, please try again later.", appErr.Message())
}
