package impl

import (
	"context"
	"log/slog"
	"net/http"

	deliverycontext "lmi/internal/delivery/context"
	"lmi/internal/domain/entity"
	domainerrors "lmi/internal/domain/errors"
	"lmi/internal/domain/repository"
	"lmi/internal/errors"
	"lmi/internal/usecase"

	"go.uber.org/fx"
)

const holidayResource = "Holiday"

var (
	errListHolidays = domainerrors.NewBaseError(http.StatusInternalServerError,
		"HOLIDAY_LIST_FAILED", "Unable to list Holidays, please try again later.")
	errCreateHoliday = domainerrors.NewBaseError(http.StatusInternalServerError,
		"HOLIDAY_CREATE_FAILED", "Unable to create Holiday, please try again later.")
	errGetHoliday = domainerrors.NewBaseError(http.StatusInternalServerError,
		"HOLIDAY_GET_FAILED", "Unable to get details Holiday, please try again later.")
	errUpdateHoliday = domainerrors.NewBaseError(http.StatusInternalServerError,
		"HOLIDAY_UPDATE_FAILED", "Unable to update Holiday, please try again later.")
	errDeleteHoliday = domainerrors.NewBaseError(http.StatusInternalServerError,
		"HOLIDAY_DELETE_FAILED", "Unable to delete Holiday, please try again later.")
)

// holidayService implements the HolidayUsecase interface.
type holidayService struct {
	txManager   repository.TransactionManager
	holidayRepo repository.HolidayRepository
	logger      *slog.Logger
}

// HolidayServiceParams holds dependencies for the service, injected by Fx.
type HolidayServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	HolidayRepo repository.HolidayRepository
	Logger      *slog.Logger
}

// NewHolidayService is the constructor for holidayService.
func NewHolidayService(params HolidayServiceParams) usecase.HolidayUsecase {
	return &holidayService{
		txManager:   params.TxManager,
		holidayRepo: params.HolidayRepo,
		logger:      params.Logger,
	}
}

func (srv *holidayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *holidayService) finalize(ctx context.Context, op string, kind *domainerrors.BaseError, err error, payload any) error {
	var conflict *domainerrors.ConflictError
	if errors.As(err, &conflict) {
		return conflict
	}

	if errors.Is(err, repository.ErrHolidayNotFound) {
		return domainerrors.ErrHolidayNotFound
	}

	srv.log(ctx).Error("Holiday operation failed",
		slog.String("operation", op),
		slog.Any("error", err),
		slog.Any("payload", payload),
	)

	return errors.Join(kind, err)
}

// List returns one page of holidays.
func (srv *holidayService) List(ctx context.Context, input usecase.ListInput) (*usecase.Page[usecase.HolidayView], error) {
	query := repository.ListQuery{
		SortBy: input.SortBy,
		Order:  repository.SortOrder(input.Order),
		Page:   input.Page,
		Size:   input.Size,
	}

	holidays, total, err := srv.holidayRepo.List(ctx, query)
	if err != nil {
		return nil, srv.finalize(ctx, "list", errListHolidays, err, input)
	}

	views := make([]usecase.HolidayView, 0, len(holidays))
	for i := range holidays {
		views = append(views, toHolidayView(&holidays[i]))
	}

	return usecase.NewPage(views, total, input.Page, input.Size), nil
}

// Create records a new holiday. A live holiday with the same title and date
// is a conflict, tagged to the title field.
func (srv *holidayService) Create(ctx context.Context, input *usecase.HolidayInput) error {
	date, err := input.ParsedDate()
	if err != nil {
		return srv.finalize(ctx, "create", errCreateHoliday, err, input)
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		holidayRepo := repoFactory.Holidays()

		taken, err := holidayRepo.ExistsByTitleDate(ctx, *input.Title, date, 0)
		if err != nil {
			return errors.Wrap(err, "failed to check holiday existence")
		}
		if taken {
			return domainerrors.NewConflictError(holidayResource, "title", *input.Title)
		}

		holiday := &entity.Holiday{
			Title: *input.Title,
			Date:  date,
		}
		if input.Description != nil {
			holiday.Description = *input.Description
		}

		return holidayRepo.Create(ctx, holiday)
	})
	if err != nil {
		return srv.finalize(ctx, "create", errCreateHoliday, err, input)
	}

	return nil
}

// Get retrieves one holiday.
func (srv *holidayService) Get(ctx context.Context, id uint) (*usecase.HolidayView, error) {
	holiday, err := srv.holidayRepo.FindByID(ctx, id)
	if err != nil {
		return nil, srv.finalize(ctx, "get", errGetHoliday, err, id)
	}

	view := toHolidayView(holiday)

	return &view, nil
}

// Update applies the full writable field set to one holiday and returns the
// target's title for the confirmation message.
func (srv *holidayService) Update(ctx context.Context, id uint, input *usecase.HolidayInput) (string, error) {
	date, err := input.ParsedDate()
	if err != nil {
		return "", srv.finalize(ctx, "update", errUpdateHoliday, err, input)
	}

	var title string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		holidayRepo := repoFactory.Holidays()

		summary, err := holidayRepo.FindSummaryByID(ctx, id)
		if err != nil {
			return err
		}
		title = summary.Title

		taken, err := holidayRepo.ExistsByTitleDate(ctx, *input.Title, date, id)
		if err != nil {
			return errors.Wrap(err, "failed to check holiday existence")
		}
		if taken {
			return domainerrors.NewConflictError(holidayResource, "title", *input.Title)
		}

		fields := repository.HolidayUpdate{
			Title: *input.Title,
			Date:  date,
		}
		if input.Description != nil {
			fields.Description = *input.Description
		}

		return holidayRepo.Update(ctx, id, fields)
	})
	if err != nil {
		return "", srv.finalize(ctx, "update", errUpdateHoliday, err, input)
	}

	return title, nil
}

// Delete soft-deletes one holiday and returns its title.
func (srv *holidayService) Delete(ctx context.Context, id uint) (string, error) {
	var title string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		holidayRepo := repoFactory.Holidays()

		summary, err := holidayRepo.FindSummaryByID(ctx, id)
		if err != nil {
			return err
		}
		title = summary.Title

		return holidayRepo.Delete(ctx, id)
	})
	if err != nil {
		return "", srv.finalize(ctx, "delete", errDeleteHoliday, err, id)
	}

	return title, nil
}

func toHolidayView(holiday *entity.Holiday) usecase.HolidayView {
	return usecase.HolidayView{
		ID:          holiday.ID,
		Title:       holiday.Title,
		Date:        holiday.Date.Format(usecase.HolidayDateLayout),
		Description: holiday.Description,
		CreatedAt:   holiday.CreatedAt,
	}
}
