package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"lmi/internal/delivery/http/response"
	"lmi/internal/delivery/http/validator"
	"lmi/internal/usecase"

	"github.com/labstack/echo/v4"
)

var holidaySortChoices = []string{"id", "date"}

// HolidayHandler holds dependencies for the holiday endpoints.
type HolidayHandler struct {
	uc     usecase.HolidayUsecase
	logger *slog.Logger
}

// NewHolidayHandler is the constructor for HolidayHandler, injected by Fx.
func NewHolidayHandler(uc usecase.HolidayUsecase, logger *slog.Logger) *HolidayHandler {
	return &HolidayHandler{
		uc:     uc,
		logger: logger,
	}
}

// List handles GET /admin/holidays.
func (h *HolidayHandler) List(c echo.Context) error {
	params, err := validator.BindListParams(c, holidaySortChoices)
	if err != nil {
		return err
	}

	page, err := h.uc.List(c.Request().Context(), usecase.ListInput{
		SortBy: params.SortBy,
		Order:  params.Order,
		Page:   params.Page,
		Size:   params.Size,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, page)
}

// Create handles POST /admin/holidays.
func (h *HolidayHandler) Create(c echo.Context) error {
	var input usecase.HolidayInput
	if err := c.Bind(&input); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Create(c.Request().Context(), &input); err != nil {
		return err
	}

	return response.Created(c, "Holiday has been created successfully.")
}

// Get handles GET /admin/holidays/:holiday_id.
func (h *HolidayHandler) Get(c echo.Context) error {
	id, err := validator.BindPathID(c, "holiday_id")
	if err != nil {
		return err
	}

	view, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Update handles PUT /admin/holidays/:holiday_id.
func (h *HolidayHandler) Update(c echo.Context) error {
	id, err := validator.BindPathID(c, "holiday_id")
	if err != nil {
		return err
	}

	var input usecase.HolidayInput
	if err := c.Bind(&input); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	title, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return err
	}

	return response.OK(c, fmt.Sprintf("%s Holiday has been updated successfully.", title))
}

// Delete handles DELETE /admin/holidays/:holiday_id.
func (h *HolidayHandler) Delete(c echo.Context) error {
	id, err := validator.BindPathID(c, "holiday_id")
	if err != nil {
		return err
	}

	title, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, fmt.Sprintf("%s Holiday has been deleted successfully.", title))
}
