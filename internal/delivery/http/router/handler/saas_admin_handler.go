// Package handler contains the HTTP handlers for the admin API.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"lmi/internal/delivery/http/response"
	"lmi/internal/delivery/http/validator"
	domainerrors "lmi/internal/domain/errors"
	"lmi/internal/usecase"

	"github.com/labstack/echo/v4"
)

var saasAdminSortChoices = []string{"id", "email"}

// SaaSAdminHandler holds dependencies for the SAAS admin endpoints.
type SaaSAdminHandler struct {
	uc     usecase.SaaSAdminUsecase
	logger *slog.Logger
}

// NewSaaSAdminHandler is the constructor for SaaSAdminHandler, injected by Fx.
func NewSaaSAdminHandler(uc usecase.SaaSAdminUsecase, logger *slog.Logger) *SaaSAdminHandler {
	return &SaaSAdminHandler{
		uc:     uc,
		logger: logger,
	}
}

// bindError renders an unreadable request body as a field record, keeping
// every 422 the same shape.
func bindError(err error) error {
	return domainerrors.NewValidationError(domainerrors.FieldError{
		Type:  "json_invalid",
		Loc:   []string{"body"},
		Msg:   "JSON decode error",
		Input: nil,
		Ctx:   map[string]any{"error": err.Error()},
	})
}

// List handles GET /admin/saas-admins.
func (h *SaaSAdminHandler) List(c echo.Context) error {
	params, err := validator.BindListParams(c, saasAdminSortChoices)
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

// Create handles POST /admin/saas-admins.
func (h *SaaSAdminHandler) Create(c echo.Context) error {
	var input usecase.SaaSAdminInput
	if err := c.Bind(&input); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.uc.Create(c.Request().Context(), &input); err != nil {
		return err
	}

	return response.Created(c, "SAAS Admin has been created successfully.")
}

// Get handles GET /admin/saas-admins/:saas_admin_id.
func (h *SaaSAdminHandler) Get(c echo.Context) error {
	id, err := validator.BindPathID(c, "saas_admin_id")
	if err != nil {
		return err
	}

	view, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Update handles PUT /admin/saas-admins/:saas_admin_id.
func (h *SaaSAdminHandler) Update(c echo.Context) error {
	id, err := validator.BindPathID(c, "saas_admin_id")
	if err != nil {
		return err
	}

	var input usecase.SaaSAdminInput
	if err := c.Bind(&input); err != nil {
		return bindError(err)
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	username, err := h.uc.Update(c.Request().Context(), id, &input)
	if err != nil {
		return err
	}

	return response.OK(c, fmt.Sprintf("%s SAAS Admin has been updated successfully.", username))
}

// Delete handles DELETE /admin/saas-admins/:saas_admin_id.
func (h *SaaSAdminHandler) Delete(c echo.Context) error {
	id, err := validator.BindPathID(c, "saas_admin_id")
	if err != nil {
		return err
	}

	username, err := h.uc.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, fmt.Sprintf("%s SAAS Admin has been deleted successfully.", username))
}
