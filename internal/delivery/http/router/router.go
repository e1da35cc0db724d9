// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"lmi/internal/delivery/http/docs"
	"lmi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SaaSAdminHandler *handler.SaaSAdminHandler
	HolidayHandler   *handler.HolidayHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	saasAdminHandler *handler.SaaSAdminHandler
	holidayHandler   *handler.HolidayHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		saasAdminHandler: params.SaaSAdminHandler,
		holidayHandler:   params.HolidayHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health-check", handler.HealthCheck)

	// Merged OpenAPI document and its viewer
	docs.Register(e)

	adminGroup := e.Group("/admin")
	{
		saasAdmins := adminGroup.Group("/saas-admins")
		saasAdmins.GET("", r.saasAdminHandler.List)
		saasAdmins.POST("", r.saasAdminHandler.Create)
		saasAdmins.GET("/:saas_admin_id", r.saasAdminHandler.Get)
		saasAdmins.PUT("/:saas_admin_id", r.saasAdminHandler.Update)
		saasAdmins.DELETE("/:saas_admin_id", r.saasAdminHandler.Delete)

		holidays := adminGroup.Group("/holidays")
		holidays.GET("", r.holidayHandler.List)
		holidays.POST("", r.holidayHandler.Create)
		holidays.GET("/:holiday_id", r.holidayHandler.Get)
		holidays.PUT("/:holiday_id", r.holidayHandler.Update)
		holidays.DELETE("/:holiday_id", r.holidayHandler.Delete)
	}
}
