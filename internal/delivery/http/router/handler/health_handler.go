package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthStatus is the health check payload.
type HealthStatus struct {
	Status bool `json:"status"`
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthStatus{Status: true})
}
