package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergedSchema(t *testing.T) {
	raw, err := MergedSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))

	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)

	// Root surface and admin sub-application end up in one document.
	assert.Contains(t, paths, "/health-check")
	assert.Contains(t, paths, "/admin/saas-admins")
	assert.Contains(t, paths, "/admin/saas-admins/{saas_admin_id}")
	assert.Contains(t, paths, "/admin/holidays")
	assert.Contains(t, paths, "/admin/holidays/{holiday_id}")

	components := doc["components"].(map[string]any)
	schemas := components["schemas"].(map[string]any)
	assert.Contains(t, schemas, "SAASAdminRequest")
	assert.Contains(t, schemas, "HTTPValidationError")
}

func TestRegister(t *testing.T) {
	e := echo.New()
	Register(e)

	req := httptest.NewRequest(http.MethodGet, "/openapi.json", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

	req = httptest.NewRequest(http.MethodGet, "/docs", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
	assert.Contains(t, rec.Body.String(), "/openapi.json")
}
