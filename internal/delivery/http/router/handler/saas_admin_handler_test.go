package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpmiddleware "lmi/internal/delivery/http/middleware"
	"lmi/internal/delivery/http/validator"
	domainerrors "lmi/internal/domain/errors"
	mockUsecase "lmi/internal/mocks/usecase"
	"lmi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdminTestServer(uc usecase.SaaSAdminUsecase) *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = httpmiddleware.NewErrorMiddleware(slog.Default()).HandleHTTPError

	h := NewSaaSAdminHandler(uc, slog.Default())
	e.GET("/admin/saas-admins", h.List)
	e.POST("/admin/saas-admins", h.Create)
	e.GET("/admin/saas-admins/:saas_admin_id", h.Get)
	e.PUT("/admin/saas-admins/:saas_admin_id", h.Update)
	e.DELETE("/admin/saas-admins/:saas_admin_id", h.Delete)

	return e
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func detailRecords(t *testing.T, rec *httptest.ResponseRecorder) []map[string]any {
	t.Helper()

	body := decodeBody(t, rec)
	raw, ok := body["detail"].([]any)
	require.True(t, ok, "expected detail array, got %v", body["detail"])

	records := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		records = append(records, r.(map[string]any))
	}

	return records
}

const validAdminBody = `{
	"username": "jdoe",
	"first_name": "John",
	"last_name": "Doe",
	"email": "john@example.com",
	"phone_number": "9876543210"
}`

func TestSaaSAdminHandler_List(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	created := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	page := usecase.NewPage([]usecase.SaaSAdminView{
		{ID: 1, FirstName: "John", LastName: "Doe", Email: "john@example.com",
			PhoneNumber: "9876543210", IsActive: true, CreatedAt: created},
	}, 1, 1, 10)

	uc.On("List", mock.Anything, usecase.ListInput{SortBy: "id", Order: "asc", Page: 1, Size: 10}).
		Return(page, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins?sort_by=id", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["total"])
	assert.Equal(t, float64(1), body["pages"])

	items := body["items"].([]any)
	require.Len(t, items, 1)
	item := items[0].(map[string]any)
	assert.Equal(t, "john@example.com", item["email"])

	// The list projection never carries username or password.
	_, hasUsername := item["username"]
	assert.False(t, hasUsername)
	_, hasPassword := item["password"]
	assert.False(t, hasPassword)
}

func TestSaaSAdminHandler_List_PageZero(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins?sort_by=id&page=0", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	records := detailRecords(t, rec)
	require.Len(t, records, 1)
	assert.Equal(t, "greater_than_equal", records[0]["type"])
	assert.Equal(t, []any{"query", "page"}, records[0]["loc"])
	assert.Equal(t, float64(1), records[0]["ctx"].(map[string]any)["ge"])

	uc.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestSaaSAdminHandler_List_InvalidSortBy(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins?sort_by=text", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	records := detailRecords(t, rec)
	require.Len(t, records, 1)
	assert.Equal(t, "literal_error", records[0]["type"])
	assert.Equal(t, "Input should be 'id' or 'email'", records[0]["msg"])
}

func TestSaaSAdminHandler_Create(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	uc.On("Create", mock.Anything, mock.AnythingOfType("*usecase.SaaSAdminInput")).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/saas-admins", strings.NewReader(validAdminBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "SAAS Admin has been created successfully.", decodeBody(t, rec)["detail"])
}

func TestSaaSAdminHandler_Create_ShortPhoneNumber(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	body := strings.Replace(validAdminBody, "9876543210", "123456789", 1)

	req := httptest.NewRequest(http.MethodPost, "/admin/saas-admins", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	records := detailRecords(t, rec)
	require.Len(t, records, 1)
	assert.Equal(t, []any{"body", "phone_number"}, records[0]["loc"])
	assert.Equal(t, "Value error, Phone number must be exactly 10 digits long", records[0]["msg"])

	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaaSAdminHandler_Create_MissingFields(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	req := httptest.NewRequest(http.MethodPost, "/admin/saas-admins", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	records := detailRecords(t, rec)
	require.Len(t, records, 5)
	for _, record := range records {
		assert.Equal(t, "missing", record["type"])
		assert.Equal(t, "Field required", record["msg"])
	}
}

func TestSaaSAdminHandler_Create_DuplicateEmail(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	uc.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.NewConflictError("SAAS Admin", "email", "john@example.com"))

	req := httptest.NewRequest(http.MethodPost, "/admin/saas-admins", strings.NewReader(validAdminBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	records := detailRecords(t, rec)
	require.Len(t, records, 1)
	assert.Equal(t, "value_error", records[0]["type"])
	assert.Equal(t, []any{"body", "email"}, records[0]["loc"])
	assert.Equal(t, "Value error, john@example.com SAAS Admin already exists", records[0]["msg"])
	assert.Equal(t, "john@example.com", records[0]["input"])
}

func TestSaaSAdminHandler_Get(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	uc.On("Get", mock.Anything, uint(7)).Return(&usecase.SaaSAdminView{
		ID: 7, FirstName: "John", LastName: "Doe", Email: "john@example.com",
		PhoneNumber: "9876543210", IsActive: true,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "John", body["first_name"])
}

func TestSaaSAdminHandler_Get_NotFound(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	uc.On("Get", mock.Anything, uint(99)).Return(nil, domainerrors.ErrSaaSAdminNotFound)

	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins/99", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SAAS Admin not found.", decodeBody(t, rec)["detail"])
}

func TestSaaSAdminHandler_Get_NonIntegerID(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	records := detailRecords(t, rec)
	require.Len(t, records, 1)
	assert.Equal(t, "int_parsing", records[0]["type"])
	assert.Equal(t, []any{"path", "saas_admin_id"}, records[0]["loc"])
}

func TestSaaSAdminHandler_Update(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	uc.On("Update", mock.Anything, uint(7), mock.AnythingOfType("*usecase.SaaSAdminInput")).
		Return("jdoe", nil)

	req := httptest.NewRequest(http.MethodPut, "/admin/saas-admins/7", strings.NewReader(validAdminBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jdoe SAAS Admin has been updated successfully.", decodeBody(t, rec)["detail"])
}

func TestSaaSAdminHandler_Delete(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	uc.On("Delete", mock.Anything, uint(7)).Return("jdoe", nil)

	req := httptest.NewRequest(http.MethodDelete, "/admin/saas-admins/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jdoe SAAS Admin has been deleted successfully.", decodeBody(t, rec)["detail"])
}

func TestSaaSAdminHandler_Delete_InternalError(t *testing.T) {
	uc := new(mockUsecase.MockSaaSAdminUsecase)
	e := newAdminTestServer(uc)

	opErr := domainerrors.NewBaseError(http.StatusInternalServerError,
		"SAAS_ADMIN_DELETE_FAILED", "Unable to delete SAAS Admin, please try again later.")
	uc.On("Delete", mock.Anything, uint(7)).Return("", opErr)

	req := httptest.NewRequest(http.MethodDelete, "/admin/saas-admins/7", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Unable to delete SAAS Admin, please try again later.", decodeBody(t, rec)["detail"])
}
