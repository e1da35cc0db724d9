package validator

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "lmi/internal/domain/errors"
)

var adminSortChoices = []string{"id", "email"}

func listContext(t *testing.T, query url.Values) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins?"+query.Encode(), nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestBindListParams_Defaults(t *testing.T) {
	c := listContext(t, url.Values{"sort_by": {"id"}})

	params, err := BindListParams(c, adminSortChoices)
	require.NoError(t, err)

	assert.Equal(t, "id", params.SortBy)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 10, params.Size)
}

func TestBindListParams_AllProvided(t *testing.T) {
	c := listContext(t, url.Values{
		"sort_by":  {"email"},
		"order_by": {"desc"},
		"page":     {"3"},
		"size":     {"25"},
	})

	params, err := BindListParams(c, adminSortChoices)
	require.NoError(t, err)

	assert.Equal(t, "email", params.SortBy)
	assert.Equal(t, "desc", params.Order)
	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Size)
}

func TestBindListParams_MissingSortBy(t *testing.T) {
	c := listContext(t, url.Values{})

	_, err := BindListParams(c, adminSortChoices)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "missing", verr.Fields[0].Type)
	assert.Equal(t, []string{"query", "sort_by"}, verr.Fields[0].Loc)
	assert.Equal(t, "Field required", verr.Fields[0].Msg)
}

func TestBindListParams_InvalidEnums(t *testing.T) {
	c := listContext(t, url.Values{
		"sort_by":  {"text"},
		"order_by": {"text"},
	})

	_, err := BindListParams(c, adminSortChoices)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 2)

	sortErr := verr.Fields[0]
	assert.Equal(t, "literal_error", sortErr.Type)
	assert.Equal(t, []string{"query", "sort_by"}, sortErr.Loc)
	assert.Equal(t, "Input should be 'id' or 'email'", sortErr.Msg)
	assert.Equal(t, "'id' or 'email'", sortErr.Ctx["expected"])
	assert.Equal(t, "text", sortErr.Input)

	orderErr := verr.Fields[1]
	assert.Equal(t, "literal_error", orderErr.Type)
	assert.Equal(t, "Input should be 'asc' or 'desc'", orderErr.Msg)
	assert.Equal(t, "'asc' or 'desc'", orderErr.Ctx["expected"])
}

func TestBindListParams_PageBelowMinimum(t *testing.T) {
	c := listContext(t, url.Values{
		"sort_by": {"id"},
		"page":    {"0"},
	})

	_, err := BindListParams(c, adminSortChoices)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "greater_than_equal", verr.Fields[0].Type)
	assert.Equal(t, []string{"query", "page"}, verr.Fields[0].Loc)
	assert.Equal(t, "Input should be greater than or equal to 1", verr.Fields[0].Msg)
	assert.Equal(t, 1, verr.Fields[0].Ctx["ge"])
	assert.Equal(t, "0", verr.Fields[0].Input)
}

func TestBindListParams_SizeAboveMaximum(t *testing.T) {
	c := listContext(t, url.Values{
		"sort_by": {"id"},
		"size":    {"101"},
	})

	_, err := BindListParams(c, adminSortChoices)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "less_than_equal", verr.Fields[0].Type)
	assert.Equal(t, "Input should be less than or equal to 100", verr.Fields[0].Msg)
	assert.Equal(t, 100, verr.Fields[0].Ctx["le"])
}

func TestBindListParams_NonIntegerPage(t *testing.T) {
	c := listContext(t, url.Values{
		"sort_by": {"id"},
		"page":    {"abc"},
	})

	_, err := BindListParams(c, adminSortChoices)

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "int_parsing", verr.Fields[0].Type)
	assert.Equal(t,
		"Input should be a valid integer, unable to parse string as an integer",
		verr.Fields[0].Msg)
}

func TestBindPathID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins/7", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("saas_admin_id")
	c.SetParamValues("7")

	id, err := BindPathID(c, "saas_admin_id")
	require.NoError(t, err)
	assert.Equal(t, uint(7), id)
}

func TestBindPathID_NonInteger(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/admin/saas-admins/abc", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("saas_admin_id")
	c.SetParamValues("abc")

	_, err := BindPathID(c, "saas_admin_id")

	var verr *domainerrors.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "int_parsing", verr.Fields[0].Type)
	assert.Equal(t, []string{"path", "saas_admin_id"}, verr.Fields[0].Loc)
}
