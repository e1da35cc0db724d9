package validator

import (
	"fmt"
	"strconv"
	"strings"

	"lmi/internal/domain/constants"
	domainerrors "lmi/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// ListParams is the validated query surface of every list endpoint.
type ListParams struct {
	SortBy string
	Order  string
	Page   int
	Size   int
}

const (
	defaultPage = 1
	defaultSize = 10
)

var orderChoices = []string{"asc", "desc"}

// BindListParams validates the list query parameters against a per-resource
// sort allow-list. All failing parameters are reported together; the rules
// (enum membership, lower/upper bounds) live here as data, not as scattered
// conditionals.
func BindListParams(c echo.Context, sortChoices []string) (*ListParams, error) {
	params := &ListParams{
		Order: "asc",
		Page:  defaultPage,
		Size:  defaultSize,
	}

	var fields []domainerrors.FieldError

	if fe := bindChoice(c, "sort_by", sortChoices, true, &params.SortBy); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := bindChoice(c, "order_by", orderChoices, false, &params.Order); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := bindBoundedInt(c, "page", constants.MinPage, 0, &params.Page); fe != nil {
		fields = append(fields, *fe)
	}
	if fe := bindBoundedInt(c, "size", constants.MinPageSize, constants.MaxPageSize, &params.Size); fe != nil {
		fields = append(fields, *fe)
	}

	if len(fields) > 0 {
		return nil, domainerrors.NewValidationError(fields...)
	}

	return params, nil
}

// bindChoice validates an enum-valued parameter. Required parameters fail
// with a missing record when absent; optional ones keep their default.
func bindChoice(c echo.Context, name string, choices []string, required bool, out *string) *domainerrors.FieldError {
	raw := c.QueryParam(name)
	if raw == "" {
		if required {
			return &domainerrors.FieldError{
				Type:  "missing",
				Loc:   []string{"query", name},
				Msg:   "Field required",
				Input: nil,
			}
		}

		return nil
	}

	for _, choice := range choices {
		if raw == choice {
			*out = raw

			return nil
		}
	}

	expected := quoteChoices(choices)

	return &domainerrors.FieldError{
		Type:  "literal_error",
		Loc:   []string{"query", name},
		Msg:   "Input should be " + expected,
		Input: raw,
		Ctx:   map[string]any{"expected": expected},
	}
}

// bindBoundedInt validates an integer parameter with an inclusive lower bound
// and an optional upper bound (max == 0 means unbounded).
func bindBoundedInt(c echo.Context, name string, min, max int, out *int) *domainerrors.FieldError {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return &domainerrors.FieldError{
			Type:  "int_parsing",
			Loc:   []string{"query", name},
			Msg:   "Input should be a valid integer, unable to parse string as an integer",
			Input: raw,
		}
	}

	if value < min {
		return &domainerrors.FieldError{
			Type:  "greater_than_equal",
			Loc:   []string{"query", name},
			Msg:   fmt.Sprintf("Input should be greater than or equal to %d", min),
			Input: raw,
			Ctx:   map[string]any{"ge": min},
		}
	}

	if max > 0 && value > max {
		return &domainerrors.FieldError{
			Type:  "less_than_equal",
			Loc:   []string{"query", name},
			Msg:   fmt.Sprintf("Input should be less than or equal to %d", max),
			Input: raw,
			Ctx:   map[string]any{"le": max},
		}
	}

	*out = value

	return nil
}

// quoteChoices renders ["id","email"] as "'id' or 'email'".
func quoteChoices(choices []string) string {
	quoted := make([]string, 0, len(choices))
	for _, choice := range choices {
		quoted = append(quoted, "'"+choice+"'")
	}

	return strings.Join(quoted, " or ")
}
