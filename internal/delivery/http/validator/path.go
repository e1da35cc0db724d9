package validator

import (
	"strconv"

	domainerrors "lmi/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// BindPathID parses a numeric path parameter. Non-integer values produce the
// same record shape a bad query integer would.
func BindPathID(c echo.Context, name string) (uint, error) {
	raw := c.Param(name)

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, domainerrors.NewValidationError(domainerrors.FieldError{
			Type:  "int_parsing",
			Loc:   []string{"path", name},
			Msg:   "Input should be a valid integer, unable to parse string as an integer",
			Input: raw,
		})
	}

	return uint(value), nil
}
