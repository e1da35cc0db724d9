// Package validator adapts go-playground/validator to echo and renders every
// failure as the field-record shape API consumers already parse: one record
// per field with type, loc, msg, input and an optional ctx.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	domainerrors "lmi/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator wraps go-playground/validator for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator with the custom rules request payloads use.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields under their wire names, not Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Rule order matters: the first failing tag is the one reported.
	must(v.RegisterValidation("phone_length", validatePhoneLength))
	must(v.RegisterValidation("phone_digits", validatePhoneDigits))
	must(v.RegisterValidation("email_address", validateEmailAddress))

	return &CustomValidator{validate: v}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate implements echo.Validator. It returns a *domainerrors.ValidationError
// carrying one record per failing field, ready for the 422 envelope.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.WithStack(err)
	}

	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, translateFieldError(fe))
	}

	return domainerrors.NewValidationError(fields...)
}

func validatePhoneLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) == 10
}

func validatePhoneDigits(fl validator.FieldLevel) bool {
	for _, c := range fl.Field().String() {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

func validateEmailAddress(fl validator.FieldLevel) bool {
	return emailFailureReason(fl.Field().String()) == ""
}

// translateFieldError maps one validator failure onto the wire record.
func translateFieldError(fe validator.FieldError) domainerrors.FieldError {
	loc := []string{"body", fe.Field()}

	switch fe.Tag() {
	case "required":
		return domainerrors.FieldError{
			Type:  "missing",
			Loc:   loc,
			Msg:   "Field required",
			Input: nil,
		}

	case "min":
		length, _ := strconv.Atoi(fe.Param())

		return domainerrors.FieldError{
			Type:  "string_too_short",
			Loc:   loc,
			Msg:   fmt.Sprintf("String should have at least %d characters", length),
			Input: fe.Value(),
			Ctx:   map[string]any{"min_length": length},
		}

	case "max":
		length, _ := strconv.Atoi(fe.Param())

		return domainerrors.FieldError{
			Type:  "string_too_long",
			Loc:   loc,
			Msg:   fmt.Sprintf("String should have at most %d characters", length),
			Input: fe.Value(),
			Ctx:   map[string]any{"max_length": length},
		}

	case "phone_length":
		return valueError(loc, "Phone number must be exactly 10 digits long", fe.Value())

	case "phone_digits":
		return valueError(loc, "Phone number must contain only digits", fe.Value())

	case "datetime":
		return domainerrors.FieldError{
			Type:  "date_parsing",
			Loc:   loc,
			Msg:   "Input should be a valid date in the format YYYY-MM-DD",
			Input: fe.Value(),
		}

	case "email_address":
		value, _ := fe.Value().(string)
		reason := emailFailureReason(value)

		return domainerrors.FieldError{
			Type:  "value_error",
			Loc:   loc,
			Msg:   "value is not a valid email address: " + reason,
			Input: fe.Value(),
			Ctx:   map[string]any{"reason": reason},
		}

	default:
		return domainerrors.FieldError{
			Type:  fe.Tag(),
			Loc:   loc,
			Msg:   fmt.Sprintf("Input failed %s validation", fe.Tag()),
			Input: fe.Value(),
		}
	}
}

// valueError renders a custom-rule failure the way model validators report
// them: "Value error, <reason>" with the reason repeated under ctx.
func valueError(loc []string, reason string, input any) domainerrors.FieldError {
	return domainerrors.FieldError{
		Type:  "value_error",
		Loc:   loc,
		Msg:   "Value error, " + reason,
		Input: input,
		Ctx:   map[string]any{"error": reason},
	}
}
