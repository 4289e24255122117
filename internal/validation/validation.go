// Package validation checks request and parameter structs against their
// `validate` tags and converts failures into apperror.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report wire names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fieldName(f.Name)
		}

		return name
	})

	return v
}

// Struct validates s. A nil return means every rule passed.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, err)
	}

	return &apperror.ValidationError{Fields: formatErrors(verrs)}
}

func formatErrors(errs validator.ValidationErrors) []apperror.FieldError {
	details := make([]apperror.FieldError, 0, len(errs))

	for _, err := range errs {
		var message string

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("field '%s' is required", err.Field())
		case "email":
			message = fmt.Sprintf("field '%s' must be a valid email address", err.Field())
		case "oneof":
			message = fmt.Sprintf("field '%s' must be one of [%s]", err.Field(), err.Param())
		case "datetime":
			message = fmt.Sprintf("field '%s' must be a date formatted as YYYY-MM-DD", err.Field())
		case "gte":
			message = fmt.Sprintf("field '%s' must be at least %s", err.Field(), err.Param())
		case "gt":
			message = fmt.Sprintf("field '%s' must be greater than %s", err.Field(), err.Param())
		case "gtefield":
			message = fmt.Sprintf("field '%s' must not be before '%s'", err.Field(), fieldName(err.Param()))
		case "uuid", "uuid4":
			message = fmt.Sprintf("field '%s' must be a UUID", err.Field())
		case "url":
			message = fmt.Sprintf("field '%s' must be a valid URL", err.Field())
		default:
			message = fmt.Sprintf("field '%s' failed on the '%s' rule", err.Field(), err.Tag())
		}

		details = append(details, apperror.FieldError{
			Field:   err.Field(),
			Message: message,
			Code:    "validation_" + err.Tag(),
		})
	}

	return details
}

// fieldName turns a Go field name such as LeaseStart or ApartmentID into
// lease_start or apartment_id.
func fieldName(goName string) string {
	var sb strings.Builder

	prevLower := false

	for _, r := range goName {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				sb.WriteByte('_')
			}

			r += 'a' - 'A'
		}

		prevLower = !upper
		sb.WriteRune(r)
	}

	return sb.String()
}
