// Package respond holds the JSON encoding, request decoding and error
// mapping shared by the HTTP handlers.
package respond

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/rentroll/internal/apperror"
	"github.com/MrJamesThe3rd/rentroll/internal/money"
	"github.com/MrJamesThe3rd/rentroll/internal/validation"
)

// ErrMalformedBody is returned by Decode when the body is not JSON at all.
var ErrMalformedBody = errors.New("malformed JSON body")

type errorResponse struct {
	Detail string                `json:"detail"`
	Errors []apperror.FieldError `json:"errors,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// Deleted acknowledges a successful delete of the named entity.
func Deleted(w http.ResponseWriter, entity string) {
	JSON(w, http.StatusOK, messageResponse{Message: entity + " deleted successfully"})
}

// Error maps err onto an HTTP status and writes it as {"detail": ...}.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var verr *apperror.ValidationError

	switch {
	case errors.Is(err, ErrMalformedBody):
		JSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	case errors.As(err, &verr):
		JSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: verr.Error(), Errors: verr.Fields})
	case errors.Is(err, apperror.ErrInvalidArgument):
		JSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
	case errors.Is(err, apperror.ErrNotFound):
		JSON(w, http.StatusNotFound, errorResponse{Detail: err.Error()})
	case errors.Is(err, apperror.ErrStoreUnavailable):
		slog.Error("store unavailable", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, http.StatusServiceUnavailable, errorResponse{Detail: "store unavailable"})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		JSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

// Decode reads a JSON body into v and validates it.
func Decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		var (
			syntaxErr *json.SyntaxError
			typeErr   *json.UnmarshalTypeError
		)

		switch {
		case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
			return ErrMalformedBody
		case errors.As(err, &typeErr):
			return apperror.Invalid(typeErr.Field, "validation_type",
				fmt.Sprintf("field '%s' must be a %s", typeErr.Field, typeErr.Type))
		default:
			return fmt.Errorf("%w: %w", apperror.ErrInvalidArgument, err)
		}
	}

	return validation.Struct(v)
}

// ID parses the {id} path parameter.
func ID(r *http.Request) (uuid.UUID, error) {
	raw := chi.URLParam(r, "id")

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.Invalid("id", "validation_uuid", fmt.Sprintf("'%s' is not a valid id", raw))
	}

	return id, nil
}

// Date parses a YYYY-MM-DD value into a UTC midnight time.
func Date(field, s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, apperror.Invalid(field, "validation_datetime",
			fmt.Sprintf("field '%s' must be a date formatted as YYYY-MM-DD", field))
	}

	return t, nil
}

// Cents converts a wire amount to cents, rejecting values that overflow.
func Cents(field string, d decimal.Decimal) (int64, error) {
	cents, err := money.ToCents(d)
	if err != nil {
		return 0, apperror.Invalid(field, "validation_range",
			fmt.Sprintf("field '%s' is out of range", field))
	}

	return cents, nil
}

// OptionalDate is Date for values that may be absent.
func OptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	t, err := Date(field, *s)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// UUID parses a UUID body or query value.
func UUID(field, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperror.Invalid(field, "validation_uuid", fmt.Sprintf("field '%s' must be a UUID", field))
	}

	return id, nil
}

// OptionalID is UUID for values that may be absent.
func OptionalID(field string, s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}

	id, err := UUID(field, *s)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// FormatOptionalDate is FormatDate for nullable dates.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	return new(FormatDate(*t))
}
