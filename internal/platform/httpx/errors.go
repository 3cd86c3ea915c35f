package httpx

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for the domain layer. Services wrap these with context;
// handlers map them to status codes through RespondError.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("duplicate entry")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)

// RespondError maps a domain error to the uniform JSON error payload.
// Unrecognized errors become an opaque 500.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict):
		Error(w, http.StatusConflict, err.Error())
	case errors.Is(err, ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized):
		Error(w, http.StatusUnauthorized, err.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}

// FirstValidationMessage flattens a validator error to its first failing
// field so clients see a single message per the API contract.
func FirstValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Error()
	}
	return err.Error()
}
