package helpers

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidRange       = errors.New("value out of range")
	ErrNotFound           = errors.New("not found")
	ErrUnauthenticated    = errors.New("Access denied. No token provided.")
	ErrInvalidToken       = errors.New("Invalid or expired token.")
	ErrForbidden          = errors.New("Access denied. You do not have the required permissions.")
	ErrDuplicateUsername  = errors.New("Username already exists.")
	ErrInvalidCredentials = errors.New("Invalid username or password.")
	ErrStore              = errors.New("store failure")
)

// Error carries a client-facing message for one of the sentinel kinds above.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// StatusOf maps an error to the HTTP status it is reported with.
// Unknown errors are treated as store failures.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrDuplicateUsername),
		errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
