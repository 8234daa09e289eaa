package errs

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
)

var (
	ErrAuthRequired     = errors.New("authentication required")
	ErrInvalidRequest   = errors.New("invalid request")
	ErrInvalidState     = errors.New("invalid state")
	ErrNotFound         = errors.New("not found")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrForbidden        = errors.New("forbidden")
)

// Invalid wraps ErrInvalidRequest with the rule that failed.
func Invalid(reason string) error {
	return errors.Wrap(ErrInvalidRequest, reason)
}

func InvalidState(reason string) error {
	return errors.Wrap(ErrInvalidState, reason)
}

func Forbidden(reason string) error {
	return errors.Wrap(ErrForbidden, reason)
}

func NotFound(what string) error {
	return errors.Wrap(ErrNotFound, what)
}

// Unavailable marks a store failure as retryable, keeping the cause for logs.
func Unavailable(cause error) error {
	return &unavailableError{cause: cause}
}

type unavailableError struct {
	cause error
}

func (e *unavailableError) Error() string {
	return ErrStoreUnavailable.Error()
}

func (e *unavailableError) Is(target error) bool {
	return target == ErrStoreUnavailable
}

func (e *unavailableError) Unwrap() error {
	return e.cause
}

// IsTimeout reports whether err came from a deadline or cancelled context.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// IsDomain reports whether err is one of the taxonomy errors other than ErrStoreUnavailable.
func IsDomain(err error) bool {
	for _, target := range []error{ErrAuthRequired, ErrInvalidRequest, ErrInvalidState, ErrNotFound, ErrForbidden} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// HTTPStatus maps the taxonomy to a response code; unknown errors are 500.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

type ErrorResponse struct {
	Message string `json:"message"`
}
