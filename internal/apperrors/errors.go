package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-pg/pg/v10"
)

var (
	ErrUnauthenticated      = errors.New("unauthenticated")
	ErrForbidden            = errors.New("forbidden")
	ErrEmptyContent         = errors.New("content is empty")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrNotFound             = errors.New("not found")
	ErrConstraintViolation  = errors.New("constraint violation")
	ErrTransportFailure     = errors.New("storage is unreachable")
	ErrConfiguration        = errors.New("configuration error")
	ErrAlreadyPromoted      = errors.New("suggestion is already promoted")
	ErrBelowThreshold       = errors.New("suggestion is below the vote threshold")
)

var classified = []error{
	ErrUnauthenticated,
	ErrForbidden,
	ErrEmptyContent,
	ErrMissingRequiredField,
	ErrInvalidField,
	ErrNotFound,
	ErrConstraintViolation,
	ErrTransportFailure,
	ErrConfiguration,
	ErrAlreadyPromoted,
	ErrBelowThreshold,
}

// MissingField reports which required field was empty.
func MissingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingRequiredField, name)
}

// InvalidField reports a field whose value cannot be accepted.
func InvalidField(name, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidField, name, reason)
}

// IsClassified reports whether err already carries one of the package sentinels.
func IsClassified(err error) bool {
	for _, sentinel := range classified {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// FromStorage maps a go-pg error onto the taxonomy. Errors that are already
// classified and nil are returned unchanged; unknown errors are returned as is.
func FromStorage(err error) error {
	if err == nil || IsClassified(err) {
		return err
	}

	if errors.Is(err, pg.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	var pgErr pg.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, pg.ErrTxDone) {
		return fmt.Errorf("%w: %w", ErrTransportFailure, err)
	}

	return err
}

// HTTPStatus returns the response status for err.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrEmptyContent), errors.Is(err, ErrMissingRequiredField), errors.Is(err, ErrInvalidField):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConstraintViolation), errors.Is(err, ErrAlreadyPromoted), errors.Is(err, ErrBelowThreshold):
		return http.StatusConflict
	case errors.Is(err, ErrTransportFailure):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text shown to callers. Unknown errors get a generic message.
func PublicMessage(err error) string {
	for _, sentinel := range classified {
		if errors.Is(err, sentinel) {
			if sentinel == ErrMissingRequiredField || sentinel == ErrInvalidField || sentinel == ErrEmptyContent {
				return err.Error()
			}
			return sentinel.Error()
		}
	}
	return "internal error"
}
