package api

import (
	"errors"
	"net/http"

	"github.com/taskboard/api/internal/domain"
	"github.com/taskboard/api/internal/query"
	"github.com/taskboard/api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types or messages to clients.
//
// Client mistakes map to 4xx: validation and malformed-query errors are
// 400, duplicate email is 409, missing documents are 404. Everything
// unrecognized is treated as a store or transport failure and maps to 500.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrMissingDeadline),
		errors.Is(err, store.ErrInvalidEntity),
		isQueryParseError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred."
	}

	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return "Error: User was not found."

	case errors.Is(err, store.ErrTaskNotFound):
		return "Error: Task was not found."

	case errors.Is(err, store.ErrEmailExists):
		return "Error: This email already exists."

	case isQueryParseError(err):
		return "Error: Invalid query parameters: " + err.Error()

	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrEmptyEmail),
		errors.Is(err, domain.ErrMissingDeadline):
		return "Validation Error: " + err.Error()

	default:
		return "An unexpected error occurred."
	}
}

// isQueryParseError reports whether the error came from the query
// parameter translator. All translator errors are client mistakes.
func isQueryParseError(err error) bool {
	return errors.Is(err, query.ErrMalformedFilter) ||
		errors.Is(err, query.ErrMalformedSort) ||
		errors.Is(err, query.ErrMalformedProjection) ||
		errors.Is(err, query.ErrInvalidSkip) ||
		errors.Is(err, query.ErrInvalidLimit) ||
		errors.Is(err, query.ErrInvalidCount)
}
