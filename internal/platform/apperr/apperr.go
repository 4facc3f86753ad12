// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for the catalogue API.

It provides a rich error type that bridges the gap between low-level storage
errors and high-level HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code (the error kind) and a client-safe message.
  - Kind: The fixed taxonomy of data-access failures, each mapped 1:1 to an HTTP status.
  - Mapping: Transport-level constructors (Unauthorized, ValidationError, ...) for non-storage failures.

Every error that leaves the service layer is an [AppError] so that API responses stay consistent.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Taxonomy

// Kind is the enumerated tag of a data-access failure.
type Kind string

const (
	KindNoDataFound           Kind = "NO_DATA_FOUND"
	KindUniqueViolation       Kind = "UNIQUE_VIOLATION"
	KindFkViolation           Kind = "FK_VIOLATION"
	KindNotNullViolation      Kind = "NOT_NULL_VIOLATION"
	KindRestrictViolation     Kind = "RESTRICT_VIOLATION"
	KindTooLongString         Kind = "TOO_LONG_STRING"
	KindNumOutOfRange         Kind = "NUM_OUT_OF_RANGE"
	KindInvalidDatetimeFormat Kind = "INVALID_DATETIME_FORMAT"
	KindOperationFailed       Kind = "OPERATION_FAILED"
)

// Status returns the HTTP status bound to the kind.
func (k Kind) Status() int {
	switch k {
	case KindNoDataFound:
		return http.StatusNotFound
	case KindUniqueViolation:
		return http.StatusConflict
	case KindFkViolation, KindNotNullViolation, KindRestrictViolation,
		KindTooLongString, KindNumOutOfRange, KindInvalidDatetimeFormat:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Description returns the fixed human-readable description of the kind.
func (k Kind) Description() string {
	switch k {
	case KindNoDataFound:
		return "Resource not found"
	case KindUniqueViolation:
		return "Resource already exists"
	case KindFkViolation:
		return "Referenced resource does not exist"
	case KindNotNullViolation:
		return "A required value is missing"
	case KindRestrictViolation:
		return "Resource is still referenced by other resources"
	case KindTooLongString:
		return "String value is too long"
	case KindNumOutOfRange:
		return "Numeric value is out of range"
	case KindInvalidDatetimeFormat:
		return "Invalid datetime format"
	default:
		return "Unknown error"
	}
}

// AppError is the canonical error type of the API.
//
// It carries an HTTP status code, a machine-readable code, a client-safe
// message, and an optional slice of field-level validation errors.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients
// to avoid leaking internal implementation details (e.g., SQL queries).
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NO_DATA_FOUND", "UNAUTHORIZED").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"message"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"statusCode"`
	// Context is the entity name the failure happened on (e.g. "Actor").
	Context string `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR responses.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the JSON field name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Kind returns the taxonomy tag of the error. Transport-level errors report their raw code.
func (e *AppError) Kind() Kind { return Kind(e.Code) }

// # Domain Errors

// FormatMessage renders the stable "(Context)[KIND] Cannot perform operation: <description>" template.
// The context prefix is omitted when context is empty.
func FormatMessage(kind Kind, context, description string) string {
	prefix := ""
	if context != "" {
		prefix = "(" + context + ")"
	}
	return fmt.Sprintf("%s[%s] Cannot perform operation: %s", prefix, kind, description)
}

// New builds a domain [AppError] of the given kind using the kind's fixed description.
func New(kind Kind, context string, cause error) *AppError {
	return Newf(kind, context, kind.Description(), cause)
}

// Newf builds a domain [AppError] of the given kind with a custom description.
func Newf(kind Kind, context, description string, cause error) *AppError {
	return &AppError{
		Code:       string(kind),
		Message:    FormatMessage(kind, context, description),
		HTTPStatus: kind.Status(),
		Context:    context,
		Cause:      cause,
	}
}

// NotFound creates a 404 NO_DATA_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Actor") // "(Actor)[NO_DATA_FOUND] Cannot perform operation: Resource not found"
func NotFound(context string) *AppError {
	return New(KindNoDataFound, context, nil)
}

// # Client Errors (4xx)

// Unauthorized creates a 401 [AppError].
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden creates a 403 [AppError].
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// ValidationError creates a 400 [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// RateLimited creates a 429 [AppError].
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       "RATE_LIMITED",
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsKind reports whether err carries an [*AppError] of the given kind.
func IsKind(err error, kind Kind) bool {
	ae := As(err)
	return ae != nil && ae.Code == string(kind)
}
