package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

var (
	// ErrNilResponse indicates a handler returned nil instead of a Response.
	ErrNilResponse = errors.New("handler returned nil response")

	// ErrPanic wraps values recovered from a panicking handler.
	ErrPanic = errors.New("handler panicked")
)

// HTTPError is an error that already knows its status. A catalog entry
// under Key overrides the status message; without one the message comes from
// the status. The error code is always derived from Code.
type HTTPError struct {
	Code int
	Key  string
	Err  error
}

func (e HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Key, e.Err)
	}
	return e.Key
}

func (e HTTPError) Unwrap() error { return e.Err }

// Wrap returns a copy of e carrying err as its cause.
func (e HTTPError) Wrap(err error) HTTPError {
	e.Err = err
	return e
}

var (
	ErrBadRequest           = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized         = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden            = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound             = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrMethodNotAllowed     = HTTPError{Code: http.StatusMethodNotAllowed, Key: "method_not_allowed"}
	ErrNotAcceptable        = HTTPError{Code: http.StatusNotAcceptable, Key: "not_acceptable"}
	ErrConflict             = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrRequestTooLarge      = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMediaType = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrUnprocessableEntity  = HTTPError{Code: http.StatusUnprocessableEntity, Key: "unprocessable_entity"}
	ErrTooManyRequests      = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
)

// ServerError is a failure already classified as 5xx. Status is mirrored in
// the response as is.
type ServerError struct {
	Status int
	Cause  error
}

// NewServerError classifies cause with status. Anything outside 500-599 is
// treated as 500.
func NewServerError(status int, cause error) *ServerError {
	if status < http.StatusInternalServerError || status > 599 {
		status = http.StatusInternalServerError
	}
	return &ServerError{Status: status, Cause: cause}
}

func (e *ServerError) Error() string {
	text := http.StatusText(e.Status)
	if text == "" {
		text = fmt.Sprintf("status %d", e.Status)
	}
	if e.Cause == nil {
		return text
	}
	return fmt.Sprintf("%s: %v", text, e.Cause)
}

func (e *ServerError) Unwrap() error { return e.Cause }

// ValidationError collects field messages produced outside the validator
// package, for example by hand-written checks in a handler.
type ValidationError url.Values

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var parts []string
	for _, field := range fields {
		if len(e[field]) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, e[field][0]))
		}
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add adds a message for field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}
