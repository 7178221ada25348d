package adapter

import (
	"errors"
	"net/http"
)

// Status sentinels. [*APIError] unwraps to one of them.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// defaultAPIErrorMessage is used when neither the body nor the status line
// carry a message.
const defaultAPIErrorMessage = "API error"

// APIError is returned for every non-2xx response.
type APIError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Message is the body's "message" field, else the status line, else
	// "API error".
	Message string
	// Body is the parsed response body (JSON value, raw text or nil).
	Body any
}

// Error returns the message only, so it can be shown to the user verbatim.
func (e *APIError) Error() string {
	return e.Message
}

// Unwrap maps the status code onto a sentinel.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusInternalServerError:
		return ErrInternalServerError
	case http.StatusBadGateway:
		return ErrBadGateway
	default:
		return ErrUnexpectedStatus
	}
}

// IsStatus reports whether err (or any wrapped error) is an [*APIError] with
// the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == code
	}
	return false
}
