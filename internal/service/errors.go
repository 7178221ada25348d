package service

import "errors"

var (
	ErrInvalidDataProvided      = errors.New("invalid data provided")
	ErrWrongPassword            = errors.New("wrong password")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrSessionExpired is returned when the server rejects the stored token.
	// The caller is expected to log the user out.
	ErrSessionExpired = errors.New("session expired")

	// ErrNotAuthenticated is returned by calls that need a session when
	// there is none.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrAuthFailed is matched by every [AuthError].
	ErrAuthFailed = errors.New("authentication failed")
)

// AuthError is a login or signup the server refused, such as a taken email.
// Error returns the server message.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return e.Err.Error()
}

func (e *AuthError) Unwrap() []error {
	return []error{ErrAuthFailed, e.Err}
}

// kindError makes err also match kind while keeping err's message.
type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.err.Error()
}

func (e *kindError) Unwrap() []error {
	return []error{e.kind, e.err}
}

// ValidationError carries a user-facing validation message. It matches both
// [ErrInvalidDataProvided] and the validator sentinel it wraps.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() []error {
	return []error{ErrInvalidDataProvided, e.Err}
}

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}
