package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email
	// (case-insensitive) is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches
	// no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotificationNotFound is returned when no notification with the
	// given id belongs to the user.
	ErrNotificationNotFound = errors.New("notification was not found")

	// ErrNotificationAlreadyExists is returned when the user already owns a
	// notification with the same id.
	ErrNotificationAlreadyExists = errors.New("notification already exists")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
