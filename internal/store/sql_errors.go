package store

// ErrorClassification tells whether a failed database call should be retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors and anything the
	// database rejected on its merits.
	NonRetryable ErrorClassification = iota
	// Retryable marks transient failures.
	Retryable
)
