package client

import "errors"

// ErrNotATerminal is returned by Run when stdin or stdout is redirected.
var ErrNotATerminal = errors.New("job alerts client needs an interactive terminal")
