package form

import (
	"errors"
	"sync"
)

// ErrSubmitting is returned by Submit while a previous submission of the
// same form has not finished.
var ErrSubmitting = errors.New("form is already submitting")

type Status int

const (
	StatusIdle Status = iota
	StatusSubmitting
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the Idle → Submitting → Success | Failed machine shared by all
// forms. It is safe for concurrent use.
type State struct {
	mu      sync.Mutex
	status  Status
	err     error
	message string
}

func (s *State) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusSubmitting {
		return ErrSubmitting
	}
	s.status = StatusSubmitting
	s.err = nil
	s.message = ""
	return nil
}

func (s *State) succeed(message string) {
	s.mu.Lock()
	s.status = StatusSuccess
	s.err = nil
	s.message = message
	s.mu.Unlock()
}

// fail records err and returns it.
func (s *State) fail(err error) error {
	s.mu.Lock()
	s.status = StatusFailed
	s.err = err
	s.message = ""
	s.mu.Unlock()
	return err
}

func (s *State) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *State) Submitting() bool {
	return s.Status() == StatusSubmitting
}

// Err is the error of the last failed submission.
func (s *State) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Message is the confirmation of the last successful submission.
func (s *State) Message() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.message
}

// Reset returns an idle form to Idle, clearing error and message. It has no
// effect while submitting.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusSubmitting {
		return
	}
	s.status = StatusIdle
	s.err = nil
	s.message = ""
}
