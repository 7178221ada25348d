// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-alerts/internal/adapter"
)

// mapAdapterError translates a 401 from an authenticated call into
// ErrSessionExpired. Other errors are returned unchanged so their server
// message can be shown verbatim.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) {
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	return err
}

// mapAuthError wraps a 400, 401 or 409 from /login or /signup into an
// [AuthError]. Transport failures and 5xx pass through unchanged.
func mapAuthError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrUnauthorized),
		errors.Is(err, adapter.ErrConflict):
		return &AuthError{Err: err}
	}

	return err
}
