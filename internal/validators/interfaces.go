// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules shared by the client forms and
// the server handlers.
//
// A [Validator] checks a value and may be scoped to a subset of its fields,
// so a form can enforce only the rules it owns while the server enforces the
// full set.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
