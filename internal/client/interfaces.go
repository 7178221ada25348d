// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable client application.
type Client interface {
	// Run blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error
}
