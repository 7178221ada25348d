// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the terminal client: the request client for the
// REST service, the session token storage, the client services and the
// screens, and runs them for the lifetime of the process.
package client
