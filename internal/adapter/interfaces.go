// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's request layer for the job-alerts REST
// service.
//
// [ServerAdapter] wraps every remote operation. The HTTP implementation
// ([NewHTTPServerAdapter]) attaches the bearer token, sends JSON bodies,
// tolerates non-JSON answers and turns every non-2xx response into an
// [*APIError] whose message comes from the server when it supplies one.
// APIError unwraps to the status sentinels in errors.go so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-job-alerts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the job-alerts service. There are
// no retries: every failure is returned to the caller as is.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to subsequent requests.
	// An empty token makes requests anonymous.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter.
	Token() string

	// Request is the generic call: it sends body (if not nil) as JSON to
	// path and returns the decoded response body. The result is the JSON
	// value, the raw text when the body is not JSON, or nil for an empty or
	// null body.
	Request(ctx context.Context, method, path string, body any) (any, error)

	// Health calls GET / and fails if the service does not answer 2xx.
	Health(ctx context.Context) error

	// Signup calls POST /signup.
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)

	// Login calls POST /login.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ListNotifications calls GET /notifications. A null body yields an
	// empty slice.
	ListNotifications(ctx context.Context) ([]models.Notification, error)

	// ReplaceNotifications calls PUT /notifications with the full list.
	ReplaceNotifications(ctx context.Context, items []models.Notification) error

	// CreateNotification calls POST /notifications and returns the record
	// stored by the server.
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)

	// UpdateNotification calls PUT /notifications/{id}.
	UpdateNotification(ctx context.Context, n models.Notification) (models.Notification, error)

	// DeleteNotification calls DELETE /notifications/{id}.
	DeleteNotification(ctx context.Context, id string) error

	// GetCurrentUser calls GET /user/me.
	GetCurrentUser(ctx context.Context) (models.User, error)

	// UpdateCurrentUser calls PUT /user/me.
	UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error)

	// ChangePassword calls POST /user/me/password.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
}
