// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared user-facing message constants.
//
// Server Msg* constants are written into the "message" field of HTTP error
// bodies. Client Msg* constants are shown by the terminal screens.
package app

// Server messages.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned when the email/password pair does not
	// match any user.
	MsgInvalidCredentials = "Invalid credentials"

	// MsgEmailAlreadyRegistered is returned by signup for a taken email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgEmailAlreadyInUse is returned by a profile update that would take
	// another user's email.
	MsgEmailAlreadyInUse = "Email already in use"

	// MsgCurrentPasswordIncorrect is returned by the password change endpoint.
	MsgCurrentPasswordIncorrect = "Current password is incorrect"

	MsgUserNotFound         = "User not found"
	MsgNotificationNotFound = "Notification not found"

	// MsgNotificationAlreadyExists is returned by create when the user
	// already owns a notification with the client supplied id.
	MsgNotificationAlreadyExists = "Notification already exists"

	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token cannot be
	// verified or has expired.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNotAuthenticated is returned when the Authorization header is absent.
	MsgNotAuthenticated = "Not authenticated"

	MsgRegistrationFailed = "registration failed"
	MsgLoginFailed        = "login failed"
)

// Client messages.
const (
	MsgNotificationCreated = "Notification created"
	MsgNotificationUpdated = "Notification updated"
	MsgNotificationDeleted = "Notification deleted"
	MsgUnableToSave        = "Unable to save notification"
	MsgUnableToDelete      = "Unable to delete"
	MsgProfileUpdated      = "Profile updated successfully"
	MsgSessionExpired      = "Your session has expired, please log in again"
	MsgCopiedToClipboard   = "Copied to clipboard"
)
