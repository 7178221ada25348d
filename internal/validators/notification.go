package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-alerts/models"
)

// Field names accepted by [NotificationValidator.Validate].
const (
	FieldID        = "id"
	FieldRequired  = "required"
	FieldSeniority = "seniority"
	FieldJobScope  = "job_scope"
	FieldFrequency = "frequency"
	FieldDist      = "dist"

	FieldKeywords = "keywords"

	FieldCredentials     = "credentials"
	FieldEmail           = "email"
	FieldCurrentPassword = "current_password"
	FieldConfirm         = "confirm"
)

// PasswordChange is the password part of the profile form.
type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

// NotificationValidator validates notifications (both schemas), bulk lists,
// credentials and profile changes.
type NotificationValidator struct{}

func NewNotificationValidator() Validator {
	return &NotificationValidator{}
}

// Validate dispatches on the dynamic type of obj. Value and pointer forms
// are accepted. Without fields a type-specific default set is checked.
func (v *NotificationValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Notification:
		return v.validateNotification(value, fields...)
	case *models.Notification:
		return v.validateNotification(*value, fields...)

	case []models.Notification:
		for i, n := range value {
			if err := v.validateNotification(n, fields...); err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
		}
		return nil

	case models.LegacyNotification:
		return v.validateLegacyNotification(value, fields...)
	case *models.LegacyNotification:
		return v.validateLegacyNotification(*value, fields...)

	case models.LoginRequest:
		return requireCredentials(value.Email, value.Password)
	case *models.LoginRequest:
		return requireCredentials(value.Email, value.Password)
	case models.SignupRequest:
		return requireCredentials(value.Email, value.Password)
	case *models.SignupRequest:
		return requireCredentials(value.Email, value.Password)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(*value)

	case PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func requireCredentials(email, password string) error {
	if blank(email) || password == "" {
		return ErrCredentialsRequired
	}
	return nil
}

// validateNotification checks the canonical schema.
//
// Default fields: required, seniority, job_scope, frequency, dist.
func (v *NotificationValidator) validateNotification(n models.Notification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldSeniority, FieldJobScope, FieldFrequency, FieldDist}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if blank(n.ID) {
				return ErrInvalidID
			}
		case FieldRequired:
			if blank(n.Title) || blank(n.Country) || blank(n.Location) {
				return ErrRequiredFieldsMissing
			}
		case FieldSeniority:
			if !n.Seniority.IsValid() {
				return ErrInvalidSeniority
			}
		case FieldJobScope:
			if !n.JobScope.IsValid() {
				return ErrInvalidJobScope
			}
		case FieldFrequency:
			if !n.Frequency.IsValid() {
				return ErrInvalidFrequency
			}
		case FieldDist:
			if n.Dist < 0 {
				return ErrInvalidDist
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLegacyNotification checks the v1 schema: a title or at least one
// keyword must be present.
func (v *NotificationValidator) validateLegacyNotification(n models.LegacyNotification, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldKeywords}
	}

	for _, f := range fields {
		switch f {
		case FieldKeywords:
			if blank(n.Title) && blank(n.Keywords) {
				return ErrLegacyTitleRequired
			}
		case FieldID:
			if blank(n.ID) {
				return ErrInvalidID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NotificationValidator) validateUpdateUser(req models.UpdateUserRequest) error {
	if blank(req.Email) {
		return ErrEmailRequired
	}
	return nil
}

// validatePasswordChange is a no-op when no new password is given.
//
// Default fields: current_password, confirm.
func (v *NotificationValidator) validatePasswordChange(p PasswordChange, fields ...string) error {
	if p.New == "" {
		return nil
	}

	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldConfirm}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if p.Current == "" {
				return ErrCurrentPasswordRequired
			}
		case FieldConfirm:
			if p.New != p.Confirm {
				return ErrPasswordMismatch
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
