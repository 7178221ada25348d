// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package form

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/internal/validators"
	"github.com/MKhiriev/go-job-alerts/models"
)

// NotificationForm creates a notification, or edits one when constructed
// with an initial record.
type NotificationForm struct {
	State

	repository service.NotificationRepository
	ids        utils.IDGenerator
	validator  validators.Validator

	initial *models.Notification

	// redirectDelay is how long the screen keeps the success message up
	// before going back to the list.
	redirectDelay time.Duration
}

func NewNotificationForm(repository service.NotificationRepository, ids utils.IDGenerator, initial *models.Notification, redirectDelay time.Duration) *NotificationForm {
	f := &NotificationForm{
		repository:    repository,
		ids:           ids,
		validator:     validators.NewNotificationValidator(),
		redirectDelay: redirectDelay,
	}
	if initial != nil {
		seed := *initial
		f.initial = &seed
	}
	return f
}

func (f *NotificationForm) Editing() bool {
	return f.initial != nil
}

func (f *NotificationForm) RedirectDelay() time.Duration {
	return f.redirectDelay
}

// Values returns the record the inputs start from: the initial record, or
// the defaults for a new one.
func (f *NotificationForm) Values() models.Notification {
	if f.initial != nil {
		n := *f.initial
		n.JobScope = n.JobScope.Normalize()
		return n
	}
	return models.DefaultNotification()
}

// Validate applies the submit rules. Only a nil result lets Submit save.
func (f *NotificationForm) Validate(ctx context.Context, n models.Notification) error {
	return f.validator.Validate(ctx, n)
}

// Build trims the input and fixes its id: the edited record keeps its own,
// a new one gets a client id.
func (f *NotificationForm) Build(n models.Notification) models.Notification {
	n.Title = strings.TrimSpace(n.Title)
	n.Country = strings.TrimSpace(n.Country)
	n.Location = strings.TrimSpace(n.Location)
	n.JobScope = n.JobScope.Normalize()

	switch {
	case f.initial != nil:
		n.ID = f.initial.ID
		n.CreatedAt = f.initial.CreatedAt
		n.LastSentAt = f.initial.LastSentAt
	case strings.TrimSpace(n.ID) == "":
		n.ID = f.ids.Generate()
	}

	return n
}

// FromLegacy converts a first generation record into form values. The record
// needs a title or keywords; fields it lacks, such as the country, keep the
// defaults and must be filled in before saving.
func (f *NotificationForm) FromLegacy(ctx context.Context, l models.LegacyNotification) (models.Notification, error) {
	if err := f.validator.Validate(ctx, l); err != nil {
		return models.Notification{}, err
	}

	n := models.MigrateLegacyNotification(l)
	if f.initial != nil {
		n.ID = f.initial.ID
	}
	return n, nil
}

// Submit validates n and saves it through the repository. A validation
// failure never reaches the repository.
func (f *NotificationForm) Submit(ctx context.Context, n models.Notification) (models.Notification, error) {
	if err := f.begin(); err != nil {
		return models.Notification{}, err
	}

	n = f.Build(n)
	if err := f.Validate(ctx, n); err != nil {
		return models.Notification{}, f.fail(err)
	}

	var (
		saved models.Notification
		err   error
	)
	if f.Editing() {
		saved, err = f.repository.Update(ctx, n)
	} else {
		saved, err = f.repository.Create(ctx, n)
	}
	if err != nil {
		return models.Notification{}, f.fail(err)
	}

	if f.Editing() {
		f.succeed(app.MsgNotificationUpdated)
	} else {
		f.succeed(app.MsgNotificationCreated)
	}
	return saved, nil
}
