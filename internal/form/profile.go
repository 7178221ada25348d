package form

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/validators"
	"github.com/MKhiriev/go-job-alerts/models"
)

type ProfileInput struct {
	Name  string
	Email string

	CurrentPassword string
	NewPassword     string
	Confirm         string
}

// ProfileForm edits name and email and optionally changes the password.
type ProfileForm struct {
	State

	profile   service.ClientProfileService
	validator validators.Validator
	user      models.User
}

func NewProfileForm(profile service.ClientProfileService, user models.User) *ProfileForm {
	return &ProfileForm{
		profile:   profile,
		validator: validators.NewNotificationValidator(),
		user:      user,
	}
}

func (f *ProfileForm) Values() ProfileInput {
	return ProfileInput{Name: f.user.Name(), Email: f.user.Email}
}

// Submit saves name and email first. The password is changed afterwards, and
// only when a new one is given: the current password is then required and
// the new one must match its confirmation.
func (f *ProfileForm) Submit(ctx context.Context, in ProfileInput) (models.User, error) {
	if err := f.begin(); err != nil {
		return models.User{}, err
	}

	req := models.UpdateUserRequest{Name: strings.TrimSpace(in.Name), Email: strings.TrimSpace(in.Email)}
	if err := f.validator.Validate(ctx, req); err != nil {
		return models.User{}, f.fail(err)
	}

	user, err := f.profile.UpdateProfile(ctx, req)
	if err != nil {
		return models.User{}, f.fail(err)
	}
	f.user = user

	change := validators.PasswordChange{Current: in.CurrentPassword, New: in.NewPassword, Confirm: in.Confirm}
	if change.New != "" {
		if err = f.validator.Validate(ctx, change); err != nil {
			return user, f.fail(err)
		}

		err = f.profile.ChangePassword(ctx, models.ChangePasswordRequest{
			CurrentPassword: change.Current,
			NewPassword:     change.New,
		})
		if err != nil {
			return user, f.fail(err)
		}
	}

	f.succeed(app.MsgProfileUpdated)
	return user, nil
}
