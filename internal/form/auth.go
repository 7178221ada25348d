package form

import (
	"context"
	"strings"
	"sync"

	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/validators"
	"github.com/MKhiriev/go-job-alerts/models"
)

type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeSignup
)

// AuthInput is a snapshot of the auth screen. Names are only sent on signup.
type AuthInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthForm signs the user in or up. Apart from non-empty email and password
// every check is left to the server, whose message is surfaced verbatim.
type AuthForm struct {
	State

	session   service.ClientSessionService
	validator validators.Validator
	onSuccess func(models.Session)

	modeMu sync.Mutex
	mode   AuthMode
}

// NewAuthForm returns a login form. onSuccess may be nil.
func NewAuthForm(session service.ClientSessionService, onSuccess func(models.Session)) *AuthForm {
	return &AuthForm{
		session:   session,
		validator: validators.NewNotificationValidator(),
		onSuccess: onSuccess,
	}
}

func (f *AuthForm) Mode() AuthMode {
	f.modeMu.Lock()
	defer f.modeMu.Unlock()
	return f.mode
}

// Toggle switches between login and signup and clears the last outcome.
func (f *AuthForm) Toggle() {
	f.modeMu.Lock()
	if f.mode == ModeLogin {
		f.mode = ModeSignup
	} else {
		f.mode = ModeLogin
	}
	f.modeMu.Unlock()

	f.Reset()
}

func (f *AuthForm) Submit(ctx context.Context, in AuthInput) (models.Session, error) {
	if err := f.begin(); err != nil {
		return models.Session{}, err
	}

	var (
		session models.Session
		err     error
	)

	switch f.Mode() {
	case ModeSignup:
		req := models.SignupRequest{
			Email:     strings.TrimSpace(in.Email),
			Password:  in.Password,
			FirstName: strings.TrimSpace(in.FirstName),
			LastName:  strings.TrimSpace(in.LastName),
		}
		if err = f.validator.Validate(ctx, req); err != nil {
			return models.Session{}, f.fail(err)
		}
		session, err = f.session.Signup(ctx, req)
	default:
		req := models.LoginRequest{Email: strings.TrimSpace(in.Email), Password: in.Password}
		if err = f.validator.Validate(ctx, req); err != nil {
			return models.Session{}, f.fail(err)
		}
		session, err = f.session.Login(ctx, req.Email, req.Password)
	}

	if err != nil {
		return models.Session{}, f.fail(err)
	}

	f.succeed("")
	if f.onSuccess != nil {
		f.onSuccess(session)
	}
	return session, nil
}
