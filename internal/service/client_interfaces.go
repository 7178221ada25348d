package service

import (
	"context"

	"github.com/MKhiriev/go-job-alerts/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -mock_names=NotificationRepository=MockClientNotificationRepository

// ClientSessionService owns the signed-in state of the terminal client: the
// token (in memory, in the adapter and in durable storage) and the user.
type ClientSessionService interface {
	// Restore loads a persisted token and validates it with GET /user/me.
	// On any failure the session is reset, the token cleared and
	// ErrSessionExpired returned. No stored token is not an error.
	Restore(ctx context.Context) (models.Session, error)

	Login(ctx context.Context, email, password string) (models.Session, error)
	Signup(ctx context.Context, req models.SignupRequest) (models.Session, error)

	// Logout forgets the session, the stored token and the cached list.
	Logout(ctx context.Context) error

	Current() models.Session
	SetUser(user models.User)
}

// NotificationRepository is the client-side ordered cache of the user's
// notifications, newest first.
type NotificationRepository interface {
	// List refreshes the cache from the server. Failures are logged and
	// yield an empty list.
	List(ctx context.Context) []models.Notification

	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	Update(ctx context.Context, n models.Notification) (models.Notification, error)

	// Delete removes the entry locally even when the server call fails;
	// the server error is still returned.
	Delete(ctx context.Context, id string) error

	// SaveAll replaces the server list with the cached one.
	SaveAll(ctx context.Context) error

	Get(id string) (models.Notification, bool)
	Items() []models.Notification
	Clear()
}

// ClientProfileService edits the signed-in user's account.
type ClientProfileService interface {
	Load(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, req models.UpdateUserRequest) (models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error
}
