package store

import (
	"context"

	"github.com/MKhiriev/go-job-alerts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the "users" table.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}

// NotificationRepository persists job-alert subscriptions in the
// "notifications" table. Every method is scoped to a single owner.
type NotificationRepository interface {
	ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	GetNotification(ctx context.Context, userID int64, id string) (models.Notification, error)
	CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	UpdateNotification(ctx context.Context, n models.Notification) (models.Notification, error)
	DeleteNotification(ctx context.Context, userID int64, id string) error
	ReplaceNotifications(ctx context.Context, userID int64, items []models.Notification) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
