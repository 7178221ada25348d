package service

import (
	"context"

	"github.com/MKhiriev/go-job-alerts/models"
)

// AuthService registers and authenticates users and issues their tokens.
type AuthService interface {
	Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NotificationService manages the notifications of one user at a time.
type NotificationService interface {
	ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error)
	CreateNotification(ctx context.Context, userID int64, n models.Notification) (models.Notification, error)
	UpdateNotification(ctx context.Context, userID int64, n models.Notification) (models.Notification, error)
	DeleteNotification(ctx context.Context, userID int64, id string) error
	ReplaceNotifications(ctx context.Context, userID int64, items []models.Notification) ([]models.Notification, error)
}

// UserService reads and edits the signed-in user's profile.
type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}
