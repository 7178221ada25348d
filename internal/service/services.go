package service

import (
	"fmt"

	"github.com/MKhiriev/go-job-alerts/internal/config"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/models"
)

type Services struct {
	AuthService         AuthService
	NotificationService NotificationService
	UserService         UserService
	AppInfoService      AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, cfg.App, logger),
		NotificationService: NewNotificationService(storages.NotificationRepository, logger),
		UserService:         NewUserService(storages.UserRepository, logger),
		AppInfoService:      appInfo,
	}, nil
}
