package service

import (
	"github.com/MKhiriev/go-job-alerts/internal/adapter"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/store"
)

type ClientServices struct {
	SessionService ClientSessionService
	Notifications  NotificationRepository
	ProfileService ClientProfileService
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	notifications := NewClientNotificationRepository(serverAdapter, logger.Component("notifications"))
	session := NewClientSessionService(storages.TokenStore, serverAdapter, notifications, logger.Component("session"))

	return &ClientServices{
		SessionService: session,
		Notifications:  notifications,
		ProfileService: NewClientProfileService(serverAdapter, session, logger.Component("profile")),
	}
}
