package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/internal/validators"
	"github.com/MKhiriev/go-job-alerts/models"
)

type notificationService struct {
	repository  store.NotificationRepository
	validator   validators.Validator
	idGenerator utils.IDGenerator

	logger *logger.Logger
}

func NewNotificationService(repository store.NotificationRepository, logger *logger.Logger) NotificationService {
	return &notificationService{
		repository:  repository,
		validator:   validators.NewNotificationValidator(),
		idGenerator: utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	return s.repository.ListNotifications(ctx, userID)
}

// CreateNotification stores n for userID. A client-assigned id is kept;
// otherwise the server assigns one.
func (s *notificationService) CreateNotification(ctx context.Context, userID int64, n models.Notification) (models.Notification, error) {
	n = s.prepare(userID, n)

	if err := s.validator.Validate(ctx, n); err != nil {
		return models.Notification{}, invalid(err)
	}

	return s.repository.CreateNotification(ctx, n)
}

func (s *notificationService) UpdateNotification(ctx context.Context, userID int64, n models.Notification) (models.Notification, error) {
	if strings.TrimSpace(n.ID) == "" {
		return models.Notification{}, invalid(validators.ErrInvalidID)
	}
	n = s.prepare(userID, n)

	if err := s.validator.Validate(ctx, n); err != nil {
		return models.Notification{}, invalid(err)
	}

	stored, err := s.repository.GetNotification(ctx, userID, n.ID)
	if err != nil {
		return models.Notification{}, err
	}
	if sameSettings(stored, n) {
		return stored, nil
	}

	return s.repository.UpdateNotification(ctx, n)
}

// sameSettings reports whether b would leave every editable field of a as is.
func sameSettings(a, b models.Notification) bool {
	return a.Title == b.Title &&
		a.Seniority == b.Seniority &&
		a.Country == b.Country &&
		a.Location == b.Location &&
		a.Dist == b.Dist &&
		a.JobScope == b.JobScope &&
		a.Frequency == b.Frequency &&
		a.EmailEnabled == b.EmailEnabled
}

func (s *notificationService) DeleteNotification(ctx context.Context, userID int64, id string) error {
	return s.repository.DeleteNotification(ctx, userID, id)
}

// ReplaceNotifications swaps the whole list of userID for items and returns
// the stored list.
func (s *notificationService) ReplaceNotifications(ctx context.Context, userID int64, items []models.Notification) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	prepared := make([]models.Notification, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, n := range items {
		n = s.prepare(userID, n)
		if _, dup := seen[n.ID]; dup {
			n.ID = s.idGenerator.Generate()
		}
		seen[n.ID] = struct{}{}
		prepared = append(prepared, n)
	}

	if err := s.validator.Validate(ctx, prepared); err != nil {
		return nil, invalid(err)
	}

	if err := s.repository.ReplaceNotifications(ctx, userID, prepared); err != nil {
		log.Err(err).Int64("user_id", userID).Int("count", len(prepared)).Msg("replacing notifications failed")
		return nil, fmt.Errorf("replace notifications: %w", err)
	}

	return s.repository.ListNotifications(ctx, userID)
}

// prepare trims text fields, fills enum defaults, normalises legacy job
// scope spellings and assigns an id when missing.
func (s *notificationService) prepare(userID int64, n models.Notification) models.Notification {
	defaults := models.DefaultNotification()

	n.UserID = userID
	n.ID = strings.TrimSpace(n.ID)
	n.Title = strings.TrimSpace(n.Title)
	n.Country = strings.TrimSpace(n.Country)
	n.Location = strings.TrimSpace(n.Location)

	if n.Seniority == "" {
		n.Seniority = defaults.Seniority
	}
	if n.JobScope == "" {
		n.JobScope = defaults.JobScope
	}
	n.JobScope = n.JobScope.Normalize()
	if n.Frequency == "" {
		n.Frequency = defaults.Frequency
	}

	if n.ID == "" {
		n.ID = s.idGenerator.Generate()
	}

	return n
}
