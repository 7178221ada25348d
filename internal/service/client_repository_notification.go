// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-job-alerts/internal/adapter"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/models"
)

// clientNotificationRepository caches the user's notifications, newest first,
// and mirrors every change to the server while a token is set.
type clientNotificationRepository struct {
	adapter adapter.ServerAdapter

	mu    sync.Mutex
	items []models.Notification

	logger *logger.Logger
}

func NewClientNotificationRepository(serverAdapter adapter.ServerAdapter, logger *logger.Logger) NotificationRepository {
	return &clientNotificationRepository{
		adapter: serverAdapter,
		items:   []models.Notification{},
		logger:  logger,
	}
}

func (r *clientNotificationRepository) authenticated() bool {
	return r.adapter.Token() != ""
}

func (r *clientNotificationRepository) List(ctx context.Context) []models.Notification {
	items, err := r.adapter.ListNotifications(ctx)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "clientNotificationRepository.List").Msg("loading notifications failed")
		items = []models.Notification{}
	}

	for i := range items {
		items[i].JobScope = items[i].JobScope.Normalize()
	}

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()

	return slices.Clone(items)
}

// Create prepends the record. With a session the server's copy is stored,
// otherwise n as given.
func (r *clientNotificationRepository) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	if r.authenticated() {
		created, err := r.adapter.CreateNotification(ctx, n)
		if err != nil {
			return models.Notification{}, mapAdapterError(err)
		}
		n = created
	}

	r.mu.Lock()
	r.items = append([]models.Notification{n}, r.items...)
	r.mu.Unlock()

	return n, nil
}

// Update replaces the cached entry with the same id once the server accepts
// the change. An id missing from the cache leaves the cache unchanged.
func (r *clientNotificationRepository) Update(ctx context.Context, n models.Notification) (models.Notification, error) {
	if r.authenticated() {
		updated, err := r.adapter.UpdateNotification(ctx, n)
		if err != nil {
			return models.Notification{}, mapAdapterError(err)
		}
		n = updated
	}

	r.mu.Lock()
	if i := r.indexOf(n.ID); i >= 0 {
		r.items[i] = n
	}
	r.mu.Unlock()

	return n, nil
}

func (r *clientNotificationRepository) Delete(ctx context.Context, id string) error {
	var err error
	if r.authenticated() {
		err = mapAdapterError(r.adapter.DeleteNotification(ctx, id))
	}

	r.mu.Lock()
	r.items = slices.DeleteFunc(r.items, func(n models.Notification) bool { return n.ID == id })
	r.mu.Unlock()

	return err
}

func (r *clientNotificationRepository) SaveAll(ctx context.Context) error {
	if !r.authenticated() {
		return ErrNotAuthenticated
	}

	return mapAdapterError(r.adapter.ReplaceNotifications(ctx, r.Items()))
}

func (r *clientNotificationRepository) Get(id string) (models.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(id); i >= 0 {
		return r.items[i], true
	}
	return models.Notification{}, false
}

func (r *clientNotificationRepository) Items() []models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.items)
}

func (r *clientNotificationRepository) Clear() {
	r.mu.Lock()
	r.items = []models.Notification{}
	r.mu.Unlock()
}

// indexOf must be called with mu held.
func (r *clientNotificationRepository) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(n models.Notification) bool { return n.ID == id })
}
