package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/models"
)

// memoryNotificationRepository is a server-less [NotificationRepository].
// Records get a client id when they have none.
type memoryNotificationRepository struct {
	ids utils.IDGenerator

	mu    sync.Mutex
	items []models.Notification
}

func NewMemoryNotificationRepository(ids utils.IDGenerator, seed ...models.Notification) NotificationRepository {
	return &memoryNotificationRepository{ids: ids, items: slices.Clone(seed)}
}

func (m *memoryNotificationRepository) List(_ context.Context) []models.Notification {
	return m.Items()
}

func (m *memoryNotificationRepository) Create(_ context.Context, n models.Notification) (models.Notification, error) {
	if n.ID == "" {
		n.ID = m.ids.Generate()
	}

	m.mu.Lock()
	m.items = append([]models.Notification{n}, m.items...)
	m.mu.Unlock()

	return n, nil
}

func (m *memoryNotificationRepository) Update(_ context.Context, n models.Notification) (models.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := slices.IndexFunc(m.items, func(x models.Notification) bool { return x.ID == n.ID }); i >= 0 {
		m.items[i] = n
	}
	return n, nil
}

func (m *memoryNotificationRepository) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	m.items = slices.DeleteFunc(m.items, func(n models.Notification) bool { return n.ID == id })
	m.mu.Unlock()
	return nil
}

func (m *memoryNotificationRepository) SaveAll(_ context.Context) error {
	return nil
}

func (m *memoryNotificationRepository) Get(id string) (models.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if i := slices.IndexFunc(m.items, func(n models.Notification) bool { return n.ID == id }); i >= 0 {
		return m.items[i], true
	}
	return models.Notification{}, false
}

func (m *memoryNotificationRepository) Items() []models.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := slices.Clone(m.items)
	if out == nil {
		out = []models.Notification{}
	}
	return out
}

func (m *memoryNotificationRepository) Clear() {
	m.mu.Lock()
	m.items = nil
	m.mu.Unlock()
}
