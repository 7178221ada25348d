package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/internal/validators"
	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineerAlert(id string) models.Notification {
	return models.Notification{
		ID:           id,
		Title:        "Backend Engineer",
		Seniority:    models.SeniorityMid,
		Country:      "IL",
		Location:     "Tel Aviv",
		Dist:         10,
		JobScope:     models.JobScopeFullTime,
		Frequency:    models.FrequencyDaily,
		EmailEnabled: true,
	}
}

func notificationServices(m *mockNotificationService) *service.Services {
	services := newTestServices()
	services.NotificationService = m
	return services
}

func TestListNotifications(t *testing.T) {
	t.Run("returns items", func(t *testing.T) {
		items := []models.Notification{engineerAlert("b"), engineerAlert("a")}
		services := notificationServices(&mockNotificationService{
			listFn: func(_ context.Context, userID int64) ([]models.Notification, error) {
				assert.Equal(t, testUserID, userID)
				return items, nil
			},
		})

		rec := serve(t, services, http.MethodGet, "/notifications", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, toJSON(t, items), rec.Body.String())
	})

	t.Run("empty list is an array", func(t *testing.T) {
		services := notificationServices(&mockNotificationService{
			listFn: func(_ context.Context, _ int64) ([]models.Notification, error) {
				return nil, nil
			},
		})

		rec := serve(t, services, http.MethodGet, "/notifications", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("requires token", func(t *testing.T) {
		rec := serve(t, notificationServices(&mockNotificationService{}), http.MethodGet, "/notifications", "", false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateNotification(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		createErr   error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", body: `{"title":"Backend Engineer"}`, wantStatus: http.StatusCreated},
		{
			name:        "validation",
			body:        `{"title":""}`,
			createErr:   &service.ValidationError{Err: validators.ErrRequiredFieldsMissing},
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.ErrRequiredFieldsMissing.Error(),
		},
		{
			name:        "duplicate client id",
			body:        `{"id":"x","title":"Backend Engineer"}`,
			createErr:   fmt.Errorf("create notification: %w", store.ErrNotificationAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: app.MsgNotificationAlreadyExists,
		},
		{name: "invalid json", body: `[`, wantStatus: http.StatusBadRequest, wantMessage: app.MsgInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := notificationServices(&mockNotificationService{
				createFn: func(_ context.Context, userID int64, n models.Notification) (models.Notification, error) {
					assert.Equal(t, testUserID, userID)
					if tt.createErr != nil {
						return models.Notification{}, tt.createErr
					}
					n.ID = "server-id"
					return n, nil
				},
			})

			rec := serve(t, services, http.MethodPost, "/notifications", tt.body, true)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}
			assert.Contains(t, rec.Body.String(), `"id":"server-id"`)
		})
	}
}

func TestUpdateNotification(t *testing.T) {
	t.Run("path id wins", func(t *testing.T) {
		services := notificationServices(&mockNotificationService{
			updateFn: func(_ context.Context, userID int64, n models.Notification) (models.Notification, error) {
				assert.Equal(t, testUserID, userID)
				assert.Equal(t, "abc", n.ID)
				return n, nil
			},
		})

		rec := serve(t, services, http.MethodPut, "/notifications/abc", toJSON(t, engineerAlert("other")), true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, toJSON(t, engineerAlert("abc")), rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		services := notificationServices(&mockNotificationService{
			updateFn: func(_ context.Context, _ int64, _ models.Notification) (models.Notification, error) {
				return models.Notification{}, fmt.Errorf("update: %w", store.ErrNotificationNotFound)
			},
		})

		rec := serve(t, services, http.MethodPut, "/notifications/missing", toJSON(t, engineerAlert("")), true)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgNotificationNotFound, errorMessage(t, rec))
	})
}

func TestDeleteNotification(t *testing.T) {
	tests := []struct {
		name       string
		deleteErr  error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "not found", deleteErr: store.ErrNotificationNotFound, wantStatus: http.StatusNotFound},
		{name: "storage failure", deleteErr: errors.New("connection reset"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := notificationServices(&mockNotificationService{
				deleteFn: func(_ context.Context, userID int64, id string) error {
					assert.Equal(t, testUserID, userID)
					assert.Equal(t, "abc", id)
					return tt.deleteErr
				},
			})

			rec := serve(t, services, http.MethodDelete, "/notifications/abc", "", true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.deleteErr == nil {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}

func TestReplaceNotifications(t *testing.T) {
	t.Run("replaced", func(t *testing.T) {
		items := []models.Notification{engineerAlert("a"), engineerAlert("b")}
		services := notificationServices(&mockNotificationService{
			replaceFn: func(_ context.Context, userID int64, got []models.Notification) ([]models.Notification, error) {
				assert.Equal(t, testUserID, userID)
				assert.Equal(t, items, got)
				return got, nil
			},
		})

		rec := serve(t, services, http.MethodPut, "/notifications", toJSON(t, items), true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, toJSON(t, items), rec.Body.String())
	})

	t.Run("invalid item", func(t *testing.T) {
		itemErr := fmt.Errorf("item 1: %w", validators.ErrInvalidFrequency)
		services := notificationServices(&mockNotificationService{
			replaceFn: func(_ context.Context, _ int64, _ []models.Notification) ([]models.Notification, error) {
				return nil, &service.ValidationError{Err: itemErr}
			},
		})

		rec := serve(t, services, http.MethodPut, "/notifications", `[{"id":"a"},{"id":"b"}]`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "item 1: invalid frequency", errorMessage(t, rec))
	})

	t.Run("object instead of array", func(t *testing.T) {
		rec := serve(t, notificationServices(&mockNotificationService{}), http.MethodPut, "/notifications", `{"id":"a"}`, true)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, app.MsgInvalidDataProvided, errorMessage(t, rec))
	})
}
