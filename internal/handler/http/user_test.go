package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userServices(m *mockUserService) *service.Services {
	services := newTestServices()
	services.UserService = m
	return services
}

func TestGetMe(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		services := userServices(&mockUserService{
			getFn: func(_ context.Context, userID int64) (models.User, error) {
				assert.Equal(t, testUserID, userID)
				return alice, nil
			},
		})

		rec := serve(t, services, http.MethodGet, "/user/me", "", true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, toJSON(t, alice), rec.Body.String())
	})

	t.Run("deleted user", func(t *testing.T) {
		services := userServices(&mockUserService{
			getFn: func(_ context.Context, _ int64) (models.User, error) {
				return models.User{}, store.ErrNoUserWasFound
			},
		})

		rec := serve(t, services, http.MethodGet, "/user/me", "", true)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, app.MsgUserNotFound, errorMessage(t, rec))
	})
}

func TestUpdateMe(t *testing.T) {
	tests := []struct {
		name        string
		updateErr   error
		wantStatus  int
		wantMessage string
	}{
		{name: "updated", wantStatus: http.StatusOK},
		{name: "email taken", updateErr: fmt.Errorf("update user: %w", store.ErrEmailAlreadyExists), wantStatus: http.StatusConflict, wantMessage: app.MsgEmailAlreadyInUse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := userServices(&mockUserService{
				updateFn: func(_ context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
					assert.Equal(t, testUserID, userID)
					assert.Equal(t, models.UpdateUserRequest{Name: "Alice Smith", Email: "alice@example.com"}, req)
					if tt.updateErr != nil {
						return models.User{}, tt.updateErr
					}
					return models.User{UserID: userID, Email: req.Email, FirstName: "Alice", LastName: "Smith"}, nil
				},
			})

			rec := serve(t, services, http.MethodPut, "/user/me", `{"name":"Alice Smith","email":"alice@example.com"}`, true)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
				return
			}
			assert.Contains(t, rec.Body.String(), `"lastName":"Smith"`)
		})
	}
}

func TestChangePassword(t *testing.T) {
	tests := []struct {
		name        string
		changeErr   error
		wantStatus  int
		wantMessage string
	}{
		{name: "changed", wantStatus: http.StatusNoContent},
		{name: "wrong current password", changeErr: service.ErrCurrentPasswordIncorrect, wantStatus: http.StatusForbidden, wantMessage: app.MsgCurrentPasswordIncorrect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := userServices(&mockUserService{
				changePasswordFn: func(_ context.Context, userID int64, req models.ChangePasswordRequest) error {
					assert.Equal(t, testUserID, userID)
					assert.Equal(t, models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new"}, req)
					return tt.changeErr
				},
			})

			rec := serve(t, services, http.MethodPost, "/user/me/password", `{"currentPassword":"old","newPassword":"new"}`, true)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, errorMessage(t, rec))
			}
		})
	}
}
