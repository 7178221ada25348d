package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-job-alerts/internal/adapter"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/mock"
	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestProfileSvc(t *testing.T) (ClientProfileService, *mock.MockServerAdapter, *mock.MockClientSessionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	a := mock.NewMockServerAdapter(ctrl)
	s := mock.NewMockClientSessionService(ctrl)
	return NewClientProfileService(a, s, logger.Nop()), a, s
}

func TestClientProfileService_Load(t *testing.T) {
	ctx := context.Background()
	svc, a, s := newTestProfileSvc(t)

	a.EXPECT().GetCurrentUser(ctx).Return(testUser, nil)
	s.EXPECT().SetUser(testUser)

	got, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testUser, got)

	a.EXPECT().GetCurrentUser(ctx).Return(models.User{}, errUnauthorized)
	_, err = svc.Load(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestClientProfileService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, a, s := newTestProfileSvc(t)

	req := models.UpdateUserRequest{Name: "Ann Lee", Email: "ann@example.com"}
	updated := models.User{UserID: 1, Email: "ann@example.com", FirstName: "Ann", LastName: "Lee"}

	a.EXPECT().UpdateCurrentUser(ctx, req).Return(updated, nil)
	s.EXPECT().SetUser(updated)

	got, err := svc.UpdateProfile(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", got.Name())

	a.EXPECT().UpdateCurrentUser(ctx, req).
		Return(models.User{}, &adapter.APIError{StatusCode: http.StatusConflict, Message: "Email already in use"})

	_, err = svc.UpdateProfile(ctx, req)
	assert.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, "Email already in use", err.Error())
}

func TestClientProfileService_ChangePassword(t *testing.T) {
	ctx := context.Background()
	req := models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new"}

	tests := []struct {
		name          string
		err           error
		wantExpired   bool
		wantIncorrect bool
		wantMsg       string
	}{
		{name: "success"},
		{
			name:          "wrong current password is not a session expiry",
			err:           &adapter.APIError{StatusCode: http.StatusForbidden, Message: "Current password is incorrect"},
			wantIncorrect: true,
			wantMsg:       "Current password is incorrect",
		},
		{
			name:          "reworded server message is still classified by status",
			err:           &adapter.APIError{StatusCode: http.StatusForbidden, Message: "Old password does not match"},
			wantIncorrect: true,
			wantMsg:       "Old password does not match",
		},
		{
			name:        "expired token",
			err:         errUnauthorized,
			wantExpired: true,
		},
		{
			name:        "unauthorized always expires the session",
			err:         &adapter.APIError{StatusCode: http.StatusUnauthorized, Message: "Current password is incorrect"},
			wantExpired: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, a, _ := newTestProfileSvc(t)
			a.EXPECT().ChangePassword(ctx, req).Return(tt.err)

			err := svc.ChangePassword(ctx, req)
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantExpired, errors.Is(err, ErrSessionExpired))
			assert.Equal(t, tt.wantIncorrect, errors.Is(err, ErrCurrentPasswordIncorrect))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}
