package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-job-alerts/internal/adapter"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/models"
)

type clientProfileService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService

	logger *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, session ClientSessionService, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{adapter: serverAdapter, session: session, logger: logger}
}

// Load fetches the current user and refreshes the session copy.
func (p *clientProfileService) Load(ctx context.Context) (models.User, error) {
	user, err := p.adapter.GetCurrentUser(ctx)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	p.session.SetUser(user)
	return user, nil
}

func (p *clientProfileService) UpdateProfile(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	user, err := p.adapter.UpdateCurrentUser(ctx, req)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	p.session.SetUser(user)
	return user, nil
}

// ChangePassword reports a rejected current password (403) as
// ErrCurrentPasswordIncorrect. A 401 means the session itself is gone.
func (p *clientProfileService) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	err := p.adapter.ChangePassword(ctx, req)
	if errors.Is(err, adapter.ErrForbidden) {
		return &kindError{kind: ErrCurrentPasswordIncorrect, err: err}
	}
	return mapAdapterError(err)
}
