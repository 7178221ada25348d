package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-job-alerts/internal/adapter"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/models"
)

type clientSessionService struct {
	tokens        store.TokenStore
	adapter       adapter.ServerAdapter
	notifications NotificationRepository

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

func NewClientSessionService(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, notifications NotificationRepository, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		tokens:        tokens,
		adapter:       serverAdapter,
		notifications: notifications,
		logger:        logger,
	}
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.Restore").Msg("reading stored token failed")
		s.reset(ctx)
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}
	if token == "" {
		return models.Session{}, nil
	}

	if exp, expErr := utils.TokenExpiry(token); expErr == nil && !exp.After(time.Now()) {
		s.logger.Info().Time("exp", exp).Str("func", "clientSessionService.Restore").Msg("stored token expired")
		s.reset(ctx)
		return models.Session{}, ErrSessionExpired
	}

	s.adapter.SetToken(token)

	user, err := s.adapter.GetCurrentUser(ctx)
	if err != nil {
		s.logger.Info().Err(err).Str("func", "clientSessionService.Restore").Msg("stored token rejected")
		s.reset(ctx)
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionExpired, err)
	}

	session := s.set(token, user)
	s.notifications.List(ctx)

	return session, nil
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := s.adapter.Login(ctx, models.LoginRequest{Email: strings.TrimSpace(email), Password: password})
	if err != nil {
		return models.Session{}, mapAuthError(err)
	}

	return s.start(ctx, resp)
}

func (s *clientSessionService) Signup(ctx context.Context, req models.SignupRequest) (models.Session, error) {
	req.Email = strings.TrimSpace(req.Email)

	resp, err := s.adapter.Signup(ctx, req)
	if err != nil {
		return models.Session{}, mapAuthError(err)
	}

	return s.start(ctx, resp)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	return s.reset(ctx)
}

func (s *clientSessionService) Current() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session := s.session
	if session.User != nil {
		u := *session.User
		session.User = &u
	}
	return session
}

func (s *clientSessionService) SetUser(user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.User = &user
}

// start persists the token of a fresh sign-in and loads the user's list.
func (s *clientSessionService) start(ctx context.Context, resp models.AuthResponse) (models.Session, error) {
	if resp.Token == "" {
		return models.Session{}, errors.New("server returned no token")
	}

	session := s.set(resp.Token, resp.User)

	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		// the session still works for this run
		s.logger.Warn().Err(err).Str("func", "clientSessionService.start").Msg("persisting token failed")
	}

	s.notifications.List(ctx)

	return session, nil
}

func (s *clientSessionService) set(token string, user models.User) models.Session {
	s.adapter.SetToken(token)

	s.mu.Lock()
	s.session = models.Session{Token: token, User: &user}
	s.mu.Unlock()

	return s.Current()
}

func (s *clientSessionService) reset(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()

	s.adapter.SetToken("")
	s.notifications.Clear()

	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Warn().Err(err).Str("func", "clientSessionService.reset").Msg("clearing stored token failed")
		return err
	}
	return nil
}
