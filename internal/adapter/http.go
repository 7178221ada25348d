package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-job-alerts/internal/config"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/REST implementation of
// [ServerAdapter]. The base URL from adapterCfg is normalised ("host:port"
// gets an http:// scheme, trailing slashes are dropped).
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Request implements [ServerAdapter].
func (h *httpServerAdapter) Request(ctx context.Context, method, path string, body any) (any, error) {
	raw, err := h.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	return parseBody(raw), nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) error {
	_, err := h.do(ctx, http.MethodGet, "/", nil)
	return err
}

// Signup implements [ServerAdapter].
func (h *httpServerAdapter) Signup(ctx context.Context, req models.SignupRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.call(ctx, http.MethodPost, "/signup", req, &out)
	return out, err
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := h.call(ctx, http.MethodPost, "/login", req, &out)
	return out, err
}

// ListNotifications implements [ServerAdapter].
func (h *httpServerAdapter) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	if err := h.call(ctx, http.MethodGet, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []models.Notification{}
	}
	return out, nil
}

// ReplaceNotifications implements [ServerAdapter].
func (h *httpServerAdapter) ReplaceNotifications(ctx context.Context, items []models.Notification) error {
	if items == nil {
		items = []models.Notification{}
	}
	return h.call(ctx, http.MethodPut, "/notifications", items, nil)
}

// CreateNotification implements [ServerAdapter]. When the server answers
// with an empty body the submitted record is returned.
func (h *httpServerAdapter) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	out := n
	err := h.call(ctx, http.MethodPost, "/notifications", n, &out)
	return out, err
}

// UpdateNotification implements [ServerAdapter]. When the server answers
// with an empty body the submitted record is returned.
func (h *httpServerAdapter) UpdateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	out := n
	err := h.call(ctx, http.MethodPut, notificationPath(n.ID), n, &out)
	return out, err
}

// DeleteNotification implements [ServerAdapter].
func (h *httpServerAdapter) DeleteNotification(ctx context.Context, id string) error {
	return h.call(ctx, http.MethodDelete, notificationPath(id), nil, nil)
}

// GetCurrentUser implements [ServerAdapter].
func (h *httpServerAdapter) GetCurrentUser(ctx context.Context) (models.User, error) {
	var out models.User
	err := h.call(ctx, http.MethodGet, "/user/me", nil, &out)
	return out, err
}

// UpdateCurrentUser implements [ServerAdapter].
func (h *httpServerAdapter) UpdateCurrentUser(ctx context.Context, req models.UpdateUserRequest) (models.User, error) {
	var out models.User
	err := h.call(ctx, http.MethodPut, "/user/me", req, &out)
	return out, err
}

// ChangePassword implements [ServerAdapter].
func (h *httpServerAdapter) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return h.call(ctx, http.MethodPost, "/user/me/password", req, nil)
}

func notificationPath(id string) string {
	return "/notifications/" + url.PathEscape(id)
}

// call performs the request and decodes a non-empty JSON body into out.
// out is left untouched for empty and null bodies.
func (h *httpServerAdapter) call(ctx context.Context, method, path string, body, out any) error {
	raw, err := h.do(ctx, method, path, body)
	if err != nil {
		return err
	}

	raw = bytes.TrimSpace(raw)
	if out == nil || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	if err = json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// do sends the request and returns the raw body of a 2xx response.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	req := h.authedRequest(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s request: %w", method, path, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().
			Str("func", "httpServerAdapter.do").
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode()).
			Err(err).
			Msg("server returned an error")
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
