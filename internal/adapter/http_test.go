// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-alerts/internal/config"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{BaseURL: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

var sample = models.Notification{
	ID:           "n1",
	Title:        "Backend Engineer",
	Seniority:    models.SeniorityMid,
	Country:      "IL",
	Location:     "Tel Aviv",
	Dist:         10,
	JobScope:     models.JobScopeFullTime,
	Frequency:    models.FrequencyDaily,
	EmailEnabled: true,
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"localhost:8080", "http://localhost:8080", false},
		{"https://jobs.example.com/", "https://jobs.example.com", false},
		{"  http://127.0.0.1:9000//  ", "http://127.0.0.1:9000", false},
		{"", "", true},
		{"http://", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}

// ── request contract ─────────────────────────────────────────────────────────

func TestRequest_AttachesTokenAndJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a":1}`, string(body))
		writeJSON(t, w, http.StatusOK, map[string]any{"ok": true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tok-1 ")

	got, err := a.Request(context.Background(), http.MethodPost, "/echo", map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ok": true}, got)
}

func TestRequest_NoTokenNoAuthorizationHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Request(context.Background(), http.MethodGet, "/", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRequest_BodyParsing(t *testing.T) {
	tests := []struct {
		name string
		body string
		want any
	}{
		{"empty", "", nil},
		{"null", "null", nil},
		{"json array", `[1,2]`, []any{float64(1), float64(2)}},
		{"raw text", "pong", "pong"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).Request(context.Background(), http.MethodGet, "/x", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequest_ErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantMsg  string
		sentinel error
	}{
		{"json message", http.StatusBadRequest, `{"message":"Email already registered"}`, "Email already registered", ErrBadRequest},
		{"json without message", http.StatusNotFound, `{"detail":"x"}`, "404 Not Found", ErrNotFound},
		{"empty message", http.StatusConflict, `{"message":""}`, "409 Conflict", ErrConflict},
		{"non json body", http.StatusInternalServerError, "boom", "500 Internal Server Error", ErrInternalServerError},
		{"unauthorized", http.StatusUnauthorized, `{"message":"Invalid credentials"}`, "Invalid credentials", ErrUnauthorized},
		{"unknown status", http.StatusTeapot, "", "418 I'm a teapot", ErrUnexpectedStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Request(context.Background(), http.MethodGet, "/x", nil)
			require.Error(t, err)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.ErrorIs(t, err, tt.sentinel)
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestErrorMessage_Fallbacks(t *testing.T) {
	assert.Equal(t, "API error", errorMessage(nil, ""))
	assert.Equal(t, "API error", errorMessage("text", "  "))
	assert.Equal(t, "502 Bad Gateway", errorMessage(map[string]any{"message": 1}, "502 Bad Gateway"))
}

func TestRequest_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Request(context.Background(), http.MethodGet, "/", nil)
	require.Error(t, err)
	assert.False(t, IsStatus(err, http.StatusInternalServerError))
}

// ── auth ─────────────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/signup", r.URL.Path)

		var req models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.SignupRequest{Email: "ada@example.com", Password: "pw", FirstName: "Ada"}, req)

		writeJSON(t, w, http.StatusCreated, models.AuthResponse{
			Token: "tok",
			User:  models.User{UserID: 1, Email: req.Email, FirstName: "Ada"},
		})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Signup(context.Background(), models.SignupRequest{
		Email: "ada@example.com", Password: "pw", FirstName: "Ada",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)
	assert.Equal(t, int64(1), got.User.UserID)
	assert.Equal(t, "ada@example.com", got.User.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Message: "Invalid credentials"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.LoginRequest{Email: "a", Password: "b"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualError(t, err, "Invalid credentials")
}

// ── notifications ────────────────────────────────────────────────────────────

func TestListNotifications(t *testing.T) {
	t.Run("items", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/notifications", r.URL.Path)
			writeJSON(t, w, http.StatusOK, []models.Notification{sample})
		}))
		defer srv.Close()

		got, err := newTestAdapter(t, srv.URL).ListNotifications(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []models.Notification{sample}, got)
	})

	t.Run("null body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "null")
		}))
		defer srv.Close()

		got, err := newTestAdapter(t, srv.URL).ListNotifications(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("garbage body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, "<html>")
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).ListNotifications(context.Background())
		assert.Error(t, err)
	})
}

func TestReplaceNotifications_SendsEmptyArrayForNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notifications", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `[]`, string(body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).ReplaceNotifications(context.Background(), nil))
}

func TestCreateNotification_AdoptsServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var n models.Notification
		require.NoError(t, json.NewDecoder(r.Body).Decode(&n))
		n.ID = "server-id"
		writeJSON(t, w, http.StatusCreated, n)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateNotification(context.Background(), sample)
	require.NoError(t, err)
	assert.Equal(t, "server-id", got.ID)
	assert.Equal(t, sample.Title, got.Title)
}

func TestUpdateNotification_EscapesIDAndFallsBackToInput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/notifications/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := sample
	n.ID = "a/b"
	got, err := newTestAdapter(t, srv.URL).UpdateNotification(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestDeleteNotification_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/notifications/n1", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Message: "Notification not found"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteNotification(context.Background(), "n1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.EqualError(t, err, "Notification not found")
}

// ── user ─────────────────────────────────────────────────────────────────────

func TestGetCurrentUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/me", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.User{UserID: 3, Email: "a@b.c"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	got, err := a.GetCurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.UserID)
}

func TestUpdateCurrentUserAndChangePassword(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPut && r.URL.Path == "/user/me":
			var req models.UpdateUserRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			first, last := models.SplitName(req.Name)
			writeJSON(t, w, http.StatusOK, models.User{UserID: 3, Email: req.Email, FirstName: first, LastName: last})
		case r.Method == http.MethodPost && r.URL.Path == "/user/me/password":
			var req models.ChangePasswordRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.CurrentPassword != "old" {
				writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Message: "Current password is incorrect"})
				return
			}
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	u, err := a.UpdateCurrentUser(context.Background(), models.UpdateUserRequest{Name: "Ada Lovelace", Email: "ada@x.io"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", u.FirstName)
	assert.Equal(t, "Lovelace", u.LastName)

	require.NoError(t, a.ChangePassword(context.Background(), models.ChangePasswordRequest{CurrentPassword: "old", NewPassword: "new"}))

	err = a.ChangePassword(context.Background(), models.ChangePasswordRequest{CurrentPassword: "bad", NewPassword: "new"})
	assert.EqualError(t, err, "Current password is incorrect")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).Health(context.Background()))
}
