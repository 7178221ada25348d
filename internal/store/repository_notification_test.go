// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/models"
)

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	repo := NewNotificationRepository(newDBFromSQL(db), logger.Nop()).(*notificationRepository)
	return repo, mock
}

func notificationRow(n models.Notification) []any {
	return []any{
		n.ID, n.UserID, n.Title, string(n.Seniority), n.Country, n.Location, n.Dist,
		string(n.JobScope), string(n.Frequency), n.EmailEnabled, n.LastSentAt, n.CreatedAt, n.UpdatedAt,
	}
}

func toDriverValues(vals []any) []driver.Value {
	out := make([]driver.Value, len(vals))
	for i, v := range vals {
		if ts, ok := v.(*time.Time); ok {
			if ts == nil {
				out[i] = nil
				continue
			}
			v = *ts
		}
		out[i] = v
	}
	return out
}

func testNotification(id string, createdAt time.Time) models.Notification {
	return models.Notification{
		ID:           id,
		UserID:       42,
		Title:        "Go Developer",
		Seniority:    models.SenioritySenior,
		Country:      "DE",
		Location:     "Berlin",
		Dist:         25,
		JobScope:     models.JobScopeFullTime,
		Frequency:    models.FrequencyTwiceWeek,
		EmailEnabled: true,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
}

func TestNotificationRepository_ListNotifications(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	listSQL := mustQuery(t, func() (string, []any, error) { return buildSelectNotificationsQuery(42) })

	t.Run("rows in query order", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		newer := testNotification("b", now)
		older := testNotification("a", now.Add(-time.Hour))
		sent := now.Add(-time.Minute)
		older.LastSentAt = &sent

		rows := sqlmock.NewRows(notificationColumns).
			AddRow(toDriverValues(notificationRow(newer))...).
			AddRow(toDriverValues(notificationRow(older))...)
		mock.ExpectQuery(listSQL).WithArgs(int64(42)).WillReturnRows(rows)

		got, err := repo.ListNotifications(testContext(), 42)
		require.NoError(t, err)
		assert.Equal(t, []models.Notification{newer, older}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty is non-nil", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(listSQL).WillReturnRows(sqlmock.NewRows(notificationColumns))

		got, err := repo.ListNotifications(testContext(), 42)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(listSQL).WillReturnError(errors.New("boom"))

		_, err := repo.ListNotifications(testContext(), 42)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})

	t.Run("row error", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		rows := sqlmock.NewRows(notificationColumns).
			AddRow(toDriverValues(notificationRow(testNotification("a", now)))...).
			RowError(0, errors.New("broken row"))
		mock.ExpectQuery(listSQL).WillReturnRows(rows)

		_, err := repo.ListNotifications(testContext(), 42)
		assert.ErrorIs(t, err, ErrScanningRows)
	})
}

func TestNotificationRepository_GetNotification(t *testing.T) {
	getSQL := mustQuery(t, func() (string, []any, error) { return buildSelectNotificationQuery(42, "n1") })

	t.Run("found", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		n := testNotification("n1", time.Now().Truncate(time.Second))
		mock.ExpectQuery(getSQL).WithArgs(int64(42), "n1").
			WillReturnRows(sqlmock.NewRows(notificationColumns).AddRow(toDriverValues(notificationRow(n))...))

		got, err := repo.GetNotification(testContext(), 42, "n1")
		require.NoError(t, err)
		assert.Equal(t, n, got)
	})

	t.Run("other user's id", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(getSQL).WithArgs(int64(42), "n1").WillReturnRows(sqlmock.NewRows(notificationColumns))

		_, err := repo.GetNotification(testContext(), 42, "n1")
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})
}

func TestNotificationRepository_CreateNotification(t *testing.T) {
	n := testNotification("n1", time.Now().Truncate(time.Second))
	insertSQL := mustQuery(t, func() (string, []any, error) { return buildInsertNotificationQuery(n) })

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(insertSQL).
			WithArgs("n1", int64(42), n.Title, "senior", "DE", "Berlin", 25, "full time", "twice_week", true).
			WillReturnRows(sqlmock.NewRows(notificationColumns).AddRow(toDriverValues(notificationRow(n))...))

		got, err := repo.CreateNotification(testContext(), n)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	})

	t.Run("duplicate id", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(insertSQL).WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateNotification(testContext(), n)
		assert.ErrorIs(t, err, ErrNotificationAlreadyExists)
	})
}

func TestNotificationRepository_UpdateNotification(t *testing.T) {
	n := testNotification("n1", time.Now().Truncate(time.Second))
	updateSQL := mustQuery(t, func() (string, []any, error) { return buildUpdateNotificationQuery(n) })

	t.Run("success", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(updateSQL).
			WillReturnRows(sqlmock.NewRows(notificationColumns).AddRow(toDriverValues(notificationRow(n))...))

		got, err := repo.UpdateNotification(testContext(), n)
		require.NoError(t, err)
		assert.Equal(t, n.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(updateSQL).WillReturnRows(sqlmock.NewRows(notificationColumns))

		_, err := repo.UpdateNotification(testContext(), n)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectQuery(updateSQL).WillReturnError(errors.New("boom"))

		_, err := repo.UpdateNotification(testContext(), n)
		assert.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestNotificationRepository_DeleteNotification(t *testing.T) {
	deleteSQL := regexp.QuoteMeta("DELETE FROM notifications WHERE user_id = $1 AND id = $2")

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "deleted",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).WithArgs(int64(42), "n1").WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: ErrNotificationNotFound,
		},
		{
			name: "exec error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).WillReturnError(errors.New("boom"))
			},
			wantErr: ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNotificationRepo(t)
			tt.setup(mock)

			err := repo.DeleteNotification(testContext(), 42, "n1")
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestNotificationRepository_ReplaceNotifications(t *testing.T) {
	deleteAllSQL := regexp.QuoteMeta("DELETE FROM notifications WHERE user_id = $1")
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	items := []models.Notification{testNotification("a", time.Time{}), testNotification("b", time.Time{})}
	insertSQL := mustQuery(t, func() (string, []any, error) { return buildInsertNotificationsQuery(42, items, now) })

	t.Run("delete then insert", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		repo.now = func() time.Time { return now }

		mock.ExpectBegin()
		mock.ExpectExec(deleteAllSQL).WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceNotifications(testContext(), 42, items))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty list only deletes", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)

		mock.ExpectBegin()
		mock.ExpectExec(deleteAllSQL).WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceNotifications(testContext(), 42, nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("insert failure rolls back", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		repo.now = func() time.Time { return now }

		mock.ExpectBegin()
		mock.ExpectExec(deleteAllSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertSQL).WillReturnError(pgError(pgerrcode.UniqueViolation))
		mock.ExpectRollback()

		err := repo.ReplaceNotifications(testContext(), 42, items)
		assert.ErrorIs(t, err, ErrExecutingStatement)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("transient failure is retried once", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		repo.now = func() time.Time { return now }

		mock.ExpectBegin()
		mock.ExpectExec(deleteAllSQL).WillReturnError(pgError(pgerrcode.SerializationFailure))
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec(deleteAllSQL).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(insertSQL).WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectCommit()

		require.NoError(t, repo.ReplaceNotifications(testContext(), 42, items))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newTestNotificationRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("no conn"))

		assert.ErrorIs(t, repo.ReplaceNotifications(testContext(), 42, items), ErrBeginningTransaction)
	})
}
