// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-job-alerts/models"
)

func Test_buildSelectUserByEmailQuery(t *testing.T) {
	query, args, err := buildSelectUserByEmailQuery("Ada@Example.com")
	require.NoError(t, err)

	assert.Equal(t, "SELECT user_id, email, first_name, last_name, password_hash, created_at, updated_at FROM users WHERE LOWER(email) = LOWER($1)", query)
	assert.Equal(t, []any{"Ada@Example.com"}, args)
}

func Test_buildInsertUserQuery(t *testing.T) {
	query, args, err := buildInsertUserQuery(models.User{Email: "a@b.c", FirstName: "Ada", LastName: "L", PasswordHash: "h"})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO users (email,first_name,last_name,password_hash) VALUES ($1,$2,$3,$4)")
	assert.Contains(t, query, "RETURNING user_id, email")
	assert.Equal(t, []any{"a@b.c", "Ada", "L", "h"}, args)
}

func Test_buildUpdateUserQuery(t *testing.T) {
	query, args, err := buildUpdateUserQuery(models.User{UserID: 7, Email: "a@b.c", FirstName: "Ada"})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE users SET email = $1, first_name = $2, last_name = $3, updated_at = NOW() WHERE user_id = $4")
	assert.Equal(t, []any{"a@b.c", "Ada", "", int64(7)}, args)
}

func Test_buildSelectNotificationsQuery_OrdersNewestFirst(t *testing.T) {
	query, args, err := buildSelectNotificationsQuery(42)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id")
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildDeleteNotificationQuery_ScopedToOwner(t *testing.T) {
	query, args, err := buildDeleteNotificationQuery(42, "n1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM notifications WHERE user_id = $1 AND id = $2", query)
	assert.Equal(t, []any{int64(42), "n1"}, args)
}

func Test_buildUpdateNotificationQuery(t *testing.T) {
	n := models.Notification{ID: "n1", UserID: 42, Title: "Go", Seniority: models.SeniorityJunior, Country: "IL", Location: "Haifa", Dist: 5, JobScope: models.JobScopePartTime, Frequency: models.FrequencyWeekly}

	query, args, err := buildUpdateNotificationQuery(n)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE user_id = $9 AND id = $10")
	assert.Contains(t, query, "updated_at = NOW()")
	require.Len(t, args, 10)
	assert.Equal(t, "Go", args[0])
	assert.Equal(t, false, args[7])
}

func Test_buildInsertNotificationsQuery_KeepsSubmittedOrder(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	explicit := now.Add(-time.Hour)

	items := []models.Notification{
		{ID: "a", Title: "first"},
		{ID: "b", Title: "second"},
		{ID: "c", Title: "third", CreatedAt: explicit},
	}

	query, args, err := buildInsertNotificationsQuery(42, items, now)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO notifications (id,user_id,title,")
	const cols = 13
	require.Len(t, args, cols*len(items))

	// created_at is the 12th column of every row
	assert.Equal(t, now, args[11])
	assert.Equal(t, now.Add(-time.Millisecond), args[cols+11])
	assert.Equal(t, explicit, args[2*cols+11])

	// owner is forced on every row
	for i := range items {
		assert.Equal(t, int64(42), args[i*cols+1])
	}
}
