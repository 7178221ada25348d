// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-job-alerts/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{
	"user_id",
	"email",
	"first_name",
	"last_name",
	"password_hash",
	"created_at",
	"updated_at",
}

var notificationColumns = []string{
	"id",
	"user_id",
	"title",
	"seniority",
	"country",
	"location",
	"dist",
	"job_scope",
	"frequency",
	"email_enabled",
	"last_sent_at",
	"created_at",
	"updated_at",
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("email", "first_name", "last_name", "password_hash").
		Values(user.Email, user.FirstName, user.LastName, user.PasswordHash).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(email string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where("LOWER(email) = LOWER(?)", email).
		ToSql()
}

func buildSelectUserByIDQuery(userID int64) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.Update(user.TableName()).
		Set("email", user.Email).
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": user.UserID}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildUpdatePasswordQuery(userID int64, passwordHash string) (string, []any, error) {
	return psql.Update(models.User{}.TableName()).
		Set("password_hash", passwordHash).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

// ── notifications ────────────────────────────────────────────────────────────

func buildSelectNotificationsQuery(userID int64) (string, []any, error) {
	return psql.Select(notificationColumns...).
		From(models.Notification{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id").
		ToSql()
}

func buildSelectNotificationQuery(userID int64, id string) (string, []any, error) {
	return psql.Select(notificationColumns...).
		From(models.Notification{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertNotificationQuery(n models.Notification) (string, []any, error) {
	return psql.Insert(n.TableName()).
		Columns("id", "user_id", "title", "seniority", "country", "location", "dist", "job_scope", "frequency", "email_enabled").
		Values(n.ID, n.UserID, n.Title, n.Seniority, n.Country, n.Location, n.Dist, n.JobScope, n.Frequency, n.EmailEnabled).
		Suffix(returning(notificationColumns)).
		ToSql()
}

// buildInsertNotificationsQuery inserts items in one statement. Rows without
// a creation time get now minus their index in milliseconds, so reading them
// back newest-first keeps the submitted order.
func buildInsertNotificationsQuery(userID int64, items []models.Notification, now time.Time) (string, []any, error) {
	q := psql.Insert(models.Notification{}.TableName()).
		Columns("id", "user_id", "title", "seniority", "country", "location", "dist", "job_scope", "frequency", "email_enabled", "last_sent_at", "created_at", "updated_at")

	for i, n := range items {
		createdAt := n.CreatedAt
		if createdAt.IsZero() {
			createdAt = now.Add(-time.Duration(i) * time.Millisecond)
		}
		q = q.Values(n.ID, userID, n.Title, n.Seniority, n.Country, n.Location, n.Dist, n.JobScope, n.Frequency, n.EmailEnabled, n.LastSentAt, createdAt, now)
	}

	return q.ToSql()
}

func buildUpdateNotificationQuery(n models.Notification) (string, []any, error) {
	return psql.Update(n.TableName()).
		Set("title", n.Title).
		Set("seniority", n.Seniority).
		Set("country", n.Country).
		Set("location", n.Location).
		Set("dist", n.Dist).
		Set("job_scope", n.JobScope).
		Set("frequency", n.Frequency).
		Set("email_enabled", n.EmailEnabled).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": n.UserID}).
		Where(sq.Eq{"id": n.ID}).
		Suffix(returning(notificationColumns)).
		ToSql()
}

func buildDeleteNotificationQuery(userID int64, id string) (string, []any, error) {
	return psql.Delete(models.Notification{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteAllNotificationsQuery(userID int64) (string, []any, error) {
	return psql.Delete(models.Notification{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
