// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/models"
)

// notificationRepository is the PostgreSQL-backed implementation of
// [NotificationRepository] over the "notifications" table.
type notificationRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// ListNotifications returns every notification of userID, newest first.
// An empty result is an empty, non-nil slice.
func (p *notificationRepository) ListNotifications(ctx context.Context, userID int64) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNotificationsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListNotifications").
			Int64("user_id", userID).
			Msg("failed to execute query for listing notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Notification, 0, 16)
	for rows.Next() {
		n, scanErr := scanNotification(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "notificationRepository.ListNotifications").
				Int64("user_id", userID).
				Msg("failed to scan notification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, n)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "notificationRepository.ListNotifications").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

func (p *notificationRepository) GetNotification(ctx context.Context, userID int64, id string) (models.Notification, error) {
	query, args, err := buildSelectNotificationQuery(userID, id)
	if err != nil {
		return models.Notification{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	n, err := scanNotification(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Notification{}, p.notFoundOr(ctx, "notificationRepository.GetNotification", id, err)
	}
	return n, nil
}

// CreateNotification inserts n for n.UserID and returns the stored row.
func (p *notificationRepository) CreateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNotificationQuery(n)
	if err != nil {
		return models.Notification{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanNotification(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.CreateNotification").
			Int64("user_id", n.UserID).
			Str("id", n.ID).
			Msg("failed to insert notification")

		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.Notification{}, ErrNotificationAlreadyExists
		}
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// UpdateNotification overwrites the editable fields of (n.UserID, n.ID).
func (p *notificationRepository) UpdateNotification(ctx context.Context, n models.Notification) (models.Notification, error) {
	query, args, err := buildUpdateNotificationQuery(n)
	if err != nil {
		return models.Notification{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanNotification(p.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Notification{}, p.notFoundOr(ctx, "notificationRepository.UpdateNotification", n.ID, err)
	}
	return updated, nil
}

func (p *notificationRepository) DeleteNotification(ctx context.Context, userID int64, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNotificationQuery(userID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "notificationRepository.DeleteNotification").
			Int64("user_id", userID).
			Str("id", id).
			Msg("failed to delete notification")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

// ReplaceNotifications deletes every notification of userID and inserts
// items in a single transaction. A transient failure is retried once.
func (p *notificationRepository) ReplaceNotifications(ctx context.Context, userID int64, items []models.Notification) error {
	log := logger.FromContext(ctx)

	err := p.replace(ctx, userID, items)
	if err != nil && p.retryable(err) {
		log.Warn().Err(err).
			Str("func", "notificationRepository.ReplaceNotifications").
			Int64("user_id", userID).
			Msg("retrying replace after transient error")
		err = p.replace(ctx, userID, items)
	}

	return err
}

func (p *notificationRepository) replace(ctx context.Context, userID int64, items []models.Notification) error {
	log := logger.FromContext(ctx)

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	query, args, err := buildDeleteAllNotificationsQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "notificationRepository.replace").
			Int64("user_id", userID).
			Msg("failed to delete notifications")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if len(items) > 0 {
		query, args, err = buildInsertNotificationsQuery(userID, items, p.now())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "notificationRepository.replace").
				Int64("user_id", userID).
				Int("count", len(items)).
				Msg("failed to insert notifications")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func (p *notificationRepository) notFoundOr(ctx context.Context, fn, id string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotificationNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Str("id", id).Msg("notification query failed")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (models.Notification, error) {
	var n models.Notification
	err := row.Scan(
		&n.ID,
		&n.UserID,
		&n.Title,
		&n.Seniority,
		&n.Country,
		&n.Location,
		&n.Dist,
		&n.JobScope,
		&n.Frequency,
		&n.EmailEnabled,
		&n.LastSentAt,
		&n.CreatedAt,
		&n.UpdatedAt,
	)
	return n, err
}
