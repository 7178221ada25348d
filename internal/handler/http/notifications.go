// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/models"
	"github.com/go-chi/chi/v5"
)

// listNotifications returns the caller's notifications, newest first.
func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	items, err := h.services.NotificationService.ListNotifications(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, nonNil(items), http.StatusOK)
}

func (h *Handler) createNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var n models.Notification
	if !decodeBody(w, r, &n) {
		return
	}

	created, err := h.services.NotificationService.CreateNotification(r.Context(), id, n)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Str("notification_id", created.ID).Msg("notification created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

// replaceNotifications swaps the whole list of the caller for the body.
func (h *Handler) replaceNotifications(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var items []models.Notification
	if !decodeBody(w, r, &items) {
		return
	}

	saved, err := h.services.NotificationService.ReplaceNotifications(r.Context(), id, items)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().Int("count", len(saved)).Msg("notifications replaced")
	utils.WriteJSON(w, nonNil(saved), http.StatusOK)
}

// updateNotification saves the body under the id of the path. An id in the
// body is ignored.
func (h *Handler) updateNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	var n models.Notification
	if !decodeBody(w, r, &n) {
		return
	}
	n.ID = chi.URLParam(r, "id")

	updated, err := h.services.NotificationService.UpdateNotification(r.Context(), id, n)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}

	if err := h.services.NotificationService.DeleteNotification(r.Context(), id, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeJSON(r, v); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}

func nonNil(items []models.Notification) []models.Notification {
	if items == nil {
		return []models.Notification{}
	}
	return items
}
