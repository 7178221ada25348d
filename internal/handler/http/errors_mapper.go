package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/service"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrWrongPassword:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	service.ErrCurrentPasswordIncorrect: http.StatusForbidden,

	store.ErrEmailAlreadyExists:        http.StatusConflict,
	store.ErrNoUserWasFound:            http.StatusNotFound,
	store.ErrNotificationNotFound:      http.StatusNotFound,
	store.ErrNotificationAlreadyExists: http.StatusConflict,
}

var errorMessageMap = map[error]string{
	service.ErrWrongPassword:            app.MsgInvalidCredentials,
	service.ErrTokenIsExpiredOrInvalid:  app.MsgTokenIsExpiredOrInvalid,
	service.ErrCurrentPasswordIncorrect: app.MsgCurrentPasswordIncorrect,

	store.ErrEmailAlreadyExists:        app.MsgEmailAlreadyInUse,
	store.ErrNoUserWasFound:            app.MsgUserNotFound,
	store.ErrNotificationNotFound:      app.MsgNotificationNotFound,
	store.ErrNotificationAlreadyExists: app.MsgNotificationAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the text clients show for err. Validation
// errors carry their own message; unknown errors never leak details.
func messageFromError(err error) string {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Error()
	}

	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	if errors.Is(err, service.ErrInvalidDataProvided) {
		return app.MsgInvalidDataProvided
	}
	return app.MsgInternalServerError
}

// writeServiceError logs err and answers with the mapped status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}
