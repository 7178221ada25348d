package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-alerts/internal/app"
	"github.com/MKhiriev/go-job-alerts/internal/logger"
	"github.com/MKhiriev/go-job-alerts/internal/store"
	"github.com/MKhiriev/go-job-alerts/internal/utils"
	"github.com/MKhiriev/go-job-alerts/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		// a taken email is a plain bad request on signup
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Debug().Err(err).Msg("email already registered")
			utils.WriteError(w, app.MsgEmailAlreadyRegistered, http.StatusBadRequest)
			return
		}
		writeServiceError(w, r, err)
		return
	}

	log.Info().Int64("id", resp.User.UserID).Msg("user registered")
	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	log.Debug().Int64("id", resp.User.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}
