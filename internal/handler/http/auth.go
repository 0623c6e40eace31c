package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Warn().Err(err).Msg("registration rejected")
			utils.WriteError(w, app.MsgRegisterFieldsRequired, http.StatusBadRequest)
			return
		}
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")
	utils.WriteJSON(w, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, app.MsgInvalidEmailPassword, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Err(err).Msg("login rejected")
			utils.WriteJSON(w, app.MsgInvalidEmailPassword, http.StatusBadRequest)
			return
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, token.SignedString, http.StatusOK)
}

func (h *Handler) protected(w http.ResponseWriter, r *http.Request, identity models.Claims) {
	utils.WriteJSON(w, models.ProtectedResponse{Message: app.MsgProtectedRoute, User: identity}, http.StatusOK)
}
