package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.GetAllUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// getUserByID answers 200 with a JSON null body when no user has the id.
func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNoUserWasFound) {
		utils.WriteJSON(w, nil, http.StatusOK)
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}
