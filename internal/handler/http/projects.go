package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/go-chi/chi/v5"
)

// createProject answers 201 with the stored project. An empty ownerId or a
// malformed body is 400, an ownerId naming no user is 404, anything else 500.
func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeProjectRequest(w, r)
	if !ok {
		return
	}

	created, err := h.services.ProjectService.CreateProject(r.Context(), request.Project())
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("project_id", created.ID).Str("owner_id", created.OwnerID).Msg("project created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getProjectsByOwner(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.GetProjectsByOwner(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

// getProjectsByID returns a list holding zero or one project.
func (h *Handler) getProjectsByID(w http.ResponseWriter, r *http.Request) {
	projects, err := h.services.ProjectService.GetProjectsByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, projects, http.StatusOK)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeProjectRequest(w, r)
	if !ok {
		return
	}

	project := request.Project()
	project.ID = chi.URLParam(r, "id")

	updated, err := h.services.ProjectService.UpdateProject(r.Context(), chi.URLParam(r, "userId"), project)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	err := h.services.ProjectService.DeleteProject(r.Context(), chi.URLParam(r, "userId"), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, app.MsgProjectDeleted, http.StatusOK)
}

func decodeProjectRequest(w http.ResponseWriter, r *http.Request) (models.ProjectRequest, bool) {
	var request models.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return models.ProjectRequest{}, false
	}
	return request, true
}
