package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/service"
	"github.com/MKhiriev/go-project-hub/internal/store"
	"github.com/MKhiriev/go-project-hub/internal/utils"
)

type errorStatus struct {
	err     error
	status  int
	message string
}

// errorStatuses is checked in order; the first match wins. An empty message
// means the error text itself is returned.
var errorStatuses = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, ""},
	{service.ErrInvalidCredentials, http.StatusBadRequest, app.MsgInvalidEmailPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusForbidden, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrNotProjectOwner, http.StatusForbidden, app.MsgNotProjectOwner},

	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyExists},
	{store.ErrNoUserWasFound, http.StatusNotFound, app.MsgUserNotFound},
	{store.ErrProjectNotFound, http.StatusNotFound, app.MsgProjectNotFound},
	{store.ErrOwnerNotFound, http.StatusNotFound, app.MsgOwnerNotFound},
}

func statusFromError(err error) int {
	status, _ := resolveError(err)
	return status
}

func resolveError(err error) (int, string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			if e.message == "" {
				return e.status, err.Error()
			}
			return e.status, e.message
		}
	}

	if err == nil {
		return http.StatusInternalServerError, app.MsgInternalServerError
	}
	return http.StatusInternalServerError, err.Error()
}

// writeError logs err with the request logger and writes {"error": message}
// with the status mapped from err.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := resolveError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
