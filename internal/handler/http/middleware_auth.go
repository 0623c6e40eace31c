package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-project-hub/internal/app"
	"github.com/MKhiriev/go-project-hub/internal/logger"
	"github.com/MKhiriev/go-project-hub/internal/utils"
	"github.com/MKhiriev/go-project-hub/models"
	"github.com/rs/zerolog"
)

// identityHandlerFunc is a handler that receives the verified caller identity
// explicitly instead of fishing it out of the request context.
type identityHandlerFunc func(w http.ResponseWriter, r *http.Request, identity models.Claims)

const (
	rejectMissingToken = "missing_token"
	rejectInvalidToken = "invalid_token"
)

func (h *Handler) auth(next identityHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := getTokenFromAuthHeader(r)
		if err != nil {
			log.Warn().Err(err).Msg("request without usable token")
			h.rejectAuth(w, rejectMissingToken, app.MsgTokenRequired, http.StatusUnauthorized)
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("token verification failed")
			h.rejectAuth(w, rejectInvalidToken, app.MsgTokenIsExpiredOrInvalid, http.StatusForbidden)
			return
		}

		identity := token.Claims
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", identity.UserID)
		})

		next(w, r.WithContext(log.WithContext(r.Context())), identity)
	}
}

func (h *Handler) rejectAuth(w http.ResponseWriter, reason, message string, status int) {
	if h.metrics != nil {
		h.metrics.AuthRejected(reason)
	}
	utils.WriteMessage(w, message, status)
}

// getTokenFromAuthHeader returns the second whitespace-separated segment of
// the Authorization header. The scheme word itself is not checked.
func getTokenFromAuthHeader(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	parts := strings.Fields(header)
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
