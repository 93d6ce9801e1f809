package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/service"
	"github.com/MKhiriev/music-box/internal/utils"
	"github.com/MKhiriev/music-box/models"
)

// storeMusicToken serves POST /auth/apple-music/token. The identity guard
// has already run; the target user is always the verified principal, never
// a client-supplied identifier.
func (h *Handler) storeMusicToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context on guarded route")
		h.respondError(w, ErrEmptyAuthorizationHeader)
		return
	}

	var request models.MusicTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.StoreMusicToken(ctx, principal.Subject, principal.Email, request)
	if err != nil {
		log.Err(err).Msg("storing music token failed")
		h.respondError(w, err)
		return
	}

	h.respondData(w, user, http.StatusOK)
}
