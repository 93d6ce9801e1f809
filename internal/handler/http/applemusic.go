package http

import (
	"net/http"

	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/models"
)

// developerToken serves GET /apple-music/token. The route is public: the
// token only unlocks catalog metadata and the browser-side MusicKit SDK
// needs it before the user signs in.
func (h *Handler) developerToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, err := h.services.DeveloperTokenService.DeveloperToken(ctx)
	if err != nil {
		log.Err(err).Msg("developer token request failed")
		h.respondError(w, err)
		return
	}

	h.respondData(w, models.DeveloperTokenResponse{Token: token}, http.StatusOK)
}
