package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/music-box/internal/logger"
)

// playRandom serves GET /play/random. Device clients carry no user
// session, so the target user arrives as the userId query parameter and
// the api-key guard vouches for the caller.
func (h *Handler) playRandom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		log.Err(ErrMissingUserID).Send()
		h.respondError(w, ErrMissingUserID)
		return
	}

	response, err := h.services.PlayService.ResolveRandom(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("random playback resolution failed")
		h.respondError(w, err)
		return
	}

	h.respondData(w, response, http.StatusOK)
}

// playSong serves GET /play/{songId}.
func (h *Handler) playSong(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		log.Err(ErrMissingUserID).Send()
		h.respondError(w, ErrMissingUserID)
		return
	}

	songID := chi.URLParam(r, "songId")

	response, err := h.services.PlayService.Resolve(ctx, userID, songID)
	if err != nil {
		log.Err(err).Str("userID", userID).Str("songID", songID).Msg("playback resolution failed")
		h.respondError(w, err)
		return
	}

	h.respondData(w, response, http.StatusOK)
}
