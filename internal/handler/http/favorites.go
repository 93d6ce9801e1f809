package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/service"
	"github.com/MKhiriev/music-box/internal/utils"
	"github.com/MKhiriev/music-box/models"
)

// listFavorites serves GET /favorites.
func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context on guarded route")
		h.respondError(w, ErrEmptyAuthorizationHeader)
		return
	}

	list, err := h.services.FavoriteService.List(ctx, principal.Subject)
	if err != nil {
		log.Err(err).Msg("listing favorites failed")
		h.respondError(w, err)
		return
	}

	h.respondData(w, list, http.StatusOK)
}

// addFavorite serves POST /favorites.
func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context on guarded route")
		h.respondError(w, ErrEmptyAuthorizationHeader)
		return
	}

	var request models.CreateFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.respondError(w, service.ErrInvalidDataProvided)
		return
	}

	favorite, err := h.services.FavoriteService.Add(ctx, principal.Subject, request)
	if err != nil {
		log.Err(err).Str("songID", request.SongID).Msg("adding favorite failed")
		h.respondError(w, err)
		return
	}

	h.respondData(w, favorite, http.StatusCreated)
}

// getFavorite serves GET /favorites/{songId}.
func (h *Handler) getFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context on guarded route")
		h.respondError(w, ErrEmptyAuthorizationHeader)
		return
	}

	songID := chi.URLParam(r, "songId")

	favorite, err := h.services.FavoriteService.Get(ctx, principal.Subject, songID)
	if err != nil {
		log.Err(err).Str("songID", songID).Msg("favorite lookup failed")
		h.respondError(w, err)
		return
	}

	h.respondData(w, favorite, http.StatusOK)
}

// removeFavorite serves DELETE /favorites/{songId}. Removing a favorite
// that is not in the collection still reports success.
func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	principal, ok := utils.GetPrincipalFromContext(ctx)
	if !ok {
		log.Error().Msg("no principal in context on guarded route")
		h.respondError(w, ErrEmptyAuthorizationHeader)
		return
	}

	songID := chi.URLParam(r, "songId")

	if err := h.services.FavoriteService.Remove(ctx, principal.Subject, songID); err != nil {
		log.Err(err).Str("songID", songID).Msg("removing favorite failed")
		h.respondError(w, err)
		return
	}

	h.respondMessage(w, "favorite removed", http.StatusOK)
}
