package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/music-box/internal/catalog"
	"github.com/MKhiriev/music-box/internal/identity"
	"github.com/MKhiriev/music-box/internal/service"
	"github.com/MKhiriev/music-box/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrMusicAccountNotLinked:    http.StatusUnauthorized,
	service.ErrMusicTokenExpired:        http.StatusUnauthorized,
	service.ErrNoFavorites:              http.StatusNotFound,
	service.ErrNoPreviewAvailable:       http.StatusNotFound,
	service.ErrCredentialsNotConfigured: http.StatusServiceUnavailable,

	store.ErrUserNotFound:     http.StatusNotFound,
	store.ErrFavoriteNotFound: http.StatusNotFound,

	catalog.ErrCatalogUnauthorized: http.StatusUnauthorized,
	catalog.ErrSongNotFound:        http.StatusNotFound,
	catalog.ErrCatalogUnavailable:  http.StatusBadGateway,

	identity.ErrTokenInvalid:      http.StatusUnauthorized,
	identity.ErrWrongTokenUse:     http.StatusUnauthorized,
	identity.ErrUnknownKeyID:      http.StatusUnauthorized,
	identity.ErrKeySetUnavailable: http.StatusServiceUnavailable,

	ErrMissingUserID:              http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrMissingAPIKey:              http.StatusUnauthorized,
	ErrInvalidAPIKey:              http.StatusUnauthorized,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrStoreUnavailable: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
