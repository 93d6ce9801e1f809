package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/music-box/internal/catalog"
	"github.com/MKhiriev/music-box/internal/service"
	"github.com/MKhiriev/music-box/internal/store"
	"github.com/MKhiriev/music-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPlaySong_Success checks the happy path returns the resolved stream.
func TestPlaySong_Success(t *testing.T) {
	stubs := newStubServices()
	var gotUserID, gotSongID string
	stubs.play.resolveFn = func(_ context.Context, userID, songID string) (models.PlayResponse, error) {
		gotUserID, gotSongID = userID, songID
		return models.PlayResponse{SongID: songID, StreamURL: "https://example.com/fresh.m4a"}, nil
	}
	h := newTestHandler(stubs)

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/1440857781?userId=user-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "1440857781", gotSongID)

	var response models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
}

// TestPlaySong_MissingUserID checks 400 when the userId parameter is
// absent.
func TestPlaySong_MissingUserID(t *testing.T) {
	h := newTestHandler(newStubServices())

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/1440857781"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestPlayRandom_MissingUserID checks 400 on the random route as well.
func TestPlayRandom_MissingUserID(t *testing.T) {
	h := newTestHandler(newStubServices())

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/random"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestPlaySong_AccountNotLinked checks an unlinked account is an
// authorization failure, 401 with the explanation in the envelope.
func TestPlaySong_AccountNotLinked(t *testing.T) {
	stubs := newStubServices()
	stubs.play.resolveFn = func(_ context.Context, _, _ string) (models.PlayResponse, error) {
		return models.PlayResponse{}, service.ErrMusicAccountNotLinked
	}
	h := newTestHandler(stubs)

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/1440857781?userId=user-1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response models.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Error, "not connected")
}

// TestPlaySong_ExpiredToken checks the expired-token sentinel maps to 401.
func TestPlaySong_ExpiredToken(t *testing.T) {
	stubs := newStubServices()
	stubs.play.resolveFn = func(_ context.Context, _, _ string) (models.PlayResponse, error) {
		return models.PlayResponse{}, service.ErrMusicTokenExpired
	}
	h := newTestHandler(stubs)

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/1440857781?userId=user-1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestPlaySong_FavoriteNotFound checks 404 for a song outside the user's
// collection.
func TestPlaySong_FavoriteNotFound(t *testing.T) {
	stubs := newStubServices()
	stubs.play.resolveFn = func(_ context.Context, _, _ string) (models.PlayResponse, error) {
		return models.PlayResponse{}, store.ErrFavoriteNotFound
	}
	h := newTestHandler(stubs)

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/1440857781?userId=user-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestPlaySong_NoPreview checks 404 when the catalog offers no preview.
func TestPlaySong_NoPreview(t *testing.T) {
	stubs := newStubServices()
	stubs.play.resolveFn = func(_ context.Context, _, _ string) (models.PlayResponse, error) {
		return models.PlayResponse{}, service.ErrNoPreviewAvailable
	}
	h := newTestHandler(stubs)

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/1440857781?userId=user-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestPlaySong_CatalogOutage checks 502 when the catalog itself fails.
func TestPlaySong_CatalogOutage(t *testing.T) {
	stubs := newStubServices()
	stubs.play.resolveFn = func(_ context.Context, _, _ string) (models.PlayResponse, error) {
		return models.PlayResponse{}, catalog.ErrCatalogUnavailable
	}
	h := newTestHandler(stubs)

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/1440857781?userId=user-1"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

// TestPlayRandom_EmptyCollection checks 404 for a user with no favorites.
func TestPlayRandom_EmptyCollection(t *testing.T) {
	stubs := newStubServices()
	stubs.play.resolveRandomFn = func(_ context.Context, _ string) (models.PlayResponse, error) {
		return models.PlayResponse{}, service.ErrNoFavorites
	}
	h := newTestHandler(stubs)

	rec := serve(t, h, deviceRequest(http.MethodGet, "/play/random?userId=user-1"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
