// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/music-box/internal/catalog"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/store"
	"github.com/MKhiriev/music-box/models"
)

// playService is the concrete implementation of PlayService. Playback
// resolution is a join: the stored favorite supplies display metadata, the
// catalog supplies a fresh preview URL minted moments before playback.
// Stored preview URLs are never served because catalog links go stale.
type playService struct {
	favorites     FavoriteService
	auth          AuthService
	tokens        DeveloperTokenService
	catalogClient catalog.Client
	logger        *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewPlayService constructs a PlayService joining the favorites collection
// with the catalog client.
func NewPlayService(favorites FavoriteService, auth AuthService, tokens DeveloperTokenService, catalogClient catalog.Client, logger *logger.Logger) PlayService {
	return &playService{
		favorites:     favorites,
		auth:          auth,
		tokens:        tokens,
		catalogClient: catalogClient,
		logger:        logger,
		now:           time.Now,
	}
}

// Resolve prepares playback for a specific favorite.
//
// The flow is strict: favorite lookup, then music-account checks, then the
// catalog call. Errors surface as matchable sentinels:
//   - store.ErrFavoriteNotFound — the song is not in the user's collection.
//   - ErrMusicAccountNotLinked  — no music-user token is stored.
//   - ErrMusicTokenExpired      — the stored token is past its expiry.
//   - catalog.ErrCatalogUnauthorized / catalog.ErrSongNotFound — from the
//     catalog call.
//   - ErrNoPreviewAvailable     — the catalog has the song but no preview.
func (p *playService) Resolve(ctx context.Context, userID, songID string) (models.PlayResponse, error) {
	if userID == "" || songID == "" {
		return models.PlayResponse{}, ErrInvalidDataProvided
	}

	favorite, err := p.favorites.Get(ctx, userID, songID)
	if err != nil {
		return models.PlayResponse{}, err
	}

	return p.resolveFavorite(ctx, userID, favorite)
}

// ResolveRandom prepares playback for a random favorite from the user's
// collection. Returns ErrNoFavorites when the collection is empty;
// otherwise the error contract matches Resolve.
func (p *playService) ResolveRandom(ctx context.Context, userID string) (models.PlayResponse, error) {
	if userID == "" {
		return models.PlayResponse{}, ErrInvalidDataProvided
	}

	favorite, err := p.favorites.GetRandom(ctx, userID)
	if err != nil {
		return models.PlayResponse{}, err
	}

	return p.resolveFavorite(ctx, userID, favorite)
}

// resolveFavorite runs the music-account checks and the catalog call for
// an already-selected favorite, then merges stored metadata with the fresh
// preview URL.
func (p *playService) resolveFavorite(ctx context.Context, userID string, favorite models.Favorite) (models.PlayResponse, error) {
	log := logger.FromContext(ctx)

	user, err := p.auth.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.PlayResponse{}, ErrMusicAccountNotLinked
		}
		return models.PlayResponse{}, err
	}
	if !user.HasMusicToken() {
		log.Info().Str("userID", userID).Msg("playback refused: no linked music account")
		return models.PlayResponse{}, ErrMusicAccountNotLinked
	}
	if user.TokenExpiry != nil && user.TokenExpiry.Before(p.now()) {
		log.Info().Str("userID", userID).Time("expiry", *user.TokenExpiry).Msg("playback refused: music token expired")
		return models.PlayResponse{}, ErrMusicTokenExpired
	}

	developerToken, err := p.tokens.DeveloperToken(ctx)
	if err != nil {
		return models.PlayResponse{}, err
	}

	song, err := p.catalogClient.GetSong(ctx, favorite.SongID, developerToken, user.MusicUserToken)
	if err != nil {
		log.Err(err).Str("userID", userID).Str("songID", favorite.SongID).Msg("catalog lookup for playback failed")
		return models.PlayResponse{}, fmt.Errorf("catalog lookup for playback failed: %w", err)
	}
	if song.PreviewURL == "" {
		log.Info().Str("songID", favorite.SongID).Msg("playback refused: catalog has no preview for song")
		return models.PlayResponse{}, ErrNoPreviewAvailable
	}

	return models.PlayResponse{
		SongID:     favorite.SongID,
		Name:       favorite.Name,
		Artist:     favorite.Artist,
		StreamURL:  song.PreviewURL,
		ArtworkURL: favorite.ArtworkURL,
		DurationMs: favorite.DurationMs,
	}, nil
}
