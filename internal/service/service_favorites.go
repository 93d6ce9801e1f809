package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/store"
	"github.com/MKhiriev/music-box/internal/validators"
	"github.com/MKhiriev/music-box/models"
)

// favoriteService is the concrete implementation of FavoriteService.
// Writes are validated before they reach the repository; reads pass
// through with error wrapping only.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	validator          validators.Validator
	logger             *logger.Logger

	// now stamps AddedAt; swappable for tests.
	now func() time.Time

	// pick selects a random index in [0, n); swappable for tests.
	pick func(n int) int
}

// NewFavoriteService constructs a FavoriteService wired to the given
// FavoriteRepository and request validator.
func NewFavoriteService(favoriteRepository store.FavoriteRepository, validator validators.Validator, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		validator:          validator,
		logger:             logger,
		now:                time.Now,
		pick:               rand.Intn,
	}
}

// List returns all of the user's favorites with a count clients can check
// against the slice length.
func (f *favoriteService) List(ctx context.Context, userID string) (models.FavoritesList, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.FavoritesList{}, ErrInvalidDataProvided
	}

	favorites, err := f.favoriteRepository.ListByUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("listing favorites ended with error")
		return models.FavoritesList{}, fmt.Errorf("listing favorites ended with error: %w", err)
	}

	return models.FavoritesList{Favorites: favorites, Count: len(favorites)}, nil
}

// Add validates the request and stores the favorite under
// (userID, request.SongID). A repeated add for the same key overwrites the
// stored row.
//
// Returns ErrInvalidDataProvided (wrapping the specific validator error)
// when the payload fails validation.
func (f *favoriteService) Add(ctx context.Context, userID string, request models.CreateFavoriteRequest) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Favorite{}, ErrInvalidDataProvided
	}
	if err := f.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("userID", userID).Str("songID", request.SongID).Msg("favorite failed validation")
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	favorite := models.Favorite{
		UserID:     userID,
		SongID:     request.SongID,
		Name:       request.Name,
		Artist:     request.Artist,
		Album:      request.Album,
		ArtworkURL: request.ArtworkURL,
		PreviewURL: request.PreviewURL,
		DurationMs: request.DurationMs,
		AddedAt:    f.now(),
	}

	if err := f.favoriteRepository.Put(ctx, favorite); err != nil {
		log.Err(err).Str("userID", userID).Str("songID", favorite.SongID).Msg("storing favorite ended with error")
		return models.Favorite{}, fmt.Errorf("storing favorite ended with error: %w", err)
	}

	return favorite, nil
}

// Get returns the favorite under (userID, songID). Storage errors
// (including store.ErrFavoriteNotFound) are passed through wrapped.
func (f *favoriteService) Get(ctx context.Context, userID, songID string) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	if userID == "" || songID == "" {
		return models.Favorite{}, ErrInvalidDataProvided
	}

	favorite, err := f.favoriteRepository.Get(ctx, userID, songID)
	if err != nil {
		log.Err(err).Str("userID", userID).Str("songID", songID).Msg("favorite lookup failed")
		return models.Favorite{}, fmt.Errorf("favorite lookup failed: %w", err)
	}

	return favorite, nil
}

// Remove deletes the favorite under (userID, songID). Removing an absent
// favorite succeeds.
func (f *favoriteService) Remove(ctx context.Context, userID, songID string) error {
	log := logger.FromContext(ctx)

	if userID == "" || songID == "" {
		return ErrInvalidDataProvided
	}

	if err := f.favoriteRepository.Delete(ctx, userID, songID); err != nil {
		log.Err(err).Str("userID", userID).Str("songID", songID).Msg("removing favorite ended with error")
		return fmt.Errorf("removing favorite ended with error: %w", err)
	}

	return nil
}

// GetRandom picks a uniformly random favorite from the user's collection.
// Returns ErrNoFavorites when the collection is empty.
func (f *favoriteService) GetRandom(ctx context.Context, userID string) (models.Favorite, error) {
	log := logger.FromContext(ctx)

	list, err := f.List(ctx, userID)
	if err != nil {
		return models.Favorite{}, err
	}
	if list.Count == 0 {
		log.Info().Str("userID", userID).Msg("random pick requested over empty collection")
		return models.Favorite{}, ErrNoFavorites
	}

	return list.Favorites[f.pick(list.Count)], nil
}
