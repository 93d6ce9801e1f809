package service

import (
	"context"

	"github.com/MKhiriev/music-box/models"
)

// DeveloperTokenService issues and caches the signed developer token used
// to authenticate against the music catalog.
type DeveloperTokenService interface {
	// DeveloperToken returns a currently valid signed token, minting a new
	// one when the cached token is absent or past its reissue watermark.
	DeveloperToken(ctx context.Context) (string, error)
}

// AuthService manages the user rows behind the identity guard: lazy row
// creation and the linked music-user token.
type AuthService interface {
	StoreMusicToken(ctx context.Context, userID, email string, request models.MusicTokenRequest) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
}

// FavoriteService implements the favorites CRUD surface on top of the
// favorite repository.
type FavoriteService interface {
	List(ctx context.Context, userID string) (models.FavoritesList, error)
	Add(ctx context.Context, userID string, request models.CreateFavoriteRequest) (models.Favorite, error)
	Get(ctx context.Context, userID, songID string) (models.Favorite, error)
	Remove(ctx context.Context, userID, songID string) error

	// GetRandom returns a uniformly chosen favorite from the user's
	// collection. Returns ErrNoFavorites for an empty collection.
	GetRandom(ctx context.Context, userID string) (models.Favorite, error)
}

// PlayService joins a stored favorite with a freshly resolved preview URL
// so device clients always stream from a live catalog link.
type PlayService interface {
	Resolve(ctx context.Context, userID, songID string) (models.PlayResponse, error)
	ResolveRandom(ctx context.Context, userID string) (models.PlayResponse, error)
}

// HealthService reports service liveness and the state of external
// collaborators.
type HealthService interface {
	Check(ctx context.Context) models.HealthResponse
}

// StorePinger is the slice of the record store the health check depends on.
type StorePinger interface {
	Ping(ctx context.Context) error
}
