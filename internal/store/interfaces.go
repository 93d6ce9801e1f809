// Package store implements the record store behind the jukebox: user rows
// holding linked music-account tokens, and favorite rows keyed by
// (user, song).
//
// The repository interfaces keep a generic get/put/delete/query-by-partition
// contract so the backing store can be swapped; the production
// implementation is PostgreSQL, and an in-memory implementation backs tests
// and local development.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/music-box/models"
)

// UserRepository persists user rows. Rows are created lazily on first
// token store and are never deleted.
type UserRepository interface {
	// GetUser returns the user row for userID.
	// Returns ErrUserNotFound when no row exists.
	GetUser(ctx context.Context, userID string) (models.User, error)

	// UpsertMusicToken creates the user row if absent and stores the
	// linked music-user token with its expiry, bumping UpdatedAt.
	// Returns the stored row.
	UpsertMusicToken(ctx context.Context, userID, email, musicUserToken string, tokenExpiry time.Time) (models.User, error)
}

// FavoriteRepository persists favorite rows keyed by (userID, songID).
type FavoriteRepository interface {
	// ListByUser returns all favorites owned by userID; an empty slice
	// when there are none.
	ListByUser(ctx context.Context, userID string) ([]models.Favorite, error)

	// Get returns the favorite under the composite key.
	// Returns ErrFavoriteNotFound when no row exists.
	Get(ctx context.Context, userID, songID string) (models.Favorite, error)

	// Put stores favorite, overwriting any existing row under the same
	// composite key (repeat adds are idempotent).
	Put(ctx context.Context, favorite models.Favorite) error

	// Delete removes the row under the composite key. Deleting an absent
	// row is not an error.
	Delete(ctx context.Context, userID, songID string) error
}
