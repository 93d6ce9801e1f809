package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/music-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryUserRepository_UpsertThenGet checks that a stored music token
// round-trips through the in-memory repository.
func TestMemoryUserRepository_UpsertThenGet(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour)

	stored, err := repo.UpsertMusicToken(ctx, "user-1", "john@example.com", "amu-token", expiry)
	require.NoError(t, err)
	assert.Equal(t, "user-1", stored.UserID)
	assert.Equal(t, "amu-token", stored.MusicUserToken)

	got, err := repo.GetUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored.MusicUserToken, got.MusicUserToken)
	require.NotNil(t, got.TokenExpiry)
	assert.WithinDuration(t, expiry, *got.TokenExpiry, time.Second)
}

// TestMemoryUserRepository_GetMissing checks the not-found sentinel.
func TestMemoryUserRepository_GetMissing(t *testing.T) {
	repo := NewMemoryUserRepository()

	_, err := repo.GetUser(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrUserNotFound))
}

// TestMemoryUserRepository_UpsertOverwrites checks that a second store
// replaces the token but keeps the creation timestamp.
func TestMemoryUserRepository_UpsertOverwrites(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	first, err := repo.UpsertMusicToken(ctx, "user-1", "john@example.com", "old-token", time.Now())
	require.NoError(t, err)

	second, err := repo.UpsertMusicToken(ctx, "user-1", "john@example.com", "new-token", time.Now().Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, "new-token", second.MusicUserToken)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
}

// TestMemoryFavoriteRepository_PutGetDelete walks the whole favorite
// lifecycle: add, read back, remove, read again.
func TestMemoryFavoriteRepository_PutGetDelete(t *testing.T) {
	repo := NewMemoryFavoriteRepository()
	ctx := context.Background()

	favorite := models.Favorite{
		UserID:  "user-1",
		SongID:  "song-1",
		Name:    "Song",
		Artist:  "Artist",
		Album:   "Album",
		AddedAt: time.Now(),
	}

	require.NoError(t, repo.Put(ctx, favorite))

	got, err := repo.Get(ctx, "user-1", "song-1")
	require.NoError(t, err)
	assert.Equal(t, favorite, got)

	require.NoError(t, repo.Delete(ctx, "user-1", "song-1"))

	_, err = repo.Get(ctx, "user-1", "song-1")
	assert.True(t, errors.Is(err, ErrFavoriteNotFound))
}

// TestMemoryFavoriteRepository_DeleteAbsent checks that removing a row
// that was never added succeeds.
func TestMemoryFavoriteRepository_DeleteAbsent(t *testing.T) {
	repo := NewMemoryFavoriteRepository()

	assert.NoError(t, repo.Delete(context.Background(), "user-1", "never-added"))
}

// TestMemoryFavoriteRepository_ListIsolatesUsers checks partition
// isolation between two users.
func TestMemoryFavoriteRepository_ListIsolatesUsers(t *testing.T) {
	repo := NewMemoryFavoriteRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Favorite{UserID: "user-1", SongID: "song-1"}))
	require.NoError(t, repo.Put(ctx, models.Favorite{UserID: "user-1", SongID: "song-2"}))
	require.NoError(t, repo.Put(ctx, models.Favorite{UserID: "user-2", SongID: "song-3"}))

	mine, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	theirs, err := repo.ListByUser(ctx, "user-2")
	require.NoError(t, err)
	assert.Len(t, theirs, 1)
	assert.Equal(t, "song-3", theirs[0].SongID)

	nobody, err := repo.ListByUser(ctx, "user-3")
	require.NoError(t, err)
	assert.Empty(t, nobody)
}

// TestMemoryFavoriteRepository_PutOverwrites checks that a repeat add
// under the same key replaces the stored row.
func TestMemoryFavoriteRepository_PutOverwrites(t *testing.T) {
	repo := NewMemoryFavoriteRepository()
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, models.Favorite{UserID: "user-1", SongID: "song-1", Name: "Old"}))
	require.NoError(t, repo.Put(ctx, models.Favorite{UserID: "user-1", SongID: "song-1", Name: "New"}))

	got, err := repo.Get(ctx, "user-1", "song-1")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)

	list, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
