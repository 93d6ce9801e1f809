package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/music-box/models"
)

// MemoryUserRepository is an in-memory [UserRepository] used by tests and
// local development. Safe for concurrent use.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) GetUser(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *MemoryUserRepository) UpsertMusicToken(_ context.Context, userID, email, musicUserToken string, tokenExpiry time.Time) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	user, ok := r.users[userID]
	if !ok {
		user = models.User{UserID: userID, CreatedAt: now}
	}
	user.Email = email
	user.MusicUserToken = musicUserToken
	expiry := tokenExpiry
	user.TokenExpiry = &expiry
	user.UpdatedAt = now

	r.users[userID] = user
	return user, nil
}

// MemoryFavoriteRepository is an in-memory [FavoriteRepository] used by
// tests and local development. Safe for concurrent use.
type MemoryFavoriteRepository struct {
	mu        sync.RWMutex
	favorites map[string]map[string]models.Favorite // userID -> songID -> favorite
}

// NewMemoryFavoriteRepository creates an empty in-memory favorite
// repository.
func NewMemoryFavoriteRepository() *MemoryFavoriteRepository {
	return &MemoryFavoriteRepository{favorites: make(map[string]map[string]models.Favorite)}
}

func (r *MemoryFavoriteRepository) ListByUser(_ context.Context, userID string) ([]models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.Favorite, 0, len(r.favorites[userID]))
	for _, favorite := range r.favorites[userID] {
		list = append(list, favorite)
	}
	return list, nil
}

func (r *MemoryFavoriteRepository) Get(_ context.Context, userID, songID string) (models.Favorite, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	favorite, ok := r.favorites[userID][songID]
	if !ok {
		return models.Favorite{}, ErrFavoriteNotFound
	}
	return favorite, nil
}

func (r *MemoryFavoriteRepository) Put(_ context.Context, favorite models.Favorite) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.favorites[favorite.UserID] == nil {
		r.favorites[favorite.UserID] = make(map[string]models.Favorite)
	}
	r.favorites[favorite.UserID][favorite.SongID] = favorite
	return nil
}

func (r *MemoryFavoriteRepository) Delete(_ context.Context, userID, songID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.favorites[userID], songID)
	return nil
}
