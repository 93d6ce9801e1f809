package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/store"
	"github.com/MKhiriev/music-box/models"
)

// defaultMusicTokenLifetime is assumed when the client does not report how
// long its music-user token stays valid.
const defaultMusicTokenLifetime = 24 * time.Hour

// authService is the concrete implementation of AuthService. It owns the
// user rows created lazily on first authenticated contact and the linked
// music-user token stored in them.
type authService struct {
	userRepository store.UserRepository
	logger         *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewAuthService constructs an AuthService wired to the given
// UserRepository.
func NewAuthService(userRepository store.UserRepository, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		logger:         logger,
		now:            time.Now,
	}
}

// StoreMusicToken persists the music-user token for the authenticated
// user, creating the row if this is the user's first contact.
//
// A zero ExpiresIn falls back to a 24h lifetime. Returns
// ErrInvalidDataProvided for an empty token or a wrapped storage error if
// persistence fails.
func (a *authService) StoreMusicToken(ctx context.Context, userID, email string, request models.MusicTokenRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" || request.MusicUserToken == "" {
		log.Error().Str("userID", userID).Msg("invalid music token data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	lifetime := defaultMusicTokenLifetime
	if request.ExpiresIn > 0 {
		lifetime = time.Duration(request.ExpiresIn) * time.Second
	}
	expiry := a.now().Add(lifetime)

	user, err := a.userRepository.UpsertMusicToken(ctx, userID, email, request.MusicUserToken, expiry)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("storing music token ended with error")
		return models.User{}, fmt.Errorf("storing music token ended with error: %w", err)
	}

	return user, nil
}

// GetUser returns the user row for userID.
//
// Storage errors (including store.ErrUserNotFound) are passed through
// wrapped so callers can match them with errors.Is.
func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID).Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}
