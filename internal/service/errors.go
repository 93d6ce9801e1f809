package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrCredentialsNotConfigured is returned when the developer-token
	// signing credentials are absent both from config and the secret store.
	ErrCredentialsNotConfigured = errors.New("developer token credentials are not configured")

	// ErrMusicAccountNotLinked is returned by playback resolution when the
	// user never stored a music-user token.
	ErrMusicAccountNotLinked = errors.New("user has not connected Apple Music account")

	// ErrMusicTokenExpired is returned when the stored music-user token is
	// past its recorded expiry and must be re-linked by the user.
	ErrMusicTokenExpired = errors.New("music user token expired")

	// ErrNoFavorites is returned by random selection over an empty
	// collection.
	ErrNoFavorites = errors.New("no favorites found")

	// ErrNoPreviewAvailable is returned when the catalog knows the song but
	// publishes no preview clip for it.
	ErrNoPreviewAvailable = errors.New("no preview available for this song")
)
