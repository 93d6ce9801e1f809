package catalog

import "errors"

// Sentinel errors returned by [Client.GetSong]. Callers should use
// [errors.Is] to match against them.
var (
	// ErrCatalogUnauthorized is returned when the catalog answers 401,
	// meaning the developer token or the music-user token is expired or
	// invalid.
	ErrCatalogUnauthorized = errors.New("catalog rejected credentials")

	// ErrSongNotFound is returned when the catalog has no entry for the
	// requested song id.
	ErrSongNotFound = errors.New("song not found in catalog")

	// ErrCatalogUnavailable is returned (wrapped, with status context) for
	// any other non-2xx catalog response or transport failure.
	ErrCatalogUnavailable = errors.New("catalog request failed")
)
