package catalog

import "context"

// Song is the catalog's view of a single track, flattened to the fields
// the jukebox cares about.
type Song struct {
	// ID is the catalog identifier of the song.
	ID string

	// Name is the track title.
	Name string

	// ArtistName is the performing artist.
	ArtistName string

	// AlbumName is the album title.
	AlbumName string

	// DurationMs is the track length in milliseconds.
	DurationMs int64

	// ArtworkURL is the cover art URL template as published by the catalog
	// (may contain {w}x{h} placeholders).
	ArtworkURL string

	// PreviewURL is the first preview clip URL, or empty when the catalog
	// offers no preview for this track.
	PreviewURL string
}

// Client resolves song ids against the external catalog.
type Client interface {
	// GetSong fetches the catalog entry for songID.
	//
	// developerToken asserts this service's identity; musicUserToken
	// asserts the end user's linked account. Returns
	// ErrCatalogUnauthorized when the catalog rejects the credentials,
	// ErrSongNotFound when the id resolves to nothing, and
	// ErrCatalogUnavailable (wrapped, with status context) for any other
	// failure.
	GetSong(ctx context.Context, songID, developerToken, musicUserToken string) (Song, error)
}
