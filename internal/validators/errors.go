package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidSongID     = errors.New("song id is required and must not exceed 200 characters")
	ErrInvalidName       = errors.New("name is required and must not exceed 500 characters")
	ErrInvalidArtist     = errors.New("artist is required and must not exceed 500 characters")
	ErrInvalidAlbum      = errors.New("album is required and must not exceed 500 characters")
	ErrInvalidArtworkURL = errors.New("artwork url must be a valid url of at most 2000 characters")
	ErrInvalidPreviewURL = errors.New("preview url must be a valid url of at most 2000 characters")
	ErrInvalidDuration   = errors.New("duration must be a positive number of milliseconds")
	ErrEmptyMusicToken   = errors.New("music user token is required")
	ErrInvalidExpiresIn  = errors.New("expires in must not be negative")
)
