package validators

import (
	"context"
	"net/url"

	"github.com/MKhiriev/music-box/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldSongID targets the catalog song identifier of a favorite.
	FieldSongID = "song_id"

	// FieldName targets the display name of a favorite.
	FieldName = "name"

	// FieldArtist targets the artist name of a favorite.
	FieldArtist = "artist"

	// FieldAlbum targets the album name of a favorite.
	FieldAlbum = "album"

	// FieldArtworkURL targets the optional artwork image URL of a favorite.
	FieldArtworkURL = "artwork_url"

	// FieldPreviewURL targets the optional audio preview URL of a favorite.
	FieldPreviewURL = "preview_url"

	// FieldDurationMs targets the optional track duration in milliseconds.
	FieldDurationMs = "duration_ms"

	// FieldMusicUserToken targets the user-scoped music token in a link request.
	FieldMusicUserToken = "music_user_token"

	// FieldExpiresIn targets the token lifetime in a link request.
	FieldExpiresIn = "expires_in"
)

// Maximum accepted lengths for favorite fields. Values beyond these limits
// are rejected rather than truncated.
const (
	maxSongIDLength = 200
	maxTextLength   = 500
	maxURLLength    = 2000
)

// FavoriteValidator implements the Validator interface for the jukebox
// request models: CreateFavoriteRequest and MusicTokenRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type FavoriteValidator struct {
}

// NewFavoriteValidator constructs a new FavoriteValidator
// and returns it as the Validator interface.
func NewFavoriteValidator() Validator {
	return &FavoriteValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.CreateFavoriteRequest / *models.CreateFavoriteRequest
//   - models.MusicTokenRequest / *models.MusicTokenRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *FavoriteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateFavoriteRequest:
		return v.validateCreateFavoriteRequest(ctx, value, fields...)
	case *models.CreateFavoriteRequest:
		return v.validateCreateFavoriteRequest(ctx, *value, fields...)

	case models.MusicTokenRequest:
		return v.validateMusicTokenRequest(ctx, value, fields...)
	case *models.MusicTokenRequest:
		return v.validateMusicTokenRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// isValidURL reports whether raw parses as an absolute http(s) URL and
// fits within maxURLLength.
func isValidURL(raw string) bool {
	if raw == "" || len(raw) > maxURLLength {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// validateCreateFavoriteRequest validates a favorite creation payload.
//
// Default validated fields (when none specified):
// SongID, Name, Artist, Album, ArtworkURL, PreviewURL, DurationMs.
//
// Optional fields (ArtworkURL, PreviewURL, DurationMs) are only checked
// when present; a nil pointer always passes.
//
// Returns the first encountered validation error or nil.
func (v *FavoriteValidator) validateCreateFavoriteRequest(_ context.Context, request models.CreateFavoriteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSongID, FieldName, FieldArtist, FieldAlbum, FieldArtworkURL, FieldPreviewURL, FieldDurationMs}
	}

	for _, f := range fields {
		switch f {
		case FieldSongID:
			if request.SongID == "" || len(request.SongID) > maxSongIDLength {
				return ErrInvalidSongID
			}
		case FieldName:
			if request.Name == "" || len(request.Name) > maxTextLength {
				return ErrInvalidName
			}
		case FieldArtist:
			if request.Artist == "" || len(request.Artist) > maxTextLength {
				return ErrInvalidArtist
			}
		case FieldAlbum:
			if request.Album == "" || len(request.Album) > maxTextLength {
				return ErrInvalidAlbum
			}
		case FieldArtworkURL:
			if request.ArtworkURL != nil && !isValidURL(*request.ArtworkURL) {
				return ErrInvalidArtworkURL
			}
		case FieldPreviewURL:
			if request.PreviewURL != nil && !isValidURL(*request.PreviewURL) {
				return ErrInvalidPreviewURL
			}
		case FieldDurationMs:
			if request.DurationMs != nil && *request.DurationMs <= 0 {
				return ErrInvalidDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateMusicTokenRequest validates a music-account link payload.
//
// Default validated fields: MusicUserToken, ExpiresIn. A zero ExpiresIn is
// allowed (the service substitutes its default lifetime); negative values
// are rejected.
func (v *FavoriteValidator) validateMusicTokenRequest(_ context.Context, request models.MusicTokenRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldMusicUserToken, FieldExpiresIn}
	}

	for _, f := range fields {
		switch f {
		case FieldMusicUserToken:
			if request.MusicUserToken == "" {
				return ErrEmptyMusicToken
			}
		case FieldExpiresIn:
			if request.ExpiresIn < 0 {
				return ErrInvalidExpiresIn
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
