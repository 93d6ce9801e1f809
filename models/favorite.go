package models

import "time"

// Favorite is a song a user saved to their jukebox, keyed by
// (UserID, SongID). Records are immutable after creation except that a
// repeated add for the same key overwrites the whole row.
type Favorite struct {
	// UserID is the owning user's subject identifier (partition key).
	UserID string `json:"userId"`

	// SongID is the catalog identifier of the song (sort key).
	SongID string `json:"songId"`

	// Name is the song title as shown in the UI.
	Name string `json:"name"`

	// Artist is the performing artist's display name.
	Artist string `json:"artist"`

	// Album is the album title.
	Album string `json:"album"`

	// ArtworkURL optionally points at cover art.
	ArtworkURL *string `json:"artworkUrl,omitempty"`

	// PreviewURL optionally holds the preview clip URL captured at add time.
	// Playback always re-resolves a fresh URL through the catalog; this one
	// is display metadata only.
	PreviewURL *string `json:"previewUrl,omitempty"`

	// DurationMs optionally holds the track length in milliseconds.
	DurationMs *int64 `json:"durationMs,omitempty"`

	// AddedAt is when the favorite was stored.
	AddedAt time.Time `json:"addedAt"`
}

// TableName returns the name of the database table
// associated with the Favorite model.
func (f Favorite) TableName() string {
	return "favorites"
}

// CreateFavoriteRequest is the payload of POST /favorites.
// Field shapes are checked by the validators package before any write.
type CreateFavoriteRequest struct {
	SongID     string  `json:"songId"`
	Name       string  `json:"name"`
	Artist     string  `json:"artist"`
	Album      string  `json:"album"`
	ArtworkURL *string `json:"artworkUrl,omitempty"`
	PreviewURL *string `json:"previewUrl,omitempty"`
	DurationMs *int64  `json:"durationMs,omitempty"`
}

// FavoritesList is the data payload of GET /favorites.
type FavoritesList struct {
	Favorites []Favorite `json:"favorites"`

	// Count duplicates len(Favorites) so clients can validate the response
	// without iterating the slice.
	Count int `json:"count"`
}
