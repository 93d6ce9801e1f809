package models

import "time"

// User represents an account record owned by the identity provider.
// The backend never creates credentials for a user; the row exists only to
// hold the linked Apple Music token and bookkeeping timestamps. Rows are
// created on first authenticated contact and are never deleted.
type User struct {
	// UserID is the identity provider's subject identifier ("sub" claim).
	// It is the partition key of the users table.
	UserID string `json:"userId"`

	// Email is the address the identity provider reported for the subject.
	Email string `json:"email"`

	// MusicUserToken is the per-user credential obtained through the
	// client-side MusicKit authorization flow. It is stored server-side so
	// the backend can call the catalog on the user's behalf. Empty when the
	// user has not connected an Apple Music account.
	MusicUserToken string `json:"-"`

	// TokenExpiry is the moment MusicUserToken stops being usable.
	// Nil when no token is stored or the token carried no expiry.
	TokenExpiry *time.Time `json:"tokenExpiry,omitempty"`

	// CreatedAt is when the row was first written.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped every time the music token is stored.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasMusicToken reports whether the user has a linked Apple Music account.
func (u User) HasMusicToken() bool {
	return u.MusicUserToken != ""
}
