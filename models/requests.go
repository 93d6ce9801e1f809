package models

// MusicTokenRequest is the payload of POST /auth/apple-music/token: the
// music-user token the browser obtained from the MusicKit authorization
// flow, plus its advertised lifetime in seconds.
type MusicTokenRequest struct {
	MusicUserToken string `json:"musicUserToken"`

	// ExpiresIn is the token lifetime in seconds. Zero means the client
	// did not report one; the service substitutes a 24h default.
	ExpiresIn int64 `json:"expiresIn,omitempty"`
}
