package models

import "time"

// APIResponse is the uniform JSON envelope returned by every endpoint.
// Success is always present; exactly one of Data, Error, or Message
// usually accompanies it.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// PlayResponse is the payload handed to device clients by the /play
// routes: the favorite's display metadata merged with a freshly resolved
// stream URL.
type PlayResponse struct {
	SongID     string  `json:"songId"`
	Name       string  `json:"name"`
	Artist     string  `json:"artist"`
	StreamURL  string  `json:"streamUrl"`
	ArtworkURL *string `json:"artworkUrl,omitempty"`
	DurationMs *int64  `json:"durationMs,omitempty"`
}

// DeveloperTokenResponse is the payload of GET /apple-music/token,
// consumed by the browser-side MusicKit SDK.
type DeveloperTokenResponse struct {
	Token string `json:"token"`
}

// DependencyHealth describes the health of a single external collaborator
// as observed by the health check.
type DependencyHealth struct {
	Name      string `json:"name"`
	Status    string `json:"status"`
	LatencyMs int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status       string             `json:"status"`
	Timestamp    time.Time          `json:"timestamp"`
	Version      string             `json:"version"`
	Dependencies []DependencyHealth `json:"dependencies,omitempty"`
}

// Health status values.
const (
	HealthStatusOK       = "ok"
	HealthStatusDegraded = "degraded"
	DependencyHealthy    = "healthy"
	DependencyUnhealthy  = "unhealthy"
)
