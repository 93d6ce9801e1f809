package secrets

import "errors"

// Sentinel errors returned by Store implementations. Callers should use
// [errors.Is] to match against them.
var (
	// ErrSecretNotFound is returned when the store has no secret under the
	// requested reference.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrSecretStoreUnavailable is returned (wrapped) when the store cannot
	// be reached or answers with an unexpected status.
	ErrSecretStoreUnavailable = errors.New("secret store unavailable")

	// ErrNoStoreConfigured is returned when a secret reference is used but
	// no secret store endpoint was configured.
	ErrNoStoreConfigured = errors.New("no secret store configured")
)
