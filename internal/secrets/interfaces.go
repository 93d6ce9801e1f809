package secrets

import "context"

// Store fetches secret material by reference from an external secret store.
// Implementations are responsible for transport, authentication, and mapping
// store-level failures to the sentinel errors in this package.
type Store interface {
	// Get returns the secret material identified by ref.
	// Returns ErrSecretNotFound if the store has no such secret, or
	// ErrSecretStoreUnavailable (wrapped) for transport-level failures.
	Get(ctx context.Context, ref string) (string, error)
}
