package identity

import (
	"context"

	"github.com/MKhiriev/music-box/models"
)

// Verifier validates an externally issued identity token and extracts the
// authenticated principal. Implementations must reject on any verification
// failure; there is no partial success.
type Verifier interface {
	// Verify checks rawToken's signature, issuer, expiry, and purpose.
	// Returns the principal on success or ErrTokenInvalid (possibly
	// wrapped) on any failure.
	Verify(ctx context.Context, rawToken string) (models.Principal, error)
}
