// Package identity verifies bearer tokens issued by the external identity
// provider.
//
// The verifier checks a token's RS256 signature against the provider's
// published JWKS document (fetched lazily, cached by key id, and refreshed
// at a bounded rate), validates the issuer claim against the configured
// user pool, and requires the token purpose to be "id" or "access". On
// success it yields a [models.Principal]; any failure rejects the token
// with no partial result.
package identity
