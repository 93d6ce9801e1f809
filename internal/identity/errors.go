// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import "errors"

// Sentinel errors returned during token verification. Callers can match
// against them with [errors.Is].
var (
	// ErrTokenInvalid is returned for any token that fails signature,
	// issuer, expiry, or claim validation.
	ErrTokenInvalid = errors.New("identity token is invalid")

	// ErrWrongTokenUse is returned when the token's purpose claim is
	// neither "id" nor "access".
	ErrWrongTokenUse = errors.New("identity token has wrong token_use")

	// ErrUnknownKeyID is returned when the token references a signing key
	// the provider's published key set does not contain.
	ErrUnknownKeyID = errors.New("unknown signing key id")

	// ErrKeySetUnavailable is returned when the key set cannot be fetched
	// or the refresh rate limit is exhausted.
	ErrKeySetUnavailable = errors.New("identity key set unavailable")
)
