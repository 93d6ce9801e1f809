// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/models"
	"github.com/golang-jwt/jwt/v5"
)

// poolClaims is the claim set carried by the identity provider's tokens.
type poolClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	TokenUse      string `json:"token_use"`
}

// poolVerifier is the JWKS-backed implementation of [Verifier] for a single
// identity provider user pool.
type poolVerifier struct {
	issuer string
	keys   *keySet
	logger *logger.Logger
}

// NewVerifier constructs a [Verifier] for the user pool described by cfg.
// The pool's key set is fetched lazily on first use.
func NewVerifier(cfg config.Identity, logger *logger.Logger) Verifier {
	issuer := cfg.Issuer()
	return newVerifier(issuer, issuer+"/.well-known/jwks.json", cfg.JWKSRequestsPerMinute, logger)
}

// newVerifier wires an explicit issuer and JWKS endpoint; tests use it to
// point the verifier at a fake provider.
func newVerifier(issuer, jwksURL string, requestsPerMinute int, logger *logger.Logger) Verifier {
	return &poolVerifier{
		issuer: issuer,
		keys:   newKeySet(jwksURL, requestsPerMinute),
		logger: logger,
	}
}

// Verify validates rawToken and extracts the principal.
//
// Checks performed, in order: compact form parses, signature verifies
// against the provider key referenced by the token's kid header, algorithm
// is RS256, issuer matches the configured pool, token is not expired, and
// token_use is "id" or "access". Every failure is normalised to
// [ErrTokenInvalid] (wrapped) so callers need a single rejection path.
func (v *poolVerifier) Verify(ctx context.Context, rawToken string) (models.Principal, error) {
	claims := &poolClaims{}

	_, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("%w: token has no kid header", ErrTokenInvalid)
		}
		return v.keys.keyFor(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithIssuer(v.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("identity token rejected")
		if errors.Is(err, ErrKeySetUnavailable) || errors.Is(err, ErrUnknownKeyID) {
			return models.Principal{}, err
		}
		return models.Principal{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.TokenUse != "id" && claims.TokenUse != "access" {
		return models.Principal{}, fmt.Errorf("%w: %q", ErrWrongTokenUse, claims.TokenUse)
	}

	return models.Principal{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}
