// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/music-box/internal/identity"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/utils"
)

// auth is the identity guard. It extracts the bearer token from the
// "Authorization" header, verifies it against the identity provider's
// published keys, and — on success — stores the resulting
// [models.Principal] in the request context under [utils.PrincipalCtxKey]
// before delegating to the next handler.
//
// Requests are rejected with HTTP 401 Unauthorized when the header is
// absent or malformed, or when the token fails verification. A key-set
// outage surfaces as 503 so clients can distinguish "retry later" from
// "re-authenticate".
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			h.respondError(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			h.respondError(w, ErrInvalidAuthorizationHeader)
			return
		}

		ctx := r.Context()
		principal, err := h.verifier.Verify(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrKeySetUnavailable):
				log.Err(err).Msg("identity key set unavailable")
			default:
				log.Err(err).Msg("identity token rejected")
			}
			h.respondError(w, err)
			return
		}

		// Store the verified identity in the context so downstream handlers
		// can retrieve it without re-verifying the token.
		ctx = context.WithValue(ctx, utils.PrincipalCtxKey, principal)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
