// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/music-box/internal/logger"
)

const apiKeyHeader = "x-api-key"

// apiKeyAuth is the device guard protecting the play routes. Devices
// present the shared static key in the x-api-key header.
//
// The comparison is constant-time. When the lengths differ, a dummy
// self-comparison of the same cost runs before rejecting, so response
// timing does not leak the configured key's length. An unconfigured key
// rejects everything.
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		presented := r.Header.Get(apiKeyHeader)
		if presented == "" {
			log.Err(ErrMissingAPIKey).Send()
			h.respondError(w, ErrMissingAPIKey)
			return
		}

		if !h.apiKeyMatches(presented) {
			log.Err(ErrInvalidAPIKey).Send()
			h.respondError(w, ErrInvalidAPIKey)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) apiKeyMatches(presented string) bool {
	if h.apiKey == "" {
		return false
	}

	expected := []byte(h.apiKey)
	got := []byte(presented)

	if len(expected) != len(got) {
		subtle.ConstantTimeCompare(got, got)
		return false
	}

	return subtle.ConstantTimeCompare(expected, got) == 1
}
