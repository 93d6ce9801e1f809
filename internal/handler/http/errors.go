// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the guard middleware. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the identity guard when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not a well-formed bearer credential.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrMissingAPIKey is returned by the api-key guard when the x-api-key
	// header is absent.
	ErrMissingAPIKey = errors.New("missing `x-api-key` header")

	// ErrInvalidAPIKey is returned when the presented api key does not match
	// the configured one, or when no key is configured at all.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrMissingUserID is returned by the play routes when the userId query
	// parameter is absent.
	ErrMissingUserID = errors.New("userId query parameter is required")
)
