// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/MKhiriev/music-box/internal/logger"
)

// Loader resolves credentials from direct configuration values or secret
// references, caching fetched material for the process lifetime.
//
// Resolution policy: a non-empty direct value always wins; otherwise the
// reference is fetched through the configured [Store]. Fetch failures are
// logged and surface as an empty ("unset") credential so callers fail
// closed instead of proceeding with a bad secret.
type Loader struct {
	store  Store
	logger *logger.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewLoader constructs a Loader over the given store. A nil store is
// allowed; every by-reference resolution then fails closed.
func NewLoader(store Store, logger *logger.Logger) *Loader {
	return &Loader{
		store:  store,
		logger: logger,
		cache:  make(map[string]string),
	}
}

// Resolve returns the credential value for a (direct, ref) pair.
//
// When direct is non-empty it is returned as-is. Otherwise the secret
// referenced by ref is fetched and cached. An empty return value means the
// credential is unset; the caller must treat that as a configuration error.
func (l *Loader) Resolve(ctx context.Context, direct, ref string) string {
	if direct != "" {
		return direct
	}
	if ref == "" {
		return ""
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[ref]; ok {
		return cached
	}

	if l.store == nil {
		l.logger.Error().Err(ErrNoStoreConfigured).Str("ref", ref).Msg("cannot resolve secret reference")
		return ""
	}

	value, err := l.store.Get(ctx, ref)
	if err != nil {
		l.logger.Err(err).Str("ref", ref).Msg("secret fetch failed, credential left unset")
		return ""
	}

	l.cache[ref] = value
	l.logger.Info().Str("ref", ref).Msg("secret resolved from store")
	return value
}

// ResolveJSON resolves a secret reference holding a JSON document and
// unmarshals it into out. Returns false when the secret is unset or the
// document cannot be parsed; out is untouched on failure.
func (l *Loader) ResolveJSON(ctx context.Context, ref string, out any) bool {
	raw := l.Resolve(ctx, "", ref)
	if raw == "" {
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		l.logger.Err(err).Str("ref", ref).Msg("secret is not valid JSON, credential left unset")
		return false
	}

	return true
}
