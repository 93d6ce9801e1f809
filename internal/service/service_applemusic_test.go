// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/secrets"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// generateSigningKey mints a throwaway ES256 key pair and returns the
// PEM-encoded private key plus the public half for verification.
func generateSigningKey(t *testing.T) (string, *ecdsa.PublicKey) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	der, err := x509.MarshalECPrivateKey(key)
	require.NoError(t, err)

	pemBytes := pem.EncodeToMemory(&pem.Block{Type: "EC PRIVATE KEY", Bytes: der})
	return string(pemBytes), &key.PublicKey
}

func newTestDeveloperTokenService(cfg config.AppleMusic, loader *secrets.Loader) *developerTokenService {
	return &developerTokenService{
		cfg:     cfg,
		secrets: loader,
		logger:  logger.Nop(),
		now:     func() time.Time { return fixedNow },
	}
}

func parseIssuedToken(t *testing.T, signed string, pub *ecdsa.PublicKey) *jwt.Token {
	t.Helper()

	token, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return pub, nil
	}, jwt.WithValidMethods([]string{"ES256"}), jwt.WithTimeFunc(func() time.Time { return fixedNow }))
	require.NoError(t, err)
	require.True(t, token.Valid)
	return token
}

// ─────────────────────────────────────────────
// DeveloperToken
// ─────────────────────────────────────────────

func TestDeveloperToken_MintsSignedToken(t *testing.T) {
	pemKey, pub := generateSigningKey(t)
	svc := newTestDeveloperTokenService(config.AppleMusic{
		TeamID:        "TEAM123456",
		KeyID:         "KEY1234567",
		PrivateKey:    pemKey,
		TokenValidity: 4380 * time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, nil)

	signed, err := svc.DeveloperToken(context.Background())
	require.NoError(t, err)

	token := parseIssuedToken(t, signed, pub)
	assert.Equal(t, "KEY1234567", token.Header["kid"])

	issuer, err := token.Claims.GetIssuer()
	require.NoError(t, err)
	assert.Equal(t, "TEAM123456", issuer)

	expiresAt, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(4380*time.Hour).Unix(), expiresAt.Unix())
}

func TestDeveloperToken_EscapedNewlinesInKey(t *testing.T) {
	pemKey, pub := generateSigningKey(t)
	escaped := strings.ReplaceAll(pemKey, "\n", `\n`)

	svc := newTestDeveloperTokenService(config.AppleMusic{
		TeamID:        "TEAM123456",
		KeyID:         "KEY1234567",
		PrivateKey:    escaped,
		TokenValidity: time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, nil)

	signed, err := svc.DeveloperToken(context.Background())
	require.NoError(t, err)
	parseIssuedToken(t, signed, pub)
}

func TestDeveloperToken_CachesUntilWatermark(t *testing.T) {
	pemKey, _ := generateSigningKey(t)
	svc := newTestDeveloperTokenService(config.AppleMusic{
		TeamID:        "TEAM123456",
		KeyID:         "KEY1234567",
		PrivateKey:    pemKey,
		TokenValidity: time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, nil)

	first, err := svc.DeveloperToken(context.Background())
	require.NoError(t, err)

	// ES256 signatures are randomized, so an identical string proves the
	// cache was hit rather than a token re-signed.
	second, err := svc.DeveloperToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDeveloperToken_ReissuesPastWatermark(t *testing.T) {
	pemKey, _ := generateSigningKey(t)
	svc := newTestDeveloperTokenService(config.AppleMusic{
		TeamID:        "TEAM123456",
		KeyID:         "KEY1234567",
		PrivateKey:    pemKey,
		TokenValidity: time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, nil)

	first, err := svc.DeveloperToken(context.Background())
	require.NoError(t, err)

	// Cross the watermark: validity minus the refresh buffer has elapsed.
	svc.now = func() time.Time { return fixedNow.Add(56 * time.Minute) }

	second, err := svc.DeveloperToken(context.Background())
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestDeveloperToken_MissingCredentials(t *testing.T) {
	svc := newTestDeveloperTokenService(config.AppleMusic{
		TokenValidity: time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, nil)

	_, err := svc.DeveloperToken(context.Background())
	require.ErrorIs(t, err, ErrCredentialsNotConfigured)
}

func TestDeveloperToken_GarbageKey(t *testing.T) {
	svc := newTestDeveloperTokenService(config.AppleMusic{
		TeamID:        "TEAM123456",
		KeyID:         "KEY1234567",
		PrivateKey:    "not a pem key",
		TokenValidity: time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, nil)

	_, err := svc.DeveloperToken(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialsNotConfigured)
}

// ─────────────────────────────────────────────
// Secret-store bundle fallback
// ─────────────────────────────────────────────

type stubSecretStore struct {
	values map[string]string
}

func (s *stubSecretStore) Get(_ context.Context, ref string) (string, error) {
	value, ok := s.values[ref]
	if !ok {
		return "", secrets.ErrSecretNotFound
	}
	return value, nil
}

func TestDeveloperToken_ResolvesBundleFromSecretStore(t *testing.T) {
	pemKey, pub := generateSigningKey(t)

	bundle, err := json.Marshal(signingCredentials{
		TeamID:     "TEAM123456",
		KeyID:      "KEY1234567",
		PrivateKey: pemKey,
	})
	require.NoError(t, err)

	loader := secrets.NewLoader(&stubSecretStore{
		values: map[string]string{"musicbox/apple-music": string(bundle)},
	}, logger.Nop())

	svc := newTestDeveloperTokenService(config.AppleMusic{
		SecretRef:     "musicbox/apple-music",
		TokenValidity: time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, loader)

	signed, err := svc.DeveloperToken(context.Background())
	require.NoError(t, err)

	token := parseIssuedToken(t, signed, pub)
	assert.Equal(t, "KEY1234567", token.Header["kid"])
}

func TestDeveloperToken_SecretBundleMissing(t *testing.T) {
	loader := secrets.NewLoader(&stubSecretStore{values: map[string]string{}}, logger.Nop())

	svc := newTestDeveloperTokenService(config.AppleMusic{
		SecretRef:     "musicbox/apple-music",
		TokenValidity: time.Hour,
		RefreshBuffer: 5 * time.Minute,
	}, loader)

	_, err := svc.DeveloperToken(context.Background())
	require.ErrorIs(t, err, ErrCredentialsNotConfigured)
}
