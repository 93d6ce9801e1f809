// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/secrets"
	"github.com/golang-jwt/jwt/v5"
)

// signingCredentials is the JSON shape of the secret-store bundle holding
// the developer-token signing material.
type signingCredentials struct {
	TeamID     string `json:"teamId"`
	KeyID      string `json:"keyId"`
	PrivateKey string `json:"privateKey"`
}

// developerTokenService is the concrete implementation of
// DeveloperTokenService. It mints ES256-signed developer tokens with the
// team identifier as issuer and caches the signed string until a reissue
// watermark shortly before expiry, so concurrent requests share one token
// and the service never hands out a token about to die.
type developerTokenService struct {
	cfg     config.AppleMusic
	secrets *secrets.Loader
	logger  *logger.Logger

	// now is swappable for tests.
	now func() time.Time

	mu          sync.Mutex
	cachedToken string
	watermark   time.Time
}

// NewDeveloperTokenService constructs a DeveloperTokenService from the
// catalog credentials in cfg, resolving referenced secrets through loader.
func NewDeveloperTokenService(cfg config.AppleMusic, loader *secrets.Loader, logger *logger.Logger) DeveloperTokenService {
	return &developerTokenService{
		cfg:     cfg,
		secrets: loader,
		logger:  logger,
		now:     time.Now,
	}
}

// DeveloperToken returns the cached token while it is still ahead of the
// reissue watermark, otherwise signs a fresh one.
//
// Returns ErrCredentialsNotConfigured when no usable signing material can
// be resolved, or a wrapped error when the key fails to parse or sign.
func (s *developerTokenService) DeveloperToken(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.cachedToken != "" && now.Before(s.watermark) {
		return s.cachedToken, nil
	}

	credentials, err := s.resolveCredentials(ctx)
	if err != nil {
		log.Err(err).Msg("developer token credentials unavailable")
		return "", err
	}

	key, err := parseSigningKey(credentials.PrivateKey)
	if err != nil {
		log.Err(err).Msg("error parsing developer token signing key")
		return "", fmt.Errorf("error parsing developer token signing key: %w", err)
	}

	expiresAt := now.Add(s.cfg.TokenValidity)
	claims := &jwt.RegisteredClaims{
		Issuer:    credentials.TeamID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)
	token.Header["kid"] = credentials.KeyID

	signed, err := token.SignedString(key)
	if err != nil {
		log.Err(err).Msg("error signing developer token")
		return "", fmt.Errorf("error signing developer token: %w", err)
	}

	s.cachedToken = signed
	s.watermark = expiresAt.Add(-s.cfg.RefreshBuffer)
	log.Info().Time("expiresAt", expiresAt).Msg("minted new developer token")

	return signed, nil
}

// resolveCredentials assembles the signing triple from direct config
// values, falling back to the secret-store bundle referenced by SecretRef.
func (s *developerTokenService) resolveCredentials(ctx context.Context) (signingCredentials, error) {
	credentials := signingCredentials{
		TeamID:     s.cfg.TeamID,
		KeyID:      s.cfg.KeyID,
		PrivateKey: s.cfg.PrivateKey,
	}
	if credentials.complete() {
		return credentials, nil
	}

	if s.cfg.SecretRef != "" && s.secrets != nil {
		var bundle signingCredentials
		if s.secrets.ResolveJSON(ctx, s.cfg.SecretRef, &bundle) && bundle.complete() {
			return bundle, nil
		}
	}

	return signingCredentials{}, ErrCredentialsNotConfigured
}

func (c signingCredentials) complete() bool {
	return c.TeamID != "" && c.KeyID != "" && c.PrivateKey != ""
}

// parseSigningKey decodes the PEM-encoded ES256 private key. Literal "\n"
// sequences are accepted in place of newlines so the key survives transit
// through a single environment variable.
func parseSigningKey(pemKey string) (*ecdsa.PrivateKey, error) {
	normalized := strings.ReplaceAll(pemKey, `\n`, "\n")
	return jwt.ParseECPrivateKeyFromPEM([]byte(normalized))
}
