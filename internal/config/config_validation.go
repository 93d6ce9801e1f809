// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants the server needs to start.
//
// Credential presence (API key, Apple Music key triple) is deliberately NOT
// validated here: those may arrive later via the secret store, and the
// components that consume them fail closed on their own.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Identity.UserPoolID == "" || cfg.Identity.Region == "" {
		return ErrInvalidIdentityConfigs
	}

	return nil
}
