// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/migrations"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository
	FavoriteRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error running migrations: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		FavoriteRepository: NewFavoriteRepository(db, log),
		db:                 db,
	}, nil
}

// Ping reports record-store reachability for health checks.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the underlying database connections.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
