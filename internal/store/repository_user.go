// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles lookups and the create-or-update of the linked music token
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GetUser retrieves a user row by its subject identifier.
//
// Error handling:
//   - No row → [ErrUserNotFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *userRepository) GetUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("user_id", "email", "music_user_token", "token_expiry", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	var musicToken sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.UserID, &user.Email, &musicToken, &user.TokenExpiry, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.GetUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.MusicUserToken = musicToken.String

	return user, nil
}

// UpsertMusicToken writes the linked music-user token for userID, creating
// the user row on first contact. The whole operation is a single INSERT
// with an ON CONFLICT update, so concurrent stores cannot race a separate
// existence check.
func (r *userRepository) UpsertMusicToken(ctx context.Context, userID, email, musicUserToken string, tokenExpiry time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("users").
		Columns("user_id", "email", "music_user_token", "token_expiry", "created_at", "updated_at").
		Values(userID, email, musicUserToken, tokenExpiry, sq.Expr("NOW()"), sq.Expr("NOW()")).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET email = EXCLUDED.email,
			    music_user_token = EXCLUDED.music_user_token,
			    token_expiry = EXCLUDED.token_expiry,
			    updated_at = NOW()
			RETURNING user_id, email, music_user_token, token_expiry, created_at, updated_at`).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.User
	var musicToken sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&user.UserID, &user.Email, &musicToken, &user.TokenExpiry, &user.CreatedAt, &user.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.UpsertMusicToken").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	user.MusicUserToken = musicToken.String

	return user, nil
}
