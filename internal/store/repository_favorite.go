// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/models"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository] over the "favorites" table, keyed by
// (user_id, song_id).
type favoriteRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// ListByUser returns every favorite in the user's partition, oldest first.
func (r *favoriteRepository) ListByUser(ctx context.Context, userID string) ([]models.Favorite, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("user_id", "song_id", "name", "artist", "album", "artwork_url", "preview_url", "duration_ms", "added_at").
		From("favorites").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("added_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListByUser").Msg("error executing query")
		return nil, execError(err)
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		favorite, err := scanFavorite(rows)
		if err != nil {
			log.Err(err).Str("func", "*favoriteRepository.ListByUser").Msg("error scanning row")
			return nil, err
		}
		favorites = append(favorites, favorite)
	}
	if err := rows.Err(); err != nil {
		return nil, execError(err)
	}

	return favorites, nil
}

// Get retrieves a single favorite by its composite key.
//
// Error handling:
//   - No row → [ErrFavoriteNotFound].
//   - Scan failure → wrapped [ErrScanningRow].
func (r *favoriteRepository) Get(ctx context.Context, userID, songID string) (models.Favorite, error) {
	query, args, err := r.builder.
		Select("user_id", "song_id", "name", "artist", "album", "artwork_url", "preview_url", "duration_ms", "added_at").
		From("favorites").
		Where(sq.Eq{"user_id": userID, "song_id": songID}).
		ToSql()
	if err != nil {
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	favorite, err := scanFavorite(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favorite{}, ErrFavoriteNotFound
		}
		return models.Favorite{}, err
	}

	return favorite, nil
}

// Put stores favorite, overwriting any row already present under the same
// (user_id, song_id) key. Repeat adds therefore act as a full replace, not
// an error.
func (r *favoriteRepository) Put(ctx context.Context, favorite models.Favorite) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert("favorites").
		Columns("user_id", "song_id", "name", "artist", "album", "artwork_url", "preview_url", "duration_ms", "added_at").
		Values(favorite.UserID, favorite.SongID, favorite.Name, favorite.Artist, favorite.Album,
			favorite.ArtworkURL, favorite.PreviewURL, favorite.DurationMs, favorite.AddedAt).
		Suffix(`ON CONFLICT (user_id, song_id) DO UPDATE
			SET name = EXCLUDED.name,
			    artist = EXCLUDED.artist,
			    album = EXCLUDED.album,
			    artwork_url = EXCLUDED.artwork_url,
			    preview_url = EXCLUDED.preview_url,
			    duration_ms = EXCLUDED.duration_ms,
			    added_at = EXCLUDED.added_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.Put").Msg("error executing insert")
		return execError(err)
	}

	return nil
}

// Delete removes the favorite under the composite key. A missing row is
// not an error (the operation is idempotent).
func (r *favoriteRepository) Delete(ctx context.Context, userID, songID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete("favorites").
		Where(sq.Eq{"user_id": userID, "song_id": songID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.Delete").Msg("error executing delete")
		return execError(err)
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFavorite(row rowScanner) (models.Favorite, error) {
	var favorite models.Favorite
	err := row.Scan(
		&favorite.UserID,
		&favorite.SongID,
		&favorite.Name,
		&favorite.Artist,
		&favorite.Album,
		&favorite.ArtworkURL,
		&favorite.PreviewURL,
		&favorite.DurationMs,
		&favorite.AddedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Favorite{}, err
		}
		return models.Favorite{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return favorite, nil
}
