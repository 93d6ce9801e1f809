package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/music-box/internal/logger"
	sq "github.com/Masterminds/squirrel"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:      &DB{DB: db, logger: l},
		logger:  l,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
	return repo, mock, db
}

func TestGetUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	expiry := now.Add(24 * time.Hour)

	rows := sqlmock.
		NewRows([]string{"user_id", "email", "music_user_token", "token_expiry", "created_at", "updated_at"}).
		AddRow("user-1", "john@example.com", "amu-token", expiry, now, now)

	mock.ExpectQuery("SELECT user_id, email, music_user_token, token_expiry, created_at, updated_at FROM users").
		WithArgs("user-1").
		WillReturnRows(rows)

	user, err := repo.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.UserID != "user-1" {
		t.Errorf("expected user_id user-1, got %s", user.UserID)
	}
	if user.MusicUserToken != "amu-token" {
		t.Errorf("expected stored music token, got %q", user.MusicUserToken)
	}
	if user.TokenExpiry == nil || !user.TokenExpiry.Equal(expiry) {
		t.Errorf("expected token expiry %v, got %v", expiry, user.TokenExpiry)
	}
}

func TestGetUser_NullToken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "email", "music_user_token", "token_expiry", "created_at", "updated_at"}).
		AddRow("user-1", "john@example.com", nil, nil, now, now)

	mock.ExpectQuery("SELECT user_id, email, music_user_token, token_expiry, created_at, updated_at FROM users").
		WithArgs("user-1").
		WillReturnRows(rows)

	user, err := repo.GetUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.MusicUserToken != "" {
		t.Errorf("expected empty music token for NULL column, got %q", user.MusicUserToken)
	}
	if user.TokenExpiry != nil {
		t.Errorf("expected nil token expiry for NULL column, got %v", user.TokenExpiry)
	}
	if user.HasMusicToken() {
		t.Error("expected HasMusicToken to be false for unlinked user")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT user_id, email, music_user_token, token_expiry, created_at, updated_at FROM users").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(ctx, "missing")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestGetUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"user_id"}). // intentionally wrong shape → scan error
		AddRow("user-1")

	mock.ExpectQuery("SELECT user_id, email, music_user_token, token_expiry, created_at, updated_at FROM users").
		WillReturnRows(rows)

	_, err := repo.GetUser(ctx, "user-1")
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestUpsertMusicToken_CreatesRow(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	expiry := now.Add(86400 * time.Second)

	rows := sqlmock.
		NewRows([]string{"user_id", "email", "music_user_token", "token_expiry", "created_at", "updated_at"}).
		AddRow("user-1", "john@example.com", "amu-token", expiry, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("user-1", "john@example.com", "amu-token", expiry).
		WillReturnRows(rows)

	user, err := repo.UpsertMusicToken(ctx, "user-1", "john@example.com", "amu-token", expiry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.MusicUserToken != "amu-token" {
		t.Errorf("expected stored token returned, got %q", user.MusicUserToken)
	}
	if !user.HasMusicToken() {
		t.Error("expected HasMusicToken to be true after upsert")
	}
}

func TestUpsertMusicToken_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.UpsertMusicToken(ctx, "user-1", "john@example.com", "amu-token", time.Now())
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected wrapped scan error, got %v", err)
	}
}
