// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/identity"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/service"
	"github.com/MKhiriev/music-box/models"
)

// ─────────────────────────────────────────────
// Stubs: service layer
// ─────────────────────────────────────────────

type stubDeveloperTokenService struct {
	developerTokenFn func(ctx context.Context) (string, error)
}

func (s *stubDeveloperTokenService) DeveloperToken(ctx context.Context) (string, error) {
	if s.developerTokenFn != nil {
		return s.developerTokenFn(ctx)
	}
	return "dev-token", nil
}

type stubAuthService struct {
	storeMusicTokenFn func(ctx context.Context, userID, email string, request models.MusicTokenRequest) (models.User, error)
}

func (s *stubAuthService) StoreMusicToken(ctx context.Context, userID, email string, request models.MusicTokenRequest) (models.User, error) {
	if s.storeMusicTokenFn != nil {
		return s.storeMusicTokenFn(ctx, userID, email, request)
	}
	return models.User{UserID: userID, Email: email, MusicUserToken: request.MusicUserToken}, nil
}

func (s *stubAuthService) GetUser(_ context.Context, userID string) (models.User, error) {
	return models.User{UserID: userID}, nil
}

type stubFavoriteService struct {
	listFn      func(ctx context.Context, userID string) (models.FavoritesList, error)
	addFn       func(ctx context.Context, userID string, request models.CreateFavoriteRequest) (models.Favorite, error)
	getFn       func(ctx context.Context, userID, songID string) (models.Favorite, error)
	removeFn    func(ctx context.Context, userID, songID string) error
	getRandomFn func(ctx context.Context, userID string) (models.Favorite, error)
}

func (s *stubFavoriteService) List(ctx context.Context, userID string) (models.FavoritesList, error) {
	if s.listFn != nil {
		return s.listFn(ctx, userID)
	}
	return models.FavoritesList{Favorites: []models.Favorite{}}, nil
}

func (s *stubFavoriteService) Add(ctx context.Context, userID string, request models.CreateFavoriteRequest) (models.Favorite, error) {
	if s.addFn != nil {
		return s.addFn(ctx, userID, request)
	}
	return models.Favorite{UserID: userID, SongID: request.SongID}, nil
}

func (s *stubFavoriteService) Get(ctx context.Context, userID, songID string) (models.Favorite, error) {
	if s.getFn != nil {
		return s.getFn(ctx, userID, songID)
	}
	return models.Favorite{UserID: userID, SongID: songID}, nil
}

func (s *stubFavoriteService) Remove(ctx context.Context, userID, songID string) error {
	if s.removeFn != nil {
		return s.removeFn(ctx, userID, songID)
	}
	return nil
}

func (s *stubFavoriteService) GetRandom(ctx context.Context, userID string) (models.Favorite, error) {
	if s.getRandomFn != nil {
		return s.getRandomFn(ctx, userID)
	}
	return models.Favorite{UserID: userID, SongID: "random-song"}, nil
}

type stubPlayService struct {
	resolveFn       func(ctx context.Context, userID, songID string) (models.PlayResponse, error)
	resolveRandomFn func(ctx context.Context, userID string) (models.PlayResponse, error)
}

func (s *stubPlayService) Resolve(ctx context.Context, userID, songID string) (models.PlayResponse, error) {
	if s.resolveFn != nil {
		return s.resolveFn(ctx, userID, songID)
	}
	return models.PlayResponse{SongID: songID, StreamURL: "https://example.com/preview.m4a"}, nil
}

func (s *stubPlayService) ResolveRandom(ctx context.Context, userID string) (models.PlayResponse, error) {
	if s.resolveRandomFn != nil {
		return s.resolveRandomFn(ctx, userID)
	}
	return models.PlayResponse{SongID: "random-song", StreamURL: "https://example.com/preview.m4a"}, nil
}

type stubHealthService struct {
	checkFn func(ctx context.Context) models.HealthResponse
}

func (s *stubHealthService) Check(ctx context.Context) models.HealthResponse {
	if s.checkFn != nil {
		return s.checkFn(ctx)
	}
	return models.HealthResponse{Status: models.HealthStatusOK, Version: "test"}
}

// ─────────────────────────────────────────────
// Stub: identity.Verifier
// ─────────────────────────────────────────────

const (
	testBearerToken = "good-token"
	testAPIKey      = "device-key-123"
)

var testPrincipal = models.Principal{Subject: "user-1", Email: "john@example.com", EmailVerified: true}

type stubVerifier struct {
	verifyFn func(ctx context.Context, rawToken string) (models.Principal, error)
}

func (s *stubVerifier) Verify(ctx context.Context, rawToken string) (models.Principal, error) {
	if s.verifyFn != nil {
		return s.verifyFn(ctx, rawToken)
	}
	if rawToken == testBearerToken {
		return testPrincipal, nil
	}
	return models.Principal{}, identity.ErrTokenInvalid
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type stubServices struct {
	developerTokens *stubDeveloperTokenService
	auth            *stubAuthService
	favorites       *stubFavoriteService
	play            *stubPlayService
	health          *stubHealthService
}

func newStubServices() *stubServices {
	return &stubServices{
		developerTokens: &stubDeveloperTokenService{},
		auth:            &stubAuthService{},
		favorites:       &stubFavoriteService{},
		play:            &stubPlayService{},
		health:          &stubHealthService{},
	}
}

func (s *stubServices) build() *service.Services {
	return &service.Services{
		DeveloperTokenService: s.developerTokens,
		AuthService:           s.auth,
		FavoriteService:       s.favorites,
		PlayService:           s.play,
		HealthService:         s.health,
	}
}

func newTestHandler(stubs *stubServices) *Handler {
	return NewHandler(
		stubs.build(),
		&stubVerifier{},
		testAPIKey,
		config.App{CORSOrigins: []string{"http://localhost:3000"}},
		logger.Nop(),
	)
}

// serve routes a request through the fully initialized router and returns
// the recorded response.
func serve(t *testing.T, h *Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, r)
	return rec
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	r.Header.Set("Authorization", "Bearer "+testBearerToken)
	return r
}

func deviceRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	r.Header.Set(apiKeyHeader, testAPIKey)
	return r
}
