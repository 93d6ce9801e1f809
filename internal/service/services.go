package service

import (
	"github.com/MKhiriev/music-box/internal/catalog"
	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/secrets"
	"github.com/MKhiriev/music-box/internal/store"
	"github.com/MKhiriev/music-box/internal/validators"
)

type Services struct {
	DeveloperTokenService DeveloperTokenService
	AuthService           AuthService
	FavoriteService       FavoriteService
	PlayService           PlayService
	HealthService         HealthService
}

func NewServices(storages *store.Storages, catalogClient catalog.Client, secretsLoader *secrets.Loader, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	developerTokens := NewDeveloperTokenService(cfg.AppleMusic, secretsLoader, logger)
	auth := NewAuthService(storages.UserRepository, logger)
	favorites := NewFavoriteService(storages.FavoriteRepository, validators.NewFavoriteValidator(), logger)

	return &Services{
		DeveloperTokenService: developerTokens,
		AuthService:           auth,
		FavoriteService:       favorites,
		PlayService:           NewPlayService(favorites, auth, developerTokens, catalogClient, logger),
		HealthService:         NewHealthService(storages, cfg.App.Version, logger),
	}
}
