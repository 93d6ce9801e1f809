package handler

import (
	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/handler/http"
	"github.com/MKhiriev/music-box/internal/identity"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, verifier identity.Verifier, apiKey string, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, verifier, apiKey, cfg.App, logger),
	}, nil
}
