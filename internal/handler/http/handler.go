package http

import (
	"net/http"

	"github.com/MKhiriev/music-box/internal/config"
	"github.com/MKhiriev/music-box/internal/identity"
	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/internal/service"
	"github.com/MKhiriev/music-box/internal/utils"
	"github.com/MKhiriev/music-box/models"
)

type Handler struct {
	services *service.Services
	verifier identity.Verifier

	// apiKey is the shared device secret checked by the api-key guard.
	// Empty means the guard rejects everything (fail closed).
	apiKey string

	corsOrigins []string

	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

func NewHandler(services *service.Services, verifier identity.Verifier, apiKey string, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		verifier:    verifier,
		apiKey:      apiKey,
		corsOrigins: cfg.CORSOrigins,
		uuid:        utils.NewUUIDGenerator(),
		logger:      logger,
	}
}

// respondData writes a success envelope with the given payload.
func (h *Handler) respondData(w http.ResponseWriter, data any, statusCode int) {
	_, _ = utils.WriteJSON(w, models.APIResponse{Success: true, Data: data}, statusCode)
}

// respondMessage writes a success envelope carrying a human-readable
// message instead of a data payload.
func (h *Handler) respondMessage(w http.ResponseWriter, message string, statusCode int) {
	_, _ = utils.WriteJSON(w, models.APIResponse{Success: true, Message: message}, statusCode)
}

// respondError maps err to an HTTP status through the sentinel table and
// writes a failure envelope.
func (h *Handler) respondError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Internal details stay in the logs.
		message = http.StatusText(http.StatusInternalServerError)
	}

	_, _ = utils.WriteJSON(w, models.APIResponse{Success: false, Error: message}, status)
}
