package service

import (
	"context"
	"time"

	"github.com/MKhiriev/music-box/internal/logger"
	"github.com/MKhiriev/music-box/models"
)

// healthService is the concrete implementation of HealthService. It pings
// the record store, times the round trip and folds the result into the
// overall status: any unhealthy dependency degrades the service.
type healthService struct {
	pinger  StorePinger
	version string
	logger  *logger.Logger

	// now is swappable for tests.
	now func() time.Time
}

// NewHealthService constructs a HealthService reporting the given version
// string and probing the record store through pinger.
func NewHealthService(pinger StorePinger, version string, logger *logger.Logger) HealthService {
	return &healthService{
		pinger:  pinger,
		version: version,
		logger:  logger,
		now:     time.Now,
	}
}

// Check probes every dependency and assembles the health report. It never
// returns an error: a failing dependency is reported in the payload, not
// as a failed request.
func (h *healthService) Check(ctx context.Context) models.HealthResponse {
	log := logger.FromContext(ctx)

	response := models.HealthResponse{
		Status:    models.HealthStatusOK,
		Timestamp: h.now(),
		Version:   h.version,
	}

	start := h.now()
	err := h.pinger.Ping(ctx)
	latency := h.now().Sub(start).Milliseconds()

	recordStore := models.DependencyHealth{
		Name:      "record-store",
		Status:    models.DependencyHealthy,
		LatencyMs: latency,
	}
	if err != nil {
		log.Err(err).Msg("record store ping failed during health check")
		recordStore.Status = models.DependencyUnhealthy
		recordStore.Error = err.Error()
		response.Status = models.HealthStatusDegraded
	}
	response.Dependencies = append(response.Dependencies, recordStore)

	return response
}
