package http

import (
	"net/http"

	"github.com/MKhiriev/music-box/internal/utils"
)

// health serves GET /health. The payload is returned bare (not wrapped in
// the API envelope) so load balancers and uptime probes can parse it
// directly; a degraded service still answers 200.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	response := h.services.HealthService.Check(r.Context())
	_, _ = utils.WriteJSON(w, response, http.StatusOK)
}
