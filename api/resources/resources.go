// FilePath: api/resources/resources.go
package resources

import (
	"net/http"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/twinops/pulsehub/internal/store"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Telemetry *TelemetryHandlers
}

// NewResources creates a new Resources instance
func NewResources(ts *store.TelemetryStore) *Resources {
	return &Resources{
		Telemetry: &TelemetryHandlers{store: ts},
	}
}

// @Summary Health check
// @Description Liveness probe for the service
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (r *Resources) HealthCheck(w http.ResponseWriter, req *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   nuts.GetVersion(),
	})
}
