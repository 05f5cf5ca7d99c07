// FilePath: api/resources/api.resource.telemetry.go
package resources

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/twinops/pulsehub/internal/errors"
	"github.com/twinops/pulsehub/internal/store"
)

// TelemetryHandlers encapsulates the telemetry-related HTTP handlers
type TelemetryHandlers struct {
	store *store.TelemetryStore
}

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// alertsQuery carries the query parameters of the alerts endpoint.
type alertsQuery struct {
	Limit int `schema:"limit"`
}

// @Summary Dashboard data
// @Description Get the aggregated dashboard snapshot; cached for the store TTL
// @Tags telemetry
// @Produce json
// @Success 200 {object} models.DashboardSnapshot
// @Failure 500 {object} errors.APIError
// @Router /api/dashboard_data [get]
func (h *TelemetryHandlers) GetDashboardData(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	snapshot, err := h.store.DashboardData(r.Context())
	if err != nil {
		respondWithError(w, errors.NewInternalError("failed to compute dashboard data", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, snapshot)
}

// @Summary List devices
// @Description Get the full device list with freshly jittered readings
// @Tags telemetry
// @Produce json
// @Success 200 {array} models.Device
// @Router /api/devices [get]
func (h *TelemetryHandlers) GetDevices(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.Devices())
}

// @Summary List alerts
// @Description Get the most recent alerts, newest first
// @Tags telemetry
// @Produce json
// @Param limit query int false "Maximum number of alerts (default 10)"
// @Success 200 {array} models.Alert
// @Failure 400 {object} errors.APIError
// @Router /api/alerts [get]
func (h *TelemetryHandlers) GetAlerts(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	query := alertsQuery{Limit: 10}
	if err := queryDecoder.Decode(&query, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("invalid limit parameter", err).WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, h.store.Alerts(query.Limit))
}

// @Summary Analytics series
// @Description Get 24-point hourly series per sensor kind with thresholds
// @Tags telemetry
// @Produce json
// @Success 200 {object} map[string]models.SensorSeries
// @Router /api/analytics [get]
func (h *TelemetryHandlers) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.AnalyticsData())
}

// @Summary System status
// @Description Get synthesized process-health metrics
// @Tags telemetry
// @Produce json
// @Success 200 {object} models.StatusSnapshot
// @Router /api/system_status [get]
func (h *TelemetryHandlers) GetSystemStatus(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.store.SystemStatus())
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
