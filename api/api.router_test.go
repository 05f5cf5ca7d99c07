package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twinops/pulsehub/internal/cache"
	"github.com/twinops/pulsehub/internal/models"
	"github.com/twinops/pulsehub/internal/store"
)

func newTestRouter(t *testing.T, opts store.Options) *Router {
	t.Helper()

	ts := store.New(opts, cache.NewMemoryCache(2*time.Minute), rand.NewSource(1))
	router, err := NewRouter(ts, "")
	require.NoError(t, err)
	return router
}

func testStoreOptions() store.Options {
	return store.Options{
		DeviceCount:       20,
		AlertCap:          50,
		SeedAlerts:        15,
		AlertProbability:  0, // keep handler responses deterministic in size
		StatusProbability: 0.05,
		JitterFraction:    0.10,
	}
}

func doRequest(router *Router, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetDevices(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/api/devices")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var devices []models.Device
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &devices))
	require.Len(t, devices, 20)
	for _, d := range devices {
		assert.GreaterOrEqual(t, d.Value, 0.0)
	}
}

func TestGetAlertsDefaultLimit(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/api/alerts")
	require.Equal(t, http.StatusOK, rec.Code)

	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alerts))
	assert.Len(t, alerts, 10)
}

func TestGetAlertsWithLimit(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/api/alerts?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)

	var alerts []models.Alert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alerts))
	require.Len(t, alerts, 5)
	for i := 1; i < len(alerts); i++ {
		assert.False(t, alerts[i-1].Timestamp.Before(alerts[i].Timestamp),
			"alerts out of order at index %d", i)
	}
}

func TestGetAlertsInvalidLimit(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/api/alerts?limit=bogus")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.NotEmpty(t, envelope["error"])
}

func TestGetDashboardDataCachedWithinTTL(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	first := doRequest(router, http.MethodGet, "/api/dashboard_data")
	require.Equal(t, http.StatusOK, first.Code)

	second := doRequest(router, http.MethodGet, "/api/dashboard_data")
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String(),
		"cached dashboard payload changed within the TTL window")

	var snapshot models.DashboardSnapshot
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &snapshot))
	assert.Equal(t, 20, snapshot.TotalDevices)
	assert.Len(t, snapshot.PerformanceData.Labels, 24)
}

func TestGetAnalytics(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/api/analytics")
	require.Equal(t, http.StatusOK, rec.Code)

	var analytics map[string]models.SensorSeries
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &analytics))
	require.Len(t, analytics, 5)

	for kind, series := range analytics {
		assert.Len(t, series.Labels, 24, "series %s", kind)
		assert.Len(t, series.Values, 24, "series %s", kind)
	}
}

func TestGetSystemStatus(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/api/system_status")
	require.Equal(t, http.StatusOK, rec.Code)

	var status models.StatusSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, 20, status.ActiveConnections)
	assert.GreaterOrEqual(t, status.CPUUsage, 20.0)
	assert.LessOrEqual(t, status.CPUUsage, 80.0)
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
	assert.Contains(t, body, "version")
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/api/nope")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Endpoint not found", body["error"])
}

func TestPageRoutesDisabledWithoutTemplates(t *testing.T) {
	router := newTestRouter(t, testStoreOptions())

	rec := doRequest(router, http.MethodGet, "/dashboard")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
