package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/twinops/pulsehub/api/resources"
	"github.com/twinops/pulsehub/internal/store"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
	pages     *PageHandlers
}

// NewRouter builds the HTTP surface over the telemetry store. The
// templateDir holds the HTML page shells; pass "" to disable page routes.
func NewRouter(ts *store.TelemetryStore, templateDir string) (*Router, error) {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(ts),
	}

	if templateDir != "" {
		pages, err := NewPageHandlers(templateDir)
		if err != nil {
			return nil, err
		}
		r.pages = pages
	}

	r.setupRoutes()
	return r, nil
}

func (r *Router) setupRoutes() {
	r.router.Use(recoverMiddleware)
	r.router.NotFoundHandler = recoverMiddleware(http.HandlerFunc(handleNotFound))

	// JSON API
	api := r.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard_data", r.resources.Telemetry.GetDashboardData).Methods(http.MethodGet)
	api.HandleFunc("/devices", r.resources.Telemetry.GetDevices).Methods(http.MethodGet)
	api.HandleFunc("/alerts", r.resources.Telemetry.GetAlerts).Methods(http.MethodGet)
	api.HandleFunc("/analytics", r.resources.Telemetry.GetAnalytics).Methods(http.MethodGet)
	api.HandleFunc("/system_status", r.resources.Telemetry.GetSystemStatus).Methods(http.MethodGet)

	r.router.HandleFunc("/health", r.resources.HealthCheck).Methods(http.MethodGet)

	// HTML pages; consumers of the JSON API above
	if r.pages != nil {
		r.router.HandleFunc("/", r.pages.Index).Methods(http.MethodGet)
		r.router.HandleFunc("/dashboard", r.pages.Dashboard).Methods(http.MethodGet)
		r.router.HandleFunc("/analytics", r.pages.Analytics).Methods(http.MethodGet)
		r.router.HandleFunc("/devices", r.pages.Devices).Methods(http.MethodGet)
	}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

func handleNotFound(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(map[string]string{"error": "Endpoint not found"})
}

// recoverMiddleware converts an uncaught panic into the uniform JSON
// error envelope.
func recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				nuts.L.Errorf("[API] Panic serving %s %s: %v", req.Method, req.URL.Path, rec)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Internal server error"})
			}
		}()
		next.ServeHTTP(w, req)
	})
}
