// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	nuts "github.com/vaudience/go-nuts"

	"github.com/twinops/pulsehub/api"
	"github.com/twinops/pulsehub/internal/cache"
	"github.com/twinops/pulsehub/internal/config"
	"github.com/twinops/pulsehub/internal/monitoring"
	"github.com/twinops/pulsehub/internal/store"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	store      *store.TelemetryStore
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	snapshots := initSnapshotCache(s.config)
	s.store = store.New(storeOptions(s.config), snapshots, nil)
	s.monitoring = monitoring.NewService()

	s.setupStoreEventHandlers()

	router, err := api.NewRouter(s.store, s.config.Server.TemplateDir)
	if err != nil {
		return fmt.Errorf("error setting up routes: %w", err)
	}

	s.srv = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		Handler:      s.buildHandlerChain(router),
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
	}

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// buildHandlerChain wraps the router with CORS and, in debug mode,
// access logging.
func (s *Server) buildHandlerChain(router http.Handler) http.Handler {
	handler := handlers.CORS(
		handlers.AllowedOrigins(s.config.CORS.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(router)

	if s.config.Server.Debug {
		handler = handlers.CombinedLoggingHandler(os.Stdout, handler)
	}
	return handler
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

func (s *Server) setupStoreEventHandlers() {
	s.store.OnEvent(store.EventAlertCreated, func(id string) {
		s.monitoring.RecordEvent("alert_created", map[string]string{
			"alert_id": id,
		})
	})

	s.store.OnEvent(store.EventDashboardRefreshed, func(computedAt string) {
		s.monitoring.RecordEvent("dashboard_refresh", map[string]string{
			"computed_at": computedAt,
		})
	})
}

func storeOptions(cfg *config.Config) store.Options {
	return store.Options{
		DeviceCount:       cfg.Store.DeviceCount,
		AlertCap:          cfg.Store.AlertCap,
		SeedAlerts:        cfg.Store.SeedAlerts,
		AlertProbability:  cfg.Store.AlertProbability,
		StatusProbability: cfg.Store.StatusProbability,
		JitterFraction:    cfg.Store.JitterFraction,
	}
}

// initSnapshotCache builds the dashboard cache backend. The in-memory
// backend is the default; Redis shares the snapshot between instances.
func initSnapshotCache(cfg *config.Config) cache.SnapshotCache {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemoryCache(cfg.Store.CacheTTL)
	}

	redisCache := cache.NewRedisCache(cfg.Cache.Redis, cfg.Store.CacheTTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		nuts.L.Fatalf("[Server] Failed to connect to Redis cache: %v", err)
	}

	nuts.L.Infof("[Server] Using Redis snapshot cache at %s:%d", cfg.Cache.Redis.Host, cfg.Cache.Redis.Port)
	return redisCache
}
