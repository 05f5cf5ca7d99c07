// FilePath: internal/store/store.go

// Package store owns the synthetic device fleet, the alert list and the
// dashboard snapshot cache. It is the single authority over that state;
// the HTTP layer only calls its accessors.
//
// Several read accessors deliberately mutate the underlying state (value
// jitter, status resampling, probabilistic alert injection). This mirrors
// the demo data generator the store replaces: repeated reads of the same
// device are not idempotent.
package store

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/twinops/pulsehub/internal/cache"
	"github.com/twinops/pulsehub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// Store events emitted through the event emitter.
const (
	EventAlertCreated       = "alert.created"
	EventDashboardRefreshed = "dashboard.refreshed"
)

// Options tunes the synthetic telemetry generator.
type Options struct {
	DeviceCount       int
	AlertCap          int
	SeedAlerts        int
	AlertProbability  float64
	StatusProbability float64
	JitterFraction    float64
}

// TelemetryStore holds all mutable telemetry state. A single coarse
// mutex guards devices, alerts and the random source; every operation
// is CPU-bound and short, so finer locking buys nothing.
type TelemetryStore struct {
	mu        sync.Mutex
	rng       *rand.Rand
	opts      Options
	now       func() time.Time
	devices   []models.Device
	alerts    []models.Alert
	snapshots cache.SnapshotCache
	events    *nuts.EventEmitter
}

// New creates a TelemetryStore and seeds the sample fleet and alert
// list. A nil source seeds from the wall clock; tests pass a fixed
// source for reproducible output.
func New(opts Options, snapshots cache.SnapshotCache, src rand.Source) *TelemetryStore {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}

	s := &TelemetryStore{
		rng:       rand.New(src),
		opts:      opts,
		now:       time.Now,
		snapshots: snapshots,
		events:    nuts.NewEventEmitter(),
	}

	s.devices = s.generateSampleDevices()
	s.alerts = s.generateSampleAlerts()
	nuts.L.Infof("[Store] Seeded %d devices and %d alerts", len(s.devices), len(s.alerts))

	return s
}

// OnEvent registers a callback for store events such as alert creation
// and dashboard cache refreshes.
func (s *TelemetryStore) OnEvent(event string, handler func(id string)) {
	s.events.On(event, "store_handler", func(args ...interface{}) {
		if len(args) > 0 {
			if id, ok := args[0].(string); ok {
				handler(id)
			}
		}
	})
}

// uniformLocked returns a uniform sample in [min, max).
func (s *TelemetryStore) uniformLocked(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// intBetweenLocked returns a uniform integer sample in [min, max).
func (s *TelemetryStore) intBetweenLocked(min, max int) int {
	return min + s.rng.Intn(max-min)
}

func (s *TelemetryStore) randomDeviceIDLocked() string {
	return fmt.Sprintf("DEVICE_%03d", 1+s.rng.Intn(s.opts.DeviceCount))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
