// FilePath: internal/store/dashboard.go
package store

import (
	"context"
	"math"
	"time"

	"github.com/twinops/pulsehub/internal/errors"
	"github.com/twinops/pulsehub/internal/models"
)

// DashboardData returns the cached dashboard snapshot while it is
// fresh, otherwise recomputes it and replaces the cache entry.
// Recomputation jitters the device fleet as a side effect of reading
// it for aggregation. An aggregation failure is returned as an error
// value; no store operation panics.
func (s *TelemetryStore) DashboardData(ctx context.Context) (models.DashboardSnapshot, error) {
	s.mu.Lock()
	if snapshot, ok := s.snapshots.Get(ctx); ok {
		s.mu.Unlock()
		return snapshot, nil
	}

	snapshot, err := s.computeDashboardLocked()
	if err != nil {
		s.mu.Unlock()
		return models.DashboardSnapshot{}, err
	}
	s.snapshots.Put(ctx, snapshot)
	s.mu.Unlock()

	s.events.Emit(EventDashboardRefreshed, snapshot.Timestamp.Format(time.RFC3339))
	return snapshot, nil
}

func (s *TelemetryStore) computeDashboardLocked() (models.DashboardSnapshot, error) {
	if len(s.devices) == 0 {
		return models.DashboardSnapshot{}, errors.NewInternalError("no devices available for aggregation", nil)
	}

	s.refreshDevicesLocked()

	var normal, warning, critical int
	var healthSum, efficiencySum float64
	for i := range s.devices {
		d := &s.devices[i]
		switch d.Status {
		case models.StatusNormal:
			normal++
		case models.StatusWarning:
			warning++
		case models.StatusCritical:
			critical++
		}
		healthSum += d.HealthScore
		efficiencySum += d.EfficiencyScore
	}
	total := len(s.devices)

	now := s.now()
	hourFactor := math.Sin(2*math.Pi*float64(now.Hour())/24) * 300
	energyUsage := 1200 + hourFactor + s.uniformLocked(-50, 50)

	return models.DashboardSnapshot{
		Timestamp:       now,
		SystemHealth:    round1(healthSum / float64(total) * 100),
		ActiveDevices:   normal,
		TotalDevices:    total,
		WarningDevices:  warning,
		CriticalDevices: critical,
		Efficiency:      round1(efficiencySum / float64(total) * 100),
		EnergyUsage:     round1(energyUsage),
		PerformanceData: s.generatePerformanceTrendLocked(now),
		StatusDistribution: models.StatusDistribution{
			Normal:   normal,
			Warning:  warning,
			Critical: critical,
		},
		UptimePercent:  round2(s.uniformLocked(98.5, 99.9)),
		ResponseTimeMs: round1(s.uniformLocked(50, 200)),
	}, nil
}

// generatePerformanceTrendLocked synthesizes the last 24 hours of
// health and efficiency trend points, oldest first. Day-shift hours
// (8-16) run on a higher baseline than evening and night hours.
func (s *TelemetryStore) generatePerformanceTrendLocked(now time.Time) models.PerformanceTrend {
	trend := models.PerformanceTrend{
		Labels:           make([]string, 0, 24),
		HealthScores:     make([]float64, 0, 24),
		EfficiencyScores: make([]float64, 0, 24),
	}

	for i := 0; i < 24; i++ {
		point := now.Add(-time.Duration(23-i) * time.Hour)
		trend.Labels = append(trend.Labels, point.Format("15:04"))

		baseHealth := 85.0
		if hour := point.Hour(); hour >= 8 && hour <= 16 {
			baseHealth = 90.0
		}

		health := baseHealth + s.uniformLocked(-5, 5)
		trend.HealthScores = append(trend.HealthScores, round1(clamp(health, 0, 100)))

		efficiency := baseHealth - 5 + s.uniformLocked(-8, 8)
		trend.EfficiencyScores = append(trend.EfficiencyScores, round1(clamp(efficiency, 0, 100)))
	}

	return trend
}
