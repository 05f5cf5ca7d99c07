// FilePath: internal/store/analytics.go
package store

import (
	"math"
	"time"

	"github.com/twinops/pulsehub/internal/models"
)

type sensorPattern struct {
	base      float64
	amplitude float64
	frequency float64
	unit      string
	threshold models.Threshold
}

var sensorPatterns = map[models.SensorKind]sensorPattern{
	models.KindTemperature: {22, 3, 0.1, "°C", models.Threshold{Min: 18, Max: 28}},
	models.KindPressure:    {1013, 20, 0.05, "hPa", models.Threshold{Min: 980, Max: 1040}},
	models.KindVibration:   {0.25, 0.1, 0.2, "mm/s", models.Threshold{Min: 0, Max: 0.5}},
	models.KindPower:       {1200, 300, 0.08, "W", models.Threshold{Min: 800, Max: 1800}},
	models.KindHumidity:    {55, 15, 0.12, "%RH", models.Threshold{Min: 40, Max: 70}},
}

// sensorKinds fixes the synthesis order so a seeded source reproduces
// identical series; map iteration order would not.
var sensorKinds = []models.SensorKind{
	models.KindTemperature,
	models.KindPressure,
	models.KindVibration,
	models.KindPower,
	models.KindHumidity,
}

// AnalyticsData synthesizes a 24-point hourly series per sensor kind.
// It neither reads nor mutates device or alert state; only the shared
// random source requires the lock.
func (s *TelemetryStore) AnalyticsData() map[models.SensorKind]models.SensorSeries {
	s.mu.Lock()
	defer s.mu.Unlock()

	labels := hourLabels(s.now())
	out := make(map[models.SensorKind]models.SensorSeries, len(sensorKinds))
	for _, kind := range sensorKinds {
		pattern := sensorPatterns[kind]
		out[kind] = models.SensorSeries{
			Labels:    labels,
			Values:    s.generateSensorPatternLocked(kind, pattern),
			Unit:      pattern.unit,
			Threshold: pattern.threshold,
		}
	}
	return out
}

// generateSensorPatternLocked builds one series: a sinusoidal daily
// pattern plus Gaussian noise, with kind-specific behavior layered on
// top (vibration spikes, working-hours power boost, range floors).
func (s *TelemetryStore) generateSensorPatternLocked(kind models.SensorKind, p sensorPattern) []float64 {
	values := make([]float64, 0, 24)

	for i := 0; i < 24; i++ {
		daily := p.amplitude * math.Sin(2*math.Pi*float64(i)/24*p.frequency)
		noise := s.rng.NormFloat64() * p.amplitude * 0.1

		switch kind {
		case models.KindVibration:
			// Vibration can have sudden spikes.
			if s.rng.Float64() < 0.05 {
				noise += s.rng.ExpFloat64() * 0.1
			}
		case models.KindPower:
			// Power consumption is higher during working hours.
			if i >= 8 && i <= 18 {
				daily += p.amplitude * 0.3
			}
		}

		value := p.base + daily + noise

		switch kind {
		case models.KindVibration, models.KindPower:
			value = math.Max(0, value)
		case models.KindHumidity:
			value = clamp(value, 0, 100)
		}

		values = append(values, round2(value))
	}

	return values
}

// hourLabels returns the last 24 hour marks as HH:MM, oldest first.
func hourLabels(now time.Time) []string {
	labels := make([]string, 0, 24)
	for i := 23; i >= 0; i-- {
		labels = append(labels, now.Add(-time.Duration(i)*time.Hour).Format("15:04"))
	}
	return labels
}
