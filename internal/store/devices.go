// FilePath: internal/store/devices.go
package store

import (
	"fmt"
	"math"

	"github.com/twinops/pulsehub/internal/models"
)

type deviceProfile struct {
	displayName string
	unit        string
	minValue    float64
	maxValue    float64
}

var deviceProfiles = map[models.DeviceType]deviceProfile{
	models.TemperatureSensor: {"Temperature Sensor", "°C", 18, 35},
	models.PressureSensor:    {"Pressure Sensor", "hPa", 900, 1100},
	models.VibrationSensor:   {"Vibration Sensor", "mm/s", 0.1, 0.5},
	models.HumiditySensor:    {"Humidity Sensor", "%RH", 35, 75},
	models.FlowMeter:         {"Flow Meter", "L/min", 10, 50},
}

// deviceTypes keeps a fixed sampling order so a seeded source
// reproduces the same fleet.
var deviceTypes = []models.DeviceType{
	models.TemperatureSensor,
	models.PressureSensor,
	models.VibrationSensor,
	models.HumiditySensor,
	models.FlowMeter,
}

var deviceLocations = []string{
	"Production Line 1",
	"Production Line 2",
	"Quality Control",
	"Warehouse A",
	"Warehouse B",
	"Maintenance Shop",
}

// Devices returns the full device list. Reading the list perturbs it:
// every device value is jittered and timestamps are refreshed, and each
// device has a small chance of a status change. Callers get copies.
func (s *TelemetryStore) Devices() []models.Device {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.refreshDevicesLocked()

	out := make([]models.Device, len(s.devices))
	copy(out, s.devices)
	return out
}

// refreshDevicesLocked applies the per-read mutation policy: value
// jitter of up to ±JitterFraction (floored at 0, rounded to 2 decimals)
// and, with StatusProbability per device, a status resample with the
// health score re-banded to match.
func (s *TelemetryStore) refreshDevicesLocked() {
	now := s.now()
	for i := range s.devices {
		d := &s.devices[i]

		variation := s.uniformLocked(-s.opts.JitterFraction, s.opts.JitterFraction) * d.Value
		d.Value = round2(math.Max(0, d.Value+variation))
		d.Timestamp = now

		if s.rng.Float64() < s.opts.StatusProbability {
			d.Status = s.sampleStatusLocked()
			lo, hi := d.Status.HealthBand()
			d.HealthScore = s.uniformLocked(lo, hi)
		}
	}
}

// sampleStatusLocked draws from the weighted status distribution
// normal 0.70, warning 0.25, critical 0.05.
func (s *TelemetryStore) sampleStatusLocked() models.DeviceStatus {
	r := s.rng.Float64()
	switch {
	case r < 0.70:
		return models.StatusNormal
	case r < 0.95:
		return models.StatusWarning
	default:
		return models.StatusCritical
	}
}

func (s *TelemetryStore) generateSampleDevices() []models.Device {
	now := s.now()
	devices := make([]models.Device, 0, s.opts.DeviceCount)

	for i := 0; i < s.opts.DeviceCount; i++ {
		deviceType := deviceTypes[s.rng.Intn(len(deviceTypes))]
		profile := deviceProfiles[deviceType]

		// Seed status distribution: normal 0.85, warning 0.10, critical 0.05.
		var status models.DeviceStatus
		switch r := s.rng.Float64(); {
		case r > 0.15:
			status = models.StatusNormal
		case r > 0.05:
			status = models.StatusWarning
		default:
			status = models.StatusCritical
		}
		lo, hi := status.HealthBand()

		devices = append(devices, models.Device{
			ID:               fmt.Sprintf("DEVICE_%03d", i+1),
			Name:             fmt.Sprintf("%s %d", profile.displayName, i+1),
			Type:             deviceType,
			Location:         deviceLocations[s.rng.Intn(len(deviceLocations))],
			Status:           status,
			Value:            round2(s.uniformLocked(profile.minValue, profile.maxValue)),
			Unit:             profile.unit,
			HealthScore:      s.uniformLocked(lo, hi),
			EfficiencyScore:  s.uniformLocked(0.7, 1.0),
			LastMaintenance:  now.AddDate(0, 0, -s.intBetweenLocked(1, 90)),
			InstallationDate: now.AddDate(0, 0, -s.intBetweenLocked(100, 1000)),
			FirmwareVersion:  fmt.Sprintf("%d.%d.%d", s.intBetweenLocked(1, 5), s.rng.Intn(9), s.rng.Intn(9)),
			Timestamp:        now,
		})
	}

	return devices
}
