// FilePath: internal/models/models.device.go
package models

import "time"

type DeviceType string

const (
	TemperatureSensor DeviceType = "temperature_sensor"
	PressureSensor    DeviceType = "pressure_sensor"
	VibrationSensor   DeviceType = "vibration_sensor"
	HumiditySensor    DeviceType = "humidity_sensor"
	FlowMeter         DeviceType = "flow_meter"
)

type DeviceStatus string

const (
	StatusNormal   DeviceStatus = "normal"
	StatusWarning  DeviceStatus = "warning"
	StatusCritical DeviceStatus = "critical"
)

// HealthBand returns the health score band for a status. Status and
// health score are correlated; a device whose health score lies outside
// the band of its status is invalid.
func (s DeviceStatus) HealthBand() (min, max float64) {
	switch s {
	case StatusNormal:
		return 0.8, 1.0
	case StatusWarning:
		return 0.5, 0.8
	default:
		return 0.1, 0.5
	}
}

type Device struct {
	ID               string       `json:"device_id"`
	Name             string       `json:"name"`
	Type             DeviceType   `json:"device_type"`
	Location         string       `json:"location"`
	Status           DeviceStatus `json:"status"`
	Value            float64      `json:"value"`
	Unit             string       `json:"unit"`
	HealthScore      float64      `json:"health_score"`
	EfficiencyScore  float64      `json:"efficiency_score"`
	LastMaintenance  time.Time    `json:"last_maintenance"`
	InstallationDate time.Time    `json:"installation_date"`
	FirmwareVersion  string       `json:"firmware_version"`
	Timestamp        time.Time    `json:"timestamp"`
}
