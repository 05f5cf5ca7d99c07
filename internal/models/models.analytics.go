// FilePath: internal/models/models.analytics.go
package models

type SensorKind string

const (
	KindTemperature SensorKind = "temperature"
	KindPressure    SensorKind = "pressure"
	KindVibration   SensorKind = "vibration"
	KindPower       SensorKind = "power"
	KindHumidity    SensorKind = "humidity"
)

// SensorSeries is a 24-point hourly series with its display unit and
// the alerting thresholds for the sensor kind.
type SensorSeries struct {
	Labels    []string  `json:"labels"`
	Values    []float64 `json:"values"`
	Unit      string    `json:"unit"`
	Threshold Threshold `json:"threshold"`
}

type Threshold struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
