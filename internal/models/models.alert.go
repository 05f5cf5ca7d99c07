// FilePath: internal/models/models.alert.go
package models

import "time"

type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert references a device by id only; the device owns no alerts.
type Alert struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Message      string        `json:"message"`
	Severity     AlertSeverity `json:"severity"`
	Category     string        `json:"category"`
	DeviceID     string        `json:"device_id"`
	Timestamp    time.Time     `json:"timestamp"`
	Acknowledged bool          `json:"acknowledged"`
	Resolved     bool          `json:"resolved"`
}
