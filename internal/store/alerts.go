// FilePath: internal/store/alerts.go
package store

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/twinops/pulsehub/internal/models"
)

type alertTemplate struct {
	Title    string
	Message  string
	Severity models.AlertSeverity
	Category string
}

// seedAlertTemplates are the alert shapes present at startup.
var seedAlertTemplates = []alertTemplate{
	{
		Title:    "High Temperature Alert",
		Message:  "Temperature sensor reading above normal threshold",
		Severity: models.SeverityWarning,
		Category: "environmental",
	},
	{
		Title:    "Pressure Anomaly Detected",
		Message:  "Unusual pressure readings detected on production line",
		Severity: models.SeverityCritical,
		Category: "safety",
	},
	{
		Title:    "Vibration Level Elevated",
		Message:  "Machine vibration levels exceeding normal parameters",
		Severity: models.SeverityWarning,
		Category: "maintenance",
	},
	{
		Title:    "Device Communication Lost",
		Message:  "Lost communication with sensor device",
		Severity: models.SeverityCritical,
		Category: "connectivity",
	},
	{
		Title:    "Efficiency Drop Detected",
		Message:  "System efficiency has dropped below optimal levels",
		Severity: models.SeverityInfo,
		Category: "performance",
	},
}

// runtimeAlertTemplates are the shapes used for alerts injected on read.
// Template choice is uniform over the list.
var runtimeAlertTemplates = []struct {
	Title    string
	Severity models.AlertSeverity
}{
	{"Sensor Reading Anomaly", models.SeverityWarning},
	{"System Performance Alert", models.SeverityInfo},
	{"Connection Timeout", models.SeverityCritical},
	{"Maintenance Required", models.SeverityWarning},
}

// Alerts returns up to limit alerts, newest first. With probability
// AlertProbability a new unresolved system alert is prepended first,
// evicting the oldest entry beyond the cap. A non-positive limit yields
// an empty list; a limit beyond the collection yields the whole list.
func (s *TelemetryStore) Alerts(limit int) []models.Alert {
	var createdID string

	s.mu.Lock()
	if s.rng.Float64() < s.opts.AlertProbability {
		createdID = s.addRandomAlertLocked()
	}
	if limit < 0 {
		limit = 0
	}
	if limit > len(s.alerts) {
		limit = len(s.alerts)
	}
	out := make([]models.Alert, limit)
	copy(out, s.alerts[:limit])
	s.mu.Unlock()

	if createdID != "" {
		s.events.Emit(EventAlertCreated, createdID)
	}
	return out
}

// addRandomAlertLocked prepends a fresh system alert and truncates the
// collection to the cap. Prepending with a current timestamp keeps the
// newest-first ordering intact.
func (s *TelemetryStore) addRandomAlertLocked() string {
	tmpl := runtimeAlertTemplates[s.rng.Intn(len(runtimeAlertTemplates))]
	deviceID := s.randomDeviceIDLocked()

	alert := models.Alert{
		ID:           uuid.NewString(),
		Title:        tmpl.Title,
		Message:      fmt.Sprintf("%s detected on %s", tmpl.Title, deviceID),
		Severity:     tmpl.Severity,
		Category:     "system",
		DeviceID:     deviceID,
		Timestamp:    s.now(),
		Acknowledged: false,
		Resolved:     false,
	}

	s.alerts = append([]models.Alert{alert}, s.alerts...)
	if len(s.alerts) > s.opts.AlertCap {
		s.alerts = s.alerts[:s.opts.AlertCap]
	}
	return alert.ID
}

func (s *TelemetryStore) generateSampleAlerts() []models.Alert {
	now := s.now()
	alerts := make([]models.Alert, 0, s.opts.SeedAlerts)

	for i := 0; i < s.opts.SeedAlerts; i++ {
		tmpl := seedAlertTemplates[s.rng.Intn(len(seedAlertTemplates))]
		deviceID := s.randomDeviceIDLocked()

		resolved := false
		if s.rng.Float64() > 0.7 {
			resolved = s.rng.Intn(2) == 0
		}

		alerts = append(alerts, models.Alert{
			ID:           uuid.NewString(),
			Title:        tmpl.Title,
			Message:      fmt.Sprintf("%s - %s", tmpl.Message, deviceID),
			Severity:     tmpl.Severity,
			Category:     tmpl.Category,
			DeviceID:     deviceID,
			Timestamp:    now.Add(-time.Duration(s.intBetweenLocked(1, 1440)) * time.Minute),
			Acknowledged: s.rng.Intn(2) == 0,
			Resolved:     resolved,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		return alerts[i].Timestamp.After(alerts[j].Timestamp)
	})
	return alerts
}
