// FilePath: internal/models/models.dashboard.go
package models

import "time"

// DashboardSnapshot is the cached aggregate view of the device fleet.
// Snapshots are immutable once computed; the store replaces the whole
// entry on recomputation.
type DashboardSnapshot struct {
	Timestamp          time.Time          `json:"timestamp"`
	SystemHealth       float64            `json:"system_health"`
	ActiveDevices      int                `json:"active_devices"`
	TotalDevices       int                `json:"total_devices"`
	WarningDevices     int                `json:"warning_devices"`
	CriticalDevices    int                `json:"critical_devices"`
	Efficiency         float64            `json:"efficiency"`
	EnergyUsage        float64            `json:"energy_usage"`
	PerformanceData    PerformanceTrend   `json:"performance_data"`
	StatusDistribution StatusDistribution `json:"status_distribution"`
	UptimePercent      float64            `json:"uptime_percent"`
	ResponseTimeMs     float64            `json:"response_time_ms"`
}

// PerformanceTrend holds the last 24 hourly trend points, oldest first.
type PerformanceTrend struct {
	Labels           []string  `json:"labels"`
	HealthScores     []float64 `json:"health_scores"`
	EfficiencyScores []float64 `json:"efficiency_scores"`
}

type StatusDistribution struct {
	Normal   int `json:"normal"`
	Warning  int `json:"warning"`
	Critical int `json:"critical"`
}
