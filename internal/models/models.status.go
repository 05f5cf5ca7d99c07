// FilePath: internal/models/models.status.go
package models

import "time"

// StatusSnapshot carries synthesized process-health metrics. It is
// independent of device state except for ActiveConnections, which
// mirrors the current device count.
type StatusSnapshot struct {
	Timestamp         time.Time `json:"timestamp"`
	CPUUsage          float64   `json:"cpu_usage"`
	MemoryUsage       float64   `json:"memory_usage"`
	DiskUsage         float64   `json:"disk_usage"`
	NetworkLatency    float64   `json:"network_latency"`
	ActiveConnections int       `json:"active_connections"`
	DatabaseStatus    string    `json:"database_status"`
	AIModulesStatus   string    `json:"ai_modules_status"`
	LastBackup        time.Time `json:"last_backup"`
	UptimeHours       float64   `json:"uptime_hours"`
}
