// Package reporting serves the dashboard aggregates: record counts and
// value sums grouped by status, fronted by a short-TTL Redis cache.
package reporting

import (
	"context"
	"time"
)

// DashboardStats is the cached aggregate snapshot behind the dashboard.
type DashboardStats struct {
	ProjectsByStatus   map[string]int64   `json:"projects_by_status"`
	YLinesByStatus     map[string]int64   `json:"y_lines_by_status"`
	YLineValueByStatus map[string]float64 `json:"y_line_value_by_status"`
	CSPLOBsByType      map[string]int64   `json:"csp_lobs_by_type"`
	GeneratedAt        time.Time          `json:"generated_at"`
}

// StatsSource computes a fresh snapshot from the store.
type StatsSource interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
}
