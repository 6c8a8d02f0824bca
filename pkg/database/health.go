package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"time"
)

// HealthStatus describes the database health check result.
type HealthStatus struct {
	Reachable bool   `json:"reachable"`
	LatencyMs int64  `json:"latency_ms"`
	OpenConns int    `json:"open_conns"`
	Error     string `json:"error,omitempty"`
}

// Health pings the database and reports pool statistics.
func Health(ctx context.Context, db *stdsql.DB) (HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	status := HealthStatus{
		Reachable: err == nil,
		LatencyMs: time.Since(start).Milliseconds(),
		OpenConns: db.Stats().OpenConnections,
	}
	if err != nil {
		status.Error = err.Error()
		return status, fmt.Errorf("database ping failed: %w", err)
	}
	return status, nil
}
