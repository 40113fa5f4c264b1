// Package http holds the HTTP middleware, health endpoints and metrics shared
// by the collection handlers.
package http

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"clinic-records/internal/handler/http/respond"
	"clinic-records/internal/observability/metrics"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Checker reports the status of one dependency.
type Checker interface {
	Check(ctx context.Context) CheckStatus
}

// PingCheck adapts a ping function, such as a Mongo client ping or an
// object storage bucket probe.
type PingCheck func(ctx context.Context) error

func (p PingCheck) Check(ctx context.Context) CheckStatus {
	if err := p(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: respond.SanitizeError(err)}
	}
	return CheckStatus{Status: statusHealthy}
}

// StaticCheck always reports healthy with the given message, e.g. for the
// in-memory store.
type StaticCheck string

func (s StaticCheck) Check(context.Context) CheckStatus {
	return CheckStatus{Status: statusHealthy, Message: string(s)}
}

// SQLCheck pings a database/sql pool and reports its statistics.
type SQLCheck struct {
	DB *sql.DB
}

func (c SQLCheck) Check(ctx context.Context) CheckStatus {
	if err := c.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: statusUnhealthy, Message: respond.SanitizeError(err)}
	}

	stats := c.DB.Stats()
	metrics.UpdateDBConnectionStats(stats.InUse, stats.Idle)
	details := map[string]any{
		"max_open_connections": stats.MaxOpenConnections,
		"open_connections":     stats.OpenConnections,
		"in_use":               stats.InUse,
		"idle":                 stats.Idle,
		"wait_count":           stats.WaitCount,
		"wait_duration_ms":     stats.WaitDuration.Milliseconds(),
	}

	// Guard against zero division when MaxOpenConnections is 0 (unlimited)
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilizationPercent := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilizationPercent
	if utilizationPercent >= 80.0 {
		return CheckStatus{
			Status:  statusDegraded,
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}
	return CheckStatus{Status: statusHealthy, Details: details}
}

// HealthHandler runs every check and reports the overall status. The
// response is 503 when a check in Required is unhealthy; other checks are
// informational. Degraded counts as healthy.
type HealthHandler struct {
	Checks   map[string]Checker
	Required []string
	Version  string
	Timeout  time.Duration
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	checks := make(map[string]CheckStatus, len(h.Checks))
	for name, c := range h.Checks {
		checks[name] = c.Check(ctx)
	}

	status, code := statusHealthy, http.StatusOK
	for _, name := range h.Required {
		c, ok := checks[name]
		if !ok {
			c = CheckStatus{Status: statusUnhealthy, Message: "not configured"}
			checks[name] = c
		}
		if c.Status == statusUnhealthy {
			status, code = statusUnhealthy, http.StatusServiceUnavailable
		}
	}
	if code != http.StatusOK {
		slog.Default().Warn("health check failed", slog.Any("failed", failedChecks(checks)))
	}

	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	respond.JSON(w, code, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	})
}

func failedChecks(checks map[string]CheckStatus) []string {
	var failed []string
	for name, c := range checks {
		if c.Status == statusUnhealthy {
			failed = append(failed, name)
		}
	}
	sort.Strings(failed)
	return failed
}

// ReadyHandler reports ready once the database check passes.
type ReadyHandler struct {
	Database Checker
}

func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Database == nil {
		http.Error(w, "database not configured", http.StatusServiceUnavailable)
		return
	}
	if c := h.Database.Check(ctx); c.Status == statusUnhealthy {
		http.Error(w, "database not ready: "+c.Message, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
