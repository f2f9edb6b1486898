// Package http provides the HTTP middleware and operational endpoints of the
// board API: access logging, panic recovery, body limits, Prometheus metrics
// and health probes. Article routes live in the article subpackage.
package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

// Pinger is satisfied by *sql.DB and anything else that can check connectivity.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy", "degraded" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // RFC 3339, UTC
	Checks    map[string]CheckStatus `json:"checks"`
	Version   string                 `json:"version"`
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`
	Message string                 `json:"message,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthHandler reports store connectivity and, for pooled SQL stores,
// connection pool statistics.
//
// DB nil means the in-memory store, which is always reachable.
type HealthHandler struct {
	DB      Pinger
	Stats   func() sql.DBStats
	Driver  string
	Version string
}

// ServeHTTP returns 200 when every check is healthy or degraded, 503 otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	check := h.checkDatabase(ctx)
	status := check.Status
	code := http.StatusOK
	if status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}

	resp := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]CheckStatus{"database": check},
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Default().Error("health: failed to encode response", slog.Any("error", err))
	}
}

func (h *HealthHandler) checkDatabase(ctx context.Context) CheckStatus {
	details := map[string]interface{}{"driver": h.Driver}
	if h.DB == nil {
		return CheckStatus{Status: "healthy", Details: details}
	}

	if err := h.DB.PingContext(ctx); err != nil {
		return CheckStatus{Status: "unhealthy", Message: "ping failed", Details: details}
	}
	if h.Stats == nil {
		return CheckStatus{Status: "healthy", Details: details}
	}

	stats := h.Stats()
	details["max_open_connections"] = stats.MaxOpenConnections
	details["open_connections"] = stats.OpenConnections
	details["in_use"] = stats.InUse
	details["idle"] = stats.Idle
	details["wait_count"] = stats.WaitCount
	details["wait_duration_ms"] = stats.WaitDuration.Milliseconds()

	// zero means unlimited
	if stats.MaxOpenConnections == 0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool max connections not configured",
			Details: details,
		}
	}

	utilization := float64(stats.InUse) / float64(stats.MaxOpenConnections) * 100
	details["utilization_percent"] = utilization
	if utilization >= 80.0 {
		return CheckStatus{
			Status:  "degraded",
			Message: "connection pool utilization above 80%",
			Details: details,
		}
	}
	return CheckStatus{Status: "healthy", Details: details}
}

// ReadyHandler handles readiness probe requests.
type ReadyHandler struct {
	DB Pinger
}

// ServeHTTP returns 200 when the store answers a ping within two seconds.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			http.Error(w, "database not ready", http.StatusServiceUnavailable)
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// LiveHandler handles liveness probe requests. It never touches the store.
type LiveHandler struct{}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("alive"))
}
