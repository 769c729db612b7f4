package rest

import (
	"context"
	"net/http"
	"time"
)

// storePinger is the minimal interface for store health checks.
type storePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	store   storePinger
	driver  string
	version string
}

// NewHealthHandler creates a HealthHandler. driver names the state store
// backend and is reported as the component name.
func NewHealthHandler(store storePinger, driver, version string) *HealthHandler {
	return &HealthHandler{store: store, driver: driver, version: version}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready is the readiness probe: 200 when the store answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if _, err := h.ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: time.Now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Health reports the store status with its ping latency and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	comp := CompStatus{Status: "ok"}
	status, overall := http.StatusOK, "ok"

	latency, err := h.ping(r.Context())
	if err != nil {
		comp.Status = "down"
		status, overall = http.StatusServiceUnavailable, "down"
	} else {
		comp.Latency = latency.String()
	}

	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: map[string]CompStatus{"store:" + h.driver: comp},
		Timestamp:  time.Now(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	start := time.Now()
	err := h.store.Ping(ctx)
	return time.Since(start), err
}
