package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
)

const probeTimeout = 3 * time.Second

// storagePinger defines the minimal interface for storage health checks.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// escrowReporter exposes the funds currently held for pending requests.
type escrowReporter interface {
	EscrowBalance(ctx context.Context) (int64, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	storage storagePinger
	backend string
	escrow  escrowReporter
	version string
	clock   clockwork.Clock
}

// NewHealthHandler creates a HealthHandler. backend names the storage
// component in responses ("postgres" or "memory").
func NewHealthHandler(storage storagePinger, backend string, escrow escrowReporter, version string, clock clockwork.Clock) *HealthHandler {
	return &HealthHandler{
		storage: storage,
		backend: backend,
		escrow:  escrow,
		version: version,
		clock:   clock,
	}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status        string                `json:"status"`
	Version       string                `json:"version,omitempty"`
	Components    map[string]CompStatus `json:"components,omitempty"`
	EscrowBalance *int64                `json:"escrow_balance,omitempty"`
	Timestamp     time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now().UTC(),
	})
}

// Ready is the readiness probe. Pings storage: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    "down",
			Timestamp: h.clock.Now().UTC(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: h.clock.Now().UTC(),
	})
}

// Health is the full health check: storage ping with latency, the escrow
// balance and the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus),
	}

	start := h.clock.Now()
	err := h.storage.Ping(ctx)
	latency := h.clock.Since(start)

	if err != nil {
		resp.Components[h.backend] = CompStatus{Status: "down"}
		resp.Status = "down"
	} else {
		resp.Components[h.backend] = CompStatus{
			Status:  "ok",
			Latency: latency.String(),
		}
		if h.escrow != nil {
			if balance, err := h.escrow.EscrowBalance(ctx); err == nil {
				resp.EscrowBalance = &balance
			}
		}
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}

	resp.Timestamp = h.clock.Now().UTC()
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
