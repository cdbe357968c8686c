package handlers

import (
	"net/http"
	"slices"

	"github.com/jsamuelsen11/scanconsole/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// healthResponse is the body of both health endpoints. Checks maps each
// dependency (the scanner backend, the cache) to "ok" or its error; Failing
// lists the unhealthy ones by name.
type healthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks,omitempty"`
	Failing []string          `json:"failing,omitempty"`
}

// HealthHandler serves liveness and readiness of the console.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over the dependency checks in registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. It does not touch any dependency.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. The console is ready when the scanner
// backend and every other registered dependency answer; otherwise it returns
// 503 naming the failing checks.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := healthResponse{
		Status: statusReady,
		Checks: make(map[string]string, len(results)),
	}
	for name, err := range results {
		if err != nil {
			resp.Checks[name] = err.Error()
			resp.Failing = append(resp.Failing, name)
			continue
		}
		resp.Checks[name] = statusOK
	}

	code := http.StatusOK
	if len(resp.Failing) > 0 {
		slices.Sort(resp.Failing)
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, resp)
}
