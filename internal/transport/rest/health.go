package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/catalog-backend/internal/domain"
)

const probeTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// categoryLister reports the seeded categories; an empty list means the
// schema was not migrated.
type categoryLister interface {
	Categories(ctx context.Context) ([]domain.Category, error)
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	db      dbPinger
	catalog categoryLister
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, catalog categoryLister, version string) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog, version: version}
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
	Detail  string `json:"detail,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe: 200 when the database answers and the
// catalog has its seed categories, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	_, ok := h.check(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health is the full health check with per-component status, latency and
// the build version.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components, ok := h.check(r.Context())

	status, code := "ok", http.StatusOK
	if !ok {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  time.Now(),
	})
}

// check probes the database and then the catalog. The catalog is skipped
// when the database is down.
func (h *HealthHandler) check(ctx context.Context) (map[string]CompStatus, bool) {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 2)

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		components["database"] = CompStatus{Status: "down"}
		return components, false
	}
	components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}

	start = time.Now()
	cats, err := h.catalog.Categories(ctx)
	switch {
	case err != nil:
		components["catalog"] = CompStatus{Status: "down"}
		return components, false
	case len(cats) == 0:
		components["catalog"] = CompStatus{Status: "down", Detail: "no categories"}
		return components, false
	}
	components["catalog"] = CompStatus{
		Status:  "ok",
		Latency: time.Since(start).String(),
		Detail:  strconv.Itoa(len(cats)) + " categories",
	}

	return components, true
}
