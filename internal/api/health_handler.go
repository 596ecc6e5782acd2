package api

import (
	"context"
	"net/http"
	"time"

	"github.com/aquariuspest/booking-api/internal/api/shared"
)

// Pinger reports whether the database is reachable. *sql.DB implements it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// dbPingTimeout bounds the /health/db check.
const dbPingTimeout = 2 * time.Second

// HealthHandler serves liveness and database checks.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Live handles GET /health.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "OK", Message: "Server is running"})
}

// Database handles GET /health/db. The driver error is logged, not returned.
func (h *HealthHandler) Database(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), dbPingTimeout)
	defer cancel()

	if h.db == nil {
		shared.RespondWithError(w, r, http.StatusServiceUnavailable, "Database not configured")
		return
	}
	if err := h.db.PingContext(ctx); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Database unavailable", err)
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Status: "OK", Message: "Database connected"})
}
