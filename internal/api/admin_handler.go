package api

import (
	"net/http"

	"github.com/aquariuspest/booking-api/internal/api/shared"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/service"
)

// AdminHandler serves the read-only admin views derived from bookings.
type AdminHandler struct {
	customers service.CustomerService
	dashboard service.DashboardService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(customers service.CustomerService, dashboard service.DashboardService) *AdminHandler {
	return &AdminHandler{customers: customers, dashboard: dashboard}
}

// Customers handles GET /api/admin/customers.
func (h *AdminHandler) Customers(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customers.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching customers")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, customers)
}

// Dashboard handles GET /api/admin/dashboard?status=&from=&to=.
func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter, err := domain.ParseDashboardFilter(q.Get("status"), q.Get("from"), q.Get("to"))
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	stats, err := h.dashboard.Summary(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching dashboard")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
