package api

import (
	"log/slog"
	"net/http"

	"github.com/aquariuspest/booking-api/internal/api/shared"
	"github.com/aquariuspest/booking-api/internal/domain"
	"github.com/aquariuspest/booking-api/internal/service"
)

// CatalogHandler serves the service catalog.
type CatalogHandler struct {
	catalog service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalog service.CatalogService, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger.With(slog.String("component", "catalog_handler")),
	}
}

// List handles GET /api/services.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching services")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, services)
}

// Get handles GET /api/services/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	svc, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Error fetching service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, svc)
}

// Create handles POST /api/admin/services.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in domain.ServiceInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	svc, err := h.catalog.Create(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "Error creating service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, ServiceResponse{
		Message: "Service created successfully",
		Service: svc,
	})
}

// Update handles PUT /api/admin/services/{id}.
func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	var in domain.ServiceInput
	if !decodeAndValidate(w, r, &in) {
		return
	}
	svc, err := h.catalog.Update(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err, "Error updating service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, ServiceResponse{
		Message: "Service updated successfully",
		Service: svc,
	})
}

// Delete handles DELETE /api/admin/services/{id}.
func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if err := h.catalog.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Error deleting service")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shared.MessageResponse{Message: "Service deleted successfully"})
}
