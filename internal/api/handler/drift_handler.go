package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/service"
	"github.com/Sakeerin/Preventive-Health-sub000/pkg/problem"
)

// DriftHandler handles model drift ops endpoints.
type DriftHandler struct {
	service service.DriftService
}

// NewDriftHandler creates a new DriftHandler.
func NewDriftHandler(service service.DriftService) *DriftHandler {
	return &DriftHandler{service: service}
}

// Status handles GET /model/drift
// @Summary Get drift monitor status
// @Description Fetch the drift baseline size and recent drift observations, most recent first.
// @Tags model
// @Produce json
// @Param limit query integer false "Maximum recent records" default(50) minimum(1) maximum(200)
// @Success 200 {object} domain.DriftStatusResponse "Drift monitor status"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /model/drift [get]
func (h *DriftHandler) Status(w http.ResponseWriter, r *http.Request) {
	limit := parseIntParam(r, "limit", service.DefaultDriftListLimit)
	if limit < 1 || limit > 200 {
		problem.BadRequest("limit must be between 1 and 200").Write(w)
		return
	}

	status, err := h.service.Status(r.Context(), limit)
	if err != nil {
		problem.InternalError("Failed to fetch drift status").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(status)
}

// Reset handles POST /model/drift/reset
// @Summary Reset the drift baseline
// @Description Clear the in-memory drift baseline. Intended for use after a model retrain invalidates the accumulated distribution.
// @Tags model
// @Success 204 "Baseline reset"
// @Router /model/drift/reset [post]
func (h *DriftHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.service.Reset()
	w.WriteHeader(http.StatusNoContent)
}
