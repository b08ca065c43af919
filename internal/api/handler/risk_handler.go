package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/service"
	"github.com/Sakeerin/Preventive-Health-sub000/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// RiskHandler handles risk assessment and insight endpoints.
type RiskHandler struct {
	service service.RiskInsightsService
}

// NewRiskHandler creates a new RiskHandler.
func NewRiskHandler(service service.RiskInsightsService) *RiskHandler {
	return &RiskHandler{service: service}
}

// Assess handles POST /v1/users/{userId}/risk/assessment
// @Summary Run a risk assessment
// @Description Evaluate the user's trailing window across all risk categories, persist the scores, and create insights for high-risk categories.
// @Tags risk
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param window_days query integer false "Number of days to analyze" default(14) minimum(1) maximum(90)
// @Success 200 {object} domain.RiskAssessmentResponse "Assessment result"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/risk/assessment [post]
func (h *RiskHandler) Assess(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	windowDays := parseIntParam(r, "window_days", service.DefaultAssessmentWindowDays)
	if windowDays < 1 || windowDays > 90 {
		problem.BadRequest("window_days must be between 1 and 90").Write(w)
		return
	}

	result, err := h.service.Assess(r.Context(), userID, windowDays)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to run risk assessment").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// ListScores handles GET /v1/users/{userId}/risk/scores
// @Summary List persisted risk scores
// @Description Fetch previously computed risk scores, most recent first.
// @Tags risk
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Maximum results" default(50) minimum(1) maximum(200)
// @Success 200 {object} domain.RiskScoreListResponse "Persisted scores"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/risk/scores [get]
func (h *RiskHandler) ListScores(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	limit := parseIntParam(r, "limit", service.DefaultScoreListLimit)
	if limit < 1 || limit > 200 {
		problem.BadRequest("limit must be between 1 and 200").Write(w)
		return
	}

	scores, err := h.service.ListScores(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list risk scores").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.RiskScoreListResponse{Data: scores})
}

// ListInsights handles GET /v1/users/{userId}/insights
// @Summary List health insights
// @Description Fetch health insights generated by past assessments, most recent first.
// @Tags insights
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param limit query integer false "Maximum results" default(50) minimum(1) maximum(200)
// @Success 200 {object} domain.HealthInsightListResponse "Health insights"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights [get]
func (h *RiskHandler) ListInsights(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	limit := parseIntParam(r, "limit", service.DefaultScoreListLimit)
	if limit < 1 || limit > 200 {
		problem.BadRequest("limit must be between 1 and 200").Write(w)
		return
	}

	insights, err := h.service.ListInsights(r.Context(), userID, limit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list insights").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(domain.HealthInsightListResponse{Data: insights})
}

// AcknowledgeInsight handles POST /v1/users/{userId}/insights/{insightId}/ack
// @Summary Acknowledge an insight
// @Description Mark a health insight as read by its owner.
// @Tags insights
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param insightId path string true "Insight UUID" format(uuid)
// @Success 204 "Insight acknowledged"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User or insight not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/insights/{insightId}/ack [post]
func (h *RiskHandler) AcknowledgeInsight(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	insightID, err := uuid.Parse(chi.URLParam(r, "insightId"))
	if err != nil {
		problem.BadRequest("Invalid insight ID format").Write(w)
		return
	}

	if err := h.service.AcknowledgeInsight(r.Context(), userID, insightID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("Insight not found").Write(w)
			return
		}
		problem.InternalError("Failed to acknowledge insight").Write(w)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
