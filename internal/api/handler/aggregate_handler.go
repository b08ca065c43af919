package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/api/validation"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/service"
	"github.com/Sakeerin/Preventive-Health-sub000/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type AggregateHandler struct {
	service service.AggregateService
}

func NewAggregateHandler(service service.AggregateService) *AggregateHandler {
	return &AggregateHandler{service: service}
}

// Upsert handles PUT /v1/users/{userId}/aggregates/daily
// @Summary Record a day's health aggregates
// @Description Upsert one day's aggregates. Resubmitting the same date replaces the existing row, so device syncs can safely retry.
// @Tags aggregates
// @Accept json
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param request body domain.UpsertDailyAggregateRequest true "One day's aggregates"
// @Success 200 {object} domain.DailyAggregateResponse "Aggregates stored"
// @Failure 400 {object} problem.Problem "Invalid request body or parameters"
// @Failure 422 {object} problem.Problem "Request body fails validation"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/aggregates/daily [put]
func (h *AggregateHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	var req domain.UpsertDailyAggregateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	aggregate, err := h.service.Upsert(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to store aggregates").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(aggregate.ToResponse())
}

// GetByDate handles GET /v1/users/{userId}/aggregates/daily/{date}
// @Summary Get one day's aggregates
// @Description Fetch the stored aggregates for a single calendar day.
// @Tags aggregates
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param date path string true "Calendar date (YYYY-MM-DD)" format(date) example(2024-01-15)
// @Success 200 {object} domain.DailyAggregateResponse "Stored aggregates"
// @Failure 400 {object} problem.Problem "Invalid parameters"
// @Failure 404 {object} problem.Problem "User or day not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/aggregates/daily/{date} [get]
func (h *AggregateHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		problem.BadRequest("Invalid date, expected YYYY-MM-DD").Write(w)
		return
	}

	aggregate, err := h.service.GetByDate(r.Context(), userID, date)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("No aggregates for that day").Write(w)
			return
		}
		problem.InternalError("Failed to fetch aggregates").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(aggregate.ToResponse())
}

// List handles GET /v1/users/{userId}/aggregates/daily
// @Summary List daily aggregates
// @Description Fetch paginated daily aggregates. Filter by date range. Results sorted by date descending (newest first).
// @Tags aggregates
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param from query string false "Start of date range (RFC3339)" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "End of date range (RFC3339)" format(date-time) example(2024-01-31T23:59:59Z)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.DailyAggregateListResponse "Daily aggregates with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 422 {object} problem.Problem "Query parameters fail validation"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/aggregates/daily [get]
func (h *AggregateHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	filter, fieldErrors := parseListFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to list aggregates").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseListFilter(r *http.Request) (domain.DailyAggregateFilter, []problem.FieldError) {
	var filter domain.DailyAggregateFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.From = &from
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		} else {
			filter.To = &to
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
