package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/langfuse"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/llm"
	"github.com/google/uuid"
)

func noopLangfuse() langfuse.Client {
	return langfuse.NewClient(langfuse.Config{})
}

func TestWellnessHandler_GetSummary(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		userID         string
		mockService    *MockWellnessSummaryService
		wantStatusCode int
	}{
		{
			name:           "summary generated",
			userID:         userID.String(),
			mockService:    &MockWellnessSummaryService{},
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "invalid user ID",
			userID:         "not-a-uuid",
			mockService:    &MockWellnessSummaryService{},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "unknown user",
			userID: userID.String(),
			mockService: &MockWellnessSummaryService{
				generateFunc: func(ctx context.Context, userID uuid.UUID) (*domain.WellnessSummaryResponse, error) {
					return nil, domain.ErrNotFound
				},
			},
			wantStatusCode: http.StatusNotFound,
		},
		{
			name:   "LLM not configured",
			userID: userID.String(),
			mockService: &MockWellnessSummaryService{
				generateFunc: func(ctx context.Context, userID uuid.UUID) (*domain.WellnessSummaryResponse, error) {
					return nil, llm.ErrOpenAIUnavailable
				},
			},
			wantStatusCode: http.StatusServiceUnavailable,
		},
		{
			name:   "LLM request failed",
			userID: userID.String(),
			mockService: &MockWellnessSummaryService{
				generateFunc: func(ctx context.Context, userID uuid.UUID) (*domain.WellnessSummaryResponse, error) {
					return nil, llm.ErrOpenAIRequest
				},
			},
			wantStatusCode: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewWellnessHandler(tt.mockService, noopLangfuse())

			req := newRequestWithUserID(http.MethodGet, "/v1/users/"+tt.userID+"/wellness/summary", tt.userID, "")
			rec := httptest.NewRecorder()

			handler.GetSummary(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("GetSummary() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}

			if tt.wantStatusCode == http.StatusOK {
				var response domain.WellnessSummaryResponse
				if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
					t.Errorf("Failed to decode response: %v", err)
				}
				if response.Summary.Summary == "" {
					t.Error("GetSummary() returned empty summary text")
				}
			}
		})
	}
}

func TestWellnessHandler_PostFeedback(t *testing.T) {
	userID := uuid.New().String()

	tests := []struct {
		name           string
		body           string
		wantStatusCode int
	}{
		{
			name:           "valid feedback",
			body:           `{"trace_id": "abc123", "score": 4, "comment": "useful"}`,
			wantStatusCode: http.StatusNoContent,
		},
		{
			name:           "missing trace ID",
			body:           `{"score": 4}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "score out of range",
			body:           `{"trace_id": "abc123", "score": 9}`,
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			body:           `{invalid}`,
			wantStatusCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewWellnessHandler(&MockWellnessSummaryService{}, noopLangfuse())

			req := newRequestWithUserID(http.MethodPost, "/v1/users/"+userID+"/wellness/summary/feedback", userID, tt.body)
			rec := httptest.NewRecorder()

			handler.PostFeedback(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Errorf("PostFeedback() status = %d, want %d, body: %s", rec.Code, tt.wantStatusCode, rec.Body.String())
			}
		})
	}
}
