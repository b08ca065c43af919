package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/llm"
	"github.com/google/uuid"
)

func TestWellnessSummaryService_Generate(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	aggregateRepo := NewMockDailyAggregateRepository()
	aggregateService := NewAggregateService(aggregateRepo, userRepo)

	now := time.Now().UTC()
	for i := 1; i <= 7; i++ {
		_, err := aggregateService.Upsert(context.Background(), userID, &domain.UpsertDailyAggregateRequest{
			Date:          now.AddDate(0, 0, -i),
			Steps:         9000,
			ActiveEnergy:  400,
			SleepDuration: 440,
		})
		if err != nil {
			t.Fatalf("seed Upsert() error = %v", err)
		}
	}

	var captured *domain.WellnessContext
	mockLLM := &MockSummaryLLM{
		generateFunc: func(ctx context.Context, wellnessCtx *domain.WellnessContext) (*domain.WellnessSummary, error) {
			captured = wellnessCtx
			return &domain.WellnessSummary{
				Summary:      "You are in good shape this week.",
				Observations: []string{"Steps are consistently above 9000."},
				Guidance:     []string{"Keep your current routine."},
			}, nil
		},
	}

	svc := NewWellnessSummaryService(aggregateService, mockLLM, userRepo, NewMockRiskScoreRepository())

	resp, err := svc.Generate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if resp.Summary.Summary == "" {
		t.Error("Generate() returned empty summary")
	}
	if captured == nil {
		t.Fatal("LLM was not called")
	}
	if captured.DaysWithData != 7 {
		t.Errorf("context DaysWithData = %d, want 7", captured.DaysWithData)
	}
	if len(captured.Categories) != 3 {
		t.Errorf("context carries %d categories, want 3", len(captured.Categories))
	}
	if captured.Overall.Category != domain.RiskCategoryOverallWellness {
		t.Errorf("context overall category = %s", captured.Overall.Category)
	}
	if captured.Averages.AvgSteps != 9000 {
		t.Errorf("context AvgSteps = %d, want 9000", captured.Averages.AvgSteps)
	}
	if captured.PreviousOverall != nil {
		t.Error("context carries a previous overall result before any assessment ran")
	}
}

func TestWellnessSummaryService_Generate_PreviousOverall(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	scoreRepo := NewMockRiskScoreRepository()
	err := scoreRepo.CreateBatch(context.Background(), []*domain.RiskScore{
		{
			ID:         uuid.New(),
			UserID:     userID,
			Category:   domain.RiskCategoryOverallWellness,
			Score:      42,
			Level:      domain.RiskLevelMedium,
			Confidence: 0.5,
			WindowDays: 14,
			ComputedAt: time.Now().UTC().AddDate(0, 0, -1),
		},
	})
	if err != nil {
		t.Fatalf("seed CreateBatch() error = %v", err)
	}

	var captured *domain.WellnessContext
	mockLLM := &MockSummaryLLM{
		generateFunc: func(ctx context.Context, wellnessCtx *domain.WellnessContext) (*domain.WellnessSummary, error) {
			captured = wellnessCtx
			return &domain.WellnessSummary{Summary: "steady"}, nil
		},
	}

	aggregateService := NewAggregateService(NewMockDailyAggregateRepository(), userRepo)
	svc := NewWellnessSummaryService(aggregateService, mockLLM, userRepo, scoreRepo)

	if _, err := svc.Generate(context.Background(), userID); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if captured == nil {
		t.Fatal("LLM was not called")
	}
	if captured.PreviousOverall == nil {
		t.Fatal("context is missing the previous overall result")
	}
	if captured.PreviousOverall.Score != 42 {
		t.Errorf("previous overall score = %d, want 42", captured.PreviousOverall.Score)
	}
	if captured.PreviousOverall.Category != domain.RiskCategoryOverallWellness {
		t.Errorf("previous overall category = %s", captured.PreviousOverall.Category)
	}
}

func TestWellnessSummaryService_Generate_NoLLM(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	aggregateService := NewAggregateService(NewMockDailyAggregateRepository(), userRepo)
	svc := NewWellnessSummaryService(aggregateService, nil, userRepo, NewMockRiskScoreRepository())

	_, err := svc.Generate(context.Background(), userID)
	if !errors.Is(err, llm.ErrOpenAIUnavailable) {
		t.Errorf("Generate() error = %v, want ErrOpenAIUnavailable", err)
	}
}

func TestWellnessSummaryService_Generate_UserNotFound(t *testing.T) {
	userRepo := NewMockUserRepository()
	aggregateService := NewAggregateService(NewMockDailyAggregateRepository(), userRepo)
	svc := NewWellnessSummaryService(aggregateService, &MockSummaryLLM{}, userRepo, NewMockRiskScoreRepository())

	_, err := svc.Generate(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Generate() error = %v, want ErrNotFound", err)
	}
}

func TestWellnessSummaryService_Generate_LLMError(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	wantErr := errors.New("upstream timeout")
	mockLLM := &MockSummaryLLM{
		generateFunc: func(ctx context.Context, wellnessCtx *domain.WellnessContext) (*domain.WellnessSummary, error) {
			return nil, wantErr
		},
	}

	aggregateService := NewAggregateService(NewMockDailyAggregateRepository(), userRepo)
	svc := NewWellnessSummaryService(aggregateService, mockLLM, userRepo, NewMockRiskScoreRepository())

	_, err := svc.Generate(context.Background(), userID)
	if !errors.Is(err, wantErr) {
		t.Errorf("Generate() error = %v, want %v", err, wantErr)
	}
}
