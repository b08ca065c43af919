package service

import (
	"context"
	"encoding/json"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/llm"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/repository"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/risk"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WellnessSummaryService generates an LLM narrative over a fresh risk
// evaluation. Unlike Assess, nothing is persisted: it is a read-only view.
type WellnessSummaryService interface {
	// Generate evaluates the trailing window and narrates the result.
	Generate(ctx context.Context, userID uuid.UUID) (*domain.WellnessSummaryResponse, error)
}

type wellnessSummaryService struct {
	aggregateService AggregateService
	llmClient        llm.SummaryLLM
	userRepo         repository.UserRepository
	scoreRepo        repository.RiskScoreRepository
}

// NewWellnessSummaryService creates a new WellnessSummaryService. llmClient
// may be nil when OpenAI is not configured; Generate then reports
// unavailability.
func NewWellnessSummaryService(
	aggregateService AggregateService,
	llmClient llm.SummaryLLM,
	userRepo repository.UserRepository,
	scoreRepo repository.RiskScoreRepository,
) WellnessSummaryService {
	return &wellnessSummaryService{
		aggregateService: aggregateService,
		llmClient:        llmClient,
		userRepo:         userRepo,
		scoreRepo:        scoreRepo,
	}
}

func (s *wellnessSummaryService) Generate(ctx context.Context, userID uuid.UUID) (*domain.WellnessSummaryResponse, error) {
	tracer := otel.Tracer("preventive-health-api/wellness")
	ctx, span := tracer.Start(ctx, "WellnessSummaryService.Generate",
		trace.WithAttributes(attribute.String("user.id", userID.String())),
	)
	defer span.End()

	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if s.llmClient == nil {
		return nil, llm.ErrOpenAIUnavailable
	}

	inputs, err := s.aggregateService.Window(ctx, userID, DefaultAssessmentWindowDays)
	if err != nil {
		return nil, err
	}

	categories := []domain.CategoryRiskResult{
		risk.EvaluateCardiovascular(inputs),
		risk.EvaluateSleep(inputs),
		risk.EvaluateActivity(inputs),
	}

	wellnessCtx := &domain.WellnessContext{
		DaysWithData: len(inputs),
		WindowDays:   DefaultAssessmentWindowDays,
		Averages:     risk.Summarize(domain.ModelInput{Aggregates: inputs}),
		Categories:   categories,
		Overall:      risk.EvaluateOverall(categories, risk.SelectTopWeighted),
	}

	// Include the last persisted overall result so the narrative can
	// speak to the trend. Absence just means no assessment has run yet.
	if prev, err := s.scoreRepo.LatestByCategory(ctx, userID, domain.RiskCategoryOverallWellness); err == nil && prev != nil {
		result := prev.ToResult()
		wellnessCtx.PreviousOverall = &result
	}

	// Attach input payload for Langfuse
	if inputJSON, err := json.Marshal(wellnessCtx); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	summary, err := s.llmClient.GenerateSummary(ctx, wellnessCtx)
	if err != nil {
		return nil, err
	}

	response := &domain.WellnessSummaryResponse{
		Context: *wellnessCtx,
		Summary: *summary,
	}

	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(summary); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}
