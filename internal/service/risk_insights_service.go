package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/repository"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/risk"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultAssessmentWindowDays is the default scoring window.
	DefaultAssessmentWindowDays = 14

	// DefaultScoreListLimit bounds score/insight listings.
	DefaultScoreListLimit = 50
)

// RiskInsightsService runs risk assessments and manages their artifacts:
// persisted scores, high-risk insights, and drift telemetry.
type RiskInsightsService interface {
	// Assess evaluates the user's trailing window, persists the results,
	// and feeds the input batch to the drift monitor.
	Assess(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.RiskAssessmentResponse, error)
	// ListScores returns persisted scores, most recent first.
	ListScores(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskScore, error)
	// ListInsights returns health insights, most recent first.
	ListInsights(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthInsight, error)
	// AcknowledgeInsight marks an insight as read.
	AcknowledgeInsight(ctx context.Context, userID, insightID uuid.UUID) error
}

type riskInsightsService struct {
	aggregateRepo repository.DailyAggregateRepository
	userRepo      repository.UserRepository
	scoreRepo     repository.RiskScoreRepository
	insightRepo   repository.HealthInsightRepository
	driftRepo     repository.DriftRecordRepository
	monitor       *risk.Monitor
}

// NewRiskInsightsService creates a new RiskInsightsService. The drift
// monitor is shared with whoever else observes it (ops endpoints).
func NewRiskInsightsService(
	aggregateRepo repository.DailyAggregateRepository,
	userRepo repository.UserRepository,
	scoreRepo repository.RiskScoreRepository,
	insightRepo repository.HealthInsightRepository,
	driftRepo repository.DriftRecordRepository,
	monitor *risk.Monitor,
) RiskInsightsService {
	return &riskInsightsService{
		aggregateRepo: aggregateRepo,
		userRepo:      userRepo,
		scoreRepo:     scoreRepo,
		insightRepo:   insightRepo,
		driftRepo:     driftRepo,
		monitor:       monitor,
	}
}

func (s *riskInsightsService) Assess(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.RiskAssessmentResponse, error) {
	tracer := otel.Tracer("preventive-health-api/risk")
	ctx, span := tracer.Start(ctx, "RiskInsightsService.Assess",
		trace.WithAttributes(
			attribute.String("user.id", userID.String()),
			attribute.Int("window.days", windowDays),
		),
	)
	defer span.End()

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if windowDays <= 0 {
		windowDays = DefaultAssessmentWindowDays
	}

	now := time.Now().UTC()
	from := now.AddDate(0, 0, -windowDays)

	rows, err := s.aggregateRepo.ListByDateRange(ctx, userID, from, now)
	if err != nil {
		return nil, err
	}
	inputs := make([]domain.DailyAggregateInput, len(rows))
	for i := range rows {
		inputs[i] = rows[i].ToInput()
	}

	// Attach input payload for Langfuse
	inputPayload := map[string]any{
		"user_id":     userID.String(),
		"window_days": windowDays,
		"days_found":  len(inputs),
	}
	if inputJSON, err := json.Marshal(inputPayload); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.input", string(inputJSON)))
	}

	// Score the three categories and blend them.
	categories := []domain.CategoryRiskResult{
		risk.EvaluateCardiovascular(inputs),
		risk.EvaluateSleep(inputs),
		risk.EvaluateActivity(inputs),
	}
	overall := risk.EvaluateOverall(categories, risk.SelectTopWeighted)

	// Persist one score row per result.
	all := append(append([]domain.CategoryRiskResult{}, categories...), overall)
	scores := make([]*domain.RiskScore, len(all))
	for i, result := range all {
		scores[i] = &domain.RiskScore{
			UserID:     userID,
			Category:   result.Category,
			Score:      result.Score,
			Level:      result.Level,
			Confidence: result.Confidence,
			Factors:    result.Factors,
			WindowDays: windowDays,
			ComputedAt: now,
		}
	}
	if err := s.scoreRepo.CreateBatch(ctx, scores); err != nil {
		return nil, err
	}

	// High-risk categories produce user-facing insight records.
	insightsCreated := 0
	for _, result := range all {
		if result.Level != domain.RiskLevelHigh {
			continue
		}
		insight := buildInsight(userID, result)
		if err := s.insightRepo.Create(ctx, insight); err != nil {
			return nil, err
		}
		insightsCreated++
	}

	// Drift telemetry is best-effort: a failed write never fails the
	// assessment the user asked for.
	analysis := s.monitor.Analyze(domain.ModelInput{
		Aggregates: inputs,
		Profile:    user.Profile(now),
	})
	if err := s.driftRepo.Create(ctx, domain.NewDriftRecord(analysis)); err != nil {
		log.Printf("failed to persist drift record: %v", err)
	}

	response := &domain.RiskAssessmentResponse{
		DaysWithData:    len(inputs),
		Categories:      categories,
		Overall:         overall,
		InsightsCreated: insightsCreated,
	}
	response.Window.From = from
	response.Window.To = now
	response.Window.Days = windowDays

	span.SetAttributes(
		attribute.Int("risk.overall_score", overall.Score),
		attribute.String("risk.overall_level", string(overall.Level)),
		attribute.Bool("drift.is_anomaly", analysis.IsAnomaly),
	)
	// Attach output payload for Langfuse
	if outputJSON, err := json.Marshal(response); err == nil {
		span.SetAttributes(attribute.String("langfuse.observation.output", string(outputJSON)))
	}

	return response, nil
}

func (s *riskInsightsService) ListScores(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskScore, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if limit <= 0 {
		limit = DefaultScoreListLimit
	}
	return s.scoreRepo.ListByUser(ctx, userID, limit)
}

func (s *riskInsightsService) ListInsights(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthInsight, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if limit <= 0 {
		limit = DefaultScoreListLimit
	}
	return s.insightRepo.ListByUser(ctx, userID, limit)
}

func (s *riskInsightsService) AcknowledgeInsight(ctx context.Context, userID, insightID uuid.UUID) error {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	return s.insightRepo.Acknowledge(ctx, userID, insightID)
}

// insightTitles maps categories to user-facing headline text.
var insightTitles = map[domain.RiskCategory]string{
	domain.RiskCategoryCardiovascular:  "Your heart health needs attention",
	domain.RiskCategorySleepQuality:    "Your sleep patterns need attention",
	domain.RiskCategoryActivityLevel:   "Your activity level needs attention",
	domain.RiskCategoryOverallWellness: "Your overall wellness needs attention",
}

// buildInsight turns a high-risk category result into a persisted insight.
// The body names the factors that pushed the score up.
func buildInsight(userID uuid.UUID, result domain.CategoryRiskResult) *domain.HealthInsight {
	title, ok := insightTitles[result.Category]
	if !ok {
		title = "A health signal needs attention"
	}

	var reasons []string
	for _, factor := range result.Factors {
		if factor.Contribution > 0 {
			reasons = append(reasons, factor.Description)
		}
	}

	body := fmt.Sprintf("Recent data puts this area at a risk score of %d out of 100.", result.Score)
	if len(reasons) > 0 {
		body += " Contributing signals: " + strings.Join(reasons, "; ") + "."
	}

	return &domain.HealthInsight{
		UserID:   userID,
		Category: result.Category,
		Severity: result.Level,
		Title:    title,
		Body:     body,
	}
}
