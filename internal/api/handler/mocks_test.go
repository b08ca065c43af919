package handler

import (
	"context"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/google/uuid"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	createFunc  func(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	getByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

func (m *MockUserService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return &domain.User{ID: uuid.New(), Timezone: req.Timezone, BirthYear: req.BirthYear}, nil
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

// MockAggregateService is a mock implementation of AggregateService
type MockAggregateService struct {
	upsertFunc    func(ctx context.Context, userID uuid.UUID, req *domain.UpsertDailyAggregateRequest) (*domain.DailyAggregate, error)
	getByDateFunc func(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyAggregate, error)
	listFunc      func(ctx context.Context, userID uuid.UUID, filter domain.DailyAggregateFilter) (*domain.DailyAggregateListResponse, error)
	windowFunc    func(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.DailyAggregateInput, error)
}

func (m *MockAggregateService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertDailyAggregateRequest) (*domain.DailyAggregate, error) {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, userID, req)
	}
	return &domain.DailyAggregate{
		ID:            uuid.New(),
		UserID:        userID,
		Date:          req.Date,
		Steps:         req.Steps,
		ActiveEnergy:  req.ActiveEnergy,
		SleepDuration: req.SleepDuration,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}, nil
}

func (m *MockAggregateService) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyAggregate, error) {
	if m.getByDateFunc != nil {
		return m.getByDateFunc(ctx, userID, date)
	}
	return &domain.DailyAggregate{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      date,
		Steps:     8500,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}

func (m *MockAggregateService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyAggregateFilter) (*domain.DailyAggregateListResponse, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID, filter)
	}
	return &domain.DailyAggregateListResponse{
		Data:       []domain.DailyAggregateResponse{},
		Pagination: domain.PaginationResponse{HasMore: false},
	}, nil
}

func (m *MockAggregateService) Window(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.DailyAggregateInput, error) {
	if m.windowFunc != nil {
		return m.windowFunc(ctx, userID, windowDays)
	}
	return nil, nil
}

// MockRiskInsightsService is a mock implementation of RiskInsightsService
type MockRiskInsightsService struct {
	assessFunc       func(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.RiskAssessmentResponse, error)
	listScoresFunc   func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskScore, error)
	listInsightsFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthInsight, error)
	acknowledgeFunc  func(ctx context.Context, userID, insightID uuid.UUID) error
}

func (m *MockRiskInsightsService) Assess(ctx context.Context, userID uuid.UUID, windowDays int) (*domain.RiskAssessmentResponse, error) {
	if m.assessFunc != nil {
		return m.assessFunc(ctx, userID, windowDays)
	}
	return &domain.RiskAssessmentResponse{
		DaysWithData: 0,
		Categories: []domain.CategoryRiskResult{
			{Category: domain.RiskCategoryCardiovascular, Score: 50, Level: domain.RiskLevelMedium, Confidence: 0.1},
			{Category: domain.RiskCategorySleepQuality, Score: 50, Level: domain.RiskLevelMedium, Confidence: 0.1},
			{Category: domain.RiskCategoryActivityLevel, Score: 50, Level: domain.RiskLevelMedium, Confidence: 0.1},
		},
		Overall: domain.CategoryRiskResult{Category: domain.RiskCategoryOverallWellness, Score: 50, Level: domain.RiskLevelMedium, Confidence: 0.1},
	}, nil
}

func (m *MockRiskInsightsService) ListScores(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskScore, error) {
	if m.listScoresFunc != nil {
		return m.listScoresFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *MockRiskInsightsService) ListInsights(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthInsight, error) {
	if m.listInsightsFunc != nil {
		return m.listInsightsFunc(ctx, userID, limit)
	}
	return nil, nil
}

func (m *MockRiskInsightsService) AcknowledgeInsight(ctx context.Context, userID, insightID uuid.UUID) error {
	if m.acknowledgeFunc != nil {
		return m.acknowledgeFunc(ctx, userID, insightID)
	}
	return nil
}

// MockWellnessSummaryService is a mock implementation of WellnessSummaryService
type MockWellnessSummaryService struct {
	generateFunc func(ctx context.Context, userID uuid.UUID) (*domain.WellnessSummaryResponse, error)
}

func (m *MockWellnessSummaryService) Generate(ctx context.Context, userID uuid.UUID) (*domain.WellnessSummaryResponse, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, userID)
	}
	return &domain.WellnessSummaryResponse{
		Summary: domain.WellnessSummary{
			Summary:      "Steady week.",
			Observations: []string{"Sleep is consistent."},
			Guidance:     []string{"Keep the current routine."},
		},
	}, nil
}

// MockDriftService is a mock implementation of DriftService
type MockDriftService struct {
	statusFunc func(ctx context.Context, limit int) (*domain.DriftStatusResponse, error)
	resetCalls int
}

func (m *MockDriftService) Status(ctx context.Context, limit int) (*domain.DriftStatusResponse, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, limit)
	}
	return &domain.DriftStatusResponse{Recent: []domain.DriftRecord{}}, nil
}

func (m *MockDriftService) Reset() {
	m.resetCalls++
}
