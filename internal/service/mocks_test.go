package service

import (
	"context"
	"sort"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/google/uuid"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		users: make(map[uuid.UUID]*domain.User),
	}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	m.users[user.ID] = user
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	user, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// MockDailyAggregateRepository is a mock implementation of DailyAggregateRepository
type MockDailyAggregateRepository struct {
	rows map[string]*domain.DailyAggregate // keyed by userID:date
	err  error
}

func NewMockDailyAggregateRepository() *MockDailyAggregateRepository {
	return &MockDailyAggregateRepository{
		rows: make(map[string]*domain.DailyAggregate),
	}
}

func aggregateKey(userID uuid.UUID, date time.Time) string {
	return userID.String() + ":" + date.UTC().Format("2006-01-02")
}

func (m *MockDailyAggregateRepository) Upsert(ctx context.Context, aggregate *domain.DailyAggregate) error {
	if m.err != nil {
		return m.err
	}
	key := aggregateKey(aggregate.UserID, aggregate.Date)
	if existing, ok := m.rows[key]; ok {
		aggregate.ID = existing.ID
		aggregate.CreatedAt = existing.CreatedAt
	} else {
		aggregate.ID = uuid.New()
		aggregate.CreatedAt = time.Now()
	}
	aggregate.UpdatedAt = time.Now()
	m.rows[key] = aggregate
	return nil
}

func (m *MockDailyAggregateRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyAggregate, error) {
	if m.err != nil {
		return nil, m.err
	}
	row, ok := m.rows[aggregateKey(userID, date)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return row, nil
}

func (m *MockDailyAggregateRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyAggregateFilter) ([]domain.DailyAggregate, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.DailyAggregate
	for _, row := range m.rows {
		if row.UserID != userID {
			continue
		}
		if filter.From != nil && row.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && row.Date.After(*filter.To) {
			continue
		}
		result = append(result, *row)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (m *MockDailyAggregateRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyAggregate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.List(ctx, userID, domain.DailyAggregateFilter{From: &from, To: &to})
}

// MockRiskScoreRepository is a mock implementation of RiskScoreRepository
type MockRiskScoreRepository struct {
	scores []domain.RiskScore
	err    error
}

func NewMockRiskScoreRepository() *MockRiskScoreRepository {
	return &MockRiskScoreRepository{}
}

func (m *MockRiskScoreRepository) CreateBatch(ctx context.Context, scores []*domain.RiskScore) error {
	if m.err != nil {
		return m.err
	}
	for _, score := range scores {
		if score.ID == uuid.Nil {
			score.ID = uuid.New()
		}
		m.scores = append(m.scores, *score)
	}
	return nil
}

func (m *MockRiskScoreRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.RiskScore
	for _, score := range m.scores {
		if score.UserID == userID {
			result = append(result, score)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockRiskScoreRepository) LatestByCategory(ctx context.Context, userID uuid.UUID, category domain.RiskCategory) (*domain.RiskScore, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := len(m.scores) - 1; i >= 0; i-- {
		if m.scores[i].UserID == userID && m.scores[i].Category == category {
			score := m.scores[i]
			return &score, nil
		}
	}
	return nil, domain.ErrNotFound
}

// MockHealthInsightRepository is a mock implementation of HealthInsightRepository
type MockHealthInsightRepository struct {
	insights []domain.HealthInsight
	err      error
}

func NewMockHealthInsightRepository() *MockHealthInsightRepository {
	return &MockHealthInsightRepository{}
}

func (m *MockHealthInsightRepository) Create(ctx context.Context, insight *domain.HealthInsight) error {
	if m.err != nil {
		return m.err
	}
	if insight.ID == uuid.Nil {
		insight.ID = uuid.New()
	}
	insight.CreatedAt = time.Now()
	m.insights = append(m.insights, *insight)
	return nil
}

func (m *MockHealthInsightRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthInsight, error) {
	if m.err != nil {
		return nil, m.err
	}
	var result []domain.HealthInsight
	for _, insight := range m.insights {
		if insight.UserID == userID {
			result = append(result, insight)
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockHealthInsightRepository) Acknowledge(ctx context.Context, userID, insightID uuid.UUID) error {
	if m.err != nil {
		return m.err
	}
	for i := range m.insights {
		if m.insights[i].ID == insightID && m.insights[i].UserID == userID {
			m.insights[i].Acknowledged = true
			return nil
		}
	}
	return domain.ErrNotFound
}

// MockDriftRecordRepository is a mock implementation of DriftRecordRepository
type MockDriftRecordRepository struct {
	records []domain.DriftRecord
	err     error
}

func NewMockDriftRecordRepository() *MockDriftRecordRepository {
	return &MockDriftRecordRepository{}
}

func (m *MockDriftRecordRepository) Create(ctx context.Context, record *domain.DriftRecord) error {
	if m.err != nil {
		return m.err
	}
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	m.records = append(m.records, *record)
	return nil
}

func (m *MockDriftRecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.DriftRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	result := make([]domain.DriftRecord, len(m.records))
	copy(result, m.records)
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// MockSummaryLLM is a mock implementation of llm.SummaryLLM
type MockSummaryLLM struct {
	generateFunc func(ctx context.Context, wellnessCtx *domain.WellnessContext) (*domain.WellnessSummary, error)
}

func (m *MockSummaryLLM) GenerateSummary(ctx context.Context, wellnessCtx *domain.WellnessContext) (*domain.WellnessSummary, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, wellnessCtx)
	}
	return &domain.WellnessSummary{
		Summary:      "All clear.",
		Observations: []string{"Activity is steady."},
		Guidance:     []string{"Keep it up."},
	}, nil
}

func intPtr(v int) *int {
	return &v
}

func float64Ptr(v float64) *float64 {
	return &v
}
