package service

import (
	"context"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/repository"
	"github.com/Sakeerin/Preventive-Health-sub000/pkg/pagination"
	"github.com/google/uuid"
)

// AggregateService manages per-day health aggregates for a user.
type AggregateService interface {
	// Upsert records one day's aggregates, replacing any existing row for
	// the same (user, date).
	Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertDailyAggregateRequest) (*domain.DailyAggregate, error)
	// GetByDate returns the stored aggregate for one calendar day.
	GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyAggregate, error)
	// List returns aggregates with cursor pagination.
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyAggregateFilter) (*domain.DailyAggregateListResponse, error)
	// Window returns evaluator inputs for the trailing windowDays days,
	// most recent first.
	Window(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.DailyAggregateInput, error)
}

type aggregateService struct {
	repo     repository.DailyAggregateRepository
	userRepo repository.UserRepository
}

// NewAggregateService creates a new AggregateService.
func NewAggregateService(repo repository.DailyAggregateRepository, userRepo repository.UserRepository) AggregateService {
	return &aggregateService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *aggregateService) Upsert(ctx context.Context, userID uuid.UUID, req *domain.UpsertDailyAggregateRequest) (*domain.DailyAggregate, error) {
	// Validate user exists
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	aggregate := &domain.DailyAggregate{
		UserID:           userID,
		Date:             truncateToDay(req.Date),
		Steps:            req.Steps,
		ActiveEnergy:     req.ActiveEnergy,
		SleepDuration:    req.SleepDuration,
		AverageHeartRate: req.AverageHeartRate,
		RestingHeartRate: req.RestingHeartRate,
		WorkoutCount:     req.WorkoutCount,
		WorkoutDuration:  req.WorkoutDuration,
	}

	if err := s.repo.Upsert(ctx, aggregate); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (s *aggregateService) GetByDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyAggregate, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	return s.repo.GetByUserAndDate(ctx, userID, truncateToDay(date))
}

func (s *aggregateService) List(ctx context.Context, userID uuid.UUID, filter domain.DailyAggregateFilter) (*domain.DailyAggregateListResponse, error) {
	exists, err := s.userRepo.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	aggregates, err := s.repo.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	limit := pagination.NormalizeLimit(filter.Limit)
	hasMore := len(aggregates) > limit

	// Trim to actual limit
	if hasMore {
		aggregates = aggregates[:limit]
	}

	response := &domain.DailyAggregateListResponse{
		Data: make([]domain.DailyAggregateResponse, len(aggregates)),
		Pagination: domain.PaginationResponse{
			HasMore: hasMore,
		},
	}

	for i, aggregate := range aggregates {
		response.Data[i] = aggregate.ToResponse()
	}

	// Set next cursor if there are more results
	if hasMore && len(aggregates) > 0 {
		last := aggregates[len(aggregates)-1]
		cursor := &pagination.Cursor{
			ID:   last.ID,
			Date: last.Date,
		}
		response.Pagination.NextCursor = cursor.Encode()
	}

	return response, nil
}

func (s *aggregateService) Window(ctx context.Context, userID uuid.UUID, windowDays int) ([]domain.DailyAggregateInput, error) {
	now := time.Now().UTC()
	from := truncateToDay(now.AddDate(0, 0, -windowDays))

	rows, err := s.repo.ListByDateRange(ctx, userID, from, truncateToDay(now))
	if err != nil {
		return nil, err
	}

	inputs := make([]domain.DailyAggregateInput, len(rows))
	for i := range rows {
		inputs[i] = rows[i].ToInput()
	}
	return inputs, nil
}

// truncateToDay drops the time-of-day portion, keeping the calendar date in UTC.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
