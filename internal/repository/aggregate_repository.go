package repository

import (
	"context"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyAggregateRepository interface {
	// Upsert inserts or replaces the row for (user, date).
	Upsert(ctx context.Context, aggregate *domain.DailyAggregate) error
	GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyAggregate, error)
	List(ctx context.Context, userID uuid.UUID, filter domain.DailyAggregateFilter) ([]domain.DailyAggregate, error)
	// ListByDateRange returns aggregates with date in [from, to], most recent first.
	ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyAggregate, error)
}

type dailyAggregateRepository struct {
	db *gorm.DB
}

func NewDailyAggregateRepository(db *gorm.DB) DailyAggregateRepository {
	return &dailyAggregateRepository{db: db}
}

func (r *dailyAggregateRepository) Upsert(ctx context.Context, aggregate *domain.DailyAggregate) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"steps", "active_energy", "sleep_duration",
			"average_heart_rate", "resting_heart_rate",
			"workout_count", "workout_duration", "updated_at",
		}),
	}).Create(aggregate).Error
}

func (r *dailyAggregateRepository) GetByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*domain.DailyAggregate, error) {
	var aggregate domain.DailyAggregate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&aggregate).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &aggregate, nil
}

func (r *dailyAggregateRepository) List(ctx context.Context, userID uuid.UUID, filter domain.DailyAggregateFilter) ([]domain.DailyAggregate, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC")

	// Apply date filters
	if filter.From != nil {
		query = query.Where("date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", filter.To)
	}

	// Apply cursor pagination
	if filter.Cursor != "" {
		cursor, err := pagination.DecodeCursor(filter.Cursor)
		if err == nil && cursor != nil {
			// For DESC order: get records with date < cursor.Date
			// or same date but id < cursor.ID
			query = query.Where(
				"(date < ?) OR (date = ? AND id < ?)",
				cursor.Date, cursor.Date, cursor.ID,
			)
		}
	}

	// Fetch one extra to determine if there are more results
	limit := pagination.NormalizeLimit(filter.Limit)
	query = query.Limit(limit + 1)

	var aggregates []domain.DailyAggregate
	if err := query.Find(&aggregates).Error; err != nil {
		return nil, err
	}

	return aggregates, nil
}

func (r *dailyAggregateRepository) ListByDateRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.DailyAggregate, error) {
	var aggregates []domain.DailyAggregate
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date DESC").
		Find(&aggregates).Error
	if err != nil {
		return nil, err
	}
	return aggregates, nil
}
