package repository

import (
	"context"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthInsightRepository interface {
	Create(ctx context.Context, insight *domain.HealthInsight) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthInsight, error)
	// Acknowledge marks an insight as read by its owner.
	Acknowledge(ctx context.Context, userID, insightID uuid.UUID) error
}

type healthInsightRepository struct {
	db *gorm.DB
}

func NewHealthInsightRepository(db *gorm.DB) HealthInsightRepository {
	return &healthInsightRepository{db: db}
}

func (r *healthInsightRepository) Create(ctx context.Context, insight *domain.HealthInsight) error {
	return r.db.WithContext(ctx).Create(insight).Error
}

func (r *healthInsightRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.HealthInsight, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var insights []domain.HealthInsight
	if err := query.Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}

func (r *healthInsightRepository) Acknowledge(ctx context.Context, userID, insightID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&domain.HealthInsight{}).
		Where("id = ? AND user_id = ?", insightID, userID).
		Update("acknowledged", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
