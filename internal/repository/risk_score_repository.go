package repository

import (
	"context"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RiskScoreRepository interface {
	// CreateBatch persists all scores from one assessment run.
	CreateBatch(ctx context.Context, scores []*domain.RiskScore) error
	// ListByUser returns persisted scores, most recent first.
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskScore, error)
	// LatestByCategory returns the most recent score for one category.
	LatestByCategory(ctx context.Context, userID uuid.UUID, category domain.RiskCategory) (*domain.RiskScore, error)
}

type riskScoreRepository struct {
	db *gorm.DB
}

func NewRiskScoreRepository(db *gorm.DB) RiskScoreRepository {
	return &riskScoreRepository{db: db}
}

func (r *riskScoreRepository) CreateBatch(ctx context.Context, scores []*domain.RiskScore) error {
	if len(scores) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(scores).Error
}

func (r *riskScoreRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.RiskScore, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("computed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var scores []domain.RiskScore
	if err := query.Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *riskScoreRepository) LatestByCategory(ctx context.Context, userID uuid.UUID, category domain.RiskCategory) (*domain.RiskScore, error) {
	var score domain.RiskScore
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category = ?", userID, category).
		Order("computed_at DESC").
		First(&score).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &score, nil
}
