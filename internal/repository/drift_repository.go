package repository

import (
	"context"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"gorm.io/gorm"
)

type DriftRecordRepository interface {
	Create(ctx context.Context, record *domain.DriftRecord) error
	// ListRecent returns drift records, most recent first.
	ListRecent(ctx context.Context, limit int) ([]domain.DriftRecord, error)
}

type driftRecordRepository struct {
	db *gorm.DB
}

func NewDriftRecordRepository(db *gorm.DB) DriftRecordRepository {
	return &driftRecordRepository{db: db}
}

func (r *driftRecordRepository) Create(ctx context.Context, record *domain.DriftRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *driftRecordRepository) ListRecent(ctx context.Context, limit int) ([]domain.DriftRecord, error) {
	query := r.db.WithContext(ctx).Order("analyzed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []domain.DriftRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
