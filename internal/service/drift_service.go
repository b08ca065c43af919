package service

import (
	"context"
	"log"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/repository"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/risk"
)

// DefaultDriftListLimit bounds drift-record listings.
const DefaultDriftListLimit = 50

// DriftService exposes the drift monitor for operational use: inspecting
// recent observations and resetting the baseline before a retrain.
type DriftService interface {
	Status(ctx context.Context, limit int) (*domain.DriftStatusResponse, error)
	Reset()
}

type driftService struct {
	driftRepo repository.DriftRecordRepository
	monitor   *risk.Monitor
}

// NewDriftService creates a new DriftService over the shared monitor.
func NewDriftService(driftRepo repository.DriftRecordRepository, monitor *risk.Monitor) DriftService {
	return &driftService{
		driftRepo: driftRepo,
		monitor:   monitor,
	}
}

func (s *driftService) Status(ctx context.Context, limit int) (*domain.DriftStatusResponse, error) {
	if limit <= 0 {
		limit = DefaultDriftListLimit
	}

	records, err := s.driftRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	return &domain.DriftStatusResponse{
		BaselineSamples: s.monitor.Stats().Count,
		Recent:          records,
	}, nil
}

func (s *driftService) Reset() {
	s.monitor.Reset()
	log.Println("drift monitor baseline reset")
}
