package service

import (
	"context"
	"testing"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/Sakeerin/Preventive-Health-sub000/internal/risk"
)

func TestDriftService_Status(t *testing.T) {
	driftRepo := NewMockDriftRecordRepository()
	monitor := risk.NewMonitor()
	svc := NewDriftService(driftRepo, monitor)

	// Feed the monitor a few normal observations.
	input := domain.ModelInput{
		Aggregates: []domain.DailyAggregateInput{
			{Steps: 8000, SleepDuration: 430, ActiveEnergy: 400},
		},
	}
	for i := 0; i < 3; i++ {
		analysis := monitor.Analyze(input)
		if err := driftRepo.Create(context.Background(), domain.NewDriftRecord(analysis)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	status, err := svc.Status(context.Background(), 10)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if status.BaselineSamples != 3 {
		t.Errorf("BaselineSamples = %d, want 3", status.BaselineSamples)
	}
	if len(status.Recent) != 3 {
		t.Errorf("Recent has %d records, want 3", len(status.Recent))
	}
}

func TestDriftService_Status_DefaultLimit(t *testing.T) {
	driftRepo := NewMockDriftRecordRepository()
	for i := 0; i < DefaultDriftListLimit+10; i++ {
		driftRepo.records = append(driftRepo.records, domain.DriftRecord{
			InputHash:  "abc",
			AnalyzedAt: time.Now().UTC(),
		})
	}

	svc := NewDriftService(driftRepo, risk.NewMonitor())

	status, err := svc.Status(context.Background(), 0)
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if len(status.Recent) != DefaultDriftListLimit {
		t.Errorf("Recent has %d records, want %d", len(status.Recent), DefaultDriftListLimit)
	}
}

func TestDriftService_Reset(t *testing.T) {
	monitor := risk.NewMonitor()
	monitor.Analyze(domain.ModelInput{
		Aggregates: []domain.DailyAggregateInput{{Steps: 8000}},
	})

	svc := NewDriftService(NewMockDriftRecordRepository(), monitor)
	svc.Reset()

	if n := monitor.Stats().Count; n != 0 {
		t.Errorf("baseline count after reset = %d, want 0", n)
	}
}
