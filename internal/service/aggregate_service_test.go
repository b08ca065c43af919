package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/google/uuid"
)

// Mocks are defined in mocks_test.go

func TestAggregateService_Upsert(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	repo := NewMockDailyAggregateRepository()
	svc := NewAggregateService(repo, userRepo)

	req := &domain.UpsertDailyAggregateRequest{
		Date:          time.Date(2024, 1, 15, 13, 45, 0, 0, time.UTC),
		Steps:         8500,
		ActiveEnergy:  420.5,
		SleepDuration: 450,
		WorkoutCount:  1,
	}

	aggregate, err := svc.Upsert(context.Background(), userID, req)
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if aggregate.ID == uuid.Nil {
		t.Error("Upsert() did not assign an ID")
	}

	// Time-of-day must be dropped.
	wantDate := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	if !aggregate.Date.Equal(wantDate) {
		t.Errorf("Upsert() date = %v, want %v", aggregate.Date, wantDate)
	}
}

func TestAggregateService_Upsert_SameDayReplaces(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	repo := NewMockDailyAggregateRepository()
	svc := NewAggregateService(repo, userRepo)

	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	first, err := svc.Upsert(context.Background(), userID, &domain.UpsertDailyAggregateRequest{
		Date:  date,
		Steps: 4000,
	})
	if err != nil {
		t.Fatalf("first Upsert() error = %v", err)
	}

	second, err := svc.Upsert(context.Background(), userID, &domain.UpsertDailyAggregateRequest{
		Date:  date,
		Steps: 9000,
	})
	if err != nil {
		t.Fatalf("second Upsert() error = %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("second upsert created a new row: id %v != %v", second.ID, first.ID)
	}
	if len(repo.rows) != 1 {
		t.Errorf("expected 1 stored row, got %d", len(repo.rows))
	}
	stored, err := repo.GetByUserAndDate(context.Background(), userID, date)
	if err != nil {
		t.Fatalf("GetByUserAndDate() error = %v", err)
	}
	if stored.Steps != 9000 {
		t.Errorf("stored steps = %d, want 9000", stored.Steps)
	}
}

func TestAggregateService_Upsert_UserNotFound(t *testing.T) {
	svc := NewAggregateService(NewMockDailyAggregateRepository(), NewMockUserRepository())

	_, err := svc.Upsert(context.Background(), uuid.New(), &domain.UpsertDailyAggregateRequest{
		Date:  time.Now().UTC(),
		Steps: 1000,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Upsert() error = %v, want ErrNotFound", err)
	}
}

func TestAggregateService_GetByDate(t *testing.T) {
	userID := uuid.New()
	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	svc := NewAggregateService(NewMockDailyAggregateRepository(), userRepo)

	// Stored with a time-of-day portion, fetched by calendar day.
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Upsert(context.Background(), userID, &domain.UpsertDailyAggregateRequest{
		Date:  day.Add(9 * time.Hour),
		Steps: 7200,
	}); err != nil {
		t.Fatalf("seed Upsert() error = %v", err)
	}

	got, err := svc.GetByDate(context.Background(), userID, day.Add(22*time.Hour))
	if err != nil {
		t.Fatalf("GetByDate() error = %v", err)
	}
	if got.Steps != 7200 {
		t.Errorf("GetByDate() steps = %d, want 7200", got.Steps)
	}
	if !got.Date.Equal(day) {
		t.Errorf("GetByDate() date = %v, want %v", got.Date, day)
	}

	_, err = svc.GetByDate(context.Background(), userID, day.AddDate(0, 0, 1))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByDate() error for empty day = %v, want ErrNotFound", err)
	}
}

func TestAggregateService_GetByDate_UserNotFound(t *testing.T) {
	svc := NewAggregateService(NewMockDailyAggregateRepository(), NewMockUserRepository())

	_, err := svc.GetByDate(context.Background(), uuid.New(), time.Now().UTC())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetByDate() error = %v, want ErrNotFound", err)
	}
}

func TestAggregateService_List_Pagination(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	repo := NewMockDailyAggregateRepository()
	svc := NewAggregateService(repo, userRepo)

	// Seed 25 days of data.
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		_, err := svc.Upsert(context.Background(), userID, &domain.UpsertDailyAggregateRequest{
			Date:  base.AddDate(0, 0, i),
			Steps: 5000 + i*100,
		})
		if err != nil {
			t.Fatalf("seed Upsert() error = %v", err)
		}
	}

	resp, err := svc.List(context.Background(), userID, domain.DailyAggregateFilter{Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 10 {
		t.Errorf("List() returned %d rows, want 10", len(resp.Data))
	}
	if !resp.Pagination.HasMore {
		t.Error("List() HasMore = false, want true")
	}
	if resp.Pagination.NextCursor == "" {
		t.Error("List() NextCursor is empty")
	}

	// Most recent day first.
	wantFirst := base.AddDate(0, 0, 24)
	if !resp.Data[0].Date.Equal(wantFirst) {
		t.Errorf("List() first date = %v, want %v", resp.Data[0].Date, wantFirst)
	}
}

func TestAggregateService_List_NoMore(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	repo := NewMockDailyAggregateRepository()
	svc := NewAggregateService(repo, userRepo)

	_, err := svc.Upsert(context.Background(), userID, &domain.UpsertDailyAggregateRequest{
		Date:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Steps: 5000,
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	resp, err := svc.List(context.Background(), userID, domain.DailyAggregateFilter{Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(resp.Data) != 1 {
		t.Errorf("List() returned %d rows, want 1", len(resp.Data))
	}
	if resp.Pagination.HasMore {
		t.Error("List() HasMore = true, want false")
	}
	if resp.Pagination.NextCursor != "" {
		t.Errorf("List() NextCursor = %q, want empty", resp.Pagination.NextCursor)
	}
}

func TestAggregateService_Window(t *testing.T) {
	userID := uuid.New()

	userRepo := NewMockUserRepository()
	userRepo.users[userID] = &domain.User{ID: userID, Timezone: "UTC"}

	repo := NewMockDailyAggregateRepository()
	svc := NewAggregateService(repo, userRepo)

	now := time.Now().UTC()
	// Three days inside the window, one well outside it.
	for _, daysAgo := range []int{1, 3, 5, 30} {
		_, err := svc.Upsert(context.Background(), userID, &domain.UpsertDailyAggregateRequest{
			Date:  now.AddDate(0, 0, -daysAgo),
			Steps: 6000,
		})
		if err != nil {
			t.Fatalf("seed Upsert() error = %v", err)
		}
	}

	inputs, err := svc.Window(context.Background(), userID, 14)
	if err != nil {
		t.Fatalf("Window() error = %v", err)
	}
	if len(inputs) != 3 {
		t.Errorf("Window() returned %d inputs, want 3", len(inputs))
	}
	for _, input := range inputs {
		if input.Steps != 6000 {
			t.Errorf("Window() input steps = %d, want 6000", input.Steps)
		}
	}
}
