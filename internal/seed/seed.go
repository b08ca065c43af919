package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const seededDays = 40

// profile shapes the generated aggregates so the seeded users land in
// different risk bands.
type profile struct {
	baseSteps   int
	stepsJitter int
	baseSleep   int
	sleepJitter int
	baseEnergy  float64
	restingHR   float64
	workoutOdds float32
}

// Run seeds the database with sample users and daily aggregates. Safe to
// call multiple times.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.DailyAggregate{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	birthYears := map[string]int{
		"11111111-1111-1111-1111-111111111111": 1988,
		"22222222-2222-2222-2222-222222222222": 1975,
		"33333333-3333-3333-3333-333333333333": 1996,
	}

	users := []domain.User{
		{ID: uuid.MustParse("11111111-1111-1111-1111-111111111111"), Timezone: "Europe/Amsterdam"},
		{ID: uuid.MustParse("22222222-2222-2222-2222-222222222222"), Timezone: "America/New_York"},
		{ID: uuid.MustParse("33333333-3333-3333-3333-333333333333"), Timezone: "Asia/Tokyo"},
		{ID: uuid.MustParse("44444444-4444-4444-4444-444444444444"), Timezone: "Australia/Sydney"},
	}
	for i := range users {
		if year, ok := birthYears[users[i].ID.String()]; ok {
			y := year
			users[i].BirthYear = &y
		}
	}

	// One active user, one average, one sedentary short-sleeper, one with
	// sparse data.
	profiles := map[string]profile{
		"11111111-1111-1111-1111-111111111111": {baseSteps: 11000, stepsJitter: 2500, baseSleep: 460, sleepJitter: 30, baseEnergy: 520, restingHR: 58, workoutOdds: 0.6},
		"22222222-2222-2222-2222-222222222222": {baseSteps: 6500, stepsJitter: 2000, baseSleep: 420, sleepJitter: 45, baseEnergy: 320, restingHR: 68, workoutOdds: 0.3},
		"33333333-3333-3333-3333-333333333333": {baseSteps: 2200, stepsJitter: 900, baseSleep: 330, sleepJitter: 60, baseEnergy: 150, restingHR: 84, workoutOdds: 0.05},
		"44444444-4444-4444-4444-444444444444": {baseSteps: 8000, stepsJitter: 3000, baseSleep: 440, sleepJitter: 40, baseEnergy: 400, restingHR: 63, workoutOdds: 0.4},
	}

	for _, user := range users {
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, user := range users {
		if err := seedAggregatesForUser(db, user, profiles[user.ID.String()], rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

func seedAggregatesForUser(db *gorm.DB, user domain.User, p profile, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		date := now.AddDate(0, 0, -i)
		day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

		// The sparse-data user skips roughly a third of their days.
		if user.ID.String() == "44444444-4444-4444-4444-444444444444" && rng.Float32() < 0.35 {
			continue
		}

		steps := p.baseSteps + rng.Intn(p.stepsJitter*2) - p.stepsJitter
		if steps < 0 {
			steps = 0
		}
		sleep := p.baseSleep + rng.Intn(p.sleepJitter*2) - p.sleepJitter
		energy := p.baseEnergy * (0.8 + 0.4*rng.Float64())
		restingHR := p.restingHR + float64(rng.Intn(7)) - 3
		avgHR := restingHR + 18 + float64(rng.Intn(10))

		workoutCount := 0
		workoutDuration := 0
		if rng.Float32() < p.workoutOdds {
			workoutCount = 1
			workoutDuration = 25 + rng.Intn(35)
		}

		aggregate := domain.DailyAggregate{
			UserID:           user.ID,
			Date:             day,
			Steps:            steps,
			ActiveEnergy:     energy,
			SleepDuration:    sleep,
			AverageHeartRate: &avgHR,
			RestingHeartRate: &restingHR,
			WorkoutCount:     workoutCount,
			WorkoutDuration:  workoutDuration,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			UpdateAll: true,
		}).Create(&aggregate).Error
		if err != nil {
			return fmt.Errorf("failed to seed aggregate for %s on %s: %w", user.ID, day.Format("2006-01-02"), err)
		}
	}

	return nil
}
