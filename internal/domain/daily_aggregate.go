package domain

import (
	"time"

	"github.com/google/uuid"
)

// DailyAggregate is one calendar day's health summary for a user, as
// synced from the client's health connector.
type DailyAggregate struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_daily_aggregates_user_date;index:idx_daily_aggregates_user_date_sort" json:"user_id"`
	Date             time.Time `gorm:"type:date;not null;uniqueIndex:idx_daily_aggregates_user_date;index:idx_daily_aggregates_user_date_sort,sort:desc" json:"date"`
	Steps            int       `gorm:"not null;default:0" json:"steps"`
	ActiveEnergy     float64   `gorm:"not null;default:0" json:"active_energy"`
	SleepDuration    int       `gorm:"not null;default:0" json:"sleep_duration"`
	AverageHeartRate *float64  `json:"average_heart_rate,omitempty"`
	RestingHeartRate *float64  `json:"resting_heart_rate,omitempty"`
	WorkoutCount     int       `gorm:"not null;default:0" json:"workout_count"`
	WorkoutDuration  int       `gorm:"not null;default:0" json:"workout_duration"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (DailyAggregate) TableName() string {
	return "daily_aggregates"
}

// ToInput converts the persisted row into the value object consumed by the
// risk evaluators.
func (a *DailyAggregate) ToInput() DailyAggregateInput {
	return DailyAggregateInput{
		Steps:            a.Steps,
		ActiveEnergy:     a.ActiveEnergy,
		SleepDuration:    a.SleepDuration,
		AverageHeartRate: a.AverageHeartRate,
		RestingHeartRate: a.RestingHeartRate,
		WorkoutCount:     a.WorkoutCount,
		WorkoutDuration:  a.WorkoutDuration,
	}
}

// UpsertDailyAggregateRequest is the request body for recording a day's
// aggregates. Repeated submissions for the same (user, date) overwrite the
// existing row.
// @Description Request payload for upserting one day's health aggregates.
type UpsertDailyAggregateRequest struct {
	// Calendar day the aggregates belong to (date portion is used)
	Date time.Time `json:"date" validate:"required" example:"2024-01-15T00:00:00Z"`
	// Total step count for the day
	Steps int `json:"steps" validate:"min=0" example:"8500" minimum:"0"`
	// Active energy burned in kcal
	ActiveEnergy float64 `json:"active_energy" validate:"min=0" example:"420.5" minimum:"0"`
	// Total sleep duration in minutes
	SleepDuration int `json:"sleep_duration" validate:"min=0" example:"450" minimum:"0"`
	// Average heart rate in bpm, if recorded
	AverageHeartRate *float64 `json:"average_heart_rate,omitempty" validate:"omitempty,min=20,max=250" example:"72"`
	// Resting heart rate in bpm, if recorded
	RestingHeartRate *float64 `json:"resting_heart_rate,omitempty" validate:"omitempty,min=20,max=250" example:"61"`
	// Number of workouts for the day
	WorkoutCount int `json:"workout_count" validate:"min=0" example:"1" minimum:"0"`
	// Total workout duration in minutes
	WorkoutDuration int `json:"workout_duration" validate:"min=0" example:"35" minimum:"0"`
}

// DailyAggregateResponse is the response body for daily aggregate endpoints.
// @Description One day's persisted health aggregates.
type DailyAggregateResponse struct {
	// Unique aggregate identifier
	ID uuid.UUID `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Owner user ID
	UserID uuid.UUID `json:"user_id" example:"660e8400-e29b-41d4-a716-446655440001"`
	// Calendar day
	Date time.Time `json:"date" example:"2024-01-15T00:00:00Z"`
	// Total step count
	Steps int `json:"steps" example:"8500"`
	// Active energy in kcal
	ActiveEnergy float64 `json:"active_energy" example:"420.5"`
	// Sleep duration in minutes
	SleepDuration int `json:"sleep_duration" example:"450"`
	// Average heart rate in bpm
	AverageHeartRate *float64 `json:"average_heart_rate,omitempty" example:"72"`
	// Resting heart rate in bpm
	RestingHeartRate *float64 `json:"resting_heart_rate,omitempty" example:"61"`
	// Workout count
	WorkoutCount int `json:"workout_count" example:"1"`
	// Workout duration in minutes
	WorkoutDuration int `json:"workout_duration" example:"35"`
	// Record creation timestamp
	CreatedAt time.Time `json:"created_at" example:"2024-01-16T07:05:00Z"`
	// Record update timestamp
	UpdatedAt time.Time `json:"updated_at" example:"2024-01-16T07:05:00Z"`
}

func (a *DailyAggregate) ToResponse() DailyAggregateResponse {
	return DailyAggregateResponse{
		ID:               a.ID,
		UserID:           a.UserID,
		Date:             a.Date,
		Steps:            a.Steps,
		ActiveEnergy:     a.ActiveEnergy,
		SleepDuration:    a.SleepDuration,
		AverageHeartRate: a.AverageHeartRate,
		RestingHeartRate: a.RestingHeartRate,
		WorkoutCount:     a.WorkoutCount,
		WorkoutDuration:  a.WorkoutDuration,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// DailyAggregateListResponse is the response body for listing aggregates.
// @Description Paginated list of daily aggregates.
type DailyAggregateListResponse struct {
	// Array of daily aggregate records
	Data []DailyAggregateResponse `json:"data"`
	// Pagination metadata
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse contains pagination metadata.
// @Description Cursor-based pagination info.
type PaginationResponse struct {
	// Cursor for fetching the next page (empty if no more pages)
	NextCursor string `json:"next_cursor,omitempty" example:"eyJpZCI6IjU1MGU4NDAwLWUyOWItNDFkNC1hNzE2LTQ0NjY1NTQ0MDAwMCJ9"`
	// True if more results are available
	HasMore bool `json:"has_more" example:"true"`
}

// DailyAggregateFilter contains filter parameters for listing aggregates.
type DailyAggregateFilter struct {
	From   *time.Time
	To     *time.Time
	Limit  int
	Cursor string
}
