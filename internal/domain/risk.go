package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskCategory identifies one scored health dimension.
// @Description Risk category identifier.
type RiskCategory string

const (
	RiskCategoryCardiovascular  RiskCategory = "CARDIOVASCULAR"
	RiskCategorySleepQuality    RiskCategory = "SLEEP_QUALITY"
	RiskCategoryActivityLevel   RiskCategory = "ACTIVITY_LEVEL"
	RiskCategoryOverallWellness RiskCategory = "OVERALL_WELLNESS"
)

// RiskLevel buckets a 0-100 score into three bands.
// @Description Risk level derived from the score.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// DailyAggregateInput is the value object the risk evaluators consume: one
// calendar day's summary, stripped of identity and persistence concerns.
type DailyAggregateInput struct {
	Steps            int      `json:"steps"`
	ActiveEnergy     float64  `json:"active_energy"`
	SleepDuration    int      `json:"sleep_duration"`
	AverageHeartRate *float64 `json:"average_heart_rate,omitempty"`
	RestingHeartRate *float64 `json:"resting_heart_rate,omitempty"`
	WorkoutCount     int      `json:"workout_count"`
	WorkoutDuration  int      `json:"workout_duration"`
}

// RiskFactor is one signal that contributed to a category score. Positive
// contributions increase risk, negative ones decrease it.
// @Description One contributing signal for a risk score.
type RiskFactor struct {
	// Short factor name
	Name string `json:"name" example:"Elevated Resting Heart Rate"`
	// Signed informal weight, typically in [-1, 1]
	Contribution float64 `json:"contribution" example:"0.4"`
	// Human-readable description, may embed computed values
	Description string `json:"description" example:"Average resting heart rate of 84 bpm is above the healthy range"`
}

// CategoryRiskResult is the output of one risk evaluation. Factors are kept
// in evaluation order.
// @Description Risk evaluation result for one category.
type CategoryRiskResult struct {
	// Evaluated category
	Category RiskCategory `json:"category" example:"CARDIOVASCULAR"`
	// Score in [0, 100]; higher means riskier
	Score int `json:"score" example:"35" minimum:"0" maximum:"100"`
	// Level derived from the score
	Level RiskLevel `json:"level" example:"medium"`
	// Confidence in [0, 1] based on sample count
	Confidence float64 `json:"confidence" example:"0.9" minimum:"0" maximum:"1"`
	// Contributing factors in evaluation order
	Factors []RiskFactor `json:"factors"`
}

// RiskScore is one persisted category assessment.
type RiskScore struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID    `gorm:"type:uuid;not null;index:idx_risk_scores_user_computed" json:"user_id"`
	Category   RiskCategory `gorm:"type:varchar(32);not null" json:"category"`
	Score      int          `gorm:"type:smallint;not null" json:"score"`
	Level      RiskLevel    `gorm:"type:varchar(10);not null" json:"level"`
	Confidence float64      `gorm:"not null" json:"confidence"`
	Factors    []RiskFactor `gorm:"serializer:json" json:"factors"`
	WindowDays int          `gorm:"not null" json:"window_days"`
	ComputedAt time.Time    `gorm:"not null;index:idx_risk_scores_user_computed,sort:desc" json:"computed_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (RiskScore) TableName() string {
	return "risk_scores"
}

// ToResult converts a persisted score back into the evaluator value object.
func (s *RiskScore) ToResult() CategoryRiskResult {
	return CategoryRiskResult{
		Category:   s.Category,
		Score:      s.Score,
		Level:      s.Level,
		Confidence: s.Confidence,
		Factors:    s.Factors,
	}
}

// HealthInsight is a persisted user-facing record generated when an
// assessment lands at high risk for a category.
type HealthInsight struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID       uuid.UUID    `gorm:"type:uuid;not null;index:idx_health_insights_user_created" json:"user_id"`
	Category     RiskCategory `gorm:"type:varchar(32);not null" json:"category"`
	Severity     RiskLevel    `gorm:"type:varchar(10);not null" json:"severity"`
	Title        string       `gorm:"type:varchar(255);not null" json:"title"`
	Body         string       `gorm:"type:text;not null" json:"body"`
	Acknowledged bool         `gorm:"not null;default:false" json:"acknowledged"`
	CreatedAt    time.Time    `gorm:"autoCreateTime;index:idx_health_insights_user_created,sort:desc" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (HealthInsight) TableName() string {
	return "health_insights"
}

// RiskAssessmentResponse is the response body for a full risk assessment.
// @Description Full risk assessment across all categories.
type RiskAssessmentResponse struct {
	// Analysis window
	Window struct {
		From time.Time `json:"from" example:"2024-01-01T00:00:00Z"`
		To   time.Time `json:"to" example:"2024-01-15T00:00:00Z"`
		Days int       `json:"days" example:"14"`
	} `json:"window"`
	// Number of daily aggregates found in the window
	DaysWithData int `json:"days_with_data" example:"12"`
	// Per-category results (cardiovascular, sleep, activity)
	Categories []CategoryRiskResult `json:"categories"`
	// Blended overall-wellness result
	Overall CategoryRiskResult `json:"overall"`
	// Insights created by this assessment (high-risk categories only)
	InsightsCreated int `json:"insights_created" example:"1"`
}

// RiskScoreListResponse is the response body for listing persisted scores.
// @Description List of persisted risk scores, most recent first.
type RiskScoreListResponse struct {
	Data []RiskScore `json:"data"`
}

// HealthInsightListResponse is the response body for listing insights.
// @Description List of health insights, most recent first.
type HealthInsightListResponse struct {
	Data []HealthInsight `json:"data"`
}
