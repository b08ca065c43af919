package domain

import (
	"time"

	"github.com/google/uuid"
)

// RiskProfile is optional demographic context attached to a model input.
// Only its presence feeds the input fingerprint today.
type RiskProfile struct {
	Age           int    `json:"age,omitempty"`
	BiologicalSex string `json:"biological_sex,omitempty"`
}

// ModelInput is the unit fed to the drift monitor: the aggregate batch a
// scoring run consumed, plus optional profile context.
type ModelInput struct {
	Aggregates []DailyAggregateInput `json:"aggregates"`
	Profile    *RiskProfile          `json:"profile,omitempty"`
}

// InputSummary condenses a model input into the rounded averages tracked by
// the drift monitor.
// @Description Condensed model-input summary.
type InputSummary struct {
	// Number of daily aggregates in the input
	DataPointCount int `json:"data_point_count" example:"14"`
	// Average daily steps, rounded
	AvgSteps int `json:"avg_steps" example:"8200"`
	// Average sleep duration in minutes, rounded
	AvgSleep int `json:"avg_sleep" example:"430"`
	// Average active energy in kcal, rounded
	AvgEnergy int `json:"avg_energy" example:"410"`
	// True if any day carried heart-rate data
	HasHeartRateData bool `json:"has_heart_rate_data" example:"true"`
}

// DriftAnalysis is one drift-monitor observation.
// @Description Drift analysis for one scoring input.
type DriftAnalysis struct {
	// Deterministic fingerprint of the rounded input
	InputHash string `json:"input_hash" example:"9f2c4e1a7b3d5f08"`
	// Condensed input summary
	Summary InputSummary `json:"summary"`
	// Distribution drift in [0, 1]; null until enough history accumulates
	DriftScore *float64 `json:"drift_score" example:"0.12"`
	// True if the input tripped a sanity bound
	IsAnomaly bool `json:"is_anomaly" example:"false"`
	// When the analysis ran
	AnalyzedAt time.Time `json:"analyzed_at" example:"2024-01-15T07:05:00Z"`
}

// DriftRecord is a persisted DriftAnalysis for operational monitoring.
type DriftRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	InputHash        string    `gorm:"type:varchar(16);not null;index" json:"input_hash"`
	DataPointCount   int       `gorm:"not null" json:"data_point_count"`
	AvgSteps         int       `gorm:"not null" json:"avg_steps"`
	AvgSleep         int       `gorm:"not null" json:"avg_sleep"`
	AvgEnergy        int       `gorm:"not null" json:"avg_energy"`
	HasHeartRateData bool      `gorm:"not null" json:"has_heart_rate_data"`
	DriftScore       *float64  `json:"drift_score"`
	IsAnomaly        bool      `gorm:"not null;index" json:"is_anomaly"`
	AnalyzedAt       time.Time `gorm:"not null;index:,sort:desc" json:"analyzed_at"`
}

func (DriftRecord) TableName() string {
	return "drift_records"
}

// NewDriftRecord flattens a DriftAnalysis into its persisted form.
func NewDriftRecord(a DriftAnalysis) *DriftRecord {
	return &DriftRecord{
		InputHash:        a.InputHash,
		DataPointCount:   a.Summary.DataPointCount,
		AvgSteps:         a.Summary.AvgSteps,
		AvgSleep:         a.Summary.AvgSleep,
		AvgEnergy:        a.Summary.AvgEnergy,
		HasHeartRateData: a.Summary.HasHeartRateData,
		DriftScore:       a.DriftScore,
		IsAnomaly:        a.IsAnomaly,
		AnalyzedAt:       a.AnalyzedAt,
	}
}

// DriftStatusResponse is the response body for the drift ops endpoint.
// @Description Drift monitor status with recent observations.
type DriftStatusResponse struct {
	// Number of inputs folded into the running baseline
	BaselineSamples int `json:"baseline_samples" example:"240"`
	// Recent drift records, most recent first
	Recent []DriftRecord `json:"recent"`
}
