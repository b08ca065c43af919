// Package risk implements the rule-based risk model: three category
// evaluators over daily health aggregates, a weighted overall-wellness
// aggregator, and a drift monitor over scoring inputs. The evaluators are
// pure functions; only the Monitor carries state.
package risk

import (
	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
)

const (
	// ScoreMin and ScoreMax bound every category score.
	ScoreMin = 0
	ScoreMax = 100

	// Level thresholds: score <= 33 is low, 34-66 medium, >= 67 high.
	lowScoreMax    = 33
	mediumScoreMax = 66

	// FullConfidenceDays is the window length at which confidence saturates.
	FullConfidenceDays = 14

	// MaxConfidence caps confidence regardless of sample count.
	MaxConfidence = 0.9

	// FallbackScore and FallbackConfidence are returned for empty input.
	FallbackScore      = 50
	FallbackConfidence = 0.1
)

// LevelForScore derives the risk level from a score using the fixed
// 33/66 boundaries shared by all categories.
func LevelForScore(score int) domain.RiskLevel {
	switch {
	case score <= lowScoreMax:
		return domain.RiskLevelLow
	case score <= mediumScoreMax:
		return domain.RiskLevelMedium
	default:
		return domain.RiskLevelHigh
	}
}

// WindowConfidence maps a sample count to confidence: a linear ramp that
// saturates at MaxConfidence once a full 14-day window is available.
func WindowConfidence(sampleCount int) float64 {
	c := float64(sampleCount) / FullConfidenceDays
	if c > MaxConfidence {
		return MaxConfidence
	}
	return c
}

// clampScore bounds a working score to [ScoreMin, ScoreMax]. Applied once,
// after all adjustments.
func clampScore(score int) int {
	if score < ScoreMin {
		return ScoreMin
	}
	if score > ScoreMax {
		return ScoreMax
	}
	return score
}

// insufficientData is the shared fallback for an empty input window.
func insufficientData(category domain.RiskCategory) domain.CategoryRiskResult {
	return domain.CategoryRiskResult{
		Category:   category,
		Score:      FallbackScore,
		Level:      LevelForScore(FallbackScore),
		Confidence: FallbackConfidence,
		Factors: []domain.RiskFactor{
			{
				Name:         "Insufficient Data",
				Contribution: 0,
				Description:  "Not enough daily aggregates to evaluate this category",
			},
		},
	}
}
