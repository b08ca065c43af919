package risk

import (
	"fmt"
	"math"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
)

// scoreTier is one rule in an ordered first-match-wins chain: if match
// returns true for the observed value, delta is applied and factor recorded,
// and no later tier is considered.
type scoreTier struct {
	match  func(v float64) bool
	delta  int
	factor func(v float64) domain.RiskFactor
}

// applyTiers evaluates tiers in order and applies the first match, if any.
// Overlapping ranges are resolved by position in the slice, not by
// specificity; tier order is part of the model.
func applyTiers(tiers []scoreTier, v float64, score int, factors []domain.RiskFactor) (int, []domain.RiskFactor) {
	for _, tier := range tiers {
		if tier.match(v) {
			return score + tier.delta, append(factors, tier.factor(v))
		}
	}
	return score, factors
}

const (
	cardioBaseScore   = 30
	sleepBaseScore    = 25
	activityBaseScore = 30
)

// EvaluateCardiovascular scores cardiovascular risk from a window of daily
// aggregates. Days without heart-rate readings are simply skipped for the
// heart-rate signals.
func EvaluateCardiovascular(inputs []domain.DailyAggregateInput) domain.CategoryRiskResult {
	if len(inputs) == 0 {
		return insufficientData(domain.RiskCategoryCardiovascular)
	}

	score := cardioBaseScore
	var factors []domain.RiskFactor

	// Resting heart rate: elevated raises risk, the 60-70 band lowers it.
	// Readings in (70, 80] or below 60 are deliberately neutral.
	var restingRates []float64
	for _, in := range inputs {
		if in.RestingHeartRate != nil {
			restingRates = append(restingRates, *in.RestingHeartRate)
		}
	}
	if len(restingRates) > 0 {
		avgResting := mean(restingRates)
		if avgResting > 80 {
			score += 20
			factors = append(factors, domain.RiskFactor{
				Name:         "Elevated Resting Heart Rate",
				Contribution: 0.4,
				Description:  fmt.Sprintf("Average resting heart rate of %.0f bpm is above the healthy range", avgResting),
			})
		} else if avgResting >= 60 && avgResting <= 70 {
			score -= 10
			factors = append(factors, domain.RiskFactor{
				Name:         "Healthy Resting Heart Rate",
				Contribution: -0.2,
				Description:  fmt.Sprintf("Average resting heart rate of %.0f bpm is in the healthy range", avgResting),
			})
		}
	}

	// Low variance across average heart-rate readings is a (very strict)
	// consistency signal; it needs at least a week of readings.
	var avgRates []float64
	for _, in := range inputs {
		if in.AverageHeartRate != nil {
			avgRates = append(avgRates, *in.AverageHeartRate)
		}
	}
	if len(avgRates) >= 7 {
		if populationVariance(avgRates) < 5 {
			score -= 5
			factors = append(factors, domain.RiskFactor{
				Name:         "Consistent Heart Rate",
				Contribution: -0.1,
				Description:  "Day-to-day heart rate is very stable",
			})
		}
	}

	// Sedentary cross-signal from step counts.
	var steps []float64
	for _, in := range inputs {
		steps = append(steps, float64(in.Steps))
	}
	if avgSteps := mean(steps); avgSteps < 3000 {
		score += 15
		factors = append(factors, domain.RiskFactor{
			Name:         "Sedentary Lifestyle",
			Contribution: 0.3,
			Description:  fmt.Sprintf("Average of %.0f steps per day indicates low movement", avgSteps),
		})
	}

	score = clampScore(score)
	return domain.CategoryRiskResult{
		Category:   domain.RiskCategoryCardiovascular,
		Score:      score,
		Level:      LevelForScore(score),
		Confidence: WindowConfidence(len(inputs)),
		Factors:    factors,
	}
}

// sleepDurationTiers maps average nightly sleep (minutes) to a score
// adjustment. First match wins: the severe-deficiency band shadows the
// insufficient band, and 360-420 / 540-600 fall through with no factor.
var sleepDurationTiers = []scoreTier{
	{
		match: func(v float64) bool { return v < 300 },
		delta: 35,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Severe Sleep Deficiency",
				Contribution: 0.7,
				Description:  fmt.Sprintf("Averaging %.0f minutes of sleep, well below five hours per night", v),
			}
		},
	},
	{
		match: func(v float64) bool { return v < 360 },
		delta: 25,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Insufficient Sleep",
				Contribution: 0.5,
				Description:  fmt.Sprintf("Averaging %.0f minutes of sleep, under six hours per night", v),
			}
		},
	},
	{
		match: func(v float64) bool { return v >= 420 && v <= 540 },
		delta: -15,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Optimal Sleep Duration",
				Contribution: -0.3,
				Description:  fmt.Sprintf("Averaging %.0f minutes of sleep, within the recommended range", v),
			}
		},
	},
	{
		match: func(v float64) bool { return v > 600 },
		delta: 10,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Excessive Sleep",
				Contribution: 0.2,
				Description:  fmt.Sprintf("Averaging %.0f minutes of sleep, over ten hours per night", v),
			}
		},
	},
}

// sleepVarianceTiers maps night-to-night variance (minutes squared) to a
// consistency adjustment, evaluated independently of the duration tiers.
var sleepVarianceTiers = []scoreTier{
	{
		match: func(v float64) bool { return v > 3600 },
		delta: 15,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Inconsistent Sleep Schedule",
				Contribution: 0.3,
				Description:  "Sleep duration swings by more than an hour night to night",
			}
		},
	},
	{
		match: func(v float64) bool { return v < 900 },
		delta: -10,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Consistent Sleep Schedule",
				Contribution: -0.2,
				Description:  "Sleep duration stays within half an hour night to night",
			}
		},
	},
}

// EvaluateSleep scores sleep-quality risk from a window of daily aggregates.
func EvaluateSleep(inputs []domain.DailyAggregateInput) domain.CategoryRiskResult {
	if len(inputs) == 0 {
		return insufficientData(domain.RiskCategorySleepQuality)
	}

	durations := make([]float64, len(inputs))
	for i, in := range inputs {
		durations[i] = float64(in.SleepDuration)
	}

	score := sleepBaseScore
	var factors []domain.RiskFactor
	score, factors = applyTiers(sleepDurationTiers, mean(durations), score, factors)
	score, factors = applyTiers(sleepVarianceTiers, populationVariance(durations), score, factors)

	score = clampScore(score)
	return domain.CategoryRiskResult{
		Category:   domain.RiskCategorySleepQuality,
		Score:      score,
		Level:      LevelForScore(score),
		Confidence: WindowConfidence(len(inputs)),
		Factors:    factors,
	}
}

// activityStepsTiers maps average daily steps to a score adjustment. First
// match wins in this order: a value >= 10000 hits only the excellent tier
// even though it also satisfies the good tier below it.
var activityStepsTiers = []scoreTier{
	{
		match: func(v float64) bool { return v < 3000 },
		delta: 30,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Very Low Activity",
				Contribution: 0.6,
				Description:  fmt.Sprintf("Averaging %.0f steps per day, far below activity guidelines", v),
			}
		},
	},
	{
		match: func(v float64) bool { return v < 5000 },
		delta: 15,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Low Activity",
				Contribution: 0.3,
				Description:  fmt.Sprintf("Averaging %.0f steps per day, below activity guidelines", v),
			}
		},
	},
	{
		match: func(v float64) bool { return v >= 10000 },
		delta: -20,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Excellent Activity Level",
				Contribution: -0.4,
				Description:  fmt.Sprintf("Averaging %.0f steps per day, well above activity guidelines", v),
			}
		},
	},
	{
		match: func(v float64) bool { return v >= 7500 },
		delta: -10,
		factor: func(v float64) domain.RiskFactor {
			return domain.RiskFactor{
				Name:         "Good Activity Level",
				Contribution: -0.2,
				Description:  fmt.Sprintf("Averaging %.0f steps per day meets activity guidelines", v),
			}
		},
	},
}

// EvaluateActivity scores activity-level risk from a window of daily
// aggregates.
func EvaluateActivity(inputs []domain.DailyAggregateInput) domain.CategoryRiskResult {
	if len(inputs) == 0 {
		return insufficientData(domain.RiskCategoryActivityLevel)
	}

	var steps, energies []float64
	workoutTotal := 0
	for _, in := range inputs {
		steps = append(steps, float64(in.Steps))
		energies = append(energies, float64(in.ActiveEnergy))
		workoutTotal += in.WorkoutCount
	}
	workoutsPerWeek := float64(workoutTotal) / float64(len(inputs)) * 7

	score := activityBaseScore
	var factors []domain.RiskFactor
	score, factors = applyTiers(activityStepsTiers, mean(steps), score, factors)

	if workoutsPerWeek < 1 {
		score += 15
		factors = append(factors, domain.RiskFactor{
			Name:         "Infrequent Workouts",
			Contribution: 0.3,
			Description:  fmt.Sprintf("Averaging %.1f workouts per week", workoutsPerWeek),
		})
	} else if workoutsPerWeek >= 3 {
		score -= 15
		factors = append(factors, domain.RiskFactor{
			Name:         "Regular Exercise",
			Contribution: -0.3,
			Description:  fmt.Sprintf("Averaging %.1f workouts per week", workoutsPerWeek),
		})
	}

	avgEnergy := mean(energies)
	if avgEnergy < 200 {
		score += 10
		factors = append(factors, domain.RiskFactor{
			Name:         "Low Active Energy",
			Contribution: 0.2,
			Description:  fmt.Sprintf("Burning %.0f active kcal per day", avgEnergy),
		})
	} else if avgEnergy >= 500 {
		score -= 10
		factors = append(factors, domain.RiskFactor{
			Name:         "High Active Energy",
			Contribution: -0.2,
			Description:  fmt.Sprintf("Burning %.0f active kcal per day", avgEnergy),
		})
	}

	score = clampScore(score)
	return domain.CategoryRiskResult{
		Category:   domain.RiskCategoryActivityLevel,
		Score:      score,
		Level:      LevelForScore(score),
		Confidence: WindowConfidence(len(inputs)),
		Factors:    factors,
	}
}

// roundToInt rounds to the nearest integer, half away from zero.
func roundToInt(v float64) int {
	return int(math.Round(v))
}
