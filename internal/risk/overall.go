package risk

import (
	"math"
	"sort"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
)

// categoryWeights blends the category scores into the overall result.
// Cardiovascular and sleep carry slightly more weight than activity.
var categoryWeights = map[domain.RiskCategory]float64{
	domain.RiskCategoryCardiovascular: 0.35,
	domain.RiskCategorySleepQuality:   0.35,
	domain.RiskCategoryActivityLevel:  0.30,
}

// defaultCategoryWeight applies to any category missing from the map.
const defaultCategoryWeight = 0.25

// FactorSelection picks which category factors surface on the overall
// result. The aggregator takes it as a parameter so callers (and tests) can
// target a policy explicitly.
type FactorSelection func(results []domain.CategoryRiskResult) []domain.RiskFactor

// SelectTopWeighted takes the two strongest factors per category by
// |contribution| (stable order for ties), concatenated in input order and
// capped at five overall. This is the default policy.
func SelectTopWeighted(results []domain.CategoryRiskResult) []domain.RiskFactor {
	const perCategory = 2
	const maxFactors = 5

	var selected []domain.RiskFactor
	for _, res := range results {
		factors := make([]domain.RiskFactor, len(res.Factors))
		copy(factors, res.Factors)
		sort.SliceStable(factors, func(i, j int) bool {
			return math.Abs(factors[i].Contribution) > math.Abs(factors[j].Contribution)
		})
		n := perCategory
		if len(factors) < n {
			n = len(factors)
		}
		selected = append(selected, factors[:n]...)
	}

	if len(selected) > maxFactors {
		selected = selected[:maxFactors]
	}
	return selected
}

// SelectLeading takes the first factor per category, capped at three
// overall. A simpler variant kept for callers that want a shorter headline
// list.
func SelectLeading(results []domain.CategoryRiskResult) []domain.RiskFactor {
	const maxFactors = 3

	var selected []domain.RiskFactor
	for _, res := range results {
		if len(res.Factors) > 0 {
			selected = append(selected, res.Factors[0])
		}
	}

	if len(selected) > maxFactors {
		selected = selected[:maxFactors]
	}
	return selected
}

// EvaluateOverall blends category results into the OVERALL_WELLNESS score:
// a weighted average of scores, the most pessimistic confidence, and a
// factor list chosen by the given selection policy (SelectTopWeighted when
// nil).
func EvaluateOverall(results []domain.CategoryRiskResult, selection FactorSelection) domain.CategoryRiskResult {
	if len(results) == 0 {
		return domain.CategoryRiskResult{
			Category:   domain.RiskCategoryOverallWellness,
			Score:      FallbackScore,
			Level:      LevelForScore(FallbackScore),
			Confidence: 0,
			Factors:    []domain.RiskFactor{},
		}
	}
	if selection == nil {
		selection = SelectTopWeighted
	}

	weightedSum := 0.0
	weightTotal := 0.0
	minConfidence := results[0].Confidence
	for _, res := range results {
		weight, ok := categoryWeights[res.Category]
		if !ok {
			weight = defaultCategoryWeight
		}
		weightedSum += float64(res.Score) * weight
		weightTotal += weight
		if res.Confidence < minConfidence {
			minConfidence = res.Confidence
		}
	}

	score := roundToInt(weightedSum / weightTotal)
	return domain.CategoryRiskResult{
		Category:   domain.RiskCategoryOverallWellness,
		Score:      score,
		Level:      LevelForScore(score),
		Confidence: minConfidence,
		Factors:    selection(results),
	}
}
