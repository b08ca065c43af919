package risk

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
)

const (
	// MinBaselineSamples is the history required before drift is scored.
	MinBaselineSamples = 100

	// Sanity bounds for anomaly detection. These catch broken connectors
	// and unit mix-ups, not statistical outliers.
	anomalyMaxAvgSteps  = 50000
	anomalyMaxAvgSleep  = 720
	anomalyMaxAvgEnergy = 5000
)

// inputStats is the running baseline the monitor accumulates. The four sums
// plus the count form one atomic unit: drift scoring reads them together.
type inputStats struct {
	count          int
	stepsSum       float64
	stepsSquareSum float64
	sleepSum       float64
	sleepSquareSum float64
}

// StatsSnapshot is a read-only copy of the monitor's baseline, exposed for
// tests and operational endpoints.
type StatsSnapshot struct {
	Count          int
	StepsSum       float64
	StepsSquareSum float64
	SleepSum       float64
	SleepSquareSum float64
}

// Monitor tracks the distribution of scoring inputs to flag anomalies and
// estimate drift. It is the only stateful piece of the risk model; a single
// instance is constructor-injected into the service layer and is safe for
// concurrent use.
type Monitor struct {
	mu    sync.Mutex
	stats inputStats
}

// NewMonitor creates a Monitor with an empty baseline.
func NewMonitor() *Monitor {
	return &Monitor{}
}

// Hash fingerprints a model input over rounded aggregate values: steps to
// the nearest 100, sleep and energy to the nearest 10, plus whether a
// profile is attached. Used for deduplication and tracking, not security.
func Hash(input domain.ModelInput) string {
	h := sha256.New()
	for _, agg := range input.Aggregates {
		fmt.Fprintf(h, "%d:%d:%d;",
			roundToNearest(float64(agg.Steps), 100),
			roundToNearest(float64(agg.SleepDuration), 10),
			roundToNearest(agg.ActiveEnergy, 10),
		)
	}
	fmt.Fprintf(h, "profile:%t", input.Profile != nil)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Summarize condenses a model input into the rounded averages the monitor
// tracks. An empty aggregate list yields the zero summary.
func Summarize(input domain.ModelInput) domain.InputSummary {
	if len(input.Aggregates) == 0 {
		return domain.InputSummary{}
	}

	var stepsSum, sleepSum, energySum float64
	hasHeartRate := false
	for _, agg := range input.Aggregates {
		stepsSum += float64(agg.Steps)
		sleepSum += float64(agg.SleepDuration)
		energySum += agg.ActiveEnergy
		if agg.AverageHeartRate != nil || agg.RestingHeartRate != nil {
			hasHeartRate = true
		}
	}

	n := float64(len(input.Aggregates))
	return domain.InputSummary{
		DataPointCount:   len(input.Aggregates),
		AvgSteps:         roundToInt(stepsSum / n),
		AvgSleep:         roundToInt(sleepSum / n),
		AvgEnergy:        roundToInt(energySum / n),
		HasHeartRateData: hasHeartRate,
	}
}

// IsAnomaly reports whether an input trips a sanity bound: implausible
// averages or no data points at all.
func IsAnomaly(input domain.ModelInput) bool {
	return isAnomalous(Summarize(input))
}

func isAnomalous(s domain.InputSummary) bool {
	return s.AvgSteps > anomalyMaxAvgSteps ||
		s.AvgSleep > anomalyMaxAvgSleep ||
		s.AvgEnergy > anomalyMaxAvgEnergy ||
		s.DataPointCount == 0
}

// Analyze fingerprints, summarizes, and drift-scores one input. Inputs that
// pass the anomaly check are folded into the running baseline before
// scoring; anomalous inputs are flagged and kept out so they cannot poison
// the distribution.
func (m *Monitor) Analyze(input domain.ModelInput) domain.DriftAnalysis {
	summary := Summarize(input)
	anomaly := isAnomalous(summary)

	m.mu.Lock()
	if !anomaly {
		m.updateLocked(summary)
	}
	drift := m.driftScoreLocked(summary)
	m.mu.Unlock()

	return domain.DriftAnalysis{
		InputHash:  Hash(input),
		Summary:    summary,
		DriftScore: drift,
		IsAnomaly:  anomaly,
		AnalyzedAt: time.Now().UTC(),
	}
}

// DriftScore scores a summary against the current baseline without
// updating it. Returns nil while the baseline is too small or degenerate.
func (m *Monitor) DriftScore(summary domain.InputSummary) *float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.driftScoreLocked(summary)
}

// driftScoreLocked computes the clamped z-score drift estimate for average
// steps. Callers hold m.mu.
func (m *Monitor) driftScoreLocked(summary domain.InputSummary) *float64 {
	if m.stats.count < MinBaselineSamples {
		return nil
	}

	n := float64(m.stats.count)
	meanSteps := m.stats.stepsSum / n
	variance := m.stats.stepsSquareSum/n - meanSteps*meanSteps
	if variance <= 0 {
		return nil
	}
	std := math.Sqrt(variance)

	z := (float64(summary.AvgSteps) - meanSteps) / std
	score := math.Abs(z) / 3
	if score > 1 {
		score = 1
	}
	return &score
}

// updateLocked folds one summary into the running sums. Callers hold m.mu.
func (m *Monitor) updateLocked(summary domain.InputSummary) {
	m.stats.count++
	m.stats.stepsSum += float64(summary.AvgSteps)
	m.stats.stepsSquareSum += float64(summary.AvgSteps) * float64(summary.AvgSteps)
	m.stats.sleepSum += float64(summary.AvgSleep)
	m.stats.sleepSquareSum += float64(summary.AvgSleep) * float64(summary.AvgSleep)
}

// Reset zeroes the baseline. Intended for tests and model retraining.
func (m *Monitor) Reset() {
	m.mu.Lock()
	m.stats = inputStats{}
	m.mu.Unlock()
}

// Stats returns a copy of the current baseline.
func (m *Monitor) Stats() StatsSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return StatsSnapshot{
		Count:          m.stats.count,
		StepsSum:       m.stats.stepsSum,
		StepsSquareSum: m.stats.stepsSquareSum,
		SleepSum:       m.stats.sleepSum,
		SleepSquareSum: m.stats.sleepSquareSum,
	}
}

// roundToNearest rounds v to the nearest multiple of step.
func roundToNearest(v float64, step float64) int {
	return int(math.Round(v/step) * step)
}
