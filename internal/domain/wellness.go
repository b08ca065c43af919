package domain

// WellnessContext is the context object sent to the LLM: the evaluated
// category results plus a condensed view of the underlying window.
// @Description Context data for wellness summary generation.
type WellnessContext struct {
	// Days of data found in the window
	DaysWithData int `json:"days_with_data"`
	// Window length in days
	WindowDays int `json:"window_days"`
	// Condensed aggregate averages
	Averages InputSummary `json:"averages"`
	// Per-category risk results
	Categories []CategoryRiskResult `json:"categories"`
	// Blended overall result
	Overall CategoryRiskResult `json:"overall"`
	// Most recent persisted overall result, present once an assessment has run
	PreviousOverall *CategoryRiskResult `json:"previous_overall,omitempty"`
}

// WellnessSummary contains the structured narrative output from the LLM.
// @Description LLM-generated wellness narrative.
type WellnessSummary struct {
	// Summary of the user's current risk picture (2-3 sentences)
	Summary string `json:"summary" example:"Your overall wellness risk is low this week..."`
	// Observations about contributing signals (3-6 items)
	Observations []string `json:"observations" example:"[\"Your resting heart rate sits in a healthy range\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Keep your bedtime within the same half-hour window\"]"`
}

// WellnessSummaryResponse is the response for the wellness summary endpoint.
// @Description Wellness narrative with the context it was generated from.
type WellnessSummaryResponse struct {
	// Evaluation context used for generation
	Context WellnessContext `json:"context"`
	// LLM-generated narrative
	Summary WellnessSummary `json:"summary"`
	// Trace ID for feedback (optional, only present when tracing is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
