package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Sakeerin/Preventive-Health-sub000/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

// DefaultSystemPrompt is used when no prompt is loaded from prompt
// management.
const DefaultSystemPrompt = `You are a non-medical preventive-health assistant.

You receive rule-based risk evaluation results for a single user: per-category risk scores (0-100, higher = riskier), risk levels, confidence values, contributing factors, and averaged daily health aggregates. You must base your conclusions only on the provided data.

Your goals:
- Describe the user's current risk picture in clear, neutral language.
- Explain which factors pushed each category score up or down, in plain words.
- Weigh the confidence values: be more tentative where confidence is low.
- Give practical, behavioral suggestions targeting the factors that increase risk.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (daily movement, sleep regularity, workout habits).
- If data is limited (few days, low confidence), say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing the overall risk picture and the category that most needs attention.",
  "observations": [
    "3-6 bullet points about the contributing factors behind the category scores.",
    "At least one item about the category with the highest score.",
    "If any confidence is low, one item noting the limited data."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to the risk-increasing factors.",
    "Include at least one suggestion about the highest-scoring category."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's risk evaluation.

- "categories" holds the per-category results (cardiovascular, sleep quality, activity level); each has a score, level, confidence, and the factors that moved the score.
- "overall" is the blended overall-wellness result.
- "averages" condenses the underlying daily aggregates (steps, sleep minutes, active kcal).
- "days_with_data" out of "window_days" tells you how complete the window is.

Factor contributions are signed: positive raises risk, negative lowers it.

JSON:

%s

Based on this data, respond in the required JSON format.`

// SummaryLLM is the interface for generating wellness narratives using an LLM.
type SummaryLLM interface {
	// GenerateSummary takes a context object and returns an LLM-generated narrative.
	GenerateSummary(ctx context.Context, wellnessCtx *domain.WellnessContext) (*domain.WellnessSummary, error)
}

// OpenAIClient implements SummaryLLM using the OpenAI API.
type OpenAIClient struct {
	client       openai.Client
	model        string
	systemPrompt string
}

// NewOpenAIClient creates a new OpenAI client for generating summaries.
// An empty systemPrompt falls back to DefaultSystemPrompt.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model, systemPrompt string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
	}
}

// GenerateSummary calls OpenAI to generate a wellness narrative.
func (c *OpenAIClient) GenerateSummary(ctx context.Context, wellnessCtx *domain.WellnessContext) (*domain.WellnessSummary, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(wellnessCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(c.systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.WellnessSummary
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
