package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"log/slog"

	"profiletool/internal/core"
	"profiletool/internal/observability"
)

const defaultBaseURL = "https://api.openai.com/v1"

// OpenAIConfig configures the chat-completions generator.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration

	// Retry configuration. Rate limits and server errors are retried with
	// exponential backoff; client errors are not.
	MaxRetries     int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	BackoffFactor  float64
}

// DefaultOpenAIConfig returns the standard generator configuration.
func DefaultOpenAIConfig(apiKey string) OpenAIConfig {
	return OpenAIConfig{
		APIKey:         apiKey,
		BaseURL:        defaultBaseURL,
		Model:          "gpt-4o",
		Timeout:        60 * time.Second,
		MaxRetries:     2,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     30 * time.Second,
		BackoffFactor:  2.0,
	}
}

// OpenAIGenerator calls an OpenAI-compatible chat-completions endpoint with a
// strict JSON schema response format.
type OpenAIGenerator struct {
	cfg        OpenAIConfig
	httpClient *http.Client
}

// NewOpenAI creates a generator from config, applying defaults for zero fields.
func NewOpenAI(cfg OpenAIConfig) (*OpenAIGenerator, error) {
	if cfg.APIKey == "" {
		return nil, core.NewConfigurationError("generator API key is required", nil)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = 1 * time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 30 * time.Second
	}
	if cfg.BackoffFactor <= 1 {
		cfg.BackoffFactor = 2.0
	}

	return &OpenAIGenerator{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Model returns the configured model identifier. It participates in the
// cache key, so two deployments on different models never share entries.
func (g *OpenAIGenerator) Model() string {
	return g.cfg.Model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat json.RawMessage `json:"response_format,omitempty"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate runs one structured-output completion and parses the narrative.
func (g *OpenAIGenerator) Generate(ctx context.Context, in *Input) (*core.Narrative, error) {
	start := time.Now()

	body := chatRequest{
		Model: g.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: "You are an expert career advisor specializing in Business x AI. Generate personalized, actionable career guidance."},
			{Role: "user", Content: buildPrompt(in)},
		},
		ResponseFormat: narrativeResponseFormat,
		Temperature:    0.7,
		MaxTokens:      4000,
	}

	raw, err := g.doWithRetry(ctx, body)
	if err != nil {
		observability.GenerationAttempts.WithLabelValues("failed").Inc()
		return nil, err
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		observability.GenerationAttempts.WithLabelValues("failed").Inc()
		return nil, core.NewGenerationError("malformed completion response", err)
	}
	if len(completion.Choices) == 0 {
		observability.GenerationAttempts.WithLabelValues("failed").Inc()
		return nil, core.NewGenerationError("completion returned no choices", nil)
	}

	var narrative core.Narrative
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &narrative); err != nil {
		observability.GenerationAttempts.WithLabelValues("failed").Inc()
		return nil, core.NewGenerationError("narrative did not match schema", err)
	}

	observability.GenerationAttempts.WithLabelValues("ok").Inc()
	observability.GenerationDuration.Observe(time.Since(start).Seconds())
	slog.Debug("narrative generated",
		"model", g.cfg.Model,
		"role", in.Role,
		"stories", len(narrative.TransformationStories),
		"duration", time.Since(start))
	return &narrative, nil
}

// doWithRetry sends the completion request, retrying rate limits, server
// errors, and network failures with exponential backoff.
func (g *OpenAIGenerator) doWithRetry(ctx context.Context, body chatRequest) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, core.NewGenerationError("marshal request", err)
	}

	var lastErr error
	maxAttempts := g.cfg.MaxRetries + 1
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.backoff(attempt)):
			}
		}

		raw, status, err := g.doRequest(ctx, payload)
		if err != nil {
			lastErr = core.NewGenerationError("completion request failed", err)
			continue
		}

		if isRetryable(status) {
			lastErr = core.NewGenerationError(fmt.Sprintf("completion endpoint returned %d", status), nil)
			continue
		}
		if status != http.StatusOK {
			return nil, core.NewGenerationError(fmt.Sprintf("completion endpoint returned %d: %s", status, truncate(raw, 200)), nil)
		}
		return raw, nil
	}

	return nil, lastErr
}

func (g *OpenAIGenerator) doRequest(ctx context.Context, payload []byte) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return raw, resp.StatusCode, nil
}

func (g *OpenAIGenerator) backoff(attempt int) time.Duration {
	d := float64(g.cfg.InitialBackoff) * math.Pow(g.cfg.BackoffFactor, float64(attempt-1))
	if d > float64(g.cfg.MaxBackoff) {
		d = float64(g.cfg.MaxBackoff)
	}
	return time.Duration(d)
}

func isRetryable(status int) bool {
	return status == http.StatusTooManyRequests ||
		status == http.StatusServiceUnavailable ||
		status == http.StatusBadGateway ||
		status == http.StatusGatewayTimeout ||
		status == http.StatusInternalServerError
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func buildPrompt(in *Input) string {
	ctx := map[string]interface{}{
		"role":            in.Role,
		"current_role":    in.CurrentRole,
		"experience":      in.Experience,
		"career_goal":     in.CareerGoal,
		"readiness_score": in.ReadinessScore,
		"strengths":       in.Strengths,
		"gaps":            in.Gaps,
	}
	toolNames := make([]map[string]string, 0, len(in.Tools))
	for _, tool := range in.Tools {
		toolNames = append(toolNames, map[string]string{"name": tool.Name, "category": tool.Category})
	}
	ctx["tools_to_personalize"] = toolNames

	userContext, _ := json.MarshalIndent(ctx, "", "  ")
	return fmt.Sprintf(`Generate highly personalized career development content for this user.

USER CONTEXT:
%s

GENERATE THE FOLLOWING:

1. TRANSFORMATION STORIES (3 companies): for each, before_ai (2-3 sentences on the problem before AI), after_ai (2-3 sentences with concrete results and metrics), relevance_to_user (2-3 sentences connecting the story to this user's role, experience, and goal).

2. TOOL DESCRIPTIONS (%d tools): for each tool in tools_to_personalize, personalized_use_case (max 25 words, tied to their gaps and goals) and why_it_helps (max 15 words, concrete career impact).

3. QUICK WINS (5 items): title (3-5 words), description (3-5 sentences referencing their specific context), timeline (realistic estimate), impact (2-3 sentences with measurable outcomes), priority (must-have, recommended, or nice-to-have).

4. CAREER PATHS (3 roles): 1 recommended path based on career_goal plus 2 adjacent alternatives. Each has title, description (max 25 words), and 3-4 action_items of 6-10 words each.

TONE: Professional, motivational, actionable. Sharp and scannable, no fluff.
OUTPUT: Return JSON matching the schema exactly.`, userContext, len(in.Tools))
}

// narrativeResponseFormat is the strict JSON schema for structured output.
var narrativeResponseFormat = json.RawMessage(`{
  "type": "json_schema",
  "json_schema": {
    "name": "narrative_content",
    "strict": true,
    "schema": {
      "type": "object",
      "properties": {
        "transformation_stories": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "company": {"type": "string"},
              "before_ai": {"type": "string"},
              "after_ai": {"type": "string"},
              "relevance_to_user": {"type": "string"}
            },
            "required": ["company", "before_ai", "after_ai", "relevance_to_user"],
            "additionalProperties": false
          }
        },
        "tool_descriptions": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "tool_name": {"type": "string"},
              "personalized_use_case": {"type": "string"},
              "why_it_helps": {"type": "string"}
            },
            "required": ["tool_name", "personalized_use_case", "why_it_helps"],
            "additionalProperties": false
          }
        },
        "quick_wins": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"},
              "timeline": {"type": "string"},
              "impact": {"type": "string"},
              "priority": {"type": "string"}
            },
            "required": ["title", "description", "timeline", "impact", "priority"],
            "additionalProperties": false
          }
        },
        "career_paths": {
          "type": "array",
          "items": {
            "type": "object",
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"},
              "action_items": {"type": "array", "items": {"type": "string"}}
            },
            "required": ["title", "description", "action_items"],
            "additionalProperties": false
          }
        }
      },
      "required": ["transformation_stories", "tool_descriptions", "quick_wins", "career_paths"],
      "additionalProperties": false
    }
  }
}`)
