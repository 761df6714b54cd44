package generate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"profiletool/internal/core"
	"profiletool/internal/observability"
)

func testInput() *Input {
	return &Input{
		Role:           core.RoleProductManager,
		Experience:     "5-8",
		CareerGoal:     "ai-leadership",
		ReadinessScore: 72,
		Strengths:      []string{"product_strategy"},
		Gaps:           []string{"ai_literacy"},
		Tools: []core.AITool{
			{Name: "ChatGPT / Claude", Category: "General AI Assistant", Impact: "Your AI co-worker."},
		},
	}
}

func validNarrativeJSON(t *testing.T) string {
	t.Helper()
	narrative := core.Narrative{
		TransformationStories: []core.TransformationStory{
			{Company: "Notion", BeforeAI: "before", AfterAI: "after", RelevanceToUser: "relevance"},
		},
		ToolDescriptions: []core.ToolDescription{
			{ToolName: "ChatGPT / Claude", PersonalizedUseCase: "use", WhyItHelps: "helps"},
		},
		QuickWins: []core.NarrativeQuickWin{
			{Title: "Win", Description: "desc", Timeline: "1 week", Impact: "impact", Priority: "must-have"},
		},
		CareerPaths: []core.CareerPath{
			{Title: "Senior PM", Description: "desc", ActionItems: []string{"do a thing"}},
		},
	}
	content, err := json.Marshal(narrative)
	if err != nil {
		t.Fatalf("marshal narrative: %v", err)
	}
	completion, err := json.Marshal(map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": string(content)}},
		},
	})
	if err != nil {
		t.Fatalf("marshal completion: %v", err)
	}
	return string(completion)
}

func newTestGenerator(t *testing.T, url string) *OpenAIGenerator {
	t.Helper()
	gen, err := NewOpenAI(OpenAIConfig{
		APIKey:         "test-key",
		BaseURL:        url,
		Model:          "gpt-4o",
		MaxRetries:     2,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("NewOpenAI: %v", err)
	}
	return gen
}

func TestGenerateSuccess(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "gpt-4o" {
			t.Errorf("model = %s, want gpt-4o", req.Model)
		}
		if len(req.Messages) != 2 {
			t.Errorf("expected system + user messages, got %d", len(req.Messages))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validNarrativeJSON(t)))
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	narrative, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization header = %q", gotAuth)
	}
	if len(narrative.TransformationStories) != 1 || narrative.TransformationStories[0].Company != "Notion" {
		t.Fatalf("unexpected stories: %+v", narrative.TransformationStories)
	}
	if len(narrative.CareerPaths) != 1 {
		t.Fatalf("expected 1 career path, got %d", len(narrative.CareerPaths))
	}
}

func TestGenerateRetriesServerErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(validNarrativeJSON(t)))
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestGenerateExhaustsRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	_, err := gen.Generate(context.Background(), testInput())
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts (1 + 2 retries), got %d", attempts)
	}

	var appErr *core.AppError
	if !errors.As(err, &appErr) || appErr.Type != core.ErrorTypeGeneration {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestGenerateMetricOutcomeLabels(t *testing.T) {
	okBefore := testutil.ToFloat64(observability.GenerationAttempts.WithLabelValues("ok"))
	failedBefore := testutil.ToFloat64(observability.GenerationAttempts.WithLabelValues("failed"))

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer failing.Close()
	if _, err := newTestGenerator(t, failing.URL).Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error")
	}

	succeeding := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(validNarrativeJSON(t)))
	}))
	defer succeeding.Close()
	if _, err := newTestGenerator(t, succeeding.URL).Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// The counter carries exactly the two documented outcome labels.
	if got := testutil.ToFloat64(observability.GenerationAttempts.WithLabelValues("failed")) - failedBefore; got != 1 {
		t.Fatalf("expected 1 failed generation recorded, got %v", got)
	}
	if got := testutil.ToFloat64(observability.GenerationAttempts.WithLabelValues("ok")) - okBefore; got != 1 {
		t.Fatalf("expected 1 ok generation recorded, got %v", got)
	}
}

func TestGenerateDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected error for 401")
	}
	if attempts != 1 {
		t.Fatalf("client errors must not retry, got %d attempts", attempts)
	}
}

func TestGenerateRejectsMalformedNarrative(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"not json"}}]}`))
	}))
	defer server.Close()

	gen := newTestGenerator(t, server.URL)
	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Fatal("expected schema error for malformed narrative")
	}
}

func TestNewOpenAIRequiresKey(t *testing.T) {
	if _, err := NewOpenAI(OpenAIConfig{}); err == nil {
		t.Fatal("expected configuration error without API key")
	}
}

func TestStaticGeneratorShape(t *testing.T) {
	gen := NewStatic()
	narrative, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("static Generate failed: %v", err)
	}
	if len(narrative.TransformationStories) != 3 {
		t.Fatalf("expected 3 stories, got %d", len(narrative.TransformationStories))
	}
	if len(narrative.QuickWins) != 5 {
		t.Fatalf("expected 5 quick wins, got %d", len(narrative.QuickWins))
	}
	if len(narrative.ToolDescriptions) != 1 {
		t.Fatalf("expected tool description per input tool, got %d", len(narrative.ToolDescriptions))
	}
	if len(narrative.CareerPaths) != 3 {
		t.Fatalf("expected 3 career paths, got %d", len(narrative.CareerPaths))
	}
	if gen.Model() != "static-v1" {
		t.Fatalf("model = %s", gen.Model())
	}
}

func TestStaticGeneratorDeterministic(t *testing.T) {
	gen := NewStatic()
	first, _ := gen.Generate(context.Background(), testInput())
	second, _ := gen.Generate(context.Background(), testInput())

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatal("static narratives differ between identical inputs")
	}
}

func TestStaticGeneratorUnknownRoleFallsBack(t *testing.T) {
	in := testInput()
	in.Role = "student"
	narrative, err := NewStatic().Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(narrative.TransformationStories) != 3 {
		t.Fatalf("expected fallback stories, got %d", len(narrative.TransformationStories))
	}
}
