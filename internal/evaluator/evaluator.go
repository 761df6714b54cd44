// Package evaluator orchestrates a profile evaluation: cache lookup,
// deterministic scoring, narrative generation, and the write-back.
package evaluator

import (
	"context"
	"encoding/json"

	"log/slog"

	"profiletool/internal/cachekey"
	"profiletool/internal/core"
	"profiletool/internal/generate"
	"profiletool/internal/observability"
	"profiletool/internal/responsecache"
	"profiletool/internal/scoring"
)

// Service runs evaluations against a cache and an optional generator.
type Service struct {
	cache     *responsecache.Cache
	generator generate.Generator
	model     string
}

// New creates the evaluation service. The generator may be nil, in which
// case evaluations are served without a narrative under the model label
// "deterministic".
func New(cache *responsecache.Cache, generator generate.Generator, model string) *Service {
	if model == "" {
		model = "deterministic"
	}
	return &Service{cache: cache, generator: generator, model: model}
}

// Model returns the model label used for cache partitioning.
func (s *Service) Model() string {
	return s.model
}

// Evaluate validates and evaluates a quiz submission. Cached responses are
// returned as-is; fresh evaluations are written back best-effort, so a cache
// failure never fails the request. A generation failure does.
func (s *Service) Evaluate(ctx context.Context, req *core.EvaluationRequest) (*core.Evaluation, error) {
	if appErr := req.Validate(); appErr != nil {
		return nil, appErr
	}

	payload := req.Normalized()
	key, err := cachekey.Derive(payload, s.model)
	if err != nil {
		return nil, core.NewValidationError("answers", "request is not serializable: "+err.Error())
	}

	if entry, ok := s.cache.GetEntry(ctx, key, s.model); ok {
		var eval core.Evaluation
		decodeErr := json.Unmarshal(entry.Response, &eval)
		if decodeErr == nil {
			if entry.UserInput == nil {
				// Attach request context to an entry written before it
				// was captured.
				if userInput, err := json.Marshal(payload); err == nil {
					s.cache.BackfillUserInput(ctx, key, s.model, userInput)
				}
			}
			observability.Evaluations.WithLabelValues("cached").Inc()
			slog.Debug("evaluation served from cache", "cache_key", key[:16], "model", s.model)
			return &eval, nil
		}
		// Undecodable entry: fall through and regenerate over it.
		slog.Warn("discarding undecodable cache entry", "cache_key", key[:16], "error", decodeErr)
	}

	eval := scoring.Evaluate(req)

	if s.generator != nil {
		narrative, err := s.generator.Generate(ctx, generate.InputFromEvaluation(req, eval))
		if err != nil {
			observability.Evaluations.WithLabelValues("failed").Inc()
			return nil, err
		}
		eval.Narrative = narrative
	}

	s.writeBack(ctx, key, payload, eval)

	observability.Evaluations.WithLabelValues("generated").Inc()
	return eval, nil
}

// writeBack stores the evaluation without tying the write to the request's
// cancellation: a client that disconnects after generation paid for should
// still populate the cache.
func (s *Service) writeBack(ctx context.Context, key string, payload map[string]interface{}, eval *core.Evaluation) {
	response, err := json.Marshal(eval)
	if err != nil {
		slog.Warn("evaluation not cacheable", "cache_key", key[:16], "error", err)
		return
	}
	userInput, err := json.Marshal(payload)
	if err != nil {
		userInput = nil
	}

	s.cache.Set(context.WithoutCancel(ctx), key, s.model, response, userInput)
}
