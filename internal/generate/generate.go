// Package generate produces the personalized narrative block of an
// evaluation. The deterministic pipeline works without it; a nil or failing
// generator only costs the narrative, never the evaluation.
package generate

import (
	"context"

	"profiletool/internal/core"
)

// Input carries the evaluation context the generator personalizes against.
type Input struct {
	Role           string
	CurrentRole    string
	Experience     string
	CareerGoal     string
	ReadinessScore int
	Strengths      []string
	Gaps           []string
	Tools          []core.AITool
}

// Generator produces a narrative for an evaluated profile.
type Generator interface {
	Generate(ctx context.Context, in *Input) (*core.Narrative, error)
}

// InputFromEvaluation builds the generator input from a finished
// deterministic evaluation.
func InputFromEvaluation(req *core.EvaluationRequest, eval *core.Evaluation) *Input {
	return &Input{
		Role:           req.Role,
		CurrentRole:    req.CurrentRole,
		Experience:     req.Experience,
		CareerGoal:     req.CareerGoal,
		ReadinessScore: eval.Readiness.OverallScore,
		Strengths:      eval.Skills.Strengths,
		Gaps:           eval.Skills.Gaps,
		Tools:          eval.AITools,
	}
}
