package scoring

import (
	"fmt"

	"profiletool/internal/core"
)

// Evaluate runs the full deterministic pipeline over a validated request and
// assembles the structured evaluation, without the generated narrative.
func Evaluate(req *core.EvaluationRequest) *core.Evaluation {
	readiness := CalculateReadiness(req)
	skills := InferSkills(req)

	return &core.Evaluation{
		Readiness:              readiness,
		Skills:                 skills,
		QuickWins:              QuickWins(req, skills.Gaps),
		AITools:                AITools(req.Role, skills.Gaps),
		IndustryStats:          IndustryStats(req.Role),
		TransformationInsights: TransformationInsights(req.Role),
		PeerComparison:         PeerComparison(readiness),
		Persona:                MatchPersona(req.Role, readiness.MaturityLevel),
		Meta: core.EvaluationMeta{
			Role:       req.Role,
			Experience: req.Experience,
			CareerGoal: req.CareerGoal,
		},
	}
}

var cohortSizes = map[string]string{
	MaturityAINative:    "2,000+ professionals",
	MaturityAIStrategic: "8,000+ professionals",
	MaturityAICapable:   "25,000+ professionals",
	MaturityAICurious:   "50,000+ professionals",
	MaturityAIUnaware:   "100,000+ professionals",
}

// PeerComparison derives the social-proof block from the readiness result.
func PeerComparison(readiness core.Readiness) core.PeerComparison {
	percentile := readiness.Percentile

	var badge, comparisonText string
	switch {
	case percentile >= 90:
		badge = "top_performer"
		comparisonText = fmt.Sprintf("Top %d%% in your cohort", 100-percentile)
	case percentile >= 70:
		badge = "above_average"
		comparisonText = fmt.Sprintf("Top %d%% in your cohort", 100-percentile)
	case percentile >= 50:
		badge = "average"
		comparisonText = "Above average in your cohort"
	default:
		badge = "developing"
		comparisonText = "Building foundation"
	}

	var message string
	switch {
	case percentile >= 80:
		message = fmt.Sprintf("You score higher than %d%% of professionals in similar roles. You're well-positioned for an MBA program and leadership roles.", percentile)
	case percentile >= 60:
		message = fmt.Sprintf("You score higher than %d%% of peers. You have a strong foundation with some areas for growth before an MBA.", percentile)
	case percentile >= 40:
		message = fmt.Sprintf("You're at the %dth percentile. Focus on the skill gaps below to accelerate your readiness for executive roles.", percentile)
	default:
		message = "You're building your foundation. The quick wins below will help you develop the skills needed for strategic roles."
	}

	cohort, ok := cohortSizes[readiness.MaturityLevel]
	if !ok {
		cohort = cohortSizes[MaturityAICurious]
	}

	return core.PeerComparison{
		Percentile:     percentile,
		Message:        message,
		ComparisonText: comparisonText,
		Badge:          badge,
		CohortSize:     cohort,
	}
}
