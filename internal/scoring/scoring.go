// Package scoring implements the deterministic evaluation pipeline: readiness
// scoring, skill inference, recommendations, and persona matching. Everything
// here is static table lookups over the quiz answers; there is no state and
// no I/O.
package scoring

import (
	"profiletool/internal/core"
)

// AI maturity progression levels.
const (
	MaturityAIUnaware   = "ai_unaware"
	MaturityAICurious   = "ai_curious"
	MaturityAICapable   = "ai_capable"
	MaturityAIStrategic = "ai_strategic"
	MaturityAINative    = "ai_native"
)

// Readiness score component weights.
const (
	weightExperience   = 0.20
	weightRoleMaturity = 0.40
	weightAIFluency    = 0.30
	weightOwnership    = 0.10
)

var experienceScores = map[string]int{
	"0-2":  40,
	"2-5":  60,
	"5-8":  80,
	"8-12": 95,
	"12+":  100,
}

// roleMaturityRule awards points for a strategic answer to one question.
type roleMaturityRule struct {
	question string
	answers  map[string]int
}

// Role maturity: higher scores for strategic/systems-thinking answers,
// starting from a base of 50 and capped at 100.
var roleMaturityRules = map[string][]roleMaturityRule{
	core.RoleProductManager: {
		{"pm-data-conflict", map[string]int{"revalidate-hypothesis": 15, "customer-research": 10}},
		{"pm-roadmap-bloat", map[string]int{"ruthless-prioritization": 15, "communicate-tradeoffs": 10}},
		{"pm-ai-usage", map[string]int{"predictive-insights": 10, "automated-decisions": 10}},
		{"pm-feature-failure", map[string]int{"systemic-failure": 10, "misaligned-incentives": 10}},
	},
	core.RoleFinance: {
		{"finance-metrics-conflict", map[string]int{"investigate-methodology": 15, "segment-analysis": 15}},
		{"finance-forecast-miss", map[string]int{"model-assumptions": 15, "leading-indicators": 15}},
		{"finance-ai-usage", map[string]int{"scenario-modeling": 10, "anomaly-detection": 10}},
		{"finance-decision-speed", map[string]int{"directional-confidence": 10, "build-ranges": 10}},
	},
	core.RoleSales: {
		{"sales-pipeline-reality", map[string]int{"analyze-winloss": 15, "tighten-qualification": 15}},
		{"sales-ai-usage", map[string]int{"deal-risk": 10, "pricing-optimization": 10}},
		{"sales-forecasting", map[string]int{"predictive-models": 15, "historical-patterns": 15}},
		{"sales-ownership", map[string]int{"region-business": 10, "team-number": 10}},
	},
	core.RoleMarketing: {
		{"marketing-conflicting-signals", map[string]int{"ltv-cac-cohort": 15, "revenue-attribution": 15}},
		{"marketing-ai-application", map[string]int{"automated-optimization": 10, "audience-prediction": 10}},
		{"marketing-leadership-metric", map[string]int{"revenue-contribution": 15, "ltv": 15}},
	},
	core.RoleOperations: {
		{"operations-scale-stress", map[string]int{"data-visibility": 15, "process-design": 15}},
		{"operations-ai-leverage", map[string]int{"decision-optimization": 10, "automation": 10}},
		{"operations-strategic-role", map[string]int{"competitive-advantage": 15, "enable-scale": 15}},
	},
	core.RoleFounder: {
		{"founder-mvp-failure", map[string]int{"reframe-problem": 15, "pivot-icp": 15}},
		{"founder-scale-pain", map[string]int{"data-blindness": 10, "customer-mix": 10}},
		{"founder-ai-advantage", map[string]int{"insight": 15, "differentiation": 15}},
	},
}

// aiQuestionKeys maps a role to its AI-usage question.
var aiQuestionKeys = map[string]string{
	core.RoleProductManager: "pm-ai-usage",
	core.RoleFinance:        "finance-ai-usage",
	core.RoleSales:          "sales-ai-usage",
	core.RoleMarketing:      "marketing-ai-application",
	core.RoleOperations:     "operations-ai-leverage",
	core.RoleFounder:        "founder-ai-advantage",
}

// advancedAIAnswers indicate strategic AI usage; tacticalAIAnswers indicate
// day-to-day tool usage. Anything else counts as curiosity only.
var advancedAIAnswers = answerSet(
	"predictive-insights", "automated-decisions",
	"scenario-modeling", "anomaly-detection",
	"deal-risk", "pricing-optimization",
	"automated-optimization", "audience-prediction",
	"decision-optimization", "automation",
	"insight", "differentiation",
)

var tacticalAIAnswers = answerSet(
	"user-research", "ab-testing",
	"forecasting", "reporting",
	"call-summaries", "email-drafts",
	"creative-testing", "content-generation",
	"speed", "cost",
)

var ownershipQuestionKeys = map[string]string{
	core.RoleProductManager: "pm-ownership",
	core.RoleFinance:        "finance-leadership-weight",
	core.RoleSales:          "sales-ownership",
	core.RoleMarketing:      "marketing-leadership-metric",
	core.RoleOperations:     "operations-ownership",
	core.RoleFounder:        "founder-resource-constraint",
}

var highOwnershipAnswers = answerSet(
	"product-line", "business-unit",
	"strategic-allocation", "board-reporting",
	"region-business", "team-number",
	"revenue-contribution", "ltv",
	"margin", "sla-adherence",
	"learning", "profitability",
)

func answerSet(answers ...string) map[string]bool {
	set := make(map[string]bool, len(answers))
	for _, a := range answers {
		set[a] = true
	}
	return set
}

// CalculateReadiness computes the weighted readiness block. The overall
// score is compressed into the 40-80 band: nobody is "perfect" and everyone
// has room to grow.
func CalculateReadiness(req *core.EvaluationRequest) core.Readiness {
	experience := experienceScore(req.Experience)
	roleMaturity := roleMaturityScore(req)
	aiFluency := aiFluencyScore(req)
	ownership := ownershipScore(req)

	raw := float64(experience)*weightExperience +
		float64(roleMaturity)*weightRoleMaturity +
		float64(aiFluency)*weightAIFluency +
		float64(ownership)*weightOwnership

	overall := int(40 + raw*0.40)
	if overall < 40 {
		overall = 40
	}
	if overall > 80 {
		overall = 80
	}

	maturity := maturityLevel(aiFluency, raw)

	return core.Readiness{
		OverallScore: overall,
		CategoryScores: map[string]int{
			"experience":    experience,
			"role_maturity": roleMaturity,
			"ai_fluency":    aiFluency,
			"ownership":     ownership,
		},
		MaturityLevel: maturity,
		Percentile:    percentile(overall),
		ReadinessTags: readinessTags(req, maturity),
	}
}

func experienceScore(experience string) int {
	if score, ok := experienceScores[experience]; ok {
		return score
	}
	return 50
}

func roleMaturityScore(req *core.EvaluationRequest) int {
	rules, ok := roleMaturityRules[req.Role]
	if !ok {
		return 50 // student/other
	}

	score := 50
	for _, rule := range rules {
		if pts, ok := rule.answers[req.Answer(rule.question)]; ok {
			score += pts
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

func aiFluencyScore(req *core.EvaluationRequest) int {
	score := 30 // everyone has some AI exposure

	aiKey, ok := aiQuestionKeys[req.Role]
	if !ok {
		return score
	}

	switch answer := req.Answer(aiKey); {
	case advancedAIAnswers[answer]:
		score += 50
	case tacticalAIAnswers[answer]:
		score += 30
	default:
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

func ownershipScore(req *core.EvaluationRequest) int {
	score := 50

	key, ok := ownershipQuestionKeys[req.Role]
	if !ok {
		return score
	}

	if highOwnershipAnswers[req.Answer(key)] {
		score += 40
	} else {
		score += 20
	}
	if score > 100 {
		score = 100
	}
	return score
}

func maturityLevel(aiFluency int, rawScore float64) string {
	switch {
	case aiFluency >= 80 && rawScore >= 75:
		return MaturityAINative
	case aiFluency >= 65:
		return MaturityAIStrategic
	case aiFluency >= 45:
		return MaturityAICapable
	case aiFluency >= 30:
		return MaturityAICurious
	default:
		return MaturityAIUnaware
	}
}

// percentile places the 40-80 band score on a cohort ladder.
func percentile(overall int) int {
	switch {
	case overall >= 75:
		return 85
	case overall >= 70:
		return 75
	case overall >= 65:
		return 65
	case overall >= 60:
		return 55
	case overall >= 55:
		return 50
	case overall >= 50:
		return 40
	case overall >= 45:
		return 30
	default:
		return 20
	}
}

// tagRule emits a descriptive tag when the question was answered with one of
// the listed keys.
type tagRule struct {
	question string
	answers  []string
	tag      string
}

var tagRules = map[string][]tagRule{
	core.RoleProductManager: {
		{"pm-retention-problem", []string{"resegment-cohorts"}, "Data-Driven"},
		{"pm-roadmap-tradeoff", []string{"incremental"}, "Metrics-Focused"},
		{"pm-ai-leverage", []string{"prioritization", "impact-prediction"}, "AI-Powered PM"},
		{"pm-failure-reflection", []string{"wrong-assumptions"}, "Self-Aware"},
		{"pm-metrics-conflict", []string{"unit-economics"}, "Business-Minded"},
	},
	core.RoleFinance: {
		{"finance-metrics-conflict", []string{"scenarios"}, "Strategic Communicator"},
		{"finance-forecast-miss", []string{"scenario-modeling", "predictive-models"}, "Advanced Modeler"},
		{"finance-decision-speed", []string{"confidence-intervals", "ai-anomalies"}, "Data Scientist"},
		{"finance-leadership-weight", []string{"me"}, "Accountable Leader"},
	},
	core.RoleSales: {
		{"sales-pipeline-reality", []string{"tighten-qualification", "analyze-winloss"}, "Process-Oriented"},
		{"sales-ai-usage", []string{"deal-risk", "pricing-optimization"}, "AI-Powered Sales"},
		{"sales-target-miss", []string{"icp-mismatch", "sales-motion"}, "Strategic Thinker"},
		{"sales-ownership", []string{"region-business", "team-number"}, "Leader"},
	},
	core.RoleMarketing: {
		{"marketing-conflicting-signals", []string{"ltv-cac-cohort", "revenue-attribution"}, "Unit Economics"},
		{"marketing-ai-application", []string{"automated-optimization", "audience-prediction"}, "AI-Native Marketer"},
		{"marketing-defend-metric", []string{"revenue-contribution", "ltv"}, "Revenue-Focused"},
		{"marketing-scale-failure", []string{"funnel-leakage"}, "Growth Hacker"},
	},
	core.RoleOperations: {
		{"operations-scale-stress", []string{"process-design", "data-visibility"}, "Systems Thinker"},
		{"operations-ai-leverage", []string{"automation", "decision-optimization"}, "AI-Leveraged Ops"},
		{"operations-purpose", []string{"enable-scale", "competitive-advantage"}, "Strategic Partner"},
	},
	core.RoleFounder: {
		{"founder-mvp-failure", []string{"reframe-problem", "pivot-icp"}, "Product Thinker"},
		{"founder-scale-pain", []string{"pricing", "customer-mix"}, "Business Fundamentals"},
		{"founder-ai-advantage", []string{"insight", "differentiation"}, "AI-First Founder"},
	},
}

var roleIdentifiers = map[string]string{
	core.RoleProductManager: "Product Manager",
	core.RoleFinance:        "Finance Professional",
	core.RoleSales:          "Sales Professional",
	core.RoleMarketing:      "Marketer",
	core.RoleOperations:     "Operations Professional",
	core.RoleFounder:        "Founder",
}

// readinessTags derives up to four descriptive tags from the actual answer
// pattern, not from the role label alone.
func readinessTags(req *core.EvaluationRequest, maturity string) []string {
	tags := []string{}

	for _, rule := range tagRules[req.Role] {
		answer := req.Answer(rule.question)
		for _, want := range rule.answers {
			if answer == want {
				tags = append(tags, rule.tag)
				break
			}
		}
	}

	switch maturity {
	case MaturityAINative:
		tags = append(tags, "AI Native")
	case MaturityAIStrategic:
		tags = append(tags, "AI Strategic")
	}

	if len(tags) < 2 {
		if identifier, ok := roleIdentifiers[req.Role]; ok {
			tags = append(tags, identifier)
		}
	}

	if len(tags) > 4 {
		tags = tags[:4]
	}
	return tags
}
