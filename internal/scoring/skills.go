package scoring

import (
	"sort"

	"profiletool/internal/core"
)

// Skill level labels on the external 1-3 scale. Internally answers score 1-5;
// the public scale tops out at "Strong" so every profile has headroom.
var skillLevelLabels = map[int]string{
	1: "Needs Improvement",
	2: "Proficient",
	3: "Strong",
}

type skillMeta struct {
	title       string
	description string
}

var skillMetadata = map[string]skillMeta{
	"ai_literacy":        {"AI Literacy", "Your proficiency in understanding and applying AI tools, from tactical automation to strategic decision-making."},
	"leadership":         {"Leadership", "Your ability to drive outcomes through teams, influence stakeholders, and take ownership of results."},
	"strategic_thinking": {"Strategic Thinking", "Your capacity to see systems, connect long-term outcomes, and identify root causes beyond surface symptoms."},

	"product_strategy": {"Product Strategy", "Your ability to define product vision, prioritize ruthlessly, and connect features to business outcomes."},
	"data_driven_pm":   {"Data-Driven PM", "Your skill in using metrics, cohort analysis, and experimentation to validate hypotheses and drive product decisions."},
	"user_centricity":  {"User Centricity", "Your commitment to understanding user problems deeply and solving for real pain points, not just feature requests."},

	"financial_modeling":  {"Financial Modeling", "Your expertise in building forecasts, scenario models, and financial plans that guide business decisions."},
	"business_partnering": {"Business Partnering", "Your ability to translate financial insights into strategic recommendations that influence leadership decisions."},
	"data_integrity":      {"Data Integrity", "Your rigor in ensuring financial data accuracy, investigating anomalies, and building trust in the numbers."},

	"revenue_operations": {"Revenue Operations", "Your skill in optimizing sales processes, forecasting accurately, and connecting sales motions to revenue outcomes."},
	"deal_execution":     {"Deal Execution", "Your ability to move deals forward, navigate blockers, and structure agreements that maximize value."},
	"sales_strategy":     {"Sales Strategy", "Your understanding of ICP fit, pricing optimization, and aligning sales motions with business strategy."},

	"growth_marketing":      {"Growth Marketing", "Your ability to drive scalable acquisition, optimize conversion funnels, and connect marketing to revenue."},
	"marketing_analytics":   {"Marketing Analytics", "Your skill in measuring attribution, understanding cohort economics, and using data to optimize campaigns."},
	"campaign_optimization": {"Campaign Optimization", "Your expertise in testing creatives, channels, and messaging to maximize ROI on marketing spend."},

	"operations_excellence": {"Operations Excellence", "Your ability to build scalable processes, identify bottlenecks, and drive operational efficiency."},
	"supply_chain":          {"Supply Chain", "Your understanding of inventory management, logistics optimization, and managing operational constraints."},
	"process_automation":    {"Process Automation", "Your skill in identifying automation opportunities and leveraging AI tools to scale operations without headcount."},

	"venture_building":        {"Venture Building", "Your ability to identify opportunities, validate product-market fit, and build sustainable business models."},
	"business_fundamentals":   {"Business Fundamentals", "Your understanding of unit economics, pricing strategy, and the financial levers that drive profitable growth."},
	"founder_resourcefulness": {"Founder Resourcefulness", "Your ability to move fast with limited resources, prioritize ruthlessly, and find creative solutions to constraints."},
}

// Three role-specific skills plus the three universal ones per role.
var roleSkillMaps = map[string][]string{
	core.RoleProductManager: {"product_strategy", "data_driven_pm", "user_centricity", "ai_literacy", "leadership", "strategic_thinking"},
	core.RoleFinance:        {"financial_modeling", "business_partnering", "data_integrity", "ai_literacy", "leadership", "strategic_thinking"},
	core.RoleSales:          {"revenue_operations", "deal_execution", "sales_strategy", "ai_literacy", "leadership", "strategic_thinking"},
	core.RoleMarketing:      {"growth_marketing", "marketing_analytics", "campaign_optimization", "ai_literacy", "leadership", "strategic_thinking"},
	core.RoleOperations:     {"operations_excellence", "supply_chain", "process_automation", "ai_literacy", "leadership", "strategic_thinking"},
	core.RoleFounder:        {"venture_building", "business_fundamentals", "founder_resourcefulness", "ai_literacy", "leadership", "strategic_thinking"},
}

// questionSkillMap lists the skills each question tests.
var questionSkillMap = map[string][]string{
	"pm-retention-problem":  {"product_strategy", "data_driven_pm", "user_centricity"},
	"pm-roadmap-tradeoff":   {"product_strategy", "strategic_thinking", "leadership"},
	"pm-mvp-validation":     {"user_centricity", "ai_literacy"},
	"pm-metrics-conflict":   {"data_driven_pm", "strategic_thinking"},
	"pm-ai-leverage":        {"ai_literacy"},
	"pm-failure-reflection": {"leadership", "strategic_thinking"},

	"finance-metrics-conflict":  {"business_partnering", "data_integrity", "leadership"},
	"finance-forecast-miss":     {"financial_modeling", "data_integrity"},
	"finance-decision-speed":    {"data_integrity", "strategic_thinking"},
	"finance-ai-application":    {"ai_literacy"},
	"finance-leadership-weight": {"business_partnering", "leadership"},
	"finance-impact-type":       {"financial_modeling", "strategic_thinking"},

	"sales-pipeline-reality": {"revenue_operations", "strategic_thinking"},
	"sales-deal-stuck":       {"deal_execution", "strategic_thinking"},
	"sales-ai-usage":         {"ai_literacy"},
	"sales-target-miss":      {"sales_strategy", "strategic_thinking"},
	"sales-forecasting":      {"revenue_operations", "data_driven_pm"},
	"sales-ownership":        {"leadership", "sales_strategy"},

	"marketing-conflicting-signals": {"growth_marketing", "marketing_analytics", "strategic_thinking"},
	"marketing-budget-shock":        {"campaign_optimization", "strategic_thinking"},
	"marketing-ai-application":      {"ai_literacy"},
	"marketing-attribution-reality": {"marketing_analytics", "strategic_thinking"},
	"marketing-scale-failure":       {"growth_marketing", "strategic_thinking"},
	"marketing-defend-metric":       {"leadership", "growth_marketing"},

	"operations-scale-stress":    {"operations_excellence", "supply_chain", "strategic_thinking"},
	"operations-cost-sla":        {"operations_excellence", "process_automation"},
	"operations-ai-leverage":     {"ai_literacy", "process_automation"},
	"operations-metric-priority": {"leadership", "operations_excellence"},
	"operations-data-constraint": {"strategic_thinking", "operations_excellence"},
	"operations-purpose":         {"leadership", "strategic_thinking"},

	"founder-mvp-failure":         {"venture_building", "user_centricity"},
	"founder-ai-dependency":       {"ai_literacy", "founder_resourcefulness"},
	"founder-scale-pain":          {"business_fundamentals", "strategic_thinking"},
	"founder-resource-constraint": {"founder_resourcefulness", "business_fundamentals"},
	"founder-ai-advantage":        {"ai_literacy", "strategic_thinking"},
	"founder-failure-pattern":     {"leadership", "venture_building"},
}

// answerScores maps each answer choice to an internal 1-5 quality score.
var answerScores = map[string]map[string]int{
	"pm-retention-problem": {
		"resegment-cohorts":      5,
		"qualitative-interviews": 4,
		"add-parity":             2,
		"pause-for-data":         3,
	},
	"pm-roadmap-tradeoff": {
		"ai-feature":         2,
		"incremental":        5,
		"ai-wrapper":         1,
		"parallel-discovery": 4,
	},
	"pm-mvp-validation": {
		"prd-mockups":      2,
		"nocode-prototype": 5,
		"ai-simulated":     4,
		"interviews-only":  3,
	},
	"pm-metrics-conflict": {
		"north-star":         2,
		"revenue":            3,
		"leading-indicators": 4,
		"unit-economics":     5,
	},
	"pm-ai-leverage": {
		"writing-prds":       2,
		"research-synthesis": 4,
		"prioritization":     5,
		"impact-prediction":  5,
	},
	"pm-failure-reflection": {
		"poor-data":             3,
		"wrong-assumptions":     5,
		"stakeholder-pressure":  2,
		"execution-constraints": 3,
	},

	"finance-metrics-conflict": {
		"recheck-quietly": 2,
		"present-as-is":   3,
		"scenarios":       5,
		"align-narrative": 4,
	},
	"finance-forecast-miss": {
		"conservative-buffers": 2,
		"granular-drivers":     4,
		"scenario-modeling":    5,
		"predictive-models":    5,
	},
	"finance-decision-speed": {
		"delay-decision":       1,
		"historical-averages":  2,
		"confidence-intervals": 5,
		"ai-anomalies":         5,
	},
	"finance-ai-application": {
		"faster-reporting":  2,
		"anomaly-detection": 4,
		"forecasting":       5,
		"prescriptive":      5,
	},
	"finance-leadership-weight": {
		"leadership":       2,
		"cross-functional": 3,
		"shared":           4,
		"me":               5,
	},
	"finance-impact-type": {
		"cost-reduction":       3,
		"revenue-optimization": 5,
		"risk-mitigation":      3,
		"strategic-pivot":      5,
	},

	"sales-pipeline-reality": {
		"push-volume":            1,
		"tighten-qualification":  5,
		"analyze-winloss":        5,
		"change-pricing":         3,
	},
	"sales-deal-stuck": {
		"increase-followups":  1,
		"escalate-internally": 3,
		"analyze-blockers":    5,
		"change-structure":    5,
	},
	"sales-ai-usage": {
		"email-drafts":         2,
		"call-summaries":       3,
		"deal-risk":            5,
		"pricing-optimization": 5,
	},
	"sales-target-miss": {
		"lead-quality":      1,
		"icp-mismatch":      5,
		"sales-motion":      5,
		"market-conditions": 2,
	},
	"sales-forecasting": {
		"rep-judgment":        2,
		"weighted-pipeline":   3,
		"historical-patterns": 4,
		"predictive-models":   5,
	},
	"sales-ownership": {
		"activities":      2,
		"revenue-number":  4,
		"team-number":     5,
		"region-business": 5,
	},

	"marketing-conflicting-signals": {
		"ctr":                 1,
		"cac":                 3,
		"ltv-cac-cohort":      5,
		"revenue-attribution": 5,
	},
	"marketing-budget-shock": {
		"experiments":      1,
		"branding":         3,
		"low-ltv-segments": 5,
		"agency-spend":     4,
	},
	"marketing-ai-application": {
		"content-generation":     2,
		"creative-testing":       4,
		"audience-prediction":    5,
		"automated-optimization": 5,
	},
	"marketing-attribution-reality": {
		"accept-imperfect":     2,
		"switch-model":         3,
		"directional-insights": 5,
		"ai-infer-patterns":    5,
	},
	"marketing-scale-failure": {
		"saturation":         3,
		"messaging-mismatch": 4,
		"funnel-leakage":     5,
		"ops-constraints":    5,
	},
	"marketing-defend-metric": {
		"leads":                2,
		"cac":                  3,
		"revenue-contribution": 5,
		"ltv":                  5,
	},

	"operations-scale-stress": {
		"hiring-capacity":    2,
		"process-design":     5,
		"data-visibility":    5,
		"vendor-reliability": 4,
	},
	"operations-cost-sla": {
		"headcount":           1,
		"process-bottlenecks": 5,
		"demand-variability":  4,
		"automation-gaps":     5,
	},
	"operations-ai-leverage": {
		"reporting":             2,
		"forecasting":           4,
		"automation":            5,
		"decision-optimization": 5,
	},
	"operations-metric-priority": {
		"task-completion": 2,
		"cost-per-unit":   4,
		"sla-adherence":   4,
		"margin":          5,
	},
	"operations-data-constraint": {
		"wait":          1,
		"use-proxies":   4,
		"early-warning": 5,
		"ai-prediction": 5,
	},
	"operations-purpose": {
		"execute-plans":         2,
		"reduce-cost":           3,
		"enable-scale":          5,
		"competitive-advantage": 5,
	},

	"founder-mvp-failure": {
		"add-features":       1,
		"increase-marketing": 2,
		"reframe-problem":    5,
		"pivot-icp":          5,
	},
	"founder-ai-dependency": {
		"engineering":     4,
		"marketing":       3,
		"ops":             3,
		"decision-making": 5,
	},
	"founder-scale-pain": {
		"pricing":          5,
		"ops-inefficiency": 3,
		"customer-mix":     5,
		"data-blindness":   4,
	},
	"founder-resource-constraint": {
		"growth":        3,
		"profitability": 4,
		"learning":      5,
		"fundraising":   2,
	},
	"founder-ai-advantage": {
		"speed":           3,
		"cost":            3,
		"insight":         5,
		"differentiation": 5,
	},
	"founder-failure-pattern": {
		"hiring-early": 3,
		"scaling-fast": 3,
		"weak-data":    5,
		"poor-problem": 5,
	},
}

// mapScoreToLevel compresses the internal 1-5 score to the public 1-3 scale.
func mapScoreToLevel(score int) int {
	switch {
	case score <= 2:
		return 1
	case score == 3:
		return 2
	default:
		return 3
	}
}

// InferSkills scores each of the role's six skills as the rounded average of
// the answer scores for the questions testing that skill, then maps the
// result onto the 1-3 scale. Skills with no answered questions default to
// Proficient. Strengths are level-3 skills, gaps are level-1 skills.
func InferSkills(req *core.EvaluationRequest) core.SkillAnalysis {
	skillNames, ok := roleSkillMaps[req.Role]
	if !ok {
		skillNames = roleSkillMaps[core.RoleProductManager]
	}

	skillToQuestions := make(map[string][]string, len(skillNames))
	for question, tested := range questionSkillMap {
		for _, skill := range tested {
			skillToQuestions[skill] = append(skillToQuestions[skill], question)
		}
	}

	analysis := core.SkillAnalysis{
		Skills:    make([]core.Skill, 0, len(skillNames)),
		Strengths: []string{},
		Gaps:      []string{},
	}

	for _, name := range skillNames {
		questions := skillToQuestions[name]
		sort.Strings(questions) // map iteration order is random

		var sum, count int
		for _, question := range questions {
			answer := req.Answer(question)
			if answer == "" {
				continue
			}
			if score, ok := answerScores[question][answer]; ok {
				sum += score
				count++
			}
		}

		level := 2
		if count > 0 {
			internal := roundDiv(sum, count)
			if internal < 1 {
				internal = 1
			}
			if internal > 5 {
				internal = 5
			}
			level = mapScoreToLevel(internal)
		}

		meta := skillMetadata[name]
		analysis.Skills = append(analysis.Skills, core.Skill{
			Key:         name,
			Title:       meta.title,
			Description: meta.description,
			Level:       level,
			LevelLabel:  skillLevelLabels[level],
		})

		switch {
		case level >= 3:
			analysis.Strengths = append(analysis.Strengths, name)
		case level <= 1:
			analysis.Gaps = append(analysis.Gaps, name)
		}
	}

	return analysis
}

// roundDiv is round-half-up integer division for averaging answer scores.
func roundDiv(sum, count int) int {
	return (sum*2 + count) / (count * 2)
}
