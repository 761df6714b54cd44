package generate

import (
	"context"
	"fmt"
	"strings"

	"profiletool/internal/core"
)

// Static is a deterministic generator producing role-templated narratives.
// It backs deployments without an API key and keeps tests hermetic.
type Static struct{}

// NewStatic returns the template-based generator.
func NewStatic() *Static {
	return &Static{}
}

// Model identifies the static generator in cache keys.
func (s *Static) Model() string {
	return "static-v1"
}

type storyTemplate struct {
	company  string
	industry string
	angle    string
}

var storyTemplates = map[string][]storyTemplate{
	core.RoleProductManager: {
		{"Notion", "SaaS", "AI features embedded in every workflow"},
		{"Spotify", "Music Tech", "recommendation AI"},
		{"Figma", "Design Tools", "an AI design assistant"},
	},
	core.RoleFinance: {
		{"Stripe", "Fintech", "automated financial reporting"},
		{"Ramp", "Expense Management", "AI-powered spend optimization"},
		{"Brex", "Corporate Cards", "real-time financial insights"},
	},
	core.RoleSales: {
		{"Gong", "Sales Intelligence", "AI deal risk prediction"},
		{"Outreach", "Sales Engagement", "automated sales workflows"},
		{"Clari", "Revenue Operations", "forecasting automation"},
	},
	core.RoleMarketing: {
		{"HubSpot", "Marketing Automation", "AI content generation"},
		{"Jasper", "AI Content", "scalable content creation"},
		{"Metadata.io", "Performance Marketing", "automated campaign optimization"},
	},
	core.RoleOperations: {
		{"Amazon", "E-commerce", "operations automation at scale"},
		{"Flexport", "Logistics", "AI supply chain optimization"},
		{"Toast", "Restaurant Tech", "operational intelligence"},
	},
	core.RoleFounder: {
		{"Canva", "Design SaaS", "AI design democratization"},
		{"Superhuman", "Email", "AI-powered email"},
		{"Linear", "Project Management", "AI issue tracking"},
	},
}

type winTemplate struct {
	title       string
	description string
}

var winTemplates = map[string][]winTemplate{
	core.RoleProductManager: {
		{"Define Your North Star Metric", "Identify and document the single metric that best represents product success"},
		{"Run Weekly Cohort Reviews", "Analyze user retention by cohort to spot patterns early"},
		{"Build an AI Research Assistant", "Use ChatGPT to synthesize user feedback faster"},
		{"Create a Prioritization Framework", "Implement RICE or ICE scoring for all roadmap items"},
		{"Set Up Automated Product Analytics", "Connect your product to analytics that track key flows"},
	},
	core.RoleFinance: {
		{"Build 3 Scenario Models", "Create best/base/worst case scenarios for next quarter"},
		{"Automate Your Monthly Close", "Use AI to flag anomalies in financial data"},
		{"Create Executive Dashboards", "Build real-time dashboards leadership actually uses"},
		{"Master Sensitivity Analysis", "Learn which variables most impact your forecasts"},
		{"Implement Rolling Forecasts", "Move from annual to continuous planning cycles"},
	},
	core.RoleSales: {
		{"Analyze Win/Loss Patterns", "Review last 50 deals to find predictive signals"},
		{"Build Deal Risk Scoring", "Create a simple model to predict deal closure"},
		{"Optimize Your ICP Definition", "Tighten qualification criteria based on close rates"},
		{"Automate Pipeline Reviews", "Use AI to surface at-risk deals proactively"},
		{"Create Pricing Experiments", "Test discount strategies with A/B cohorts"},
	},
	core.RoleMarketing: {
		{"Build LTV/CAC by Channel", "Understand unit economics at the channel level"},
		{"Create Attribution Models", "Build directional attribution that drives decisions"},
		{"Automate Creative Testing", "Use AI to test 10x more ad variations"},
		{"Optimize Conversion Funnels", "Find and fix the biggest leakage points"},
		{"Implement Cohort Tracking", "Track retention by acquisition channel and time"},
	},
	core.RoleOperations: {
		{"Map Process Bottlenecks", "Document where operations slow down under load"},
		{"Build Early Warning Indicators", "Create leading metrics for operational issues"},
		{"Automate Reporting Workflows", "Use AI to generate weekly ops reports automatically"},
		{"Create Scenario Planning", "Model how operations scale with 2x, 5x, 10x demand"},
		{"Implement SLA Tracking", "Build real-time dashboards for key SLAs"},
	},
	core.RoleFounder: {
		{"Validate Problem-Market Fit", "Run 20 customer interviews this month"},
		{"Build Unit Economics Model", "Calculate true customer acquisition and retention costs"},
		{"Create AI Co-Founder Workflows", "Use AI for research, analysis, and decisions"},
		{"Implement Weekly Metrics Review", "Track 5-7 key metrics every Monday"},
		{"Test Pricing Hypotheses", "Run pricing experiments with new customers"},
	},
}

var careerPathTemplates = map[string][]core.CareerPath{
	core.RoleProductManager: {
		{Title: "Senior Product Manager", Description: "Own a product line end to end with revenue accountability.", ActionItems: []string{"Ship one revenue-attributed feature this quarter", "Present roadmap tradeoffs to leadership monthly", "Build an AI-assisted discovery workflow"}},
		{Title: "AI Product Lead", Description: "Define how AI capabilities shape the product strategy.", ActionItems: []string{"Prototype one AI feature with real users", "Learn evaluation basics for AI products", "Write an AI capability roadmap"}},
		{Title: "Group Product Manager", Description: "Lead a team of PMs against portfolio outcomes.", ActionItems: []string{"Mentor a junior PM for one quarter", "Run portfolio prioritization across two products", "Own a cross-team outcome metric"}},
	},
	core.RoleFinance: {
		{Title: "Strategic Finance Lead", Description: "Drive planning and decision support for leadership.", ActionItems: []string{"Build a rolling three-scenario forecast", "Automate one recurring report end to end", "Present trade-off analysis to executives"}},
		{Title: "FP&A Manager", Description: "Own forecasting, budgeting, and variance analysis.", ActionItems: []string{"Cut monthly close time by one day", "Introduce driver-based planning for one unit", "Ship a self-serve metrics dashboard"}},
		{Title: "Finance Business Partner", Description: "Embed with an operating team as its finance strategist.", ActionItems: []string{"Join one product planning cycle this quarter", "Translate a model into a one-page decision memo", "Build trust with two operating leaders"}},
	},
	core.RoleSales: {
		{Title: "Sales Team Lead", Description: "Carry a team number and build a repeatable motion.", ActionItems: []string{"Document your qualification framework", "Coach one rep using call analysis", "Build a data-backed forecast model"}},
		{Title: "Revenue Operations Manager", Description: "Own pipeline process, forecasting, and sales tooling.", ActionItems: []string{"Instrument stage-by-stage conversion rates", "Automate pipeline hygiene checks", "Run a win/loss program for one quarter"}},
		{Title: "Enterprise Account Executive", Description: "Run complex multi-stakeholder deals at higher contract values.", ActionItems: []string{"Map buying committees on current deals", "Build a mutual action plan template", "Close one multi-threaded deal"}},
	},
	core.RoleMarketing: {
		{Title: "Growth Marketing Lead", Description: "Own acquisition economics and experimentation velocity.", ActionItems: []string{"Stand up LTV/CAC reporting by channel", "Double your monthly experiment count", "Kill one unprofitable channel with data"}},
		{Title: "Marketing Analytics Manager", Description: "Own attribution, cohort analysis, and marketing ROI.", ActionItems: []string{"Ship a directional attribution model", "Build cohort retention reporting", "Train the team on reading cohort data"}},
		{Title: "Product Marketing Manager", Description: "Connect positioning, launches, and revenue outcomes.", ActionItems: []string{"Interview ten customers on positioning", "Run one full launch end to end", "Build a competitive intelligence habit"}},
	},
	core.RoleOperations: {
		{Title: "Operations Manager", Description: "Own processes, SLAs, and scaling capacity.", ActionItems: []string{"Instrument your three core SLAs", "Remove one bottleneck via process redesign", "Automate your most frequent decision"}},
		{Title: "Business Operations Lead", Description: "Drive cross-functional efficiency and strategic projects.", ActionItems: []string{"Lead one cross-team improvement project", "Build executive-facing ops reporting", "Quantify savings from one automation"}},
		{Title: "Supply Chain Analyst", Description: "Optimize inventory, logistics, and vendor performance.", ActionItems: []string{"Build a demand forecast with ranges", "Score vendors on data not anecdotes", "Pilot one predictive alert"}},
	},
	core.RoleFounder: {
		{Title: "Founder / CEO", Description: "Scale the company with AI leverage instead of headcount.", ActionItems: []string{"Instrument five core business metrics", "Make AI the default for every task", "Talk to twenty customers this month"}},
		{Title: "Product-Led Founder", Description: "Drive growth through the product itself.", ActionItems: []string{"Map activation and retention funnels", "Ship one AI-differentiated capability", "Run weekly metric reviews"}},
		{Title: "Fractional Operator", Description: "Apply your playbook across several early companies.", ActionItems: []string{"Codify your operating playbook", "Take one advisory engagement", "Build a reference metrics stack"}},
	},
}

// Generate renders the role's narrative templates with light personalization
// from the input context.
func (s *Static) Generate(_ context.Context, in *Input) (*core.Narrative, error) {
	role := in.Role
	if _, ok := storyTemplates[role]; !ok {
		role = core.RoleProductManager
	}

	gapText := "key areas"
	if len(in.Gaps) > 0 {
		gaps := in.Gaps
		if len(gaps) > 2 {
			gaps = gaps[:2]
		}
		gapText = strings.Join(gaps, ", ")
	}

	stories := make([]core.TransformationStory, 0, 3)
	for _, tmpl := range storyTemplates[role] {
		stories = append(stories, core.TransformationStory{
			Company:         tmpl.company,
			BeforeAI:        fmt.Sprintf("%s faced the limits of manual work in %s: slow cycles, inconsistent quality, and decisions made on incomplete information.", tmpl.company, tmpl.industry),
			AfterAI:         fmt.Sprintf("%s transformed %s by leveraging %s, compressing weeks of work into days and raising the quality bar at the same time.", tmpl.company, tmpl.industry, tmpl.angle),
			RelevanceToUser: fmt.Sprintf("With %s experience and a goal of %s, the same shift applies to your work, especially around %s.", in.Experience, in.CareerGoal, gapText),
		})
	}

	tools := make([]core.ToolDescription, 0, len(in.Tools))
	for _, tool := range in.Tools {
		tools = append(tools, core.ToolDescription{
			ToolName:            tool.Name,
			PersonalizedUseCase: fmt.Sprintf("Use %s for %s, focused on closing your gaps in %s.", tool.Name, strings.ToLower(tool.Category), gapText),
			WhyItHelps:          tool.Impact,
		})
	}

	wins := make([]core.NarrativeQuickWin, 0, 5)
	for i, tmpl := range winTemplates[role] {
		priority := "recommended"
		if i == 0 {
			priority = "must-have"
		}
		wins = append(wins, core.NarrativeQuickWin{
			Title:       tmpl.title,
			Description: fmt.Sprintf("%s. This addresses your gaps in %s and moves you toward %s.", tmpl.description, gapText, in.CareerGoal),
			Timeline:    "1-2 weeks",
			Impact:      fmt.Sprintf("A concrete step from a readiness score of %d toward the next level.", in.ReadinessScore),
			Priority:    priority,
		})
	}

	return &core.Narrative{
		TransformationStories: stories,
		ToolDescriptions:      tools,
		QuickWins:             wins,
		CareerPaths:           careerPathTemplates[role],
	}, nil
}
