package scoring

import "profiletool/internal/core"

// Persona maturity variants. ai_capable collapses into the strategic variant
// and the two lowest maturity levels share the developing variant.
const (
	variantAINative    = "ai_native"
	variantAIStrategic = "ai_strategic"
	variantDeveloping  = "developing"
)

type personaVariant struct {
	badgeLabel         string
	variantDescription string
	tags               []string
	keyStrengths       []string
	fit                string
}

type personaDef struct {
	id          string
	label       string
	roleContext string
	description string
	variants    map[string]personaVariant
}

var personaDefs = map[string]personaDef{
	core.RoleProductManager: {
		id:          "persona_product_manager",
		label:       "Product Manager",
		roleContext: "Business x AI Product Leadership",
		description: "Product leader connecting customer problems to business outcomes",
		variants: map[string]personaVariant{
			variantAINative: {
				badgeLabel:         "AI-Native Product Manager",
				variantDescription: "You build products with AI as a core capability, not an add-on, and use it daily for discovery, prioritization, and impact prediction.",
				tags:               []string{"AI Native", "Product Manager", "Strategic"},
				keyStrengths:       []string{"AI-first product design", "Data-driven prioritization", "Outcome focus"},
				fit:                "Ready for product leadership roles where AI strategy defines the roadmap",
			},
			variantAIStrategic: {
				badgeLabel:         "AI-Strategic Product Manager",
				variantDescription: "You apply AI to strategic product work and are building the habits that turn it into a durable advantage.",
				tags:               []string{"AI Strategic", "Product Manager"},
				keyStrengths:       []string{"Customer insight", "Roadmap discipline"},
				fit:                "Deepen AI fluency to move from strong PM to product leader",
			},
			variantDeveloping: {
				badgeLabel:         "Emerging Product Manager",
				variantDescription: "You have solid product instincts and are early in integrating AI into your day-to-day decisions.",
				tags:               []string{"Product Manager", "AI Learner"},
				keyStrengths:       []string{"Execution", "User empathy"},
				fit:                "Focus on AI literacy and connecting features to revenue",
			},
		},
	},
	core.RoleFinance: {
		id:          "persona_finance",
		label:       "Finance Professional",
		roleContext: "Business x AI Financial Strategy",
		description: "Finance professional turning numbers into strategic decisions",
		variants: map[string]personaVariant{
			variantAINative: {
				badgeLabel:         "AI-Native Finance Leader",
				variantDescription: "You run predictive, scenario-driven finance and automate the reporting work others still do by hand.",
				tags:               []string{"AI Native", "Finance Leader", "Strategic"},
				keyStrengths:       []string{"Predictive modeling", "Scenario planning", "Decision support"},
				fit:                "Ready for strategic finance leadership and CFO-track roles",
			},
			variantAIStrategic: {
				badgeLabel:         "AI-Strategic Finance Professional",
				variantDescription: "You use AI for analysis and forecasting and are moving from reporting what happened to predicting what will.",
				tags:               []string{"AI Strategic", "Finance Professional"},
				keyStrengths:       []string{"Analytical rigor", "Forecasting"},
				fit:                "Build scenario modeling depth to become a strategic partner",
			},
			variantDeveloping: {
				badgeLabel:         "Emerging Finance Professional",
				variantDescription: "You have strong fundamentals and are beginning to bring AI into your analysis and reporting.",
				tags:               []string{"Finance Professional", "AI Learner"},
				keyStrengths:       []string{"Accuracy", "Diligence"},
				fit:                "Automate manual reporting first, then layer in predictive work",
			},
		},
	},
	core.RoleSales: {
		id:          "persona_sales",
		label:       "Sales Professional",
		roleContext: "Business x AI Revenue Leadership",
		description: "Revenue driver combining relationship skill with data discipline",
		variants: map[string]personaVariant{
			variantAINative: {
				badgeLabel:         "AI-Native Sales Leader",
				variantDescription: "You run a data-driven revenue motion with AI scoring deals, predicting risk, and optimizing pricing.",
				tags:               []string{"AI Native", "Sales Leader", "Strategic"},
				keyStrengths:       []string{"Deal intelligence", "Forecast accuracy", "Process design"},
				fit:                "Ready for revenue leadership roles owning the full sales motion",
			},
			variantAIStrategic: {
				badgeLabel:         "AI-Strategic Sales Professional",
				variantDescription: "You use AI beyond email drafts and are building a repeatable, data-backed sales process.",
				tags:               []string{"AI Strategic", "Sales Professional"},
				keyStrengths:       []string{"Qualification discipline", "Pattern recognition"},
				fit:                "Master predictive forecasting to move into sales leadership",
			},
			variantDeveloping: {
				badgeLabel:         "Emerging Sales Professional",
				variantDescription: "You close deals on skill and effort and are early in using data and AI to work smarter.",
				tags:               []string{"Sales Professional", "AI Learner"},
				keyStrengths:       []string{"Persistence", "Relationship building"},
				fit:                "Start with win/loss analysis and AI-assisted deal review",
			},
		},
	},
	core.RoleMarketing: {
		id:          "persona_marketing",
		label:       "Marketer",
		roleContext: "Business x AI Growth Leadership",
		description: "Marketer connecting campaigns to revenue, not just reach",
		variants: map[string]personaVariant{
			variantAINative: {
				badgeLabel:         "AI-Native Marketer",
				variantDescription: "You run AI-optimized campaigns against unit economics, with attribution and audience prediction built in.",
				tags:               []string{"AI Native", "Growth Marketer", "Strategic"},
				keyStrengths:       []string{"Unit economics", "Automated optimization", "Attribution"},
				fit:                "Ready for growth leadership roles owning marketing-sourced revenue",
			},
			variantAIStrategic: {
				badgeLabel:         "AI-Strategic Marketer",
				variantDescription: "You use AI for testing and targeting and are connecting more of your work to revenue outcomes.",
				tags:               []string{"AI Strategic", "Marketer"},
				keyStrengths:       []string{"Experimentation", "Channel insight"},
				fit:                "Build LTV/CAC fluency to defend and grow your budget",
			},
			variantDeveloping: {
				badgeLabel:         "Emerging Marketer",
				variantDescription: "You execute well on campaigns and are early in using AI and cohort economics to guide spend.",
				tags:               []string{"Marketer", "AI Learner"},
				keyStrengths:       []string{"Creativity", "Execution"},
				fit:                "Move from vanity metrics to revenue attribution first",
			},
		},
	},
	core.RoleOperations: {
		id:          "persona_operations",
		label:       "Operations Professional",
		roleContext: "Business x AI Operational Excellence",
		description: "Operator building systems that scale without breaking",
		variants: map[string]personaVariant{
			variantAINative: {
				badgeLabel:         "AI-Native Operations Leader",
				variantDescription: "You design self-improving operations with automated decisions, predictive alerts, and real-time visibility.",
				tags:               []string{"AI Native", "Operations Leader", "Strategic"},
				keyStrengths:       []string{"Systems design", "Decision automation", "Instrumentation"},
				fit:                "Ready for operations leadership where ops is a competitive weapon",
			},
			variantAIStrategic: {
				badgeLabel:         "AI-Strategic Operations Professional",
				variantDescription: "You apply AI to forecasting and automation and think in processes, not just tasks.",
				tags:               []string{"AI Strategic", "Operations Professional"},
				keyStrengths:       []string{"Process thinking", "Root cause analysis"},
				fit:                "Automate your most frequent decisions to free strategic time",
			},
			variantDeveloping: {
				badgeLabel:         "Emerging Operations Professional",
				variantDescription: "You keep things running and are early in moving from firefighting to system design.",
				tags:               []string{"Operations Professional", "AI Learner"},
				keyStrengths:       []string{"Reliability", "Attention to detail"},
				fit:                "Map your bottlenecks and instrument your SLAs first",
			},
		},
	},
	core.RoleFounder: {
		id:          "persona_founder",
		label:       "Founder",
		roleContext: "Business x AI Venture Building",
		description: "Founder building with leverage instead of headcount",
		variants: map[string]personaVariant{
			variantAINative: {
				badgeLabel:         "AI-Native Founder",
				variantDescription: "You treat AI as a co-founder, shipping at a pace that bigger teams cannot match and building it into your moat.",
				tags:               []string{"AI Native", "Founder", "Strategic"},
				keyStrengths:       []string{"Speed of iteration", "Capital efficiency", "Product insight"},
				fit:                "Positioned to build an AI-first company with outsized leverage",
			},
			variantAIStrategic: {
				badgeLabel:         "AI-Strategic Founder",
				variantDescription: "You use AI across the business and are converting speed and cost advantages into durable differentiation.",
				tags:               []string{"AI Strategic", "Founder"},
				keyStrengths:       []string{"Resourcefulness", "Problem framing"},
				fit:                "Push AI from efficiency gains into product differentiation",
			},
			variantDeveloping: {
				badgeLabel:         "Emerging Founder",
				variantDescription: "You are building on grit and are early in using AI and metrics to multiply your output.",
				tags:               []string{"Founder", "AI Learner"},
				keyStrengths:       []string{"Drive", "Customer focus"},
				fit:                "Instrument your core metrics and make AI your daily default",
			},
		},
	},
}

var genericPersona = core.Persona{
	ID:                 "persona_generic",
	Label:              "Business Professional",
	RoleContext:        "Business x AI Readiness",
	Description:        "Professional building business and AI skills",
	MaturityVariant:    variantDeveloping,
	BadgeLabel:         "Business Professional",
	VariantDescription: "You are building your AI and business skillset",
	Tags:               []string{"Business Professional", "AI Learner"},
	KeyStrengths:       []string{"Professional development", "Career growth"},
	Fit:                "Focus on building AI fluency and strategic thinking",
}

// MatchPersona maps role and AI maturity to a persona variant, falling back
// to a generic persona for unknown roles.
func MatchPersona(role, maturityLevel string) core.Persona {
	def, ok := personaDefs[role]
	if !ok {
		return genericPersona
	}

	var variantKey string
	switch maturityLevel {
	case MaturityAINative:
		variantKey = variantAINative
	case MaturityAIStrategic, MaturityAICapable:
		variantKey = variantAIStrategic
	default:
		variantKey = variantDeveloping
	}

	variant := def.variants[variantKey]
	return core.Persona{
		ID:                 def.id,
		Label:              def.label,
		RoleContext:        def.roleContext,
		Description:        def.description,
		MaturityVariant:    variantKey,
		BadgeLabel:         variant.badgeLabel,
		VariantDescription: variant.variantDescription,
		Tags:               variant.tags,
		KeyStrengths:       variant.keyStrengths,
		Fit:                variant.fit,
	}
}
