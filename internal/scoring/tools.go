package scoring

import "profiletool/internal/core"

var universalTools = []core.AITool{
	{
		Name:     "ChatGPT / Claude",
		Category: "General AI Assistant",
		UseCase:  "Writing, analysis, research, coding, problem-solving",
		Impact:   "Your AI co-worker. Handles 80% of knowledge work tasks.",
		Priority: "must-have",
		URL:      "https://chat.openai.com",
	},
	{
		Name:     "Perplexity AI",
		Category: "AI Search Engine",
		UseCase:  "Market research, competitor analysis, trend spotting",
		Impact:   "Get sourced answers instead of endless Googling.",
		Priority: "must-have",
		URL:      "https://perplexity.ai",
	},
}

var roleTools = map[string][]core.AITool{
	core.RoleProductManager: {
		{Name: "Notion AI", Category: "Documentation & Planning", UseCase: "Write PRDs, user stories, meeting notes with AI assistance", Impact: "Draft product docs 5x faster with better structure.", Priority: "recommended", URL: "https://notion.so/product/ai"},
		{Name: "Dovetail", Category: "User Research", UseCase: "Analyze user interviews, find patterns, generate insights", Impact: "Turn 10 hours of interview analysis into 30 minutes.", Priority: "recommended", URL: "https://dovetail.com"},
		{Name: "v0.dev", Category: "Rapid Prototyping", UseCase: "Generate working UI prototypes from text descriptions", Impact: "Build clickable prototypes in minutes, not days.", Priority: "nice-to-have", URL: "https://v0.dev"},
		{Name: "Hex", Category: "Data Analysis", UseCase: "SQL + Python notebooks with AI assistance for product analytics", Impact: "Analyze product data without waiting for data team.", Priority: "recommended", URL: "https://hex.tech"},
	},
	core.RoleFinance: {
		{Name: "Excel Copilot", Category: "Spreadsheet AI", UseCase: "Write formulas, clean data, build models with natural language", Impact: "Do in 1 minute what used to take 30 minutes.", Priority: "must-have", URL: "https://microsoft.com/microsoft-365/excel"},
		{Name: "DataRobot", Category: "Predictive Analytics", UseCase: "Build financial forecast models without coding", Impact: "Create accurate forecasts 10x faster than manual methods.", Priority: "recommended", URL: "https://datarobot.com"},
		{Name: "Fathom", Category: "Meeting Intelligence", UseCase: "Auto-transcribe finance meetings, extract action items", Impact: "Never miss a number or decision in meetings again.", Priority: "recommended", URL: "https://fathom.video"},
		{Name: "Causal", Category: "Financial Modeling", UseCase: "Build interactive financial models with scenario planning", Impact: "Create board-ready financial models in hours, not weeks.", Priority: "nice-to-have", URL: "https://causal.app"},
	},
	core.RoleSales: {
		{Name: "Gong", Category: "Revenue Intelligence", UseCase: "Analyze sales calls, identify winning patterns, coach reps", Impact: "Know exactly what top performers do differently.", Priority: "must-have", URL: "https://gong.io"},
		{Name: "Lavender", Category: "Email Assistant", UseCase: "Write better sales emails faster with AI coaching", Impact: "Increase email response rates by 30%+.", Priority: "recommended", URL: "https://lavender.ai"},
		{Name: "Clay", Category: "Prospecting & Enrichment", UseCase: "Find leads, enrich data, personalize outreach at scale", Impact: "Build targeted prospect lists 100x faster.", Priority: "recommended", URL: "https://clay.com"},
		{Name: "Clari", Category: "Forecasting", UseCase: "AI-powered sales forecasting and deal inspection", Impact: "Increase forecast accuracy and prevent deal slippage.", Priority: "recommended", URL: "https://clari.com"},
	},
	core.RoleMarketing: {
		{Name: "Jasper AI", Category: "Content Creation", UseCase: "Generate marketing copy, blog posts, ads at scale", Impact: "Create weeks of content in a day.", Priority: "recommended", URL: "https://jasper.ai"},
		{Name: "Midjourney / DALL-E", Category: "Image Generation", UseCase: "Create custom images, graphics, ad creatives instantly", Impact: "No more waiting for designers for every image.", Priority: "recommended", URL: "https://midjourney.com"},
		{Name: "Segment + RudderStack", Category: "Customer Data", UseCase: "Unify customer data, power AI-driven personalization", Impact: "Single source of truth for all customer behavior.", Priority: "nice-to-have", URL: "https://segment.com"},
		{Name: "Copy.ai", Category: "Marketing Copywriting", UseCase: "Generate ad copy, landing pages, email campaigns", Impact: "Test 10x more variations in the same time.", Priority: "recommended", URL: "https://copy.ai"},
	},
	core.RoleOperations: {
		{Name: "Zapier / Make", Category: "Workflow Automation", UseCase: "Automate repetitive tasks between apps without code", Impact: "Save 10+ hours per week on manual tasks.", Priority: "must-have", URL: "https://zapier.com"},
		{Name: "Retool", Category: "Internal Tools", UseCase: "Build custom internal dashboards and tools with AI", Impact: "Create tools in hours that used to take months.", Priority: "recommended", URL: "https://retool.com"},
		{Name: "Looker / Tableau", Category: "Business Intelligence", UseCase: "AI-powered analytics and automated insights", Impact: "Spot operational issues before they become problems.", Priority: "recommended", URL: "https://looker.com"},
		{Name: "Linear", Category: "Project Management", UseCase: "AI-assisted task management and project planning", Impact: "Keep operations running smoothly with less overhead.", Priority: "nice-to-have", URL: "https://linear.app"},
	},
	core.RoleFounder: {
		{Name: "Cursor", Category: "AI Code Editor", UseCase: "Build features 10x faster with AI pair programming", Impact: "Ship products without hiring a full dev team.", Priority: "must-have", URL: "https://cursor.sh"},
		{Name: "v0.dev + Vercel", Category: "Full-Stack Development", UseCase: "Build and deploy web apps from text descriptions", Impact: "MVP in days, not months.", Priority: "must-have", URL: "https://v0.dev"},
		{Name: "Notion AI", Category: "Operations Hub", UseCase: "Run entire startup: docs, roadmap, wiki, CRM with AI", Impact: "Replace 5 different tools with one.", Priority: "recommended", URL: "https://notion.so"},
		{Name: "Loom AI", Category: "Async Communication", UseCase: "Record video updates, AI generates summaries and action items", Impact: "Reduce meetings by 50%, stay aligned asynchronously.", Priority: "recommended", URL: "https://loom.com"},
	},
}

var gapTools = map[string]core.AITool{
	"data_analytics": {
		Name:     "Julius AI",
		Category: "Data Analysis",
		UseCase:  "Chat with your data, generate insights and visualizations",
		Impact:   "Analyze data without knowing Python or SQL.",
		Priority: "recommended",
		URL:      "https://julius.ai",
	},
	"business_acumen": {
		Name:     "Causal",
		Category: "Business Modeling",
		UseCase:  "Build interactive business models with scenario planning",
		Impact:   "Understand business drivers through modeling.",
		Priority: "nice-to-have",
		URL:      "https://causal.app",
	},
	"strategic_thinking": {
		Name:     "Miro AI",
		Category: "Strategy Visualization",
		UseCase:  "Generate strategy maps, roadmaps, and frameworks with AI",
		Impact:   "Think visually, plan systematically.",
		Priority: "nice-to-have",
		URL:      "https://miro.com/ai",
	},
}

// AITools recommends up to ten tools: two universal, the role's four, and
// any gap-specific ones, deduplicated by name in that order.
func AITools(role string, gaps []string) []core.AITool {
	tools := make([]core.AITool, 0, 10)
	tools = append(tools, universalTools...)
	tools = append(tools, roleTools[role]...)
	for _, gap := range gaps {
		if tool, ok := gapTools[gap]; ok {
			tools = append(tools, tool)
		}
	}

	seen := make(map[string]bool, len(tools))
	unique := tools[:0]
	for _, tool := range tools {
		if seen[tool.Name] {
			continue
		}
		seen[tool.Name] = true
		unique = append(unique, tool)
	}

	if len(unique) > 10 {
		unique = unique[:10]
	}
	return unique
}
