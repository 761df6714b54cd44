package scoring

import "profiletool/internal/core"

var universalStats = []core.IndustryStat{
	{
		Stat:        "40% productivity gain",
		Description: "Professionals who use AI tools daily report 40% productivity increase",
		Source:      "Microsoft Work Trend Index 2024",
		Impact:      "AI literacy is no longer optional - it's career-critical",
	},
	{
		Stat:        "30-40% salary premium",
		Description: "Professionals with AI + Business skills earn 30-40% more than peers",
		Source:      "Indeed Salary Report 2024",
		Impact:      "Upskilling directly translates to higher compensation",
	},
}

var roleStats = map[string][]core.IndustryStat{
	core.RoleProductManager: {
		{Stat: "73% of PMs", Description: "Use AI for product discovery, research analysis, and roadmap planning", Source: "ProductPlan State of Product 2024", Impact: "PMs not using AI are falling behind on strategic work"},
		{Stat: "5-10x faster", Description: "Product teams using AI ship features 5-10x faster with same quality", Source: "GitHub Innovation Graph 2024", Impact: "Speed to market is the new competitive advantage"},
		{Stat: "60% of PM roles", Description: "Now require demonstrated AI proficiency in job descriptions", Source: "LinkedIn Jobs Report 2024", Impact: "AI skills are no longer nice-to-have, they're required"},
	},
	core.RoleFinance: {
		{Stat: "80% of CFOs", Description: "Plan to increase investment in AI-powered financial planning tools", Source: "Gartner CFO Survey 2024", Impact: "Finance professionals need AI skills to stay relevant"},
		{Stat: "10-15 hours/week", Description: "Average time saved by finance teams using AI for reporting and analysis", Source: "Deloitte Finance Transformation 2024", Impact: "Free up strategic time by automating manual work"},
		{Stat: "40% more accurate", Description: "AI-assisted financial forecasts vs traditional methods", Source: "McKinsey Analytics Report 2024", Impact: "Better predictions = better decisions = career growth"},
	},
	core.RoleSales: {
		{Stat: "28% higher win rates", Description: "Sales teams using AI-powered insights vs those who don't", Source: "Salesforce State of Sales 2024", Impact: "AI literacy directly impacts your quota attainment"},
		{Stat: "50% of sales time", Description: "Currently spent on non-selling activities - AI can automate most of it", Source: "HubSpot Sales Report 2024", Impact: "More time selling = more revenue = higher compensation"},
		{Stat: "70% of top performers", Description: "Use AI for deal analysis, forecasting, and personalization", Source: "Gong Labs Revenue Intelligence 2024", Impact: "Top performers have already adopted AI - catch up or fall behind"},
	},
	core.RoleMarketing: {
		{Stat: "3x more campaigns", Description: "Marketing teams using AI can test 3x more campaigns in same time", Source: "HubSpot Marketing Trends 2024", Impact: "More experiments = better performance = career growth"},
		{Stat: "63% of marketers", Description: "Say AI is their most important technology investment in 2024", Source: "Adobe Digital Trends 2024", Impact: "CMOs are prioritizing AI - so should you"},
		{Stat: "45% lower CAC", Description: "Achieved by teams using AI for targeting and personalization", Source: "MarTech Benchmark Report 2024", Impact: "Better efficiency = bigger budgets = more opportunities"},
	},
	core.RoleOperations: {
		{Stat: "30-40% efficiency gain", Description: "Operations teams using AI for process optimization and automation", Source: "McKinsey Operations Report 2024", Impact: "Efficiency gains translate directly to bottom line impact"},
		{Stat: "90% of ops leaders", Description: "Expect to increase AI adoption in operations in next 12 months", Source: "Gartner Supply Chain Survey 2024", Impact: "Operations is being transformed by AI - adapt or get left behind"},
		{Stat: "70% cost reduction", Description: "In manual operational tasks through intelligent automation", Source: "Deloitte Operations Excellence 2024", Impact: "Leaders who drive efficiency become strategic partners to CEO"},
	},
	core.RoleFounder: {
		{Stat: "10x productivity", Description: "Solo founders using AI tools match output of 5-person teams", Source: "Y Combinator Startup Trends 2024", Impact: "Build faster, leaner, more capital-efficient companies"},
		{Stat: "$50K to $5K", Description: "Average MVP cost dropped 90% with AI-powered development", Source: "TechCrunch Startup Analysis 2024", Impact: "Lower costs = longer runway = better odds of success"},
		{Stat: "3 months to 3 weeks", Description: "Time to MVP for startups using AI for development and design", Source: "Product Hunt Launch Data 2024", Impact: "Speed to market is everything in startups"},
	},
}

// IndustryStats returns the two universal stats followed by the role's own.
func IndustryStats(role string) []core.IndustryStat {
	stats := make([]core.IndustryStat, 0, 5)
	stats = append(stats, universalStats...)
	stats = append(stats, roleStats[role]...)
	return stats
}

var roleTransformations = map[string][]core.TransformationInsight{
	core.RoleProductManager: {
		{Title: "AI-First Product Development", Description: "Product teams are embedding AI into every feature, not building separate AI features", Example: "Notion AI, Canva Magic, Figma AI - all baked directly into workflows", Takeaway: "PMs need to understand AI capabilities to design the next generation of products"},
		{Title: "From Feature Factory to Outcome Factory", Description: "AI enables focus on outcomes, not features. Teams ship less but achieve more.", Example: "Intercom reduced features by 40% but increased customer value by using AI insights", Takeaway: "Strategic PMs who focus on impact over output will thrive"},
		{Title: "Personalization at Scale", Description: "Every user gets a unique product experience powered by AI", Example: "Spotify Discover Weekly, Netflix recommendations - personalization is table stakes now", Takeaway: "Understanding ML/AI is essential for modern product work"},
	},
	core.RoleFinance: {
		{Title: "From Historical Reporting to Predictive Planning", Description: "Finance is shifting from \"what happened\" to \"what will happen\"", Example: "Tesla uses AI to predict cash flow 12 months out with 95% accuracy", Takeaway: "Finance professionals must become strategists, not just reporters"},
		{Title: "Real-Time Financial Intelligence", Description: "Decisions are made with live data, not monthly reports", Example: "Stripe Dashboard gives real-time business metrics to all employees", Takeaway: "Finance teams that enable real-time decisions become strategic partners"},
		{Title: "Automated Everything", Description: "Manual financial processes are being eliminated entirely", Example: "Airbnb automated 90% of expense reporting and reconciliation", Takeaway: "Value shifts from doing the work to interpreting and acting on insights"},
	},
	core.RoleSales: {
		{Title: "From Art to Science", Description: "Sales is becoming data-driven with AI analyzing every interaction", Example: "Gong records every call, identifies patterns, coaches reps in real-time", Takeaway: "Top performers use data to understand what works, not just gut feel"},
		{Title: "Hyper-Personalization", Description: "Every prospect gets tailored messaging based on AI-powered insights", Example: "Clay + ChatGPT generates personalized outreach for 10,000 prospects/day", Takeaway: "Generic outreach is dead. Personalization at scale is the new standard."},
		{Title: "Predictive Deal Intelligence", Description: "AI predicts which deals will close and why", Example: "Clari analyzes deal signals to forecast within 2% accuracy", Takeaway: "Sales leaders who master forecasting become revenue officers"},
	},
	core.RoleMarketing: {
		{Title: "Content Velocity Revolution", Description: "AI enables testing 100 variations where we used to test 3", Example: "Jasper AI helps marketing teams create a month of content in a day", Takeaway: "Speed of experimentation is the new competitive advantage"},
		{Title: "Attribution Finally Solved", Description: "AI can track full customer journey and attribute revenue correctly", Example: "HubSpot AI attribution shows true marketing ROI across all touchpoints", Takeaway: "Marketers can finally prove impact and get bigger budgets"},
		{Title: "Predictive Audience Targeting", Description: "AI identifies who will convert before they even visit your site", Example: "6sense predicts buyer intent and targets accounts 90 days before purchase", Takeaway: "Marketing becomes proactive, not reactive"},
	},
	core.RoleOperations: {
		{Title: "Self-Optimizing Systems", Description: "Operations systems continuously improve themselves using AI", Example: "Amazon warehouse robots optimize their own paths, reducing costs by 20%", Takeaway: "Ops leaders focus on designing systems, not managing tasks"},
		{Title: "Predictive Operations", Description: "Problems are solved before they occur using predictive AI", Example: "UPS predicts vehicle failures 2 weeks in advance, preventing downtime", Takeaway: "Shift from reactive firefighting to proactive optimization"},
		{Title: "Autonomous Decision-Making", Description: "Routine operational decisions are fully automated", Example: "Shopify automates 80% of fulfillment decisions end-to-end", Takeaway: "Focus shifts from execution to strategy and exception handling"},
	},
	core.RoleFounder: {
		{Title: "Solo Founders Building Unicorns", Description: "One person with AI can now build what used to require a team", Example: "Levelsio built Nomad List to $1M+ ARR as a solo founder using AI", Takeaway: "You don't need a big team anymore - just AI fluency"},
		{Title: "AI-Native Startups", Description: "New category of startups built entirely around AI capabilities", Example: "Perplexity AI went 0 to $1B valuation in 18 months with 40 people", Takeaway: "The biggest opportunities are in AI-first businesses"},
		{Title: "Speed as Moat", Description: "AI enables iteration speed that creates defensible advantage", Example: "Cursor raised at $400M valuation by shipping features daily using AI", Takeaway: "Fastest to iterate wins in the AI era"},
	},
}

// TransformationInsights returns up to three industry-shift insights for the role.
func TransformationInsights(role string) []core.TransformationInsight {
	insights := roleTransformations[role]
	if len(insights) > 3 {
		insights = insights[:3]
	}
	return insights
}
