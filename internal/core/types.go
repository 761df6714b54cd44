package core

import "strings"

// Recognized role keys. Unknown roles fall back to neutral scoring.
const (
	RoleProductManager = "product-manager"
	RoleFinance        = "finance"
	RoleSales          = "sales"
	RoleMarketing      = "marketing"
	RoleOperations     = "operations"
	RoleFounder        = "founder"
)

// EvaluationRequest is a user's quiz-style profile: role, experience band,
// career goal, and the role-specific answer keys.
type EvaluationRequest struct {
	Role       string `json:"role"`
	Experience string `json:"experience"`
	CareerGoal string `json:"careerGoal"`
	// CurrentRole is an optional display label sent by the client.
	CurrentRole string `json:"currentRole,omitempty"`
	// Answers maps question keys (e.g. "pm-data-conflict") to answer keys.
	Answers map[string]string `json:"answers"`
}

// Validate rejects a malformed request before any key derivation or store
// access, naming the field that failed.
func (r *EvaluationRequest) Validate() *AppError {
	if r == nil {
		return NewValidationError("", "request body is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		return NewValidationError("role", "role is required")
	}
	if strings.TrimSpace(r.Experience) == "" {
		return NewValidationError("experience", "experience is required")
	}
	if strings.TrimSpace(r.CareerGoal) == "" {
		return NewValidationError("careerGoal", "careerGoal is required")
	}
	for k, v := range r.Answers {
		if strings.TrimSpace(k) == "" {
			return NewValidationError("answers", "answer keys must be non-empty")
		}
		if strings.TrimSpace(v) == "" {
			return NewValidationError("answers", "answer for "+k+" must be non-empty")
		}
	}
	return nil
}

// Normalized returns the canonical payload used for cache key derivation.
// Question keys arriving in kebab-case or snake_case collapse to one form so
// semantically identical submissions fingerprint identically.
func (r *EvaluationRequest) Normalized() map[string]interface{} {
	answers := make(map[string]interface{}, len(r.Answers))
	for k, v := range r.Answers {
		answers[normalizeKey(k)] = strings.TrimSpace(v)
	}
	return map[string]interface{}{
		"role":        strings.TrimSpace(r.Role),
		"experience":  strings.TrimSpace(r.Experience),
		"career_goal": strings.TrimSpace(r.CareerGoal),
		"answers":     answers,
	}
}

func normalizeKey(k string) string {
	return strings.ReplaceAll(strings.TrimSpace(k), "_", "-")
}

// Answer returns the normalized answer for a question key, or "".
func (r *EvaluationRequest) Answer(key string) string {
	if v, ok := r.Answers[key]; ok {
		return strings.TrimSpace(v)
	}
	// Tolerate snake_case submissions.
	for k, v := range r.Answers {
		if normalizeKey(k) == key {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

// Readiness is the weighted readiness score block.
type Readiness struct {
	OverallScore   int            `json:"overall_score"`
	CategoryScores map[string]int `json:"category_scores"`
	MaturityLevel  string         `json:"maturity_level"`
	Percentile     int            `json:"percentile"`
	ReadinessTags  []string       `json:"readiness_tags"`
}

// Skill is one scored competency.
type Skill struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Level       int    `json:"level"`
	LevelLabel  string `json:"level_label"`
}

// SkillAnalysis groups scored skills with derived strengths and gaps.
type SkillAnalysis struct {
	Skills    []Skill  `json:"skills"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

// QuickWin is one recommended near-term action.
type QuickWin struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Timeframe   string `json:"timeframe"`
}

// AITool is one recommended tool with role-specific framing.
type AITool struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	UseCase  string `json:"use_case"`
	Impact   string `json:"impact"`
	Priority string `json:"priority"`
	URL      string `json:"url,omitempty"`
}

// IndustryStat is a single upskilling-ROI data point.
type IndustryStat struct {
	Stat        string `json:"stat"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Impact      string `json:"impact"`
}

// TransformationInsight describes an industry shift relevant to the role.
type TransformationInsight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Example     string `json:"example"`
	Takeaway    string `json:"takeaway"`
}

// PeerComparison is the social-proof block derived from the percentile.
type PeerComparison struct {
	Percentile     int    `json:"percentile"`
	Message        string `json:"message"`
	ComparisonText string `json:"comparison_text"`
	Badge          string `json:"badge"`
	CohortSize     string `json:"cohort_size"`
}

// Persona is the matched persona descriptor.
type Persona struct {
	ID                 string   `json:"persona_id"`
	Label              string   `json:"persona_label"`
	RoleContext        string   `json:"role_context"`
	Description        string   `json:"description"`
	MaturityVariant    string   `json:"maturity_variant"`
	BadgeLabel         string   `json:"badge_label"`
	VariantDescription string   `json:"variant_description"`
	Tags               []string `json:"persona_tags"`
	KeyStrengths       []string `json:"key_strengths"`
	Fit                string   `json:"fit"`
}

// Narrative is the generated personalized text block. Absent when no
// generator is configured or the deterministic evaluation is served alone.
type Narrative struct {
	TransformationStories []TransformationStory `json:"transformation_stories"`
	ToolDescriptions      []ToolDescription     `json:"tool_descriptions"`
	QuickWins             []NarrativeQuickWin   `json:"quick_wins"`
	CareerPaths           []CareerPath          `json:"career_paths"`
}

// TransformationStory is a generated before/after company story.
type TransformationStory struct {
	Company         string `json:"company"`
	BeforeAI        string `json:"before_ai"`
	AfterAI         string `json:"after_ai"`
	RelevanceToUser string `json:"relevance_to_user"`
}

// ToolDescription is generated per-tool personalized framing.
type ToolDescription struct {
	ToolName            string `json:"tool_name"`
	PersonalizedUseCase string `json:"personalized_use_case"`
	WhyItHelps          string `json:"why_it_helps"`
}

// NarrativeQuickWin is a generated quick win with priority.
type NarrativeQuickWin struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Impact      string `json:"impact"`
	Priority    string `json:"priority"`
}

// CareerPath is a generated career trajectory suggestion.
type CareerPath struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ActionItems []string `json:"action_items"`
}

// EvaluationMeta echoes the request context back to the caller.
type EvaluationMeta struct {
	Role       string `json:"role"`
	Experience string `json:"experience"`
	CareerGoal string `json:"career_goal"`
}

// Evaluation is the complete structured result returned to the caller and
// cached as response_json.
type Evaluation struct {
	Readiness              Readiness               `json:"readiness"`
	Skills                 SkillAnalysis           `json:"skills"`
	QuickWins              []QuickWin              `json:"quick_wins"`
	AITools                []AITool                `json:"ai_tools"`
	IndustryStats          []IndustryStat          `json:"industry_stats"`
	TransformationInsights []TransformationInsight `json:"transformation_insights"`
	PeerComparison         PeerComparison          `json:"peer_comparison"`
	Persona                Persona                 `json:"persona"`
	Narrative              *Narrative              `json:"narrative,omitempty"`
	Meta                   EvaluationMeta          `json:"meta"`
}
