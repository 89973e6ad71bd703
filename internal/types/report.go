package types

// Component identifies one of the five scoring components.
type Component string

// Component constants name the five scorers that feed the overall score.
const (
	ComponentKeyword    Component = "keyword"
	ComponentSkill      Component = "skill"
	ComponentSemantic   Component = "semantic"
	ComponentExperience Component = "experience"
	ComponentEducation  Component = "education"
)

// Components lists all scoring components in report order.
var Components = []Component{
	ComponentKeyword,
	ComponentSkill,
	ComponentSemantic,
	ComponentExperience,
	ComponentEducation,
}

// SkillAnalysis breaks down how the resume's skills matched the job's
// required and preferred skill sets.
type SkillAnalysis struct {
	MatchedSkills          []string `json:"matched_skills"`
	MissingRequiredSkills  []string `json:"missing_required_skills"`
	MissingPreferredSkills []string `json:"missing_preferred_skills"`
}

// ScoreReport is the result of scoring one (resume, job) pair. Scores are
// integer percentages. Error is set only for the documented precondition
// failure (missing raw text); all other failure modes degrade to defaults.
type ScoreReport struct {
	OverallScore    int               `json:"overall_score"`
	ComponentScores map[Component]int `json:"component_scores"`
	SkillAnalysis   SkillAnalysis     `json:"skill_analysis"`
	Error           string            `json:"error,omitempty"`
}
