package scoring

import "strings"

// Required skills dominate the skill signal; preferred skills contribute the
// remainder. Fixed design constants.
const (
	requiredSkillWeight  = 0.8
	preferredSkillWeight = 0.2
)

// skillResult carries the skill score plus the match diagnostics surfaced in
// the final report.
type skillResult struct {
	Score            float64
	Matched          []string
	MissingRequired  []string
	MissingPreferred []string
}

// scoreSkill compares the resume's skill set against the job's required and
// preferred skills, case-insensitively. With nothing to satisfy the score is
// 1.0 (full credit, not absence of signal); with no resume skills the score
// is 0 and every job skill is reported missing.
func scoreSkill(resumeSkills, required, preferred []string) skillResult {
	result := skillResult{
		Matched:          []string{},
		MissingRequired:  []string{},
		MissingPreferred: []string{},
	}

	if len(resumeSkills) == 0 {
		result.MissingRequired = append(result.MissingRequired, required...)
		result.MissingPreferred = append(result.MissingPreferred, preferred...)
		return result
	}

	if len(required) == 0 && len(preferred) == 0 {
		result.Score = 1.0
		result.Matched = append(result.Matched, resumeSkills...)
		return result
	}

	have := make(map[string]string, len(resumeSkills))
	for _, skill := range resumeSkills {
		have[canonicalSkill(skill)] = skill
	}

	matchedSet := make(map[string]struct{})
	requiredMatched := 0
	for _, skill := range required {
		if original, ok := have[canonicalSkill(skill)]; ok {
			requiredMatched++
			matchedSet[original] = struct{}{}
		} else {
			result.MissingRequired = append(result.MissingRequired, skill)
		}
	}

	preferredMatched := 0
	for _, skill := range preferred {
		if original, ok := have[canonicalSkill(skill)]; ok {
			preferredMatched++
			matchedSet[original] = struct{}{}
		} else {
			result.MissingPreferred = append(result.MissingPreferred, skill)
		}
	}

	// Keep the resume's own ordering and casing in the matched list.
	for _, skill := range resumeSkills {
		if _, ok := matchedSet[skill]; ok {
			result.Matched = append(result.Matched, skill)
		}
	}

	requiredScore := 1.0
	if len(required) > 0 {
		requiredScore = float64(requiredMatched) / float64(len(required))
	}
	preferredScore := 1.0
	if len(preferred) > 0 {
		preferredScore = float64(preferredMatched) / float64(len(preferred))
	}

	result.Score = requiredSkillWeight*requiredScore + preferredSkillWeight*preferredScore
	return result
}

// canonicalSkill lowercases and trims a skill name for comparison.
func canonicalSkill(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}
