package types

// JobFacts is the engine's view of a job description. RawText is required and
// is the sole source for requirement extraction. RequiredSkills and
// PreferredSkills are optional; when omitted the engine extracts them from
// RawText with section heuristics.
type JobFacts struct {
	RawText         string   `json:"raw_text"`
	RequiredSkills  []string `json:"required_skills,omitempty"`
	PreferredSkills []string `json:"preferred_skills,omitempty"`
}
