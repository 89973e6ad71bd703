// Package types defines the data structures exchanged with the match engine.
package types

// ExperienceEntry describes one work engagement on a resume.
// StartDate and EndDate are free-form date strings ("Jan 2020", "2020-01",
// "2020", ISO-8601 with or without a trailing Z). An empty or "present"
// EndDate marks the engagement as ongoing.
type ExperienceEntry struct {
	Position  string `json:"position,omitempty"`
	Company   string `json:"company,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	// Duration is a human-readable tenure string such as "3 years 4 months".
	// It is consulted only when StartDate is absent.
	Duration string `json:"duration,omitempty"`
}

// ResumeFacts is the engine's view of a candidate resume. RawText is required;
// Skills and Experience are optional structured fields that take precedence
// over free-text extraction when present.
type ResumeFacts struct {
	RawText    string            `json:"raw_text"`
	Skills     []string          `json:"skills,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
}
