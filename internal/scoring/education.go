package scoring

// underEducationPenalty is the flat score for a resume below the required
// education level. Under-education is treated as a near-disqualifier rather
// than a graded deficiency.
const underEducationPenalty = 0.2

// scoreEducation compares the highest education level mentioned in each
// text. A job with no detectable requirement scores 1.0; a resume with no
// detectable education against an explicit requirement gets the no-evidence
// floor.
func (e *Engine) scoreEducation(resumeText, jdText string) float64 {
	jdLevel := e.extractor.EducationLevel(jdText)
	if jdLevel == 0 {
		return 1.0
	}

	resumeLevel := e.extractor.EducationLevel(resumeText)
	switch {
	case resumeLevel == 0:
		return noEvidenceFloor
	case resumeLevel >= jdLevel:
		return 1.0
	default:
		return underEducationPenalty
	}
}
