package scoring

import (
	"math"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/types"
)

// noEvidenceFloor distinguishes "no evidence of experience or education"
// from a definitive zero match, keeping one scorer from nulling out an
// otherwise strong overall score.
const noEvidenceFloor = 0.1

// scoreExperience compares the resume's total tenure against the job's
// explicit years requirement. Resume years are resolved through a cascade:
// structured tenure first, then free-text extraction when the structured
// path yields 0, keeping the maximum of the computed paths.
func (e *Engine) scoreExperience(resume types.ResumeFacts, job types.JobFacts) float64 {
	jdYears := e.extractor.YearsRequired(job.RawText)

	resumeYears := int(e.resolver.TotalTenure(resume.Experience))
	if resumeYears == 0 {
		if fromText := e.extractor.YearsRequired(resume.RawText); fromText > resumeYears {
			resumeYears = fromText
		}
	}

	e.logger.Debug("experience comparison",
		zap.Int("jd_years", jdYears),
		zap.Int("resume_years", resumeYears))

	if jdYears == 0 {
		// No explicit requirement detected; assume satisfied.
		return 1.0
	}
	if resumeYears == 0 {
		return noEvidenceFloor
	}
	return math.Min(1.0, float64(resumeYears)/float64(jdYears))
}
