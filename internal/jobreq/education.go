package jobreq

import "regexp"

// Education levels ordered by severity.
const (
	EducationNone       = 0
	EducationHighSchool = 1
	EducationAssociate  = 2
	EducationBachelor   = 3
	EducationMaster     = 4
	EducationDoctorate  = 5
)

// educationPatterns map degree mentions to levels. Unlike years extraction,
// every pattern is tried and the highest matching level wins, so a posting
// naming both a Bachelor's and a Master's binds to the Master's.
var educationPatterns = []struct {
	level int
	re    *regexp.Regexp
}{
	{EducationDoctorate, regexp.MustCompile(`(?i)\bph\.?\s?d\b|\bdoctor(?:ate|al)\b|\bjuris\s+doctor\b|\bj\.?d\.?\b|\bm\.?d\.?\s+degree\b|\bm\.d\.?\b`)},
	{EducationMaster, regexp.MustCompile(`(?i)\bmaster(?:'?s)?\b|\bmba\b|\bm\.?b\.?a\b|\bm\.?s(?:c)?\.?\b|\bm\.?eng\b|\bgraduate\s+(?:program|degree)\b`)},
	{EducationBachelor, regexp.MustCompile(`(?i)\bbachelor(?:'?s)?\b|\bb\.?s(?:c)?\.?\b|\bb\.?a\.?\b|\bb\.?eng\b|\bundergraduate\b`)},
	{EducationAssociate, regexp.MustCompile(`(?i)\bassociate(?:'?s)?\s+(?:degree|of)\b|\ba\.a\.?\b|\ba\.s\.?\b|\bsome\s+college\b`)},
	{EducationHighSchool, regexp.MustCompile(`(?i)\bhigh\s*school\b|\bged\b|\bh\.?s\.?\s+diploma\b`)},
}

// EducationLevel extracts the highest education level mentioned in text,
// on a 0 (none detected) to 5 (doctoral) scale.
func (e *Extractor) EducationLevel(text string) int {
	best := EducationNone
	for _, p := range educationPatterns {
		if p.level <= best {
			continue
		}
		if p.re.MatchString(text) {
			best = p.level
			if best == EducationDoctorate {
				break
			}
		}
	}
	return best
}
