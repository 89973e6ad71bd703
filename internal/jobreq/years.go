package jobreq

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// maxPlausibleYears caps extracted figures; anything above is treated as
// extraction noise rather than a real requirement.
const maxPlausibleYears = 30

// yearPatterns are tried in order; the first pattern with any match wins,
// even when a later, more generic pattern would also match. Range bounds
// come first so "3-5 years" binds to 3 rather than the generic "5 years".
var yearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})\s*(?:-|–|to)\s*\d{1,2}\s*\+?\s*years?`),
	regexp.MustCompile(`(?:minimum(?:\s+of)?|at\s+least|requires?)\D{0,40}?(\d{1,2})\s*\+?\s*years?`),
	regexp.MustCompile(`(\d{1,2})\s*\+?\s*years?(?:\s+of)?(?:\s+[a-z]+){0,3}?\s+(?:experience|professional|relevant|industry)`),
	regexp.MustCompile(`(\d{1,2})\s*\+?\s*years?`),
}

// YearsRequired extracts an explicit years-of-experience figure from job
// text. Within the winning pattern the maximum figure across occurrences is
// kept, binding to the most demanding stated requirement. No match yields 0,
// meaning "no explicit requirement".
func (e *Extractor) YearsRequired(text string) int {
	lowered := strings.ToLower(text)

	for _, pattern := range yearPatterns {
		matches := pattern.FindAllStringSubmatch(lowered, -1)
		if len(matches) == 0 {
			continue
		}

		best := 0
		for _, m := range matches {
			if n, err := strconv.Atoi(m[1]); err == nil && n > best {
				best = n
			}
		}

		if best > maxPlausibleYears {
			e.logger.Warn("capping implausible years requirement",
				zap.Int("extracted", best),
				zap.Int("cap", maxPlausibleYears))
			best = maxPlausibleYears
		}
		return best
	}

	return 0
}
