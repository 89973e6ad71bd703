package jobreq

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/textutil"
)

const (
	minPhraseLength = 4
	maxPhraseWords  = 3
)

var (
	requiredHeadingRe = regexp.MustCompile(`(?im)^[^a-z0-9]{0,4}(?:requirements?|(?:minimum\s+|basic\s+)?qualifications?|must[-\s]haves?|required\s+skills|what\s+you(?:'|’)?ll\s+need)\b.*$`)

	preferredHeadingRe = regexp.MustCompile(`(?im)^[^a-z0-9]{0,4}(?:preferred(?:\s+qualifications?|\s+skills)?|nice[-\s]to[-\s]haves?|bonus(?:\s+points?|\s+skills)?|pluses)\b.*$`)

	// boundaryRe marks the start of the next section, ending the current span.
	boundaryRe = regexp.MustCompile(`(?im)^[^a-z0-9]{0,4}(?:preferred\b|nice[-\s]to[-\s]have|bonus\b|benefits?\b|perks\b|about\s+(?:us|the\s+(?:company|team|role))|responsibilit|compensation|salary|what\s+we\s+offer|how\s+to\s+apply|equal\s+opportunity)`)

	bulletMarkerRe = regexp.MustCompile(`(?m)^\s*(?:[-•*‣◦▪]|\d{1,2}[.)])\s*`)

	resumeSkillsHeadingRe = regexp.MustCompile(`(?im)^[^a-z0-9]{0,4}(?:(?:technical|core|key)\s+)?(?:skills?|technologies|tools)\b.*$`)

	// resumeBoundaryRe ends a resume skills section at the next resume heading.
	resumeBoundaryRe = regexp.MustCompile(`(?im)^[^a-z0-9]{0,4}(?:(?:work\s+|professional\s+)?experience\b|education\b|projects?\b|certifications?\b|awards?\b|summary\b|references?\b)`)
)

// SkillSections splits a job description into required and preferred skill
// phrase sets using heading and bullet heuristics. The extractor is
// deliberately noisy: it trades precision for recall and returns empty sets
// when no recognizable sections exist.
func (e *Extractor) SkillSections(jdText string) (required, preferred []string) {
	required = e.phrasesFromSpan(sectionSpan(jdText, requiredHeadingRe, boundaryRe))
	preferred = e.phrasesFromSpan(sectionSpan(jdText, preferredHeadingRe, boundaryRe))

	if len(required) == 0 {
		e.logger.Warn("no requirements section detected in job text")
	}
	return required, preferred
}

// ResumeSkills extracts a candidate skill list from a resume's skills
// section when no structured skill set was supplied. A resume without a
// recognizable skills section yields an empty set, which downstream scoring
// treats as "no evidence".
func (e *Extractor) ResumeSkills(resumeText string) []string {
	span := sectionSpan(resumeText, resumeSkillsHeadingRe, resumeBoundaryRe)
	if span == "" {
		e.logger.Warn("no skills section detected in resume text")
		return nil
	}
	return e.phrasesFromSpan(span)
}

// sectionSpan returns the text between a section heading and the next
// section boundary, or "" when the heading is absent.
func sectionSpan(text string, headingRe, boundary *regexp.Regexp) string {
	loc := headingRe.FindStringIndex(text)
	if loc == nil {
		return ""
	}

	span := text[loc[1]:]
	if end := boundary.FindStringIndex(span); end != nil {
		span = span[:end[0]]
	}
	return span
}

// phrasesFromSpan extracts candidate skill phrases from a section span:
// bullets are split on list markers, then each bullet contributes its 1-3
// word alphabetic n-grams longer than three characters with no stop-word
// constituents.
func (e *Extractor) phrasesFromSpan(span string) []string {
	if strings.TrimSpace(span) == "" {
		return nil
	}

	bullets := bulletMarkerRe.Split(span, -1)
	if len(bullets) == 1 {
		// No list markers; fall back to treating each line as a bullet.
		bullets = strings.Split(span, "\n")
	}

	seen := make(map[string]struct{})
	var phrases []string
	for _, bullet := range bullets {
		for _, phrase := range bulletPhrases(bullet) {
			if _, dup := seen[phrase]; dup {
				continue
			}
			seen[phrase] = struct{}{}
			phrases = append(phrases, phrase)
		}
	}

	if len(phrases) > 0 {
		e.logger.Debug("extracted skill phrases", zap.Int("count", len(phrases)))
	}
	return phrases
}

// bulletPhrases generates the candidate phrases for one bullet.
func bulletPhrases(bullet string) []string {
	words := textutil.Tokenize(bullet)
	var phrases []string
	for n := 1; n <= maxPhraseWords; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := words[i : i+n]
			if !candidatePhrase(gram) {
				continue
			}
			phrases = append(phrases, strings.Join(gram, " "))
		}
	}
	return phrases
}

// candidatePhrase rejects grams containing digits or stop words, and
// single-character noise.
func candidatePhrase(words []string) bool {
	length := len(words) - 1
	for _, w := range words {
		if textutil.IsStopWord(w) {
			return false
		}
		for _, r := range w {
			if r < 'a' || r > 'z' {
				return false
			}
		}
		length += len(w)
	}
	return length >= minPhraseLength
}
