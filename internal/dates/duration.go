package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/types"
)

// daysPerYear approximates leap years; durations are computed from day
// deltas rather than calendar-year arithmetic.
const daysPerYear = 365.25

// Resolver turns date tokens and work entries into durations. The zero value
// is not usable; construct with NewResolver.
type Resolver struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewResolver returns a Resolver logging soft parse failures to the given
// logger. A nil logger disables logging.
func NewResolver(logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{logger: logger, now: time.Now}
}

// DurationYears computes the span between two date tokens in fractional
// years. An absent or "Present" end runs through now. Failure modes resolve
// to documented defaults rather than errors: an unparseable start yields 0;
// an unparseable end falls back to December 31 of the start's year; an
// inverted range yields 0.
func (r *Resolver) DurationYears(startToken, endToken string) float64 {
	start, ok := ParseDate(startToken)
	if !ok {
		r.logger.Warn("unparseable start date, contributing zero tenure",
			zap.String("start", startToken))
		return 0
	}

	var end time.Time
	switch {
	case IsOngoing(endToken):
		end = r.now()
	default:
		parsed, ok := ParseDate(endToken)
		if !ok {
			// Assume the role ran through year-end of its start year.
			end = time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
			r.logger.Warn("unparseable end date, assuming end of start year",
				zap.String("end", endToken),
				zap.Int("assumed_year", start.Year()))
		} else {
			end = parsed
		}
	}

	if end.Before(start) {
		r.logger.Warn("inverted date range, contributing zero tenure",
			zap.String("start", startToken),
			zap.String("end", endToken))
		return 0
	}

	return end.Sub(start).Hours() / 24 / daysPerYear
}

// TotalTenure sums the duration of all work entries. Entries with no start
// date fall back to their human-readable Duration string when present and
// otherwise contribute zero.
func (r *Resolver) TotalTenure(entries []types.ExperienceEntry) float64 {
	total := 0.0
	for _, entry := range entries {
		if strings.TrimSpace(entry.StartDate) == "" {
			if years := ParseDuration(entry.Duration); years > 0 {
				total += years
				continue
			}
			r.logger.Warn("work entry has no start date, skipping",
				zap.String("position", entry.Position),
				zap.String("company", entry.Company))
			continue
		}
		total += r.DurationYears(entry.StartDate, entry.EndDate)
	}
	return total
}

var (
	durationYearsRe  = regexp.MustCompile(`(\d+)\s*(?:years?|yrs?)`)
	durationMonthsRe = regexp.MustCompile(`(\d+)\s*(?:months?|mos?)`)
)

// ParseDuration parses a human-readable tenure string such as
// "3 years 4 months" or "11 mos" into fractional years. Strings with no
// year or month figure yield 0.
func ParseDuration(s string) float64 {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0
	}

	years := 0.0
	if m := durationYearsRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		years += float64(n)
	}
	if m := durationMonthsRe.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		years += float64(n) / 12
	}
	return years
}
