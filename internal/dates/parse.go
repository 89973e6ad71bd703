// Package dates parses the heterogeneous date strings found on resumes and
// resolves work entries into tenure expressed in fractional years.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

var (
	yearMonthRe = regexp.MustCompile(`^(\d{4})[-/](\d{1,2})(?:[-/]\d{1,2})?$`)
	monthYearRe = regexp.MustCompile(`^([a-z]+)\.?,?\s+(\d{4})$`)
	bareYearRe  = regexp.MustCompile(`^(\d{4})$`)
)

// ParseDate resolves a single date token to a month-resolution point in time.
// Accepted forms: "2020-01" / "2020/01" (with an optional day component,
// covering ISO-8601 dates), "January 2020" / "Jan 2020", and bare "2020".
// A bare year resolves to December of that year so that year-only end dates
// are not penalized. Returns ok=false for anything else.
func ParseDate(token string) (time.Time, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return time.Time{}, false
	}

	// ISO-8601 timestamps ("2020-01-15T00:00:00Z") reduce to their date part.
	if idx := strings.IndexByte(token, 't'); idx > 0 && strings.Count(token[:idx], "-") == 2 {
		token = token[:idx]
	}

	if m := yearMonthRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		if month >= 1 && month <= 12 {
			return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}

	if m := monthYearRe.FindStringSubmatch(token); m != nil {
		if month, ok := monthNames[m[1]]; ok {
			year, _ := strconv.Atoi(m[2])
			return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), true
		}
		return time.Time{}, false
	}

	if m := bareYearRe.FindStringSubmatch(token); m != nil {
		year, _ := strconv.Atoi(m[1])
		return time.Date(year, time.December, 1, 0, 0, 0, 0, time.UTC), true
	}

	return time.Time{}, false
}

// IsOngoing reports whether an end-date token marks a still-current
// position. An absent end date means the engagement is ongoing, so the
// empty token counts.
func IsOngoing(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "present", "current":
		return true
	}
	return false
}
