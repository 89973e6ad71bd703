package jobreq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testExtractor() *Extractor {
	return NewExtractor(zap.NewNop())
}

func TestYearsRequired_ExplicitPhrasings(t *testing.T) {
	e := testExtractor()

	tests := []struct {
		text string
		want int
	}{
		{"Requires 5+ years of experience", 5},
		{"Minimum 3 years professional experience", 3},
		{"Experience: 10 years", 10},
		{"Must have 1 year in the industry", 1},
		{"Senior role, 15+ years", 15},
		{"At least 7 years of relevant experience", 7},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, e.YearsRequired(tt.text), "text: %q", tt.text)
	}
}

func TestYearsRequired_RangeBindsToLowerBound(t *testing.T) {
	e := testExtractor()

	assert.Equal(t, 3, e.YearsRequired("3-5 years relevant experience needed"))
	assert.Equal(t, 2, e.YearsRequired("2 to 4 years of experience"))
}

func TestYearsRequired_EarlierPatternWinsOverGeneric(t *testing.T) {
	e := testExtractor()

	// The range pattern captures 3 even though the generic pattern would
	// also match "5 years".
	assert.Equal(t, 3, e.YearsRequired("3-5 years of experience required"))
}

func TestYearsRequired_MaximumWithinPattern(t *testing.T) {
	e := testExtractor()

	text := "2+ years of frontend experience and 8+ years of backend experience"
	assert.Equal(t, 8, e.YearsRequired(text))
}

func TestYearsRequired_NoMatch(t *testing.T) {
	e := testExtractor()

	assert.Equal(t, 0, e.YearsRequired("No specific years required"))
	assert.Equal(t, 0, e.YearsRequired("Experience with Python"))
	assert.Equal(t, 0, e.YearsRequired(""))
}

func TestYearsRequired_CapsImplausibleValues(t *testing.T) {
	e := testExtractor()

	assert.Equal(t, 30, e.YearsRequired("requires 50 years of experience"))
}
