package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func sampleReport() *types.ScoreReport {
	return &types.ScoreReport{
		OverallScore: 78,
		ComponentScores: map[types.Component]int{
			types.ComponentKeyword:    61,
			types.ComponentSkill:      80,
			types.ComponentSemantic:   88,
			types.ComponentExperience: 100,
			types.ComponentEducation:  50,
		},
		SkillAnalysis: types.SkillAnalysis{
			MatchedSkills:          []string{"python", "postgresql"},
			MissingRequiredSkills:  []string{"java"},
			MissingPreferredSkills: []string{"aws"},
		},
	}
}

func TestPrintScoreReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(sampleReport())

	out := buf.String()
	assert.Contains(t, out, "MATCH SCORE")
	assert.Contains(t, out, "Overall:       78%")
	assert.Contains(t, out, "Keyword:      61%")
	assert.Contains(t, out, "Skill:        80%")
	assert.Contains(t, out, "Education:    50%")

	assert.Contains(t, out, "SKILL ANALYSIS")
	assert.Contains(t, out, "Matched:")
	assert.Contains(t, out, "• python")
	assert.Contains(t, out, "Missing (required):")
	assert.Contains(t, out, "• java")
	assert.Contains(t, out, "Missing (preferred):")
	assert.Contains(t, out, "• aws")
}

func TestPrintScoreReport_ComponentOrder(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(sampleReport())

	out := buf.String()
	last := -1
	for _, component := range types.Components {
		pos := strings.Index(out, capitalize(string(component))+":")
		assert.Greater(t, pos, last, "component %s out of order", component)
		last = pos
	}
}

func TestPrintScoreReport_ErrorReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(&types.ScoreReport{
		Error: "missing text data",
		SkillAnalysis: types.SkillAnalysis{
			MatchedSkills:          []string{},
			MissingRequiredSkills:  []string{},
			MissingPreferredSkills: []string{},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Error: missing text data")
	// Empty skill lists suppress the analysis box entirely.
	assert.NotContains(t, out, "SKILL ANALYSIS")
}

func TestPrintScoreReport_NilReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreReport(nil)
	assert.Empty(t, buf.String())
}

func TestWriteSkillList_Truncation(t *testing.T) {
	skills := make([]string, maxItemsToShow+3)
	for i := range skills {
		skills[i] = fmt.Sprintf("skill-%d", i)
	}

	var sb strings.Builder
	writeSkillList(&sb, "Matched", skills)

	out := sb.String()
	assert.Contains(t, out, fmt.Sprintf("skill-%d", maxItemsToShow-1))
	assert.NotContains(t, out, fmt.Sprintf("skill-%d\n", maxItemsToShow))
	assert.Contains(t, out, "... and 3 more")
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Keyword", capitalize("keyword"))
	assert.Equal(t, "", capitalize(""))
}
