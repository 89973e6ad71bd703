// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreReport outputs a human-readable summary of a score report.
func (p *Printer) PrintScoreReport(report *types.ScoreReport) {
	if report == nil {
		return
	}

	var sb strings.Builder

	if report.Error != "" {
		sb.WriteString(fmt.Sprintf("Error: %s\n", report.Error))
	}
	sb.WriteString(fmt.Sprintf("Overall:      %3d%%\n", report.OverallScore))
	sb.WriteString("\n")

	for _, component := range types.Components {
		sb.WriteString(fmt.Sprintf("%-12s %3d%%\n", capitalize(string(component))+":", report.ComponentScores[component]))
	}

	p.printBox("MATCH SCORE", strings.TrimSuffix(sb.String(), "\n"))
	p.printSkillAnalysis(&report.SkillAnalysis)
}

// printSkillAnalysis outputs matched and missing skill lists.
func (p *Printer) printSkillAnalysis(analysis *types.SkillAnalysis) {
	if len(analysis.MatchedSkills) == 0 &&
		len(analysis.MissingRequiredSkills) == 0 &&
		len(analysis.MissingPreferredSkills) == 0 {
		return
	}

	var sb strings.Builder
	writeSkillList(&sb, "Matched", analysis.MatchedSkills)
	writeSkillList(&sb, "Missing (required)", analysis.MissingRequiredSkills)
	writeSkillList(&sb, "Missing (preferred)", analysis.MissingPreferredSkills)

	p.printBox("SKILL ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeSkillList(sb *strings.Builder, label string, skills []string) {
	if len(skills) == 0 {
		return
	}

	sb.WriteString(label + ":\n")
	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxItemsToShow))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
