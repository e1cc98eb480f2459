// Package observability provides formatted report output for the CLI.
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
	maxItemsToShow = 5
)

// Printer handles formatted report output
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

// PrintReport renders the full score report as a sequence of boxes.
func (p *Printer) PrintReport(result *types.ScoreResult) {
	if result == nil {
		return
	}
	if result.InsufficientInput {
		p.printBox("MATCH SCORE", "Insufficient input: résumé or posting is empty")
		return
	}

	p.PrintScore(result)
	p.PrintCategoryBreakdown(result.CategoryBreakdown)
	p.PrintSectionAnalysis(&result.SectionAnalysis)
	p.PrintSemanticAnalysis(&result.SemanticAnalysis, result.SemanticAvailable)
	p.PrintGaps(result.GapAnalysis, result.ExperienceGap)
}

// PrintScore outputs the final score and its components.
func (p *Printer) PrintScore(result *types.ScoreResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Final Score:  %.1f / 100\n", result.FinalScore))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Lexical:      %.1f\n", result.Components.Lexical))
	if result.SemanticAvailable {
		sb.WriteString(fmt.Sprintf("Semantic:     %.1f\n", result.Components.Semantic))
	} else {
		sb.WriteString("Semantic:     unavailable\n")
	}
	sb.WriteString(fmt.Sprintf("Evidence:     %.1f\n", result.Components.Evidence))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Taxonomy:     %s", result.TaxonomyVersion))

	p.printBox("MATCH SCORE", sb.String())
}

// PrintCategoryBreakdown outputs per-weight-class matching detail.
func (p *Printer) PrintCategoryBreakdown(breakdown []types.CategoryBreakdown) {
	if len(breakdown) == 0 {
		return
	}

	var sb strings.Builder
	for i, cat := range breakdown {
		sb.WriteString(fmt.Sprintf("%-12s %d/%d matched (%.0f%%)\n", cat.Category, cat.Matched, cat.Total, cat.Score))
		if len(cat.TopMissing) > 0 {
			missing := strings.Join(cat.TopMissing, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  missing: %s\n", missing))
		}
		if i < len(breakdown)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CATEGORY BREAKDOWN", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSectionAnalysis outputs which résumé sections demonstrate the matched
// posting skills.
func (p *Printer) PrintSectionAnalysis(analysis *types.SectionAnalysis) {
	if analysis == nil || (len(analysis.ByResumeSection) == 0 && len(analysis.NotFound) == 0) {
		return
	}

	var sb strings.Builder
	for _, section := range []types.SectionType{
		types.SectionSummary, types.SectionSkills, types.SectionExperience,
		types.SectionProjects, types.SectionEducation, types.SectionCertifications,
	} {
		skills := analysis.ByResumeSection[section]
		if len(skills) == 0 {
			continue
		}
		line := strings.Join(skills, ", ")
		if len(line) > 40 {
			line = line[:37] + "..."
		}
		sb.WriteString(fmt.Sprintf("%-16s %s\n", section, line))
	}

	if len(analysis.NotFound) > 0 {
		count := min(len(analysis.NotFound), maxItemsToShow)
		sb.WriteString("\nNot found:\n")
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.NotFound[i]))
		}
		if len(analysis.NotFound) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.NotFound)-maxItemsToShow))
		}
	}

	p.printBox("SKILL COVERAGE BY SECTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSemanticAnalysis outputs the top section pairings and any degradation
// notes.
func (p *Printer) PrintSemanticAnalysis(analysis *types.SemanticAnalysis, available bool) {
	if !available {
		p.printBox("SEMANTIC ANALYSIS", "Unavailable: no embedding provider configured")
		return
	}
	if analysis == nil || len(analysis.TopMatches) == 0 {
		return
	}

	var sb strings.Builder
	for _, match := range analysis.TopMatches {
		marker := " "
		if match.HighValue {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %-16s → %-14s %.2f\n", marker, match.PostingSection, match.ResumeSection, match.Similarity))
	}

	if len(analysis.Notes) > 0 {
		sb.WriteString("\n")
		for _, note := range analysis.Notes {
			sb.WriteString(fmt.Sprintf("⚠ %s\n", note))
		}
	}

	p.printBox("SEMANTIC ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs prioritized skill gaps and any experience shortfall.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintGaps(gaps []types.GapItem, expGap *types.ExperienceGap) {
	if len(gaps) == 0 && (expGap == nil || expGap.Gap <= 0) {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO GAPS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder

	count := min(len(gaps), maxItemsToShow)
	for i := 0; i < count; i++ {
		gap := gaps[i]
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", gap.Skill, gap.Priority))
		sb.WriteString(fmt.Sprintf("  add to %s: %s\n", gap.RecommendedSection, gap.Rationale))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(gaps) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more gaps\n", len(gaps)-maxItemsToShow))
	}

	if expGap != nil && expGap.Gap > 0 && expGap.PostingYears != nil {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("⚠ Experience: %d years required", *expGap.PostingYears))
		if expGap.ResumeYears != nil {
			sb.WriteString(fmt.Sprintf(", %d shown", *expGap.ResumeYears))
		}
		sb.WriteString(fmt.Sprintf(" (gap: %d)\n", expGap.Gap))
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}
