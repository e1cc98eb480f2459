package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-matcher/internal/types"
)

func TestPrintScore(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := &types.ScoreResult{
		FinalScore:        72.5,
		Components:        types.ComponentScores{Lexical: 80.0, Semantic: 65.0, Evidence: 50.0},
		SemanticAvailable: true,
		TaxonomyVersion:   "builtin-1",
	}

	p.PrintScore(result)
	output := buf.String()

	assert.Contains(t, output, "MATCH SCORE")
	assert.Contains(t, output, "72.5")
	assert.Contains(t, output, "80.0")
	assert.Contains(t, output, "65.0")
	assert.Contains(t, output, "builtin-1")
}

func TestPrintScore_SemanticUnavailable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScore(&types.ScoreResult{FinalScore: 40.0})

	assert.Contains(t, buf.String(), "Semantic:     unavailable")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintReport_InsufficientInput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(&types.ScoreResult{InsufficientInput: true})
	output := buf.String()

	assert.Contains(t, output, "Insufficient input")
	assert.NotContains(t, output, "Final Score")
}

func TestPrintCategoryBreakdown(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	breakdown := []types.CategoryBreakdown{
		{Category: "critical", Matched: 1, Total: 3, Score: 33.0, TopMissing: []string{"AWS", "Kubernetes"}},
		{Category: "preferred", Matched: 2, Total: 2, Score: 100.0},
	}

	p.PrintCategoryBreakdown(breakdown)
	output := buf.String()

	assert.Contains(t, output, "CATEGORY BREAKDOWN")
	assert.Contains(t, output, "critical")
	assert.Contains(t, output, "1/3 matched")
	assert.Contains(t, output, "AWS")
	assert.Contains(t, output, "preferred")
}

func TestPrintCategoryBreakdown_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCategoryBreakdown(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSectionAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.SectionAnalysis{
		ByResumeSection: map[types.SectionType][]string{
			types.SectionSkills:     {"Python", "Go"},
			types.SectionExperience: {"Docker"},
		},
		NotFound: []string{"Terraform"},
	}

	p.PrintSectionAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "SKILL COVERAGE BY SECTION")
	assert.Contains(t, output, "Python, Go")
	assert.Contains(t, output, "Docker")
	assert.Contains(t, output, "Terraform")
}

func TestPrintSemanticAnalysis_Unavailable(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSemanticAnalysis(nil, false)

	assert.Contains(t, buf.String(), "Unavailable")
}

func TestPrintSemanticAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.SemanticAnalysis{
		TopMatches: []types.SectionMatch{
			{PostingSection: types.SectionRequirements, ResumeSection: types.SectionExperience, Similarity: 0.82, HighValue: true},
			{PostingSection: types.SectionBenefits, ResumeSection: types.SectionSummary, Similarity: 0.41},
		},
		Notes: []string{"semantic score capped: low keyword support"},
	}

	p.PrintSemanticAnalysis(analysis, true)
	output := buf.String()

	assert.Contains(t, output, "SEMANTIC ANALYSIS")
	assert.Contains(t, output, "requirements")
	assert.Contains(t, output, "0.82")
	assert.Contains(t, output, "capped")
}

func TestPrintGaps(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	resumeYears := 3
	postingYears := 5
	gaps := []types.GapItem{
		{
			Skill:              "Kubernetes",
			Priority:           types.ClassCritical,
			RecommendedSection: types.SectionSkills,
			Rationale:          "required hard skill missing from resume",
		},
	}
	expGap := &types.ExperienceGap{ResumeYears: &resumeYears, PostingYears: &postingYears, Gap: 2}

	p.PrintGaps(gaps, expGap)
	output := buf.String()

	assert.Contains(t, output, "GAP ANALYSIS")
	assert.Contains(t, output, "Kubernetes")
	assert.Contains(t, output, "critical")
	assert.Contains(t, output, "gap: 2")
}

func TestPrintGaps_None(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGaps(nil, nil)

	assert.Contains(t, buf.String(), "NO GAPS FOUND")
}
