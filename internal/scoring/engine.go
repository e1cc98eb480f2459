package scoring

import (
	"context"
	"strings"

	"github.com/jonathan/resume-matcher/internal/lexical"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	maxTopMatches     = 5
	maxMissingPhrases = 10
)

// Request is one scoring call: the two documents as plain UTF-8 text, plus
// the optional hiring company name (suppressed from keyword matching).
type Request struct {
	ResumeText  string
	PostingText string
	Company     string
}

// Engine scores a résumé against a posting. It is stateless across calls
// except for the shared embedding cache, so one engine serves concurrent
// requests.
type Engine struct {
	tax    *taxonomy.Taxonomy
	parser *parsing.Parser
	sem    *semantic.Scorer
}

// NewEngine builds an engine around a taxonomy and an embedding client.
// A nil or unavailable client disables the semantic component; scoring
// still works with renormalized weights.
func NewEngine(tax *taxonomy.Taxonomy, embedder llm.EmbeddingClient, cache *semantic.Cache) *Engine {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Engine{
		tax:    tax,
		parser: parsing.NewParser(tax),
		sem:    semantic.NewScorer(embedder, cache),
	}
}

// Score runs the full pipeline: parse both documents, match lexically,
// score semantically, weigh evidence, blend, and derive the gap analysis.
// It never returns an error; degenerate input yields a zero score flagged
// insufficient, and semantic failures degrade to the two-component blend.
func (e *Engine) Score(ctx context.Context, req Request) *types.ScoreResult {
	result := &types.ScoreResult{TaxonomyVersion: e.tax.Version()}
	if strings.TrimSpace(req.ResumeText) == "" || strings.TrimSpace(req.PostingText) == "" {
		result.InsufficientInput = true
		return result
	}

	resume := e.parser.ParseResume(req.ResumeText)
	posting := e.parser.ParsePosting(req.PostingText)

	lex := lexical.NewMatcher(e.tax, req.Company).Match(resume, posting)

	matchedTerms, entityRatio := e.matchedEntityTerms(lex.Concepts)
	sem := e.sem.Score(ctx, resume, posting, entityRatio)
	evidence := evidenceScore(resume, matchedTerms)

	result.Components = types.ComponentScores{
		Lexical:  lex.Score,
		Semantic: sem.Score,
		Evidence: evidence,
	}
	result.SemanticAvailable = sem.Available
	result.FinalScore = combine(lex.Score, sem.Score, evidence, sem.Available)

	result.CategoryBreakdown = lex.Breakdown
	result.SectionAnalysis = sectionAnalysis(resume, lex.Concepts, e.tax)
	result.SemanticAnalysis = semanticAnalysis(sem)
	result.GapAnalysis = analyzeGaps(lex.Concepts)
	result.ExperienceGap = experienceGap(resume, posting)

	result.MatchedKeywords = lex.MatchedKeywords
	result.MissingKeywords = lex.MissingKeywords
	result.MatchedPhrases = lex.MatchedPhrases
	result.MissingPhrases = lex.MissingPhrases
	if len(result.MissingPhrases) > maxMissingPhrases {
		result.MissingPhrases = result.MissingPhrases[:maxMissingPhrases]
	}
	return result
}

// matchedEntityTerms expands every matched taxonomy concept into its synonym
// variants (so résumé entities stored under a variant spelling still count)
// and reports the matched share of taxonomy concepts, which backs the
// semantic entity-support rail.
func (e *Engine) matchedEntityTerms(concepts []lexical.Concept) (map[string]bool, float64) {
	terms := make(map[string]bool)
	var matched, total int
	for _, c := range concepts {
		if c.Category == "" {
			continue
		}
		total++
		if !c.Matched {
			continue
		}
		matched++
		for _, variant := range e.tax.Expand(c.Term) {
			terms[variant] = true
		}
	}
	if total == 0 {
		return terms, 0
	}
	return terms, float64(matched) / float64(total)
}

// sectionAnalysis reports, for each matched posting skill, which résumé
// sections demonstrate it, plus the skills not found at all.
func sectionAnalysis(resume *types.ParsedDocument, concepts []lexical.Concept, tax *taxonomy.Taxonomy) types.SectionAnalysis {
	bySection := make(map[types.SectionType]map[string]bool)
	entitySections := make(map[string][]types.SectionType)
	for _, ent := range resume.Entities {
		entitySections[ent.Normalized] = append(entitySections[ent.Normalized], ent.Section)
	}

	analysis := types.SectionAnalysis{ByResumeSection: make(map[types.SectionType][]string)}
	for _, c := range concepts {
		if c.Category == "" {
			continue
		}
		if !c.Matched {
			analysis.NotFound = append(analysis.NotFound, parsing.DisplayName(c.Term))
			continue
		}
		name := parsing.DisplayName(c.Term)
		for _, variant := range tax.Expand(c.Term) {
			for _, section := range entitySections[variant] {
				if bySection[section] == nil {
					bySection[section] = make(map[string]bool)
				}
				if !bySection[section][name] {
					bySection[section][name] = true
					analysis.ByResumeSection[section] = append(analysis.ByResumeSection[section], name)
				}
			}
		}
	}
	return analysis
}

func semanticAnalysis(sem *semantic.Result) types.SemanticAnalysis {
	analysis := types.SemanticAnalysis{
		SectionSimilarities: sem.SectionSimilarities,
		Notes:               sem.Notes,
	}
	matches := make([]types.SectionMatch, len(sem.Matches))
	copy(matches, sem.Matches)
	semantic.SortMatches(matches)
	if len(matches) > maxTopMatches {
		matches = matches[:maxTopMatches]
	}
	analysis.TopMatches = matches
	return analysis
}
