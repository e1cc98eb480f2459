package parsing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// evidenceWindow is the character radius around a mention inspected for
// metrics and action verbs.
const evidenceWindow = 100

// Section bonuses and context bonuses for evidence strength. Base is 1.0
// (1.5 for certifications), and the total is clamped to the taxonomy cap.
const (
	evidenceBase           = 1.0
	evidenceBaseCert       = 1.5
	bonusExperienceSection = 0.2
	bonusProjectsSection   = 0.15
	bonusSummarySection    = 0.1
	bonusMetricNearby      = 0.2
	bonusActionVerbNearby  = 0.1
)

type termPattern struct {
	term    string
	pattern *regexp.Regexp
}

// Extractor finds taxonomy entities in section text and scores the evidence
// around each mention. Compiling one extractor per taxonomy amortizes the
// regexp work across documents; an Extractor is safe for concurrent use.
type Extractor struct {
	tax          *taxonomy.Taxonomy
	patterns     map[types.EntityCategory][]termPattern
	actionVerbRe *regexp.Regexp
}

// NewExtractor compiles word-boundary patterns for every taxonomy term.
func NewExtractor(tax *taxonomy.Taxonomy) *Extractor {
	e := &Extractor{
		tax:      tax,
		patterns: make(map[types.EntityCategory][]termPattern),
	}
	categories := []types.EntityCategory{
		types.CategoryHardSkill,
		types.CategorySoftSkill,
		types.CategoryCertification,
		types.CategoryMethodology,
		types.CategoryDomain,
	}
	for _, cat := range categories {
		terms := tax.Terms(cat)
		compiled := make([]termPattern, 0, len(terms))
		for _, term := range terms {
			compiled = append(compiled, termPattern{
				term:    term,
				pattern: compileTermPattern(term),
			})
		}
		// Longer terms first so "machine learning" wins over "machine"
		// when both would match at the same position.
		sort.SliceStable(compiled, func(i, j int) bool {
			return len(compiled[i].term) > len(compiled[j].term)
		})
		e.patterns[cat] = compiled
	}
	verbs := tax.ActionVerbs()
	quoted := make([]string, len(verbs))
	for i, v := range verbs {
		quoted[i] = regexp.QuoteMeta(v)
	}
	e.actionVerbRe = regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	return e
}

// compileTermPattern builds a case-insensitive word-boundary pattern for a
// taxonomy term. Terms with leading/trailing symbol characters (c++, .net)
// get lookaround-free boundaries since \b does not apply to them.
func compileTermPattern(term string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(term)
	left, right := `\b`, `\b`
	if !startsWithWordChar(term) {
		left = `(?:^|[^\w])`
	}
	if !endsWithWordChar(term) {
		right = `(?:[^\w]|$)`
	}
	return regexp.MustCompile(`(?i)` + left + quoted + right)
}

// matchSurface strips the boundary bytes that symbol-edged patterns consume,
// leaving only the term's own span of the original text.
func matchSurface(match, term string) string {
	if idx := strings.Index(strings.ToLower(match), term); idx >= 0 {
		return match[idx : idx+len(term)]
	}
	return strings.TrimSpace(match)
}

func startsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func endsWithWordChar(s string) bool {
	if s == "" {
		return false
	}
	c := s[len(s)-1]
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// Extract returns the entities found in text, attributed to the given
// section. Each (term, category) pair yields at most one entity per section;
// duplicates across different sections are intentional, since the evidence
// scorer weighs where a skill is demonstrated.
func (e *Extractor) Extract(text string, section types.SectionType, kind types.DocumentKind) []types.Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var out []types.Entity
	seen := make(map[string]bool)
	for cat, patterns := range e.patterns {
		for _, tp := range patterns {
			loc := tp.pattern.FindStringIndex(text)
			if loc == nil {
				continue
			}
			key := tp.term + "|" + string(cat)
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, types.Entity{
				Surface:          matchSurface(text[loc[0]:loc[1]], tp.term),
				Normalized:       tp.term,
				Category:         cat,
				Section:          section,
				EvidenceStrength: e.evidenceStrength(text, loc, cat, section, kind),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Normalized < out[j].Normalized
	})
	return out
}

// evidenceStrength scores how strongly a single mention is evidenced: where
// it appears, and whether a quantified metric or an achievement verb sits
// within the surrounding window.
func (e *Extractor) evidenceStrength(text string, loc []int, cat types.EntityCategory, section types.SectionType, kind types.DocumentKind) float64 {
	strength := evidenceBase
	if cat == types.CategoryCertification {
		strength = evidenceBaseCert
	}

	if kind == types.KindResume {
		switch section {
		case types.SectionExperience:
			strength += bonusExperienceSection
		case types.SectionProjects:
			strength += bonusProjectsSection
		case types.SectionSummary:
			strength += bonusSummarySection
		}
	}

	start := loc[0] - evidenceWindow
	if start < 0 {
		start = 0
	}
	end := loc[1] + evidenceWindow
	if end > len(text) {
		end = len(text)
	}
	window := text[start:end]

	for _, mp := range taxonomy.MetricPatterns {
		if mp.MatchString(window) {
			strength += bonusMetricNearby
			break
		}
	}
	if e.actionVerbRe.MatchString(window) {
		strength += bonusActionVerbNearby
	}

	if cap := e.tax.EvidenceCap(); strength > cap {
		strength = cap
	}
	return strength
}

// ExtractYearsExperience returns the largest years-of-experience figure
// stated in the text, or nil when none is found. Ranges ("3-5 years")
// resolve to the upper bound.
func ExtractYearsExperience(text string) *int {
	best := -1
	for _, pattern := range taxonomy.YearsExperiencePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			for _, group := range m[1:] {
				if group == "" {
					continue
				}
				n, err := strconv.Atoi(group)
				if err != nil || n > 60 {
					continue
				}
				if n > best {
					best = n
				}
			}
		}
	}
	if best < 0 {
		return nil
	}
	return &best
}

// ExtractJobTitles returns the distinct job titles mentioned in the text,
// lowercased, in order of first appearance.
func ExtractJobTitles(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, pattern := range taxonomy.JobTitlePatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			title := strings.Join(strings.Fields(strings.ToLower(m)), " ")
			if title == "" || seen[title] {
				continue
			}
			seen[title] = true
			out = append(out, title)
		}
	}
	return out
}
