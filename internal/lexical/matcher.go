package lexical

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Weight per concept class. Classes are ordered; classification checks run
// top to bottom and the first hit wins.
var classWeights = map[types.WeightClass]float64{
	types.ClassCritical:  3.0,
	types.ClassHardSkill: 2.5,
	types.ClassRequired:  2.0,
	types.ClassSoftSkill: 1.5,
	types.ClassPreferred: 1.0,
	types.ClassOther:     0.5,
}

// classOrder fixes iteration and report ordering from most to least important.
var classOrder = []types.WeightClass{
	types.ClassCritical,
	types.ClassHardSkill,
	types.ClassRequired,
	types.ClassSoftSkill,
	types.ClassPreferred,
	types.ClassOther,
}

// ClassOrder returns concept classes from most to least important.
func ClassOrder() []types.WeightClass { return classOrder }

// Concept is one posting-side term the matcher scored: a taxonomy entity or
// an extracted keyword, classified by where it appears in the posting and
// what the taxonomy knows about it.
type Concept struct {
	Term     string
	Class    types.WeightClass
	Category types.EntityCategory // empty for plain keywords
	Section  types.SectionType    // posting section of origin; empty for plain keywords
	Weight   float64
	Count    int
	Matched  bool
}

// Result is the lexical component of a score.
type Result struct {
	Score     float64 // 0-100
	Concepts  []Concept
	Breakdown []types.CategoryBreakdown

	MatchedKeywords []string
	MissingKeywords []string
	MatchedPhrases  []string
	MissingPhrases  []string
}

// Matcher scores keyword overlap between a posting and a résumé. Company
// name variations are suppressed so the hiring company's own name never
// counts as a match.
type Matcher struct {
	tax       *taxonomy.Taxonomy
	extraStop map[string]bool
}

func NewMatcher(tax *taxonomy.Taxonomy, companyName string) *Matcher {
	return &Matcher{tax: tax, extraStop: taxonomy.CompanyStopwords(companyName)}
}

// Match classifies every posting concept, checks each against the résumé
// vocabulary (with synonym and role-variant expansion), and aggregates a
// weighted overlap score.
func (m *Matcher) Match(resume, posting *types.ParsedDocument) *Result {
	postingKeywords := ExtractKeywords(posting.RawText, m.tax, m.extraStop)
	resumeKeywords := ExtractKeywords(resume.RawText, m.tax, m.extraStop)

	resumeVocab := make(map[string]bool, len(resumeKeywords))
	for k := range resumeKeywords {
		resumeVocab[k] = true
	}
	for k := range resume.NormalizedSet() {
		resumeVocab[k] = true
	}

	requirementsVocab := m.sectionVocab(posting, types.SectionRequirements, types.SectionQualifications)
	preferredVocab := m.sectionVocab(posting, types.SectionPreferred)
	// Short terms ("go", "r") fall below the keyword length filter, so the
	// entity pass backfills section vocabularies.
	for _, e := range posting.Entities {
		switch e.Section {
		case types.SectionRequirements, types.SectionQualifications:
			requirementsVocab[e.Normalized] = true
		case types.SectionPreferred:
			preferredVocab[e.Normalized] = true
		}
	}

	concepts := m.classifyConcepts(posting, postingKeywords, requirementsVocab, preferredVocab)
	for i := range concepts {
		concepts[i].Matched = m.inVocab(concepts[i].Term, resumeVocab)
	}

	r := &Result{Concepts: concepts}
	r.Score, r.Breakdown = m.aggregate(concepts)
	r.MatchedKeywords, r.MissingKeywords = splitKeywords(concepts)
	r.MatchedPhrases, r.MissingPhrases = splitPhrases(postingKeywords, resumeVocab)
	return r
}

// classifyConcepts merges posting entities and extracted keywords into a
// deduplicated concept list. Entities carry their taxonomy category; plain
// keywords classify by section of origin alone.
func (m *Matcher) classifyConcepts(posting *types.ParsedDocument, keywords map[string]int, requirements, preferred map[string]bool) []Concept {
	byTerm := make(map[string]*Concept)

	add := func(term string, cat types.EntityCategory, section types.SectionType, count int) {
		if existing, ok := byTerm[term]; ok {
			if existing.Category == "" {
				existing.Category = cat
			}
			if existing.Section == "" {
				existing.Section = section
			}
			if count > existing.Count {
				existing.Count = count
			}
			return
		}
		byTerm[term] = &Concept{Term: term, Category: cat, Section: section, Count: count}
	}

	// Entities first, in document order: a term mentioned in several posting
	// sections keeps its first section of origin.
	for _, e := range posting.Entities {
		count := keywords[e.Normalized]
		if count == 0 {
			count = 1
		}
		add(e.Normalized, e.Category, e.Section, count)
	}
	for term, count := range keywords {
		add(term, "", "", count)
	}

	out := make([]Concept, 0, len(byTerm))
	for _, c := range byTerm {
		c.Class = m.classify(c.Term, c.Category, requirements, preferred)
		c.Weight = classWeights[c.Class]
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weight != out[j].Weight {
			return out[i].Weight > out[j].Weight
		}
		return out[i].Term < out[j].Term
	})
	return out
}

func (m *Matcher) classify(term string, cat types.EntityCategory, requirements, preferred map[string]bool) types.WeightClass {
	hard := cat == types.CategoryHardSkill
	required := requirements[term]
	switch {
	case hard && required:
		return types.ClassCritical
	case hard:
		return types.ClassHardSkill
	case required:
		return types.ClassRequired
	case cat == types.CategorySoftSkill:
		return types.ClassSoftSkill
	case preferred[term]:
		return types.ClassPreferred
	default:
		return types.ClassOther
	}
}

// inVocab reports whether the term, or any synonym/role-variant expansion of
// it, appears in the résumé vocabulary.
func (m *Matcher) inVocab(term string, vocab map[string]bool) bool {
	for _, variant := range m.tax.Expand(term) {
		if vocab[variant] {
			return true
		}
	}
	return false
}

func (m *Matcher) sectionVocab(doc *types.ParsedDocument, sections ...types.SectionType) map[string]bool {
	var parts []string
	for _, st := range sections {
		if text := doc.SectionText(st); text != "" {
			parts = append(parts, text)
		}
	}
	vocab := make(map[string]bool)
	if len(parts) == 0 {
		return vocab
	}
	for k := range ExtractKeywords(strings.Join(parts, " "), m.tax, m.extraStop) {
		vocab[k] = true
	}
	return vocab
}

// aggregate computes the weighted overlap score and the per-class breakdown.
// Score is matched weight over total weight; a posting with no concepts at
// all scores zero.
func (m *Matcher) aggregate(concepts []Concept) (float64, []types.CategoryBreakdown) {
	type bucket struct {
		matched, total   int
		matchedW, totalW float64
		missing          []string
	}
	buckets := make(map[types.WeightClass]*bucket)
	var matchedW, totalW float64

	for _, c := range concepts {
		b := buckets[c.Class]
		if b == nil {
			b = &bucket{}
			buckets[c.Class] = b
		}
		b.total++
		b.totalW += c.Weight
		totalW += c.Weight
		if c.Matched {
			b.matched++
			b.matchedW += c.Weight
			matchedW += c.Weight
		} else {
			b.missing = append(b.missing, c.Term)
		}
	}

	var breakdown []types.CategoryBreakdown
	for _, class := range classOrder {
		b := buckets[class]
		if b == nil {
			continue
		}
		score := 0.0
		if b.totalW > 0 {
			score = b.matchedW / b.totalW * 100
		}
		top := b.missing
		if len(top) > 5 {
			top = top[:5]
		}
		breakdown = append(breakdown, types.CategoryBreakdown{
			Category:   string(class),
			Matched:    b.matched,
			Total:      b.total,
			Score:      score,
			TopMissing: top,
		})
	}

	if totalW == 0 {
		return 0, breakdown
	}
	return matchedW / totalW * 100, breakdown
}

// splitKeywords reports matched and missing concepts above the noise tier,
// ordered by weight then term (concepts arrive pre-sorted).
func splitKeywords(concepts []Concept) (matched, missing []string) {
	for _, c := range concepts {
		if c.Class == types.ClassOther {
			continue
		}
		if c.Matched {
			matched = append(matched, c.Term)
		} else {
			missing = append(missing, c.Term)
		}
	}
	return matched, missing
}

func splitPhrases(postingKeywords map[string]int, resumeVocab map[string]bool) (matched, missing []string) {
	phrases := Phrases(postingKeywords)
	sort.Strings(phrases)
	for _, p := range phrases {
		if resumeVocab[p] {
			matched = append(matched, p)
		} else {
			missing = append(missing, p)
		}
	}
	return matched, missing
}
