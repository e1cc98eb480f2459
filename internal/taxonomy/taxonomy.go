// Package taxonomy provides the static knowledge base used for entity
// extraction and keyword matching: skill/certification/methodology/domain
// term sets, synonym and role-variant tables, and layered stopword lists.
//
// A Taxonomy is an immutable, versioned configuration object. It is built
// once (via Default or Default().WithOverlay) and passed into the extractor
// and matcher, so tests can substitute synthetic taxonomies and concurrent
// reads need no locking.
package taxonomy

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultEvidenceCap bounds the cumulative evidence bonuses any single
// entity mention can accrue. Tunable via Overlay, not load-bearing.
const DefaultEvidenceCap = 2.0

// Taxonomy is the engine's knowledge base. All lookups are case-insensitive.
type Taxonomy struct {
	version     string
	evidenceCap float64

	terms map[types.EntityCategory]map[string]bool

	synonyms        map[string][]string // abbreviation -> full forms
	reverseSynonyms map[string][]string // full form -> abbreviations
	roleVariants    map[string][]string // manager <-> management, etc.

	baseStopwords    map[string]bool
	uiStopwords      map[string]bool
	postingStopwords map[string]bool

	actionVerbs map[string]bool
}

// Overlay extends a base taxonomy with additional terms and synonyms.
// Used to load user-supplied taxonomy files (validated by internal/schemas).
type Overlay struct {
	Version        string              `json:"version,omitempty"`
	HardSkills     []string            `json:"hard_skills,omitempty"`
	SoftSkills     []string            `json:"soft_skills,omitempty"`
	Certifications []string            `json:"certifications,omitempty"`
	Methodologies  []string            `json:"methodologies,omitempty"`
	Domains        []string            `json:"domains,omitempty"`
	Synonyms       map[string][]string `json:"synonyms,omitempty"`
	EvidenceCap    float64             `json:"evidence_cap,omitempty"`
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	t := &Taxonomy{
		version:     builtinVersion,
		evidenceCap: DefaultEvidenceCap,
		terms: map[types.EntityCategory]map[string]bool{
			types.CategoryHardSkill:     toSet(hardSkills),
			types.CategorySoftSkill:     toSet(softSkills),
			types.CategoryCertification: toSet(certifications),
			types.CategoryMethodology:   toSet(methodologies),
			types.CategoryDomain:        toSet(domains),
		},
		synonyms:         abbreviationMap,
		roleVariants:     roleVariations,
		baseStopwords:    toSet(baseStopwords),
		uiStopwords:      toSet(uiStopwords),
		postingStopwords: toSet(postingStopwords),
		actionVerbs:      toSet(actionVerbs),
	}
	t.reverseSynonyms = buildReverse(t.synonyms)
	return t
}

// WithOverlay returns a new Taxonomy extended with the overlay's terms.
// The receiver is not modified.
func (t *Taxonomy) WithOverlay(o Overlay) *Taxonomy {
	next := &Taxonomy{
		version:          t.version,
		evidenceCap:      t.evidenceCap,
		terms:            make(map[types.EntityCategory]map[string]bool, len(t.terms)),
		synonyms:         make(map[string][]string, len(t.synonyms)),
		roleVariants:     t.roleVariants,
		baseStopwords:    t.baseStopwords,
		uiStopwords:      t.uiStopwords,
		postingStopwords: t.postingStopwords,
		actionVerbs:      t.actionVerbs,
	}
	if o.Version != "" {
		next.version = t.version + "+" + o.Version
	}
	if o.EvidenceCap > 0 {
		next.evidenceCap = o.EvidenceCap
	}
	for cat, set := range t.terms {
		copied := make(map[string]bool, len(set))
		for k := range set {
			copied[k] = true
		}
		next.terms[cat] = copied
	}
	add := func(cat types.EntityCategory, terms []string) {
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term != "" {
				next.terms[cat][term] = true
			}
		}
	}
	add(types.CategoryHardSkill, o.HardSkills)
	add(types.CategorySoftSkill, o.SoftSkills)
	add(types.CategoryCertification, o.Certifications)
	add(types.CategoryMethodology, o.Methodologies)
	add(types.CategoryDomain, o.Domains)
	for k, v := range t.synonyms {
		next.synonyms[k] = v
	}
	for abbr, fulls := range o.Synonyms {
		abbr = strings.ToLower(strings.TrimSpace(abbr))
		next.synonyms[abbr] = append(next.synonyms[abbr], fulls...)
	}
	next.reverseSynonyms = buildReverse(next.synonyms)
	return next
}

// Version identifies the knowledge-base revision baked into score results.
func (t *Taxonomy) Version() string { return t.version }

// EvidenceCap is the maximum evidence strength any entity mention may reach.
func (t *Taxonomy) EvidenceCap() float64 { return t.evidenceCap }

// Terms returns the sorted term list for a category. The extractor compiles
// word-boundary patterns from these; sorting keeps compilation deterministic.
func (t *Taxonomy) Terms(cat types.EntityCategory) []string {
	set := t.terms[cat]
	out := make([]string, 0, len(set))
	for term := range set {
		out = append(out, term)
	}
	sort.Strings(out)
	return out
}

// Category reports which entity category a term belongs to. Lookup is
// case-insensitive and checks categories in a fixed precedence order so a
// term present in several sets classifies deterministically.
func (t *Taxonomy) Category(term string) (types.EntityCategory, bool) {
	lower := strings.ToLower(strings.TrimSpace(term))
	for _, cat := range []types.EntityCategory{
		types.CategoryHardSkill,
		types.CategoryCertification,
		types.CategoryMethodology,
		types.CategorySoftSkill,
		types.CategoryDomain,
	} {
		if t.terms[cat][lower] {
			return cat, true
		}
	}
	return "", false
}

// Contains reports whether the term (or any of its synonym expansions) is a
// known taxonomy term.
func (t *Taxonomy) Contains(term string) bool {
	if _, ok := t.Category(term); ok {
		return true
	}
	for _, variant := range t.Expand(term) {
		if _, ok := t.Category(variant); ok {
			return true
		}
	}
	return false
}

// Expand returns the term plus all known synonym/abbreviation and
// role-variant forms, lowercased. Multi-word phrases additionally expand
// each word through the role-variant table.
func (t *Taxonomy) Expand(term string) []string {
	lower := strings.ToLower(strings.TrimSpace(term))
	seen := map[string]bool{lower: true}
	out := []string{lower}
	push := func(v string) {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, full := range t.synonyms[lower] {
		push(full)
	}
	for _, abbr := range t.reverseSynonyms[lower] {
		push(abbr)
	}
	for _, variant := range t.roleVariants[lower] {
		push(variant)
	}
	words := strings.Fields(lower)
	if len(words) > 1 {
		for i, w := range words {
			for _, variant := range t.roleVariants[w] {
				phrase := make([]string, len(words))
				copy(phrase, words)
				phrase[i] = variant
				push(strings.Join(phrase, " "))
			}
		}
	}
	return out
}

// IsStopword reports whether the word is filtered from keyword extraction.
// Posting boilerplate is a separate tier from the generic stopword lists.
func (t *Taxonomy) IsStopword(word string) bool {
	lower := strings.ToLower(word)
	return t.baseStopwords[lower] || t.uiStopwords[lower] || t.postingStopwords[lower]
}

// IsActionVerb reports whether the word is a recognized achievement verb.
func (t *Taxonomy) IsActionVerb(word string) bool {
	return t.actionVerbs[strings.ToLower(word)]
}

// ActionVerbs returns the sorted action-verb list (for pattern compilation).
func (t *Taxonomy) ActionVerbs() []string {
	out := make([]string, 0, len(t.actionVerbs))
	for v := range t.actionVerbs {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// CompanyStopwords returns the stopword additions for a company name:
// the lowercased name, its individual words longer than two characters,
// and common corporate suffixes. Used to keep the hiring company's own
// name from counting as a matched keyword.
func CompanyStopwords(companyName string) map[string]bool {
	out := make(map[string]bool)
	name := strings.ToLower(strings.TrimSpace(companyName))
	if name == "" {
		return out
	}
	out[name] = true
	for _, word := range strings.Fields(name) {
		if len(word) > 2 {
			out[word] = true
		}
	}
	for _, suffix := range companySuffixes {
		out[suffix] = true
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

func buildReverse(synonyms map[string][]string) map[string][]string {
	reverse := make(map[string][]string)
	for abbr, fulls := range synonyms {
		for _, full := range fulls {
			reverse[full] = append(reverse[full], abbr)
		}
	}
	return reverse
}
