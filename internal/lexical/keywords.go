// Package lexical implements keyword-level matching between a parsed posting
// and a parsed résumé: text normalization, n-gram keyword extraction, and
// weight-classed concept scoring.
package lexical

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

// symbolFoldings rewrite tech tokens that punctuation stripping would
// otherwise destroy. Applied before the non-word sweep, so "c++" survives
// as "cpp" instead of a bare "c".
var symbolFoldings = []struct{ from, to string }{
	{".js", "js"},
	{".net", "dotnet"},
	{"ci/cd", "cicd"},
	{"c++", "cpp"},
	{"c#", "csharp"},
	{"f#", "fsharp"},
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	digitsOnlyRe = regexp.MustCompile(`^\d+$`)
)

// NormalizeText lowercases text, folds symbol-bearing tech tokens, strips
// punctuation except hyphens, and collapses whitespace.
func NormalizeText(text string) string {
	out := strings.ToLower(text)
	for _, f := range symbolFoldings {
		out = strings.ReplaceAll(out, f.from, f.to)
	}
	out = nonWordRe.ReplaceAllString(out, " ")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(out, " "))
}

// ExtractKeywords returns unigram, bigram and trigram counts from normalized
// text. Stopwords (all three taxonomy tiers plus any extra set, typically
// company-name variations), bare numbers, and words shorter than three
// characters are filtered; an n-gram survives only if none of its words is a
// stopword.
func ExtractKeywords(text string, tax *taxonomy.Taxonomy, extraStop map[string]bool) map[string]int {
	words := strings.Fields(NormalizeText(text))

	isStop := func(w string) bool {
		return tax.IsStopword(w) || extraStop[w] || digitsOnlyRe.MatchString(w) || len(w) < 3
	}

	counts := make(map[string]int)
	for _, w := range words {
		if !isStop(w) {
			counts[w]++
		}
	}
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := words[i : i+n]
			ok := true
			for _, w := range gram {
				if isStop(w) {
					ok = false
					break
				}
			}
			if ok {
				counts[strings.Join(gram, " ")]++
			}
		}
	}
	return counts
}

// Phrases returns just the multi-word keys of a keyword count map.
func Phrases(counts map[string]int) []string {
	var out []string
	for k := range counts {
		if strings.Contains(k, " ") {
			out = append(out, k)
		}
	}
	return out
}
