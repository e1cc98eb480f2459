// Package scoring blends the lexical, semantic and evidence signals into one
// explainable score and derives the gap analysis.
package scoring

import (
	"github.com/jonathan/resume-matcher/internal/types"
)

// Evidence normalization: a bare mention (strength 1.0) should score in the
// low-middle range, a capped mention (2.0) at the top. Mapping strength s to
// (s-0.5)/1.5*100 puts base mentions at 33 and capped mentions at 100.
const (
	evidenceFloor = 0.5
	evidenceSpan  = 1.5
)

// evidenceScore aggregates evidence strength over the résumé entities that
// satisfied posting concepts. Returns 0-100; no matched entities scores 0.
func evidenceScore(resume *types.ParsedDocument, matchedTerms map[string]bool) float64 {
	var sum float64
	var n int
	for _, e := range resume.Entities {
		if matchedTerms[e.Normalized] {
			sum += e.EvidenceStrength
			n++
		}
	}
	if n == 0 {
		return 0
	}
	avg := sum / float64(n)
	return clamp((avg-evidenceFloor)/evidenceSpan*100, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
